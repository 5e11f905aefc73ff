package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Storage keys, one per collection. The whole collection is stored under a
// single key as a JSON array and replaced on every write.
const (
	usersKey      = "admin_prop_users"
	propertiesKey = "admin_prop_properties"
	contractsKey  = "admin_prop_contracts"
	servicesKey   = "admin_prop_services"
	expensesKey   = "admin_prop_expenses"
	incomesKey    = "admin_prop_incomes"
)

// collection provides whole-collection access to one storage key. A missing
// or unparsable value is replaced by the seed; the corrupt bytes are not
// kept. Writes always replace the full array.
type collection[T any] struct {
	client *redis.Client
	key    string
	seed   func() []T
}

func newCollection[T any](client *redis.Client, key string, seed func() []T) collection[T] {
	if seed == nil {
		seed = func() []T { return []T{} }
	}
	return collection[T]{client: client, key: key, seed: seed}
}

// load returns the full collection in storage order, seeding the key first
// if it is absent or holds data that does not parse.
func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err == redis.Nil {
		return c.reseed(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		// Corrupt payload: discard and fall back to the seed.
		return c.reseed(ctx)
	}
	return items, nil
}

// save replaces the stored collection with items.
func (c *collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", c.key, err)
	}
	if err := c.client.Set(ctx, c.key, data, 0).Err(); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}

func (c *collection[T]) reseed(ctx context.Context) ([]T, error) {
	items := c.seed()
	if err := c.save(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}
