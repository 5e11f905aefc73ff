package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/propadmin/prop-admin-backend/internal/registry/domain"
)

// UserRepository handles storage operations for the users collection.
type UserRepository struct {
	users collection[domain.User]
}

func NewUserRepository(client *redis.Client) *UserRepository {
	return &UserRepository{
		users: newCollection(client, usersKey, domain.SeedUsers),
	}
}

// List returns all users in insertion order, seeding the collection on
// first access.
func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	return r.users.load(ctx)
}

// FindByEmail returns the first user whose email matches exactly.
// The comparison is case-sensitive, matching the legacy login behavior.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.users.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Add appends a user and persists the full collection. The caller supplies
// the id; a blank one is backfilled.
func (r *UserRepository) Add(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	users, err := r.users.load(ctx)
	if err != nil {
		return err
	}
	users = append(users, *user)
	return r.users.save(ctx, users)
}
