package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/propadmin/prop-admin-backend/internal/registry/domain"
)

// IncomeRepository handles storage operations for the incomes collection.
type IncomeRepository struct {
	incomes collection[domain.Income]
}

func NewIncomeRepository(client *redis.Client) *IncomeRepository {
	return &IncomeRepository{
		incomes: newCollection[domain.Income](client, incomesKey, nil),
	}
}

// ListByProperty returns the incomes of a property in insertion order.
func (r *IncomeRepository) ListByProperty(ctx context.Context, propertyID string) ([]domain.Income, error) {
	incomes, err := r.incomes.load(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.Income, 0, len(incomes))
	for _, in := range incomes {
		if in.PropertyID == propertyID {
			filtered = append(filtered, in)
		}
	}
	return filtered, nil
}

// Add appends an income record and persists the full collection.
func (r *IncomeRepository) Add(ctx context.Context, income *domain.Income) error {
	if income.ID == "" {
		income.ID = uuid.New().String()
	}
	incomes, err := r.incomes.load(ctx)
	if err != nil {
		return err
	}
	incomes = append(incomes, *income)
	return r.incomes.save(ctx, incomes)
}
