package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/propadmin/prop-admin-backend/internal/registry/domain"
)

// ExpenseRepository handles storage operations for the expenses collection.
type ExpenseRepository struct {
	expenses collection[domain.Expense]
}

func NewExpenseRepository(client *redis.Client) *ExpenseRepository {
	return &ExpenseRepository{
		expenses: newCollection[domain.Expense](client, expensesKey, nil),
	}
}

// ListByProperty returns the expenses of a property in insertion order.
func (r *ExpenseRepository) ListByProperty(ctx context.Context, propertyID string) ([]domain.Expense, error) {
	expenses, err := r.expenses.load(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.PropertyID == propertyID {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// Add appends an expense and persists the full collection.
func (r *ExpenseRepository) Add(ctx context.Context, expense *domain.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	expenses, err := r.expenses.load(ctx)
	if err != nil {
		return err
	}
	expenses = append(expenses, *expense)
	return r.expenses.save(ctx, expenses)
}
