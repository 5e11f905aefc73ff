package integration

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propadmin/prop-admin-backend/internal/registry/domain"
	"github.com/propadmin/prop-admin-backend/internal/registry/repository"
	"github.com/propadmin/prop-admin-backend/internal/registry/service"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	ctx := context.Background()
	err = client.Ping(ctx).Err()
	require.NoError(t, err)

	return client, mr
}

func setupRegistry(t *testing.T) (*service.Registry, func()) {
	client, mr := setupTestRedis(t)

	registry := service.NewRegistry(
		repository.NewUserRepository(client),
		repository.NewPropertyRepository(client),
		repository.NewServiceRepository(client),
		repository.NewExpenseRepository(client),
		repository.NewIncomeRepository(client),
		repository.NewContractRepository(client),
		nil,
	)

	cleanup := func() {
		client.Close()
		mr.Close()
	}
	return registry, cleanup
}

func TestRegistry_Login(t *testing.T) {
	registry, cleanup := setupRegistry(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("seeded owner logs in by email", func(t *testing.T) {
		user, err := registry.Login(ctx, "juan@demo.com")
		require.NoError(t, err)
		assert.Equal(t, "1", user.ID)
		assert.Equal(t, domain.RoleOwner, user.Role)
	})

	t.Run("unknown email is not found", func(t *testing.T) {
		_, err := registry.Login(ctx, "nope@demo.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestRegistry_ContractLifecycle(t *testing.T) {
	registry, cleanup := setupRegistry(t)
	defer cleanup()

	ctx := context.Background()

	// Fresh property owned by the seeded owner.
	p1 := &domain.Property{
		ID:       "p1",
		Name:     "Depto Norte",
		Type:     domain.PropertyApartment,
		Currency: domain.CurrencyUSD,
		OwnerID:  "1",
	}
	require.NoError(t, registry.AddProperty(ctx, p1))

	t.Run("first contract becomes active and sets the tenant", func(t *testing.T) {
		t1 := &domain.TenantContract{
			ID:         "t1",
			PropertyID: "p1",
			TenantID:   "2",
			StartDate:  "2024-01-01",
			EndDate:    "2026-01-01",
			Amount:     500,
			Currency:   domain.CurrencyUSD,
		}
		require.NoError(t, registry.AddContract(ctx, t1))

		contracts, err := registry.ContractsFor(ctx, "p1")
		require.NoError(t, err)
		require.Len(t, contracts, 1)
		assert.Equal(t, "t1", contracts[0].ID)
		assert.True(t, contracts[0].IsActive)

		property, err := registry.Property(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "2", property.TenantID)
	})

	t.Run("replacement contract deactivates the previous one", func(t *testing.T) {
		t2 := &domain.TenantContract{
			ID:         "t2",
			PropertyID: "p1",
			TenantID:   "3",
			StartDate:  "2024-06-01",
			EndDate:    "2026-06-01",
			Amount:     650,
			Currency:   domain.CurrencyUSD,
		}
		require.NoError(t, registry.AddContract(ctx, t2))

		contracts, err := registry.ContractsFor(ctx, "p1")
		require.NoError(t, err)
		require.Len(t, contracts, 2)
		assert.Equal(t, "t1", contracts[0].ID)
		assert.False(t, contracts[0].IsActive)
		assert.Equal(t, "t2", contracts[1].ID)
		assert.True(t, contracts[1].IsActive)

		property, err := registry.Property(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "3", property.TenantID)
	})

	t.Run("invariant holds for any number of prior inactive contracts", func(t *testing.T) {
		for _, id := range []string{"t3", "t4", "t5"} {
			contract := &domain.TenantContract{
				ID:         id,
				PropertyID: "p1",
				TenantID:   "2",
			}
			require.NoError(t, registry.AddContract(ctx, contract))
		}

		contracts, err := registry.ContractsFor(ctx, "p1")
		require.NoError(t, err)
		require.Len(t, contracts, 5)

		active := 0
		for _, c := range contracts {
			if c.IsActive {
				active++
				assert.Equal(t, "t5", c.ID)
			}
		}
		assert.Equal(t, 1, active)
	})

	t.Run("contract for a missing property still records, mirror is skipped", func(t *testing.T) {
		orphan := &domain.TenantContract{
			ID:         "orphan",
			PropertyID: "no-such-property",
			TenantID:   "9",
		}
		require.NoError(t, registry.AddContract(ctx, orphan))

		contracts, err := registry.ContractsFor(ctx, "no-such-property")
		require.NoError(t, err)
		require.Len(t, contracts, 1)
		assert.True(t, contracts[0].IsActive)
	})
}

func TestRegistry_PropertyScopedRecords(t *testing.T) {
	registry, cleanup := setupRegistry(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("services, expenses and incomes stay scoped to their property", func(t *testing.T) {
		require.NoError(t, registry.AddService(ctx, &domain.Service{
			ID: "s1", PropertyID: "prop-1", Name: "Expensas",
			Type: domain.ServiceExpenses, Periodicity: domain.PeriodicityMonthly,
		}))
		require.NoError(t, registry.AddExpense(ctx, &domain.Expense{
			ID: "e1", PropertyID: "prop-1", Date: "2024-02-10",
			Category: domain.ExpenseMaintenance, Amount: 50, Currency: domain.CurrencyARS,
		}))
		require.NoError(t, registry.AddIncome(ctx, &domain.Income{
			ID: "i1", PropertyID: "prop-1", TenantID: "2", Date: "2024-02-01",
			Amount: 800, Currency: domain.CurrencyUSD, Period: "Febrero 2024",
			Status: domain.IncomeConfirmed,
		}))

		services, err := registry.ServicesFor(ctx, "prop-1")
		require.NoError(t, err)
		assert.Len(t, services, 1)

		expenses, err := registry.ExpensesFor(ctx, "prop-1")
		require.NoError(t, err)
		assert.Len(t, expenses, 1)

		incomes, err := registry.IncomesFor(ctx, "prop-1")
		require.NoError(t, err)
		assert.Len(t, incomes, 1)

		// A different property sees none of them.
		services, err = registry.ServicesFor(ctx, "prop-2")
		require.NoError(t, err)
		assert.Empty(t, services)
	})

	t.Run("deleting a property leaves its records dangling", func(t *testing.T) {
		require.NoError(t, registry.DeleteProperty(ctx, "prop-1"))

		// No cascade: the expense is still there, pointing at nothing.
		expenses, err := registry.ExpensesFor(ctx, "prop-1")
		require.NoError(t, err)
		assert.Len(t, expenses, 1)
	})
}
