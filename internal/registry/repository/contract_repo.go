package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/propadmin/prop-admin-backend/internal/registry/domain"
)

// ContractRepository handles storage operations for the tenant contracts
// collection.
type ContractRepository struct {
	contracts collection[domain.TenantContract]
}

func NewContractRepository(client *redis.Client) *ContractRepository {
	return &ContractRepository{
		contracts: newCollection[domain.TenantContract](client, contractsKey, nil),
	}
}

// List returns all contracts in insertion order.
func (r *ContractRepository) List(ctx context.Context) ([]domain.TenantContract, error) {
	return r.contracts.load(ctx)
}

// ListByProperty returns the contracts of a property in insertion order,
// active and inactive alike.
func (r *ContractRepository) ListByProperty(ctx context.Context, propertyID string) ([]domain.TenantContract, error) {
	contracts, err := r.contracts.load(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.TenantContract, 0, len(contracts))
	for _, c := range contracts {
		if c.PropertyID == propertyID {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// AddDeactivatingSiblings flips isActive off on every existing active
// contract of the same property, appends the new contract, and persists the
// collection in one write. The new contract is forced active.
func (r *ContractRepository) AddDeactivatingSiblings(ctx context.Context, contract *domain.TenantContract) error {
	if contract.ID == "" {
		contract.ID = uuid.New().String()
	}
	contract.IsActive = true

	contracts, err := r.contracts.load(ctx)
	if err != nil {
		return err
	}
	for i := range contracts {
		if contracts[i].PropertyID == contract.PropertyID && contracts[i].IsActive {
			contracts[i].IsActive = false
		}
	}
	contracts = append(contracts, *contract)
	return r.contracts.save(ctx, contracts)
}

// Update replaces the stored contract with the same id. Returns
// domain.ErrContractNotFound when the id is absent.
func (r *ContractRepository) Update(ctx context.Context, contract *domain.TenantContract) error {
	contracts, err := r.contracts.load(ctx)
	if err != nil {
		return err
	}
	for i := range contracts {
		if contracts[i].ID == contract.ID {
			contracts[i] = *contract
			return r.contracts.save(ctx, contracts)
		}
	}
	return domain.ErrContractNotFound
}
