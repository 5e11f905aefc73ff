package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/propadmin/prop-admin-backend/internal/registry/domain"
	"github.com/propadmin/prop-admin-backend/internal/registry/repository"
)

// Registry is the single gateway to persisted registry state. It is
// constructed once at startup and injected into every consumer.
//
// Every collection write is a whole-collection read-modify-write, so all
// mutating operations are serialized through one mutex. Readers go straight
// to the repositories.
type Registry struct {
	users      *repository.UserRepository
	properties *repository.PropertyRepository
	services   *repository.ServiceRepository
	expenses   *repository.ExpenseRepository
	incomes    *repository.IncomeRepository
	contracts  *repository.ContractRepository

	mu     sync.Mutex // held across every read-modify-write cycle
	logger *zap.Logger
}

// NewRegistry wires the per-collection repositories into a single service.
func NewRegistry(
	users *repository.UserRepository,
	properties *repository.PropertyRepository,
	services *repository.ServiceRepository,
	expenses *repository.ExpenseRepository,
	incomes *repository.IncomeRepository,
	contracts *repository.ContractRepository,
	logger *zap.Logger,
) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		users:      users,
		properties: properties,
		services:   services,
		expenses:   expenses,
		incomes:    incomes,
		contracts:  contracts,
		logger:     logger,
	}
}

// Users returns the full users collection.
func (r *Registry) Users(ctx context.Context) ([]domain.User, error) {
	return r.users.List(ctx)
}

// Login looks up a user by exact email match. Returns
// domain.ErrUserNotFound when no user matches.
func (r *Registry) Login(ctx context.Context, email string) (*domain.User, error) {
	return r.users.FindByEmail(ctx, email)
}

// Register appends a new user account.
func (r *Registry) Register(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.users.Add(ctx, user); err != nil {
		return err
	}
	r.logger.Info("user registered", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return nil
}

// Properties returns the properties of ownerID, or all properties when
// ownerID is empty.
func (r *Registry) Properties(ctx context.Context, ownerID string) ([]domain.Property, error) {
	if ownerID == "" {
		return r.properties.List(ctx)
	}
	return r.properties.ListByOwner(ctx, ownerID)
}

// Property returns a single property by id.
func (r *Registry) Property(ctx context.Context, id string) (*domain.Property, error) {
	return r.properties.GetByID(ctx, id)
}

// AddProperty appends a property.
func (r *Registry) AddProperty(ctx context.Context, property *domain.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.properties.Add(ctx, property); err != nil {
		return err
	}
	r.logger.Info("property added", zap.String("property_id", property.ID), zap.String("owner_id", property.OwnerID))
	return nil
}

// UpdateProperty replaces a stored property in place.
func (r *Registry) UpdateProperty(ctx context.Context, property *domain.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.properties.Update(ctx, property)
}

// DeleteProperty removes a property. The second delete of the same id
// returns domain.ErrPropertyNotFound and leaves the collection unchanged.
func (r *Registry) DeleteProperty(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.properties.Delete(ctx, id)
}

// AddPropertyImage appends an uploaded image URL to the property.
func (r *Registry) AddPropertyImage(ctx context.Context, propertyID, url string) (*domain.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	property, err := r.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	property.Images = append(property.Images, url)
	if err := r.properties.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// ServicesFor returns the recurring services of a property.
func (r *Registry) ServicesFor(ctx context.Context, propertyID string) ([]domain.Service, error) {
	return r.services.ListByProperty(ctx, propertyID)
}

// AddService appends a recurring service. The property reference is not
// validated.
func (r *Registry) AddService(ctx context.Context, service *domain.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.services.Add(ctx, service)
}

// DeleteService removes a recurring service.
func (r *Registry) DeleteService(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.services.Delete(ctx, id)
}

// ExpensesFor returns the expenses of a property.
func (r *Registry) ExpensesFor(ctx context.Context, propertyID string) ([]domain.Expense, error) {
	return r.expenses.ListByProperty(ctx, propertyID)
}

// AddExpense appends an expense record.
func (r *Registry) AddExpense(ctx context.Context, expense *domain.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.expenses.Add(ctx, expense)
}

// IncomesFor returns the incomes of a property.
func (r *Registry) IncomesFor(ctx context.Context, propertyID string) ([]domain.Income, error) {
	return r.incomes.ListByProperty(ctx, propertyID)
}

// AddIncome appends an income record.
func (r *Registry) AddIncome(ctx context.Context, income *domain.Income) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.incomes.Add(ctx, income)
}

// ContractsFor returns the contracts of a property, active and inactive.
func (r *Registry) ContractsFor(ctx context.Context, propertyID string) ([]domain.TenantContract, error) {
	return r.contracts.ListByProperty(ctx, propertyID)
}

// AddContract records a new tenant contract. Under the write lock it
// deactivates every other active contract of the property, appends the new
// one, and mirrors the tenant onto the property's tenantId. A contract for
// a property that does not exist still succeeds; only the mirror step is
// skipped.
func (r *Registry) AddContract(ctx context.Context, contract *domain.TenantContract) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.contracts.AddDeactivatingSiblings(ctx, contract); err != nil {
		return err
	}
	if err := r.properties.SetTenant(ctx, contract.PropertyID, contract.TenantID); err != nil {
		return err
	}
	r.logger.Info("contract added",
		zap.String("contract_id", contract.ID),
		zap.String("property_id", contract.PropertyID),
		zap.String("tenant_id", contract.TenantID),
	)
	return nil
}

// UpdateContract replaces a stored contract in place.
func (r *Registry) UpdateContract(ctx context.Context, contract *domain.TenantContract) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.contracts.Update(ctx, contract)
}

// ActiveContracts returns every active contract across all properties.
// Used by the contract update scheduler.
func (r *Registry) ActiveContracts(ctx context.Context) ([]domain.TenantContract, error) {
	contracts, err := r.contracts.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]domain.TenantContract, 0, len(contracts))
	for _, c := range contracts {
		if c.IsActive {
			active = append(active, c)
		}
	}
	return active, nil
}
