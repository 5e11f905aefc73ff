package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/propadmin/prop-admin-backend/internal/registry/domain"
)

// ServiceRepository handles storage operations for the services collection.
type ServiceRepository struct {
	services collection[domain.Service]
}

func NewServiceRepository(client *redis.Client) *ServiceRepository {
	return &ServiceRepository{
		services: newCollection[domain.Service](client, servicesKey, nil),
	}
}

// ListByProperty returns the services of a property in insertion order.
func (r *ServiceRepository) ListByProperty(ctx context.Context, propertyID string) ([]domain.Service, error) {
	services, err := r.services.load(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.Service, 0, len(services))
	for _, s := range services {
		if s.PropertyID == propertyID {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

// Add appends a service and persists the full collection. The property
// reference is not validated.
func (r *ServiceRepository) Add(ctx context.Context, service *domain.Service) error {
	if service.ID == "" {
		service.ID = uuid.New().String()
	}
	services, err := r.services.load(ctx)
	if err != nil {
		return err
	}
	services = append(services, *service)
	return r.services.save(ctx, services)
}

// Delete removes the service with the given id. Returns
// domain.ErrServiceNotFound when nothing matched.
func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	services, err := r.services.load(ctx)
	if err != nil {
		return err
	}
	remaining := make([]domain.Service, 0, len(services))
	removed := false
	for _, s := range services {
		if s.ID == id {
			removed = true
			continue
		}
		remaining = append(remaining, s)
	}
	if !removed {
		return domain.ErrServiceNotFound
	}
	return r.services.save(ctx, remaining)
}
