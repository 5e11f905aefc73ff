package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/propadmin/prop-admin-backend/internal/registry/domain"
)

// PropertyRepository handles storage operations for the properties collection.
type PropertyRepository struct {
	properties collection[domain.Property]
}

func NewPropertyRepository(client *redis.Client) *PropertyRepository {
	return &PropertyRepository{
		properties: newCollection(client, propertiesKey, domain.SeedProperties),
	}
}

// List returns all properties in insertion order.
func (r *PropertyRepository) List(ctx context.Context) ([]domain.Property, error) {
	return r.properties.load(ctx)
}

// ListByOwner returns the properties owned by ownerID, preserving order.
func (r *PropertyRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Property, error) {
	properties, err := r.properties.load(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.Property, 0, len(properties))
	for _, p := range properties {
		if p.OwnerID == ownerID {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// GetByID returns the property with the given id.
func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	properties, err := r.properties.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range properties {
		if properties[i].ID == id {
			return &properties[i], nil
		}
	}
	return nil, domain.ErrPropertyNotFound
}

// Add appends a property and persists the full collection.
func (r *PropertyRepository) Add(ctx context.Context, property *domain.Property) error {
	if property.ID == "" {
		property.ID = uuid.New().String()
	}
	properties, err := r.properties.load(ctx)
	if err != nil {
		return err
	}
	properties = append(properties, *property)
	return r.properties.save(ctx, properties)
}

// Update replaces the stored property with the same id. Returns
// domain.ErrPropertyNotFound when the id is absent; the collection is left
// untouched in that case.
func (r *PropertyRepository) Update(ctx context.Context, property *domain.Property) error {
	properties, err := r.properties.load(ctx)
	if err != nil {
		return err
	}
	for i := range properties {
		if properties[i].ID == property.ID {
			properties[i] = *property
			return r.properties.save(ctx, properties)
		}
	}
	return domain.ErrPropertyNotFound
}

// Delete removes the property with the given id and persists the remainder.
// Returns domain.ErrPropertyNotFound when nothing matched; deleting twice
// leaves the collection unchanged.
func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	properties, err := r.properties.load(ctx)
	if err != nil {
		return err
	}
	remaining := make([]domain.Property, 0, len(properties))
	removed := false
	for _, p := range properties {
		if p.ID == id {
			removed = true
			continue
		}
		remaining = append(remaining, p)
	}
	if !removed {
		return domain.ErrPropertyNotFound
	}
	return r.properties.save(ctx, remaining)
}

// SetTenant updates the denormalized tenantId of the property, if it exists.
// A missing property is not an error here: the contract flow tolerates
// dangling property references.
func (r *PropertyRepository) SetTenant(ctx context.Context, propertyID, tenantID string) error {
	properties, err := r.properties.load(ctx)
	if err != nil {
		return err
	}
	for i := range properties {
		if properties[i].ID == propertyID {
			properties[i].TenantID = tenantID
			return r.properties.save(ctx, properties)
		}
	}
	return nil
}
