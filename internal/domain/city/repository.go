package city

import "context"

// Repository defines the interface for city tariff persistence
type Repository interface {
	// Create stores a city together with its discount tiers
	Create(ctx context.Context, city *City) error

	// Update replaces the city row and its discount tiers
	Update(ctx context.Context, city *City) error

	// Delete removes the city and its discount tiers. Calls are removed by the caller.
	Delete(ctx context.Context, id uint) error

	// GetBySID returns nil, nil when no city matches
	GetBySID(ctx context.Context, sid string) (*City, error)

	// GetByName returns nil, nil when no city matches
	GetByName(ctx context.Context, name string) (*City, error)

	// GetByIDs returns the cities that exist among ids, keyed by internal ID
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*City, error)

	// List returns every city with its discounts
	List(ctx context.Context) ([]*City, error)

	// ExistsByName checks if a city with the exact name exists
	ExistsByName(ctx context.Context, name string) (bool, error)
}
