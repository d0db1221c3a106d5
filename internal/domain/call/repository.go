package call

import "context"

// Repository defines the interface for the call ledger. Calls are append-only:
// there is no update.
type Repository interface {
	Create(ctx context.Context, call *Call) error

	// GetBySID returns nil, nil when no call matches
	GetBySID(ctx context.Context, sid string) (*Call, error)

	Delete(ctx context.Context, id uint) error

	List(ctx context.Context) ([]*Call, error)
	ListBySubscriberID(ctx context.Context, subscriberID uint) ([]*Call, error)

	// CountBySubscriber returns the number of calls per subscriber ID.
	// Subscribers without calls are absent from the map.
	CountBySubscriber(ctx context.Context) (map[uint]int64, error)

	// DeleteBySubscriberID and DeleteByCityID are used by cascading deletes
	DeleteBySubscriberID(ctx context.Context, subscriberID uint) (int64, error)
	DeleteByCityID(ctx context.Context, cityID uint) (int64, error)

	// DeleteOrphans removes calls whose subscriber or city no longer exists
	DeleteOrphans(ctx context.Context) (int64, error)
}
