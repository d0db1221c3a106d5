package subscriber

import "context"

type Repository interface {
	Create(ctx context.Context, subscriber *Subscriber) error
	Update(ctx context.Context, subscriber *Subscriber) error

	// Delete removes the subscriber row. Calls are removed by the caller.
	Delete(ctx context.Context, id uint) error

	// GetBySID returns nil, nil when no subscriber matches
	GetBySID(ctx context.Context, sid string) (*Subscriber, error)

	// GetByPhoneNumber returns nil, nil when no subscriber matches
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*Subscriber, error)

	// GetByIDs returns the subscribers that exist among ids, keyed by internal ID
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*Subscriber, error)

	List(ctx context.Context) ([]*Subscriber, error)
}
