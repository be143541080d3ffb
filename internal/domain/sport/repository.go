package sport

import "context"

// Repository describes sport type persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]SportType, error)
	GetByID(ctx context.Context, id int64) (SportType, bool, error)
	Create(ctx context.Context, item SportType) (SportType, error)
}
