package team

import "context"

// Repository describes team roster persistence needs from use cases.
type Repository interface {
	ListBySportType(ctx context.Context, sportTypeID int64) ([]Team, error)
	Create(ctx context.Context, item Team) (Team, error)
}
