package faculty

import "context"

// Repository describes faculty and group persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Faculty, error)
	GetByID(ctx context.Context, id int64) (Faculty, bool, error)
	Create(ctx context.Context, item Faculty) (Faculty, error)
	ListGroups(ctx context.Context) ([]Group, error)
	CreateGroup(ctx context.Context, item Group) (Group, error)
}
