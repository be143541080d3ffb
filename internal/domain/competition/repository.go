package competition

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int64) (Competition, bool, error)
	ListBySportType(ctx context.Context, sportTypeID int64) ([]Competition, error)
	Create(ctx context.Context, item Competition) (Competition, error)
}
