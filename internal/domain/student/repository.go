package student

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int64) (Student, bool, error)
	Create(ctx context.Context, item Student) (Student, error)
}
