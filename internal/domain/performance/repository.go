package performance

import "context"

// Repository describes performance persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Performance, bool, error)
	FindByStudentCompetition(ctx context.Context, studentID, competitionID int64) (Performance, bool, error)
	Create(ctx context.Context, item Performance) (Performance, error)
	Update(ctx context.Context, item Performance) error
	Delete(ctx context.Context, id int64) error
	// ListEntriesBySportType returns entries ordered by performance id.
	ListEntriesBySportType(ctx context.Context, sportTypeID int64) ([]Entry, error)
	ListEntries(ctx context.Context) ([]Entry, error)
	UpdatePoints(ctx context.Context, pointsByID map[int64]int) error
}
