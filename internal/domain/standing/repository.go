package standing

import "context"

// Repository stores derived standings. Every write replaces the full set for
// its scope.
type Repository interface {
	ListSportResults(ctx context.Context, sportTypeID int64) ([]SportResult, error)
	ListAllSportResults(ctx context.Context) ([]SportResult, error)
	ReplaceSportResults(ctx context.Context, sportTypeID int64, items []SportResult) error
	ListTotals(ctx context.Context) ([]TotalPoints, error)
	ReplaceTotals(ctx context.Context, items []TotalPoints) error
}
