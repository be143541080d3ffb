package store

import (
	"context"
	"errors"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/competition"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/faculty"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/performance"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/sport"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/standing"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/student"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/team"
)

// Store exposes every repository bound to the same transaction.
type Store interface {
	SportTypes() sport.Repository
	Faculties() faculty.Repository
	Students() student.Repository
	Competitions() competition.Repository
	Teams() team.Repository
	Performances() performance.Repository
	Standings() standing.Repository

	// LockSportType blocks until no other transaction recomputes the sport type.
	// The lock is released when the transaction ends.
	LockSportType(ctx context.Context, sportTypeID int64) error
	// LockTotals serializes cross-sport aggregation.
	LockTotals(ctx context.Context) error
	// Truncate removes all rows, including catalogs.
	Truncate(ctx context.Context) error
}

// Transactor runs fn atomically: either every write made through the Store
// is committed, or none is.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, st Store) error) error
}

// ErrUnavailable marks failures of the storage backend itself, as opposed to
// rejected writes.
var ErrUnavailable = errors.New("storage unavailable")
