package postgres

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/competition"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/faculty"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/performance"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/sport"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/standing"
	domainstore "github.com/riskibarqy/spartakiad-scoring/internal/domain/store"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/student"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/team"
	"github.com/riskibarqy/spartakiad-scoring/internal/platform/resilience"
)

// Advisory lock namespaces. The second key is the sport type id, or zero for
// the totals lock.
const (
	advisoryLockSport  int32 = 7101
	advisoryLockTotals int32 = 7102
)

const truncateQuery = `TRUNCATE TABLE
faculty_total_points,
faculty_sport_results,
student_performances,
team_members,
teams,
competitions,
students,
sport_types,
student_groups,
faculties
RESTART IDENTITY CASCADE`

// repositories binds every repository to one executor, either the pool or a
// transaction.
type repositories struct {
	ext sqlx.ExtContext
}

func (r repositories) SportTypes() sport.Repository { return NewSportTypeRepository(r.ext) }
func (r repositories) Faculties() faculty.Repository { return NewFacultyRepository(r.ext) }
func (r repositories) Students() student.Repository { return NewStudentRepository(r.ext) }
func (r repositories) Competitions() competition.Repository { return NewCompetitionRepository(r.ext) }
func (r repositories) Teams() team.Repository { return NewTeamRepository(r.ext) }
func (r repositories) Performances() performance.Repository { return NewPerformanceRepository(r.ext) }
func (r repositories) Standings() standing.Repository { return NewStandingRepository(r.ext) }

// Store reads outside transactions and opens them through WithinTx.
type Store struct {
	repositories
	db      *sqlx.DB
	breaker *resilience.CircuitBreaker
}

// NewStore wires the pool. A disabled breaker config leaves transactions
// unguarded.
func NewStore(db *sqlx.DB, breakerCfg resilience.CircuitBreakerConfig) *Store {
	s := &Store{repositories: repositories{ext: db}, db: db}
	if breakerCfg.Enabled {
		s.breaker = resilience.NewCircuitBreaker(breakerCfg)
	}
	return s
}

// BreakerState reports the transaction breaker state, or closed when the
// breaker is disabled.
func (s *Store) BreakerState() resilience.CircuitState {
	if s.breaker == nil {
		return resilience.CircuitStateClosed
	}
	return s.breaker.State()
}

// WithinTx runs fn in a read-committed transaction. Consecutive connection
// failures open the breaker; while open, calls fail fast with an error
// marked domainstore.ErrUnavailable.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, st domainstore.Store) error) error {
	run := func() error { return s.runTx(ctx, fn) }
	if s.breaker == nil {
		return run()
	}

	err := s.breaker.Execute(run, isConnectionFailure)
	if crerr.Is(err, resilience.ErrCircuitOpen) {
		return crerr.Mark(err, domainstore.ErrUnavailable)
	}
	return err
}

func (s *Store) runTx(ctx context.Context, fn func(ctx context.Context, st domainstore.Store) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return dbError("begin tx", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(ctx, txStore{repositories: repositories{ext: tx}, tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return dbError("commit tx", err)
	}
	return nil
}

type txStore struct {
	repositories
	tx *sqlx.Tx
}

func (s txStore) LockSportType(ctx context.Context, sportTypeID int64) error {
	// Ids beyond int32 share a lock with a smaller id, which only serializes more.
	return s.advisoryLock(ctx, advisoryLockSport, int32(sportTypeID))
}

func (s txStore) LockTotals(ctx context.Context) error {
	return s.advisoryLock(ctx, advisoryLockTotals, 0)
}

func (s txStore) advisoryLock(ctx context.Context, namespace, key int32) error {
	if _, err := s.tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1, $2)`, namespace, key); err != nil {
		return dbError(fmt.Sprintf("advisory lock %d/%d", namespace, key), err)
	}
	return nil
}

func (s txStore) Truncate(ctx context.Context) error {
	if _, err := s.tx.ExecContext(ctx, truncateQuery); err != nil {
		return dbError("truncate", err)
	}
	return nil
}

var _ domainstore.Transactor = (*Store)(nil)
var _ domainstore.Store = txStore{}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return dbError("ping", err)
	}
	return nil
}
