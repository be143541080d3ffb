package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/competition"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/faculty"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/performance"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/sport"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/standing"
	domainstore "github.com/riskibarqy/spartakiad-scoring/internal/domain/store"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/student"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/team"
)

type sequences struct {
	sportType   int64
	faculty     int64
	group       int64
	student     int64
	competition int64
	team        int64
	performance int64
}

type state struct {
	seq          sequences
	sportTypes   map[int64]sport.SportType
	faculties    map[int64]faculty.Faculty
	groups       map[int64]faculty.Group
	students     map[int64]student.Student
	competitions map[int64]competition.Competition
	teams        map[int64]team.Team
	performances map[int64]performance.Performance
	sportResults map[int64][]standing.SportResult
	totals       []standing.TotalPoints
}

func newState() *state {
	return &state{
		sportTypes:   make(map[int64]sport.SportType),
		faculties:    make(map[int64]faculty.Faculty),
		groups:       make(map[int64]faculty.Group),
		students:     make(map[int64]student.Student),
		competitions: make(map[int64]competition.Competition),
		teams:        make(map[int64]team.Team),
		performances: make(map[int64]performance.Performance),
		sportResults: make(map[int64][]standing.SportResult),
	}
}

func (s *state) clone() *state {
	out := &state{
		seq:          s.seq,
		sportTypes:   cloneMap(s.sportTypes),
		faculties:    cloneMap(s.faculties),
		groups:       cloneMap(s.groups),
		students:     cloneMap(s.students),
		competitions: cloneMap(s.competitions),
		teams:        make(map[int64]team.Team, len(s.teams)),
		performances: cloneMap(s.performances),
		sportResults: make(map[int64][]standing.SportResult, len(s.sportResults)),
		totals:       append([]standing.TotalPoints(nil), s.totals...),
	}
	for id, item := range s.teams {
		item.StudentIDs = append([]int64(nil), item.StudentIDs...)
		out.teams[id] = item
	}
	for id, rows := range s.sportResults {
		out.sportResults[id] = append([]standing.SportResult(nil), rows...)
	}
	return out
}

func cloneMap[T any](in map[int64]T) map[int64]T {
	out := make(map[int64]T, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func sortedValues[T any](in map[int64]T) []T {
	ids := make([]int64, 0, len(in))
	for id := range in {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, in[id])
	}
	return out
}

// access is how repositories reach a state: the committed one behind the
// store's locks, or a transaction's private draft.
type access interface {
	read(fn func(st *state))
	write(fn func(st *state) error) error
}

// Store keeps every table in process memory. Transactions work on a copy of
// the state that replaces the committed one only when fn succeeds, and run one
// at a time.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	st   *state
}

var (
	_ domainstore.Store      = (*Store)(nil)
	_ domainstore.Transactor = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{st: newState()}
}

func (s *Store) read(fn func(st *state)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.st)
}

// write applies fn directly to the committed state. It waits for any running
// transaction so the write is not lost when that transaction commits.
func (s *Store) write(fn func(st *state) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	draft := s.snapshot()
	if err := fn(draft); err != nil {
		return err
	}
	s.commit(draft)
	return nil
}

func (s *Store) snapshot() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.clone()
}

func (s *Store) commit(draft *state) {
	s.mu.Lock()
	s.st = draft
	s.mu.Unlock()
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, st domainstore.Store) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	draft := &txState{st: s.snapshot()}
	if err := fn(ctx, draft); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.commit(draft.st)
	return nil
}

func (s *Store) SportTypes() sport.Repository { return sportRepository{db: s} }
func (s *Store) Faculties() faculty.Repository { return facultyRepository{db: s} }
func (s *Store) Students() student.Repository { return studentRepository{db: s} }
func (s *Store) Competitions() competition.Repository { return competitionRepository{db: s} }
func (s *Store) Teams() team.Repository { return teamRepository{db: s} }
func (s *Store) Performances() performance.Repository { return performanceRepository{db: s} }
func (s *Store) Standings() standing.Repository { return standingRepository{db: s} }
func (s *Store) LockSportType(context.Context, int64) error { return nil }
func (s *Store) LockTotals(context.Context) error { return nil }

// Ping fails only when ctx is done.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) Truncate(_ context.Context) error {
	return s.write(func(st *state) error {
		*st = *newState()
		return nil
	})
}

// txState is the draft a transaction mutates. Only the goroutine running the
// transaction touches it.
type txState struct {
	st *state
}

func (t *txState) read(fn func(st *state)) {
	fn(t.st)
}

func (t *txState) write(fn func(st *state) error) error {
	return fn(t.st)
}

func (t *txState) SportTypes() sport.Repository { return sportRepository{db: t} }
func (t *txState) Faculties() faculty.Repository { return facultyRepository{db: t} }
func (t *txState) Students() student.Repository { return studentRepository{db: t} }
func (t *txState) Competitions() competition.Repository { return competitionRepository{db: t} }
func (t *txState) Teams() team.Repository { return teamRepository{db: t} }
func (t *txState) Performances() performance.Repository { return performanceRepository{db: t} }
func (t *txState) Standings() standing.Repository { return standingRepository{db: t} }

// Transactions are already serialized by Store.WithinTx.
func (t *txState) LockSportType(context.Context, int64) error { return nil }
func (t *txState) LockTotals(context.Context) error { return nil }

func (t *txState) Truncate(_ context.Context) error {
	*t.st = *newState()
	return nil
}
