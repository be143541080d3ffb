package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/panics"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/sport"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/standing"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/store"
	"github.com/riskibarqy/spartakiad-scoring/internal/platform/id"
	"github.com/riskibarqy/spartakiad-scoring/internal/platform/logging"
	"github.com/riskibarqy/spartakiad-scoring/internal/platform/resilience"
)

const (
	recalcStatusSuccess = "success"
	recalcStatusFailed  = "failed"

	defaultRecalcWorkers = 4
	maxRecalcWorkers     = 32
)

// RecalculationConfig tunes RecalculateAll.
type RecalculationConfig struct {
	Workers int
	Timeout time.Duration
}

type SportRecalculation struct {
	SportTypeID  int64
	SportName    string
	Status       string
	Performances int
	Malformed    int
	DurationMs   int64
	Message      string
}

type RecalculationReport struct {
	RunID        string
	StartedAt    time.Time
	DurationMs   int64
	SportCount   int
	SuccessCount int
	FailedCount  int
	Sports       []SportRecalculation
	Totals       []standing.TotalPoints
}

// RecalculationService owns every write to derived data. Lock order is
// admin (shared) -> sport type -> totals -> transaction.
type RecalculationService struct {
	tx       store.Transactor
	pipeline pipeline
	logger   *logging.Logger
	ids      id.Generator
	workers  int
	timeout  time.Duration
	now      func() time.Time

	adminMu    sync.RWMutex
	sportLocks resilience.KeyedMutex
	totalsMu   sync.Mutex
	flight     resilience.SingleFlight
}

func NewRecalculationService(
	tx store.Transactor,
	ids id.Generator,
	logger *logging.Logger,
	cfg RecalculationConfig,
) *RecalculationService {
	if logger == nil {
		logger = logging.Default()
	}
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}

	return &RecalculationService{
		tx:       tx,
		pipeline: pipeline{logger: logger, now: time.Now},
		logger:   logger,
		ids:      ids,
		workers:  normalizeRecalcWorkers(cfg.Workers),
		timeout:  cfg.Timeout,
		now:      time.Now,
	}
}

// RecalculateSport rescores one sport type and refreshes the overall rating
// in the same transaction. Concurrent calls for the same sport share one run.
func (s *RecalculationService) RecalculateSport(ctx context.Context, sportTypeID int64) (SportRecalculation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecalculationService.RecalculateSport")
	defer span.End()

	if sportTypeID <= 0 {
		return SportRecalculation{}, fmt.Errorf("%w: sport type id must be > 0", ErrInvalidInput)
	}

	value, err, shared := s.flight.Do("sport:"+strconv.FormatInt(sportTypeID, 10), func() (any, error) {
		start := s.now()
		scored, err := s.applyAndRecalculate(ctx, sportTypeID, nil)
		row := SportRecalculation{
			SportTypeID: sportTypeID,
			DurationMs:  s.now().Sub(start).Milliseconds(),
		}
		if err != nil {
			return row, err
		}
		row.SportName = scored.sportType.Name
		row.Status = recalcStatusSuccess
		row.Performances = len(scored.entries)
		row.Malformed = len(scored.outcome.Malformed)
		return row, nil
	})
	if shared {
		s.logger.DebugContext(ctx, "joined in-flight sport recalculation", "sport_type_id", sportTypeID)
	}
	if err != nil {
		return SportRecalculation{}, translateStoreError(err)
	}

	return value.(SportRecalculation), nil
}

// RecalculateAll rescores every sport type in parallel, then refreshes the
// overall rating once. A failing sport is reported and does not stop others.
func (s *RecalculationService) RecalculateAll(ctx context.Context) (RecalculationReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecalculationService.RecalculateAll")
	defer span.End()

	value, err, shared := s.flight.Do("recalculate:all", func() (any, error) {
		s.adminMu.RLock()
		defer s.adminMu.RUnlock()
		return s.runAll(ctx)
	})
	if shared {
		s.logger.InfoContext(ctx, "joined in-flight recalculation run")
	}
	if err != nil {
		return RecalculationReport{}, translateStoreError(err)
	}

	return value.(RecalculationReport), nil
}

// ResetWith runs fn exclusively: no recomputation runs while it executes. The
// derived data is recomputed from scratch before other work resumes.
func (s *RecalculationService) ResetWith(ctx context.Context, fn func(ctx context.Context, st store.Store) error) (RecalculationReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecalculationService.ResetWith")
	defer span.End()

	s.adminMu.Lock()
	defer s.adminMu.Unlock()

	if err := s.tx.WithinTx(ctx, fn); err != nil {
		return RecalculationReport{}, translateStoreError(err)
	}

	report, err := s.runAll(ctx)
	if err != nil {
		return RecalculationReport{}, translateStoreError(err)
	}
	return report, nil
}

// applyAndRecalculate runs mutate and the full pipeline for one sport type in
// a single transaction. mutate may be nil.
func (s *RecalculationService) applyAndRecalculate(
	ctx context.Context,
	sportTypeID int64,
	mutate func(ctx context.Context, st store.Store) error,
) (ScoredSport, error) {
	s.adminMu.RLock()
	defer s.adminMu.RUnlock()

	unlock, err := s.sportLocks.Lock(ctx, sportLockKey(sportTypeID))
	if err != nil {
		return ScoredSport{}, crerr.Wrapf(err, "wait for sport type=%d", sportTypeID)
	}
	defer unlock()

	s.totalsMu.Lock()
	defer s.totalsMu.Unlock()

	var scored ScoredSport
	err = s.tx.WithinTx(ctx, func(ctx context.Context, st store.Store) error {
		if err := st.LockSportType(ctx, sportTypeID); err != nil {
			return crerr.Wrapf(err, "lock sport type=%d", sportTypeID)
		}
		if err := st.LockTotals(ctx); err != nil {
			return crerr.Wrap(err, "lock totals")
		}
		if mutate != nil {
			if err := mutate(ctx, st); err != nil {
				return err
			}
		}

		var stageErr error
		scored, stageErr = s.pipeline.scoreStage(ctx, st, sportTypeID)
		if stageErr != nil {
			return stageErr
		}
		sportStanding, stageErr := s.pipeline.aggregateSportStage(ctx, st, scored)
		if stageErr != nil {
			return stageErr
		}
		_, stageErr = s.pipeline.totalsStage(ctx, st, []SportStanding{sportStanding})
		return stageErr
	})
	if err != nil {
		return ScoredSport{}, err
	}

	return scored, nil
}

// recomputeSport runs the per-sport stages in their own transaction. The
// caller holds the admin lock.
func (s *RecalculationService) recomputeSport(ctx context.Context, sportTypeID int64) (ScoredSport, SportStanding, error) {
	unlock, err := s.sportLocks.Lock(ctx, sportLockKey(sportTypeID))
	if err != nil {
		return ScoredSport{}, SportStanding{}, crerr.Wrapf(err, "wait for sport type=%d", sportTypeID)
	}
	defer unlock()

	var (
		scored        ScoredSport
		sportStanding SportStanding
	)
	err = s.tx.WithinTx(ctx, func(ctx context.Context, st store.Store) error {
		if err := st.LockSportType(ctx, sportTypeID); err != nil {
			return crerr.Wrapf(err, "lock sport type=%d", sportTypeID)
		}

		var stageErr error
		scored, stageErr = s.pipeline.scoreStage(ctx, st, sportTypeID)
		if stageErr != nil {
			return stageErr
		}
		sportStanding, stageErr = s.pipeline.aggregateSportStage(ctx, st, scored)
		return stageErr
	})
	if err != nil {
		return ScoredSport{}, SportStanding{}, err
	}

	return scored, sportStanding, nil
}

func (s *RecalculationService) refreshTotals(ctx context.Context, standings []SportStanding) (OverallStanding, error) {
	s.totalsMu.Lock()
	defer s.totalsMu.Unlock()

	var overall OverallStanding
	err := s.tx.WithinTx(ctx, func(ctx context.Context, st store.Store) error {
		if err := st.LockTotals(ctx); err != nil {
			return crerr.Wrap(err, "lock totals")
		}
		var stageErr error
		overall, stageErr = s.pipeline.totalsStage(ctx, st, standings)
		return stageErr
	})
	return overall, err
}

// runAll expects the caller to hold the admin lock.
func (s *RecalculationService) runAll(ctx context.Context) (RecalculationReport, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	runID, err := s.ids.NewID()
	if err != nil {
		return RecalculationReport{}, crerr.Wrap(err, "generate run id")
	}
	start := s.now()
	report := RecalculationReport{RunID: runID, StartedAt: start.UTC()}

	var sportTypes []sport.SportType
	if err := s.tx.WithinTx(ctx, func(ctx context.Context, st store.Store) error {
		var listErr error
		sportTypes, listErr = st.SportTypes().List(ctx)
		return listErr
	}); err != nil {
		return RecalculationReport{}, crerr.Wrap(err, "list sport types")
	}
	report.SportCount = len(sportTypes)

	rows, standings, err := s.recomputeSports(ctx, sportTypes)
	if err != nil {
		return RecalculationReport{}, err
	}
	report.Sports = rows
	for _, row := range rows {
		if row.Status == recalcStatusSuccess {
			report.SuccessCount++
			continue
		}
		report.FailedCount++
	}

	overall, err := s.refreshTotals(ctx, standings)
	if err != nil {
		return RecalculationReport{}, crerr.Wrap(err, "refresh totals")
	}
	report.Totals = overall.Rows()
	report.DurationMs = s.now().Sub(start).Milliseconds()

	s.logger.InfoContext(ctx, "recalculation run finished",
		"run_id", report.RunID,
		"sports", report.SportCount,
		"failed", report.FailedCount,
		"duration_ms", report.DurationMs,
	)
	return report, nil
}

func (s *RecalculationService) recomputeSports(ctx context.Context, sportTypes []sport.SportType) ([]SportRecalculation, []SportStanding, error) {
	if len(sportTypes) == 0 {
		return nil, nil, nil
	}

	workerCount := s.workers
	if workerCount > len(sportTypes) {
		workerCount = len(sportTypes)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu        sync.Mutex
		rows      = make([]SportRecalculation, 0, len(sportTypes))
		standings = make([]SportStanding, 0, len(sportTypes))
		workers   sync.WaitGroup
	)
	for _, item := range sportTypes {
		item := item
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			row, sportStanding, ok := s.recomputeIsolated(ctx, item)
			mu.Lock()
			rows = append(rows, row)
			if ok {
				standings = append(standings, sportStanding)
			}
			mu.Unlock()
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, nil, fmt.Errorf("submit sport type=%d to worker pool: %w", item.ID, err)
		}
	}
	workers.Wait()

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].SportTypeID < rows[j].SportTypeID
	})
	return rows, standings, nil
}

// recomputeIsolated converts errors and panics of one sport into a failed row.
func (s *RecalculationService) recomputeIsolated(ctx context.Context, item sport.SportType) (SportRecalculation, SportStanding, bool) {
	start := s.now()
	row := SportRecalculation{SportTypeID: item.ID, SportName: item.Name}

	var (
		scored        ScoredSport
		sportStanding SportStanding
		err           error
	)
	var catcher panics.Catcher
	catcher.Try(func() {
		scored, sportStanding, err = s.recomputeSport(ctx, item.ID)
	})
	if recovered := catcher.Recovered(); recovered != nil {
		err = recovered.AsError()
	}
	row.DurationMs = s.now().Sub(start).Milliseconds()

	if err != nil {
		row.Status = recalcStatusFailed
		row.Message = err.Error()
		s.logger.ErrorContext(ctx, "sport recalculation failed", "sport_type_id", item.ID, "error", err)
		return row, SportStanding{}, false
	}

	row.Status = recalcStatusSuccess
	row.Performances = len(scored.entries)
	row.Malformed = len(scored.outcome.Malformed)
	return row, sportStanding, true
}

func sportLockKey(sportTypeID int64) string {
	return "sport:" + strconv.FormatInt(sportTypeID, 10)
}

func normalizeRecalcWorkers(workers int) int {
	if workers <= 0 {
		return defaultRecalcWorkers
	}
	if workers > maxRecalcWorkers {
		return maxRecalcWorkers
	}
	return workers
}
