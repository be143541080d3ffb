package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/performance"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/store"
)

type CreatePerformanceInput struct {
	StudentID      int64
	SportTypeID    int64
	CompetitionID  int64
	JudgeID        *int64
	TimeResult     *string
	OriginalResult *float64
}

type UpdatePerformanceInput struct {
	PerformanceID  int64
	JudgeID        *int64
	TimeResult     *string
	OriginalResult *float64
}

// PerformanceService records raw results. Every write recomputes the affected
// sport type before it returns.
type PerformanceService struct {
	performances performance.Repository
	recalc       *RecalculationService
	now          func() time.Time
}

func NewPerformanceService(performances performance.Repository, recalc *RecalculationService) *PerformanceService {
	return &PerformanceService{
		performances: performances,
		recalc:       recalc,
		now:          time.Now,
	}
}

func (s *PerformanceService) Get(ctx context.Context, performanceID int64) (performance.Performance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformanceService.Get")
	defer span.End()

	if performanceID <= 0 {
		return performance.Performance{}, fmt.Errorf("%w: performance id must be > 0", ErrInvalidInput)
	}

	item, ok, err := s.performances.GetByID(ctx, performanceID)
	if err != nil {
		return performance.Performance{}, translateStoreError(fmt.Errorf("get performance=%d: %w", performanceID, err))
	}
	if !ok {
		return performance.Performance{}, fmt.Errorf("%w: performance=%d", ErrNotFound, performanceID)
	}

	return item, nil
}

func (s *PerformanceService) Create(ctx context.Context, input CreatePerformanceInput) (performance.Performance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformanceService.Create")
	defer span.End()

	now := s.now().UTC()
	item := performance.Performance{
		StudentID:     input.StudentID,
		SportTypeID:   input.SportTypeID,
		CompetitionID: input.CompetitionID,
		JudgeID:       input.JudgeID,
		Result: performance.Result{
			TimeResult:     input.TimeResult,
			OriginalResult: input.OriginalResult,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return performance.Performance{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var created performance.Performance
	_, err := s.recalc.applyAndRecalculate(ctx, item.SportTypeID, func(ctx context.Context, st store.Store) error {
		if err := checkPerformanceRefs(ctx, st, item); err != nil {
			return err
		}

		_, exists, err := st.Performances().FindByStudentCompetition(ctx, item.StudentID, item.CompetitionID)
		if err != nil {
			return fmt.Errorf("find existing performance: %w", err)
		}
		if exists {
			return fmt.Errorf("%w: student=%d already has a result in competition=%d", ErrDuplicateEntry, item.StudentID, item.CompetitionID)
		}

		created, err = st.Performances().Create(ctx, item)
		if err != nil {
			return fmt.Errorf("create performance: %w", err)
		}
		return nil
	})
	if err != nil {
		return performance.Performance{}, translateStoreError(err)
	}

	return s.Get(ctx, created.ID)
}

func (s *PerformanceService) Update(ctx context.Context, input UpdatePerformanceInput) (performance.Performance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformanceService.Update")
	defer span.End()

	current, err := s.Get(ctx, input.PerformanceID)
	if err != nil {
		return performance.Performance{}, err
	}

	_, err = s.recalc.applyAndRecalculate(ctx, current.SportTypeID, func(ctx context.Context, st store.Store) error {
		item, ok, err := st.Performances().GetByID(ctx, input.PerformanceID)
		if err != nil {
			return fmt.Errorf("get performance=%d: %w", input.PerformanceID, err)
		}
		if !ok {
			return fmt.Errorf("%w: performance=%d", ErrNotFound, input.PerformanceID)
		}

		item.JudgeID = input.JudgeID
		item.Result = performance.Result{
			TimeResult:     input.TimeResult,
			OriginalResult: input.OriginalResult,
		}
		item.UpdatedAt = s.now().UTC()
		if err := st.Performances().Update(ctx, item); err != nil {
			return fmt.Errorf("update performance=%d: %w", item.ID, err)
		}
		return nil
	})
	if err != nil {
		return performance.Performance{}, translateStoreError(err)
	}

	return s.Get(ctx, input.PerformanceID)
}

func (s *PerformanceService) Delete(ctx context.Context, performanceID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformanceService.Delete")
	defer span.End()

	current, err := s.Get(ctx, performanceID)
	if err != nil {
		return err
	}

	_, err = s.recalc.applyAndRecalculate(ctx, current.SportTypeID, func(ctx context.Context, st store.Store) error {
		_, ok, err := st.Performances().GetByID(ctx, performanceID)
		if err != nil {
			return fmt.Errorf("get performance=%d: %w", performanceID, err)
		}
		if !ok {
			return fmt.Errorf("%w: performance=%d", ErrNotFound, performanceID)
		}
		if err := st.Performances().Delete(ctx, performanceID); err != nil {
			return fmt.Errorf("delete performance=%d: %w", performanceID, err)
		}
		return nil
	})
	return translateStoreError(err)
}

func checkPerformanceRefs(ctx context.Context, st store.Store, item performance.Performance) error {
	if _, ok, err := st.SportTypes().GetByID(ctx, item.SportTypeID); err != nil {
		return fmt.Errorf("get sport type=%d: %w", item.SportTypeID, err)
	} else if !ok {
		return fmt.Errorf("%w: sport_type=%d", ErrNotFound, item.SportTypeID)
	}

	if _, ok, err := st.Students().GetByID(ctx, item.StudentID); err != nil {
		return fmt.Errorf("get student=%d: %w", item.StudentID, err)
	} else if !ok {
		return fmt.Errorf("%w: student=%d", ErrNotFound, item.StudentID)
	}

	comp, ok, err := st.Competitions().GetByID(ctx, item.CompetitionID)
	if err != nil {
		return fmt.Errorf("get competition=%d: %w", item.CompetitionID, err)
	}
	if !ok {
		return fmt.Errorf("%w: competition=%d", ErrNotFound, item.CompetitionID)
	}
	if comp.SportTypeID != item.SportTypeID {
		return fmt.Errorf("%w: competition=%d belongs to sport_type=%d, not %d", ErrInvalidInput, comp.ID, comp.SportTypeID, item.SportTypeID)
	}

	return nil
}
