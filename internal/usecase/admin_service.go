package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/store"
	"github.com/riskibarqy/spartakiad-scoring/internal/platform/logging"
)

// CatalogInvalidator drops cached catalog reads after a bulk rewrite.
type CatalogInvalidator interface {
	Invalidate(ctx context.Context)
}

type SeedReport struct {
	Counts        SeedCounts
	Recalculation RecalculationReport
}

type AdminService struct {
	recalc      *RecalculationService
	dataset     SeedDataset
	invalidator CatalogInvalidator
	logger      *logging.Logger
}

func NewAdminService(
	recalc *RecalculationService,
	dataset SeedDataset,
	invalidator CatalogInvalidator,
	logger *logging.Logger,
) *AdminService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AdminService{
		recalc:      recalc,
		dataset:     dataset,
		invalidator: invalidator,
		logger:      logger,
	}
}

// ResetAndSeed wipes every table, loads the seed dataset and recomputes all
// derived data. No recomputation interleaves with it.
func (s *AdminService) ResetAndSeed(ctx context.Context) (SeedReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.ResetAndSeed")
	defer span.End()

	var counts SeedCounts
	report, err := s.recalc.ResetWith(ctx, func(ctx context.Context, st store.Store) error {
		if err := st.Truncate(ctx); err != nil {
			return fmt.Errorf("truncate: %w", err)
		}
		var seedErr error
		counts, seedErr = seedStore(ctx, st, s.dataset)
		return seedErr
	})
	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "reset and seed failed", "error", err)
		return SeedReport{}, err
	}

	s.logger.InfoContext(ctx, "store reset and seeded",
		"run_id", report.RunID,
		"faculties", counts.Faculties,
		"sport_types", counts.SportTypes,
		"students", counts.Students,
		"performances", counts.Performances,
	)
	return SeedReport{Counts: counts, Recalculation: report}, nil
}
