package usecase

import (
	"context"
	"fmt"
	"time"

	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/performance"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/scoring"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/sport"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/standing"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/store"
	"github.com/riskibarqy/spartakiad-scoring/internal/platform/logging"
)

// ScoredSport is a sport type whose performances carry freshly written
// points. Only scoreStage produces it.
type ScoredSport struct {
	sportType sport.SportType
	entries   []performance.Entry
	outcome   scoring.Outcome
}

func (s ScoredSport) SportType() sport.SportType {
	return s.sportType
}

func (s ScoredSport) Outcome() scoring.Outcome {
	return s.outcome
}

// SportStanding is the persisted faculty standing of one sport type. Only
// aggregateSportStage produces it.
type SportStanding struct {
	sportTypeID int64
	rows        []standing.SportResult
}

func (s SportStanding) SportTypeID() int64 {
	return s.sportTypeID
}

func (s SportStanding) Rows() []standing.SportResult {
	return append([]standing.SportResult(nil), s.rows...)
}

// OverallStanding is the persisted cross-sport rating.
type OverallStanding struct {
	rows []standing.TotalPoints
}

func (o OverallStanding) Rows() []standing.TotalPoints {
	return append([]standing.TotalPoints(nil), o.rows...)
}

type pipeline struct {
	logger *logging.Logger
	now    func() time.Time
}

func (p pipeline) scoreStage(ctx context.Context, st store.Store, sportTypeID int64) (ScoredSport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.pipeline.scoreStage")
	defer span.End()

	item, ok, err := st.SportTypes().GetByID(ctx, sportTypeID)
	if err != nil {
		return ScoredSport{}, crerr.Wrapf(err, "get sport type=%d", sportTypeID)
	}
	if !ok {
		return ScoredSport{}, fmt.Errorf("%w: sport_type=%d", ErrNotFound, sportTypeID)
	}

	entries, err := st.Performances().ListEntriesBySportType(ctx, sportTypeID)
	if err != nil {
		return ScoredSport{}, crerr.Wrapf(err, "list entries sport_type=%d", sportTypeID)
	}

	outcome := scoring.ScoreSport(item.Category, entries)
	for _, performanceID := range outcome.Malformed {
		p.logger.WarnContext(ctx, "malformed result ranked last",
			"sport_type_id", sportTypeID,
			"performance_id", performanceID,
			"category", string(item.Category),
		)
	}

	points := outcome.PointsByID()
	if len(points) > 0 {
		if err := st.Performances().UpdatePoints(ctx, points); err != nil {
			return ScoredSport{}, crerr.Wrapf(err, "update points sport_type=%d", sportTypeID)
		}
	}
	for i := range entries {
		entries[i].Points = points[entries[i].PerformanceID]
	}

	span.SetAttributes(
		attribute.Int64("sport_type_id", sportTypeID),
		attribute.Int("performances", len(entries)),
		attribute.Int("malformed", len(outcome.Malformed)),
	)
	return ScoredSport{sportType: item, entries: entries, outcome: outcome}, nil
}

func (p pipeline) aggregateSportStage(ctx context.Context, st store.Store, scored ScoredSport) (SportStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.pipeline.aggregateSportStage")
	defer span.End()

	sportTypeID := scored.sportType.ID
	faculties, err := st.Faculties().List(ctx)
	if err != nil {
		return SportStanding{}, crerr.Wrapf(err, "list faculties for sport_type=%d", sportTypeID)
	}

	rows := scoring.AggregateSport(sportTypeID, faculties, scored.entries)
	now := p.now().UTC()
	for i := range rows {
		rows[i].UpdatedAt = now
	}
	if err := st.Standings().ReplaceSportResults(ctx, sportTypeID, rows); err != nil {
		return SportStanding{}, crerr.Wrapf(err, "replace sport results sport_type=%d", sportTypeID)
	}

	return SportStanding{sportTypeID: sportTypeID, rows: rows}, nil
}

// totalsStage recomputes the overall rating from every stored sport standing.
// The standings argument names the sports refreshed in this run.
func (p pipeline) totalsStage(ctx context.Context, st store.Store, standings []SportStanding) (OverallStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.pipeline.totalsStage")
	defer span.End()
	span.SetAttributes(attribute.Int("refreshed_sports", len(standings)))

	faculties, err := st.Faculties().List(ctx)
	if err != nil {
		return OverallStanding{}, crerr.Wrap(err, "list faculties for totals")
	}
	results, err := st.Standings().ListAllSportResults(ctx)
	if err != nil {
		return OverallStanding{}, crerr.Wrap(err, "list sport results for totals")
	}

	rows := scoring.AggregateTotals(faculties, results)
	now := p.now().UTC()
	for i := range rows {
		rows[i].UpdatedAt = now
	}
	if err := st.Standings().ReplaceTotals(ctx, rows); err != nil {
		return OverallStanding{}, crerr.Wrap(err, "replace totals")
	}

	return OverallStanding{rows: rows}, nil
}
