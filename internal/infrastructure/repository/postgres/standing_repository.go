package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/standing"
	qb "github.com/riskibarqy/spartakiad-scoring/internal/platform/querybuilder"
)

var sportResultColumns = []string{"faculty_id", "sport_type_id", "total_points", "place", "updated_at"}

type StandingRepository struct {
	db sqlx.ExtContext
}

func NewStandingRepository(db sqlx.ExtContext) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) ListSportResults(ctx context.Context, sportTypeID int64) ([]standing.SportResult, error) {
	query, args, err := qb.Select(sportResultColumns...).From("faculty_sport_results").
		Where(qb.Eq("sport_type_id", sportTypeID)).
		OrderBy("place", "faculty_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list sport results query: %w", err)
	}
	return r.selectSportResults(ctx, fmt.Sprintf("sport_type=%d", sportTypeID), query, args)
}

func (r *StandingRepository) ListAllSportResults(ctx context.Context) ([]standing.SportResult, error) {
	query, args, err := qb.Select(sportResultColumns...).From("faculty_sport_results").
		OrderBy("sport_type_id", "place", "faculty_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list all sport results query: %w", err)
	}
	return r.selectSportResults(ctx, "all", query, args)
}

func (r *StandingRepository) selectSportResults(ctx context.Context, label, query string, args []any) ([]standing.SportResult, error) {
	var rows []sportResultTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, dbError("list sport results "+label, err)
	}

	out := make([]standing.SportResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, standing.SportResult{
			FacultyID:   row.FacultyID,
			SportTypeID: row.SportTypeID,
			TotalPoints: row.TotalPoints,
			Place:       row.Place,
			UpdatedAt:   utc(row.UpdatedAt),
		})
	}
	return out, nil
}

// ReplaceSportResults drops the sport's rows and upserts items. Faculties
// missing from items lose their row.
func (r *StandingRepository) ReplaceSportResults(ctx context.Context, sportTypeID int64, items []standing.SportResult) error {
	clearQuery, clearArgs, err := qb.DeleteFrom("faculty_sport_results").
		Where(qb.Eq("sport_type_id", sportTypeID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear sport results query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return dbError(fmt.Sprintf("clear sport results sport_type=%d", sportTypeID), err)
	}
	if len(items) == 0 {
		return nil
	}

	insert := qb.InsertInto("faculty_sport_results").
		Columns("faculty_id", "sport_type_id", "total_points", "place").
		Suffix(`ON CONFLICT (faculty_id, sport_type_id) DO UPDATE SET
total_points = EXCLUDED.total_points,
place = EXCLUDED.place,
updated_at = NOW()`)
	for _, item := range items {
		insert.Values(item.FacultyID, sportTypeID, item.TotalPoints, item.Place)
	}
	query, args, err := insert.ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert sport results query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return dbError(fmt.Sprintf("upsert sport results sport_type=%d", sportTypeID), err)
	}
	return nil
}

func (r *StandingRepository) ListTotals(ctx context.Context) ([]standing.TotalPoints, error) {
	query, args, err := qb.Select("faculty_id", "total_points", "overall_place", "updated_at").
		From("faculty_total_points").
		OrderBy("overall_place", "faculty_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list totals query: %w", err)
	}

	var rows []totalPointsTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, dbError("list totals", err)
	}

	out := make([]standing.TotalPoints, 0, len(rows))
	for _, row := range rows {
		out = append(out, standing.TotalPoints{
			FacultyID:    row.FacultyID,
			TotalPoints:  row.TotalPoints,
			OverallPlace: row.OverallPlace,
			UpdatedAt:    utc(row.UpdatedAt),
		})
	}
	return out, nil
}

func (r *StandingRepository) ReplaceTotals(ctx context.Context, items []standing.TotalPoints) error {
	clearQuery, clearArgs, err := qb.DeleteFrom("faculty_total_points").ToSQL()
	if err != nil {
		return fmt.Errorf("build clear totals query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return dbError("clear totals", err)
	}
	if len(items) == 0 {
		return nil
	}

	insert := qb.InsertInto("faculty_total_points").
		Columns("faculty_id", "total_points", "overall_place").
		Suffix(`ON CONFLICT (faculty_id) DO UPDATE SET
total_points = EXCLUDED.total_points,
overall_place = EXCLUDED.overall_place,
updated_at = NOW()`)
	for _, item := range items {
		insert.Values(item.FacultyID, item.TotalPoints, item.OverallPlace)
	}
	query, args, err := insert.ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert totals query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return dbError("upsert totals", err)
	}
	return nil
}
