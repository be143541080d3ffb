package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/competition"
	qb "github.com/riskibarqy/spartakiad-scoring/internal/platform/querybuilder"
)

var competitionColumns = []string{"id", "name", "sport_type_id", "date", "location"}

type CompetitionRepository struct {
	db sqlx.ExtContext
}

func NewCompetitionRepository(db sqlx.ExtContext) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) GetByID(ctx context.Context, id int64) (competition.Competition, bool, error) {
	query, args, err := qb.Select(competitionColumns...).From("competitions").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return competition.Competition{}, false, fmt.Errorf("build get competition query: %w", err)
	}

	var row competitionTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return competition.Competition{}, false, nil
		}
		return competition.Competition{}, false, dbError(fmt.Sprintf("get competition id=%d", id), err)
	}

	return competitionFromRow(row), true, nil
}

func (r *CompetitionRepository) ListBySportType(ctx context.Context, sportTypeID int64) ([]competition.Competition, error) {
	query, args, err := qb.Select(competitionColumns...).From("competitions").
		Where(qb.Eq("sport_type_id", sportTypeID)).
		OrderBy("date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list competitions query: %w", err)
	}

	var rows []competitionTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, dbError(fmt.Sprintf("list competitions sport_type=%d", sportTypeID), err)
	}

	out := make([]competition.Competition, 0, len(rows))
	for _, row := range rows {
		out = append(out, competitionFromRow(row))
	}
	return out, nil
}

func (r *CompetitionRepository) Create(ctx context.Context, item competition.Competition) (competition.Competition, error) {
	query, args, err := qb.InsertModel("competitions", competitionInsertModel{
		Name:        item.Name,
		SportTypeID: item.SportTypeID,
		Date:        item.Date,
		Location:    item.Location,
	}, "RETURNING id")
	if err != nil {
		return competition.Competition{}, fmt.Errorf("build insert competition query: %w", err)
	}

	if err := sqlx.GetContext(ctx, r.db, &item.ID, query, args...); err != nil {
		return competition.Competition{}, dbError("insert competition", err)
	}
	return item, nil
}

func competitionFromRow(row competitionTableModel) competition.Competition {
	return competition.Competition{
		ID:          row.ID,
		Name:        row.Name,
		SportTypeID: row.SportTypeID,
		Date:        row.Date.UTC(),
		Location:    row.Location,
	}
}
