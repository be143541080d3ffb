package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/sport"
	qb "github.com/riskibarqy/spartakiad-scoring/internal/platform/querybuilder"
)

var sportTypeColumns = []string{"id", "name", "category", "created_at"}

type SportTypeRepository struct {
	db sqlx.ExtContext
}

func NewSportTypeRepository(db sqlx.ExtContext) *SportTypeRepository {
	return &SportTypeRepository{db: db}
}

func (r *SportTypeRepository) List(ctx context.Context) ([]sport.SportType, error) {
	query, args, err := qb.Select(sportTypeColumns...).From("sport_types").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list sport types query: %w", err)
	}

	var rows []sportTypeTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, dbError("list sport types", err)
	}

	out := make([]sport.SportType, 0, len(rows))
	for _, row := range rows {
		out = append(out, sportTypeFromRow(row))
	}
	return out, nil
}

func (r *SportTypeRepository) GetByID(ctx context.Context, id int64) (sport.SportType, bool, error) {
	query, args, err := qb.Select(sportTypeColumns...).From("sport_types").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return sport.SportType{}, false, fmt.Errorf("build get sport type query: %w", err)
	}

	var row sportTypeTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return sport.SportType{}, false, nil
		}
		return sport.SportType{}, false, dbError(fmt.Sprintf("get sport type id=%d", id), err)
	}

	return sportTypeFromRow(row), true, nil
}

func (r *SportTypeRepository) Create(ctx context.Context, item sport.SportType) (sport.SportType, error) {
	query, args, err := qb.InsertModel("sport_types", sportTypeInsertModel{
		Name:     item.Name,
		Category: string(item.Category),
	}, "RETURNING id")
	if err != nil {
		return sport.SportType{}, fmt.Errorf("build insert sport type query: %w", err)
	}

	if err := sqlx.GetContext(ctx, r.db, &item.ID, query, args...); err != nil {
		return sport.SportType{}, dbError("insert sport type", err)
	}
	return item, nil
}

func sportTypeFromRow(row sportTypeTableModel) sport.SportType {
	return sport.SportType{
		ID:       row.ID,
		Name:     row.Name,
		Category: sport.Category(row.Category),
	}
}
