package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/faculty"
	qb "github.com/riskibarqy/spartakiad-scoring/internal/platform/querybuilder"
)

type FacultyRepository struct {
	db sqlx.ExtContext
}

func NewFacultyRepository(db sqlx.ExtContext) *FacultyRepository {
	return &FacultyRepository{db: db}
}

func (r *FacultyRepository) List(ctx context.Context) ([]faculty.Faculty, error) {
	query, args, err := qb.Select("id", "name", "abbreviation", "created_at").From("faculties").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list faculties query: %w", err)
	}

	var rows []facultyTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, dbError("list faculties", err)
	}

	out := make([]faculty.Faculty, 0, len(rows))
	for _, row := range rows {
		out = append(out, faculty.Faculty{ID: row.ID, Name: row.Name, Abbreviation: row.Abbreviation})
	}
	return out, nil
}

func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (faculty.Faculty, bool, error) {
	query, args, err := qb.Select("id", "name", "abbreviation", "created_at").From("faculties").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return faculty.Faculty{}, false, fmt.Errorf("build get faculty query: %w", err)
	}

	var row facultyTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return faculty.Faculty{}, false, nil
		}
		return faculty.Faculty{}, false, dbError(fmt.Sprintf("get faculty id=%d", id), err)
	}

	return faculty.Faculty{ID: row.ID, Name: row.Name, Abbreviation: row.Abbreviation}, true, nil
}

func (r *FacultyRepository) Create(ctx context.Context, item faculty.Faculty) (faculty.Faculty, error) {
	query, args, err := qb.InsertModel("faculties", facultyInsertModel{
		Name:         item.Name,
		Abbreviation: item.Abbreviation,
	}, "RETURNING id")
	if err != nil {
		return faculty.Faculty{}, fmt.Errorf("build insert faculty query: %w", err)
	}

	if err := sqlx.GetContext(ctx, r.db, &item.ID, query, args...); err != nil {
		return faculty.Faculty{}, dbError("insert faculty", err)
	}
	return item, nil
}

func (r *FacultyRepository) ListGroups(ctx context.Context) ([]faculty.Group, error) {
	query, args, err := qb.Select("id", "number", "faculty_id").From("student_groups").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list groups query: %w", err)
	}

	var rows []groupTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, dbError("list groups", err)
	}

	out := make([]faculty.Group, 0, len(rows))
	for _, row := range rows {
		out = append(out, faculty.Group{ID: row.ID, Number: row.Number, FacultyID: row.FacultyID})
	}
	return out, nil
}

func (r *FacultyRepository) CreateGroup(ctx context.Context, item faculty.Group) (faculty.Group, error) {
	query, args, err := qb.InsertModel("student_groups", groupInsertModel{
		Number:    item.Number,
		FacultyID: item.FacultyID,
	}, "RETURNING id")
	if err != nil {
		return faculty.Group{}, fmt.Errorf("build insert group query: %w", err)
	}

	if err := sqlx.GetContext(ctx, r.db, &item.ID, query, args...); err != nil {
		return faculty.Group{}, dbError("insert group", err)
	}
	return item, nil
}
