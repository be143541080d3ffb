package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/student"
	qb "github.com/riskibarqy/spartakiad-scoring/internal/platform/querybuilder"
)

type StudentRepository struct {
	db sqlx.ExtContext
}

func NewStudentRepository(db sqlx.ExtContext) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) GetByID(ctx context.Context, id int64) (student.Student, bool, error) {
	query, args, err := qb.Select("id", "first_name", "last_name", "middle_name", "gender", "group_id").
		From("students").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return student.Student{}, false, fmt.Errorf("build get student query: %w", err)
	}

	var row studentTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return student.Student{}, false, nil
		}
		return student.Student{}, false, dbError(fmt.Sprintf("get student id=%d", id), err)
	}

	return student.Student{
		ID:         row.ID,
		FirstName:  row.FirstName,
		LastName:   row.LastName,
		MiddleName: row.MiddleName,
		Gender:     student.Gender(row.Gender),
		GroupID:    row.GroupID,
	}, true, nil
}

func (r *StudentRepository) Create(ctx context.Context, item student.Student) (student.Student, error) {
	query, args, err := qb.InsertModel("students", studentInsertModel{
		FirstName:  item.FirstName,
		LastName:   item.LastName,
		MiddleName: item.MiddleName,
		Gender:     string(item.Gender),
		GroupID:    item.GroupID,
	}, "RETURNING id")
	if err != nil {
		return student.Student{}, fmt.Errorf("build insert student query: %w", err)
	}

	if err := sqlx.GetContext(ctx, r.db, &item.ID, query, args...); err != nil {
		return student.Student{}, dbError("insert student", err)
	}
	return item, nil
}
