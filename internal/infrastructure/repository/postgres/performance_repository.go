package postgres

import (
	"context"
	"fmt"
	"sort"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/performance"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/student"
	qb "github.com/riskibarqy/spartakiad-scoring/internal/platform/querybuilder"
)

var performanceColumns = []string{
	"id",
	"student_id",
	"sport_type_id",
	"competition_id",
	"judge_id",
	"time_result",
	"original_result",
	"points",
	"created_at",
	"updated_at",
}

var performanceEntryColumns = []string{
	"p.id AS performance_id",
	"p.sport_type_id",
	"p.student_id",
	"s.first_name",
	"s.last_name",
	"s.middle_name",
	"s.gender",
	"s.group_id",
	"g.faculty_id",
	"p.time_result",
	"p.original_result",
	"p.points",
}

const updatePointsQuery = `
UPDATE student_performances AS p
SET points = v.points
FROM unnest($1::bigint[], $2::int[]) AS v(id, points)
WHERE p.id = v.id AND p.points IS DISTINCT FROM v.points`

type PerformanceRepository struct {
	db sqlx.ExtContext
}

func NewPerformanceRepository(db sqlx.ExtContext) *PerformanceRepository {
	return &PerformanceRepository{db: db}
}

func (r *PerformanceRepository) GetByID(ctx context.Context, id int64) (performance.Performance, bool, error) {
	return r.getOne(ctx, fmt.Sprintf("id=%d", id), qb.Eq("id", id))
}

func (r *PerformanceRepository) FindByStudentCompetition(ctx context.Context, studentID, competitionID int64) (performance.Performance, bool, error) {
	return r.getOne(ctx,
		fmt.Sprintf("student=%d competition=%d", studentID, competitionID),
		qb.Eq("student_id", studentID),
		qb.Eq("competition_id", competitionID),
	)
}

func (r *PerformanceRepository) getOne(ctx context.Context, label string, where ...qb.Condition) (performance.Performance, bool, error) {
	query, args, err := qb.Select(performanceColumns...).From("student_performances").
		Where(where...).
		Limit(1).
		ToSQL()
	if err != nil {
		return performance.Performance{}, false, fmt.Errorf("build get performance query: %w", err)
	}

	var row performanceTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return performance.Performance{}, false, nil
		}
		return performance.Performance{}, false, dbError("get performance "+label, err)
	}

	return performanceFromRow(row), true, nil
}

func (r *PerformanceRepository) Create(ctx context.Context, item performance.Performance) (performance.Performance, error) {
	query, args, err := qb.InsertModel("student_performances", performanceInsertModel{
		StudentID:      item.StudentID,
		SportTypeID:    item.SportTypeID,
		CompetitionID:  item.CompetitionID,
		JudgeID:        int64PtrToNull(item.JudgeID),
		TimeResult:     stringPtrToNull(item.Result.TimeResult),
		OriginalResult: floatPtrToNull(item.Result.OriginalResult),
		Points:         item.Points,
	}, "RETURNING id, created_at, updated_at")
	if err != nil {
		return performance.Performance{}, fmt.Errorf("build insert performance query: %w", err)
	}

	var row performanceTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isUniqueViolation(err) {
			return performance.Performance{}, fmt.Errorf("insert performance student=%d competition=%d: %w",
				item.StudentID, item.CompetitionID, crerr.Mark(err, performance.ErrDuplicate))
		}
		return performance.Performance{}, dbError("insert performance", err)
	}

	item.ID = row.ID
	item.CreatedAt = row.CreatedAt.UTC()
	item.UpdatedAt = row.UpdatedAt.UTC()
	return item, nil
}

// Update rewrites the judge and the raw result. Points are left to the next
// recalculation.
func (r *PerformanceRepository) Update(ctx context.Context, item performance.Performance) error {
	query, args, err := qb.Update("student_performances").
		Set("judge_id", int64PtrToNull(item.JudgeID)).
		Set("time_result", stringPtrToNull(item.Result.TimeResult)).
		Set("original_result", floatPtrToNull(item.Result.OriginalResult)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update performance query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return dbError(fmt.Sprintf("update performance id=%d", item.ID), err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return dbError(fmt.Sprintf("update performance id=%d rows affected", item.ID), err)
	}
	if affected == 0 {
		return fmt.Errorf("performance %d does not exist", item.ID)
	}
	return nil
}

func (r *PerformanceRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.DeleteFrom("student_performances").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete performance query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return dbError(fmt.Sprintf("delete performance id=%d", id), err)
	}
	return nil
}

func (r *PerformanceRepository) ListEntriesBySportType(ctx context.Context, sportTypeID int64) ([]performance.Entry, error) {
	return r.listEntries(ctx, fmt.Sprintf("sport_type=%d", sportTypeID), qb.Eq("p.sport_type_id", sportTypeID))
}

func (r *PerformanceRepository) ListEntries(ctx context.Context) ([]performance.Entry, error) {
	return r.listEntries(ctx, "all")
}

func (r *PerformanceRepository) listEntries(ctx context.Context, label string, where ...qb.Condition) ([]performance.Entry, error) {
	query, args, err := qb.Select(performanceEntryColumns...).
		From("student_performances p").
		Join("students s", "s.id = p.student_id").
		Join("student_groups g", "g.id = s.group_id").
		Where(where...).
		OrderBy("p.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list performance entries query: %w", err)
	}

	var rows []performanceEntryRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, dbError("list performance entries "+label, err)
	}

	out := make([]performance.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, performance.Entry{
			PerformanceID: row.PerformanceID,
			SportTypeID:   row.SportTypeID,
			StudentID:     row.StudentID,
			StudentName:   student.FormatDisplayName(row.LastName, row.FirstName, row.MiddleName),
			Gender:        student.Gender(row.Gender),
			GroupID:       row.GroupID,
			FacultyID:     row.FacultyID,
			Result: performance.Result{
				TimeResult:     nullStringPtr(row.TimeResult),
				OriginalResult: nullFloatPtr(row.OriginalResult),
			},
			Points: row.Points,
		})
	}
	return out, nil
}

// UpdatePoints writes all points in one statement. Rows whose points did not
// change are not touched.
func (r *PerformanceRepository) UpdatePoints(ctx context.Context, pointsByID map[int64]int) error {
	if len(pointsByID) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(pointsByID))
	for id := range pointsByID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	points := make([]int64, 0, len(ids))
	for _, id := range ids {
		points = append(points, int64(pointsByID[id]))
	}

	if _, err := r.db.ExecContext(ctx, updatePointsQuery, pq.Array(ids), pq.Array(points)); err != nil {
		return dbError(fmt.Sprintf("update points for %d performances", len(ids)), err)
	}
	return nil
}

func performanceFromRow(row performanceTableModel) performance.Performance {
	return performance.Performance{
		ID:            row.ID,
		StudentID:     row.StudentID,
		SportTypeID:   row.SportTypeID,
		CompetitionID: row.CompetitionID,
		JudgeID:       nullInt64Ptr(row.JudgeID),
		Result: performance.Result{
			TimeResult:     nullStringPtr(row.TimeResult),
			OriginalResult: nullFloatPtr(row.OriginalResult),
		},
		Points:    row.Points,
		CreatedAt: utc(row.CreatedAt),
		UpdatedAt: utc(row.UpdatedAt),
	}
}

func utc(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
