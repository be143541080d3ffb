package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/team"
	qb "github.com/riskibarqy/spartakiad-scoring/internal/platform/querybuilder"
)

type TeamRepository struct {
	db sqlx.ExtContext
}

func NewTeamRepository(db sqlx.ExtContext) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListBySportType(ctx context.Context, sportTypeID int64) ([]team.Team, error) {
	query, args, err := qb.Select("id", "sport_type_id", "faculty_id").From("teams").
		Where(qb.Eq("sport_type_id", sportTypeID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, dbError(fmt.Sprintf("list teams sport_type=%d", sportTypeID), err)
	}
	if len(rows) == 0 {
		return []team.Team{}, nil
	}

	teamIDs := make([]any, 0, len(rows))
	for _, row := range rows {
		teamIDs = append(teamIDs, row.ID)
	}
	membersQuery, membersArgs, err := qb.Select("team_id", "student_id").From("team_members").
		Where(qb.In("team_id", teamIDs)).
		OrderBy("team_id", "position").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list team members query: %w", err)
	}

	var members []teamMemberTableModel
	if err := sqlx.SelectContext(ctx, r.db, &members, membersQuery, membersArgs...); err != nil {
		return nil, dbError(fmt.Sprintf("list team members sport_type=%d", sportTypeID), err)
	}
	studentsByTeam := make(map[int64][]int64, len(rows))
	for _, m := range members {
		studentsByTeam[m.TeamID] = append(studentsByTeam[m.TeamID], m.StudentID)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{
			ID:          row.ID,
			SportTypeID: row.SportTypeID,
			FacultyID:   row.FacultyID,
			StudentIDs:  studentsByTeam[row.ID],
		})
	}
	return out, nil
}

// Create inserts the team and its roster. Callers run it inside a transaction
// so a failed roster insert leaves no team behind.
func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	query, args, err := qb.InsertModel("teams", teamInsertModel{
		SportTypeID: item.SportTypeID,
		FacultyID:   item.FacultyID,
	}, "RETURNING id")
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}
	if err := sqlx.GetContext(ctx, r.db, &item.ID, query, args...); err != nil {
		return team.Team{}, dbError("insert team", err)
	}

	if len(item.StudentIDs) == 0 {
		return item, nil
	}
	insert := qb.InsertInto("team_members").Columns("team_id", "student_id", "position")
	for i, studentID := range item.StudentIDs {
		insert.Values(item.ID, studentID, i)
	}
	membersQuery, membersArgs, err := insert.ToSQL()
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team members query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, membersQuery, membersArgs...); err != nil {
		return team.Team{}, dbError(fmt.Sprintf("insert team members team=%d", item.ID), err)
	}

	return item, nil
}
