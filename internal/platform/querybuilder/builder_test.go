package querybuilder

import (
	"database/sql"
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("sport_types").
		Where(Eq("category", "TEAM_SCORE"), In("id", []any{int64(1), int64(4)})).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM sport_types WHERE category = $1 AND id IN ($2, $3) ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "TEAM_SCORE" || args[2] != int64(4) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_JoinsAndEmptyIn(t *testing.T) {
	query, args, err := Select("p.id", "s.gender", "g.faculty_id").
		From("student_performances p").
		Join("students s", "s.id = p.student_id").
		Join("student_groups g", "g.id = s.group_id").
		Where(Eq("p.sport_type_id", int64(3)), In("p.id", nil)).
		OrderBy("p.id").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT p.id, s.gender, g.faculty_id FROM student_performances p JOIN students s ON s.id = p.student_id JOIN student_groups g ON g.id = s.group_id WHERE p.sport_type_id = $1 AND 1=0 ORDER BY p.id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(3) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_MultiRowWithSuffix(t *testing.T) {
	query, args, err := InsertInto("faculty_sport_results").
		Columns("faculty_id", "sport_type_id", "points").
		Values(int64(1), int64(2), 30).
		Values(int64(3), int64(2), 27).
		Suffix("ON CONFLICT (faculty_id, sport_type_id) DO UPDATE SET points = EXCLUDED.points").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO faculty_sport_results (faculty_id, sport_type_id, points) VALUES ($1, $2, $3), ($4, $5, $6) ON CONFLICT (faculty_id, sport_type_id) DO UPDATE SET points = EXCLUDED.points"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 6 || args[5] != 27 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := InsertInto("teams").Columns("a", "b").Values(1).ToSQL(); err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		Name     string         `db:"name"`
		Abbr     string         `db:"abbreviation"`
		Ignored  string         `db:"-"`
		Note     sql.NullString `db:"note,omitempty"`
		internal string
	}

	query, args, err := InsertModel("faculties", row{Name: "Физический", Abbr: "ФФ", internal: "x"}, "RETURNING id")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO faculties (name, abbreviation, note) VALUES ($1, $2, $3) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "Физический" {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := InsertModel("faculties", 42, ""); err == nil {
		t.Fatalf("expected error for non-struct model")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("student_performances").
		Set("time_result", "0:00:12.50").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", int64(9))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE student_performances SET time_result = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "0:00:12.50" || args[1] != int64(9) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("faculty_sport_results").
		Where(Eq("sport_type_id", int64(4))).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM faculty_sport_results WHERE sport_type_id = $1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(4) {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom(" ").ToSQL(); err == nil {
		t.Fatalf("expected error for empty table")
	}
}
