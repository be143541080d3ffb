package postgres

import (
	"database/sql"
	"time"
)

type sportTypeTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Category  string    `db:"category"`
	CreatedAt time.Time `db:"created_at"`
}

type sportTypeInsertModel struct {
	Name     string `db:"name"`
	Category string `db:"category"`
}

type facultyTableModel struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Abbreviation string    `db:"abbreviation"`
	CreatedAt    time.Time `db:"created_at"`
}

type facultyInsertModel struct {
	Name         string `db:"name"`
	Abbreviation string `db:"abbreviation"`
}

type groupTableModel struct {
	ID        int64  `db:"id"`
	Number    string `db:"number"`
	FacultyID int64  `db:"faculty_id"`
}

type groupInsertModel struct {
	Number    string `db:"number"`
	FacultyID int64  `db:"faculty_id"`
}

type studentTableModel struct {
	ID         int64  `db:"id"`
	FirstName  string `db:"first_name"`
	LastName   string `db:"last_name"`
	MiddleName string `db:"middle_name"`
	Gender     string `db:"gender"`
	GroupID    int64  `db:"group_id"`
}

type studentInsertModel struct {
	FirstName  string `db:"first_name"`
	LastName   string `db:"last_name"`
	MiddleName string `db:"middle_name"`
	Gender     string `db:"gender"`
	GroupID    int64  `db:"group_id"`
}

type competitionTableModel struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	SportTypeID int64     `db:"sport_type_id"`
	Date        time.Time `db:"date"`
	Location    string    `db:"location"`
}

type competitionInsertModel struct {
	Name        string    `db:"name"`
	SportTypeID int64     `db:"sport_type_id"`
	Date        time.Time `db:"date"`
	Location    string    `db:"location"`
}

type teamTableModel struct {
	ID          int64 `db:"id"`
	SportTypeID int64 `db:"sport_type_id"`
	FacultyID   int64 `db:"faculty_id"`
}

type teamInsertModel struct {
	SportTypeID int64 `db:"sport_type_id"`
	FacultyID   int64 `db:"faculty_id"`
}

type teamMemberTableModel struct {
	TeamID    int64 `db:"team_id"`
	StudentID int64 `db:"student_id"`
}

type performanceTableModel struct {
	ID             int64           `db:"id"`
	StudentID      int64           `db:"student_id"`
	SportTypeID    int64           `db:"sport_type_id"`
	CompetitionID  int64           `db:"competition_id"`
	JudgeID        sql.NullInt64   `db:"judge_id"`
	TimeResult     sql.NullString  `db:"time_result"`
	OriginalResult sql.NullFloat64 `db:"original_result"`
	Points         int             `db:"points"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

type performanceInsertModel struct {
	StudentID      int64           `db:"student_id"`
	SportTypeID    int64           `db:"sport_type_id"`
	CompetitionID  int64           `db:"competition_id"`
	JudgeID        sql.NullInt64   `db:"judge_id"`
	TimeResult     sql.NullString  `db:"time_result"`
	OriginalResult sql.NullFloat64 `db:"original_result"`
	Points         int             `db:"points"`
}

// performanceEntryRow is a performance joined with its student and group.
type performanceEntryRow struct {
	PerformanceID  int64           `db:"performance_id"`
	SportTypeID    int64           `db:"sport_type_id"`
	StudentID      int64           `db:"student_id"`
	FirstName      string          `db:"first_name"`
	LastName       string          `db:"last_name"`
	MiddleName     string          `db:"middle_name"`
	Gender         string          `db:"gender"`
	GroupID        int64           `db:"group_id"`
	FacultyID      int64           `db:"faculty_id"`
	TimeResult     sql.NullString  `db:"time_result"`
	OriginalResult sql.NullFloat64 `db:"original_result"`
	Points         int             `db:"points"`
}

type sportResultTableModel struct {
	FacultyID   int64     `db:"faculty_id"`
	SportTypeID int64     `db:"sport_type_id"`
	TotalPoints int       `db:"total_points"`
	Place       int       `db:"place"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type totalPointsTableModel struct {
	FacultyID    int64     `db:"faculty_id"`
	TotalPoints  int       `db:"total_points"`
	OverallPlace int       `db:"overall_place"`
	UpdatedAt    time.Time `db:"updated_at"`
}
