package performance

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/student"
)

// ErrDuplicate is returned by repositories when a student already has a
// performance in the competition.
var ErrDuplicate = errors.New("duplicate performance")

// Result is the raw outcome as entered by a judge. Time-based sports use
// TimeResult, score-based sports use OriginalResult.
type Result struct {
	TimeResult     *string
	OriginalResult *float64
}

func (r Result) Empty() bool {
	return (r.TimeResult == nil || strings.TrimSpace(*r.TimeResult) == "") && r.OriginalResult == nil
}

// Performance is one student's result in one competition. Points are derived
// by recalculation and never entered directly.
type Performance struct {
	ID            int64
	StudentID     int64
	SportTypeID   int64
	CompetitionID int64
	JudgeID       *int64
	Result        Result
	Points        int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (p Performance) Validate() error {
	if p.StudentID <= 0 {
		return fmt.Errorf("performance student id is required")
	}
	if p.SportTypeID <= 0 {
		return fmt.Errorf("performance sport type id is required")
	}
	if p.CompetitionID <= 0 {
		return fmt.Errorf("performance competition id is required")
	}
	if p.Points < 0 {
		return fmt.Errorf("performance points must be >= 0")
	}

	return nil
}

// Entry is a performance joined with the student data the scorer partitions on.
type Entry struct {
	PerformanceID int64
	SportTypeID   int64
	StudentID     int64
	StudentName   string
	Gender        student.Gender
	GroupID       int64
	FacultyID     int64
	Result        Result
	Points        int
}
