package httpapi

import (
	"time"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/competition"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/faculty"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/performance"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/sport"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/team"
	"github.com/riskibarqy/spartakiad-scoring/internal/usecase"
)

type createSportTypeRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Category string `json:"category" validate:"omitempty,max=32"`
}

type createCompetitionRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	SportTypeID int64  `json:"sport_type_id" validate:"required,gt=0"`
	Date        string `json:"date" validate:"required"`
	Location    string `json:"location" validate:"omitempty,max=200"`
}

type createTeamRequest struct {
	SportTypeID int64   `json:"sport_type_id" validate:"required,gt=0"`
	FacultyID   int64   `json:"faculty_id" validate:"required,gt=0"`
	StudentIDs  []int64 `json:"student_ids" validate:"required,min=1,dive,gt=0"`
}

type createPerformanceRequest struct {
	StudentID      int64    `json:"student_id" validate:"required,gt=0"`
	SportTypeID    int64    `json:"sport_type_id" validate:"required,gt=0"`
	CompetitionID  int64    `json:"competition_id" validate:"required,gt=0"`
	JudgeID        *int64   `json:"judge_id" validate:"omitempty,gt=0"`
	TimeResult     *string  `json:"time_result" validate:"omitempty,max=32"`
	OriginalResult *float64 `json:"original_result"`
}

type updatePerformanceRequest struct {
	JudgeID        *int64   `json:"judge_id" validate:"omitempty,gt=0"`
	TimeResult     *string  `json:"time_result" validate:"omitempty,max=32"`
	OriginalResult *float64 `json:"original_result"`
}

type facultyDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type sportTypeDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type competitionDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	SportTypeID int64  `json:"sport_type_id"`
	Date        string `json:"date"`
	Location    string `json:"location,omitempty"`
}

type teamDTO struct {
	ID          int64   `json:"id"`
	SportTypeID int64   `json:"sport_type_id"`
	FacultyID   int64   `json:"faculty_id"`
	StudentIDs  []int64 `json:"student_ids"`
}

type performanceDTO struct {
	ID             int64    `json:"id"`
	StudentID      int64    `json:"student_id"`
	SportTypeID    int64    `json:"sport_type_id"`
	CompetitionID  int64    `json:"competition_id"`
	JudgeID        *int64   `json:"judge_id,omitempty"`
	TimeResult     *string  `json:"time_result,omitempty"`
	OriginalResult *float64 `json:"original_result,omitempty"`
	Points         int      `json:"points"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

type rankedPerformanceDTO struct {
	Place          int      `json:"place"`
	PerformanceID  int64    `json:"performance_id"`
	StudentID      int64    `json:"student_id"`
	StudentName    string   `json:"student_name"`
	Gender         string   `json:"gender"`
	GroupID        int64    `json:"group_id"`
	FacultyID      int64    `json:"faculty_id"`
	TimeResult     *string  `json:"time_result,omitempty"`
	OriginalResult *float64 `json:"original_result,omitempty"`
	Points         int      `json:"points"`
}

type facultyStandingDTO struct {
	Place        int    `json:"place"`
	FacultyID    int64  `json:"faculty_id"`
	FacultyName  string `json:"faculty_name"`
	Abbreviation string `json:"abbreviation"`
	TotalPoints  int    `json:"total_points"`
}

type sportRecalculationDTO struct {
	SportTypeID  int64  `json:"sport_type_id"`
	SportName    string `json:"sport_name,omitempty"`
	Status       string `json:"status"`
	Performances int    `json:"performances"`
	Malformed    int    `json:"malformed"`
	DurationMs   int64  `json:"duration_ms"`
	Message      string `json:"message,omitempty"`
}

type totalPointsDTO struct {
	FacultyID    int64 `json:"faculty_id"`
	TotalPoints  int   `json:"total_points"`
	OverallPlace int   `json:"overall_place"`
}

type recalculationReportDTO struct {
	RunID        string                  `json:"run_id"`
	StartedAt    string                  `json:"started_at"`
	DurationMs   int64                   `json:"duration_ms"`
	SportCount   int                     `json:"sport_count"`
	SuccessCount int                     `json:"success_count"`
	FailedCount  int                     `json:"failed_count"`
	Sports       []sportRecalculationDTO `json:"sports"`
	Totals       []totalPointsDTO        `json:"totals"`
}

type seedCountsDTO struct {
	Faculties    int `json:"faculties"`
	Groups       int `json:"groups"`
	SportTypes   int `json:"sport_types"`
	Students     int `json:"students"`
	Competitions int `json:"competitions"`
	Teams        int `json:"teams"`
	Performances int `json:"performances"`
}

type seedReportDTO struct {
	Counts        seedCountsDTO          `json:"counts"`
	Recalculation recalculationReportDTO `json:"recalculation"`
}

func facultyToDTO(v faculty.Faculty) facultyDTO {
	return facultyDTO{ID: v.ID, Name: v.Name, Abbreviation: v.Abbreviation}
}

func sportTypeToDTO(v sport.SportType) sportTypeDTO {
	return sportTypeDTO{ID: v.ID, Name: v.Name, Category: string(v.Category)}
}

func competitionToDTO(v competition.Competition) competitionDTO {
	return competitionDTO{
		ID:          v.ID,
		Name:        v.Name,
		SportTypeID: v.SportTypeID,
		Date:        v.Date.UTC().Format(time.DateOnly),
		Location:    v.Location,
	}
}

func teamToDTO(v team.Team) teamDTO {
	ids := v.StudentIDs
	if ids == nil {
		ids = []int64{}
	}
	return teamDTO{ID: v.ID, SportTypeID: v.SportTypeID, FacultyID: v.FacultyID, StudentIDs: ids}
}

func performanceToDTO(v performance.Performance) performanceDTO {
	return performanceDTO{
		ID:             v.ID,
		StudentID:      v.StudentID,
		SportTypeID:    v.SportTypeID,
		CompetitionID:  v.CompetitionID,
		JudgeID:        v.JudgeID,
		TimeResult:     v.Result.TimeResult,
		OriginalResult: v.Result.OriginalResult,
		Points:         v.Points,
		CreatedAt:      formatTime(v.CreatedAt),
		UpdatedAt:      formatTime(v.UpdatedAt),
	}
}

func rankedPerformanceToDTO(v usecase.RankedPerformance) rankedPerformanceDTO {
	return rankedPerformanceDTO{
		Place:          v.Place,
		PerformanceID:  v.Entry.PerformanceID,
		StudentID:      v.Entry.StudentID,
		StudentName:    v.Entry.StudentName,
		Gender:         string(v.Entry.Gender),
		GroupID:        v.Entry.GroupID,
		FacultyID:      v.Entry.FacultyID,
		TimeResult:     v.Entry.Result.TimeResult,
		OriginalResult: v.Entry.Result.OriginalResult,
		Points:         v.Entry.Points,
	}
}

func facultyStandingToDTO(v usecase.FacultyStanding) facultyStandingDTO {
	return facultyStandingDTO{
		Place:        v.Place,
		FacultyID:    v.Faculty.ID,
		FacultyName:  v.Faculty.Name,
		Abbreviation: v.Faculty.Abbreviation,
		TotalPoints:  v.TotalPoints,
	}
}

func facultyStandingsToDTO(items []usecase.FacultyStanding) []facultyStandingDTO {
	out := make([]facultyStandingDTO, 0, len(items))
	for _, item := range items {
		out = append(out, facultyStandingToDTO(item))
	}
	return out
}

func recalculationReportToDTO(v usecase.RecalculationReport) recalculationReportDTO {
	sports := make([]sportRecalculationDTO, 0, len(v.Sports))
	for _, s := range v.Sports {
		sports = append(sports, sportRecalculationToDTO(s))
	}
	totals := make([]totalPointsDTO, 0, len(v.Totals))
	for _, t := range v.Totals {
		totals = append(totals, totalPointsDTO{FacultyID: t.FacultyID, TotalPoints: t.TotalPoints, OverallPlace: t.OverallPlace})
	}

	return recalculationReportDTO{
		RunID:        v.RunID,
		StartedAt:    formatTime(v.StartedAt),
		DurationMs:   v.DurationMs,
		SportCount:   v.SportCount,
		SuccessCount: v.SuccessCount,
		FailedCount:  v.FailedCount,
		Sports:       sports,
		Totals:       totals,
	}
}

func sportRecalculationToDTO(v usecase.SportRecalculation) sportRecalculationDTO {
	return sportRecalculationDTO{
		SportTypeID:  v.SportTypeID,
		SportName:    v.SportName,
		Status:       v.Status,
		Performances: v.Performances,
		Malformed:    v.Malformed,
		DurationMs:   v.DurationMs,
		Message:      v.Message,
	}
}

func seedReportToDTO(v usecase.SeedReport) seedReportDTO {
	return seedReportDTO{
		Counts: seedCountsDTO{
			Faculties:    v.Counts.Faculties,
			Groups:       v.Counts.Groups,
			SportTypes:   v.Counts.SportTypes,
			Students:     v.Counts.Students,
			Competitions: v.Counts.Competitions,
			Teams:        v.Counts.Teams,
			Performances: v.Counts.Performances,
		},
		Recalculation: recalculationReportToDTO(v.Recalculation),
	}
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
