package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/sport"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/student"
)

func TestCatalogService_CreateSportType_Category(t *testing.T) {
	w := newTournament(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   CreateSportTypeInput
		want    sport.Category
		wantErr error
	}{
		{name: "derived from name", input: CreateSportTypeInput{Name: "Баскетбол 3x3"}, want: sport.CategoryTeamScore},
		{name: "derived time sport", input: CreateSportTypeInput{Name: "Плавание 50м"}, want: sport.CategoryIndividualTime},
		{name: "explicit wins over name", input: CreateSportTypeInput{Name: "Футбол", Category: "individual_score"}, want: sport.CategoryIndividualScore},
		{name: "unknown category", input: CreateSportTypeInput{Name: "Гиря", Category: "HEAVY"}, wantErr: ErrInvalidInput},
		{name: "blank name", input: CreateSportTypeInput{Name: "  "}, wantErr: ErrInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := w.catalog.CreateSportType(ctx, tc.input)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("create sport type: %v", err)
			}
			if got.Category != tc.want {
				t.Fatalf("unexpected category: got=%s want=%s", got.Category, tc.want)
			}
		})
	}
}

func TestCatalogService_CreateCompetition(t *testing.T) {
	w := newTournament(t)
	ctx := context.Background()
	sportID, _ := w.sport(t, "Шахматы", sport.CategoryIndividualScore)

	created, err := w.catalog.CreateCompetition(ctx, CreateCompetitionInput{
		Name:        "Блиц",
		SportTypeID: sportID,
		Date:        time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
		Location:    "Актовый зал",
	})
	if err != nil {
		t.Fatalf("create competition: %v", err)
	}
	items, err := w.catalog.ListCompetitions(ctx, sportID)
	if err != nil {
		t.Fatalf("list competitions: %v", err)
	}
	if len(items) != 2 || items[1].ID != created.ID {
		t.Fatalf("unexpected competitions: %+v", items)
	}

	_, err = w.catalog.CreateCompetition(ctx, CreateCompetitionInput{Name: "Блиц", SportTypeID: 404, Date: time.Now()})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown sport, got %v", err)
	}
}

func TestCatalogService_CreateTeam(t *testing.T) {
	w := newTournament(t, "ИМИТ", "ФТИ")
	ctx := context.Background()
	football, _ := w.sport(t, "Футбол", sport.CategoryTeamScore)
	chess, _ := w.sport(t, "Шахматы", sport.CategoryIndividualScore)
	own1 := w.student(t, w.faculty(0), student.GenderMale)
	own2 := w.student(t, w.faculty(0), student.GenderMale)
	foreign := w.student(t, w.faculty(1), student.GenderMale)

	created, err := w.catalog.CreateTeam(ctx, CreateTeamInput{SportTypeID: football, FacultyID: w.faculty(0), StudentIDs: []int64{own1, own2}})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if created.ID == 0 || len(created.StudentIDs) != 2 {
		t.Fatalf("unexpected team: %+v", created)
	}

	tests := []struct {
		name  string
		input CreateTeamInput
		want  error
	}{
		{name: "student of another faculty", input: CreateTeamInput{SportTypeID: football, FacultyID: w.faculty(0), StudentIDs: []int64{own1, foreign}}, want: ErrInvalidInput},
		{name: "individual sport", input: CreateTeamInput{SportTypeID: chess, FacultyID: w.faculty(0), StudentIDs: []int64{own1}}, want: ErrInvalidInput},
		{name: "unknown student", input: CreateTeamInput{SportTypeID: football, FacultyID: w.faculty(0), StudentIDs: []int64{404}}, want: ErrNotFound},
		{name: "unknown faculty", input: CreateTeamInput{SportTypeID: football, FacultyID: 404, StudentIDs: []int64{own1}}, want: ErrNotFound},
		{name: "duplicate member", input: CreateTeamInput{SportTypeID: football, FacultyID: w.faculty(0), StudentIDs: []int64{own1, own1}}, want: ErrInvalidInput},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := w.catalog.CreateTeam(ctx, tc.input)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	teams, err := w.catalog.ListTeams(ctx, football)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 1 {
		t.Fatalf("rejected teams must not be stored, got %d teams", len(teams))
	}
}
