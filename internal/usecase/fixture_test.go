package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/competition"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/faculty"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/performance"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/sport"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/store"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/student"
	"github.com/riskibarqy/spartakiad-scoring/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/spartakiad-scoring/internal/platform/logging"
)

// tournament is a memory-backed store with the services wired the way the
// application wires them.
type tournament struct {
	store        *memory.Store
	recalc       *RecalculationService
	performances *PerformanceService
	standings    *StandingsService
	catalog      *CatalogService
	groups       map[int64]int64
	faculties    []faculty.Faculty
}

func newTournament(t *testing.T, facultyNames ...string) *tournament {
	t.Helper()
	return newTournamentWithTx(t, nil, facultyNames...)
}

// newTournamentWithTx lets a test wrap the transactor the recalculation
// service writes through. wrap may be nil.
func newTournamentWithTx(t *testing.T, wrap func(store.Transactor) store.Transactor, facultyNames ...string) *tournament {
	t.Helper()
	ctx := context.Background()
	st := memory.NewStore()

	var tx store.Transactor = st
	if wrap != nil {
		tx = wrap(st)
	}
	recalc := NewRecalculationService(tx, nil, logging.NewNop(), RecalculationConfig{Workers: 2})

	w := &tournament{
		store:        st,
		recalc:       recalc,
		performances: NewPerformanceService(st.Performances(), recalc),
		standings:    NewStandingsService(st.SportTypes(), st.Faculties(), st.Performances(), st.Standings()),
		catalog:      NewCatalogService(st, st.SportTypes(), st.Faculties(), st.Competitions(), st.Teams()),
		groups:       make(map[int64]int64),
	}
	for _, name := range facultyNames {
		f, err := st.Faculties().Create(ctx, faculty.Faculty{Name: name, Abbreviation: name})
		if err != nil {
			t.Fatalf("create faculty %s: %v", name, err)
		}
		g, err := st.Faculties().CreateGroup(ctx, faculty.Group{Number: name + "-101", FacultyID: f.ID})
		if err != nil {
			t.Fatalf("create group for %s: %v", name, err)
		}
		w.faculties = append(w.faculties, f)
		w.groups[f.ID] = g.ID
	}
	return w
}

func (w *tournament) faculty(i int) int64 {
	return w.faculties[i].ID
}

// sport creates a sport type with one competition and returns both ids.
func (w *tournament) sport(t *testing.T, name string, category sport.Category) (int64, int64) {
	t.Helper()
	ctx := context.Background()
	sp, err := w.store.SportTypes().Create(ctx, sport.SportType{Name: name, Category: category})
	if err != nil {
		t.Fatalf("create sport type %s: %v", name, err)
	}
	comp, err := w.store.Competitions().Create(ctx, competition.Competition{
		Name:        name + " final",
		SportTypeID: sp.ID,
		Date:        time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create competition %s: %v", name, err)
	}
	return sp.ID, comp.ID
}

func (w *tournament) student(t *testing.T, facultyID int64, gender student.Gender) int64 {
	t.Helper()
	s, err := w.store.Students().Create(context.Background(), student.Student{
		FirstName: "Иван",
		LastName:  "Петров",
		Gender:    gender,
		GroupID:   w.groups[facultyID],
	})
	if err != nil {
		t.Fatalf("create student: %v", err)
	}
	return s.ID
}

func (w *tournament) recordTime(t *testing.T, sportTypeID, competitionID, studentID int64, raw string) performance.Performance {
	t.Helper()
	created, err := w.performances.Create(context.Background(), CreatePerformanceInput{
		StudentID:     studentID,
		SportTypeID:   sportTypeID,
		CompetitionID: competitionID,
		TimeResult:    &raw,
	})
	if err != nil {
		t.Fatalf("record time %s: %v", raw, err)
	}
	return created
}

func (w *tournament) recordScore(t *testing.T, sportTypeID, competitionID, studentID int64, score float64) performance.Performance {
	t.Helper()
	created, err := w.performances.Create(context.Background(), CreatePerformanceInput{
		StudentID:      studentID,
		SportTypeID:    sportTypeID,
		CompetitionID:  competitionID,
		OriginalResult: &score,
	})
	if err != nil {
		t.Fatalf("record score %v: %v", score, err)
	}
	return created
}

func (w *tournament) points(t *testing.T, performanceID int64) int {
	t.Helper()
	item, ok, err := w.store.Performances().GetByID(context.Background(), performanceID)
	if err != nil || !ok {
		t.Fatalf("get performance %d: ok=%v err=%v", performanceID, ok, err)
	}
	return item.Points
}
