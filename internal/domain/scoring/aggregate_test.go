package scoring

import (
	"testing"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/faculty"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/performance"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/standing"
)

var testFaculties = []faculty.Faculty{
	{ID: 3, Name: "Physics", Abbreviation: "PHY"},
	{ID: 1, Name: "Mathematics", Abbreviation: "MATH"},
	{ID: 2, Name: "Medicine", Abbreviation: "MED"},
}

func TestAggregateSport_SumsAndRanksWithTies(t *testing.T) {
	entries := []performance.Entry{
		{PerformanceID: 1, FacultyID: 1, Points: 10},
		{PerformanceID: 2, FacultyID: 1, Points: 8},
		{PerformanceID: 3, FacultyID: 2, Points: 9},
		{PerformanceID: 4, FacultyID: 2, Points: 9},
	}

	got := AggregateSport(7, testFaculties, entries)
	want := []standing.SportResult{
		{FacultyID: 1, SportTypeID: 7, TotalPoints: 18, Place: 1},
		{FacultyID: 2, SportTypeID: 7, TotalPoints: 18, Place: 1},
		{FacultyID: 3, SportTypeID: 7, TotalPoints: 0, Place: 3},
	}
	assertSportResults(t, got, want)
}

func TestAggregateSport_NoPerformancesYieldsZeroRows(t *testing.T) {
	got := AggregateSport(4, testFaculties, nil)
	if len(got) != len(testFaculties) {
		t.Fatalf("expected %d rows, got %d", len(testFaculties), len(got))
	}
	for _, row := range got {
		if row.TotalPoints != 0 || row.Place != 1 {
			t.Fatalf("expected zero total sharing first place, got %+v", row)
		}
	}
}

func TestAggregateTotals_SumsAcrossSports(t *testing.T) {
	results := []standing.SportResult{
		{FacultyID: 1, SportTypeID: 1, TotalPoints: 10},
		{FacultyID: 1, SportTypeID: 2, TotalPoints: 7},
		{FacultyID: 1, SportTypeID: 3, TotalPoints: 0},
		{FacultyID: 2, SportTypeID: 1, TotalPoints: 10},
		{FacultyID: 2, SportTypeID: 2, TotalPoints: 8},
		{FacultyID: 3, SportTypeID: 3, TotalPoints: 17},
		{FacultyID: 99, SportTypeID: 3, TotalPoints: 40},
	}

	got := AggregateTotals(testFaculties, results)
	want := []standing.TotalPoints{
		{FacultyID: 2, TotalPoints: 18, OverallPlace: 1},
		{FacultyID: 1, TotalPoints: 17, OverallPlace: 2},
		{FacultyID: 3, TotalPoints: 17, OverallPlace: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func assertSportResults(t *testing.T, got, want []standing.SportResult) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}
