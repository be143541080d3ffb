package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/faculty"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/performance"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/scoring"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/sport"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/standing"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/student"
)

// RankedPerformance is one row of a results protocol.
type RankedPerformance struct {
	Entry performance.Entry
	Place int
}

// FacultyStanding is one row of a sport or overall rating.
type FacultyStanding struct {
	Faculty     faculty.Faculty
	TotalPoints int
	Place       int
}

// StandingsService serves read models. It never writes: points and stored
// standings only change through RecalculationService.
type StandingsService struct {
	sports       sport.Repository
	faculties    faculty.Repository
	performances performance.Repository
	standings    standing.Repository
}

func NewStandingsService(
	sports sport.Repository,
	faculties faculty.Repository,
	performances performance.Repository,
	standings standing.Repository,
) *StandingsService {
	return &StandingsService{
		sports:       sports,
		faculties:    faculties,
		performances: performances,
		standings:    standings,
	}
}

// ListResults ranks a sport's performances. With a gender the places are the
// ones points were derived from; without one every performance shares a single
// protocol and team entries are grouped per faculty and gender.
func (s *StandingsService) ListResults(ctx context.Context, sportTypeID int64, gender student.Gender) ([]RankedPerformance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.ListResults")
	defer span.End()

	item, err := s.getSportType(ctx, sportTypeID)
	if err != nil {
		return nil, err
	}
	if err := validateGenderFilter(gender); err != nil {
		return nil, err
	}

	entries, err := s.performances.ListEntriesBySportType(ctx, sportTypeID)
	if err != nil {
		return nil, translateStoreError(fmt.Errorf("list entries sport_type=%d: %w", sportTypeID, err))
	}

	byGender := gender != ""
	if byGender {
		entries = filterEntriesByGender(entries, gender)
	}
	placements := scoring.RankEntries(item.Category, entries, byGender)

	out := make([]RankedPerformance, 0, len(placements))
	for _, p := range placements {
		out = append(out, RankedPerformance{Entry: p.Entry, Place: p.Place})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Place != out[j].Place {
			return out[i].Place < out[j].Place
		}
		return out[i].Entry.PerformanceID < out[j].Entry.PerformanceID
	})
	return out, nil
}

// SportStanding returns the faculty standing of one sport type. Without a
// gender the stored standing is returned; with one it is summed from the
// stored points of that gender.
func (s *StandingsService) SportStanding(ctx context.Context, sportTypeID int64, gender student.Gender) ([]FacultyStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.SportStanding")
	defer span.End()

	if _, err := s.getSportType(ctx, sportTypeID); err != nil {
		return nil, err
	}
	if err := validateGenderFilter(gender); err != nil {
		return nil, err
	}

	faculties, err := s.faculties.List(ctx)
	if err != nil {
		return nil, translateStoreError(fmt.Errorf("list faculties: %w", err))
	}

	if gender != "" {
		entries, err := s.performances.ListEntriesBySportType(ctx, sportTypeID)
		if err != nil {
			return nil, translateStoreError(fmt.Errorf("list entries sport_type=%d: %w", sportTypeID, err))
		}
		sums := scoring.SumEntryPoints(filterEntriesByGender(entries, gender))
		return facultyRows(faculties, scoring.RankFaculties(faculties, sums)), nil
	}

	rows, err := s.standings.ListSportResults(ctx, sportTypeID)
	if err != nil {
		return nil, translateStoreError(fmt.Errorf("list sport results sport_type=%d: %w", sportTypeID, err))
	}
	if len(rows) == 0 {
		return facultyRows(faculties, scoring.RankFaculties(faculties, nil)), nil
	}

	ranked := make([]scoring.FacultyTotal, 0, len(rows))
	for _, row := range rows {
		ranked = append(ranked, scoring.FacultyTotal{FacultyID: row.FacultyID, TotalPoints: row.TotalPoints, Place: row.Place})
	}
	return facultyRows(faculties, ranked), nil
}

// Overall returns the cross-sport rating, stored or summed per gender on read.
func (s *StandingsService) Overall(ctx context.Context, gender student.Gender) ([]FacultyStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Overall")
	defer span.End()

	if err := validateGenderFilter(gender); err != nil {
		return nil, err
	}

	faculties, err := s.faculties.List(ctx)
	if err != nil {
		return nil, translateStoreError(fmt.Errorf("list faculties: %w", err))
	}

	if gender != "" {
		entries, err := s.performances.ListEntries(ctx)
		if err != nil {
			return nil, translateStoreError(fmt.Errorf("list entries: %w", err))
		}
		sums := scoring.SumEntryPoints(filterEntriesByGender(entries, gender))
		return facultyRows(faculties, scoring.RankFaculties(faculties, sums)), nil
	}

	rows, err := s.standings.ListTotals(ctx)
	if err != nil {
		return nil, translateStoreError(fmt.Errorf("list totals: %w", err))
	}
	if len(rows) == 0 {
		return facultyRows(faculties, scoring.RankFaculties(faculties, nil)), nil
	}

	ranked := make([]scoring.FacultyTotal, 0, len(rows))
	for _, row := range rows {
		ranked = append(ranked, scoring.FacultyTotal{FacultyID: row.FacultyID, TotalPoints: row.TotalPoints, Place: row.OverallPlace})
	}
	return facultyRows(faculties, ranked), nil
}

func (s *StandingsService) getSportType(ctx context.Context, sportTypeID int64) (sport.SportType, error) {
	if sportTypeID <= 0 {
		return sport.SportType{}, fmt.Errorf("%w: sport type id must be > 0", ErrInvalidInput)
	}

	item, ok, err := s.sports.GetByID(ctx, sportTypeID)
	if err != nil {
		return sport.SportType{}, translateStoreError(fmt.Errorf("get sport type=%d: %w", sportTypeID, err))
	}
	if !ok {
		return sport.SportType{}, fmt.Errorf("%w: sport_type=%d", ErrNotFound, sportTypeID)
	}
	return item, nil
}

func validateGenderFilter(gender student.Gender) error {
	if gender == "" || gender.Valid() {
		return nil
	}
	return fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, gender)
}

func filterEntriesByGender(entries []performance.Entry, gender student.Gender) []performance.Entry {
	out := make([]performance.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Gender == gender {
			out = append(out, e)
		}
	}
	return out
}

// facultyRows joins ranked totals with faculty details, skipping rows of
// faculties that no longer exist. Rows are ordered by place, then faculty id.
func facultyRows(faculties []faculty.Faculty, ranked []scoring.FacultyTotal) []FacultyStanding {
	byID := make(map[int64]faculty.Faculty, len(faculties))
	for _, f := range faculties {
		byID[f.ID] = f
	}

	out := make([]FacultyStanding, 0, len(ranked))
	for _, r := range ranked {
		f, ok := byID[r.FacultyID]
		if !ok {
			continue
		}
		out = append(out, FacultyStanding{Faculty: f, TotalPoints: r.TotalPoints, Place: r.Place})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Place != out[j].Place {
			return out[i].Place < out[j].Place
		}
		return out[i].Faculty.ID < out[j].Faculty.ID
	})
	return out
}
