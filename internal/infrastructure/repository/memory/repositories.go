package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/competition"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/faculty"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/performance"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/sport"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/standing"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/student"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/team"
)

type sportRepository struct {
	db access
}

func (r sportRepository) List(_ context.Context) ([]sport.SportType, error) {
	var out []sport.SportType
	r.db.read(func(st *state) {
		out = sortedValues(st.sportTypes)
	})
	return out, nil
}

func (r sportRepository) GetByID(_ context.Context, id int64) (sport.SportType, bool, error) {
	var (
		item sport.SportType
		ok   bool
	)
	r.db.read(func(st *state) {
		item, ok = st.sportTypes[id]
	})
	return item, ok, nil
}

func (r sportRepository) Create(_ context.Context, item sport.SportType) (sport.SportType, error) {
	err := r.db.write(func(st *state) error {
		st.seq.sportType++
		item.ID = st.seq.sportType
		st.sportTypes[item.ID] = item
		return nil
	})
	return item, err
}

type facultyRepository struct {
	db access
}

func (r facultyRepository) List(_ context.Context) ([]faculty.Faculty, error) {
	var out []faculty.Faculty
	r.db.read(func(st *state) {
		out = sortedValues(st.faculties)
	})
	return out, nil
}

func (r facultyRepository) GetByID(_ context.Context, id int64) (faculty.Faculty, bool, error) {
	var (
		item faculty.Faculty
		ok   bool
	)
	r.db.read(func(st *state) {
		item, ok = st.faculties[id]
	})
	return item, ok, nil
}

func (r facultyRepository) Create(_ context.Context, item faculty.Faculty) (faculty.Faculty, error) {
	err := r.db.write(func(st *state) error {
		st.seq.faculty++
		item.ID = st.seq.faculty
		st.faculties[item.ID] = item
		return nil
	})
	return item, err
}

func (r facultyRepository) ListGroups(_ context.Context) ([]faculty.Group, error) {
	var out []faculty.Group
	r.db.read(func(st *state) {
		out = sortedValues(st.groups)
	})
	return out, nil
}

func (r facultyRepository) CreateGroup(_ context.Context, item faculty.Group) (faculty.Group, error) {
	err := r.db.write(func(st *state) error {
		if _, ok := st.faculties[item.FacultyID]; !ok {
			return fmt.Errorf("faculty %d does not exist", item.FacultyID)
		}
		st.seq.group++
		item.ID = st.seq.group
		st.groups[item.ID] = item
		return nil
	})
	return item, err
}

type studentRepository struct {
	db access
}

func (r studentRepository) GetByID(_ context.Context, id int64) (student.Student, bool, error) {
	var (
		item student.Student
		ok   bool
	)
	r.db.read(func(st *state) {
		item, ok = st.students[id]
	})
	return item, ok, nil
}

func (r studentRepository) Create(_ context.Context, item student.Student) (student.Student, error) {
	err := r.db.write(func(st *state) error {
		if _, ok := st.groups[item.GroupID]; !ok {
			return fmt.Errorf("group %d does not exist", item.GroupID)
		}
		st.seq.student++
		item.ID = st.seq.student
		st.students[item.ID] = item
		return nil
	})
	return item, err
}

type competitionRepository struct {
	db access
}

func (r competitionRepository) GetByID(_ context.Context, id int64) (competition.Competition, bool, error) {
	var (
		item competition.Competition
		ok   bool
	)
	r.db.read(func(st *state) {
		item, ok = st.competitions[id]
	})
	return item, ok, nil
}

func (r competitionRepository) ListBySportType(_ context.Context, sportTypeID int64) ([]competition.Competition, error) {
	out := make([]competition.Competition, 0)
	r.db.read(func(st *state) {
		for _, item := range sortedValues(st.competitions) {
			if item.SportTypeID == sportTypeID {
				out = append(out, item)
			}
		}
	})
	return out, nil
}

func (r competitionRepository) Create(_ context.Context, item competition.Competition) (competition.Competition, error) {
	err := r.db.write(func(st *state) error {
		if _, ok := st.sportTypes[item.SportTypeID]; !ok {
			return fmt.Errorf("sport type %d does not exist", item.SportTypeID)
		}
		st.seq.competition++
		item.ID = st.seq.competition
		st.competitions[item.ID] = item
		return nil
	})
	return item, err
}

type teamRepository struct {
	db access
}

func (r teamRepository) ListBySportType(_ context.Context, sportTypeID int64) ([]team.Team, error) {
	out := make([]team.Team, 0)
	r.db.read(func(st *state) {
		for _, item := range sortedValues(st.teams) {
			if item.SportTypeID == sportTypeID {
				item.StudentIDs = append([]int64(nil), item.StudentIDs...)
				out = append(out, item)
			}
		}
	})
	return out, nil
}

func (r teamRepository) Create(_ context.Context, item team.Team) (team.Team, error) {
	item.StudentIDs = append([]int64(nil), item.StudentIDs...)
	err := r.db.write(func(st *state) error {
		st.seq.team++
		item.ID = st.seq.team
		st.teams[item.ID] = item
		return nil
	})
	return item, err
}

type performanceRepository struct {
	db access
}

func (r performanceRepository) GetByID(_ context.Context, id int64) (performance.Performance, bool, error) {
	var (
		item performance.Performance
		ok   bool
	)
	r.db.read(func(st *state) {
		item, ok = st.performances[id]
	})
	return item, ok, nil
}

func (r performanceRepository) FindByStudentCompetition(_ context.Context, studentID, competitionID int64) (performance.Performance, bool, error) {
	var (
		item performance.Performance
		ok   bool
	)
	r.db.read(func(st *state) {
		item, ok = findPerformance(st, studentID, competitionID)
	})
	return item, ok, nil
}

func (r performanceRepository) Create(_ context.Context, item performance.Performance) (performance.Performance, error) {
	err := r.db.write(func(st *state) error {
		if _, exists := findPerformance(st, item.StudentID, item.CompetitionID); exists {
			return fmt.Errorf("%w: student=%d competition=%d", performance.ErrDuplicate, item.StudentID, item.CompetitionID)
		}
		st.seq.performance++
		item.ID = st.seq.performance
		st.performances[item.ID] = item
		return nil
	})
	return item, err
}

func (r performanceRepository) Update(_ context.Context, item performance.Performance) error {
	return r.db.write(func(st *state) error {
		current, ok := st.performances[item.ID]
		if !ok {
			return fmt.Errorf("performance %d does not exist", item.ID)
		}
		item.CreatedAt = current.CreatedAt
		item.Points = current.Points
		st.performances[item.ID] = item
		return nil
	})
}

func (r performanceRepository) Delete(_ context.Context, id int64) error {
	return r.db.write(func(st *state) error {
		delete(st.performances, id)
		return nil
	})
}

func (r performanceRepository) ListEntriesBySportType(_ context.Context, sportTypeID int64) ([]performance.Entry, error) {
	var out []performance.Entry
	r.db.read(func(st *state) {
		out = buildEntries(st, func(p performance.Performance) bool {
			return p.SportTypeID == sportTypeID
		})
	})
	return out, nil
}

func (r performanceRepository) ListEntries(_ context.Context) ([]performance.Entry, error) {
	var out []performance.Entry
	r.db.read(func(st *state) {
		out = buildEntries(st, func(performance.Performance) bool { return true })
	})
	return out, nil
}

func (r performanceRepository) UpdatePoints(_ context.Context, pointsByID map[int64]int) error {
	return r.db.write(func(st *state) error {
		for id, points := range pointsByID {
			item, ok := st.performances[id]
			if !ok {
				continue
			}
			item.Points = points
			st.performances[id] = item
		}
		return nil
	})
}

func findPerformance(st *state, studentID, competitionID int64) (performance.Performance, bool) {
	for _, item := range st.performances {
		if item.StudentID == studentID && item.CompetitionID == competitionID {
			return item, true
		}
	}
	return performance.Performance{}, false
}

// buildEntries joins performances to student, group and faculty. Performances
// of unknown students are left out, as an inner join would.
func buildEntries(st *state, keep func(performance.Performance) bool) []performance.Entry {
	out := make([]performance.Entry, 0)
	for _, p := range sortedValues(st.performances) {
		if !keep(p) {
			continue
		}
		s, ok := st.students[p.StudentID]
		if !ok {
			continue
		}
		out = append(out, performance.Entry{
			PerformanceID: p.ID,
			SportTypeID:   p.SportTypeID,
			StudentID:     s.ID,
			StudentName:   s.DisplayName(),
			Gender:        s.Gender,
			GroupID:       s.GroupID,
			FacultyID:     st.groups[s.GroupID].FacultyID,
			Result:        p.Result,
			Points:        p.Points,
		})
	}
	return out
}

type standingRepository struct {
	db access
}

func (r standingRepository) ListSportResults(_ context.Context, sportTypeID int64) ([]standing.SportResult, error) {
	var out []standing.SportResult
	r.db.read(func(st *state) {
		out = append([]standing.SportResult(nil), st.sportResults[sportTypeID]...)
	})
	return out, nil
}

func (r standingRepository) ListAllSportResults(_ context.Context) ([]standing.SportResult, error) {
	var out []standing.SportResult
	r.db.read(func(st *state) {
		ids := make([]int64, 0, len(st.sportResults))
		for id := range st.sportResults {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for _, id := range ids {
			out = append(out, st.sportResults[id]...)
		}
	})
	return out, nil
}

func (r standingRepository) ReplaceSportResults(_ context.Context, sportTypeID int64, items []standing.SportResult) error {
	rows := append([]standing.SportResult(nil), items...)
	sortSportResults(rows)
	return r.db.write(func(st *state) error {
		if len(rows) == 0 {
			delete(st.sportResults, sportTypeID)
			return nil
		}
		st.sportResults[sportTypeID] = rows
		return nil
	})
}

func (r standingRepository) ListTotals(_ context.Context) ([]standing.TotalPoints, error) {
	var out []standing.TotalPoints
	r.db.read(func(st *state) {
		out = append([]standing.TotalPoints(nil), st.totals...)
	})
	return out, nil
}

func (r standingRepository) ReplaceTotals(_ context.Context, items []standing.TotalPoints) error {
	rows := append([]standing.TotalPoints(nil), items...)
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].OverallPlace != rows[j].OverallPlace {
			return rows[i].OverallPlace < rows[j].OverallPlace
		}
		return rows[i].FacultyID < rows[j].FacultyID
	})
	return r.db.write(func(st *state) error {
		st.totals = rows
		return nil
	})
}

func sortSportResults(rows []standing.SportResult) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Place != rows[j].Place {
			return rows[i].Place < rows[j].Place
		}
		return rows[i].FacultyID < rows[j].FacultyID
	})
}
