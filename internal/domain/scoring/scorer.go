package scoring

import (
	"sort"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/performance"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/sport"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/student"
)

// Placement is an entry with the place it holds in its ranking pool.
type Placement struct {
	Entry performance.Entry
	Place int
}

// Assignment is the points a recalculation gives to one performance.
type Assignment struct {
	PerformanceID int64
	Gender        student.Gender
	FacultyID     int64
	Place         int
	Points        int
}

// Outcome is the result of scoring one sport type.
type Outcome struct {
	Assignments []Assignment
	// Malformed lists performances whose result could not be read and were
	// ranked last.
	Malformed []int64
}

func (o Outcome) PointsByID() map[int64]int {
	out := make(map[int64]int, len(o.Assignments))
	for _, a := range o.Assignments {
		out[a.PerformanceID] = a.Points
	}
	return out
}

// ScoreSport ranks entries inside each gender partition and converts places to
// points. Team sports rank one entry per faculty and give every member the
// team's points. The result depends only on the entries, so scoring the same
// input twice yields the same points.
func ScoreSport(category sport.Category, entries []performance.Entry) Outcome {
	placements := RankEntries(category, entries, true)

	out := Outcome{Assignments: make([]Assignment, 0, len(placements))}
	for _, p := range placements {
		out.Assignments = append(out.Assignments, Assignment{
			PerformanceID: p.Entry.PerformanceID,
			Gender:        p.Entry.Gender,
			FacultyID:     p.Entry.FacultyID,
			Place:         p.Place,
			Points:        PointsForPlace(p.Place),
		})
		if NormalizeResult(category, p.Entry.Result).Malformed {
			out.Malformed = append(out.Malformed, p.Entry.PerformanceID)
		}
	}
	sort.Slice(out.Malformed, func(i, j int) bool { return out.Malformed[i] < out.Malformed[j] })

	return out
}

// RankEntries places entries by result. With byGender each gender is ranked
// on its own; without it all entries share one pool and team entries are
// grouped per faculty and gender.
func RankEntries(category sport.Category, entries []performance.Entry, byGender bool) []Placement {
	ordered := append([]performance.Entry(nil), entries...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].PerformanceID < ordered[j].PerformanceID
	})

	pools := [][]performance.Entry{ordered}
	if byGender {
		pools = partitionByGender(ordered)
	}

	out := make([]Placement, 0, len(ordered))
	for _, pool := range pools {
		if len(pool) == 0 {
			continue
		}
		if category.IsTeam() {
			out = append(out, rankTeams(category, pool)...)
			continue
		}
		out = append(out, rankIndividuals(category, pool)...)
	}

	return out
}

func rankIndividuals(category sport.Category, pool []performance.Entry) []Placement {
	ranked := RankByKey(pool, func(e performance.Entry) Key {
		return NormalizeResult(category, e.Result)
	})

	out := make([]Placement, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, Placement{Entry: r.Item, Place: r.Place})
	}
	return out
}

type teamKey struct {
	facultyID int64
	gender    student.Gender
}

type teamGroup struct {
	members []performance.Entry
}

// rankTeams collapses a pool into one entry per faculty (and gender, when the
// pool mixes them). The first member by performance id represents the team.
func rankTeams(category sport.Category, pool []performance.Entry) []Placement {
	index := make(map[teamKey]int)
	groups := make([]teamGroup, 0)
	for _, e := range pool {
		key := teamKey{facultyID: e.FacultyID, gender: e.Gender}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, teamGroup{})
		}
		groups[i].members = append(groups[i].members, e)
	}

	ranked := RankByKey(groups, func(g teamGroup) Key {
		return NormalizeResult(category, g.members[0].Result)
	})

	out := make([]Placement, 0, len(pool))
	for _, r := range ranked {
		for _, m := range r.Item.members {
			out = append(out, Placement{Entry: m, Place: r.Place})
		}
	}
	return out
}

func partitionByGender(entries []performance.Entry) [][]performance.Entry {
	byGender := make(map[student.Gender][]performance.Entry)
	for _, e := range entries {
		byGender[e.Gender] = append(byGender[e.Gender], e)
	}

	order := append([]student.Gender(nil), student.AllGenders...)
	extra := make([]student.Gender, 0)
	for g := range byGender {
		if !g.Valid() {
			extra = append(extra, g)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	order = append(order, extra...)

	out := make([][]performance.Entry, 0, len(order))
	for _, g := range order {
		out = append(out, byGender[g])
	}
	return out
}
