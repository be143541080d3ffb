package scoring

import (
	"sort"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/faculty"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/performance"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/standing"
)

// FacultyTotal is one row of a faculty ranking.
type FacultyTotal struct {
	FacultyID   int64
	TotalPoints int
	Place       int
}

// RankFaculties ranks every faculty by its sum, highest first. Faculties
// missing from sums rank with zero points. Rows are ordered by place, then id.
func RankFaculties(faculties []faculty.Faculty, sums map[int64]int) []FacultyTotal {
	ids := make([]int64, 0, len(faculties))
	seen := make(map[int64]struct{}, len(faculties))
	for _, f := range faculties {
		if _, ok := seen[f.ID]; ok {
			continue
		}
		seen[f.ID] = struct{}{}
		ids = append(ids, f.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	totals := make([]int, len(ids))
	for i, id := range ids {
		totals[i] = sums[id]
	}
	places := PlacesDescending(totals)

	out := make([]FacultyTotal, len(ids))
	for i, id := range ids {
		out[i] = FacultyTotal{FacultyID: id, TotalPoints: totals[i], Place: places[i]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Place < out[j].Place
	})

	return out
}

// SumEntryPoints totals stored points per faculty.
func SumEntryPoints(entries []performance.Entry) map[int64]int {
	out := make(map[int64]int)
	for _, e := range entries {
		out[e.FacultyID] += e.Points
	}
	return out
}

// AggregateSport builds the standing of one sport type from its scored
// entries. Faculties without performances get a zero row.
func AggregateSport(sportTypeID int64, faculties []faculty.Faculty, entries []performance.Entry) []standing.SportResult {
	ranked := RankFaculties(faculties, SumEntryPoints(entries))

	out := make([]standing.SportResult, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, standing.SportResult{
			FacultyID:   r.FacultyID,
			SportTypeID: sportTypeID,
			TotalPoints: r.TotalPoints,
			Place:       r.Place,
		})
	}
	return out
}

// AggregateTotals sums sport standings per faculty into the overall rating.
// Rows that reference an unknown faculty are ignored.
func AggregateTotals(faculties []faculty.Faculty, results []standing.SportResult) []standing.TotalPoints {
	sums := make(map[int64]int)
	for _, r := range results {
		sums[r.FacultyID] += r.TotalPoints
	}
	ranked := RankFaculties(faculties, sums)

	out := make([]standing.TotalPoints, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, standing.TotalPoints{
			FacultyID:    r.FacultyID,
			TotalPoints:  r.TotalPoints,
			OverallPlace: r.Place,
		})
	}
	return out
}
