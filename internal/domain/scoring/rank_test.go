package scoring

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/sport"
)

func TestRankByKey_CompetitionRanking(t *testing.T) {
	times := []string{"0:00:14.00", "0:00:12.50", "0:00:13.00", "0:00:12.50"}
	ranked := RankByKey(times, func(v string) Key {
		return NormalizeResult(sport.CategoryIndividualTime, timeResult(v))
	})

	wantOrder := []string{"0:00:12.50", "0:00:12.50", "0:00:13.00", "0:00:14.00"}
	wantPlaces := []int{1, 1, 3, 4}
	for i, r := range ranked {
		if r.Item != wantOrder[i] || r.Place != wantPlaces[i] {
			t.Fatalf("row %d: got (%s, %d) want (%s, %d)", i, r.Item, r.Place, wantOrder[i], wantPlaces[i])
		}
	}
}

func TestRankByKey_Empty(t *testing.T) {
	ranked := RankByKey([]string(nil), func(string) Key { return Key{} })
	if len(ranked) != 0 {
		t.Fatalf("expected no rows, got %d", len(ranked))
	}
}

func TestRankByKey_PlaceCountsStrictlyBetterEntries(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		n := 1 + rng.Intn(30)
		centis := make([]int, n)
		for i := range centis {
			centis[i] = 1000 + rng.Intn(15)
		}

		ranked := RankByKey(centis, func(c int) Key {
			return NormalizeResult(sport.CategoryIndividualTime, timeResult(fmt.Sprintf("%d.%02d", c/100, c%100)))
		})

		prevPlace := 0
		for _, r := range ranked {
			better := 0
			for _, other := range centis {
				if other < r.Item {
					better++
				}
			}
			if r.Place != better+1 {
				t.Fatalf("round %d: value %d got place %d want %d", round, r.Item, r.Place, better+1)
			}
			if r.Place < prevPlace {
				t.Fatalf("round %d: places must be non-decreasing", round)
			}
			prevPlace = r.Place
		}
	}
}

func TestPlacesDescending(t *testing.T) {
	got := PlacesDescending([]int{10, 7, 10, 0, 7})
	want := []int{1, 3, 1, 5, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PlacesDescending=%v want=%v", got, want)
		}
	}
}

func TestPointsForPlace(t *testing.T) {
	tests := []struct {
		place int
		want  int
	}{
		{place: 1, want: 10},
		{place: 2, want: 9},
		{place: 5, want: 6},
		{place: 10, want: 1},
		{place: 11, want: 1},
		{place: 500, want: 1},
		{place: 0, want: 0},
	}

	for _, tt := range tests {
		if got := PointsForPlace(tt.place); got != tt.want {
			t.Fatalf("PointsForPlace(%d)=%d want=%d", tt.place, got, tt.want)
		}
	}
}
