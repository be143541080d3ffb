package scoring

import "sort"

// Ranked pairs an item with its competition-ranking place.
type Ranked[T any] struct {
	Item  T
	Key   Key
	Place int
}

// RankByKey orders items best first and assigns places. Items with equal raw
// results share a place; the next distinct result takes its 1-based position
// (1, 1, 3, 4). Input order breaks ties between distinct results with equal
// derived values.
func RankByKey[T any](items []T, key func(T) Key) []Ranked[T] {
	out := make([]Ranked[T], len(items))
	for i, item := range items {
		out[i] = Ranked[T]{Item: item, Key: key(item)}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Key.less(out[j].Key)
	})

	keys := make([]Key, len(out))
	for i := range out {
		keys[i] = out[i].Key
	}
	for i, place := range AssignPlaces(keys) {
		out[i].Place = place
	}

	return out
}

// AssignPlaces assigns competition-ranking places to keys sorted best first.
func AssignPlaces(sorted []Key) []int {
	places := make([]int, len(sorted))
	for i := range sorted {
		if i > 0 && sorted[i].Ties(sorted[i-1]) {
			places[i] = places[i-1]
			continue
		}
		places[i] = i + 1
	}
	return places
}

// PlacesDescending ranks values highest first with the same tie rule and
// returns the place of each value at its original index.
func PlacesDescending(values []int) []int {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] > values[order[b]]
	})

	places := make([]int, len(values))
	for pos, idx := range order {
		if pos > 0 && values[idx] == values[order[pos-1]] {
			places[idx] = places[order[pos-1]]
			continue
		}
		places[idx] = pos + 1
	}
	return places
}
