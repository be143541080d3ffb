package scoring

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/performance"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/sport"
)

var ErrMalformedTime = errors.New("malformed time result")

// Key orders performances ascending: lower is better for every category.
// Score-based values are negated so one comparator serves both directions.
type Key struct {
	Value     float64
	Malformed bool
	tie       tieToken
}

// tieToken is the raw result a key was built from. Two entries share a place
// only when their tokens are equal, never because their derived values are.
type tieToken struct {
	text    string
	number  float64
	missing bool
}

// Ties reports whether two keys were built from the same raw result.
func (k Key) Ties(other Key) bool {
	return k.tie == other.tie
}

func (k Key) less(other Key) bool {
	if k.Value != other.Value {
		return k.Value < other.Value
	}
	if k.tie.missing != other.tie.missing {
		return !k.tie.missing
	}
	if k.tie.text != other.tie.text {
		return k.tie.text < other.tie.text
	}
	return k.tie.number < other.tie.number
}

// NormalizeResult converts a raw result into a comparable key. It never fails:
// a missing or unparseable time becomes +Inf, a missing score becomes 0.
func NormalizeResult(category sport.Category, result performance.Result) Key {
	if category.IsTimeBased() {
		return normalizeTime(result.TimeResult)
	}
	return normalizeScore(result.OriginalResult)
}

func normalizeTime(raw *string) Key {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return Key{Value: math.Inf(1), tie: tieToken{missing: true}}
	}

	text := strings.TrimSpace(*raw)
	seconds, err := ParseTime(text)
	if err != nil {
		return Key{Value: math.Inf(1), Malformed: true, tie: tieToken{text: text}}
	}
	return Key{Value: seconds, tie: tieToken{text: text}}
}

func normalizeScore(raw *float64) Key {
	value := 0.0
	if raw != nil {
		value = *raw
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Key{Value: 0, Malformed: true, tie: tieToken{number: 0}}
	}
	return Key{Value: -value, tie: tieToken{number: value}}
}

// ParseTime parses "H:MM:SS[.ff]", "M:SS[.ff]" or "SS[.ff]" into seconds.
func ParseTime(raw string) (float64, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return 0, fmt.Errorf("%w: empty value", ErrMalformedTime)
	}

	parts := strings.Split(text, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q has too many segments", ErrMalformedTime, raw)
	}

	seconds, err := parseSeconds(parts[len(parts)-1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedTime, raw, err)
	}
	if len(parts) == 1 {
		return seconds, nil
	}
	if seconds >= 60 {
		return 0, fmt.Errorf("%w: %q seconds out of range", ErrMalformedTime, raw)
	}

	minutes, err := parseWhole(parts[len(parts)-2])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedTime, raw, err)
	}
	if len(parts) == 2 {
		return float64(minutes)*60 + seconds, nil
	}
	if minutes >= 60 {
		return 0, fmt.Errorf("%w: %q minutes out of range", ErrMalformedTime, raw)
	}

	hours, err := parseWhole(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedTime, raw, err)
	}
	return float64(hours)*3600 + float64(minutes)*60 + seconds, nil
}

func parseSeconds(raw string) (float64, error) {
	if raw == "" || strings.ContainsAny(raw, "+-eExXpP_ ") {
		return 0, fmt.Errorf("invalid seconds %q", raw)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("invalid seconds %q", raw)
	}
	return value, nil
}

func parseWhole(raw string) (int, error) {
	if raw == "" || strings.ContainsAny(raw, "+- ") {
		return 0, fmt.Errorf("invalid number %q", raw)
	}
	return strconv.Atoi(raw)
}
