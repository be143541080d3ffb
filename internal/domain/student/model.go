package student

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Gender is the only partition key used when ranking performances.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

var AllGenders = []Gender{GenderMale, GenderFemale}

// ParseGender accepts the canonical names and the single-letter forms used by
// judges' protocols (Latin and Cyrillic).
func ParseGender(raw string) (Gender, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "MALE", "M", "М":
		return GenderMale, nil
	case "FEMALE", "F", "Ж":
		return GenderFemale, nil
	default:
		return "", fmt.Errorf("unknown gender %q", raw)
	}
}

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Student competes for the faculty owning its group.
type Student struct {
	ID         int64
	FirstName  string
	LastName   string
	MiddleName string
	Gender     Gender
	GroupID    int64
}

func (s Student) Validate() error {
	if strings.TrimSpace(s.FirstName) == "" {
		return fmt.Errorf("student first name is required")
	}
	if strings.TrimSpace(s.LastName) == "" {
		return fmt.Errorf("student last name is required")
	}
	if !s.Gender.Valid() {
		return fmt.Errorf("student gender %q is invalid", s.Gender)
	}
	if s.GroupID <= 0 {
		return fmt.Errorf("student group id is required")
	}

	return nil
}

// DisplayName renders "Last F.M." as printed in result protocols.
func (s Student) DisplayName() string {
	return FormatDisplayName(s.LastName, s.FirstName, s.MiddleName)
}

func FormatDisplayName(last, first, middle string) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(last))
	if initial, ok := firstRune(first); ok {
		b.WriteByte(' ')
		b.WriteRune(initial)
		b.WriteByte('.')
		if m, ok := firstRune(middle); ok {
			b.WriteRune(m)
			b.WriteByte('.')
		}
	}
	return b.String()
}

func firstRune(s string) (rune, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}
