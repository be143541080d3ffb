package sport

import (
	"fmt"
	"strings"
)

// Category decides how a sport type is ranked. It is stored with the sport
// type and never re-derived from the name after creation.
type Category string

const (
	CategoryIndividualTime  Category = "INDIVIDUAL_TIME"
	CategoryIndividualScore Category = "INDIVIDUAL_SCORE"
	CategoryTeamTime        Category = "TEAM_TIME"
	CategoryTeamScore       Category = "TEAM_SCORE"
)

var AllCategories = map[Category]struct{}{
	CategoryIndividualTime:  {},
	CategoryIndividualScore: {},
	CategoryTeamTime:        {},
	CategoryTeamScore:       {},
}

func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := AllCategories[c]; !ok {
		return "", fmt.Errorf("unknown sport category %q", raw)
	}
	return c, nil
}

func (c Category) Valid() bool {
	_, ok := AllCategories[c]
	return ok
}

func (c Category) IsTeam() bool {
	return c == CategoryTeamTime || c == CategoryTeamScore
}

// IsTimeBased reports whether lower results rank higher.
func (c Category) IsTimeBased() bool {
	return c == CategoryIndividualTime || c == CategoryTeamTime
}

// SportType is one discipline of the spartakiad catalog.
type SportType struct {
	ID       int64
	Name     string
	Category Category
}

func (s SportType) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("sport type name is required")
	}
	if !s.Category.Valid() {
		return fmt.Errorf("sport type category %q is invalid", s.Category)
	}

	return nil
}
