package faculty

import (
	"fmt"
	"strings"
)

// Faculty is the unit every standing aggregates to.
type Faculty struct {
	ID           int64
	Name         string
	Abbreviation string
}

func (f Faculty) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("faculty name is required")
	}
	if strings.TrimSpace(f.Abbreviation) == "" {
		return fmt.Errorf("faculty abbreviation is required")
	}

	return nil
}

// Group is a study group owned by a faculty.
type Group struct {
	ID        int64
	Number    string
	FacultyID int64
}

func (g Group) Validate() error {
	if strings.TrimSpace(g.Number) == "" {
		return fmt.Errorf("group number is required")
	}
	if g.FacultyID <= 0 {
		return fmt.Errorf("group faculty id is required")
	}

	return nil
}
