package team

import "fmt"

// Team is the roster a faculty fields in a team sport. Its result is never
// stored separately: every member performance carries the same points.
type Team struct {
	ID          int64
	SportTypeID int64
	FacultyID   int64
	StudentIDs  []int64
}

func (t Team) Validate() error {
	if t.SportTypeID <= 0 {
		return fmt.Errorf("team sport type id is required")
	}
	if t.FacultyID <= 0 {
		return fmt.Errorf("team faculty id is required")
	}

	seen := make(map[int64]struct{}, len(t.StudentIDs))
	for _, id := range t.StudentIDs {
		if id <= 0 {
			return fmt.Errorf("team student id must be > 0")
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("duplicate student %d in team roster", id)
		}
		seen[id] = struct{}{}
	}

	return nil
}
