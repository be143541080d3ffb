package standing

import "time"

// SportResult is a faculty's aggregated points and place in one sport type.
type SportResult struct {
	FacultyID   int64
	SportTypeID int64
	TotalPoints int
	Place       int
	UpdatedAt   time.Time
}

// TotalPoints is a faculty's cross-sport sum and overall place.
type TotalPoints struct {
	FacultyID    int64
	TotalPoints  int
	OverallPlace int
	UpdatedAt    time.Time
}
