package competition

import (
	"fmt"
	"strings"
	"time"
)

// Competition is a single event of a sport type where performances are recorded.
type Competition struct {
	ID          int64
	Name        string
	SportTypeID int64
	Date        time.Time
	Location    string
}

func (c Competition) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("competition name is required")
	}
	if c.SportTypeID <= 0 {
		return fmt.Errorf("competition sport type id is required")
	}
	if c.Date.IsZero() {
		return fmt.Errorf("competition date is required")
	}

	return nil
}
