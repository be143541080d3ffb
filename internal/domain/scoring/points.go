package scoring

const (
	pointsForWinner = 10
	// MinPoints is awarded to every place below the table.
	MinPoints = 1
)

// PointsForPlace maps a place to points: 1→10, 2→9, …, 10→1, 11 and below→1.
func PointsForPlace(place int) int {
	switch {
	case place < 1:
		return 0
	case place <= pointsForWinner:
		return pointsForWinner + 1 - place
	default:
		return MinPoints
	}
}
