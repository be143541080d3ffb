package sport

import "strings"

var teamSportKeywords = []string{
	"баскетбол",
	"волейбол",
	"футбол",
	"basketball",
	"volleyball",
	"football",
	"soccer",
}

var timeSportKeywords = []string{
	"бег",
	"плавание",
	"эстафета",
	"run",
	"sprint",
	"swim",
	"relay",
}

// ClassifyName derives a category from a sport name. It is only used when a
// sport type is created without an explicit category.
func ClassifyName(name string) Category {
	normalized := strings.ToLower(strings.TrimSpace(name))
	team := containsAny(normalized, teamSportKeywords)
	timed := containsAny(normalized, timeSportKeywords)

	switch {
	case team && timed:
		return CategoryTeamTime
	case team:
		return CategoryTeamScore
	case timed:
		return CategoryIndividualTime
	default:
		return CategoryIndividualScore
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
