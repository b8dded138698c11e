package guide

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/datekeeper/internal/models"
)

// Goal values the guide heuristics distinguish between. AnyGoal and AnyBudget
// disable the respective filter.
const (
	GoalImpress    = "Impress"
	GoalFunNight   = "Fun Night"
	GoalDeepTalk   = "Deep Talk"
	GoalRomantic   = "Romantic"
	GoalSurpriseMe = "Surprise Me"
	AnyGoal        = "Any"
	AnyBudget      = "Any"
)

// Filters narrows the guide's explanation to the user's current intent.
type Filters struct {
	Budget string
	Goal   string
	Likes  []string
}

// Tip is the guide's take on a single recommendation: why it was picked and
// one tweak to improve it.
type Tip struct {
	Why   string
	Tweak string
}

var goalReasons = map[string]string{
	GoalImpress:    "aims to impress with atmosphere and quality",
	GoalFunNight:   "promises an upbeat vibe and energy",
	GoalDeepTalk:   "is conducive to conversation without loud noise",
	GoalRomantic:   "leans romantic with cozy seating and ambiance",
	GoalSurpriseMe: "adds novelty to keep the date fresh",
	AnyGoal:        "fits broadly with your preferences",
}

var eveningTimePattern = regexp.MustCompile(`(?i)6:|7:|8:`)

// BuildGuide produces the deterministic why/tweak pair for a recommendation
// under the given filters and session state.
func BuildGuide(rec models.Recommendation, filters Filters, session *models.Session) Tip {
	return Tip{
		Why:   pickWhy(rec, filters, session),
		Tweak: pickTweak(rec, filters),
	}
}

func pickWhy(rec models.Recommendation, filters Filters, session *models.Session) string {
	var parts []string
	if filters.Goal != AnyGoal {
		if reason, ok := goalReasons[filters.Goal]; ok {
			parts = append(parts, reason)
		}
	}
	if filters.Budget != AnyBudget && rec.EstimatedCost != "" {
		parts = append(parts, fmt.Sprintf("matches your budget (%s)", filters.Budget))
	}
	if like := matchingLike(rec, filters.Likes); like != "" {
		parts = append(parts, fmt.Sprintf("aligns with %q", like))
	}
	if session != nil && session.DateStartISO != "" && rec.BestTime != "" {
		parts = append(parts, fmt.Sprintf("pairs well with your start time around %s", rec.BestTime))
	}
	if len(parts) == 0 {
		return "Picked as a balanced match for your current preferences."
	}
	return fmt.Sprintf("Picked because it %s.", strings.Join(parts, ", "))
}

func pickTweak(rec models.Recommendation, filters Filters) string {
	if rec.BestTime != "" && eveningTimePattern.MatchString(rec.BestTime) && filters.Goal == GoalRomantic {
		return "Try arriving 15 minutes earlier to catch golden hour lighting."
	}
	if filters.Goal == GoalImpress && (rec.EstimatedCost == "$" || rec.EstimatedCost == "$$") {
		return "Consider upgrading to a chef's tasting or premium seating to elevate the experience."
	}
	if filters.Goal == GoalDeepTalk {
		return "Ask for a quiet corner table or bring a short list of conversation starters."
	}
	if len(filters.Likes) >= 2 {
		return "Chain this with another pick that hits a different like to create contrast."
	}
	return "Book a buffer of 10 minutes between activities to keep the pace relaxed."
}

func matchingLike(rec models.Recommendation, likes []string) string {
	title := strings.ToLower(rec.Title)
	desc := strings.ToLower(rec.Description)
	for _, like := range likes {
		l := strings.ToLower(like)
		if l != "" && (strings.Contains(title, l) || strings.Contains(desc, l)) {
			return like
		}
	}
	return ""
}
