package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/datekeeper/internal/models"
)

func sampleRec() models.Recommendation {
	return models.Recommendation{
		ID:            "r1",
		Title:         "Jazz Cellar",
		Description:   "Live jazz and small plates",
		Location:      "Old Town",
		EstimatedCost: "$$",
		BestTime:      "8:00 PM",
	}
}

func TestBuildGuide_NoFiltersFallsBackToNeutralWhy(t *testing.T) {
	tip := BuildGuide(sampleRec(), Filters{Budget: AnyBudget, Goal: AnyGoal}, nil)

	assert.Equal(t, "Picked as a balanced match for your current preferences.", tip.Why)
	assert.NotEmpty(t, tip.Tweak)
}

func TestBuildGuide_GoalAndBudgetReasons(t *testing.T) {
	tip := BuildGuide(sampleRec(), Filters{Budget: "$$", Goal: GoalRomantic}, nil)

	assert.Contains(t, tip.Why, "leans romantic")
	assert.Contains(t, tip.Why, "matches your budget ($$)")
}

func TestBuildGuide_LikeMatchIsQuoted(t *testing.T) {
	tip := BuildGuide(sampleRec(), Filters{Budget: AnyBudget, Goal: AnyGoal, Likes: []string{"opera", "jazz"}}, nil)

	assert.Contains(t, tip.Why, `aligns with "jazz"`)
}

func TestBuildGuide_SessionStartTimeMentioned(t *testing.T) {
	session := &models.Session{DateStartISO: "2024-05-01T19:30:00-05:00"}
	tip := BuildGuide(sampleRec(), Filters{Budget: AnyBudget, Goal: AnyGoal}, session)

	assert.Contains(t, tip.Why, "pairs well with your start time around 8:00 PM")
}

func TestPickTweak_RomanticEveningGetsGoldenHour(t *testing.T) {
	tweak := pickTweak(sampleRec(), Filters{Goal: GoalRomantic})

	assert.Contains(t, tweak, "golden hour")
}

func TestPickTweak_ImpressOnCheapVenueSuggestsUpgrade(t *testing.T) {
	rec := sampleRec()
	rec.EstimatedCost = "$"
	tweak := pickTweak(rec, Filters{Goal: GoalImpress})

	assert.Contains(t, tweak, "upgrading")
}

func TestPickTweak_DeepTalkSuggestsQuietTable(t *testing.T) {
	tweak := pickTweak(sampleRec(), Filters{Goal: GoalDeepTalk})

	assert.Contains(t, tweak, "quiet corner table")
}

func TestPickTweak_MultipleLikesSuggestsChaining(t *testing.T) {
	tweak := pickTweak(sampleRec(), Filters{Goal: AnyGoal, Likes: []string{"jazz", "wine"}})

	assert.Contains(t, tweak, "Chain this")
}

func TestMatchingLike_CaseInsensitiveOnTitleAndDescription(t *testing.T) {
	rec := sampleRec()

	assert.Equal(t, "JAZZ", matchingLike(rec, []string{"JAZZ"}))
	assert.Equal(t, "small plates", matchingLike(rec, []string{"small plates"}))
	assert.Equal(t, "", matchingLike(rec, []string{"", "karaoke"}))
}
