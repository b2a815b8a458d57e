package chat

import "strings"

// Intent classifies what a user message is asking for. Classification only
// ever selects prompt text; it never changes persistence or control flow.
type Intent string

const (
	IntentNone       Intent = ""
	IntentWorkout    Intent = "workout_request"
	IntentNutrition  Intent = "nutrition_question"
	IntentHealth     Intent = "health_concern"
	IntentMotivation Intent = "motivation_needed"
)

// Checked in priority order; the first category with a matching keyword wins.
var intentKeywords = []struct {
	intent   Intent
	keywords []string
}{
	{IntentWorkout, []string{"workout", "exercise", "training", "routine", "fitness"}},
	{IntentNutrition, []string{"diet", "nutrition", "food", "calories", "meal", "eat"}},
	{IntentHealth, []string{"pain", "injury", "hurt", "doctor", "medical"}},
	{IntentMotivation, []string{"tired", "unmotivated", "give up", "difficult", "hard"}},
}

// ClassifyIntent selects at most one intent by keyword membership over the
// lowercased message. No match falls through to IntentNone.
func ClassifyIntent(message string) Intent {
	lower := strings.ToLower(message)
	for _, c := range intentKeywords {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.intent
			}
		}
	}
	return IntentNone
}
