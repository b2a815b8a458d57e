package chat

import "strings"

const coachPersona = `You are a helpful virtual fitness coach. Provide encouraging, informative, and personalized fitness advice.`

const (
	workoutInstructions    = "Focus on providing specific workout recommendations with proper form instructions and safety tips."
	nutritionInstructions  = "Provide nutritional guidance while emphasizing the importance of consulting healthcare professionals for specific dietary needs."
	healthInstructions     = "Address the concern with care and recommend consulting a healthcare professional for any medical issues."
	motivationInstructions = "Focus on providing encouragement and motivation while offering practical tips to overcome challenges."
)

const closingInstructions = "Please respond in a friendly and supportive manner."

// BuildPrompt assembles the full generation prompt: the coaching persona,
// the rendered prior conversation, the user's latest message, and the
// steering clause selected by the intent (none for IntentNone).
func BuildPrompt(message, transcript string, intent Intent) string {
	var b strings.Builder
	b.WriteString(coachPersona)
	b.WriteString("\n\nPrevious conversation:\n")
	b.WriteString(transcript)
	b.WriteString("\n\nUser's latest message: ")
	b.WriteString(message)
	b.WriteString("\n\n")
	if instr := intentInstructions(intent); instr != "" {
		b.WriteString(instr)
		b.WriteString("\n\n")
	}
	b.WriteString(closingInstructions)
	return b.String()
}

func intentInstructions(intent Intent) string {
	switch intent {
	case IntentWorkout:
		return workoutInstructions
	case IntentNutrition:
		return nutritionInstructions
	case IntentHealth:
		return healthInstructions
	case IntentMotivation:
		return motivationInstructions
	default:
		return ""
	}
}
