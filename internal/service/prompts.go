package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mindwell/backend/internal/models"
)

// Prompt construction for the text-generation collaborator. Prompts carry
// readable labels rather than raw numbers where the instrument defines them.

// stressQuestionLabels names each instrument question for the prompt
var stressQuestionLabels = map[int]string{
	1: "Overall feeling",
	2: "Sleep quality",
	3: "Energy level",
	4: "Overwhelm level",
	5: "Focus ability",
	6: "Relationship quality",
	7: "Physical comfort",
	8: "Appetite",
}

// stressAnswerLabels maps categorical answers to their display text. Slider
// questions (3, 7) are rendered as "X/10" instead.
var stressAnswerLabels = map[int]map[int]string{
	1: {1: "Amazing", 2: "Good", 3: "Okay", 4: "Not great", 5: "Terrible"},
	2: {1: "Like a baby", 2: "Pretty well", 3: "Okay", 4: "Restless", 5: "Barely slept"},
	4: {1: "Zen", 2: "Calm", 3: "Balanced", 4: "Stressed", 5: "Overwhelmed"},
	5: {1: "Laser focused", 2: "Pretty good", 3: "Average", 4: "Distracted", 5: "Can't focus"},
	6: {1: "Loving", 2: "Good", 3: "Neutral", 4: "Tense", 5: "Difficult"},
	8: {1: "Great appetite", 2: "Normal", 3: "Okay", 4: "Poor appetite", 5: "No appetite"},
}

// CheckInPrompt builds the supportive-insight prompt for one check-in.
func CheckInPrompt(sub *models.CheckInSubmission) string {
	var extras strings.Builder
	if sub.RecentEvents != "" {
		fmt.Fprintf(&extras, ", Events: %s", sub.RecentEvents)
	}
	if sub.AdditionalNotes != "" {
		fmt.Fprintf(&extras, ", Notes: %s", sub.AdditionalNotes)
	}

	return fmt.Sprintf(`You are a wellness data tracker. Analyze this daily check-in data and provide brief, neutral observations about patterns only.

Data: Feeling %g/10, Sleep %g/10, Stress %g/10, Mood: %s%s

Provide: Pattern observations in 20-30 words. Encourage continued tracking. No advice or recommendations.`,
		*sub.FeelingScale, *sub.SleepQuality, *sub.StressLevel, *sub.Mood, extras.String())
}

// StressPrompt builds the structured-output prompt for a stress assessment.
// The model is instructed to return JSON only, with trends and summary fields.
func StressPrompt(sub *models.StressSubmission, stressScore int) string {
	questionIDs := make([]int, 0, len(sub.Answers))
	for id := range sub.Answers {
		questionIDs = append(questionIDs, id)
	}
	sort.Ints(questionIDs)

	lines := make([]string, 0, len(questionIDs))
	for _, id := range questionIDs {
		value := sub.Answers[id]

		var text string
		if sliderQuestions[id] {
			text = fmt.Sprintf("%g/10", value)
		} else if label, ok := stressAnswerLabels[id][int(value)]; ok {
			text = label
		} else {
			text = fmt.Sprintf("%g", value)
		}

		questionLabel := stressQuestionLabels[id]
		if questionLabel == "" {
			questionLabel = fmt.Sprintf("Q%d", id)
		}

		lines = append(lines, fmt.Sprintf("%s: %s", questionLabel, text))
	}

	name := sub.Name
	if name == "" {
		name = "User"
	}
	age := sub.Age
	if age == "" {
		age = "Not specified"
	}

	return fmt.Sprintf(`You are a neutral assistant that identifies trends and recurring patterns in short mental-health assessments.

User:
- Name: %s
- Age: %s

Numeric stress score (0-10): %d

Responses:
%s

Output: JSON ONLY (no explanation, no surrounding text). The JSON MUST have exactly two fields:
{
  "trends": ["short trend sentence 1", "short trend sentence 2", "..."],
  "summary": "single brief factual summary describing recurring words, topics, or answer patterns"
}

Examples:
- trends should be short phrases like "low sleep quality", "low energy midday", "high social stress" etc.
- summary should be four or five short sentences, factual and non-judgmental without analysis or suggestions.

Return a valid JSON object only.`, name, age, stressScore, strings.Join(lines, "\n"))
}

// WeeklyPrompt builds the weekly-summary insight prompt from a week of
// check-ins and their computed analytics.
func WeeklyPrompt(week []models.CheckIn, analytics *models.WeeklyAnalytics) string {
	moods := make([]string, 0, len(analytics.MoodFrequency))
	for mood := range analytics.MoodFrequency {
		moods = append(moods, mood)
	}
	sort.Strings(moods)

	var daily strings.Builder
	for i, day := range week {
		fmt.Fprintf(&daily, "Day %d: Wellness %.1f/10, Mood: %s, Sleep: %d/10, Stress: %d/10\n",
			i+1, day.WellnessScore, day.Mood, day.SleepQuality, day.StressLevel)
	}

	return fmt.Sprintf(`Analyze this weekly mental health data and provide compassionate, actionable insights:

Weekly Overview:
- Average wellness score: %.1f/10
- Average feeling scale: %.1f/10
- Average sleep quality: %.1f/10
- Average stress level: %.1f/10
- Wellness trend: %s
- Most common moods: %s

Daily Data:
%s
Provide:
1. A warm acknowledgment of their week
2. 2-3 key insights about patterns
3. 2-3 specific, actionable recommendations
4. Encouragement and positive reinforcement

Keep response supportive and around 200 words.`,
		analytics.AvgWellnessScore, analytics.AvgFeelingScale, analytics.AvgSleepQuality,
		analytics.AvgStressLevel, analytics.Trend, strings.Join(moods, ", "), daily.String())
}
