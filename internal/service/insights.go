package service

import (
	"fmt"
	"strings"

	"github.com/mindwell/backend/internal/models"
)

// Deterministic insight text. Everything in this file is threshold-based and
// usable standalone when the AI collaborator is unavailable; none of it
// references the AI.

const observationsNote = "These are data observations, not medical assessments"

// GenerateDataInsights produces the threshold-based observations for one
// check-in score and its raw metrics.
func GenerateDataInsights(wellnessScore float64, feelingScale, sleepQuality, stressLevel int) models.DataInsights {
	insights := []string{}

	switch {
	case wellnessScore >= 8:
		insights = append(insights, "Your daily score is in the higher range today")
	case wellnessScore >= 6.5:
		insights = append(insights, "Your daily score shows moderate positive levels")
	case wellnessScore >= 5:
		insights = append(insights, "Your daily score is in the middle range")
	default:
		insights = append(insights, "Your daily score is in the lower range today")
	}

	if stressLevel >= 7 {
		insights = append(insights, "Your stress level reading is on the higher side")
	}

	if sleepQuality <= 4 {
		insights = append(insights, "Your sleep quality rating is below 5")
	}

	if feelingScale >= 7 {
		insights = append(insights, "Your feeling scale shows positive levels")
	}

	return models.DataInsights{
		WellnessScore: wellnessScore,
		ScoreCalculation: models.ScoreCalculation{
			FeelingScale: fmt.Sprintf("%d/10 (40%% weight)", feelingScale),
			SleepQuality: fmt.Sprintf("%d/10 (30%% weight)", sleepQuality),
			StressLevel:  fmt.Sprintf("%d/10 (30%% weight, inverted)", stressLevel),
		},
		Observations: insights,
		Note:         observationsNote,
	}
}

// FallbackSupportiveResponse is the deterministic substitute for the
// AI-generated supportive text on the check-in path.
func FallbackSupportiveResponse(feelingScale, sleepQuality, stressLevel int, mood string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Thank you for submitting your wellness data. Today's entry shows a %s mood with a %d/10 feeling scale rating. ", mood, feelingScale)

	if stressLevel > 7 {
		fmt.Fprintf(&b, "Your stress level reading of %d/10 is in the higher range. ", stressLevel)
	}

	if sleepQuality < 5 {
		fmt.Fprintf(&b, "Your sleep quality rating of %d/10 falls below the midpoint. ", sleepQuality)
	}

	if feelingScale >= 7 {
		b.WriteString("Your feeling scale reading indicates levels above 7/10. ")
	}

	b.WriteString("Continuing to track these metrics over time will help identify patterns and trends in your personal data. This information is for your personal tracking and pattern recognition only.")

	return b.String()
}

// EncouragingResponse is the deterministic reply for the quick mood endpoint.
func EncouragingResponse(mood string, feelingScale float64) string {
	if feelingScale >= 7 {
		return fmt.Sprintf("Thanks for tracking your %s mood today! Your %g/10 feeling scale shows positive levels. Keep noting what contributes to these good days.", mood, feelingScale)
	}
	if feelingScale >= 4 {
		return fmt.Sprintf("Thanks for sharing that you're feeling %s with a %g/10 rating. Every data point helps you understand your patterns better.", mood, feelingScale)
	}
	return fmt.Sprintf("Thank you for tracking your %s feelings today. Your %g/10 rating is valuable data. Remember, all feelings are valid and tracking helps you understand your patterns.", mood, feelingScale)
}

// quickMoodSupportMoods flag low-intensity moods that warrant immediate attention
var quickMoodSupportMoods = map[string]bool{
	"sad":         true,
	"hopeless":    true,
	"overwhelmed": true,
	"anxious":     true,
}

// QuickMoodResponse is the deterministic reply for the summary-family quick
// mood check.
func QuickMoodResponse(mood string, intensity float64, trigger string, needsSupport bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Thank you for checking in. I see you're feeling %s at a %g/10 intensity. ", mood, intensity)

	if trigger != "" {
		fmt.Fprintf(&b, "It sounds like %s might be influencing how you're feeling right now. ", trigger)
	}

	switch {
	case intensity >= 7:
		b.WriteString("It's wonderful that you're experiencing positive emotions! Try to savor this moment.")
	case intensity >= 4:
		b.WriteString("You're navigating through some mixed feelings, which is completely normal. Be gentle with yourself.")
	default:
		b.WriteString("I can see you're having a difficult time right now. Your feelings are valid, and it's okay to reach out for support.")
	}

	if needsSupport {
		b.WriteString(" Since you've indicated you need support, consider talking to a trusted friend, family member, or mental health professional.")
	}

	return b.String()
}

// NeedsImmediateAttention reports whether a quick mood check should be
// flagged for follow-up.
func NeedsImmediateAttention(mood string, intensity float64, needsSupport bool) bool {
	return (intensity <= 3 && quickMoodSupportMoods[strings.ToLower(mood)]) || needsSupport
}

// FallbackWeeklyInsights is the deterministic substitute for the AI weekly
// summary text.
func FallbackWeeklyInsights(analytics *models.WeeklyAnalytics) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Looking at your week, your average wellness score was %.1f/10. ", analytics.AvgWellnessScore)

	if analytics.Trend == TrendImproving {
		b.WriteString("I'm pleased to see your wellness trending upward this week! ")
	} else if analytics.Trend == TrendDeclining {
		b.WriteString("I notice your wellness has been declining this week. This is a normal part of life's ups and downs. ")
	}

	if analytics.AvgStressLevel > 6 {
		b.WriteString("Your stress levels have been elevated. Consider incorporating stress-reduction activities into your daily routine. ")
	}

	if analytics.AvgSleepQuality < 6 {
		b.WriteString("Your sleep quality could benefit from attention, as good sleep is foundational to mental wellness. ")
	}

	b.WriteString("Remember that mental health is a journey, and every small step toward self-care matters.")

	return b.String()
}

// PatternInsights derives deterministic observations from a day window's
// chronological series and its aggregate stats.
func PatternInsights(daily []models.CheckIn, stats *models.TrendStats) []string {
	if stats == nil || len(daily) < 3 {
		return []string{"Not enough data points to identify patterns yet. Keep tracking!"}
	}

	insights := []string{}

	// Monotone trend over the last three days
	recent := daily[len(daily)-3:]
	ascending, descending := true, true
	for i := 1; i < len(recent); i++ {
		if recent[i].WellnessScore < recent[i-1].WellnessScore {
			ascending = false
		}
		if recent[i].WellnessScore > recent[i-1].WellnessScore {
			descending = false
		}
	}
	if ascending {
		insights = append(insights, "Your daily scores show an upward trend over the last few days")
	} else if descending {
		insights = append(insights, "Your daily scores show a downward trend recently")
	}

	if stats.AvgWellnessScore >= 7 {
		insights = append(insights, "Your average daily score is in the higher range")
	} else if stats.AvgWellnessScore <= 4 {
		insights = append(insights, "Your average daily score is in the lower range")
	}

	scoreRange := stats.MaxWellnessScore - stats.MinWellnessScore
	if scoreRange > 4 {
		insights = append(insights, "Your daily scores show significant variation")
	} else if scoreRange < 2 {
		insights = append(insights, "Your daily scores show consistent patterns")
	}

	if stats.AvgSleepQuality < 5 && stats.AvgStressLevel > 6 {
		insights = append(insights, "Your data shows both lower sleep quality and higher stress levels")
	}

	if len(insights) == 0 {
		return []string{"Continue tracking to reveal more patterns in your data"}
	}

	return insights
}
