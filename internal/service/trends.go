package service

import (
	"github.com/mindwell/backend/internal/models"
)

// Trend classifications for a week's wellness scores
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// DefaultTrendWindow is the number of recent check-ins examined right after
// a new submission.
const DefaultTrendWindow = 7

// trendThreshold is the half-window mean difference that separates
// improving/declining from stable.
const trendThreshold = 0.5

// ComputeRecentTrend compares the newest check-in against the one before it.
// recent must be sorted newest first. With fewer than two records it returns
// the not-enough-data shape carrying the true count.
func ComputeRecentTrend(recent []models.CheckIn) models.RecentTrend {
	if len(recent) < 2 {
		return models.RecentTrend{
			Message:    "Not enough data to show trends yet. Keep tracking for a few more days!",
			DataPoints: len(recent),
		}
	}

	latest := recent[0]
	previous := recent[1]

	var sum float64
	for _, c := range recent {
		sum += c.WellnessScore
	}

	scoreChange := latest.WellnessScore - previous.WellnessScore
	feelingChange := float64(latest.FeelingScale - previous.FeelingScale)
	sleepChange := float64(latest.SleepQuality - previous.SleepQuality)
	stressChange := float64(latest.StressLevel - previous.StressLevel)
	averageScore := sum / float64(len(recent))

	return models.RecentTrend{
		DataPoints:    len(recent),
		ScoreChange:   &scoreChange,
		FeelingChange: &feelingChange,
		SleepChange:   &sleepChange,
		StressChange:  &stressChange,
		AverageScore:  &averageScore,
	}
}

// ComputeWeeklyAnalytics derives the deterministic weekly rollup from a
// chronological day window. The caller guarantees week is non-empty.
func ComputeWeeklyAnalytics(week []models.CheckIn) *models.WeeklyAnalytics {
	totalDays := len(week)

	var sumWellness, sumFeeling, sumSleep, sumStress float64
	moodFrequency := make(map[string]int)

	for _, day := range week {
		sumWellness += day.WellnessScore
		sumFeeling += float64(day.FeelingScale)
		sumSleep += float64(day.SleepQuality)
		sumStress += float64(day.StressLevel)
		if day.Mood != "" {
			moodFrequency[day.Mood]++
		}
	}

	n := float64(totalDays)
	avgWellness := round1(sumWellness / n)
	avgFeeling := round1(sumFeeling / n)
	avgSleep := round1(sumSleep / n)
	avgStress := round1(sumStress / n)

	// First occurrence wins ties for both extremes
	best := &week[0]
	challenging := &week[0]
	for i := range week {
		if week[i].WellnessScore > best.WellnessScore {
			best = &week[i]
		}
		if week[i].WellnessScore < challenging.WellnessScore {
			challenging = &week[i]
		}
	}

	trend := classifyTrend(week)

	keyPatterns := []string{}
	if avgStress > 7 {
		keyPatterns = append(keyPatterns, "High stress levels throughout the week")
	}
	if avgSleep < 5 {
		keyPatterns = append(keyPatterns, "Poor sleep quality affecting wellness")
	}
	if avgWellness > 7 {
		keyPatterns = append(keyPatterns, "Strong overall mental wellness")
	}

	recommendations := []string{}
	if avgStress > 6 {
		recommendations = append(recommendations, "Consider stress management techniques")
	}
	if avgSleep < 6 {
		recommendations = append(recommendations, "Focus on improving sleep hygiene")
	}
	if trend == TrendDeclining {
		recommendations = append(recommendations, "Monitor mood patterns and consider additional support")
	}

	return &models.WeeklyAnalytics{
		StartDate:        week[0].Date,
		EndDate:          week[totalDays-1].Date,
		TotalDays:        totalDays,
		AvgWellnessScore: avgWellness,
		AvgFeelingScale:  avgFeeling,
		AvgSleepQuality:  avgSleep,
		AvgStressLevel:   avgStress,
		MoodFrequency:    moodFrequency,
		Trend:            trend,
		BestDay:          best,
		ChallengingDay:   challenging,
		KeyPatterns:      keyPatterns,
		Recommendations:  recommendations,
	}
}

// classifyTrend compares the mean wellness score of the window's first half
// against its second half.
func classifyTrend(week []models.CheckIn) string {
	mid := (len(week) + 1) / 2
	firstHalf := week[:mid]
	secondHalf := week[mid:]

	if len(secondHalf) == 0 {
		return TrendStable
	}

	var firstSum, secondSum float64
	for _, day := range firstHalf {
		firstSum += day.WellnessScore
	}
	for _, day := range secondHalf {
		secondSum += day.WellnessScore
	}

	firstAvg := firstSum / float64(len(firstHalf))
	secondAvg := secondSum / float64(len(secondHalf))

	switch {
	case secondAvg > firstAvg+trendThreshold:
		return TrendImproving
	case secondAvg < firstAvg-trendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// ComputeTrendStats aggregates a day window for the wellness-trends endpoint.
// Returns nil for an empty window.
func ComputeTrendStats(checkins []models.CheckIn) *models.TrendStats {
	if len(checkins) == 0 {
		return nil
	}

	var sumWellness, sumFeeling, sumSleep, sumStress float64
	minWellness := checkins[0].WellnessScore
	maxWellness := checkins[0].WellnessScore
	moodSet := make(map[string]bool)
	moods := []string{}

	for _, c := range checkins {
		sumWellness += c.WellnessScore
		sumFeeling += float64(c.FeelingScale)
		sumSleep += float64(c.SleepQuality)
		sumStress += float64(c.StressLevel)

		if c.WellnessScore < minWellness {
			minWellness = c.WellnessScore
		}
		if c.WellnessScore > maxWellness {
			maxWellness = c.WellnessScore
		}
		if c.Mood != "" && !moodSet[c.Mood] {
			moodSet[c.Mood] = true
			moods = append(moods, c.Mood)
		}
	}

	n := float64(len(checkins))

	return &models.TrendStats{
		AvgWellnessScore: round1(sumWellness / n),
		AvgFeelingScale:  round1(sumFeeling / n),
		AvgSleepQuality:  round1(sumSleep / n),
		AvgStressLevel:   round1(sumStress / n),
		MinWellnessScore: minWellness,
		MaxWellnessScore: maxWellness,
		TotalCheckins:    len(checkins),
		Moods:            moods,
	}
}
