package service

import "math"

// Daily wellness score weights. Stress is inverted before weighting so a
// higher raw stress reading lowers the score; the weights sum to 1.0, keeping
// the result inside [1,10] for inputs in [1,10].
const (
	feelingWeight = 0.4
	sleepWeight   = 0.3
	stressWeight  = 0.3
)

// stressQuestionWeights assigns a fixed weight to each of the 8 instrument
// questions. They sum to 1.00, but the score normalizes by the weights
// actually answered so missing questions do not skew the result.
var stressQuestionWeights = map[int]float64{
	1: 0.20,
	2: 0.15,
	3: 0.10,
	4: 0.20,
	5: 0.15,
	6: 0.10,
	7: 0.05,
	8: 0.05,
}

// sliderQuestions are answered on a 1-10 slider; all others are 1-5 categorical.
var sliderQuestions = map[int]bool{
	3: true,
	7: true,
}

// CalculateDailyScore computes the wellness score for one check-in,
// rounded to one decimal place.
func CalculateDailyScore(feelingScale, sleepQuality, stressLevel int) float64 {
	invertedStress := float64(11 - stressLevel)

	score := float64(feelingScale)*feelingWeight +
		float64(sleepQuality)*sleepWeight +
		invertedStress*stressWeight

	return math.Round(score*10) / 10
}

// CalculateStressScore turns raw instrument answers into an integer score in
// [0,10]. Each answer is normalized to [0,1] (sliders via (v-1)/9, categorical
// via (v-1)/4, clamped for robustness), weighted, averaged over the weights
// present, and scaled to 0-10.
func CalculateStressScore(answers map[int]float64) int {
	var totalScore, totalWeight float64

	for questionID, value := range answers {
		weight := stressQuestionWeights[questionID]
		if weight == 0 {
			continue
		}

		var normalized float64
		if sliderQuestions[questionID] {
			normalized = (value - 1) / 9
		} else {
			normalized = (value - 1) / 4
		}
		normalized = clamp01(normalized)

		totalScore += normalized * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return 0
	}

	avgNormalized := totalScore / totalWeight
	return int(math.Round(avgNormalized * 10))
}

// StressLevelLabel maps a 0-10 stress score to its categorical label.
func StressLevelLabel(score int) string {
	switch {
	case score <= 1:
		return "Very Low"
	case score <= 3:
		return "Low"
	case score <= 6:
		return "Moderate"
	case score <= 8:
		return "High"
	default:
		return "Very High"
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// round1 rounds to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
