package service

import (
	"fmt"
	"math"

	"github.com/mindwell/backend/internal/models"
)

// MinRecordsForCorrelation is the smallest record set for which pairwise
// correlations are reported.
const MinRecordsForCorrelation = 5

// ComputeCorrelations computes Pearson correlation coefficients between the
// three tracked metric pairs. With fewer than MinRecordsForCorrelation
// records it returns the insufficient-data shape with the true count.
func ComputeCorrelations(data []models.CheckIn) models.CorrelationResult {
	if len(data) < MinRecordsForCorrelation {
		return models.CorrelationResult{
			Message:         "Need more data points to calculate meaningful correlations",
			MinimumRequired: MinRecordsForCorrelation,
			CurrentCount:    len(data),
		}
	}

	sleep := make([]float64, len(data))
	stress := make([]float64, len(data))
	feeling := make([]float64, len(data))
	for i, d := range data {
		sleep[i] = float64(d.SleepQuality)
		stress[i] = float64(d.StressLevel)
		feeling[i] = float64(d.FeelingScale)
	}

	correlations := models.MetricCorrelations{
		SleepVsFeeling:  pearson(sleep, feeling),
		StressVsFeeling: pearson(stress, feeling),
		SleepVsStress:   pearson(sleep, stress),
	}

	interpretation := models.CorrelationInterpretation{
		SleepVsFeeling:  interpretCorrelation(correlations.SleepVsFeeling, "sleep quality", "feeling scale"),
		StressVsFeeling: interpretCorrelation(correlations.StressVsFeeling, "stress level", "feeling scale"),
		SleepVsStress:   interpretCorrelation(correlations.SleepVsStress, "sleep quality", "stress level"),
	}

	return models.CorrelationResult{
		CurrentCount:   len(data),
		Correlations:   &correlations,
		Interpretation: &interpretation,
		SampleSize:     len(data),
	}
}

// pearson computes the Pearson correlation coefficient. A zero denominator
// (no variance in either series) yields 0 rather than NaN.
func pearson(x, y []float64) float64 {
	n := float64(len(x))

	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
		sumY2 += y[i] * y[i]
	}

	numerator := n*sumXY - sumX*sumY
	denominator := math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY))

	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// interpretCorrelation maps a coefficient to a one-line qualitative reading.
func interpretCorrelation(r float64, factor1, factor2 string) string {
	absR := math.Abs(r)

	direction := "negative"
	if r > 0 {
		direction = "positive"
	}

	var strength string
	switch {
	case absR > 0.7:
		strength = "strong"
	case absR > 0.4:
		strength = "moderate"
	case absR > 0.2:
		strength = "weak"
	default:
		strength = "very weak"
	}

	return fmt.Sprintf("%s %s correlation between %s and %s (%.2f)", strength, direction, factor1, factor2, r)
}
