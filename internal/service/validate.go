package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mindwell/backend/internal/models"
)

// Validation checks run in a fixed order and the first violated rule wins:
// required fields, types, ranges, then the mood enum. Errors are surfaced
// verbatim to the caller.

// ValidateCheckIn checks a raw check-in submission. A nil return means valid.
func ValidateCheckIn(sub *models.CheckInSubmission) error {
	if sub.FeelingScale == nil || sub.SleepQuality == nil || sub.StressLevel == nil || sub.Mood == nil || sub.UserID == nil {
		return errors.New("Missing required fields: user_id, feeling_scale, sleep_quality, stress_level, mood")
	}

	if *sub.FeelingScale < 1 || *sub.FeelingScale > 10 {
		return errors.New("feeling_scale must be between 1 and 10")
	}

	if *sub.SleepQuality < 1 || *sub.SleepQuality > 10 {
		return errors.New("sleep_quality must be between 1 and 10")
	}

	if *sub.StressLevel < 1 || *sub.StressLevel > 10 {
		return errors.New("stress_level must be between 1 and 10")
	}

	if !isValidMood(*sub.Mood) {
		return fmt.Errorf("mood must be one of: %s", strings.Join(models.ValidMoods, ", "))
	}

	if len(sub.AdditionalNotes) > models.MaxNotesLength {
		return fmt.Errorf("notes must be %d characters or fewer", models.MaxNotesLength)
	}

	return nil
}

// ValidateStressSubmission checks a raw stress-assessment submission.
func ValidateStressSubmission(sub *models.StressSubmission) error {
	if sub.UserID == "" {
		return errors.New("user_id is required")
	}
	if len(sub.Answers) == 0 {
		return errors.New("Answers are required")
	}
	return nil
}

// ValidateQuickMood checks the lightweight mood-tracking payload.
func ValidateQuickMood(req *models.QuickMoodRequest) error {
	if req.Mood == "" || req.FeelingScale == 0 {
		return errors.New("Missing required fields: mood and feeling_scale")
	}
	if req.FeelingScale < 1 || req.FeelingScale > 10 {
		return errors.New("feeling_scale must be between 1 and 10")
	}
	return nil
}

// ValidateMoodCheck checks the summary-family quick mood check payload.
func ValidateMoodCheck(req *models.MoodCheckRequest) error {
	if req.Mood == "" || req.Intensity == 0 {
		return errors.New("Mood and intensity are required")
	}
	if req.Intensity < 1 || req.Intensity > 10 {
		return errors.New("Intensity must be between 1 and 10")
	}
	return nil
}

// ValidateSaveCheckIn checks the weekly-family save path payload.
func ValidateSaveCheckIn(req *models.SaveCheckInRequest) error {
	if req.UserID == "" || req.WellnessScore == 0 || req.FeelingScale == 0 || req.Mood == "" || req.SleepQuality == 0 || req.StressLevel == 0 {
		return errors.New("All required fields must be provided")
	}
	return nil
}

func isValidMood(mood string) bool {
	lower := strings.ToLower(mood)
	for _, m := range models.ValidMoods {
		if lower == m {
			return true
		}
	}
	return false
}

// BindErrorMessage translates a JSON decoding error into the validator's
// type-rule messages, so wrong-typed payloads report the same violation the
// ordered rules would.
func BindErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		switch typeErr.Field {
		case "feeling_scale", "sleep_quality", "stress_level":
			return "feeling_scale, sleep_quality, and stress_level must be numbers"
		case "mood", "user_id":
			return "mood and user_id must be strings"
		}
	}
	return "Invalid request body"
}
