// Package mockdata produces the synthetic fallback records served when
// a real fetch cannot be made. Generators are pure functions of the
// supplied reference date so tests get identical output for identical
// input; callers pass time.Now() at the outermost call site.
package mockdata

import (
	"time"

	"github.com/star88etti/health-buddie-log/internal/models"
)

// ExerciseLogs returns three sample exercise entries dated relative to
// ref, most recent first.
func ExerciseLogs(ref time.Time) []models.ExerciseLog {
	return []models.ExerciseLog{
		{
			ID:       "mock-exercise-1",
			Date:     ref.AddDate(0, 0, -1),
			Duration: 30,
			Type:     "running",
			Distance: "3 miles",
		},
		{
			ID:       "mock-exercise-2",
			Date:     ref.AddDate(0, 0, -2),
			Duration: 45,
			Type:     "cycling",
			Distance: "10 miles",
		},
		{
			ID:       "mock-exercise-3",
			Date:     ref.AddDate(0, 0, -4),
			Duration: 60,
			Type:     "yoga",
			Distance: "",
		},
	}
}

// FoodLogs returns three sample meal entries dated relative to ref,
// most recent first.
func FoodLogs(ref time.Time) []models.FoodLog {
	return []models.FoodLog{
		{
			ID:        "mock-food-1",
			Date:      ref.AddDate(0, 0, -1),
			FoodItems: "Oatmeal with berries, coffee",
		},
		{
			ID:        "mock-food-2",
			Date:      ref.AddDate(0, 0, -2),
			FoodItems: "Grilled chicken salad, iced tea",
		},
		{
			ID:        "mock-food-3",
			Date:      ref.AddDate(0, 0, -3),
			FoodItems: "Salmon with rice and vegetables",
		},
	}
}

// HealthData bundles the sample exercise and food logs.
func HealthData(ref time.Time) models.HealthData {
	return models.HealthData{
		ExerciseLogs: ExerciseLogs(ref),
		FoodLogs:     FoodLogs(ref),
	}
}

// Messages returns three sample incoming messages dated relative to
// ref, most recent first: a processed exercise log, a processed food
// log, and a status query no classifier has handled yet.
func Messages(ref time.Time) []models.Message {
	return []models.Message{
		{
			ID:        "mock-message-1",
			Content:   "Ran 3 miles this morning, about 30 minutes",
			Timestamp: ref.AddDate(0, 0, -1),
			Direction: models.DirectionIncoming,
			Channel:   "sms",
			Processed: true,
			Category:  models.CategoryExercise,
			ProcessedData: map[string]any{
				"type":     "running",
				"duration": 30,
				"distance": "3 miles",
			},
		},
		{
			ID:        "mock-message-2",
			Content:   "Had a grilled chicken salad for lunch",
			Timestamp: ref.AddDate(0, 0, -2),
			Direction: models.DirectionIncoming,
			Channel:   "sms",
			Processed: true,
			Category:  models.CategoryFood,
			ProcessedData: map[string]any{
				"foodItems": "Grilled chicken salad",
			},
		},
		{
			ID:        "mock-message-3",
			Content:   "What have I logged this week?",
			Timestamp: ref.AddDate(0, 0, -3),
			Direction: models.DirectionIncoming,
			Channel:   "sms",
			Processed: false,
		},
	}
}
