// internal/domain/plan.go
package domain

import (
	"strings"
	"time"
)

// Weekday is a typed day-of-week for plan scheduling. Monday is 0 so the
// canonical plan order (Monday..Sunday) matches the zero-based ordinal.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// String returns the canonical English name of the weekday.
func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "Unknown"
	}
	return weekdayNames[w]
}

// ParseWeekday matches a weekday label case-insensitively against the seven
// canonical names. The second return value reports whether the label was
// recognized.
func ParseWeekday(label string) (Weekday, bool) {
	trimmed := strings.TrimSpace(label)
	for i, name := range weekdayNames {
		if strings.EqualFold(trimmed, name) {
			return Weekday(i), true
		}
	}
	return Monday, false
}

// Weekdays returns the seven weekdays in canonical plan order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// FromTime converts a time.Weekday (Sunday-based) to a plan Weekday.
func FromTime(w time.Weekday) Weekday {
	return Weekday((int(w) + 6) % 7)
}

// WorkoutPlan is the structured weekly plan produced by the generation
// pipeline. The field names form the wire contract with the generation
// service; see the prompt template in the plan package.
type WorkoutPlan struct {
	WeeklySchedule    []WorkoutDay `json:"weeklySchedule"`
	ProgressionPlan   string       `json:"progressionPlan"`
	SafetyPrecautions string       `json:"safetyPrecautions"`
}

// WorkoutDay is one scheduled day within a WorkoutPlan. Day is kept as the
// raw label from the generated JSON; it is only resolved to a Weekday when
// the plan is persisted or reconstructed.
type WorkoutDay struct {
	Day             string     `json:"day"`
	WorkoutType     string     `json:"workoutType"`
	DurationMinutes int        `json:"durationMinutes"`
	Exercises       []Exercise `json:"exercises"`
	CaloriesBurnt   *int       `json:"caloriesBurnt"`
	Notes           string     `json:"notes"`
}

// Exercise is a single exercise within a workout day. Reps is always a
// single integer; range-like values ("8-12") are normalized away before
// structural parsing.
type Exercise struct {
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	RestSeconds int    `json:"restSeconds"`
	Notes       string `json:"notes"`
}
