// internal/plan/parse.go
package plan

import (
	"encoding/json"
	"fmt"

	"gymapp/backend/internal/domain"
)

// ParseError is returned when the generated JSON could not be parsed even
// after the repair retry. Attempted holds the last text that was tried; it is
// kept for diagnostics and must not be returned to API callers.
type ParseError struct {
	Cause     error
	Attempted string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing workout plan: %v", e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Parse deserializes candidate JSON text into a WorkoutPlan. On a failed
// parse the full repair heuristic set is applied and the parse retried
// exactly once; a second failure is terminal.
func Parse(jsonText string) (*domain.WorkoutPlan, error) {
	var workoutPlan domain.WorkoutPlan
	if err := json.Unmarshal([]byte(jsonText), &workoutPlan); err == nil {
		return &workoutPlan, nil
	}

	repaired := RepairJSON(jsonText)
	if err := json.Unmarshal([]byte(repaired), &workoutPlan); err != nil {
		return nil, &ParseError{Cause: err, Attempted: repaired}
	}
	return &workoutPlan, nil
}
