package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	text := `Here is your plan: {"weeklySchedule":[]} Enjoy!`

	candidate, err := ExtractJSON(text)
	assert.NoError(t, err)
	assert.Equal(t, `{"weeklySchedule":[]}`, candidate)
}

func TestExtractJSONSpansFirstToLastBrace(t *testing.T) {
	text := "prose {\"a\": {\"b\": 1}} trailing"

	candidate, err := ExtractJSON(text)
	assert.NoError(t, err)
	assert.Equal(t, `{"a": {"b": 1}}`, candidate)
}

func TestExtractJSONNoObject(t *testing.T) {
	_, err := ExtractJSON("no json here at all")
	assert.ErrorIs(t, err, ErrNoJSONFound)
}

func TestExtractJSONAppliesRepsFixEagerly(t *testing.T) {
	text := `{"reps": "8-12"}`

	candidate, err := ExtractJSON(text)
	assert.NoError(t, err)
	assert.Equal(t, `{"reps": 8}`, candidate)
}

func TestRepairJSONQuotesBareKeys(t *testing.T) {
	repaired := RepairJSON(`{day: "Monday", sets: 3}`)
	assert.Equal(t, `{"day": "Monday","sets": 3}`, repaired)
}

func TestRepairJSONInsertsMissingCommas(t *testing.T) {
	repaired := RepairJSON(`[{"a": 1} {"b": 2}]`)
	assert.Equal(t, `[{"a": 1},{"b": 2}]`, repaired)
}

func TestRepairJSONStripsTrailingCommas(t *testing.T) {
	repaired := RepairJSON(`{"exercises": [1, 2,], "sets": 3,}`)
	assert.Equal(t, `{"exercises": [1, 2], "sets": 3}`, repaired)
}

func TestRepairJSONKeepsLowerRepsBound(t *testing.T) {
	repaired := RepairJSON(`{"reps": "10 - 15"}`)
	assert.Equal(t, `{"reps": 10}`, repaired)
}

func TestRepairJSONIdempotentOnValidJSON(t *testing.T) {
	valid := `{"weeklySchedule": [{"day": "Monday", "workoutType": "Strength", "durationMinutes": 45, "exercises": [{"name": "Push-up", "sets": 3, "reps": 10, "restSeconds": 60, "notes": "slow tempo"}], "caloriesBurnt": 300, "notes": "upper body"}], "progressionPlan": "add reps weekly", "safetyPrecautions": "warm up first"}`

	once := RepairJSON(valid)
	twice := RepairJSON(once)
	assert.Equal(t, valid, once)
	assert.Equal(t, once, twice)
}
