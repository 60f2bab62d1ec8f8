package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPlanJSON = `{
	"weeklySchedule": [
		{
			"day": "Monday",
			"workoutType": "Strength Training",
			"durationMinutes": 45,
			"exercises": [
				{"name": "Squat", "sets": 3, "reps": 10, "restSeconds": 90, "notes": "keep back straight"}
			],
			"caloriesBurnt": 320,
			"notes": "lower body focus"
		},
		{
			"day": "Thursday",
			"workoutType": "Cardio",
			"durationMinutes": 30,
			"exercises": [],
			"caloriesBurnt": null,
			"notes": ""
		}
	],
	"progressionPlan": "increase weight by 5% weekly",
	"safetyPrecautions": "stop on sharp pain"
}`

func TestParseValidPlan(t *testing.T) {
	workoutPlan, err := Parse(validPlanJSON)
	require.NoError(t, err)
	require.Len(t, workoutPlan.WeeklySchedule, 2)

	monday := workoutPlan.WeeklySchedule[0]
	assert.Equal(t, "Monday", monday.Day)
	assert.Equal(t, "Strength Training", monday.WorkoutType)
	assert.Equal(t, 45, monday.DurationMinutes)
	require.Len(t, monday.Exercises, 1)
	assert.Equal(t, "Squat", monday.Exercises[0].Name)
	assert.Equal(t, 10, monday.Exercises[0].Reps)
	require.NotNil(t, monday.CaloriesBurnt)
	assert.Equal(t, 320, *monday.CaloriesBurnt)

	thursday := workoutPlan.WeeklySchedule[1]
	assert.Nil(t, thursday.CaloriesBurnt)
	assert.Empty(t, thursday.Exercises)

	assert.Equal(t, "increase weight by 5% weekly", workoutPlan.ProgressionPlan)
	assert.Equal(t, "stop on sharp pain", workoutPlan.SafetyPrecautions)
}

func TestParseRepairsRepsRangeOnRetry(t *testing.T) {
	// Valid JSON, but "reps" as a range string fails to unmarshal into an
	// int, which forces the repair retry.
	jsonText := `{"weeklySchedule": [{"day": "Monday", "workoutType": "Strength", "durationMinutes": 40, "exercises": [{"name": "Push-up", "sets": 3, "reps": "8-12", "restSeconds": 60, "notes": ""}], "caloriesBurnt": null, "notes": ""}], "progressionPlan": "", "safetyPrecautions": ""}`

	workoutPlan, err := Parse(jsonText)
	require.NoError(t, err)
	require.Len(t, workoutPlan.WeeklySchedule, 1)
	require.Len(t, workoutPlan.WeeklySchedule[0].Exercises, 1)
	assert.Equal(t, 8, workoutPlan.WeeklySchedule[0].Exercises[0].Reps)
}

func TestParseRepairsBareKeysOnRetry(t *testing.T) {
	jsonText := `{weeklySchedule: [], progressionPlan: "p", safetyPrecautions: "s",}`

	workoutPlan, err := Parse(jsonText)
	require.NoError(t, err)
	assert.Empty(t, workoutPlan.WeeklySchedule)
	assert.Equal(t, "p", workoutPlan.ProgressionPlan)
	assert.Equal(t, "s", workoutPlan.SafetyPrecautions)
}

func TestParseTerminalFailure(t *testing.T) {
	workoutPlan, err := Parse(`{this is not json at all`)
	assert.Nil(t, workoutPlan)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.NotEmpty(t, parseErr.Attempted)
	assert.Error(t, parseErr.Cause)
}
