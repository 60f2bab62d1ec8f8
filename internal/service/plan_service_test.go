package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gymapp/backend/internal/domain"
	"gymapp/backend/internal/plan"
	"gymapp/backend/internal/repository"
)

// --- Fakes ---

type fakeProfileRepo struct {
	profile *domain.UserProfile
	err     error
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.UserProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	return nil
}

type fakeWorkoutRepo struct {
	created   []domain.Workout
	records   []domain.Workout
	createErr error
	getErr    error
	deleteErr error
	deleted   []primitive.ObjectID
}

func (f *fakeWorkoutRepo) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	if f.createErr != nil {
		return primitive.NilObjectID, f.createErr
	}
	w := *workout
	w.ID = primitive.NewObjectID()
	f.created = append(f.created, w)
	return w.ID, nil
}

func (f *fakeWorkoutRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.records, nil
}

func (f *fakeWorkoutRepo) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeGenerator struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

// fixedNow is a Wednesday.
var fixedNow = time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC)

func newTestPlanService(profileRepo repository.ProfileRepository, workoutRepo repository.WorkoutRepository, generator *fakeGenerator) *planService {
	return &planService{
		profileRepo: profileRepo,
		workoutRepo: workoutRepo,
		generator:   generator,
		now:         func() time.Time { return fixedNow },
	}
}

func serviceTestProfile() *domain.UserProfile {
	return &domain.UserProfile{
		UserID:             primitive.NewObjectID(),
		Gender:             domain.GenderFemale,
		ActivityLevel:      domain.ActivityLightlyActive,
		FitnessGoals:       domain.GoalBuildMuscle,
		WorkoutLocations:   domain.LocationGym,
		WorkoutTimes:       domain.TimeEvening,
		AvailableEquipment: domain.EquipmentDumbbells,
		HealthConditions:   domain.ConditionNone,
	}
}

const generatedPlanText = `Sure, here is your plan:
{
	"weeklySchedule": [
		{"day": "Monday", "workoutType": "Strength", "durationMinutes": 45,
		 "exercises": [{"name": "Squat", "sets": 3, "reps": 10, "restSeconds": 90, "notes": ""}],
		 "caloriesBurnt": 300, "notes": "lower body"},
		{"day": "Wednesday", "workoutType": "Cardio", "durationMinutes": 30,
		 "exercises": [], "caloriesBurnt": null, "notes": "easy pace"},
		{"day": "Friday", "workoutType": "Strength", "durationMinutes": 45,
		 "exercises": [{"name": "Bench Press", "sets": 3, "reps": 8, "restSeconds": 120, "notes": ""}],
		 "caloriesBurnt": 280, "notes": "upper body"}
	],
	"progressionPlan": "add one rep per week",
	"safetyPrecautions": "warm up before lifting"
}
Enjoy your training!`

// --- nextOccurrence ---

func TestNextOccurrence(t *testing.T) {
	cases := []struct {
		target domain.Weekday
		want   time.Time
	}{
		// Same weekday as now schedules a full week out, never today.
		{domain.Wednesday, time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)},
		{domain.Thursday, time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)},
		{domain.Friday, time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)},
		{domain.Sunday, time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)},
		{domain.Monday, time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)},
		{domain.Tuesday, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got := nextOccurrence(fixedNow, tc.target)
		assert.Equal(t, tc.want, got, "target %s", tc.target)
		assert.True(t, got.After(fixedNow), "target %s must be strictly in the future", tc.target)
	}
}

// --- GenerateWorkoutPlan ---

func TestGenerateWorkoutPlanPersistsOneRecordPerDay(t *testing.T) {
	workoutRepo := &fakeWorkoutRepo{}
	generator := &fakeGenerator{text: generatedPlanText}
	svc := newTestPlanService(&fakeProfileRepo{profile: serviceTestProfile()}, workoutRepo, generator)

	resp, err := svc.GenerateWorkoutPlan(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	require.NotNil(t, resp.WorkoutPlan)
	assert.NotEmpty(t, resp.ProfileDescription)
	assert.Len(t, resp.WorkoutPlan.WeeklySchedule, 3)
	require.Len(t, workoutRepo.created, 3)

	monday := workoutRepo.created[0]
	assert.Equal(t, "Strength", monday.WorkoutType)
	assert.Equal(t, 45, monday.DurationMinutes)
	assert.Equal(t, time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC), monday.WorkoutDate)
	require.NotNil(t, monday.CaloriesBurnt)
	assert.Equal(t, 300, *monday.CaloriesBurnt)

	var exercises []domain.Exercise
	require.NoError(t, json.Unmarshal([]byte(monday.Exercises), &exercises))
	require.Len(t, exercises, 1)
	assert.Equal(t, "Squat", exercises[0].Name)

	assert.Contains(t, monday.Notes, "Day: Monday")
	assert.Contains(t, monday.Notes, "Notes: lower body")
	assert.Contains(t, monday.Notes, "Progression Plan: add one rep per week")
	assert.Contains(t, monday.Notes, "Safety Precautions: warm up before lifting")

	// Wednesday in the plan matches today, so it lands a full week out.
	wednesday := workoutRepo.created[1]
	assert.Equal(t, time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC), wednesday.WorkoutDate)
	assert.Nil(t, wednesday.CaloriesBurnt)
}

func TestGenerateWorkoutPlanMissingProfile(t *testing.T) {
	svc := newTestPlanService(&fakeProfileRepo{err: repository.ErrNotFound}, &fakeWorkoutRepo{}, &fakeGenerator{})

	_, err := svc.GenerateWorkoutPlan(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestGenerateWorkoutPlanGeneratorFailure(t *testing.T) {
	workoutRepo := &fakeWorkoutRepo{}
	genErr := errors.New("upstream unavailable")
	svc := newTestPlanService(&fakeProfileRepo{profile: serviceTestProfile()}, workoutRepo, &fakeGenerator{err: genErr})

	_, err := svc.GenerateWorkoutPlan(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, genErr)
	assert.Empty(t, workoutRepo.created)
}

func TestGenerateWorkoutPlanUnparsableOutput(t *testing.T) {
	workoutRepo := &fakeWorkoutRepo{}
	generator := &fakeGenerator{text: "I could not produce a plan this time, sorry."}
	svc := newTestPlanService(&fakeProfileRepo{profile: serviceTestProfile()}, workoutRepo, generator)

	_, err := svc.GenerateWorkoutPlan(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, plan.ErrNoJSONFound)
	assert.Empty(t, workoutRepo.created)
}

func TestGenerateWorkoutPlanUnrecognizedDayFallsBackToMonday(t *testing.T) {
	workoutRepo := &fakeWorkoutRepo{}
	generator := &fakeGenerator{text: `{"weeklySchedule": [{"day": "Everyday", "workoutType": "Mobility", "durationMinutes": 20, "exercises": [], "caloriesBurnt": null, "notes": ""}], "progressionPlan": "", "safetyPrecautions": ""}`}
	svc := newTestPlanService(&fakeProfileRepo{profile: serviceTestProfile()}, workoutRepo, generator)

	_, err := svc.GenerateWorkoutPlan(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	require.Len(t, workoutRepo.created, 1)
	assert.Equal(t, time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC), workoutRepo.created[0].WorkoutDate)
	assert.Contains(t, workoutRepo.created[0].Notes, "Day: Everyday")
}

// --- GetLatestWorkoutPlan ---

func dayNotes(day, notes, progression, safety string) string {
	return "Day: " + day + "\nNotes: " + notes + "\nProgression Plan: " + progression + "\nSafety Precautions: " + safety
}

func dayRecord(userID primitive.ObjectID, day, workoutType, progression, safety string) domain.Workout {
	return domain.Workout{
		ID:              primitive.NewObjectID(),
		UserID:          userID,
		WorkoutType:     workoutType,
		DurationMinutes: 40,
		Exercises:       `[{"name": "Squat", "sets": 3, "reps": 10, "restSeconds": 90, "notes": ""}]`,
		Notes:           dayNotes(day, "note for "+day, progression, safety),
	}
}

func TestGetLatestWorkoutPlanNoRecords(t *testing.T) {
	svc := newTestPlanService(&fakeProfileRepo{}, &fakeWorkoutRepo{}, &fakeGenerator{})

	_, err := svc.GetLatestWorkoutPlan(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrWorkoutPlanNotFound)
}

func TestGetLatestWorkoutPlanRoundTrip(t *testing.T) {
	workoutRepo := &fakeWorkoutRepo{}
	generator := &fakeGenerator{text: generatedPlanText}
	svc := newTestPlanService(&fakeProfileRepo{profile: serviceTestProfile()}, workoutRepo, generator)

	userID := primitive.NewObjectID()
	resp, err := svc.GenerateWorkoutPlan(context.Background(), userID)
	require.NoError(t, err)

	workoutRepo.records = workoutRepo.created
	rebuilt, err := svc.GetLatestWorkoutPlan(context.Background(), userID)
	require.NoError(t, err)

	require.Len(t, rebuilt.WeeklySchedule, 3)
	assert.Equal(t, "Monday", rebuilt.WeeklySchedule[0].Day)
	assert.Equal(t, "Wednesday", rebuilt.WeeklySchedule[1].Day)
	assert.Equal(t, "Friday", rebuilt.WeeklySchedule[2].Day)

	original := resp.WorkoutPlan.WeeklySchedule
	for i, day := range rebuilt.WeeklySchedule {
		assert.Equal(t, original[i].WorkoutType, day.WorkoutType)
		assert.Equal(t, original[i].DurationMinutes, day.DurationMinutes)
		assert.Equal(t, original[i].Notes, day.Notes)
		assert.Equal(t, original[i].CaloriesBurnt, day.CaloriesBurnt)
		assert.Equal(t, original[i].Exercises, day.Exercises)
	}
	assert.Equal(t, "add one rep per week", rebuilt.ProgressionPlan)
	assert.Equal(t, "warm up before lifting", rebuilt.SafetyPrecautions)
}

func TestGetLatestWorkoutPlanNewestBatchWins(t *testing.T) {
	userID := primitive.NewObjectID()
	allDays := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

	// 20 records across three generation batches, most recent first as the
	// repository returns them: a fresh 3-day plan, a full 7-day plan, and an
	// old 10-record batch (7 days plus duplicates).
	records := []domain.Workout{
		dayRecord(userID, "Monday", "New Strength", "new progression", "new safety"),
		dayRecord(userID, "Tuesday", "New Cardio", "new progression", "new safety"),
		dayRecord(userID, "Wednesday", "New Mobility", "new progression", "new safety"),
	}
	for _, day := range allDays {
		records = append(records, dayRecord(userID, day, "Mid "+day, "mid progression", "mid safety"))
	}
	for _, day := range allDays {
		records = append(records, dayRecord(userID, day, "Old "+day, "old progression", "old safety"))
	}
	for _, day := range []string{"Monday", "Wednesday", "Friday"} {
		records = append(records, dayRecord(userID, day, "Old Extra "+day, "old progression", "old safety"))
	}
	require.Len(t, records, 20)

	svc := newTestPlanService(&fakeProfileRepo{}, &fakeWorkoutRepo{records: records}, &fakeGenerator{})
	rebuilt, err := svc.GetLatestWorkoutPlan(context.Background(), userID)
	require.NoError(t, err)

	// Seven days survive: the fresh batch claims Monday-Wednesday, the middle
	// batch fills the rest, and the oldest batch never surfaces.
	require.Len(t, rebuilt.WeeklySchedule, 7)
	assert.Equal(t, "New Strength", rebuilt.WeeklySchedule[0].WorkoutType)
	assert.Equal(t, "New Cardio", rebuilt.WeeklySchedule[1].WorkoutType)
	assert.Equal(t, "New Mobility", rebuilt.WeeklySchedule[2].WorkoutType)
	assert.Equal(t, "Mid Thursday", rebuilt.WeeklySchedule[3].WorkoutType)
	assert.Equal(t, "Mid Friday", rebuilt.WeeklySchedule[4].WorkoutType)
	assert.Equal(t, "Mid Saturday", rebuilt.WeeklySchedule[5].WorkoutType)
	assert.Equal(t, "Mid Sunday", rebuilt.WeeklySchedule[6].WorkoutType)
	for _, day := range rebuilt.WeeklySchedule {
		assert.NotContains(t, day.WorkoutType, "Old")
	}
	assert.Equal(t, "new progression", rebuilt.ProgressionPlan)
	assert.Equal(t, "new safety", rebuilt.SafetyPrecautions)
}

func TestGetLatestWorkoutPlanDedupesDayLabelsCaseInsensitively(t *testing.T) {
	userID := primitive.NewObjectID()
	records := []domain.Workout{
		dayRecord(userID, "MONDAY", "First", "p", "s"),
		dayRecord(userID, "monday", "Second", "p", "s"),
	}

	svc := newTestPlanService(&fakeProfileRepo{}, &fakeWorkoutRepo{records: records}, &fakeGenerator{})
	rebuilt, err := svc.GetLatestWorkoutPlan(context.Background(), userID)
	require.NoError(t, err)

	require.Len(t, rebuilt.WeeklySchedule, 1)
	assert.Equal(t, "Monday", rebuilt.WeeklySchedule[0].Day)
	assert.Equal(t, "First", rebuilt.WeeklySchedule[0].WorkoutType)
}

func TestGetLatestWorkoutPlanGarbledLabelOccupiesSlot(t *testing.T) {
	userID := primitive.NewObjectID()
	// A garbled label consumes one of the seven slots, so the oldest distinct
	// day never makes it in, and the garbled label itself is never emitted.
	records := []domain.Workout{dayRecord(userID, "Funday", "Garbled", "p", "s")}
	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"} {
		records = append(records, dayRecord(userID, day, "Workout "+day, "p", "s"))
	}

	svc := newTestPlanService(&fakeProfileRepo{}, &fakeWorkoutRepo{records: records}, &fakeGenerator{})
	rebuilt, err := svc.GetLatestWorkoutPlan(context.Background(), userID)
	require.NoError(t, err)

	require.Len(t, rebuilt.WeeklySchedule, 6)
	assert.Equal(t, "Monday", rebuilt.WeeklySchedule[0].Day)
	assert.Equal(t, "Saturday", rebuilt.WeeklySchedule[5].Day)
	for _, day := range rebuilt.WeeklySchedule {
		assert.NotEqual(t, "Funday", day.Day)
		assert.NotEqual(t, "Sunday", day.Day)
	}
}

func TestGetLatestWorkoutPlanMissingDayMarkerNotEmitted(t *testing.T) {
	userID := primitive.NewObjectID()
	records := []domain.Workout{
		{
			ID:          primitive.NewObjectID(),
			UserID:      userID,
			WorkoutType: "Mystery",
			Notes:       "free-form note without markers",
		},
	}

	svc := newTestPlanService(&fakeProfileRepo{}, &fakeWorkoutRepo{records: records}, &fakeGenerator{})
	rebuilt, err := svc.GetLatestWorkoutPlan(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, rebuilt.WeeklySchedule)
}

// --- Workout record operations ---

func TestListWorkoutsPassesThrough(t *testing.T) {
	userID := primitive.NewObjectID()
	records := []domain.Workout{dayRecord(userID, "Monday", "Strength", "p", "s")}
	svc := newTestPlanService(&fakeProfileRepo{}, &fakeWorkoutRepo{records: records}, &fakeGenerator{})

	workouts, err := svc.ListWorkouts(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, records, workouts)
}

func TestDeleteWorkout(t *testing.T) {
	workoutRepo := &fakeWorkoutRepo{}
	svc := newTestPlanService(&fakeProfileRepo{}, workoutRepo, &fakeGenerator{})

	workoutID := primitive.NewObjectID()
	require.NoError(t, svc.DeleteWorkout(context.Background(), primitive.NewObjectID(), workoutID))
	require.Len(t, workoutRepo.deleted, 1)
	assert.Equal(t, workoutID, workoutRepo.deleted[0])
}

func TestDeleteWorkoutNotFound(t *testing.T) {
	workoutRepo := &fakeWorkoutRepo{deleteErr: repository.ErrNotFound}
	svc := newTestPlanService(&fakeProfileRepo{}, workoutRepo, &fakeGenerator{})

	err := svc.DeleteWorkout(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
}

func TestGetLatestWorkoutPlanUnreadableExercisesBlob(t *testing.T) {
	userID := primitive.NewObjectID()
	record := dayRecord(userID, "Monday", "Strength", "p", "s")
	record.Exercises = "{this blob is corrupted"

	svc := newTestPlanService(&fakeProfileRepo{}, &fakeWorkoutRepo{records: []domain.Workout{record}}, &fakeGenerator{})
	rebuilt, err := svc.GetLatestWorkoutPlan(context.Background(), userID)
	require.NoError(t, err)

	require.Len(t, rebuilt.WeeklySchedule, 1)
	assert.NotNil(t, rebuilt.WeeklySchedule[0].Exercises)
	assert.Empty(t, rebuilt.WeeklySchedule[0].Exercises)
}
