package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gymapp/backend/internal/domain"
	"gymapp/backend/internal/generation"
	"gymapp/backend/internal/plan"
	"gymapp/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrProfileNotFound     = errors.New("user profile not found")
	ErrWorkoutPlanNotFound = errors.New("no workout plan found for user")
	ErrWorkoutNotFound     = errors.New("workout not found")
)

// Marker prefixes multiplexing plan-level fields into the flat notes column.
const (
	markerDay         = "Day:"
	markerNotes       = "Notes:"
	markerProgression = "Progression Plan:"
	markerSafety      = "Safety Precautions:"
)

// Generated day records are always scheduled at this time of day.
const scheduledHour = 9

// WorkoutPlanResponse is returned by plan generation: the profile summary
// plus the freshly generated plan.
type WorkoutPlanResponse struct {
	ProfileDescription string              `json:"profileDescription"`
	WorkoutPlan        *domain.WorkoutPlan `json:"workoutPlan"`
}

// PlanService generates, persists and reconstructs weekly workout plans.
type PlanService interface {
	// GenerateWorkoutPlan builds a prompt from the user's profile, invokes
	// the generation service, parses the result and persists it as one
	// workout record per plan day.
	GenerateWorkoutPlan(ctx context.Context, userID primitive.ObjectID) (*WorkoutPlanResponse, error)

	// GetLatestWorkoutPlan reconstructs the most recent plan from the user's
	// stored workout records. Returns ErrWorkoutPlanNotFound when the user
	// has no records at all.
	GetLatestWorkoutPlan(ctx context.Context, userID primitive.ObjectID) (*domain.WorkoutPlan, error)

	// ListWorkouts returns the user's raw day records, most recent first.
	ListWorkouts(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error)

	// DeleteWorkout removes a single day record owned by the user.
	DeleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) error
}

// planService implements the PlanService interface.
type planService struct {
	profileRepo repository.ProfileRepository
	workoutRepo repository.WorkoutRepository
	generator   generation.Generator
	now         func() time.Time
}

// NewPlanService creates a new instance of planService.
func NewPlanService(
	profileRepo repository.ProfileRepository,
	workoutRepo repository.WorkoutRepository,
	generator generation.Generator,
) PlanService {
	return &planService{
		profileRepo: profileRepo,
		workoutRepo: workoutRepo,
		generator:   generator,
		now:         time.Now,
	}
}

// GenerateWorkoutPlan runs the full generation pipeline for one user.
func (s *planService) GenerateWorkoutPlan(ctx context.Context, userID primitive.ObjectID) (*WorkoutPlanResponse, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	now := s.now()
	prompt := plan.BuildPrompt(profile, now)
	description := plan.DescribeProfile(profile, now)

	rawText, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("ERROR: Plan generation failed for user %s: %v", userID.Hex(), err)
		return nil, err
	}

	candidate, err := plan.ExtractJSON(rawText)
	if err != nil {
		log.Printf("ERROR: Extracting plan JSON failed for user %s: %v", userID.Hex(), err)
		return nil, err
	}

	workoutPlan, err := plan.Parse(candidate)
	if err != nil {
		var parseErr *plan.ParseError
		if errors.As(err, &parseErr) {
			log.Printf("ERROR: Parsing plan failed for user %s: %v", userID.Hex(), parseErr.Cause)
			log.Printf("ERROR: Problematic JSON content: %s", parseErr.Attempted)
		}
		return nil, err
	}

	if err := s.saveWorkoutPlan(ctx, userID, workoutPlan, now); err != nil {
		log.Printf("ERROR: Persisting plan failed for user %s: %v", userID.Hex(), err)
		return nil, err
	}

	return &WorkoutPlanResponse{
		ProfileDescription: description,
		WorkoutPlan:        workoutPlan,
	}, nil
}

// saveWorkoutPlan flattens the plan into independent per-day records. Each
// insert is its own write; a failure partway through leaves the earlier
// records in place.
func (s *planService) saveWorkoutPlan(ctx context.Context, userID primitive.ObjectID, workoutPlan *domain.WorkoutPlan, now time.Time) error {
	for _, day := range workoutPlan.WeeklySchedule {
		weekday, ok := domain.ParseWeekday(day.Day)
		if !ok {
			// Unrecognized labels fall back to Monday, matching the
			// scheduling behavior for garbled generated output.
			weekday = domain.Monday
		}

		exercisesJSON, err := json.Marshal(day.Exercises)
		if err != nil {
			log.Printf("ERROR: Serializing exercises for user %s: %v", userID.Hex(), err)
			exercisesJSON = []byte("[]")
		}

		var notes strings.Builder
		notes.WriteString(markerDay + " " + day.Day + "\n")
		notes.WriteString(markerNotes + " " + day.Notes + "\n")
		notes.WriteString(markerProgression + " " + workoutPlan.ProgressionPlan + "\n")
		notes.WriteString(markerSafety + " " + workoutPlan.SafetyPrecautions)

		workout := &domain.Workout{
			UserID:          userID,
			WorkoutDate:     nextOccurrence(now, weekday),
			WorkoutType:     day.WorkoutType,
			DurationMinutes: day.DurationMinutes,
			Exercises:       string(exercisesJSON),
			CaloriesBurnt:   day.CaloriesBurnt,
			Notes:           notes.String(),
		}

		if _, err := s.workoutRepo.Create(ctx, workout); err != nil {
			return fmt.Errorf("saving workout record for %s: %w", day.Day, err)
		}
	}
	log.Printf("Saved %d workout records for user %s", len(workoutPlan.WeeklySchedule), userID.Hex())
	return nil
}

// nextOccurrence returns the next calendar occurrence of the target weekday
// strictly after now, at 09:00:00. When today is the target weekday the
// occurrence is a full week out, never today.
func nextOccurrence(now time.Time, target domain.Weekday) time.Time {
	current := domain.FromTime(now.Weekday())
	daysAhead := (int(target) - int(current) + 7) % 7
	if daysAhead == 0 {
		daysAhead = 7
	}
	d := now.AddDate(0, 0, daysAhead)
	return time.Date(d.Year(), d.Month(), d.Day(), scheduledHour, 0, 0, 0, d.Location())
}

// GetLatestWorkoutPlan rebuilds an approximate weekly plan from the user's
// stored day records, most recent first. The reconstruction is deliberately
// lossy: records without a recognizable Day: marker are grouped under
// "Unknown" and never emitted, and plan-level progression/safety text is
// taken from the first surviving record that carries it.
func (s *planService) GetLatestWorkoutPlan(ctx context.Context, userID primitive.ObjectID) (*domain.WorkoutPlan, error) {
	records, err := s.workoutRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrWorkoutPlanNotFound
	}

	seen := make(map[string]domain.WorkoutDay)
	progressionPlan := ""
	safetyPrecautions := ""

	for _, record := range records {
		label := extractMarker(record.Notes, markerDay)
		if label == "" {
			label = "Unknown"
		}
		// Recognized labels dedupe case-insensitively under their canonical
		// name; anything else occupies a slot under its raw label.
		key := label
		if weekday, ok := domain.ParseWeekday(label); ok {
			key = weekday.String()
		}
		if _, exists := seen[key]; exists {
			continue
		}

		if progressionPlan == "" && safetyPrecautions == "" {
			progressionPlan = extractMarker(record.Notes, markerProgression)
			safetyPrecautions = extractMarker(record.Notes, markerSafety)
		}

		var exercises []domain.Exercise
		if record.Exercises != "" {
			if err := json.Unmarshal([]byte(record.Exercises), &exercises); err != nil {
				log.Printf("WARN: Unreadable exercises blob on workout %s: %v", record.ID.Hex(), err)
				exercises = nil
			}
		}
		if exercises == nil {
			exercises = []domain.Exercise{}
		}

		seen[key] = domain.WorkoutDay{
			Day:             key,
			WorkoutType:     record.WorkoutType,
			DurationMinutes: record.DurationMinutes,
			Exercises:       exercises,
			CaloriesBurnt:   record.CaloriesBurnt,
			Notes:           extractMarker(record.Notes, markerNotes),
		}

		if len(seen) == 7 {
			break
		}
	}

	// Reorder into canonical Monday-Sunday order, dropping unrecognized labels.
	schedule := make([]domain.WorkoutDay, 0, len(seen))
	for _, weekday := range domain.Weekdays() {
		if day, ok := seen[weekday.String()]; ok {
			schedule = append(schedule, day)
		}
	}

	return &domain.WorkoutPlan{
		WeeklySchedule:    schedule,
		ProgressionPlan:   progressionPlan,
		SafetyPrecautions: safetyPrecautions,
	}, nil
}

// ListWorkouts returns the stored day records as-is, without reconstruction.
func (s *planService) ListWorkouts(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error) {
	return s.workoutRepo.GetByUserID(ctx, userID)
}

// DeleteWorkout removes one day record. The repository filter enforces
// ownership, so a foreign ID surfaces as not found.
func (s *planService) DeleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) error {
	err := s.workoutRepo.Delete(ctx, workoutID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrWorkoutNotFound
	}
	return err
}

// extractMarker returns the trimmed value of the first line carrying the
// given marker prefix, or "" when the marker is absent.
func extractMarker(notes, marker string) string {
	for _, line := range strings.Split(notes, "\n") {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(line[len(marker):])
		}
	}
	return ""
}
