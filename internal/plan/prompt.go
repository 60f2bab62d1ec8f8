// internal/plan/prompt.go
package plan

import (
	"fmt"
	"strings"
	"time"

	"gymapp/backend/internal/domain"
)

// defaultAge is assumed when the profile carries no date of birth.
const defaultAge = 30

// Age computes full years between dateOfBirth and now, defaulting when the
// date of birth is missing.
func Age(dateOfBirth *time.Time, now time.Time) int {
	if dateOfBirth == nil {
		return defaultAge
	}
	years := now.Year() - dateOfBirth.Year()
	// Subtract one year until the birthday has passed this year.
	anniversary := dateOfBirth.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// humanize renders an enum value like "LOSE_WEIGHT" as "lose weight".
func humanize(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, "_", " "))
}

// planSchemaTemplate is the literal JSON shape the generation service is
// instructed to mirror. Field names here are the wire contract parsed by
// Parse.
const planSchemaTemplate = `{
  "weeklySchedule": [
    {
      "day": "Monday",
      "workoutType": "Strength",
      "durationMinutes": 45,
      "exercises": [
        {
          "name": "Exercise Name",
          "sets": 3,
          "reps": 10,
          "restSeconds": 60,
          "notes": "Brief form tip"
        }
      ],
      "caloriesBurnt": 300,
      "notes": "Brief workout focus"
    }
  ],
  "progressionPlan": "Simple 2-week progression",
  "safetyPrecautions": "Essential safety notes"
}`

// BuildPrompt renders the full generation instruction prompt for the given
// profile. It is deterministic for identical input including now.
func BuildPrompt(profile *domain.UserProfile, now time.Time) string {
	age := Age(profile.DateOfBirth, now)

	var b strings.Builder
	b.WriteString("You are a certified personal trainer. Generate a personalized weekly workout plan for a client with these details:\n\n")

	// Personal
	fmt.Fprintf(&b, "Age: %d\n", age)
	fmt.Fprintf(&b, "Gender: %s\n", humanize(string(profile.Gender)))

	// Physical
	if profile.HeightCm != nil {
		fmt.Fprintf(&b, "Height: %.1f cm\n", *profile.HeightCm)
	}
	if profile.CurrentWeightKg != nil {
		fmt.Fprintf(&b, "Current weight: %.1f kg\n", *profile.CurrentWeightKg)
	}
	if profile.TargetWeightKg != nil {
		fmt.Fprintf(&b, "Target weight: %.1f kg\n", *profile.TargetWeightKg)
	}
	fmt.Fprintf(&b, "Activity level: %s\n", humanize(string(profile.ActivityLevel)))

	// Goal and preferences
	fmt.Fprintf(&b, "Goal: %s\n", humanize(string(profile.FitnessGoals)))
	fmt.Fprintf(&b, "Preferred location: %s\n", humanize(string(profile.WorkoutLocations)))
	fmt.Fprintf(&b, "Preferred time: %s\n", humanize(string(profile.WorkoutTimes)))
	fmt.Fprintf(&b, "Equipment: %s\n", humanize(string(profile.AvailableEquipment)))

	// Health
	fmt.Fprintf(&b, "Health conditions: %s\n", humanize(string(profile.HealthConditions)))
	if profile.OtherHealthCondition != "" {
		fmt.Fprintf(&b, "Health notes: %s\n", profile.OtherHealthCondition)
	}

	// Instructions
	b.WriteString("\nGenerate a weekly plan following these instructions:\n")
	b.WriteString("1. Include 3-5 workout days with workout type and duration.\n")
	b.WriteString("2. Include 4-6 exercises per workout with sets, reps and rest periods.\n")
	b.WriteString("3. Estimate calories burnt per workout day.\n")
	b.WriteString("4. Keep all notes brief and essential.\n")
	b.WriteString("5. Include a simple progression plan and safety precautions.\n")

	b.WriteString("\n" + goalGuidance(profile.FitnessGoals))
	b.WriteString("\n" + equipmentGuidance(profile.AvailableEquipment))
	b.WriteString("\n" + healthGuidance(profile.HealthConditions))
	b.WriteString("\n" + ageGuidance(age))

	// JSON template
	b.WriteString("\nFormat the response as JSON exactly matching this structure:\n")
	b.WriteString(planSchemaTemplate)
	b.WriteString("\n\nIMPORTANT: \"reps\" must always be a single integer, never a range. ")
	b.WriteString("Respond with the JSON object only, without any explanatory text outside it.\n")

	return b.String()
}

// goalGuidance selects the guidance block for the profile's fitness goal.
func goalGuidance(goal domain.FitnessGoal) string {
	switch goal {
	case domain.GoalLoseWeight:
		return "Weight loss focus: favor full-body circuits and cardio intervals, keep rest periods short (30-60 seconds), and aim for a sustainable calorie burn across the week."
	case domain.GoalBuildMuscle:
		return "Muscle building focus: favor compound lifts with progressive overload, 3-5 sets in the 6-12 rep range, and longer rest periods (60-120 seconds)."
	case domain.GoalImproveFitness:
		return "General fitness focus: mix strength, cardio and mobility work across the week with moderate intensity throughout."
	case domain.GoalMaintainWeight:
		return "Maintenance focus: balance strength and cardio at moderate volume, keeping weekly load consistent rather than progressive."
	default:
		return "General fitness focus: mix strength, cardio and mobility work across the week with moderate intensity throughout."
	}
}

// equipmentGuidance selects the guidance block for the available equipment.
func equipmentGuidance(equipment domain.Equipment) string {
	switch equipment {
	case domain.EquipmentDumbbells:
		return "Equipment: dumbbells are available; build workouts around dumbbell compound and accessory movements."
	case domain.EquipmentResistanceBands:
		return "Equipment: resistance bands are available; use banded variations for resistance work and control the tempo for intensity."
	case domain.EquipmentYogaMat:
		return "Equipment: only a yoga mat is available; use floor-based bodyweight work, core exercises and mobility flows."
	case domain.EquipmentCardioMachine:
		return "Equipment: a cardio machine is available; anchor sessions on machine intervals supplemented with bodyweight strength work."
	case domain.EquipmentNone:
		return "Equipment: no equipment is available; use bodyweight-only exercises such as squats, lunges, push-ups and planks."
	default:
		return "Equipment: assume minimal equipment and prefer bodyweight-friendly movements."
	}
}

// healthGuidance selects the guidance block for the profile's health condition.
func healthGuidance(condition domain.HealthCondition) string {
	switch condition {
	case domain.ConditionHeartCondition:
		return "Health: the client has a heart condition; keep intensity low to moderate, avoid maximal efforts, and include extended warm-up and cool-down periods."
	case domain.ConditionDiabetes:
		return "Health: the client has diabetes; prefer steady moderate intensity, consistent session timing, and note hydration in the safety precautions."
	case domain.ConditionHypertension:
		return "Health: the client has hypertension; avoid heavy isometric holds and breath-holding, favor rhythmic moderate cardio and lighter resistance work."
	case domain.ConditionAsthma:
		return "Health: the client has asthma; build intensity gradually, prefer interval formats with full recovery, and include a long warm-up."
	case domain.ConditionJointPain:
		return "Health: the client has joint pain; choose low-impact exercises, avoid deep loaded flexion, and emphasize controlled range of motion."
	case domain.ConditionOther:
		return "Health: the client reported a health condition; keep the plan conservative and flag any exercise that commonly aggravates chronic conditions."
	default:
		return "Health: no known conditions; no special restrictions apply."
	}
}

// ageGuidance selects the age-bracket guidance block. Brackets are half-open:
// [0,18), [18,30), [30,50), [50,∞).
func ageGuidance(age int) string {
	switch {
	case age < 18:
		return "Age: the client is under 18; emphasize technique and bodyweight movements, avoid heavy maximal loading."
	case age < 30:
		return "Age: the client is 18-30; full intensity ranges are appropriate with standard recovery."
	case age < 50:
		return "Age: the client is 30-50; include a thorough warm-up and schedule at least one full rest day between intense sessions."
	default:
		return "Age: the client is 50 or older; prioritize joint-friendly movements, longer recovery, and balance work."
	}
}

// DescribeProfile renders a short human-readable summary of the profile.
// Pure function; deterministic given identical input including now.
func DescribeProfile(profile *domain.UserProfile, now time.Time) string {
	var b strings.Builder

	ageInfo := ""
	if profile.DateOfBirth != nil {
		ageInfo = fmt.Sprintf(", a %d-year-old", Age(profile.DateOfBirth, now))
	}

	name := profile.FirstName
	if name == "" {
		name = "The client"
	}
	fmt.Fprintf(&b, "%s%s %s", name, ageInfo, humanize(string(profile.Gender)))

	if profile.HeightCm != nil && profile.CurrentWeightKg != nil {
		fmt.Fprintf(&b, " with a height of %.1f cm and current weight of %.1f kg", *profile.HeightCm, *profile.CurrentWeightKg)
	}

	fmt.Fprintf(&b, ". Their primary fitness goal is %s", humanize(string(profile.FitnessGoals)))
	fmt.Fprintf(&b, " and they maintain a %s activity level", humanize(string(profile.ActivityLevel)))
	fmt.Fprintf(&b, ". They prefer to work out at %s in the %s", humanize(string(profile.WorkoutLocations)), humanize(string(profile.WorkoutTimes)))
	fmt.Fprintf(&b, " and have access to %s equipment", humanize(string(profile.AvailableEquipment)))

	if profile.HealthConditions != "" && profile.HealthConditions != domain.ConditionNone {
		fmt.Fprintf(&b, ". They have %s health conditions", humanize(string(profile.HealthConditions)))
	}
	if profile.TargetWeightKg != nil {
		fmt.Fprintf(&b, ". Their target weight is %.1f kg", *profile.TargetWeightKg)
	}

	return b.String()
}
