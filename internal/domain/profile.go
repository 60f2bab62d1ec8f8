// internal/domain/profile.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender of the user.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// ActivityLevel represents the general activity level of a user.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "SEDENTARY"
	ActivityLightlyActive    ActivityLevel = "LIGHTLY_ACTIVE"
	ActivityModeratelyActive ActivityLevel = "MODERATELY_ACTIVE"
	ActivityVeryActive       ActivityLevel = "VERY_ACTIVE"
	ActivityExtraActive      ActivityLevel = "EXTRA_ACTIVE"
)

// FitnessGoal represents the primary fitness goal of a user.
type FitnessGoal string

const (
	GoalLoseWeight     FitnessGoal = "LOSE_WEIGHT"
	GoalBuildMuscle    FitnessGoal = "BUILD_MUSCLE"
	GoalImproveFitness FitnessGoal = "IMPROVE_FITNESS"
	GoalMaintainWeight FitnessGoal = "MAINTAIN_WEIGHT"
)

// WorkoutLocation represents where the user prefers to train.
type WorkoutLocation string

const (
	LocationGym     WorkoutLocation = "GYM"
	LocationHome    WorkoutLocation = "HOME"
	LocationOutdoor WorkoutLocation = "OUTDOOR"
	LocationMixed   WorkoutLocation = "MIXED"
)

// WorkoutTime represents the preferred time of day for workouts.
type WorkoutTime string

const (
	TimeMorning   WorkoutTime = "MORNING"
	TimeAfternoon WorkoutTime = "AFTERNOON"
	TimeEvening   WorkoutTime = "EVENING"
	TimeNight     WorkoutTime = "NIGHT"
)

// Equipment represents the equipment available to the user.
type Equipment string

const (
	EquipmentDumbbells       Equipment = "DUMBBELLS"
	EquipmentResistanceBands Equipment = "RESISTANCE_BANDS"
	EquipmentYogaMat         Equipment = "YOGA_MAT"
	EquipmentCardioMachine   Equipment = "CARDIO_MACHINE"
	EquipmentNone            Equipment = "NONE"
)

// HealthCondition represents a known health condition of the user.
type HealthCondition string

const (
	ConditionNone           HealthCondition = "NONE"
	ConditionHeartCondition HealthCondition = "HEART_CONDITION"
	ConditionDiabetes       HealthCondition = "DIABETES"
	ConditionHypertension   HealthCondition = "HYPERTENSION"
	ConditionAsthma         HealthCondition = "ASTHMA"
	ConditionJointPain      HealthCondition = "JOINT_PAIN"
	ConditionOther          HealthCondition = "OTHER"
)

// UserProfile is the snapshot of user attributes the plan generation pipeline
// reads. It is owned by the profile CRUD surface; the pipeline never mutates it.
type UserProfile struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID               primitive.ObjectID `bson:"userId" json:"userId"`
	FirstName            string             `bson:"firstName,omitempty" json:"firstName,omitempty"`
	DateOfBirth          *time.Time         `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Gender               Gender             `bson:"gender" json:"gender"`
	HeightCm             *float64           `bson:"heightCm,omitempty" json:"heightCm,omitempty"`
	CurrentWeightKg      *float64           `bson:"currentWeightKg,omitempty" json:"currentWeightKg,omitempty"`
	TargetWeightKg       *float64           `bson:"targetWeightKg,omitempty" json:"targetWeightKg,omitempty"`
	ActivityLevel        ActivityLevel      `bson:"activityLevel" json:"activityLevel"`
	FitnessGoals         FitnessGoal        `bson:"fitnessGoals" json:"fitnessGoals"`
	WorkoutLocations     WorkoutLocation    `bson:"workoutLocations" json:"workoutLocations"`
	WorkoutTimes         WorkoutTime        `bson:"workoutTimes" json:"workoutTimes"`
	AvailableEquipment   Equipment          `bson:"availableEquipment" json:"availableEquipment"`
	HealthConditions     HealthCondition    `bson:"healthConditions" json:"healthConditions"`
	OtherHealthCondition string             `bson:"otherHealthCondition,omitempty" json:"otherHealthCondition,omitempty"`
	CreatedAt            time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time          `bson:"updatedAt" json:"updatedAt"`
}
