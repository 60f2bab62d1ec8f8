// internal/domain/workout.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout is the flat, per-day storage record for a generated plan day.
// There is no dedicated "plan" entity: a weekly plan exists only implicitly
// as the batch of Workout rows created by the same generation call. The
// Notes field multiplexes four logical sub-fields as marker-prefixed lines
// (Day:, Notes:, Progression Plan:, Safety Precautions:), one per line.
type Workout struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	WorkoutDate     time.Time          `bson:"workoutDate" json:"workoutDate"`
	WorkoutType     string             `bson:"workoutType" json:"workoutType"`
	DurationMinutes int                `bson:"durationMinutes" json:"durationMinutes"`
	Exercises       string             `bson:"exercises,omitempty" json:"exercises,omitempty"` // JSON blob of []Exercise
	CaloriesBurnt   *int               `bson:"caloriesBurnt,omitempty" json:"caloriesBurnt,omitempty"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
