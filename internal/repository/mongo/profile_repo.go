// internal/repository/mongo/profile_repo.go
package mongo

import (
	"context"
	"errors"
	"log"
	"time"

	"gymapp/backend/internal/domain"
	"gymapp/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const profileCollectionName = "user_profiles"

// mongoProfileRepository implements repository.ProfileRepository
type mongoProfileRepository struct {
	collection *mongo.Collection
}

// NewMongoProfileRepository creates a new UserProfile repository.
func NewMongoProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &mongoProfileRepository{
		collection: db.Collection(profileCollectionName),
	}
}

// GetByUserID retrieves the profile for a specific user.
func (r *mongoProfileRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	filter := bson.M{"userId": userID}
	err := r.collection.FindOne(ctx, filter).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Upsert creates or replaces the profile for profile.UserID. A user has at
// most one profile document.
func (r *mongoProfileRepository) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	if profile.UserID == primitive.NilObjectID {
		return errors.New("profile requires userId")
	}
	now := time.Now().UTC()
	profile.UpdatedAt = now

	filter := bson.M{"userId": profile.UserID}
	update := bson.M{
		"$set": bson.M{
			"firstName":            profile.FirstName,
			"dateOfBirth":          profile.DateOfBirth,
			"gender":               profile.Gender,
			"heightCm":             profile.HeightCm,
			"currentWeightKg":      profile.CurrentWeightKg,
			"targetWeightKg":       profile.TargetWeightKg,
			"activityLevel":        profile.ActivityLevel,
			"fitnessGoals":         profile.FitnessGoals,
			"workoutLocations":     profile.WorkoutLocations,
			"workoutTimes":         profile.WorkoutTimes,
			"availableEquipment":   profile.AvailableEquipment,
			"healthConditions":     profile.HealthConditions,
			"otherHealthCondition": profile.OtherHealthCondition,
			"updatedAt":            profile.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"userId":    profile.UserID,
			"createdAt": now,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

// EnsureProfileIndexes creates necessary indexes. Call during startup.
func EnsureProfileIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
