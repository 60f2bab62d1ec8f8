package repository

import (
	"context"

	"gymapp/backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	// List returns all accounts, newest first.
	List(ctx context.Context) ([]domain.User, error)
}

// ProfileRepository defines the interface for interacting with user profiles.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.UserProfile, error)
	Upsert(ctx context.Context, profile *domain.UserProfile) error
}

// WorkoutRepository defines the interface for interacting with the flat
// per-day workout records a generated plan is persisted as.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	// GetByUserID returns all workout records for the user ordered by
	// workout date descending (most recent first).
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}

// ProgressRepository defines the interface for weight entries and progress
// photo metadata.
type ProgressRepository interface {
	CreateWeightEntry(ctx context.Context, entry *domain.WeightEntry) (primitive.ObjectID, error)
	GetWeightEntriesByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.WeightEntry, error)
	CreatePhoto(ctx context.Context, photo *domain.ProgressPhoto) (primitive.ObjectID, error)
	GetPhotosByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.ProgressPhoto, error)
	GetPhotoByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.ProgressPhoto, error)
	DeletePhoto(ctx context.Context, id, userID primitive.ObjectID) error
}
