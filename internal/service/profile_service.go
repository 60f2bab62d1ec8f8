package service

import (
	"context"
	"errors"

	"gymapp/backend/internal/domain"
	"gymapp/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileService manages the user profile the generation pipeline reads.
type ProfileService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.UserProfile, error)
	SaveProfile(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error)
}

// profileService implements the ProfileService interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// GetProfile retrieves the profile for the given user.
func (s *profileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.UserProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// SaveProfile creates or updates the user's profile.
func (s *profileService) SaveProfile(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error) {
	if profile.UserID == primitive.NilObjectID {
		return nil, errors.New("profile requires a user ID")
	}

	// The account must exist before a profile can be attached to it.
	if _, err := s.userRepo.GetByID(ctx, profile.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(ctx, profile.UserID)
}
