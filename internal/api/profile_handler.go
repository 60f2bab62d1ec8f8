package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"gymapp/backend/internal/domain"
	"gymapp/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler holds the profile service dependency.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// SaveProfileRequest defines the expected JSON for creating/updating a profile.
type SaveProfileRequest struct {
	FirstName            string   `json:"firstName"`
	DateOfBirth          *string  `json:"dateOfBirth"` // "2006-01-02"
	Gender               string   `json:"gender" binding:"required,oneof=MALE FEMALE OTHER"`
	HeightCm             *float64 `json:"heightCm" binding:"omitempty,gt=0"`
	CurrentWeightKg      *float64 `json:"currentWeightKg" binding:"omitempty,gt=0"`
	TargetWeightKg       *float64 `json:"targetWeightKg" binding:"omitempty,gt=0"`
	ActivityLevel        string   `json:"activityLevel" binding:"required,oneof=SEDENTARY LIGHTLY_ACTIVE MODERATELY_ACTIVE VERY_ACTIVE EXTRA_ACTIVE"`
	FitnessGoals         string   `json:"fitnessGoals" binding:"required,oneof=LOSE_WEIGHT BUILD_MUSCLE IMPROVE_FITNESS MAINTAIN_WEIGHT"`
	WorkoutLocations     string   `json:"workoutLocations" binding:"required,oneof=GYM HOME OUTDOOR MIXED"`
	WorkoutTimes         string   `json:"workoutTimes" binding:"required,oneof=MORNING AFTERNOON EVENING NIGHT"`
	AvailableEquipment   string   `json:"availableEquipment" binding:"required,oneof=DUMBBELLS RESISTANCE_BANDS YOGA_MAT CARDIO_MACHINE NONE"`
	HealthConditions     string   `json:"healthConditions" binding:"required,oneof=NONE HEART_CONDITION DIABETES HYPERTENSION ASTHMA JOINT_PAIN OTHER"`
	OtherHealthCondition string   `json:"otherHealthCondition"`
}

// GetProfile returns the caller's profile. GET /api/v1/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			abortWithError(c, http.StatusNotFound, "Profile not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve profile")
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}

// SaveProfile creates or updates the caller's profile. PUT /api/v1/profile
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	var dateOfBirth *time.Time
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "dateOfBirth must be formatted as YYYY-MM-DD")
			return
		}
		dateOfBirth = &parsed
	}

	profile := &domain.UserProfile{
		UserID:               userID,
		FirstName:            req.FirstName,
		DateOfBirth:          dateOfBirth,
		Gender:               domain.Gender(req.Gender),
		HeightCm:             req.HeightCm,
		CurrentWeightKg:      req.CurrentWeightKg,
		TargetWeightKg:       req.TargetWeightKg,
		ActivityLevel:        domain.ActivityLevel(req.ActivityLevel),
		FitnessGoals:         domain.FitnessGoal(req.FitnessGoals),
		WorkoutLocations:     domain.WorkoutLocation(req.WorkoutLocations),
		WorkoutTimes:         domain.WorkoutTime(req.WorkoutTimes),
		AvailableEquipment:   domain.Equipment(req.AvailableEquipment),
		HealthConditions:     domain.HealthCondition(req.HealthConditions),
		OtherHealthCondition: req.OtherHealthCondition,
	}

	saved, err := h.profileService.SaveProfile(c.Request.Context(), profile)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	c.JSON(http.StatusOK, saved)
}
