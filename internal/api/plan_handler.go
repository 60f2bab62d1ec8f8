package api

import (
	"errors"
	"net/http"

	"gymapp/backend/internal/generation"
	"gymapp/backend/internal/plan"
	"gymapp/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanHandler holds the plan service dependency.
type PlanHandler struct {
	planService service.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// GeneratePlan generates a personalized workout plan from the caller's
// profile and persists it. POST /api/v1/plans/generate
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	response, err := h.planService.GenerateWorkoutPlan(c.Request.Context(), userID)
	if err != nil {
		var parseErr *plan.ParseError
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			abortWithError(c, http.StatusNotFound, "User profile not found; complete your profile first")
		case errors.Is(err, generation.ErrGenerationFailed):
			abortWithError(c, http.StatusBadGateway, "Workout plan generation is temporarily unavailable")
		case errors.Is(err, plan.ErrNoJSONFound), errors.As(err, &parseErr):
			abortWithError(c, http.StatusBadGateway, "Generated workout plan could not be processed")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to generate workout plan")
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetLatestPlan returns the most recent workout plan reconstructed from the
// caller's stored workouts. GET /api/v1/plans/latest
func (h *PlanHandler) GetLatestPlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	workoutPlan, err := h.planService.GetLatestWorkoutPlan(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutPlanNotFound) {
			abortWithError(c, http.StatusNotFound, "No workout plan found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workout plan")
		}
		return
	}

	c.JSON(http.StatusOK, workoutPlan)
}

// ListWorkouts returns the caller's raw stored day records.
// GET /api/v1/workouts
func (h *PlanHandler) ListWorkouts(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	workouts, err := h.planService.ListWorkouts(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workouts")
		return
	}

	c.JSON(http.StatusOK, workouts)
}

// DeleteWorkout removes one of the caller's day records.
// DELETE /api/v1/workouts/:workoutId
func (h *PlanHandler) DeleteWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	workoutID, err := primitive.ObjectIDFromHex(c.Param("workoutId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format")
		return
	}

	if err := h.planService.DeleteWorkout(c.Request.Context(), userID, workoutID); err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete workout")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
