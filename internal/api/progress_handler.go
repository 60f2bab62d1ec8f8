package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"gymapp/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgressHandler holds the progress service dependency.
type ProgressHandler struct {
	progressService service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// --- Request Structs ---

type RecordWeightRequest struct {
	WeightKg   float64 `json:"weightKg" binding:"required,gt=0"`
	RecordedAt *string `json:"recordedAt"` // RFC3339, defaults to now
	Notes      string  `json:"notes"`
}

type RequestUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type ConfirmUploadRequest struct {
	ObjectKey   string `json:"objectKey" binding:"required"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Caption     string `json:"caption"`
	Size        int64  `json:"size"`
}

// RecordWeight logs a weight measurement. POST /api/v1/progress/weight
func (h *ProgressHandler) RecordWeight(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req RecordWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	recordedAt := time.Now().UTC()
	if req.RecordedAt != nil && *req.RecordedAt != "" {
		parsed, err := time.Parse(time.RFC3339, *req.RecordedAt)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "recordedAt must be RFC3339 formatted")
			return
		}
		recordedAt = parsed
	}

	entry, err := h.progressService.RecordWeight(c.Request.Context(), userID, req.WeightKg, recordedAt, req.Notes)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to record weight")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetWeightHistory lists weight entries, newest first. GET /api/v1/progress/weight
func (h *ProgressHandler) GetWeightHistory(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	entries, err := h.progressService.GetWeightHistory(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve weight history")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// RequestPhotoUpload returns a pre-signed upload URL for a progress photo.
// POST /api/v1/progress/photos/upload-url
func (h *ProgressHandler) RequestPhotoUpload(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req RequestUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	response, err := h.progressService.RequestPhotoUploadURL(c.Request.Context(), userID, req.ContentType)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, response)
}

// ConfirmPhotoUpload records photo metadata after a successful upload.
// POST /api/v1/progress/photos/confirm
func (h *ProgressHandler) ConfirmPhotoUpload(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req ConfirmUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	photo, err := h.progressService.ConfirmPhotoUpload(c.Request.Context(), userID, req.ObjectKey, req.FileName, req.ContentType, req.Caption, req.Size)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusCreated, photo)
}

// DeletePhoto removes a progress photo and its stored object.
// DELETE /api/v1/progress/photos/:photoId
func (h *ProgressHandler) DeletePhoto(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	photoID, err := primitive.ObjectIDFromHex(c.Param("photoId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid photo ID format")
		return
	}

	if err := h.progressService.DeletePhoto(c.Request.Context(), userID, photoID); err != nil {
		if errors.Is(err, service.ErrPhotoNotFound) {
			abortWithError(c, http.StatusNotFound, "Progress photo not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete progress photo")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// GetPhotos lists progress photos with download URLs. GET /api/v1/progress/photos
func (h *ProgressHandler) GetPhotos(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	photos, err := h.progressService.GetPhotos(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve progress photos")
		return
	}

	c.JSON(http.StatusOK, photos)
}
