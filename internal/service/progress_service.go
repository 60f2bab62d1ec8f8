package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"gymapp/backend/internal/domain"
	"gymapp/backend/internal/repository"
	"gymapp/backend/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrUploadURLError   = errors.New("failed to generate upload URL")
	ErrDownloadURLError = errors.New("failed to generate download URL")
	ErrPhotoNotFound    = errors.New("progress photo not found")
)

// UploadURLResponse structure for returning URL and object key
type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"` // The key the client reports back on confirm
}

// PhotoDetails combines photo metadata with a temporary download URL.
type PhotoDetails struct {
	domain.ProgressPhoto
	DownloadURL string `json:"downloadUrl"`
}

// ProgressService covers weight tracking and progress photo uploads.
type ProgressService interface {
	RecordWeight(ctx context.Context, userID primitive.ObjectID, weightKg float64, recordedAt time.Time, notes string) (*domain.WeightEntry, error)
	GetWeightHistory(ctx context.Context, userID primitive.ObjectID) ([]domain.WeightEntry, error)

	// Photo upload flow: request a pre-signed PUT URL, upload directly to
	// storage, then confirm with the object key to create the metadata record.
	RequestPhotoUploadURL(ctx context.Context, userID primitive.ObjectID, contentType string) (*UploadURLResponse, error)
	ConfirmPhotoUpload(ctx context.Context, userID primitive.ObjectID, objectKey, fileName, contentType, caption string, size int64) (*domain.ProgressPhoto, error)
	GetPhotos(ctx context.Context, userID primitive.ObjectID) ([]PhotoDetails, error)
	DeletePhoto(ctx context.Context, userID, photoID primitive.ObjectID) error
}

// progressService implements the ProgressService interface.
type progressService struct {
	progressRepo repository.ProgressRepository
	fileStorage  storage.FileStorage
}

// NewProgressService creates a new instance of progressService.
func NewProgressService(progressRepo repository.ProgressRepository, fileStorage storage.FileStorage) ProgressService {
	return &progressService{
		progressRepo: progressRepo,
		fileStorage:  fileStorage,
	}
}

// RecordWeight logs a weight measurement for the user.
func (s *progressService) RecordWeight(ctx context.Context, userID primitive.ObjectID, weightKg float64, recordedAt time.Time, notes string) (*domain.WeightEntry, error) {
	if userID == primitive.NilObjectID || weightKg <= 0 {
		return nil, errors.New("user ID and a positive weight are required")
	}

	entry := &domain.WeightEntry{
		UserID:     userID,
		WeightKg:   weightKg,
		RecordedAt: recordedAt,
		Notes:      notes,
	}
	entryID, err := s.progressRepo.CreateWeightEntry(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = entryID
	return entry, nil
}

// GetWeightHistory returns the user's weight entries, newest first.
func (s *progressService) GetWeightHistory(ctx context.Context, userID primitive.ObjectID) ([]domain.WeightEntry, error) {
	return s.progressRepo.GetWeightEntriesByUserID(ctx, userID)
}

// RequestPhotoUploadURL generates a pre-signed URL for a progress photo upload.
func (s *progressService) RequestPhotoUploadURL(ctx context.Context, userID primitive.ObjectID, contentType string) (*UploadURLResponse, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required")
	}
	if contentType == "" || !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return nil, errors.New("invalid or missing image content type")
	}

	// Unique object key per upload
	uniqueID := uuid.NewString()
	fileExtension := ""
	parts := strings.Split(contentType, "/")
	if len(parts) == 2 {
		fileExtension = parts[1]
	}
	objectKey := path.Join("progress", userID.Hex(), fmt.Sprintf("%s.%s", uniqueID, fileExtension))

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, ErrUploadURLError
	}

	return &UploadURLResponse{
		UploadURL: uploadURL,
		ObjectKey: objectKey,
	}, nil
}

// ConfirmPhotoUpload creates the photo metadata record once the client has
// uploaded the object via the pre-signed URL.
func (s *progressService) ConfirmPhotoUpload(ctx context.Context, userID primitive.ObjectID, objectKey, fileName, contentType, caption string, size int64) (*domain.ProgressPhoto, error) {
	if userID == primitive.NilObjectID || objectKey == "" {
		return nil, errors.New("user ID and object key are required")
	}
	// Only accept keys inside the user's own prefix.
	if !strings.HasPrefix(objectKey, path.Join("progress", userID.Hex())+"/") {
		return nil, errors.New("object key does not belong to this user")
	}

	photo := &domain.ProgressPhoto{
		UserID:      userID,
		S3ObjectKey: objectKey,
		FileName:    fileName,
		ContentType: contentType,
		Size:        size,
		Caption:     caption,
	}
	photoID, err := s.progressRepo.CreatePhoto(ctx, photo)
	if err != nil {
		return nil, err
	}
	photo.ID = photoID
	return photo, nil
}

// DeletePhoto removes a progress photo: the stored object first, then the
// metadata record. A failed object delete is logged but does not keep the
// record alive; a dangling record is worse than an orphaned object.
func (s *progressService) DeletePhoto(ctx context.Context, userID, photoID primitive.ObjectID) error {
	photo, err := s.progressRepo.GetPhotoByID(ctx, photoID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}

	if err := s.fileStorage.DeleteObject(ctx, photo.S3ObjectKey); err != nil {
		log.Printf("WARN: Failed to delete photo object %s: %v", photo.S3ObjectKey, err)
	}

	if err := s.progressRepo.DeletePhoto(ctx, photoID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}
	return nil
}

// GetPhotos returns the user's progress photos with temporary download URLs.
func (s *progressService) GetPhotos(ctx context.Context, userID primitive.ObjectID) ([]PhotoDetails, error) {
	photos, err := s.progressRepo.GetPhotosByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	details := make([]PhotoDetails, 0, len(photos))
	for _, photo := range photos {
		downloadURL, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, photo.S3ObjectKey, storage.DefaultPresignedURLExpiry)
		if err != nil {
			return nil, ErrDownloadURLError
		}
		details = append(details, PhotoDetails{
			ProgressPhoto: photo,
			DownloadURL:   downloadURL,
		})
	}
	return details, nil
}
