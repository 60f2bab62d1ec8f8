package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gymapp/backend/internal/domain"
	"gymapp/backend/internal/repository"
)

type fakeProgressRepo struct {
	weights []domain.WeightEntry
	photos  map[primitive.ObjectID]*domain.ProgressPhoto
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{photos: make(map[primitive.ObjectID]*domain.ProgressPhoto)}
}

func (f *fakeProgressRepo) CreateWeightEntry(ctx context.Context, entry *domain.WeightEntry) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *entry
	stored.ID = id
	f.weights = append(f.weights, stored)
	return id, nil
}

func (f *fakeProgressRepo) GetWeightEntriesByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.WeightEntry, error) {
	return f.weights, nil
}

func (f *fakeProgressRepo) CreatePhoto(ctx context.Context, photo *domain.ProgressPhoto) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *photo
	stored.ID = id
	f.photos[id] = &stored
	return id, nil
}

func (f *fakeProgressRepo) GetPhotosByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.ProgressPhoto, error) {
	photos := make([]domain.ProgressPhoto, 0, len(f.photos))
	for _, photo := range f.photos {
		photos = append(photos, *photo)
	}
	return photos, nil
}

func (f *fakeProgressRepo) GetPhotoByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.ProgressPhoto, error) {
	photo, ok := f.photos[id]
	if !ok || photo.UserID != userID {
		return nil, repository.ErrNotFound
	}
	copied := *photo
	return &copied, nil
}

func (f *fakeProgressRepo) DeletePhoto(ctx context.Context, id, userID primitive.ObjectID) error {
	photo, ok := f.photos[id]
	if !ok || photo.UserID != userID {
		return repository.ErrNotFound
	}
	delete(f.photos, id)
	return nil
}

type fakeFileStorage struct {
	deletedKeys []string
	deleteErr   error
}

func (f *fakeFileStorage) GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error) {
	return "https://storage.test/upload/" + objectKey, nil
}

func (f *fakeFileStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	return "https://storage.test/download/" + objectKey, nil
}

func (f *fakeFileStorage) DeleteObject(ctx context.Context, objectKey string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedKeys = append(f.deletedKeys, objectKey)
	return nil
}

func confirmTestPhoto(t *testing.T, svc ProgressService, userID primitive.ObjectID) *domain.ProgressPhoto {
	t.Helper()
	upload, err := svc.RequestPhotoUploadURL(context.Background(), userID, "image/jpeg")
	require.NoError(t, err)

	photo, err := svc.ConfirmPhotoUpload(context.Background(), userID, upload.ObjectKey, "front.jpg", "image/jpeg", "week 1", 1024)
	require.NoError(t, err)
	return photo
}

func TestRequestPhotoUploadURLRejectsNonImage(t *testing.T) {
	svc := NewProgressService(newFakeProgressRepo(), &fakeFileStorage{})

	_, err := svc.RequestPhotoUploadURL(context.Background(), primitive.NewObjectID(), "application/pdf")
	assert.Error(t, err)
}

func TestConfirmPhotoUploadRejectsForeignKey(t *testing.T) {
	svc := NewProgressService(newFakeProgressRepo(), &fakeFileStorage{})

	otherUserKey := "progress/" + primitive.NewObjectID().Hex() + "/photo.jpeg"
	_, err := svc.ConfirmPhotoUpload(context.Background(), primitive.NewObjectID(), otherUserKey, "photo.jpg", "image/jpeg", "", 0)
	assert.Error(t, err)
}

func TestDeletePhotoRemovesObjectAndRecord(t *testing.T) {
	progressRepo := newFakeProgressRepo()
	fileStorage := &fakeFileStorage{}
	svc := NewProgressService(progressRepo, fileStorage)

	userID := primitive.NewObjectID()
	photo := confirmTestPhoto(t, svc, userID)

	require.NoError(t, svc.DeletePhoto(context.Background(), userID, photo.ID))
	require.Len(t, fileStorage.deletedKeys, 1)
	assert.Equal(t, photo.S3ObjectKey, fileStorage.deletedKeys[0])
	assert.Empty(t, progressRepo.photos)
}

func TestDeletePhotoUnknownID(t *testing.T) {
	svc := NewProgressService(newFakeProgressRepo(), &fakeFileStorage{})

	err := svc.DeletePhoto(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrPhotoNotFound)
}

func TestDeletePhotoOtherUsersPhoto(t *testing.T) {
	progressRepo := newFakeProgressRepo()
	svc := NewProgressService(progressRepo, &fakeFileStorage{})

	owner := primitive.NewObjectID()
	photo := confirmTestPhoto(t, svc, owner)

	err := svc.DeletePhoto(context.Background(), primitive.NewObjectID(), photo.ID)
	assert.ErrorIs(t, err, ErrPhotoNotFound)
	assert.Len(t, progressRepo.photos, 1, "owner's photo must survive")
}

func TestDeletePhotoObjectDeleteFailureStillRemovesRecord(t *testing.T) {
	progressRepo := newFakeProgressRepo()
	fileStorage := &fakeFileStorage{}
	svc := NewProgressService(progressRepo, fileStorage)

	userID := primitive.NewObjectID()
	photo := confirmTestPhoto(t, svc, userID)

	fileStorage.deleteErr = errors.New("storage unavailable")
	require.NoError(t, svc.DeletePhoto(context.Background(), userID, photo.ID))
	assert.Empty(t, progressRepo.photos)
}

func TestRequestPhotoUploadURLScopesKeyToUser(t *testing.T) {
	svc := NewProgressService(newFakeProgressRepo(), &fakeFileStorage{})

	userID := primitive.NewObjectID()
	upload, err := svc.RequestPhotoUploadURL(context.Background(), userID, "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(upload.ObjectKey, "progress/"+userID.Hex()+"/"))
	assert.True(t, strings.HasSuffix(upload.ObjectKey, ".png"))
}
