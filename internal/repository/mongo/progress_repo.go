// internal/repository/mongo/progress_repo.go
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

const (
	weightCollectionName = "weight_progress"
	photoCollectionName  = "gallery_progress"
)

// mongoProgressRepository implements repository.ProgressRepository
type mongoProgressRepository struct {
	weights *mongo.Collection
	photos  *mongo.Collection
}

// NewMongoProgressRepository creates a new progress repository covering both
// weight entries and progress photo metadata.
func NewMongoProgressRepository(db *mongo.Database) repository.ProgressRepository {
	return &mongoProgressRepository{
		weights: db.Collection(weightCollectionName),
		photos:  db.Collection(photoCollectionName),
	}
}

// CreateWeightEntry inserts a new weight measurement.
func (r *mongoProgressRepository) CreateWeightEntry(ctx context.Context, entry *domain.WeightEntry) (primitive.ObjectID, error) {
	if entry.UserID == primitive.NilObjectID || entry.WeightKg <= 0 {
		return primitive.NilObjectID, errors.New("weight entry requires userId and a positive weight")
	}
	entry.ID = primitive.NewObjectID()
	entry.CreatedAt = time.Now().UTC()
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = entry.CreatedAt
	}

	result, err := r.weights.InsertOne(ctx, entry)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted weight entry ID")
	}
	return insertedID, nil
}

// GetWeightEntriesByUserID returns the user's weight entries, newest first.
func (r *mongoProgressRepository) GetWeightEntriesByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.WeightEntry, error) {
	var entries []domain.WeightEntry
	filter := bson.M{"userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "recordedAt", Value: -1}})

	cursor, err := r.weights.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CreatePhoto inserts progress photo metadata after an upload is confirmed.
func (r *mongoProgressRepository) CreatePhoto(ctx context.Context, photo *domain.ProgressPhoto) (primitive.ObjectID, error) {
	if photo.UserID == primitive.NilObjectID || photo.S3ObjectKey == "" {
		return primitive.NilObjectID, errors.New("progress photo requires userId and object key")
	}
	photo.ID = primitive.NewObjectID()
	photo.UploadedAt = time.Now().UTC()

	result, err := r.photos.InsertOne(ctx, photo)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted photo ID")
	}
	return insertedID, nil
}

// GetPhotosByUserID returns the user's progress photos, newest first.
func (r *mongoProgressRepository) GetPhotosByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.ProgressPhoto, error) {
	var photos []domain.ProgressPhoto
	filter := bson.M{"userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})

	cursor, err := r.photos.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// GetPhotoByID retrieves one photo owned by the given user.
func (r *mongoProgressRepository) GetPhotoByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.ProgressPhoto, error) {
	var photo domain.ProgressPhoto
	filter := bson.M{"_id": id, "userId": userID}
	err := r.photos.FindOne(ctx, filter).Decode(&photo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &photo, nil
}

// DeletePhoto removes a photo metadata record owned by the given user.
func (r *mongoProgressRepository) DeletePhoto(ctx context.Context, id, userID primitive.ObjectID) error {
	filter := bson.M{"_id": id, "userId": userID}
	result, err := r.photos.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureProgressIndexes creates necessary indexes. Call during startup.
func EnsureProgressIndexes(ctx context.Context, weights, photos *mongo.Collection) {
	weightIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "recordedAt", Value: -1}},
			Options: options.Index(),
		},
	}
	if _, err := weights.Indexes().CreateMany(ctx, weightIndexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", weights.Name(), err)
	}
	photoIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "uploadedAt", Value: -1}},
			Options: options.Index(),
		},
	}
	if _, err := photos.Indexes().CreateMany(ctx, photoIndexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", photos.Name(), err)
	}
}
