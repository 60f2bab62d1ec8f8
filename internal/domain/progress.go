// internal/domain/progress.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WeightEntry is a single weight measurement logged by a user.
type WeightEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	WeightKg   float64            `bson:"weightKg" json:"weightKg"`
	RecordedAt time.Time          `bson:"recordedAt" json:"recordedAt"`
	Notes      string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// ProgressPhoto holds the metadata for a progress picture stored in S3.
// The object itself is uploaded by the client via a pre-signed URL; this
// record is created once the upload is confirmed.
type ProgressPhoto struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	S3ObjectKey string             `bson:"s3ObjectKey" json:"-"`
	FileName    string             `bson:"fileName,omitempty" json:"fileName,omitempty"`
	ContentType string             `bson:"contentType,omitempty" json:"contentType,omitempty"`
	Size        int64              `bson:"size,omitempty" json:"size,omitempty"`
	Caption     string             `bson:"caption,omitempty" json:"caption,omitempty"`
	TakenAt     *time.Time         `bson:"takenAt,omitempty" json:"takenAt,omitempty"`
	UploadedAt  time.Time          `bson:"uploadedAt" json:"uploadedAt"`
}
