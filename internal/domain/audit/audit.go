// Package audit records the entity events the API announces.
package audit

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/khoahotran/portfolio-api/internal/domain/schema"
)

const ModelName = "AuditEntry"

type Entry struct {
	ID         primitive.ObjectID `bson:"_id" json:"_id"`
	Entity     string             `bson:"entity" json:"entity" validate:"required"`
	Action     string             `bson:"action" json:"action" validate:"required"`
	EntityID   string             `bson:"entityId" json:"entityId" validate:"required"`
	OccurredAt time.Time          `bson:"occurredAt" json:"occurredAt"`
	RecordedAt time.Time          `bson:"recordedAt" json:"recordedAt"`
}

func (e *Entry) Validate() error {
	return schema.Validate(ModelName, e)
}

type Repository interface {
	Save(ctx context.Context, e *Entry) error
}
