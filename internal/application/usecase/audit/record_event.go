package audit

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/audit"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type RecordEventUseCase struct {
	repo   audit.Repository
	logger logger.Logger
	now    func() time.Time
}

func NewRecordEventUseCase(r audit.Repository, log logger.Logger) *RecordEventUseCase {
	return &RecordEventUseCase{repo: r, logger: log, now: time.Now}
}

// Execute stores evt as an audit entry. Incomplete events are rejected with
// an invalid input error so the caller can skip them.
func (uc *RecordEventUseCase) Execute(ctx context.Context, evt service.EntityEvent) error {
	entry := &audit.Entry{
		ID:         primitive.NewObjectID(),
		Entity:     evt.Entity,
		Action:     string(evt.Action),
		EntityID:   evt.ID,
		OccurredAt: evt.OccurredAt,
		RecordedAt: uc.now().UTC(),
	}
	if err := entry.Validate(); err != nil {
		return apperror.NewInvalidInput("audit entry", err)
	}

	if err := uc.repo.Save(ctx, entry); err != nil {
		return err
	}
	uc.logger.Debug("Recorded entity event",
		zap.String("entity", entry.Entity),
		zap.String("action", entry.Action),
		zap.String("entity_id", entry.EntityID),
	)
	return nil
}
