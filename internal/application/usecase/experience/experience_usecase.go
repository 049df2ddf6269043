package experience

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/schema"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type ExperienceUseCase struct {
	repo      experience.Repository
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewExperienceUseCase(r experience.Repository, pub service.EventPublisher, log logger.Logger) *ExperienceUseCase {
	return &ExperienceUseCase{repo: r, publisher: pub, logger: log}
}

func (uc *ExperienceUseCase) Create(ctx context.Context, body []byte) (*experience.Experience, error) {
	e, err := schema.Decode[experience.Experience](body)
	if err != nil {
		return nil, apperror.NewInvalidInput("decode experience body", err)
	}
	e.Normalize()
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("experience validation failed", err)
	}

	e.ID = primitive.NewObjectID()
	if err := uc.repo.Save(ctx, e); err != nil {
		return nil, err
	}
	uc.publish(ctx, service.ActionCreated, e.ID)
	return e, nil
}

// List returns experiences newest period first. Periods compare as text, so
// "2023 - 2024" sorts below "2024".
func (uc *ExperienceUseCase) List(ctx context.Context) ([]*experience.Experience, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *ExperienceUseCase) Get(ctx context.Context, rawID string) (*experience.Experience, error) {
	id, err := schema.ParseID(experience.ModelName, rawID)
	if err != nil {
		return nil, err
	}
	return uc.repo.FindByID(ctx, id)
}

func (uc *ExperienceUseCase) Update(ctx context.Context, rawID string, body []byte) (*experience.Experience, error) {
	id, err := schema.ParseID(experience.ModelName, rawID)
	if err != nil {
		return nil, err
	}
	patch, err := schema.ParsePatch(body)
	if err != nil {
		return nil, apperror.NewInvalidInput("decode experience patch", err)
	}
	current, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged, err := schema.Apply(current, patch)
	if err != nil {
		return nil, apperror.NewInvalidInput("merge experience patch", err)
	}
	merged.ID = current.ID
	merged.Normalize()
	if err := merged.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("experience validation failed", err)
	}

	updated, err := uc.repo.Update(ctx, merged, patch.Fields())
	if err != nil {
		return nil, err
	}
	updated.Normalize()
	uc.publish(ctx, service.ActionUpdated, updated.ID)
	return updated, nil
}

func (uc *ExperienceUseCase) Delete(ctx context.Context, rawID string) error {
	id, err := schema.ParseID(experience.ModelName, rawID)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.publish(ctx, service.ActionDeleted, id)
	return nil
}

func (uc *ExperienceUseCase) publish(ctx context.Context, action service.EntityAction, id primitive.ObjectID) {
	evt := service.EntityEvent{Entity: "experience", Action: action, ID: id.Hex(), OccurredAt: time.Now().UTC()}
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		uc.logger.Warn("Failed to publish experience event", zap.String("experience_id", id.Hex()), zap.String("action", string(action)), zap.Error(err))
	}
}
