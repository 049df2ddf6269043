package project

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/schema"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type ProjectUseCase struct {
	repo      project.Repository
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewProjectUseCase(r project.Repository, pub service.EventPublisher, log logger.Logger) *ProjectUseCase {
	return &ProjectUseCase{repo: r, publisher: pub, logger: log}
}

// Create decodes body as a new project, validates it and stores it under a
// fresh identifier.
func (uc *ProjectUseCase) Create(ctx context.Context, body []byte) (*project.Project, error) {
	p, err := schema.Decode[project.Project](body)
	if err != nil {
		return nil, apperror.NewInvalidInput("decode project body", err)
	}
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("project validation failed", err)
	}

	p.ID = primitive.NewObjectID()
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	uc.publish(ctx, service.ActionCreated, p.ID)
	return p, nil
}

func (uc *ProjectUseCase) List(ctx context.Context) ([]*project.Project, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *ProjectUseCase) Get(ctx context.Context, rawID string) (*project.Project, error) {
	id, err := schema.ParseID(project.ModelName, rawID)
	if err != nil {
		return nil, err
	}
	return uc.repo.FindByID(ctx, id)
}

// Update checks body merged over the stored project and, if the result
// validates, writes only the fields body names. Concurrent writes to other
// fields are kept.
func (uc *ProjectUseCase) Update(ctx context.Context, rawID string, body []byte) (*project.Project, error) {
	id, err := schema.ParseID(project.ModelName, rawID)
	if err != nil {
		return nil, err
	}
	patch, err := schema.ParsePatch(body)
	if err != nil {
		return nil, apperror.NewInvalidInput("decode project patch", err)
	}
	current, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged, err := schema.Apply(current, patch)
	if err != nil {
		return nil, apperror.NewInvalidInput("merge project patch", err)
	}
	merged.ID = current.ID
	merged.Normalize()
	if err := merged.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("project validation failed", err)
	}

	updated, err := uc.repo.Update(ctx, merged, patch.Fields())
	if err != nil {
		return nil, err
	}
	updated.Normalize()
	uc.publish(ctx, service.ActionUpdated, updated.ID)
	return updated, nil
}

func (uc *ProjectUseCase) Delete(ctx context.Context, rawID string) error {
	id, err := schema.ParseID(project.ModelName, rawID)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.publish(ctx, service.ActionDeleted, id)
	return nil
}

func (uc *ProjectUseCase) publish(ctx context.Context, action service.EntityAction, id primitive.ObjectID) {
	evt := service.EntityEvent{Entity: "project", Action: action, ID: id.Hex(), OccurredAt: time.Now().UTC()}
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		uc.logger.Warn("Failed to publish project event", zap.String("project_id", id.Hex()), zap.String("action", string(action)), zap.Error(err))
	}
}
