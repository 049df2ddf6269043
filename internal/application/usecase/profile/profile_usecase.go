package profile

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/schema"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
	publisher   service.EventPublisher
	logger      logger.Logger
}

func NewProfileUseCase(repo profile.Repository, pub service.EventPublisher, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		publisher:   pub,
		logger:      log,
	}
}

// Create stores a new profile. Nothing stops several profiles from
// existing side by side.
func (uc *ProfileUseCase) Create(ctx context.Context, body []byte) (*profile.Profile, error) {
	p, err := schema.Decode[profile.Profile](body)
	if err != nil {
		return nil, apperror.NewInvalidInput("decode profile body", err)
	}
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("profile validation failed", err)
	}

	p.ID = primitive.NewObjectID()
	if err := uc.profileRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	uc.publish(ctx, service.ActionCreated, p.ID)
	return p, nil
}

func (uc *ProfileUseCase) List(ctx context.Context) ([]*profile.Profile, error) {
	return uc.profileRepo.FindAll(ctx)
}

// GetFirst serves the single-profile view of the site.
func (uc *ProfileUseCase) GetFirst(ctx context.Context) (*profile.Profile, error) {
	return uc.profileRepo.FindFirst(ctx)
}

func (uc *ProfileUseCase) Get(ctx context.Context, rawID string) (*profile.Profile, error) {
	id, err := schema.ParseID(profile.ModelName, rawID)
	if err != nil {
		return nil, err
	}
	return uc.profileRepo.FindByID(ctx, id)
}

func (uc *ProfileUseCase) Update(ctx context.Context, rawID string, body []byte) (*profile.Profile, error) {
	id, err := schema.ParseID(profile.ModelName, rawID)
	if err != nil {
		return nil, err
	}
	patch, err := schema.ParsePatch(body)
	if err != nil {
		return nil, apperror.NewInvalidInput("decode profile patch", err)
	}
	current, err := uc.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged, err := schema.Apply(current, patch)
	if err != nil {
		return nil, apperror.NewInvalidInput("merge profile patch", err)
	}
	merged.ID = current.ID
	merged.Normalize()
	if err := merged.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("profile validation failed", err)
	}

	updated, err := uc.profileRepo.Update(ctx, merged, patch.Fields())
	if err != nil {
		return nil, err
	}
	updated.Normalize()
	uc.publish(ctx, service.ActionUpdated, updated.ID)
	return updated, nil
}

func (uc *ProfileUseCase) Delete(ctx context.Context, rawID string) error {
	id, err := schema.ParseID(profile.ModelName, rawID)
	if err != nil {
		return err
	}
	if err := uc.profileRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.publish(ctx, service.ActionDeleted, id)
	return nil
}

func (uc *ProfileUseCase) publish(ctx context.Context, action service.EntityAction, id primitive.ObjectID) {
	evt := service.EntityEvent{Entity: "profile", Action: action, ID: id.Hex(), OccurredAt: time.Now().UTC()}
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		uc.logger.Warn("Failed to publish profile event", zap.String("profile_id", id.Hex()), zap.String("action", string(action)), zap.Error(err))
	}
}
