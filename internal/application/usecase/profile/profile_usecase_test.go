package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// sliceRepo keeps profiles in insertion order.
type sliceRepo struct {
	docs []profile.Profile
}

func (r *sliceRepo) Save(_ context.Context, p *profile.Profile) error {
	r.docs = append(r.docs, *p)
	return nil
}

func (r *sliceRepo) FindAll(context.Context) ([]*profile.Profile, error) {
	out := make([]*profile.Profile, 0, len(r.docs))
	for i := range r.docs {
		p := r.docs[i]
		out = append(out, &p)
	}
	return out, nil
}

func (r *sliceRepo) FindFirst(context.Context) (*profile.Profile, error) {
	if len(r.docs) == 0 {
		return nil, apperror.NewNotFound(profile.ModelName, "")
	}
	p := r.docs[0]
	return &p, nil
}

func (r *sliceRepo) FindByID(_ context.Context, id primitive.ObjectID) (*profile.Profile, error) {
	for _, p := range r.docs {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, apperror.NewNotFound(profile.ModelName, id.Hex())
}

// Update stores the whole merged profile; tests here run without concurrent
// writers, so that matches a field-wise update.
func (r *sliceRepo) Update(_ context.Context, p *profile.Profile, _ []string) (*profile.Profile, error) {
	for i := range r.docs {
		if r.docs[i].ID == p.ID {
			r.docs[i] = *p
			return p, nil
		}
	}
	return nil, apperror.NewNotFound(profile.ModelName, p.ID.Hex())
}

func (r *sliceRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i := range r.docs {
		if r.docs[i].ID == id {
			r.docs = append(r.docs[:i], r.docs[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound(profile.ModelName, id.Hex())
}

const baseProfile = `{"name":"Khoa","jobRole":"Engineer","experience":"5 years","address":"HCMC",
	"about":{"description":"hi","profile":{"title":"Backend","languages":["en","vi"],"projectsCompleted":7}}}`

func TestProfileUseCase_GetFirst(t *testing.T) {
	uc := NewProfileUseCase(&sliceRepo{}, service.NewNopPublisher(), logger.NewNopLogger())
	ctx := context.Background()

	_, err := uc.GetFirst(ctx)
	require.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, "Profile not found", apperror.Message(err))

	first, err := uc.Create(ctx, []byte(baseProfile))
	require.NoError(t, err)
	_, err = uc.Create(ctx, []byte(baseProfile))
	require.NoError(t, err)

	got, err := uc.GetFirst(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	all, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestProfileUseCase_CreateNormalizesNested(t *testing.T) {
	uc := NewProfileUseCase(&sliceRepo{}, service.NewNopPublisher(), logger.NewNopLogger())

	p, err := uc.Create(context.Background(), []byte(baseProfile))
	require.NoError(t, err)

	assert.Equal(t, []profile.Skill{}, p.Skills)
	assert.Equal(t, []string{"en", "vi"}, p.About.Profile.Languages)
	assert.Equal(t, []string{}, p.About.Profile.Domain)
	require.NotNil(t, p.About.Profile.ProjectsCompleted)
	assert.Equal(t, 7.0, *p.About.Profile.ProjectsCompleted)
	assert.Nil(t, p.About.Profile.Image)
}

func TestProfileUseCase_UpdateReplacesNestedObjectWhole(t *testing.T) {
	uc := NewProfileUseCase(&sliceRepo{}, service.NewNopPublisher(), logger.NewNopLogger())
	ctx := context.Background()

	p, err := uc.Create(ctx, []byte(baseProfile))
	require.NoError(t, err)

	updated, err := uc.Update(ctx, p.ID.Hex(), []byte(`{"about":{"description":"new"},"skills":[{"name":"Go","percentage":95}]}`))
	require.NoError(t, err)

	require.NotNil(t, updated.About.Description)
	assert.Equal(t, "new", *updated.About.Description)
	assert.Nil(t, updated.About.Profile.Title)
	assert.Equal(t, []string{}, updated.About.Profile.Languages)
	require.Len(t, updated.Skills, 1)
	assert.Equal(t, "Go", *updated.Skills[0].Name)
	assert.Equal(t, "Khoa", updated.Name)
}

func TestProfileUseCase_UpdateRejectsClearingRequired(t *testing.T) {
	uc := NewProfileUseCase(&sliceRepo{}, service.NewNopPublisher(), logger.NewNopLogger())
	ctx := context.Background()

	p, err := uc.Create(ctx, []byte(baseProfile))
	require.NoError(t, err)

	_, err = uc.Update(ctx, p.ID.Hex(), []byte(`{"address":null}`))
	require.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Equal(t, "Profile validation failed: address: Path `address` is required.", apperror.Message(err))

	stored, err := uc.Get(ctx, p.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "HCMC", stored.Address)
}
