package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/khoahotran/portfolio-api/internal/domain/profile"
)

type mongoProfileRepo struct {
	docs documentCollection[profile.Profile]
}

func NewMongoProfileRepo(db *MongoDB) profile.Repository {
	return &mongoProfileRepo{
		docs: documentCollection[profile.Profile]{db: db, name: CollectionProfiles, model: profile.ModelName},
	}
}

func (r *mongoProfileRepo) Save(ctx context.Context, p *profile.Profile) error {
	return r.docs.insert(ctx, p)
}

func (r *mongoProfileRepo) FindAll(ctx context.Context) ([]*profile.Profile, error) {
	return r.docs.findAll(ctx)
}

func (r *mongoProfileRepo) FindFirst(ctx context.Context) (*profile.Profile, error) {
	return r.docs.findOne(ctx, bson.D{}, "")
}

func (r *mongoProfileRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*profile.Profile, error) {
	return r.docs.findByID(ctx, id)
}

func (r *mongoProfileRepo) Update(ctx context.Context, p *profile.Profile, fields []string) (*profile.Profile, error) {
	return r.docs.update(ctx, p.ID, p, fields)
}

func (r *mongoProfileRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.docs.delete(ctx, id)
}
