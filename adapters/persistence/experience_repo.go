package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/khoahotran/portfolio-api/internal/domain/experience"
)

type mongoExperienceRepo struct {
	docs documentCollection[experience.Experience]
}

func NewMongoExperienceRepo(db *MongoDB) experience.Repository {
	return &mongoExperienceRepo{
		docs: documentCollection[experience.Experience]{db: db, name: CollectionExperiences, model: experience.ModelName},
	}
}

func (r *mongoExperienceRepo) Save(ctx context.Context, e *experience.Experience) error {
	return r.docs.insert(ctx, e)
}

// FindAll sorts on the raw period string. The default collation compares
// bytes, so this is a textual order, not a chronological one.
func (r *mongoExperienceRepo) FindAll(ctx context.Context) ([]*experience.Experience, error) {
	opts := options.Find().SetSort(bson.D{{Key: "period", Value: -1}})
	return r.docs.findAll(ctx, opts)
}

func (r *mongoExperienceRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*experience.Experience, error) {
	return r.docs.findByID(ctx, id)
}

func (r *mongoExperienceRepo) Update(ctx context.Context, e *experience.Experience, fields []string) (*experience.Experience, error) {
	return r.docs.update(ctx, e.ID, e, fields)
}

func (r *mongoExperienceRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.docs.delete(ctx, id)
}
