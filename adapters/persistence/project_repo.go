package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/khoahotran/portfolio-api/internal/domain/project"
)

type mongoProjectRepo struct {
	docs documentCollection[project.Project]
}

func NewMongoProjectRepo(db *MongoDB) project.Repository {
	return &mongoProjectRepo{
		docs: documentCollection[project.Project]{db: db, name: CollectionProjects, model: project.ModelName},
	}
}

func (r *mongoProjectRepo) Save(ctx context.Context, p *project.Project) error {
	return r.docs.insert(ctx, p)
}

func (r *mongoProjectRepo) FindAll(ctx context.Context) ([]*project.Project, error) {
	return r.docs.findAll(ctx)
}

func (r *mongoProjectRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*project.Project, error) {
	return r.docs.findByID(ctx, id)
}

func (r *mongoProjectRepo) Update(ctx context.Context, p *project.Project, fields []string) (*project.Project, error) {
	return r.docs.update(ctx, p.ID, p, fields)
}

func (r *mongoProjectRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.docs.delete(ctx, id)
}
