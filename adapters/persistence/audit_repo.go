package persistence

import (
	"context"

	"github.com/khoahotran/portfolio-api/internal/domain/audit"
)

type mongoAuditRepo struct {
	docs documentCollection[audit.Entry]
}

func NewMongoAuditRepo(db *MongoDB) audit.Repository {
	return &mongoAuditRepo{
		docs: documentCollection[audit.Entry]{db: db, name: CollectionAuditLog, model: audit.ModelName},
	}
}

func (r *mongoAuditRepo) Save(ctx context.Context, e *audit.Entry) error {
	return r.docs.insert(ctx, e)
}
