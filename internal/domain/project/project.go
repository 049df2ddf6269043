package project

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/khoahotran/portfolio-api/internal/domain/schema"
)

const ModelName = "Project"

type Project struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	// Image is a URL or encoded image data, stored as given.
	Image       *string  `bson:"image,omitempty" json:"image,omitempty"`
	Title       string   `bson:"title" json:"title" validate:"required"`
	Description *string  `bson:"description,omitempty" json:"description,omitempty"`
	Technology  []string `bson:"technology" json:"technology"`
}

func (p *Project) Validate() error {
	return schema.Validate(ModelName, p)
}

// Normalize replaces unset sequences with empty ones.
func (p *Project) Normalize() {
	if p.Technology == nil {
		p.Technology = []string{}
	}
}

type Repository interface {
	Save(ctx context.Context, p *Project) error
	FindAll(ctx context.Context) ([]*Project, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Project, error)
	// Update writes the named top-level fields of p onto the stored
	// document with the same ID in one step, removing the ones p leaves
	// unset, and returns the stored result. Other fields are untouched.
	Update(ctx context.Context, p *Project, fields []string) (*Project, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
