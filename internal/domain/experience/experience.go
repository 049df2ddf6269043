package experience

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/khoahotran/portfolio-api/internal/domain/schema"
)

const ModelName = "Experience"

type Experience struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	// Period is free text such as "2024" or "2021 - 2023".
	Period             string   `bson:"period" json:"period" validate:"required"`
	Position           string   `bson:"position" json:"position" validate:"required"`
	Company            string   `bson:"company" json:"company" validate:"required"`
	CompanyDescription *string  `bson:"companyDescription,omitempty" json:"companyDescription,omitempty"`
	Responsibilities   []string `bson:"responsibilities" json:"responsibilities"`
	Technologies       []string `bson:"technologies" json:"technologies"`
}

func (e *Experience) Validate() error {
	return schema.Validate(ModelName, e)
}

func (e *Experience) Normalize() {
	if e.Responsibilities == nil {
		e.Responsibilities = []string{}
	}
	if e.Technologies == nil {
		e.Technologies = []string{}
	}
}

type Repository interface {
	Save(ctx context.Context, e *Experience) error
	// FindAll returns every experience ordered by period, compared as text,
	// descending.
	FindAll(ctx context.Context) ([]*Experience, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Experience, error)
	Update(ctx context.Context, e *Experience, fields []string) (*Experience, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
