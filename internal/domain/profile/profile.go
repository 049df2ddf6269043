package profile

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/khoahotran/portfolio-api/internal/domain/schema"
)

const ModelName = "Profile"

type Skill struct {
	Name       *string  `bson:"name,omitempty" json:"name,omitempty"`
	Percentage *float64 `bson:"percentage,omitempty" json:"percentage,omitempty"`
}

type AboutProfile struct {
	Image             *string  `bson:"image,omitempty" json:"image,omitempty"`
	Title             *string  `bson:"title,omitempty" json:"title,omitempty"`
	Domain            []string `bson:"domain" json:"domain"`
	Education         *string  `bson:"education,omitempty" json:"education,omitempty"`
	Languages         []string `bson:"languages" json:"languages"`
	OtherSkills       []string `bson:"otherSkills" json:"otherSkills"`
	Interests         []string `bson:"interests" json:"interests"`
	ProjectsCompleted *float64 `bson:"projectsCompleted,omitempty" json:"projectsCompleted,omitempty"`
}

type About struct {
	Description *string      `bson:"description,omitempty" json:"description,omitempty"`
	Profile     AboutProfile `bson:"profile" json:"profile"`
}

type Profile struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       string             `bson:"name" json:"name" validate:"required"`
	JobRole    string             `bson:"jobRole" json:"jobRole" validate:"required"`
	Experience string             `bson:"experience" json:"experience" validate:"required"`
	Address    string             `bson:"address" json:"address" validate:"required"`
	Skills     []Skill            `bson:"skills" json:"skills"`
	About      About              `bson:"about" json:"about"`
}

func (p *Profile) Validate() error {
	return schema.Validate(ModelName, p)
}

func (p *Profile) Normalize() {
	if p.Skills == nil {
		p.Skills = []Skill{}
	}
	ap := &p.About.Profile
	for _, seq := range []*[]string{&ap.Domain, &ap.Languages, &ap.OtherSkills, &ap.Interests} {
		if *seq == nil {
			*seq = []string{}
		}
	}
}

type Repository interface {
	Save(ctx context.Context, p *Profile) error
	FindAll(ctx context.Context) ([]*Profile, error)
	// FindFirst returns whichever profile the store yields first.
	FindFirst(ctx context.Context) (*Profile, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Profile, error)
	Update(ctx context.Context, p *Profile, fields []string) (*Profile, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
