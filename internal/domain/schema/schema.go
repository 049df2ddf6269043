// Package schema holds the document-level rules shared by every entity:
// required-field checks, identifier parsing and the partial-update merge.
package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type FieldError struct {
	Path string
	Rule string
}

func (f FieldError) Message() string {
	if f.Rule == "required" {
		return fmt.Sprintf("Path `%s` is required.", f.Path)
	}
	return fmt.Sprintf("Validator failed for path `%s`", f.Path)
}

// ValidationError lists every field of Model that failed its rules, in
// declaration order.
type ValidationError struct {
	Model  string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Path + ": " + f.Message()
	}
	return fmt.Sprintf("%s validation failed: %s", e.Model, strings.Join(parts, ", "))
}

// Validate checks doc's `validate` tags. It returns nil or a *ValidationError.
func Validate(model string, doc any) error {
	err := validate.Struct(doc)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	verr := &ValidationError{Model: model, Fields: make([]FieldError, 0, len(errs))}
	for _, fe := range errs {
		// Namespace is "<Struct>.<json path>"; drop the struct name.
		_, path, _ := strings.Cut(fe.Namespace(), ".")
		verr.Fields = append(verr.Fields, FieldError{Path: path, Rule: fe.Tag()})
	}
	return verr
}

// ParseID turns a path segment into an ObjectID, failing the way a cast of
// a malformed identifier does.
func ParseID(model, hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, apperror.NewCast(model, hex, err)
	}
	return id, nil
}
