package blog

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks v's validate tags and reports failures as ValidationErrors
// keyed by JSON field name.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{Field: fe.Field(), Reason: fe.Tag()})
	}
	return out
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=4000"`
}

// UpdateCategoryRequest applies only non-empty fields.
type UpdateCategoryRequest struct {
	Name        string `json:"name" validate:"max=255"`
	Description string `json:"description" validate:"max=4000"`
}

type CreatePostRequest struct {
	Title    string  `json:"title" validate:"required,max=255"`
	Body     string  `json:"body" validate:"required"`
	Category *int64  `json:"category"`
	Tags     []int64 `json:"tags"`
}

// UpdatePostRequest applies only non-empty scalar fields. A non-nil Tags,
// even when empty, replaces the post's tags; nil leaves them untouched.
type UpdatePostRequest struct {
	Title    string   `json:"title" validate:"max=255"`
	Body     string   `json:"body"`
	Category *int64   `json:"category"`
	Tags     *[]int64 `json:"tags"`
}

type CreateTagRequest struct {
	Name  string  `json:"name" validate:"required,max=255"`
	Posts []int64 `json:"posts"`
}

// UpdateTagRequest follows the same rules as UpdatePostRequest for Posts.
type UpdateTagRequest struct {
	Name  string   `json:"name" validate:"max=255"`
	Posts *[]int64 `json:"posts"`
}
