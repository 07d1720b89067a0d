package blog

import (
	"errors"
	"fmt"
	"strings"
)

// Resource type names used in error messages.
const (
	ResourceCategory = "Category"
	ResourcePost     = "Post"
	ResourceTag      = "Tag"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflicts with an existing record")
	ErrValidation = errors.New("validation failed")
)

// NotFoundError reports a lookup by ID that matched no available record.
type NotFoundError struct {
	Resource string
	ID       int64
}

func NewNotFound(resource string, id int64) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found for ID %d", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError describes one invalid or missing request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// ValidationErrors collects every field failure of one request.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// Fields maps each failing field to its reason.
func (e ValidationErrors) Fields() map[string]string {
	m := make(map[string]string, len(e))
	for _, fe := range e {
		m[fe.Field] = fe.Reason
	}
	return m
}
