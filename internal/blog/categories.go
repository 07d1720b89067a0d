package blog

import (
	"context"
	"fmt"

	"github.com/jeremyjsx/blogapi/internal/events"
)

type CategoryService struct {
	repo CategoryRepository
	life lifecycle
}

func NewCategoryService(repo CategoryRepository, deps Deps) *CategoryService {
	return &CategoryService{
		repo: repo,
		life: newLifecycle("category", "categories", deps),
	}
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*Category, error) {
	return s.repo.Get(ctx, id)
}

func (s *CategoryService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *CategoryService) List(ctx context.Context, limit, offset int) ([]*Category, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *CategoryService) Create(ctx context.Context, in CreateCategoryRequest) (*Category, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	c := &Category{Name: in.Name, Description: in.Description}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	s.life.publish(ctx, events.ActionCreated, c.ID, SerializeCategory(c, true))
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, in UpdateCategoryRequest) (*Category, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		c.Name = in.Name
	}
	if in.Description != "" {
		c.Description = in.Description
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update category %d: %w", id, err)
	}
	s.life.publish(ctx, events.ActionUpdated, c.ID, SerializeCategory(c, true))
	return c, nil
}

// Delete removes the category and returns it as it was before deletion.
// Its posts stay and lose their category.
func (s *CategoryService) Delete(ctx context.Context, id int64) (*Category, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete category %d: %w", id, err)
	}
	rec := SerializeCategory(c, true)
	s.life.archiveDeleted(ctx, id, rec)
	s.life.publish(ctx, events.ActionDeleted, id, rec)
	return c, nil
}

func (s *CategoryService) Serialize(c *Category, includeRelations bool) *Record {
	return SerializeCategory(c, includeRelations)
}
