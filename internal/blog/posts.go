package blog

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/jeremyjsx/blogapi/internal/events"
)

type PostService struct {
	repo       PostRepository
	categories CategoryRepository
	tags       TagRepository
	life       lifecycle
}

func NewPostService(repo PostRepository, categories CategoryRepository, tags TagRepository, deps Deps) *PostService {
	return &PostService{
		repo:       repo,
		categories: categories,
		tags:       tags,
		life:       newLifecycle("post", "posts", deps),
	}
}

func (s *PostService) Get(ctx context.Context, id int64) (*Post, error) {
	return s.repo.Get(ctx, id)
}

func (s *PostService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *PostService) List(ctx context.Context, limit, offset int) ([]*Post, error) {
	return s.repo.List(ctx, limit, offset)
}

// Create resolves the category and every tag before writing anything; the
// first unknown ID aborts the whole operation.
func (s *PostService) Create(ctx context.Context, in CreatePostRequest) (*Post, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	p := &Post{Title: in.Title, Body: in.Body}
	if in.Category != nil && *in.Category != 0 {
		c, err := s.resolveCategory(ctx, *in.Category)
		if err != nil {
			return nil, err
		}
		p.Category = c
	}
	tags, err := s.resolveTags(ctx, in.Tags)
	if err != nil {
		return nil, err
	}
	p.Tags = tags

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	s.life.publish(ctx, events.ActionCreated, p.ID, SerializePost(p, true))
	return p, nil
}

func (s *PostService) Update(ctx context.Context, id int64, in UpdatePostRequest) (*Post, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Title != "" {
		p.Title = in.Title
	}
	if in.Body != "" {
		p.Body = in.Body
	}
	if in.Category != nil && *in.Category != 0 {
		c, err := s.resolveCategory(ctx, *in.Category)
		if err != nil {
			return nil, err
		}
		p.Category = c
	}

	var change *Change
	if in.Tags != nil {
		tags, err := s.resolveTags(ctx, *in.Tags)
		if err != nil {
			return nil, err
		}
		c := Reconcile(p.TagIDs(), tagIDs(tags))
		change = &c
		p.Tags = tags
	}

	if err := s.repo.Update(ctx, p, change); err != nil {
		return nil, fmt.Errorf("update post %d: %w", id, err)
	}
	s.life.publish(ctx, events.ActionUpdated, p.ID, SerializePost(p, true))
	return p, nil
}

func (s *PostService) Delete(ctx context.Context, id int64) (*Post, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete post %d: %w", id, err)
	}
	rec := SerializePost(p, true)
	s.life.archiveDeleted(ctx, id, rec)
	s.life.publish(ctx, events.ActionDeleted, id, rec)
	return p, nil
}

func (s *PostService) Serialize(p *Post, includeRelations bool) *Record {
	return SerializePost(p, includeRelations)
}

func (s *PostService) resolveCategory(ctx context.Context, id int64) (*Category, error) {
	c, err := s.categories.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Category{ID: c.ID, Name: c.Name}, nil
}

// resolveTags looks up ids in request order, skipping repeats, and returns
// the tags sorted by ID.
func (s *PostService) resolveTags(ctx context.Context, ids []int64) ([]Tag, error) {
	seen := make(map[int64]bool, len(ids))
	tags := make([]Tag, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		t, err := s.tags.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		tags = append(tags, Tag{ID: t.ID, Name: t.Name})
	}
	slices.SortFunc(tags, func(a, b Tag) int { return cmp.Compare(a.ID, b.ID) })
	return tags, nil
}

func tagIDs(tags []Tag) []int64 {
	ids := make([]int64, 0, len(tags))
	for _, t := range tags {
		ids = append(ids, t.ID)
	}
	return ids
}
