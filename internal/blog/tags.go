package blog

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/jeremyjsx/blogapi/internal/events"
)

type TagService struct {
	repo  TagRepository
	posts PostRepository
	life  lifecycle
}

func NewTagService(repo TagRepository, posts PostRepository, deps Deps) *TagService {
	return &TagService{
		repo:  repo,
		posts: posts,
		life:  newLifecycle("tag", "tags", deps),
	}
}

func (s *TagService) Get(ctx context.Context, id int64) (*Tag, error) {
	return s.repo.Get(ctx, id)
}

func (s *TagService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *TagService) List(ctx context.Context, limit, offset int) ([]*Tag, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *TagService) Create(ctx context.Context, in CreateTagRequest) (*Tag, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	posts, err := s.resolvePosts(ctx, in.Posts)
	if err != nil {
		return nil, err
	}
	t := &Tag{Name: in.Name, Posts: posts}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}
	s.life.publish(ctx, events.ActionCreated, t.ID, SerializeTag(t, true))
	return t, nil
}

func (s *TagService) Update(ctx context.Context, id int64, in UpdateTagRequest) (*Tag, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		t.Name = in.Name
	}

	var change *Change
	if in.Posts != nil {
		posts, err := s.resolvePosts(ctx, *in.Posts)
		if err != nil {
			return nil, err
		}
		ids := make([]int64, 0, len(posts))
		for _, p := range posts {
			ids = append(ids, p.ID)
		}
		c := Reconcile(t.PostIDs(), ids)
		change = &c
		t.Posts = posts
	}

	if err := s.repo.Update(ctx, t, change); err != nil {
		return nil, fmt.Errorf("update tag %d: %w", id, err)
	}
	s.life.publish(ctx, events.ActionUpdated, t.ID, SerializeTag(t, true))
	return t, nil
}

func (s *TagService) Delete(ctx context.Context, id int64) (*Tag, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete tag %d: %w", id, err)
	}
	rec := SerializeTag(t, true)
	s.life.archiveDeleted(ctx, id, rec)
	s.life.publish(ctx, events.ActionDeleted, id, rec)
	return t, nil
}

func (s *TagService) Serialize(t *Tag, includeRelations bool) *Record {
	return SerializeTag(t, includeRelations)
}

func (s *TagService) resolvePosts(ctx context.Context, ids []int64) ([]Post, error) {
	seen := make(map[int64]bool, len(ids))
	posts := make([]Post, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		p, err := s.posts.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		posts = append(posts, Post{ID: p.ID, Title: p.Title})
	}
	slices.SortFunc(posts, func(a, b Post) int { return cmp.Compare(a.ID, b.ID) })
	return posts, nil
}
