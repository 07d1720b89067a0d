package blog

import (
	"context"
	"io"
	"sync"

	"github.com/jeremyjsx/blogapi/internal/events"
)

type mockCategoryRepo struct {
	get    func(ctx context.Context, id int64) (*Category, error)
	count  func(ctx context.Context) (int64, error)
	list   func(ctx context.Context, limit, offset int) ([]*Category, error)
	create func(ctx context.Context, c *Category) error
	update func(ctx context.Context, c *Category) error
	delete func(ctx context.Context, id int64) error
}

func (m *mockCategoryRepo) Get(ctx context.Context, id int64) (*Category, error) {
	if m.get != nil {
		return m.get(ctx, id)
	}
	return nil, NewNotFound(ResourceCategory, id)
}

func (m *mockCategoryRepo) Count(ctx context.Context) (int64, error) {
	if m.count != nil {
		return m.count(ctx)
	}
	return 0, nil
}

func (m *mockCategoryRepo) List(ctx context.Context, limit, offset int) ([]*Category, error) {
	if m.list != nil {
		return m.list(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockCategoryRepo) Create(ctx context.Context, c *Category) error {
	if m.create != nil {
		return m.create(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepo) Update(ctx context.Context, c *Category) error {
	if m.update != nil {
		return m.update(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id int64) error {
	if m.delete != nil {
		return m.delete(ctx, id)
	}
	return nil
}

type mockPostRepo struct {
	get    func(ctx context.Context, id int64) (*Post, error)
	count  func(ctx context.Context) (int64, error)
	list   func(ctx context.Context, limit, offset int) ([]*Post, error)
	create func(ctx context.Context, p *Post) error
	update func(ctx context.Context, p *Post, tags *Change) error
	delete func(ctx context.Context, id int64) error
}

func (m *mockPostRepo) Get(ctx context.Context, id int64) (*Post, error) {
	if m.get != nil {
		return m.get(ctx, id)
	}
	return nil, NewNotFound(ResourcePost, id)
}

func (m *mockPostRepo) Count(ctx context.Context) (int64, error) {
	if m.count != nil {
		return m.count(ctx)
	}
	return 0, nil
}

func (m *mockPostRepo) List(ctx context.Context, limit, offset int) ([]*Post, error) {
	if m.list != nil {
		return m.list(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockPostRepo) Create(ctx context.Context, p *Post) error {
	if m.create != nil {
		return m.create(ctx, p)
	}
	return nil
}

func (m *mockPostRepo) Update(ctx context.Context, p *Post, tags *Change) error {
	if m.update != nil {
		return m.update(ctx, p, tags)
	}
	return nil
}

func (m *mockPostRepo) Delete(ctx context.Context, id int64) error {
	if m.delete != nil {
		return m.delete(ctx, id)
	}
	return nil
}

type mockTagRepo struct {
	get    func(ctx context.Context, id int64) (*Tag, error)
	count  func(ctx context.Context) (int64, error)
	list   func(ctx context.Context, limit, offset int) ([]*Tag, error)
	create func(ctx context.Context, t *Tag) error
	update func(ctx context.Context, t *Tag, posts *Change) error
	delete func(ctx context.Context, id int64) error
}

func (m *mockTagRepo) Get(ctx context.Context, id int64) (*Tag, error) {
	if m.get != nil {
		return m.get(ctx, id)
	}
	return nil, NewNotFound(ResourceTag, id)
}

func (m *mockTagRepo) Count(ctx context.Context) (int64, error) {
	if m.count != nil {
		return m.count(ctx)
	}
	return 0, nil
}

func (m *mockTagRepo) List(ctx context.Context, limit, offset int) ([]*Tag, error) {
	if m.list != nil {
		return m.list(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockTagRepo) Create(ctx context.Context, t *Tag) error {
	if m.create != nil {
		return m.create(ctx, t)
	}
	return nil
}

func (m *mockTagRepo) Update(ctx context.Context, t *Tag, posts *Change) error {
	if m.update != nil {
		return m.update(ctx, t, posts)
	}
	return nil
}

func (m *mockTagRepo) Delete(ctx context.Context, id int64) error {
	if m.delete != nil {
		return m.delete(ctx, id)
	}
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.ResourceEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.ResourceEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type recordingStorage struct {
	uploads map[string][]byte
	err     error
}

func (s *recordingStorage) Upload(_ context.Context, key string, body io.Reader, _ string) error {
	if s.err != nil {
		return s.err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	if s.uploads == nil {
		s.uploads = map[string][]byte{}
	}
	s.uploads[key] = data
	return nil
}

func (s *recordingStorage) Exists(_ context.Context, key string) (bool, error) {
	_, ok := s.uploads[key]
	return ok, nil
}

// tagsByID serves Get from a fixed set of tags.
func tagsByID(tags ...Tag) func(ctx context.Context, id int64) (*Tag, error) {
	return func(_ context.Context, id int64) (*Tag, error) {
		for _, t := range tags {
			if t.ID == id {
				t := t
				return &t, nil
			}
		}
		return nil, NewNotFound(ResourceTag, id)
	}
}

func postsByID(posts ...Post) func(ctx context.Context, id int64) (*Post, error) {
	return func(_ context.Context, id int64) (*Post, error) {
		for _, p := range posts {
			if p.ID == id {
				p := p
				return &p, nil
			}
		}
		return nil, NewNotFound(ResourcePost, id)
	}
}
