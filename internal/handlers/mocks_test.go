package handlers

import (
	"context"
	"io"
	"log/slog"

	"github.com/jeremyjsx/blogapi/internal/blog"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubCategoryRepo struct {
	get    func(ctx context.Context, id int64) (*blog.Category, error)
	count  func(ctx context.Context) (int64, error)
	list   func(ctx context.Context, limit, offset int) ([]*blog.Category, error)
	create func(ctx context.Context, c *blog.Category) error
	update func(ctx context.Context, c *blog.Category) error
	delete func(ctx context.Context, id int64) error
}

func (m *stubCategoryRepo) Get(ctx context.Context, id int64) (*blog.Category, error) {
	if m.get != nil {
		return m.get(ctx, id)
	}
	return nil, blog.NewNotFound(blog.ResourceCategory, id)
}

func (m *stubCategoryRepo) Count(ctx context.Context) (int64, error) {
	if m.count != nil {
		return m.count(ctx)
	}
	return 0, nil
}

func (m *stubCategoryRepo) List(ctx context.Context, limit, offset int) ([]*blog.Category, error) {
	if m.list != nil {
		return m.list(ctx, limit, offset)
	}
	return nil, nil
}

func (m *stubCategoryRepo) Create(ctx context.Context, c *blog.Category) error {
	if m.create != nil {
		return m.create(ctx, c)
	}
	return nil
}

func (m *stubCategoryRepo) Update(ctx context.Context, c *blog.Category) error {
	if m.update != nil {
		return m.update(ctx, c)
	}
	return nil
}

func (m *stubCategoryRepo) Delete(ctx context.Context, id int64) error {
	if m.delete != nil {
		return m.delete(ctx, id)
	}
	return nil
}

type stubPostRepo struct {
	get    func(ctx context.Context, id int64) (*blog.Post, error)
	count  func(ctx context.Context) (int64, error)
	list   func(ctx context.Context, limit, offset int) ([]*blog.Post, error)
	create func(ctx context.Context, p *blog.Post) error
	update func(ctx context.Context, p *blog.Post, tags *blog.Change) error
	delete func(ctx context.Context, id int64) error
}

func (m *stubPostRepo) Get(ctx context.Context, id int64) (*blog.Post, error) {
	if m.get != nil {
		return m.get(ctx, id)
	}
	return nil, blog.NewNotFound(blog.ResourcePost, id)
}

func (m *stubPostRepo) Count(ctx context.Context) (int64, error) {
	if m.count != nil {
		return m.count(ctx)
	}
	return 0, nil
}

func (m *stubPostRepo) List(ctx context.Context, limit, offset int) ([]*blog.Post, error) {
	if m.list != nil {
		return m.list(ctx, limit, offset)
	}
	return nil, nil
}

func (m *stubPostRepo) Create(ctx context.Context, p *blog.Post) error {
	if m.create != nil {
		return m.create(ctx, p)
	}
	return nil
}

func (m *stubPostRepo) Update(ctx context.Context, p *blog.Post, tags *blog.Change) error {
	if m.update != nil {
		return m.update(ctx, p, tags)
	}
	return nil
}

func (m *stubPostRepo) Delete(ctx context.Context, id int64) error {
	if m.delete != nil {
		return m.delete(ctx, id)
	}
	return nil
}

type stubTagRepo struct {
	get    func(ctx context.Context, id int64) (*blog.Tag, error)
	count  func(ctx context.Context) (int64, error)
	list   func(ctx context.Context, limit, offset int) ([]*blog.Tag, error)
	create func(ctx context.Context, t *blog.Tag) error
	update func(ctx context.Context, t *blog.Tag, posts *blog.Change) error
	delete func(ctx context.Context, id int64) error
}

func (m *stubTagRepo) Get(ctx context.Context, id int64) (*blog.Tag, error) {
	if m.get != nil {
		return m.get(ctx, id)
	}
	return nil, blog.NewNotFound(blog.ResourceTag, id)
}

func (m *stubTagRepo) Count(ctx context.Context) (int64, error) {
	if m.count != nil {
		return m.count(ctx)
	}
	return 0, nil
}

func (m *stubTagRepo) List(ctx context.Context, limit, offset int) ([]*blog.Tag, error) {
	if m.list != nil {
		return m.list(ctx, limit, offset)
	}
	return nil, nil
}

func (m *stubTagRepo) Create(ctx context.Context, t *blog.Tag) error {
	if m.create != nil {
		return m.create(ctx, t)
	}
	return nil
}

func (m *stubTagRepo) Update(ctx context.Context, t *blog.Tag, posts *blog.Change) error {
	if m.update != nil {
		return m.update(ctx, t, posts)
	}
	return nil
}

func (m *stubTagRepo) Delete(ctx context.Context, id int64) error {
	if m.delete != nil {
		return m.delete(ctx, id)
	}
	return nil
}

type repos struct {
	categories *stubCategoryRepo
	posts      *stubPostRepo
	tags       *stubTagRepo
}

func newRepos() *repos {
	return &repos{
		categories: &stubCategoryRepo{},
		posts:      &stubPostRepo{},
		tags:       &stubTagRepo{},
	}
}

type pinger struct{ err error }

func (p pinger) PingContext(context.Context) error { return p.err }
