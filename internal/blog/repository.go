package blog

import "context"

// Repositories return *NotFoundError from Get when no available record has
// the ID, and list available records ordered by ID ascending.

type CategoryRepository interface {
	Get(ctx context.Context, id int64) (*Category, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, limit, offset int) ([]*Category, error)
	Create(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id int64) error
}

type PostRepository interface {
	Get(ctx context.Context, id int64) (*Post, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, limit, offset int) ([]*Post, error)
	// Create inserts p with its category and tag links and sets p.ID.
	Create(ctx context.Context, p *Post) error
	// Update saves p's scalar fields and category. A nil tags change leaves
	// the tag links untouched.
	Update(ctx context.Context, p *Post, tags *Change) error
	Delete(ctx context.Context, id int64) error
}

type TagRepository interface {
	Get(ctx context.Context, id int64) (*Tag, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, limit, offset int) ([]*Tag, error)
	Create(ctx context.Context, t *Tag) error
	Update(ctx context.Context, t *Tag, posts *Change) error
	Delete(ctx context.Context, id int64) error
}
