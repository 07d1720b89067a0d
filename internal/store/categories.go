package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jeremyjsx/blogapi/internal/blog"
)

var _ blog.CategoryRepository = (*CategoryRepo)(nil)

type CategoryRepo struct {
	db *DB
}

func NewCategoryRepo(db *DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) Get(ctx context.Context, id int64) (*blog.Category, error) {
	var c blog.Category
	err := r.db.sql.QueryRowContext(ctx,
		r.db.rebind(`SELECT id, name, description FROM categories WHERE id = ? AND deleted_at IS NULL`), id).
		Scan(&c.ID, &c.Name, &c.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, blog.NewNotFound(blog.ResourceCategory, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}

	rows, err := r.db.sql.QueryContext(ctx, r.db.rebind(`
		SELECT id, title FROM posts
		WHERE category_id = ? AND deleted_at IS NULL
		ORDER BY id`), id)
	if err != nil {
		return nil, fmt.Errorf("get category %d posts: %w", id, err)
	}
	defer rows.Close()
	c.Posts = []blog.Post{}
	for rows.Next() {
		var p blog.Post
		if err := rows.Scan(&p.ID, &p.Title); err != nil {
			return nil, fmt.Errorf("scan category post: %w", err)
		}
		c.Posts = append(c.Posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get category %d posts: %w", id, err)
	}
	return &c, nil
}

func (r *CategoryRepo) Count(ctx context.Context) (int64, error) {
	return r.db.count(ctx, "categories")
}

func (r *CategoryRepo) List(ctx context.Context, limit, offset int) ([]*blog.Category, error) {
	rows, err := r.db.sql.QueryContext(ctx, r.db.rebind(`
		SELECT id, name, description FROM categories
		WHERE deleted_at IS NULL
		ORDER BY id
		LIMIT ? OFFSET ?`), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	out := make([]*blog.Category, 0, limit)
	for rows.Next() {
		var c blog.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

func (r *CategoryRepo) Create(ctx context.Context, c *blog.Category) error {
	err := r.db.sql.QueryRowContext(ctx,
		r.db.rebind(`INSERT INTO categories (name, description) VALUES (?, ?) RETURNING id`),
		c.Name, c.Description).Scan(&c.ID)
	if err != nil {
		return mapError(err)
	}
	return nil
}

func (r *CategoryRepo) Update(ctx context.Context, c *blog.Category) error {
	res, err := r.db.sql.ExecContext(ctx,
		r.db.rebind(`UPDATE categories SET name = ?, description = ? WHERE id = ? AND deleted_at IS NULL`),
		c.Name, c.Description, c.ID)
	if err != nil {
		return mapError(err)
	}
	ok, err := affected(res)
	if err != nil {
		return err
	}
	if !ok {
		return blog.NewNotFound(blog.ResourceCategory, c.ID)
	}
	return nil
}

// Delete soft-deletes the category and detaches its posts.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	return r.db.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := r.db.softDelete(ctx, tx, "categories", id)
		if err != nil {
			return err
		}
		if !ok {
			return blog.NewNotFound(blog.ResourceCategory, id)
		}
		if _, err := tx.ExecContext(ctx,
			r.db.rebind(`UPDATE posts SET category_id = NULL WHERE category_id = ?`), id); err != nil {
			return fmt.Errorf("detach posts of category %d: %w", id, err)
		}
		return nil
	})
}
