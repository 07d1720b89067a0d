package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jeremyjsx/blogapi/internal/blog"
)

var _ blog.PostRepository = (*PostRepo)(nil)

const postColumns = `
	SELECT p.id, p.title, p.body, c.id, c.name
	FROM posts p
	LEFT JOIN categories c ON c.id = p.category_id AND c.deleted_at IS NULL`

type PostRepo struct {
	db *DB
}

func NewPostRepo(db *DB) *PostRepo {
	return &PostRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*blog.Post, error) {
	var (
		p       blog.Post
		catID   sql.NullInt64
		catName sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Body, &catID, &catName); err != nil {
		return nil, err
	}
	if catID.Valid {
		p.Category = &blog.Category{ID: catID.Int64, Name: catName.String}
	}
	p.Tags = []blog.Tag{}
	return &p, nil
}

func (r *PostRepo) Get(ctx context.Context, id int64) (*blog.Post, error) {
	p, err := scanPost(r.db.sql.QueryRowContext(ctx,
		r.db.rebind(postColumns+` WHERE p.id = ? AND p.deleted_at IS NULL`), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, blog.NewNotFound(blog.ResourcePost, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get post %d: %w", id, err)
	}

	rows, err := r.db.sql.QueryContext(ctx, r.db.rebind(`
		SELECT t.id, t.name FROM post_tags pt
		JOIN tags t ON t.id = pt.tag_id
		WHERE pt.post_id = ? AND t.deleted_at IS NULL
		ORDER BY t.id`), id)
	if err != nil {
		return nil, fmt.Errorf("get post %d tags: %w", id, err)
	}
	defer rows.Close()
	for rows.Next() {
		var t blog.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan post tag: %w", err)
		}
		p.Tags = append(p.Tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get post %d tags: %w", id, err)
	}
	return p, nil
}

func (r *PostRepo) Count(ctx context.Context) (int64, error) {
	return r.db.count(ctx, "posts")
}

// List returns a page of posts. Tags carry only their IDs.
func (r *PostRepo) List(ctx context.Context, limit, offset int) ([]*blog.Post, error) {
	rows, err := r.db.sql.QueryContext(ctx, r.db.rebind(postColumns+`
		WHERE p.deleted_at IS NULL
		ORDER BY p.id
		LIMIT ? OFFSET ?`), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	out := make([]*blog.Post, 0, limit)
	ids := make([]int64, 0, limit)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		out = append(out, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	rows.Close()

	links, err := r.db.pageLinks(ctx, `
		SELECT pt.post_id, pt.tag_id FROM post_tags pt
		JOIN tags t ON t.id = pt.tag_id
		WHERE t.deleted_at IS NULL AND pt.post_id IN (?)
		ORDER BY pt.post_id, pt.tag_id`, ids)
	if err != nil {
		return nil, fmt.Errorf("list post tags: %w", err)
	}
	for _, p := range out {
		for _, tagID := range links[p.ID] {
			p.Tags = append(p.Tags, blog.Tag{ID: tagID})
		}
	}
	return out, nil
}

func categoryID(p *blog.Post) sql.NullInt64 {
	if p.Category == nil || p.Category.ID == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: p.Category.ID, Valid: true}
}

func (r *PostRepo) Create(ctx context.Context, p *blog.Post) error {
	return r.db.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			r.db.rebind(`INSERT INTO posts (title, body, category_id) VALUES (?, ?, ?) RETURNING id`),
			p.Title, p.Body, categoryID(p)).Scan(&p.ID)
		if err != nil {
			return mapError(err)
		}
		return r.db.applyLinks(ctx, tx, nil, p.TagIDs(), func(tagID int64) (int64, int64) {
			return p.ID, tagID
		})
	})
}

func (r *PostRepo) Update(ctx context.Context, p *blog.Post, tags *blog.Change) error {
	return r.db.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			r.db.rebind(`UPDATE posts SET title = ?, body = ?, category_id = ? WHERE id = ? AND deleted_at IS NULL`),
			p.Title, p.Body, categoryID(p), p.ID)
		if err != nil {
			return mapError(err)
		}
		ok, err := affected(res)
		if err != nil {
			return err
		}
		if !ok {
			return blog.NewNotFound(blog.ResourcePost, p.ID)
		}
		if tags == nil {
			return nil
		}
		return r.db.applyLinks(ctx, tx, tags.Remove, tags.Add, func(tagID int64) (int64, int64) {
			return p.ID, tagID
		})
	})
}

// Delete soft-deletes the post and drops its tag links.
func (r *PostRepo) Delete(ctx context.Context, id int64) error {
	return r.db.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := r.db.softDelete(ctx, tx, "posts", id)
		if err != nil {
			return err
		}
		if !ok {
			return blog.NewNotFound(blog.ResourcePost, id)
		}
		if _, err := tx.ExecContext(ctx, r.db.rebind(`DELETE FROM post_tags WHERE post_id = ?`), id); err != nil {
			return fmt.Errorf("unlink tags of post %d: %w", id, err)
		}
		return nil
	})
}
