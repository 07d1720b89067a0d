package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jeremyjsx/blogapi/internal/blog"
)

var _ blog.TagRepository = (*TagRepo)(nil)

type TagRepo struct {
	db *DB
}

func NewTagRepo(db *DB) *TagRepo {
	return &TagRepo{db: db}
}

func (r *TagRepo) Get(ctx context.Context, id int64) (*blog.Tag, error) {
	t := blog.Tag{Posts: []blog.Post{}}
	err := r.db.sql.QueryRowContext(ctx,
		r.db.rebind(`SELECT id, name FROM tags WHERE id = ? AND deleted_at IS NULL`), id).
		Scan(&t.ID, &t.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, blog.NewNotFound(blog.ResourceTag, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get tag %d: %w", id, err)
	}

	rows, err := r.db.sql.QueryContext(ctx, r.db.rebind(`
		SELECT p.id, p.title FROM post_tags pt
		JOIN posts p ON p.id = pt.post_id
		WHERE pt.tag_id = ? AND p.deleted_at IS NULL
		ORDER BY p.id`), id)
	if err != nil {
		return nil, fmt.Errorf("get tag %d posts: %w", id, err)
	}
	defer rows.Close()
	for rows.Next() {
		var p blog.Post
		if err := rows.Scan(&p.ID, &p.Title); err != nil {
			return nil, fmt.Errorf("scan tag post: %w", err)
		}
		t.Posts = append(t.Posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get tag %d posts: %w", id, err)
	}
	return &t, nil
}

func (r *TagRepo) Count(ctx context.Context) (int64, error) {
	return r.db.count(ctx, "tags")
}

// List returns a page of tags. Posts carry only their IDs.
func (r *TagRepo) List(ctx context.Context, limit, offset int) ([]*blog.Tag, error) {
	rows, err := r.db.sql.QueryContext(ctx, r.db.rebind(`
		SELECT id, name FROM tags
		WHERE deleted_at IS NULL
		ORDER BY id
		LIMIT ? OFFSET ?`), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	out := make([]*blog.Tag, 0, limit)
	ids := make([]int64, 0, limit)
	for rows.Next() {
		t := blog.Tag{Posts: []blog.Post{}}
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		out = append(out, &t)
		ids = append(ids, t.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	rows.Close()

	links, err := r.db.pageLinks(ctx, `
		SELECT pt.tag_id, pt.post_id FROM post_tags pt
		JOIN posts p ON p.id = pt.post_id
		WHERE p.deleted_at IS NULL AND pt.tag_id IN (?)
		ORDER BY pt.tag_id, pt.post_id`, ids)
	if err != nil {
		return nil, fmt.Errorf("list tag posts: %w", err)
	}
	for _, t := range out {
		for _, postID := range links[t.ID] {
			t.Posts = append(t.Posts, blog.Post{ID: postID})
		}
	}
	return out, nil
}

func (r *TagRepo) Create(ctx context.Context, t *blog.Tag) error {
	return r.db.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			r.db.rebind(`INSERT INTO tags (name) VALUES (?) RETURNING id`), t.Name).Scan(&t.ID)
		if err != nil {
			return mapError(err)
		}
		return r.db.applyLinks(ctx, tx, nil, t.PostIDs(), func(postID int64) (int64, int64) {
			return postID, t.ID
		})
	})
}

func (r *TagRepo) Update(ctx context.Context, t *blog.Tag, posts *blog.Change) error {
	return r.db.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			r.db.rebind(`UPDATE tags SET name = ? WHERE id = ? AND deleted_at IS NULL`), t.Name, t.ID)
		if err != nil {
			return mapError(err)
		}
		ok, err := affected(res)
		if err != nil {
			return err
		}
		if !ok {
			return blog.NewNotFound(blog.ResourceTag, t.ID)
		}
		if posts == nil {
			return nil
		}
		return r.db.applyLinks(ctx, tx, posts.Remove, posts.Add, func(postID int64) (int64, int64) {
			return postID, t.ID
		})
	})
}

// Delete soft-deletes the tag and drops its post links.
func (r *TagRepo) Delete(ctx context.Context, id int64) error {
	return r.db.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := r.db.softDelete(ctx, tx, "tags", id)
		if err != nil {
			return err
		}
		if !ok {
			return blog.NewNotFound(blog.ResourceTag, id)
		}
		if _, err := tx.ExecContext(ctx, r.db.rebind(`DELETE FROM post_tags WHERE tag_id = ?`), id); err != nil {
			return fmt.Errorf("unlink posts of tag %d: %w", id, err)
		}
		return nil
	})
}
