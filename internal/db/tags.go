package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"github.com/mvarela/taskdeck/internal/models"
)

// CreateTagParams holds the fields for a new tag.
type CreateTagParams struct {
	Name  string
	Color *string
}

// CreateTag creates a new tag. Tag names are unique store-wide; a duplicate
// name returns ErrConflict.
func (db *DB) CreateTag(ctx context.Context, p CreateTagParams) (*models.Tag, error) {
	const op = "create tag"

	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, invalid(op, "name is empty")
	}

	res, err := db.ExecContext(ctx, `
		INSERT INTO tags (name, color, created_at) VALUES (?, ?, ?)
	`, name, optional(p.Color), now())
	if err != nil {
		var se sqlite3.Error
		if errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, conflict(op, "tag", fmt.Sprintf("name %q already exists", name))
		}
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return db.GetTag(ctx, id)
}

// GetTag retrieves a tag by id.
func (db *DB) GetTag(ctx context.Context, id int64) (*models.Tag, error) {
	t := &models.Tag{}
	err := db.GetContext(ctx, t, `
		SELECT id, name, color, created_at FROM tags WHERE id = ?
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("get tag", "tag", id)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ListTags returns all tags ordered by name.
func (db *DB) ListTags(ctx context.Context) ([]models.Tag, error) {
	tags := []models.Tag{}
	err := db.SelectContext(ctx, &tags, `
		SELECT id, name, color, created_at FROM tags ORDER BY name
	`)
	return tags, err
}

// DeleteTag removes a tag and every association carrying it. Tagged tasks
// themselves are unaffected. Deleting an absent id is a no-op.
func (db *DB) DeleteTag(ctx context.Context, id int64) error {
	_, err := db.ExecContext(ctx, "DELETE FROM tags WHERE id = ?", id)
	return err
}

// missingTags returns, in input order, the ids in tagIDs that do not resolve
// to an existing tag. Duplicates are reported once.
func (db *DB) missingTags(ctx context.Context, tagIDs []int64) ([]int64, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In("SELECT id FROM tags WHERE id IN (?)", tagIDs)
	if err != nil {
		return nil, err
	}

	found := []int64{}
	if err := db.SelectContext(ctx, &found, query, args...); err != nil {
		return nil, err
	}

	have := make(map[int64]bool, len(found))
	for _, id := range found {
		have[id] = true
	}

	var missing []int64
	for _, id := range tagIDs {
		if !have[id] {
			have[id] = true
			missing = append(missing, id)
		}
	}
	return missing, nil
}
