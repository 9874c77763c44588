package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/mvarela/taskdeck/internal/models"
)

// CreateAreaParams holds the fields for a new area. A nil or empty Color is
// stored as null.
type CreateAreaParams struct {
	Name  string
	Color *string
}

// CreateArea creates a new area.
func (db *DB) CreateArea(ctx context.Context, p CreateAreaParams) (*models.Area, error) {
	const op = "create area"

	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, invalid(op, "name is empty")
	}

	ts := now()
	res, err := db.ExecContext(ctx, `
		INSERT INTO areas (name, color, created_at, updated_at) VALUES (?, ?, ?, ?)
	`, name, optional(p.Color), ts, ts)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return db.GetArea(ctx, id)
}

// GetArea retrieves an area by id.
func (db *DB) GetArea(ctx context.Context, id int64) (*models.Area, error) {
	a := &models.Area{}
	err := db.GetContext(ctx, a, `
		SELECT id, name, color, created_at, updated_at FROM areas WHERE id = ?
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("get area", "area", id)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListAreas returns all areas.
func (db *DB) ListAreas(ctx context.Context) ([]models.Area, error) {
	areas := []models.Area{}
	err := db.SelectContext(ctx, &areas, `
		SELECT id, name, color, created_at, updated_at FROM areas
	`)
	return areas, err
}

// UpdateAreaParams holds a partial area update. Nil Name leaves the name
// unchanged; an absent Color leaves the color unchanged, a cleared one nulls
// it.
type UpdateAreaParams struct {
	Name  *string
	Color models.Field[string]
}

// UpdateArea applies the provided fields to an area and re-stamps
// updated_at. Returns ErrNotFound if no such area exists.
func (db *DB) UpdateArea(ctx context.Context, id int64, p UpdateAreaParams) (*models.Area, error) {
	const op = "update area"

	b := sq.Update("areas").Set("updated_at", now()).Where(sq.Eq{"id": id})

	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return nil, invalid(op, "name is empty")
		}
		b = b.Set("name", name)
	}
	if p.Color.Present() {
		b = b.Set("color", optional(p.Color.Ptr()))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, notFound(op, "area", id)
	}

	return db.GetArea(ctx, id)
}

// DeleteArea removes an area. Projects and tasks filed under it keep
// existing with their area reference cleared. Deleting an absent id is a
// no-op.
func (db *DB) DeleteArea(ctx context.Context, id int64) error {
	_, err := db.ExecContext(ctx, "DELETE FROM areas WHERE id = ?", id)
	return err
}
