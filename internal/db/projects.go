package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/mvarela/taskdeck/internal/models"
)

const projectColumns = "id, name, description, area_id, color, is_completed, completed_at, created_at, updated_at"

// CreateProjectParams holds the fields for a new project.
type CreateProjectParams struct {
	Name        string
	Description *string
	AreaID      *int64
	Color       *string
}

// CreateProject creates a new project. A supplied AreaID must reference an
// existing area.
func (db *DB) CreateProject(ctx context.Context, p CreateProjectParams) (*models.Project, error) {
	const op = "create project"

	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, invalid(op, "name is empty")
	}

	if p.AreaID != nil {
		ok, err := db.exists(ctx, "areas", *p.AreaID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, dangling(op, "area", *p.AreaID)
		}
	}

	ts := now()
	res, err := db.ExecContext(ctx, `
		INSERT INTO projects (name, description, area_id, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, name, optional(p.Description), p.AreaID, optional(p.Color), ts, ts)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return db.GetProject(ctx, id)
}

// GetProject retrieves a project by id.
func (db *DB) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	p := &models.Project{}
	err := db.GetContext(ctx, p, fmt.Sprintf("SELECT %s FROM projects WHERE id = ?", projectColumns), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("get project", "project", id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListProjects returns all projects.
func (db *DB) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	err := db.SelectContext(ctx, &projects, fmt.Sprintf("SELECT %s FROM projects", projectColumns))
	return projects, err
}

// ListProjectsByArea returns the projects filed under an area. An unknown
// area id yields an empty result.
func (db *DB) ListProjectsByArea(ctx context.Context, areaID int64) ([]models.Project, error) {
	query, args, err := sq.Select(projectColumns).From("projects").Where(sq.Eq{"area_id": areaID}).ToSql()
	if err != nil {
		return nil, err
	}

	projects := []models.Project{}
	err = db.SelectContext(ctx, &projects, query, args...)
	return projects, err
}

// UpdateProjectParams holds a partial project update. Pointer fields are
// unchanged when nil; Field values are unchanged when absent and null the
// column when cleared.
type UpdateProjectParams struct {
	Name        *string
	Description models.Field[string]
	AreaID      models.Field[int64]
	Color       models.Field[string]
	IsCompleted *bool
}

// UpdateProject applies the provided fields to a project and re-stamps
// updated_at. Setting IsCompleted records completed_at; clearing it nulls
// the timestamp. Returns ErrNotFound if no such project exists.
func (db *DB) UpdateProject(ctx context.Context, id int64, p UpdateProjectParams) (*models.Project, error) {
	const op = "update project"

	if p.AreaID.Present() && p.AreaID.Ptr() != nil {
		ok, err := db.exists(ctx, "areas", *p.AreaID.Ptr())
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, dangling(op, "area", *p.AreaID.Ptr())
		}
	}

	b := sq.Update("projects").Set("updated_at", now()).Where(sq.Eq{"id": id})

	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return nil, invalid(op, "name is empty")
		}
		b = b.Set("name", name)
	}
	if p.Description.Present() {
		b = b.Set("description", optional(p.Description.Ptr()))
	}
	if p.AreaID.Present() {
		b = b.Set("area_id", p.AreaID.Ptr())
	}
	if p.Color.Present() {
		b = b.Set("color", optional(p.Color.Ptr()))
	}
	if p.IsCompleted != nil {
		b = b.Set("is_completed", *p.IsCompleted)
		if *p.IsCompleted {
			b = b.Set("completed_at", now())
		} else {
			b = b.Set("completed_at", nil)
		}
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
		return nil, notFound(op, "project", id)
	}

	return db.GetProject(ctx, id)
}

// DeleteProject removes a project. Tasks in it keep existing with their
// project reference cleared; their area reference is untouched. Deleting an
// absent id is a no-op.
func (db *DB) DeleteProject(ctx context.Context, id int64) error {
	_, err := db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	return err
}

// exists reports whether a row with the given id is present in table.
func (db *DB) exists(ctx context.Context, table string, id int64) (bool, error) {
	var n int
	err := db.GetContext(ctx, &n, fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE id = ?", table), id)
	return n > 0, err
}
