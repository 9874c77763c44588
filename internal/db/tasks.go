package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/mvarela/taskdeck/internal/models"
)

const taskColumns = "id, title, notes, project_id, area_id, due_date, deadline_date, scheduled_date, is_completed, completed_at, priority, created_at, updated_at"

// CreateTaskParams holds the fields for a new task. Project, area, and tag
// references must all resolve; every missing tag id is reported in one
// error.
type CreateTaskParams struct {
	Title         string
	Notes         *string
	ProjectID     *int64
	AreaID        *int64
	DueDate       *time.Time
	DeadlineDate  *time.Time
	ScheduledDate *time.Time
	Priority      *models.Priority
	TagIDs        []int64
}

// CreateTask creates a task and its tag associations in one transaction and
// returns it with the resolved tag list.
func (db *DB) CreateTask(ctx context.Context, p CreateTaskParams) (*models.Task, error) {
	const op = "create task"

	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, invalid(op, "title is empty")
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return nil, invalid(op, fmt.Sprintf("unknown priority %q", *p.Priority))
	}

	if err := db.checkTaskRefs(ctx, op, p.ProjectID, p.AreaID, p.TagIDs); err != nil {
		return nil, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	ts := now()
	res, err := tx.ExecContext(ctx, `
		INSERT INTO tasks (title, notes, project_id, area_id, due_date, deadline_date, scheduled_date, priority, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, title, optional(p.Notes), p.ProjectID, p.AreaID,
		toUTC(p.DueDate), toUTC(p.DeadlineDate), toUTC(p.ScheduledDate), p.Priority, ts, ts)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	if err := insertTaskTags(ctx, tx, id, p.TagIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return db.GetTask(ctx, id)
}

// GetTask retrieves a task by id with its tags.
func (db *DB) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	t := &models.Task{}
	err := db.GetContext(ctx, t, fmt.Sprintf("SELECT %s FROM tasks WHERE id = ?", taskColumns), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("get task", "task", id)
	}
	if err != nil {
		return nil, err
	}

	tasks := []models.Task{*t}
	if err := db.attachTags(ctx, tasks); err != nil {
		return nil, err
	}
	return &tasks[0], nil
}

// ListTasks returns all tasks, most recently created first, each with its
// tags.
func (db *DB) ListTasks(ctx context.Context) ([]models.Task, error) {
	tasks := []models.Task{}
	err := db.SelectContext(ctx, &tasks, fmt.Sprintf("SELECT %s FROM tasks ORDER BY created_at DESC", taskColumns))
	if err != nil {
		return nil, err
	}
	if err := db.attachTags(ctx, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListTasksByArea returns the tasks filed directly under an area, with tags.
// An unknown area id yields an empty result.
func (db *DB) ListTasksByArea(ctx context.Context, areaID int64) ([]models.Task, error) {
	return db.listTasksWhere(ctx, sq.Eq{"area_id": areaID})
}

// ListTasksByProject returns the tasks in a project, with tags. An unknown
// project id yields an empty result.
func (db *DB) ListTasksByProject(ctx context.Context, projectID int64) ([]models.Task, error) {
	return db.listTasksWhere(ctx, sq.Eq{"project_id": projectID})
}

// ListTodayTasks returns the tasks whose scheduled date falls within the
// current calendar day in local time, half-open [startOfDay, startOfDay+24h).
// Tasks with no scheduled date never appear.
func (db *DB) ListTodayTasks(ctx context.Context) ([]models.Task, error) {
	local := time.Now()
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
	end := start.Add(24 * time.Hour)

	return db.listTasksWhere(ctx, sq.And{
		sq.NotEq{"scheduled_date": nil},
		sq.GtOrEq{"scheduled_date": start.UTC()},
		sq.Lt{"scheduled_date": end.UTC()},
	})
}

func (db *DB) listTasksWhere(ctx context.Context, cond sq.Sqlizer) ([]models.Task, error) {
	query, args, err := sq.Select(taskColumns).From("tasks").Where(cond).ToSql()
	if err != nil {
		return nil, err
	}

	tasks := []models.Task{}
	if err := db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, err
	}
	if err := db.attachTags(ctx, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateTaskParams holds a partial task update. Pointer fields are unchanged
// when nil; Field values are unchanged when absent and null the column when
// cleared. A non-nil TagIDs (an empty slice included) fully replaces the
// task's tag associations; nil leaves them untouched.
type UpdateTaskParams struct {
	Title         *string
	Notes         models.Field[string]
	ProjectID     models.Field[int64]
	AreaID        models.Field[int64]
	DueDate       models.Field[time.Time]
	DeadlineDate  models.Field[time.Time]
	ScheduledDate models.Field[time.Time]
	Priority      models.Field[models.Priority]
	IsCompleted   *bool
	TagIDs        []int64
}

// UpdateTask applies the provided fields to a task, re-stamps updated_at,
// and replaces its tag set when TagIDs is present. Setting IsCompleted
// records completed_at; clearing it nulls the timestamp. Returns ErrNotFound
// if no such task exists.
func (db *DB) UpdateTask(ctx context.Context, id int64, p UpdateTaskParams) (*models.Task, error) {
	const op = "update task"

	ok, err := db.exists(ctx, "tasks", id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound(op, "task", id)
	}

	if p.Priority.Present() && p.Priority.Ptr() != nil && !p.Priority.Ptr().Valid() {
		return nil, invalid(op, fmt.Sprintf("unknown priority %q", *p.Priority.Ptr()))
	}

	if err := db.checkTaskRefs(ctx, op, p.ProjectID.Ptr(), p.AreaID.Ptr(), p.TagIDs); err != nil {
		return nil, err
	}

	b := sq.Update("tasks").Set("updated_at", now()).Where(sq.Eq{"id": id})

	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return nil, invalid(op, "title is empty")
		}
		b = b.Set("title", title)
	}
	if p.Notes.Present() {
		b = b.Set("notes", optional(p.Notes.Ptr()))
	}
	if p.ProjectID.Present() {
		b = b.Set("project_id", p.ProjectID.Ptr())
	}
	if p.AreaID.Present() {
		b = b.Set("area_id", p.AreaID.Ptr())
	}
	if p.DueDate.Present() {
		b = b.Set("due_date", toUTC(p.DueDate.Ptr()))
	}
	if p.DeadlineDate.Present() {
		b = b.Set("deadline_date", toUTC(p.DeadlineDate.Ptr()))
	}
	if p.ScheduledDate.Present() {
		b = b.Set("scheduled_date", toUTC(p.ScheduledDate.Ptr()))
	}
	if p.Priority.Present() {
		b = b.Set("priority", p.Priority.Ptr())
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

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return nil, err
	}

	if p.TagIDs != nil {
		// Full replace: drop every existing edge, then assert the new set.
		if _, err := tx.ExecContext(ctx, "DELETE FROM task_tags WHERE task_id = ?", id); err != nil {
			return nil, err
		}
		if err := insertTaskTags(ctx, tx, id, p.TagIDs); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return db.GetTask(ctx, id)
}

// DeleteTask removes a task and its tag associations. Tags themselves are
// unaffected. Deleting an absent id is a no-op.
func (db *DB) DeleteTask(ctx context.Context, id int64) error {
	_, err := db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	return err
}

// checkTaskRefs validates a task's outgoing references. projectID and areaID
// are skipped when nil; every unresolved tag id is reported together.
func (db *DB) checkTaskRefs(ctx context.Context, op string, projectID, areaID *int64, tagIDs []int64) error {
	if projectID != nil {
		ok, err := db.exists(ctx, "projects", *projectID)
		if err != nil {
			return err
		}
		if !ok {
			return dangling(op, "project", *projectID)
		}
	}
	if areaID != nil {
		ok, err := db.exists(ctx, "areas", *areaID)
		if err != nil {
			return err
		}
		if !ok {
			return dangling(op, "area", *areaID)
		}
	}
	if len(tagIDs) > 0 {
		missing, err := db.missingTags(ctx, tagIDs)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return dangling(op, "tag", missing...)
		}
	}
	return nil
}

func insertTaskTags(ctx context.Context, tx *sqlx.Tx, taskID int64, tagIDs []int64) error {
	for _, tagID := range tagIDs {
		if _, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO task_tags (task_id, tag_id) VALUES (?, ?)
		`, taskID, tagID); err != nil {
			return err
		}
	}
	return nil
}

// taskTagRow joins an association edge with its tag record for batch
// enrichment.
type taskTagRow struct {
	TaskID int64 `db:"task_id"`
	models.Tag
}

// attachTags resolves tags for exactly the given batch of tasks with a
// single IN query keyed by task id. Tasks without associations get an empty,
// non-nil tag list.
func (db *DB) attachTags(ctx context.Context, tasks []models.Task) error {
	for i := range tasks {
		tasks[i].Tags = []models.Tag{}
	}
	if len(tasks) == 0 {
		return nil
	}

	ids := make([]int64, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}

	query, args, err := sqlx.In(`
		SELECT tt.task_id AS task_id, t.id AS id, t.name AS name, t.color AS color, t.created_at AS created_at
		FROM task_tags tt
		JOIN tags t ON t.id = tt.tag_id
		WHERE tt.task_id IN (?)
		ORDER BY t.id
	`, ids)
	if err != nil {
		return err
	}

	rows := []taskTagRow{}
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return err
	}

	byTask := make(map[int64][]models.Tag, len(tasks))
	for _, r := range rows {
		byTask[r.TaskID] = append(byTask[r.TaskID], r.Tag)
	}
	for i := range tasks {
		if tags, ok := byTask[tasks[i].ID]; ok {
			tasks[i].Tags = tags
		}
	}
	return nil
}
