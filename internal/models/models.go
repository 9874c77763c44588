package models

import "time"

// Priority is the optional task priority level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Area is a broad grouping for projects and tasks (e.g. "Work", "Home").
type Area struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Color     *string   `db:"color" json:"color"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Project is a goal with its own task list, optionally filed under an area.
type Project struct {
	ID          int64      `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Description *string    `db:"description" json:"description"`
	AreaID      *int64     `db:"area_id" json:"area_id"`
	Color       *string    `db:"color" json:"color"`
	IsCompleted bool       `db:"is_completed" json:"is_completed"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// Tag is a shared label applied to tasks. Names are unique store-wide.
type Tag struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Color     *string   `db:"color" json:"color"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Task is a single to-do item. Project and area references are weak: the
// task survives deletion of either, with the reference cleared.
type Task struct {
	ID            int64      `db:"id" json:"id"`
	Title         string     `db:"title" json:"title"`
	Notes         *string    `db:"notes" json:"notes"`
	ProjectID     *int64     `db:"project_id" json:"project_id"`
	AreaID        *int64     `db:"area_id" json:"area_id"`
	DueDate       *time.Time `db:"due_date" json:"due_date"`
	DeadlineDate  *time.Time `db:"deadline_date" json:"deadline_date"`
	ScheduledDate *time.Time `db:"scheduled_date" json:"scheduled_date"`
	IsCompleted   bool       `db:"is_completed" json:"is_completed"`
	CompletedAt   *time.Time `db:"completed_at" json:"completed_at"`
	Priority      *Priority  `db:"priority" json:"priority"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`

	// Tags holds the resolved tag records, populated on every read and
	// mutation that returns a task. Never nil.
	Tags []Tag `db:"-" json:"tags"`
}
