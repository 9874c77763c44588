package db

import (
	"errors"
	"strconv"
	"strings"
)

// Error kinds. Callers match with errors.Is; the transport edge maps them to
// user-facing responses.
var (
	// ErrNotFound means an update target id does not exist. Deletes are
	// idempotent and never return it.
	ErrNotFound = errors.New("record not found")

	// ErrDanglingReference means a create/update supplied a project_id,
	// area_id, or tag id that does not resolve to an existing record.
	ErrDanglingReference = errors.New("dangling reference")

	// ErrConflict means a tag name collided with an existing one.
	ErrConflict = errors.New("conflict")

	// ErrInvalid means a structural violation the store still guards, such
	// as an empty name after trimming.
	ErrInvalid = errors.New("invalid input")
)

// Error carries the failing operation, the entity kind involved, and for
// reference failures every id that did not resolve.
type Error struct {
	Op     string  // operation that failed, e.g. "create task"
	Entity string  // entity kind involved, e.g. "tag"
	IDs    []int64 // unresolved or conflicting ids, if any
	Msg    string  // extra detail, if any
	Err    error   // sentinel kind
}

func (e *Error) Error() string {
	parts := []string{e.Op, e.Err.Error()}
	if e.Entity != "" {
		s := e.Entity
		if len(e.IDs) > 0 {
			ids := make([]string, len(e.IDs))
			for i, id := range e.IDs {
				ids[i] = strconv.FormatInt(id, 10)
			}
			s += " " + strings.Join(ids, ", ")
		}
		parts = append(parts, s)
	}
	if e.Msg != "" {
		parts = append(parts, e.Msg)
	}
	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() error { return e.Err }

func notFound(op, entity string, id int64) error {
	return &Error{Op: op, Entity: entity, IDs: []int64{id}, Err: ErrNotFound}
}

func dangling(op, entity string, ids ...int64) error {
	return &Error{Op: op, Entity: entity, IDs: ids, Err: ErrDanglingReference}
}

func invalid(op, msg string) error {
	return &Error{Op: op, Msg: msg, Err: ErrInvalid}
}

func conflict(op, entity, msg string) error {
	return &Error{Op: op, Entity: entity, Msg: msg, Err: ErrConflict}
}
