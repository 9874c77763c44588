package models

// Field carries an optional update value for a nullable column, keeping the
// three states a partial update needs apart: not provided (leave the column
// alone), provided with a value, and provided as an explicit null (clear the
// column).
type Field[T any] struct {
	present bool
	value   *T
}

// Set returns a Field that updates the column to v.
func Set[T any](v T) Field[T] {
	return Field[T]{present: true, value: &v}
}

// Clear returns a Field that sets the column to null.
func Clear[T any]() Field[T] {
	return Field[T]{present: true}
}

// FromPtr returns a Field that updates to *p, or clears when p is nil.
func FromPtr[T any](p *T) Field[T] {
	return Field[T]{present: true, value: p}
}

// Present reports whether the field was provided at all.
func (f Field[T]) Present() bool { return f.present }

// Ptr returns the provided value, or nil when the field clears the column.
// Only meaningful when Present.
func (f Field[T]) Ptr() *T { return f.value }
