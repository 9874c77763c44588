package db

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := dangling("create task", "tag", 1000, 1001)
	assert.Equal(t, "create task: dangling reference: tag 1000, 1001", err.Error())

	err = notFound("update area", "area", 7)
	assert.Equal(t, "update area: record not found: area 7", err.Error())

	err = invalid("create tag", "name is empty")
	assert.Equal(t, "create tag: invalid input: name is empty", err.Error())
}

func TestErrorUnwrap(t *testing.T) {
	err := conflict("create tag", "tag", `name "urgent" already exists`)
	require.ErrorIs(t, err, ErrConflict)

	var derr *Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, "create tag", derr.Op)
}
