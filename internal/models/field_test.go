package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldZeroValueIsAbsent(t *testing.T) {
	var f Field[string]
	assert.False(t, f.Present())
}

func TestFieldSet(t *testing.T) {
	f := Set("blue")
	assert.True(t, f.Present())
	require.NotNil(t, f.Ptr())
	assert.Equal(t, "blue", *f.Ptr())
}

func TestFieldClear(t *testing.T) {
	f := Clear[int64]()
	assert.True(t, f.Present())
	assert.Nil(t, f.Ptr())
}

func TestFieldFromPtr(t *testing.T) {
	v := int64(7)
	f := FromPtr(&v)
	assert.True(t, f.Present())
	require.NotNil(t, f.Ptr())
	assert.Equal(t, int64(7), *f.Ptr())

	f = FromPtr[int64](nil)
	assert.True(t, f.Present())
	assert.Nil(t, f.Ptr())
}

func TestPriorityValid(t *testing.T) {
	assert.True(t, PriorityLow.Valid())
	assert.True(t, PriorityMedium.Valid())
	assert.True(t, PriorityHigh.Valid())
	assert.False(t, Priority("critical").Valid())
	assert.False(t, Priority("").Valid())
}
