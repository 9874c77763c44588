package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = parseID("abc")
	require.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2026-09-04")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.September, d.Month())
	assert.Equal(t, 4, d.Day())
	assert.Equal(t, time.Local, d.Location())

	_, err = parseDate("04/09/2026")
	require.Error(t, err)
}

func TestDateField(t *testing.T) {
	f, err := dateField("2026-09-04")
	require.NoError(t, err)
	assert.True(t, f.Present())
	require.NotNil(t, f.Ptr())

	f, err = dateField("")
	require.NoError(t, err)
	assert.True(t, f.Present())
	assert.Nil(t, f.Ptr())

	_, err = dateField("bogus")
	require.Error(t, err)
}
