package store

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePromos(t *testing.T) {
	input := "ABC123 2025-01-01\nXYZ999 2025-03-15\n"
	s, err := ParsePromos(strings.NewReader(input))
	require.NoError(t, err)

	entries := s.Active()
	require.Len(t, entries, 2)
	assert.Equal(t, "ABC123", entries[0].Code)
	assert.Equal(t, "2025-01-01", entries[0].Expires)
	assert.Equal(t, "XYZ999", entries[1].Code)
}

func TestParsePromos_DropsMalformedLines(t *testing.T) {
	input := "ABC123 2025-01-01\njust-a-code\none two three\n\nGOOD 2025-06-01\n"
	s, err := ParsePromos(strings.NewReader(input))
	require.NoError(t, err)

	entries := s.Active()
	require.Len(t, entries, 2)
	assert.Equal(t, "ABC123", entries[0].Code)
	assert.Equal(t, "GOOD", entries[1].Code)
	assert.Equal(t, 2, s.Dropped())
}

func TestParsePromos_PreservesOrderAndDuplicates(t *testing.T) {
	input := "DUP 2025-01-01\nOTHER 2025-02-01\nDUP 2025-01-01\n"
	s, err := ParsePromos(strings.NewReader(input))
	require.NoError(t, err)

	entries := s.Active()
	require.Len(t, entries, 3)
	assert.Equal(t, "DUP", entries[0].Code)
	assert.Equal(t, "OTHER", entries[1].Code)
	assert.Equal(t, "DUP", entries[2].Code)
}

func TestParsePromos_Empty(t *testing.T) {
	s, err := ParsePromos(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, s.Active())
}

func TestLoadPromos_MissingFile(t *testing.T) {
	_, err := LoadPromos(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}
