package store

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAllowlist(t *testing.T) {
	input := "1364582455436378213 general\n1365209252846768199\nnot-a-channel\n\n42\n"
	s, err := ParseAllowlist(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Allows("1364582455436378213"))
	assert.True(t, s.Allows("42"))
	assert.False(t, s.Allows("not-a-channel"))
	assert.False(t, s.Allows("99999"))
}

func TestLoadAllowlist_MissingFile(t *testing.T) {
	_, err := LoadAllowlist(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}
