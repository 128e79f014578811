package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKeywordOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`keywords:
  - crowd control
  - k9 patrol
blacklist:
  - security deposit waived
`), 0o600))

	overrides, err := LoadKeywordOverrides(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"crowd control", "k9 patrol"}, overrides.Keywords)
	assert.Equal(t, []string{"security deposit waived"}, overrides.Blacklist)
}

func TestLoadKeywordOverrides_EmptyPath(t *testing.T) {
	overrides, err := LoadKeywordOverrides("")
	require.NoError(t, err)
	assert.Empty(t, overrides.Keywords)
	assert.Empty(t, overrides.Blacklist)
}

func TestLoadKeywordOverrides_MissingFile(t *testing.T) {
	_, err := LoadKeywordOverrides(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadKeywordOverrides_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keywords: [unclosed"), 0o600))

	_, err := LoadKeywordOverrides(path)
	require.Error(t, err)
}
