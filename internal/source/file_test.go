package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONL(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o600))
	return path
}

func TestFileSource_Fetch(t *testing.T) {
	path := writeJSONL(t, `{"title": "Night Guard", "company": "Acme Security", "source_url": "https://a.example/1"}

{"title": "Event Security", "agency": "City of Reno", "department": "Parks", "source_url": "https://a.example/2"}
`)

	src := NewFileSource("jobs", path)
	assert.Equal(t, "jobs", src.Name())

	records, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Night Guard", records[0].Title)
	assert.Equal(t, "Acme Security", records[0].OrgName())
	assert.False(t, records[0].IsGovernment())
	assert.Equal(t, "City of Reno - Parks", records[1].OrgName())
	assert.True(t, records[1].IsGovernment())
}

func TestFileSource_NameFromPath(t *testing.T) {
	src := NewFileSource("", "/data/usajobs.jsonl")
	assert.Equal(t, "usajobs", src.Name())
}

func TestFileSource_MalformedLine(t *testing.T) {
	path := writeJSONL(t, `{"title": "ok", "source_url": "https://a.example/1"}
{not json}
`)

	_, err := NewFileSource("jobs", path).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestFileSource_MissingFile(t *testing.T) {
	_, err := NewFileSource("jobs", "/nonexistent/records.jsonl").Fetch(context.Background())
	require.Error(t, err)
}
