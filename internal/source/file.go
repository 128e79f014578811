package source

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// FileSource reads raw records from a JSONL file, one JSON object per line.
type FileSource struct {
	name string
	path string
}

// NewFileSource creates a FileSource. When name is empty, the file's base
// name without extension is used.
func NewFileSource(name, path string) *FileSource {
	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return &FileSource{name: name, path: path}
}

func (s *FileSource) Name() string { return s.name }

// Fetch reads and decodes every line of the file. Blank lines are skipped;
// a malformed line fails the whole fetch rather than silently dropping
// records.
func (s *FileSource) Fetch(ctx context.Context) ([]RawRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, eris.Wrapf(err, "source: open %s", s.path)
	}
	defer f.Close()

	var records []RawRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrap(err, "source: fetch canceled")
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec RawRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, eris.Wrapf(err, "source: %s line %d", s.path, lineNo)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, eris.Wrapf(err, "source: read %s", s.path)
	}

	zap.L().Debug("file source fetched",
		zap.String("source", s.name),
		zap.String("path", s.path),
		zap.Int("records", len(records)),
	)
	return records, nil
}
