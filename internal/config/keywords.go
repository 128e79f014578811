package config

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// KeywordOverrides holds extra validator terms loaded from a YAML file.
type KeywordOverrides struct {
	// Keywords extend the security whitelist.
	Keywords []string `yaml:"keywords"`
	// Blacklist extends the irrelevant-phrase blacklist.
	Blacklist []string `yaml:"blacklist"`
}

// LoadKeywordOverrides reads a keyword override file. An empty path returns
// empty overrides; a missing file is an error, since the path was configured
// explicitly.
func LoadKeywordOverrides(path string) (KeywordOverrides, error) {
	var out KeywordOverrides
	if path == "" {
		return out, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return out, eris.Wrapf(err, "config: read keywords file %s", path)
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return out, eris.Wrapf(err, "config: parse keywords file %s", path)
	}
	return out, nil
}
