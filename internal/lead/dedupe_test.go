package lead

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guardline/leads-cli/internal/model"
)

func dedupeLead(id, org, title, url string) model.Lead {
	return model.Lead{
		ID:           id,
		SourceURL:    url,
		Organization: model.Organization{Name: org},
		Opportunity:  model.Opportunity{Title: title},
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ABC, Inc.", "abc inc"},
		{"abc inc", "abc inc"},
		{"  Multiple   Spaces  ", "multiple spaces"},
		{"Mixed-Case & Punct!", "mixedcase punct"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeText(tt.input), "input %q", tt.input)
	}
}

// Normalization is symmetric across punctuation and casing.
func TestNormalizeText_Symmetric(t *testing.T) {
	assert.Equal(t, NormalizeText("ABC, Inc."), NormalizeText("abc inc"))
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "acme security services", "acme security services", 1.0},
		{"three of four tokens", "acme security services", "acme security services inc", 0.75},
		{"disjoint", "foo bar", "baz qux", 0.0},
		{"empty side", "", "acme", 0.0},
		{"both empty", "", "", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestFindDuplicate(t *testing.T) {
	t.Run("near-identical organizations flagged", func(t *testing.T) {
		existing := []model.Lead{
			dedupeLead("lead-1", "Acme Security Services", "Night Guard Coverage", "https://a.example/1"),
		}
		candidate := dedupeLead("", "ACME Security Services Inc", "Night Guard Coverage", "https://b.example/2")

		match := FindDuplicate(candidate, existing)
		assert.True(t, match.IsDuplicate)
		assert.Equal(t, "lead-1", match.MatchedID)
		assert.InDelta(t, 0.85, match.Similarity, 1e-9)
	})

	t.Run("disjoint tokens never flagged", func(t *testing.T) {
		existing := []model.Lead{
			dedupeLead("lead-1", "Foo Bar", "Alpha Beta", "https://a.example/1"),
		}
		candidate := dedupeLead("", "Baz Qux", "Gamma Delta", "https://b.example/2")

		match := FindDuplicate(candidate, existing)
		assert.False(t, match.IsDuplicate)
		assert.Empty(t, match.MatchedID)
	})

	t.Run("same source URL skipped", func(t *testing.T) {
		existing := []model.Lead{
			dedupeLead("lead-1", "Acme Security", "Night Guard", "https://a.example/1"),
		}
		candidate := dedupeLead("", "Acme Security", "Night Guard", "https://a.example/1")

		match := FindDuplicate(candidate, existing)
		assert.False(t, match.IsDuplicate)
	})

	t.Run("missing organization or title skipped", func(t *testing.T) {
		existing := []model.Lead{
			dedupeLead("lead-1", "", "Night Guard", "https://a.example/1"),
			dedupeLead("lead-2", "Acme Security", "", "https://a.example/2"),
		}
		candidate := dedupeLead("", "Acme Security", "Night Guard", "https://b.example/3")
		assert.False(t, FindDuplicate(candidate, existing).IsDuplicate)

		empty := dedupeLead("", "", "", "https://b.example/4")
		assert.False(t, FindDuplicate(empty, existing).IsDuplicate)
	})

	t.Run("equal scores keep first-seen lead", func(t *testing.T) {
		existing := []model.Lead{
			dedupeLead("lead-1", "Acme Security", "Night Guard", "https://a.example/1"),
			dedupeLead("lead-2", "Acme Security", "Night Guard", "https://a.example/2"),
		}
		candidate := dedupeLead("", "Acme Security", "Night Guard", "https://b.example/3")

		match := FindDuplicate(candidate, existing)
		assert.True(t, match.IsDuplicate)
		assert.Equal(t, "lead-1", match.MatchedID)
	})

	t.Run("highest similarity wins", func(t *testing.T) {
		existing := []model.Lead{
			dedupeLead("lead-1", "Acme Security Services Group", "Night Guard", "https://a.example/1"),
			dedupeLead("lead-2", "Acme Security", "Night Guard", "https://a.example/2"),
		}
		candidate := dedupeLead("", "Acme Security", "Night Guard", "https://b.example/3")

		match := FindDuplicate(candidate, existing)
		assert.True(t, match.IsDuplicate)
		assert.Equal(t, "lead-2", match.MatchedID)
	})
}
