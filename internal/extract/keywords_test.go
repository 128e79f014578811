package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectKeywords(t *testing.T) {
	text := "Armed security guard needed for construction site. Guard card and license required."

	got := DetectKeywords(text)

	require.Contains(t, got, CategorySecurityType)
	assert.Equal(t, []string{"armed security", "security guard"}, got[CategorySecurityType])

	require.Contains(t, got, CategoryConstruction)
	assert.Equal(t, []string{"construction site"}, got[CategoryConstruction])

	require.Contains(t, got, CategoryRequirements)
	assert.Equal(t, []string{"license", "armed", "guard card"}, got[CategoryRequirements])

	// Only categories with matches appear.
	assert.NotContains(t, got, CategoryEventType)
}

func TestDetectKeywords_CaseInsensitive(t *testing.T) {
	got := DetectKeywords("EVENT SECURITY for the annual festival")
	assert.Equal(t, []string{"event security"}, got[CategoryEventType])
}

func TestDetectKeywords_Empty(t *testing.T) {
	assert.Empty(t, DetectKeywords(""))
	assert.Empty(t, DetectKeywords("nothing relevant here"))
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  KeywordCategory
	}{
		{"security_type", CategorySecurityType},
		{"Event_Type", CategoryEventType},
		{" construction ", CategoryConstruction},
		{"requirements", CategoryRequirements},
		{"other", CategoryOther},
		{"bogus", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCategory(tt.input), "input %q", tt.input)
	}
}
