package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanies(t *testing.T) {
	t.Run("suffix match", func(t *testing.T) {
		got := Companies("Acme Security Services Inc is hiring guards.")
		require.Len(t, got, 1)
		assert.Equal(t, "Acme Security Services Inc", got[0].Name)
		assert.False(t, got[0].IsGovernment)
	})

	t.Run("government indicator", func(t *testing.T) {
		got := Companies("Contact the Springfield Police Department for details.")
		require.NotEmpty(t, got)
		assert.True(t, got[0].IsGovernment)
		assert.Contains(t, got[0].Name, "Department")
	})

	t.Run("duplicates collapse via normalized form", func(t *testing.T) {
		got := Companies("Granite Holdings LLC won the bid. Granite Holdings LLC starts Monday.")
		require.Len(t, got, 1)
		assert.Equal(t, "Granite Holdings LLC", got[0].Name)
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Nil(t, Companies(""))
	})
}

func TestNormalizeCompanyName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// Suffix stripping runs before punctuation removal, so a trailing
		// "Inc." survives as "inc".
		{"Acme Security, Inc.", "acme security inc"},
		{"ACME SECURITY INC", "acme security"},
		{"Granite  Holdings   LLC", "granite holdings"},
		{"City of Portland", "city of portland"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCompanyName(tt.input), "input %q", tt.input)
	}
}

func TestIsGovernmentEntity(t *testing.T) {
	assert.True(t, IsGovernmentEntity("Department of Public Works"))
	assert.True(t, IsGovernmentEntity("City of Reno"))
	assert.True(t, IsGovernmentEntity("Transit Authority"))
	assert.False(t, IsGovernmentEntity("Acme Security Services"))
	assert.False(t, IsGovernmentEntity(""))
}

func TestPersonNames(t *testing.T) {
	t.Run("two and three word names", func(t *testing.T) {
		got := PersonNames("You can reach John Smith or Mary Anne Jones for scheduling.")
		assert.Equal(t, []string{"John Smith", "Mary Anne Jones"}, got)
	})

	t.Run("single capitalized word skipped", func(t *testing.T) {
		assert.Empty(t, PersonNames("Reach out to Facilities about access."))
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Nil(t, PersonNames(""))
	})
}
