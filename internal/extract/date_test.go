package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDates(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []time.Time
	}{
		{
			name: "slash format",
			text: "Bids due 12/31/2024.",
			want: []time.Time{time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
		},
		{
			name: "two digit year",
			text: "Posted 1/5/24",
			want: []time.Time{time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		},
		{
			name: "dash format",
			text: "Closing 3-15-2025",
			want: []time.Time{time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)},
		},
		{
			name: "dot format",
			text: "Due 6.1.2025",
			want: []time.Time{time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		},
		{
			name: "month name with comma",
			text: "Proposals accepted until January 5, 2025.",
			want: []time.Time{time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)},
		},
		{
			name: "month name without comma",
			text: "Starts March 3 2025",
			want: []time.Time{time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)},
		},
		{
			name: "no dates",
			text: "Contact the office for the schedule.",
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dates(tt.text)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.True(t, tt.want[i].Equal(got[i]), "want %v, got %v", tt.want[i], got[i])
			}
		})
	}
}

// A candidate that matches a date shape but no layout is dropped, not
// surfaced as an error.
func TestDates_UnparsableDropped(t *testing.T) {
	assert.Empty(t, Dates("Due 13/45/2024"))
}

func TestDates_MultipleInOrder(t *testing.T) {
	got := Dates("Open 1/1/2025, closes 2/1/2025.")
	require.Len(t, got, 2)
	assert.True(t, got[0].Before(got[1]))
}
