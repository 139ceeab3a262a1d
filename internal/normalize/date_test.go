package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	sept30 := time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		in     string
		want   time.Time
		wantOK bool
	}{
		{
			name:   "named month",
			in:     "30 September 2025",
			want:   sept30,
			wantOK: true,
		},
		{
			name:   "named month case-insensitive",
			in:     "30 SEPTEMBER 2025",
			want:   sept30,
			wantOK: true,
		},
		{
			name:   "ISO with dashes",
			in:     "2025-09-30",
			want:   sept30,
			wantOK: true,
		},
		{
			name:   "ISO with slashes",
			in:     "2025/09/30",
			want:   sept30,
			wantOK: true,
		},
		{
			name:   "day-first with slashes",
			in:     "30/09/2025",
			want:   sept30,
			wantOK: true,
		},
		{
			name:   "day-first with dashes",
			in:     "30-09-2025",
			want:   sept30,
			wantOK: true,
		},
		{
			name:   "ISO is not misread as day-first",
			in:     "2025-01-02",
			want:   time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "ambiguous numeric date assumes day-first",
			in:     "02.01.2025",
			want:   time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "abbreviated month fallback",
			in:     "2 Jan 2025",
			want:   time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "invalid day is rejected",
			in:     "31/02/2025",
			wantOK: false,
		},
		{
			name:   "unknown month name",
			in:     "30 Septembrr 2025",
			wantOK: false,
		},
		{
			name:   "garbage",
			in:     "not a date",
			wantOK: false,
		},
		{
			name:   "empty",
			in:     "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.in)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseDateFormatsAgree(t *testing.T) {
	// The same calendar date in three conventions must normalize identically.
	a, ok := ParseDate("30 September 2025")
	require.True(t, ok)
	b, ok := ParseDate("2025-09-30")
	require.True(t, ok)
	c, ok := ParseDate("30/09/2025")
	require.True(t, ok)

	assert.Equal(t, a, b)
	assert.Equal(t, b, c)
}
