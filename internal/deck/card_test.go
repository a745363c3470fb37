package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankValue(t *testing.T) {
	tests := []struct {
		rank  Rank
		value int
	}{
		{Two, 2}, {Three, 3}, {Four, 4}, {Five, 5}, {Six, 6}, {Seven, 7},
		{Eight, 8}, {Nine, 9}, {Ten, 10}, {Jack, 10}, {Queen, 10}, {King, 10},
		{Ace, 11},
	}

	for _, tt := range tests {
		t.Run(tt.rank.String(), func(t *testing.T) {
			assert.Equal(t, tt.value, tt.rank.Value())
		})
	}

	assert.Equal(t, 0, Rank(0).Value())
	assert.False(t, Rank(15).Valid())
}

func TestRanksCoverEveryRankOnce(t *testing.T) {
	require.Len(t, Ranks, 13)
	seen := map[Rank]bool{}
	for _, r := range Ranks {
		assert.True(t, r.Valid())
		assert.False(t, seen[r], "duplicate rank %s", r)
		seen[r] = true
	}
}

func TestParseRanks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Rank
		wantErr  bool
	}{
		{
			name:     "compact faces",
			input:    "AKQJT",
			expected: []Rank{Ace, King, Queen, Jack, Ten},
		},
		{
			name:     "numeric ten",
			input:    "10 9 a",
			expected: []Rank{Ten, Nine, Ace},
		},
		{
			name:     "comma separated",
			input:    "8,8,6",
			expected: []Rank{Eight, Eight, Six},
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Rank{},
		},
		{
			name:    "invalid rank",
			input:   "A1K",
			wantErr: true,
		},
		{
			name:    "unknown letter",
			input:   "X",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRanks(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMustParseRanksPanics(t *testing.T) {
	assert.Equal(t, []Rank{Ace, Ace}, MustParseRanks("AA"))
	assert.Panics(t, func() { MustParseRanks("invalid") })
}

func TestSumAndFormat(t *testing.T) {
	hand := MustParseRanks("K7A")
	assert.Equal(t, 28, Sum(hand))
	assert.Equal(t, "K 7 A", FormatRanks(hand))
	assert.Equal(t, 0, Sum(nil))
}
