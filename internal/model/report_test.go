package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagTallyScores(t *testing.T) {
	tests := []struct {
		name      string
		tally     TagTally
		wantNoNOC float64
		wantAll   float64
	}{
		{"empty", TagTally{}, 0, 0},
		{"all covered", TagTally{Covered: 4, Tagged: 4}, 1, 1},
		{"with NOC", TagTally{Covered: 2, Uncovered: 1, NOC: 1, Tagged: 4}, 2.0 / 3.0, 0.5},
		{"only NOC", TagTally{NOC: 2, Tagged: 2}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantNoNOC, tt.tally.ScoreOfNonNOC(), 1e-9)
			assert.InDelta(t, tt.wantAll, tt.tally.ScoreOfAll(), 1e-9)
		})
	}
}

func TestLineCoverage(t *testing.T) {
	sum := LineCoverage{Covered: 1}.Add(LineCoverage{Covered: 2, Uncovered: 1})
	assert.Equal(t, LineCoverage{Covered: 3, Uncovered: 1}, sum)
	assert.True(t, sum.NeedsAttention())
	assert.False(t, LineCoverage{Covered: 3}.NeedsAttention())

	f := FileCoverage{Lines: map[int]LineCoverage{5: {Covered: 1}, 9: {Uncovered: 2}}}
	assert.Equal(t, LineCoverage{Covered: 1, Uncovered: 2}, f.Totals())
}

func TestIsPseudoTag(t *testing.T) {
	assert.True(t, IsPseudoTag(AllTags))
	assert.True(t, IsPseudoTag(NoTags))
	assert.False(t, IsPseudoTag(TagCovered))
}
