package model

// SourceTagCount is the per-srctag tag tally for tagged mutations. A mutation
// counts once per tag however often its src option or tag row repeats.
type SourceTagCount struct {
	SrcTag    SrcTag `db:"srctag"`
	Covered   int    `db:"covered"`
	Uncovered int    `db:"uncovered"`
	NOC       int    `db:"noc"`
	Tagged    int    `db:"tagged"`
}

// LineCoverage counts COVERED and UNCOVERED tags on a location.
type LineCoverage struct {
	Covered   int `yaml:"covered"`
	Uncovered int `yaml:"uncovered"`
}

// NeedsAttention reports whether the location is not fully covered. A line
// with any UNCOVERED mutation needs attention even when others are COVERED.
func (c LineCoverage) NeedsAttention() bool {
	return c.Uncovered > 0
}

// Add returns the element-wise sum of two counters.
func (c LineCoverage) Add(o LineCoverage) LineCoverage {
	return LineCoverage{Covered: c.Covered + o.Covered, Uncovered: c.Uncovered + o.Uncovered}
}

// FileCoverage is the derived coverage of a single file. BySource holds one
// entry per srctag with at least one tagged mutation, Lines rolls those up by
// leading line number and YetToCover lists the srctags without a single
// tagged mutation.
type FileCoverage struct {
	File       string                  `yaml:"file"`
	BySource   map[SrcTag]LineCoverage `yaml:"by_source"`
	Lines      map[int]LineCoverage    `yaml:"lines"`
	YetToCover []SrcTag                `yaml:"yet_to_cover"`
	Tally      TagTally                `yaml:"tally"`
}

// Totals sums all line counters.
func (f FileCoverage) Totals() LineCoverage {
	var total LineCoverage
	for _, c := range f.Lines {
		total = total.Add(c)
	}

	return total
}

// SourceLine is one line of a file with its coverage margin. Margin is "-N"
// for N uncovered tags, "N" for N covered ones and "?" for a line whose
// mutations are all untagged.
type SourceLine struct {
	Number    int    `yaml:"number"`
	Text      string `yaml:"text"`
	Margin    string `yaml:"margin,omitempty"`
	Attention bool   `yaml:"attention,omitempty"`
}

// AnnotatedSource is a file ready for the code viewer.
type AnnotatedSource struct {
	File     string       `yaml:"file"`
	Lines    []SourceLine `yaml:"lines"`
	Coverage FileCoverage `yaml:"-"`
}
