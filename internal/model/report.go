package model

// ResultCount is the number of results a test produced with a given outcome.
type ResultCount struct {
	Test   string `db:"test" yaml:"test"`
	Result string `db:"result" yaml:"result"`
	Count  int    `db:"cnt" yaml:"count"`
}

// TagCount is the number of mutations carrying a tag.
type TagCount struct {
	Tag   string `db:"tag" yaml:"tag"`
	Count int    `db:"cnt" yaml:"count"`
}

// TagTally holds the tag counts the coverage scores are computed from. Each
// distinct (mutation, tag) pair counts once.
// Both formulas are exposed; consumers pick the one their report needs.
type TagTally struct {
	Covered   int `db:"covered" yaml:"covered"`
	Uncovered int `db:"uncovered" yaml:"uncovered"`
	NOC       int `db:"noc" yaml:"noc"`
	Tagged    int `db:"tagged" yaml:"tagged"`
}

// ScoreOfNonNOC is COVERED over every tag that is not NOC.
func (t TagTally) ScoreOfNonNOC() float64 {
	return ratio(t.Covered, t.Tagged-t.NOC)
}

// ScoreOfAll is COVERED over every tag.
func (t TagTally) ScoreOfAll() float64 {
	return ratio(t.Covered, t.Tagged)
}

func ratio(num, den int) float64 {
	if den <= 0 {
		return 0.0
	}

	return float64(num) / float64(den)
}

// Summary describes a whole database, like `mcy status`.
type Summary struct {
	Database  Path          `yaml:"database"`
	Mutations int           `yaml:"mutations"`
	Untagged  int           `yaml:"untagged"`
	Results   []ResultCount `yaml:"results"`
	Tags      []TagCount    `yaml:"tags"`
	Tally     TagTally      `yaml:"tally"`
}
