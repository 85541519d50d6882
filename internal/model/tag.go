package model

// Pseudo-tags. They never appear in the tags table.
const (
	AllTags = "All tags"
	NoTags  = "No tags"
)

// Tags assigned by the logic script that the viewer knows about.
const (
	TagCovered   = "COVERED"
	TagUncovered = "UNCOVERED"
	TagNOC       = "NOC"
	TagProbe     = "PROBE"
	TagGap       = "GAP"
)

// IsPseudoTag reports whether tag is one of the filter-only tokens.
func IsPseudoTag(tag string) bool {
	return tag == AllTags || tag == NoTags
}
