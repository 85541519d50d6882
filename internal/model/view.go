package model

// View identifies one of the hierarchical projections of the database.
type View int

// Available views.
const (
	ViewSources View = iota
	ViewMutations
	ViewTags
)

// Views lists every projection in display order.
var Views = []View{ViewSources, ViewMutations, ViewTags}

func (v View) String() string {
	switch v {
	case ViewSources:
		return "Sources"
	case ViewMutations:
		return "Mutations"
	case ViewTags:
		return "Tags"
	default:
		return "Unknown"
	}
}

// Valid reports whether v names a registered view.
func (v View) Valid() bool {
	return v >= ViewSources && v <= ViewTags
}

// NodeKind tags a node of a projection tree.
type NodeKind int

// Node kinds. Which kinds appear at which depth depends on the view:
//
//	Sources:   File -> Line -> Mutation
//	Mutations: Mutation -> Source
//	Tags:      Tag -> Mutation -> Source
const (
	KindFile NodeKind = iota
	KindLine
	KindMutation
	KindTag
	KindSource
)

func (k NodeKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindLine:
		return "line"
	case KindMutation:
		return "mutation"
	case KindTag:
		return "tag"
	case KindSource:
		return "source"
	default:
		return "unknown"
	}
}

// NoNode is the parent index of a root node and the "nothing selected" index.
const NoNode = -1

// Node is an element of a projection arena. Parent and Children are indices
// into the same arena.
type Node struct {
	Kind     NodeKind
	Label    string
	Value    string // filename, srctag or tag, depending on Kind
	Mutation MutationID
	Parent   int
	Children []int
	Hidden   bool
}

// NodeRef addresses a node in a specific view.
type NodeRef struct {
	View View
	Node int
}

// Selection is the canonical (source, mutation) pair a node resolves to.
// File is set whenever a source is, and alone for a file node.
type Selection struct {
	File        string
	Source      SrcTag
	Mutation    MutationID
	HasMutation bool
}

// Empty reports whether the selection names neither a source nor a mutation.
func (s Selection) Empty() bool {
	return s.File == "" && s.Source == "" && !s.HasMutation
}

// LineSpec returns the line part of the selected source, or "" for a bare file.
func (s Selection) LineSpec() string {
	loc, err := ParseSrcTag(s.Source)
	if err != nil {
		return ""
	}

	return loc.LineSpec
}

// PropertyRecord is the display-ready description of a selection.
type PropertyRecord struct {
	File        string       `yaml:"file,omitempty"`
	Source      SrcTag       `yaml:"source,omitempty"`
	Mutation    MutationID   `yaml:"mutation,omitempty"`
	HasMutation bool         `yaml:"-"`
	Description string       `yaml:"description,omitempty"`
	Options     []Option     `yaml:"options,omitempty"`
	Tags        []string     `yaml:"tags,omitempty"`
	Results     []TestResult `yaml:"results,omitempty"`
}
