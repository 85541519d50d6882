package model

// Inbound is an event issued by a presentation layer towards the navigation
// engine.
type Inbound interface {
	inbound()
}

// Outbound is an event the navigation engine produces for the presentation
// layer.
type Outbound interface {
	outbound()
}

// Direction is a history navigation request.
type Direction int

// History directions.
const (
	NavFirst Direction = iota
	NavPrev
	NavNext
	NavLast
	NavClear
)

func (d Direction) String() string {
	switch d {
	case NavFirst:
		return "first"
	case NavPrev:
		return "prev"
	case NavNext:
		return "next"
	case NavLast:
		return "last"
	case NavClear:
		return "clear"
	default:
		return "unknown"
	}
}

// SelectionChanged reports that the user selected a node, or nothing
// (Node == NoNode).
type SelectionChanged struct {
	View View
	Node int
}

// NodeActivated reports a double-click or Enter on a node.
type NodeActivated struct {
	View View
	Node int
}

// TagFilterChanged selects a concrete tag or a pseudo-tag as the filter.
type TagFilterChanged struct {
	Tag string
}

// HistoryNav moves through, or clears, the navigation history.
type HistoryNav struct {
	Direction Direction
}

// ViewChanged reports that another projection became the visible one.
type ViewChanged struct {
	View View
}

// LineClicked reports a click on a line of a source file.
type LineClicked struct {
	File string
	Line int
}

// PropertyActivated reports a double-click on a property row.
type PropertyActivated struct {
	Option Option
}

func (SelectionChanged) inbound()  {}
func (NodeActivated) inbound()     {}
func (TagFilterChanged) inbound()  {}
func (HistoryNav) inbound()        {}
func (ViewChanged) inbound()       {}
func (LineClicked) inbound()       {}
func (PropertyActivated) inbound() {}

// SelectLine asks the code viewer to show a file and highlight a line.
// An empty LineSpec shows the file without a line.
type SelectLine struct {
	File     string
	LineSpec string
}

// UnselectLine clears the code viewer highlight.
type UnselectLine struct{}

// ShowProperties carries the property record for the property panel.
type ShowProperties struct {
	Record PropertyRecord
}

// ClearProperties empties the property panel.
type ClearProperties struct{}

// HistoryButtons reports which history actions are enabled.
type HistoryButtons struct {
	First bool
	Prev  bool
	Next  bool
	Last  bool
}

// ShowNode asks the presentation layer to bring a node into view and make it
// current.
type ShowNode struct {
	Ref NodeRef
}

// FilterApplied reports the new tag filter and how many mutation nodes it hid.
type FilterApplied struct {
	Tag    string
	Hidden int
}

func (SelectLine) outbound()      {}
func (UnselectLine) outbound()    {}
func (ShowProperties) outbound()  {}
func (ClearProperties) outbound() {}
func (HistoryButtons) outbound()  {}
func (ShowNode) outbound()        {}
func (FilterApplied) outbound()   {}
