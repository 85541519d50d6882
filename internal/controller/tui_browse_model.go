package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "mcyview.dev/pkg/mcyview/internal/model"
)

const codeContext = 6

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("8"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	paneStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("6")).Padding(0, 1)
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	coveredStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	uncoveredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	unknownStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	highlightStyle = lipgloss.NewStyle().Background(lipgloss.Color("238"))
	descStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

type browseKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Expand   key.Binding
	Collapse key.Binding
	Activate key.Binding
	NextView key.Binding
	NextTag  key.Binding
	PrevTag  key.Binding
	Back     key.Binding
	Forward  key.Binding
	First    key.Binding
	Last     key.Binding
	Clear    key.Binding
	Follow   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Expand:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "expand")),
		Collapse: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "collapse")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "jump")),
		NextView: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		NextTag:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t/T", "tag filter")),
		PrevTag:  key.NewBinding(key.WithKeys("T")),
		Back:     key.NewBinding(key.WithKeys("["), key.WithHelp("[", "back")),
		Forward:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "forward")),
		First:    key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "first")),
		Last:     key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "last")),
		Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear history")),
		Follow:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "go to src")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Activate, k.NextView, k.NextTag, k.Back, k.Forward, k.Help, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Expand, k.Collapse},
		{k.Activate, k.Follow, k.NextView, k.NextTag},
		{k.Back, k.Forward, k.First, k.Last, k.Clear},
		{k.Help, k.Quit},
	}
}

// browseModel is the Bubble Tea model of the three-view browser. It keeps
// only presentation state; every decision is made by the Navigator.
type browseModel struct {
	nav  Navigator
	keys browseKeyMap
	help help.Model

	view     m.View
	selected [3]int
	expanded [3]map[int]bool

	tags   []string
	tagIdx int

	props    *m.PropertyRecord
	source   m.AnnotatedSource
	lineSpec string
	buttons  m.HistoryButtons
	status   string

	width  int
	height int
}

func newBrowseModel(nav Navigator) browseModel {
	bm := browseModel{
		nav:    nav,
		keys:   newBrowseKeyMap(),
		help:   help.New(),
		view:   m.ViewSources,
		tags:   nav.Tags(),
		width:  120,
		height: 30,
	}

	for i := range bm.selected {
		bm.selected[i] = m.NoNode
		bm.expanded[i] = make(map[int]bool)
	}

	return bm
}

func (bm browseModel) Init() tea.Cmd {
	return nil
}

func (bm browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		bm.width = msg.Width
		bm.height = msg.Height
		bm.help.Width = msg.Width

		return bm, nil

	case tea.KeyMsg:
		return bm.handleKey(msg)
	}

	return bm, nil
}

//nolint:cyclop // one case per key binding
func (bm browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, bm.keys.Quit):
		return bm, tea.Quit
	case key.Matches(msg, bm.keys.Help):
		bm.help.ShowAll = !bm.help.ShowAll
	case key.Matches(msg, bm.keys.Up):
		bm = bm.moveCursor(-1)
	case key.Matches(msg, bm.keys.Down):
		bm = bm.moveCursor(1)
	case key.Matches(msg, bm.keys.Expand):
		if sel := bm.selected[bm.view]; sel != m.NoNode {
			bm.expanded[bm.view][sel] = true
		}
	case key.Matches(msg, bm.keys.Collapse):
		bm = bm.collapse()
	case key.Matches(msg, bm.keys.Activate):
		if sel := bm.selected[bm.view]; sel != m.NoNode {
			bm = bm.dispatch(m.NodeActivated{View: bm.view, Node: sel})
		}
	case key.Matches(msg, bm.keys.NextView):
		bm.view = m.Views[(int(bm.view)+1)%len(m.Views)]
		bm = bm.dispatch(m.ViewChanged{View: bm.view})
	case key.Matches(msg, bm.keys.NextTag):
		bm = bm.cycleTag(1)
	case key.Matches(msg, bm.keys.PrevTag):
		bm = bm.cycleTag(-1)
	case key.Matches(msg, bm.keys.Back):
		bm = bm.navigate(bm.buttons.Prev, m.NavPrev)
	case key.Matches(msg, bm.keys.Forward):
		bm = bm.navigate(bm.buttons.Next, m.NavNext)
	case key.Matches(msg, bm.keys.First):
		bm = bm.navigate(bm.buttons.First, m.NavFirst)
	case key.Matches(msg, bm.keys.Last):
		bm = bm.navigate(bm.buttons.Last, m.NavLast)
	case key.Matches(msg, bm.keys.Clear):
		bm = bm.dispatch(m.HistoryNav{Direction: m.NavClear})
	case key.Matches(msg, bm.keys.Follow):
		bm = bm.follow()
	}

	return bm, nil
}

func (bm browseModel) moveCursor(delta int) browseModel {
	rows := flatten(bm.nav, bm.view, bm.expanded[bm.view])
	if len(rows) == 0 {
		return bm
	}

	pos := -1

	for i, row := range rows {
		if row.index == bm.selected[bm.view] {
			pos = i
			break
		}
	}

	pos = min(max(pos+delta, 0), len(rows)-1)
	if rows[pos].index == bm.selected[bm.view] {
		return bm
	}

	return bm.dispatch(m.SelectionChanged{View: bm.view, Node: rows[pos].index})
}

func (bm browseModel) collapse() browseModel {
	sel := bm.selected[bm.view]
	if sel == m.NoNode {
		return bm
	}

	if bm.expanded[bm.view][sel] {
		delete(bm.expanded[bm.view], sel)
		return bm
	}

	node, ok := bm.nav.Node(bm.view, sel)
	if !ok || node.Parent == m.NoNode {
		return bm
	}

	return bm.dispatch(m.SelectionChanged{View: bm.view, Node: node.Parent})
}

func (bm browseModel) cycleTag(delta int) browseModel {
	if len(bm.tags) == 0 {
		return bm
	}

	bm.tagIdx = (bm.tagIdx + delta + len(bm.tags)) % len(bm.tags)

	return bm.dispatch(m.TagFilterChanged{Tag: bm.tags[bm.tagIdx]})
}

func (bm browseModel) navigate(enabled bool, dir m.Direction) browseModel {
	if !enabled {
		return bm
	}

	return bm.dispatch(m.HistoryNav{Direction: dir})
}

func (bm browseModel) follow() browseModel {
	if bm.props == nil {
		return bm
	}

	for _, opt := range bm.props.Options {
		if opt.Type == m.OptionSource && m.SrcTag(opt.Value) != bm.props.Source {
			return bm.dispatch(m.PropertyActivated{Option: opt})
		}
	}

	return bm
}

func (bm browseModel) dispatch(event m.Inbound) browseModel {
	switch ev := event.(type) {
	case m.SelectionChanged:
		bm.selected[ev.View] = ev.Node
	case m.ViewChanged:
		bm.view = ev.View
	}

	out, err := bm.nav.Dispatch(event)

	bm.status = ""
	if err != nil {
		bm.status = err.Error()
	}

	for _, o := range out {
		bm = bm.apply(o)
	}

	return bm
}

func (bm browseModel) apply(event m.Outbound) browseModel {
	switch ev := event.(type) {
	case m.ShowNode:
		bm.view = ev.Ref.View
		bm.selected[ev.Ref.View] = ev.Ref.Node

		for _, parent := range ancestors(bm.nav, ev.Ref.View, ev.Ref.Node) {
			bm.expanded[ev.Ref.View][parent] = true
		}
	case m.SelectLine:
		if bm.source.File != ev.File || len(bm.source.Lines) == 0 {
			source, err := bm.nav.Source(ev.File)
			if err != nil {
				bm.status = fmt.Sprintf("%s: %v", ev.File, err)
			}

			source.File = ev.File
			bm.source = source
		}

		bm.lineSpec = ev.LineSpec
	case m.UnselectLine:
		bm.lineSpec = ""
	case m.ShowProperties:
		record := ev.Record
		bm.props = &record
	case m.ClearProperties:
		bm.props = nil
	case m.HistoryButtons:
		bm.buttons = ev
	case m.FilterApplied:
		bm.status = fmt.Sprintf("filter %q hides %d mutation nodes", ev.Tag, ev.Hidden)
	}

	return bm
}

func (bm browseModel) View() string {
	leftWidth := max(bm.width/3, 24)
	rightWidth := max(bm.width-leftWidth-4, 40)
	bodyHeight := max(bm.height-6, 8)

	left := paneStyle.Width(leftWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, bm.renderTabs(), bm.renderTree(bodyHeight-1)),
	)

	codeHeight := bodyHeight / 2
	right := lipgloss.JoinVertical(lipgloss.Left,
		paneStyle.Width(rightWidth).Render(bm.renderCode(codeHeight)),
		paneStyle.Width(rightWidth).Render(bm.renderProperties()),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		bm.renderStatus(),
		bm.help.View(bm.keys),
	)
}

func (bm browseModel) renderTabs() string {
	tabs := make([]string, 0, len(m.Views))

	for _, v := range m.Views {
		if v == bm.view {
			tabs = append(tabs, activeTabStyle.Render(v.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(v.String()))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (bm browseModel) renderTree(height int) string {
	rows := flatten(bm.nav, bm.view, bm.expanded[bm.view])
	if len(rows) == 0 {
		return dimStyle.Render("(empty)")
	}

	pos := 0

	for i, row := range rows {
		if row.index == bm.selected[bm.view] {
			pos = i
			break
		}
	}

	start := max(0, pos-height/2)
	end := min(len(rows), start+height)

	var b strings.Builder

	for _, row := range rows[start:end] {
		marker := "  "
		if len(row.node.Children) > 0 {
			marker = "▸ "
			if bm.expanded[bm.view][row.index] {
				marker = "▾ "
			}
		}

		line := strings.Repeat("  ", row.depth) + marker + row.node.Label
		if row.index == bm.selected[bm.view] {
			line = selectedStyle.Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func (bm browseModel) renderCode(height int) string {
	if bm.source.File == "" {
		return dimStyle.Render("no file selected")
	}

	title := titleStyle.Render(bm.source.File)
	if len(bm.source.Lines) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, dimStyle.Render("(no content)"))
	}

	first, last := 0, 0
	if r, ok := m.ParseColumnRange(bm.lineSpec); ok {
		first, last = r.StartLine, r.EndLine
	} else if n, err := m.LineNumber(bm.lineSpec); err == nil {
		first, last = n, n
	}

	center := min(max(first, 1), len(bm.source.Lines))
	start := max(1, center-codeContext)
	end := min(len(bm.source.Lines), max(start+height-2, center))

	var b strings.Builder

	for _, line := range bm.source.Lines[start-1 : end] {
		text := fmt.Sprintf("%s %4d  %s", renderMargin(line), line.Number, line.Text)
		if line.Number >= first && line.Number <= last {
			text = highlightStyle.Render(text)
		}

		b.WriteString(text)
		b.WriteString("\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, strings.TrimSuffix(b.String(), "\n"))
}

func renderMargin(line m.SourceLine) string {
	margin := fmt.Sprintf("%4s", line.Margin)

	switch {
	case line.Attention:
		return uncoveredStyle.Render(margin)
	case line.Margin == "?":
		return unknownStyle.Render(margin)
	case line.Margin != "":
		return coveredStyle.Render(margin)
	default:
		return margin
	}
}

func (bm browseModel) renderProperties() string {
	if bm.props == nil {
		return dimStyle.Render("nothing selected")
	}

	var b strings.Builder

	if bm.props.HasMutation {
		b.WriteString(titleStyle.Render("Mutation " + bm.props.Mutation.String()))
		b.WriteString("\n")

		if bm.props.Description != "" {
			b.WriteString(descStyle.Render(bm.props.Description))
			b.WriteString("\n")
		}
	}

	for _, row := range propertyRows(*bm.props) {
		fmt.Fprintf(&b, "%-14s %s\n", row[0], row[1])
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func (bm browseModel) renderStatus() string {
	arrow := func(label string, enabled bool) string {
		if enabled {
			return label
		}

		return dimStyle.Render(label)
	}

	history := strings.Join([]string{
		arrow("⏮", bm.buttons.First),
		arrow("◀", bm.buttons.Prev),
		arrow("▶", bm.buttons.Next),
		arrow("⏭", bm.buttons.Last),
	}, " ")

	filter := m.AllTags
	if len(bm.tags) > 0 {
		filter = bm.tags[bm.tagIdx]
	}

	line := fmt.Sprintf("%s  tag: %s", history, filter)
	if bm.status != "" {
		line += "  " + dimStyle.Render(bm.status)
	}

	return line
}
