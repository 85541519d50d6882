package domain

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"mcyview.dev/pkg/mcyview/internal/adapter"
	m "mcyview.dev/pkg/mcyview/internal/model"
)

// CoverageAggregator derives per-line coverage of a file from mutation tags.
// Nothing is cached: every call reads the store again.
type CoverageAggregator interface {
	Coverage(filename string) (m.FileCoverage, error)
}

type coverageAggregator struct {
	store adapter.MutationStore
}

// NewCoverageAggregator constructs a CoverageAggregator over store.
func NewCoverageAggregator(store adapter.MutationStore) CoverageAggregator {
	return &coverageAggregator{store: store}
}

func (a *coverageAggregator) Coverage(filename string) (m.FileCoverage, error) {
	srcTags, err := a.store.SourceTagsForFile(filename)
	if err != nil {
		slog.Error("Failed to list source tags", "filename", filename, "error", err)
		return m.FileCoverage{}, fmt.Errorf("source tags for %s: %w", filename, err)
	}

	counts, err := a.store.TagCountsForFile(filename)
	if err != nil {
		slog.Error("Failed to count tags", "filename", filename, "error", err)
		return m.FileCoverage{}, fmt.Errorf("tag counts for %s: %w", filename, err)
	}

	coverage := m.FileCoverage{
		File:       filename,
		BySource:   make(map[m.SrcTag]m.LineCoverage),
		Lines:      make(map[int]m.LineCoverage),
		YetToCover: []m.SrcTag{},
	}

	for _, c := range counts {
		if c.Tagged == 0 {
			continue
		}

		lc := m.LineCoverage{Covered: c.Covered, Uncovered: c.Uncovered}
		coverage.BySource[c.SrcTag] = coverage.BySource[c.SrcTag].Add(lc)

		coverage.Tally.Covered += c.Covered
		coverage.Tally.Uncovered += c.Uncovered
		coverage.Tally.NOC += c.NOC
		coverage.Tally.Tagged += c.Tagged

		// Bit-level srctags of the same line ("5", "5.1-5.4") roll up together.
		line, err := lineOf(c.SrcTag)
		if err != nil {
			slog.Warn("Skipping malformed source reference", "srctag", c.SrcTag, "error", err)
			continue
		}

		coverage.Lines[line] = coverage.Lines[line].Add(lc)
	}

	for _, tag := range srcTags {
		if _, tagged := coverage.BySource[tag]; !tagged {
			coverage.YetToCover = append(coverage.YetToCover, tag)
		}
	}

	return coverage, nil
}

func lineOf(tag m.SrcTag) (int, error) {
	loc, err := m.ParseSrcTag(tag)
	if err != nil {
		return 0, err
	}

	return loc.Line()
}

// Annotate splits content into lines and attaches the coverage margin of each.
// A line whose srctags are only yet to cover is marked "?".
func Annotate(content string, coverage m.FileCoverage) m.AnnotatedSource {
	unknown := make(map[int]bool)

	for _, tag := range coverage.YetToCover {
		line, err := lineOf(tag)
		if err != nil {
			continue
		}

		unknown[line] = true
	}

	text := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	if content == "" {
		text = nil
	}

	annotated := m.AnnotatedSource{
		File:     coverage.File,
		Lines:    make([]m.SourceLine, 0, len(text)),
		Coverage: coverage,
	}

	for i, t := range text {
		number := i + 1
		line := m.SourceLine{Number: number, Text: t}

		if c, ok := coverage.Lines[number]; ok {
			line.Margin = margin(c)
			line.Attention = c.NeedsAttention()
		} else if unknown[number] {
			line.Margin = "?"
		}

		annotated.Lines = append(annotated.Lines, line)
	}

	return annotated
}

func margin(c m.LineCoverage) string {
	if c.Uncovered > 0 {
		return "-" + strconv.Itoa(c.Uncovered)
	}

	return strconv.Itoa(c.Covered)
}
