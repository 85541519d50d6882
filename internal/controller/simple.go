package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	m "mcyview.dev/pkg/mcyview/internal/model"
)

// SimpleUI implements UI by printing tables, or YAML, to the command output.
type SimpleUI struct {
	cmd    *cobra.Command
	format string
}

// NewSimpleUI creates a new SimpleUI. An unknown format prints tables.
func NewSimpleUI(cmd *cobra.Command, format string) *SimpleUI {
	if format != FormatYAML {
		format = FormatTable
	}

	return &SimpleUI{cmd: cmd, format: format}
}

// DisplaySummary prints result and tag counts plus both coverage scores.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.format == FormatYAML {
		return s.encode(summary)
	}

	s.printf("Database: %s\n", summary.Database)
	s.printf("Mutations: %d (%d without tags)\n", summary.Mutations, summary.Untagged)

	if len(summary.Results) > 0 {
		rows := make([][]string, 0, len(summary.Results))
		for _, r := range summary.Results {
			rows = append(rows, []string{r.Test, r.Result, strconv.Itoa(r.Count)})
		}

		s.printf("\n%s", renderTable([]string{"Test", "Result", "Count"}, rows, nil))
	}

	if len(summary.Tags) > 0 {
		s.printf("\n%s", renderTable([]string{"Tag", "Mutations"}, tagRows(summary.Tags), nil))
	}

	s.printf("\n")
	s.printScores(summary.Tally)

	return nil
}

// DisplayTags prints every tag with its mutation count.
func (s *SimpleUI) DisplayTags(ctx context.Context, tags []m.TagCount) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.format == FormatYAML {
		return s.encode(tags)
	}

	total := 0
	for _, t := range tags {
		total += t.Count
	}

	footer := []string{fmt.Sprintf("Total Tags %d", len(tags)), strconv.Itoa(total)}
	s.printf("%s", renderTable([]string{"Tag", "Mutations"}, tagRows(tags), footer))

	return nil
}

// DisplayCoverage prints the per-line coverage of each file.
func (s *SimpleUI) DisplayCoverage(ctx context.Context, files []m.FileCoverage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.format == FormatYAML {
		return s.encode(files)
	}

	var tally m.TagTally

	for i, file := range files {
		if i > 0 {
			s.printf("\n")
		}

		s.printf("%s\n", file.File)
		s.printf("%s", renderCoverageTable(file))

		if len(file.YetToCover) > 0 {
			yet := make([]string, 0, len(file.YetToCover))
			for _, tag := range file.YetToCover {
				yet = append(yet, string(tag))
			}

			s.printf("Yet to cover: %s\n", strings.Join(yet, ", "))
		}

		tally.Covered += file.Tally.Covered
		tally.Uncovered += file.Tally.Uncovered
		tally.NOC += file.Tally.NOC
		tally.Tagged += file.Tally.Tagged
	}

	if len(files) > 1 {
		s.printf("\n")
		s.printScores(tally)
	}

	return nil
}

func renderCoverageTable(file m.FileCoverage) string {
	lines := make([]int, 0, len(file.Lines))
	for line := range file.Lines {
		lines = append(lines, line)
	}

	sort.Ints(lines)

	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		c := file.Lines[line]

		mark := ""
		if c.NeedsAttention() {
			mark = "!"
		}

		rows = append(rows, []string{strconv.Itoa(line), strconv.Itoa(c.Covered), strconv.Itoa(c.Uncovered), mark})
	}

	total := file.Totals()
	footer := []string{
		fmt.Sprintf("Lines %d", len(lines)),
		strconv.Itoa(total.Covered),
		strconv.Itoa(total.Uncovered),
		"",
	}

	return renderTable([]string{"Line", "Covered", "Uncovered", ""}, rows, footer)
}

// DisplayProperties prints a property record.
func (s *SimpleUI) DisplayProperties(ctx context.Context, record m.PropertyRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.format == FormatYAML {
		return s.encode(record)
	}

	if record.Description != "" {
		s.printf("%s\n\n", record.Description)
	}

	s.printf("%s", renderTable([]string{"Property", "Value"}, propertyRows(record), nil))

	return nil
}

func propertyRows(record m.PropertyRecord) [][]string {
	var rows [][]string

	switch {
	case record.Source != "":
		rows = append(rows, []string{"Source", string(record.Source)})
	case record.File != "":
		rows = append(rows, []string{"File", record.File})
	}

	if !record.HasMutation {
		return rows
	}

	rows = append(rows, []string{"Mutation", record.Mutation.String()})

	for _, o := range record.Options {
		rows = append(rows, []string{o.Type, o.Value})
	}

	for _, tag := range record.Tags {
		rows = append(rows, []string{"tag", tag})
	}

	for _, r := range record.Results {
		rows = append(rows, []string{"result " + r.Test, r.Result})
	}

	return rows
}

// DisplaySource prints a file with its coverage margin.
func (s *SimpleUI) DisplaySource(ctx context.Context, source m.AnnotatedSource) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.format == FormatYAML {
		return s.encode(source)
	}

	for _, line := range source.Lines {
		s.printf("%5s %5d  %s\n", line.Margin, line.Number, line.Text)
	}

	return nil
}

// Browse prints the three projections as indented trees. Hidden mutations
// are left out.
func (s *SimpleUI) Browse(ctx context.Context, nav Navigator) error {
	for _, view := range m.Views {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printf("%s\n", view)

		for _, row := range flatten(nav, view, nil) {
			s.printf("%s%s\n", strings.Repeat("  ", row.depth+1), row.node.Label)
		}
	}

	return nil
}

func (s *SimpleUI) printScores(tally m.TagTally) {
	s.printf("Coverage: %.2f%% of non-NOC tags, %.2f%% of all tags (%d covered, %d uncovered, %d NOC)\n",
		tally.ScoreOfNonNOC()*100, tally.ScoreOfAll()*100, tally.Covered, tally.Uncovered, tally.NOC)
}

func (s *SimpleUI) encode(v any) error {
	enc := yaml.NewEncoder(s.cmd.OutOrStdout())
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func tagRows(tags []m.TagCount) [][]string {
	rows := make([][]string, 0, len(tags))
	for _, t := range tags {
		rows = append(rows, []string{t.Tag, strconv.Itoa(t.Count)})
	}

	return rows
}

func renderTable(header []string, rows [][]string, footer []string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)

	if footer != nil {
		table.SetFooter(footer)
	}

	table.Render()

	return tableBuffer.String()
}
