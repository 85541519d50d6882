package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Path represents a file system path.
type Path string

// ErrMalformedReference is returned when a srctag or option value cannot be
// split into a filename and a line.
var ErrMalformedReference = errors.New("malformed source reference")

// SrcTag is a source location identifier of the form "<filename>:<linespec>".
// The line spec is either a plain line number ("12") or a Yosys range
// ("12.3-12.9").
type SrcTag string

// NewSrcTag joins a filename and a line spec into a SrcTag.
func NewSrcTag(filename, lineSpec string) SrcTag {
	return SrcTag(filename + ":" + lineSpec)
}

// Location is a parsed SrcTag.
type Location struct {
	File     string
	LineSpec string
}

// ParseSrcTag splits a srctag at its last colon.
func ParseSrcTag(tag SrcTag) (Location, error) {
	s := string(tag)

	idx := strings.LastIndex(s, ":")
	if idx <= 0 || idx == len(s)-1 {
		return Location{}, fmt.Errorf("%w: %q", ErrMalformedReference, s)
	}

	return Location{File: s[:idx], LineSpec: s[idx+1:]}, nil
}

// Tag returns the srctag form of the location.
func (l Location) Tag() SrcTag {
	return NewSrcTag(l.File, l.LineSpec)
}

// Line returns the leading line number of the location.
func (l Location) Line() (int, error) {
	return LineNumber(l.LineSpec)
}

// LineNumber extracts the leading line number from a line spec:
// "12" -> 12, "12.3-12.9" -> 12.
func LineNumber(lineSpec string) (int, error) {
	head := lineSpec
	if i := strings.IndexAny(head, ".-"); i >= 0 {
		head = head[:i]
	}

	n, err := strconv.Atoi(head)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: line %q", ErrMalformedReference, lineSpec)
	}

	return n, nil
}

// ColumnRange is a highlighted span inside a file, 1-based.
type ColumnRange struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// ParseColumnRange parses a "L.C-L.C" line spec. ok is false for plain line
// numbers and for anything that does not carry columns on both ends.
func ParseColumnRange(lineSpec string) (ColumnRange, bool) {
	start, end, found := strings.Cut(lineSpec, "-")
	if !found {
		return ColumnRange{}, false
	}

	sl, sc, ok := parseLineColumn(start)
	if !ok {
		return ColumnRange{}, false
	}

	el, ec, ok := parseLineColumn(end)
	if !ok {
		return ColumnRange{}, false
	}

	return ColumnRange{StartLine: sl, StartColumn: sc, EndLine: el, EndColumn: ec}, true
}

func parseLineColumn(s string) (int, int, bool) {
	l, c, found := strings.Cut(s, ".")
	if !found {
		return 0, 0, false
	}

	line, err := strconv.Atoi(l)
	if err != nil {
		return 0, 0, false
	}

	col, err := strconv.Atoi(c)
	if err != nil {
		return 0, 0, false
	}

	return line, col, true
}
