// Package table reads values out of a header row, body rows and a free-text
// label. Columns are found by header text and are positional: the index of
// a header is the index of its cell in every row.
package table

import (
	"fmt"
	"regexp"
	"strings"

	"practice_automation/domain/entities"
)

// NotFound is the column index of a header that does not exist
const NotFound = -1

var percentage = regexp.MustCompile(`\d+(?:\.\d+)?%`)

// ColumnIndex returns the position of the first header equal to name,
// ignoring case and surrounding space, or NotFound.
func ColumnIndex(headers []string, name string) int {
	name = strings.TrimSpace(name)
	for i, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return NotFound
}

// ExtractPercentage returns the first percentage in label, or label itself
// when it has none.
func ExtractPercentage(label string) string {
	if m := percentage.FindString(label); m != "" {
		return m
	}
	return label
}

// RowMatches reports whether row text contains match the way the driver's
// has-text filter does: case-insensitive, with runs of white space collapsed.
func RowMatches(row, match string) bool {
	return strings.Contains(strings.ToLower(normalize(row)), strings.ToLower(normalize(match)))
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Source is where an Extractor reads a table from
type Source interface {
	Headers() ([]string, error)

	// RowCells returns the cells of the first row containing match
	RowCells(match string) ([]string, error)

	// Rows returns the cells of every body row
	Rows() ([][]string, error)

	Label() (string, error)
}

// Extractor answers lookups against a Source
type Extractor struct {
	src Source
}

// NewExtractor returns an extractor over src
func NewExtractor(src Source) *Extractor {
	return &Extractor{src: src}
}

// ColumnIndexFor is ColumnIndex over the source headers, with an error
// instead of NotFound.
func (e *Extractor) ColumnIndexFor(name string) (int, error) {
	headers, err := e.src.Headers()
	if err != nil {
		return NotFound, fmt.Errorf("read headers: %w", err)
	}
	idx := ColumnIndex(headers, name)
	if idx == NotFound {
		return NotFound, fmt.Errorf("%w: %q not in %v", entities.ErrColumnNotFound, name, headers)
	}
	return idx, nil
}

// ValueForRow returns cell col of the first row containing match
func (e *Extractor) ValueForRow(match string, col int) (string, error) {
	if col < 0 {
		return "", fmt.Errorf("%w: index %d", entities.ErrColumnNotFound, col)
	}
	cells, err := e.src.RowCells(match)
	if err != nil {
		return "", err
	}
	if col >= len(cells) {
		return "", fmt.Errorf("%w: index %d, row %q has %d cells", entities.ErrColumnNotFound, col, match, len(cells))
	}
	return strings.TrimSpace(cells[col]), nil
}

// ValueFor returns the cell under header in the first row containing match
func (e *Extractor) ValueFor(match, header string) (string, error) {
	col, err := e.ColumnIndexFor(header)
	if err != nil {
		return "", err
	}
	return e.ValueForRow(match, col)
}

// LabelPercentage returns the percentage quoted in the label
func (e *Extractor) LabelPercentage() (string, error) {
	label, err := e.src.Label()
	if err != nil {
		return "", fmt.Errorf("read label: %w", err)
	}
	return ExtractPercentage(strings.TrimSpace(label)), nil
}

// Rows returns every body row
func (e *Extractor) Rows() ([][]string, error) {
	return e.src.Rows()
}

// Crosscheck compares the table cell under header for match with the
// percentage quoted in the label.
func (e *Extractor) Crosscheck(match, header string) (cell, label string, err error) {
	if cell, err = e.ValueFor(match, header); err != nil {
		return "", "", err
	}
	if label, err = e.LabelPercentage(); err != nil {
		return "", "", err
	}
	return cell, label, nil
}

// FindRow returns the first of rows whose joined cells contain match
func FindRow(rows [][]string, match string) ([]string, error) {
	for _, cells := range rows {
		if RowMatches(strings.Join(cells, " "), match) {
			return cells, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", entities.ErrRowNotFound, match)
}
