package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selectors locate the parts of a table in a document
type Selectors struct {
	Headers string
	Rows    string
	Cells   string
	Label   string
}

// DefaultSelectors match a plain thead/tbody table with a highlighted label
var DefaultSelectors = Selectors{
	Headers: "table thead th",
	Rows:    "table tbody tr",
	Cells:   "td",
	Label:   ".bg-warning",
}

// Snapshot is one table and its label parsed from a captured document, so
// values compared with each other come from the same moment in time.
type Snapshot struct {
	headers []string
	rows    [][]string
	label   string
	hasLbl  bool
}

// ParseSnapshot parses html and extracts the table described by sel
func ParseSnapshot(html string, sel Selectors) (*Snapshot, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}

	t := &Snapshot{}
	doc.Find(sel.Headers).Each(func(_ int, s *goquery.Selection) {
		t.headers = append(t.headers, cleanText(s))
	})
	doc.Find(sel.Rows).Each(func(_ int, row *goquery.Selection) {
		var cells []string
		row.Find(sel.Cells).Each(func(_ int, c *goquery.Selection) {
			cells = append(cells, cleanText(c))
		})
		t.rows = append(t.rows, cells)
	})
	if label := doc.Find(sel.Label).First(); label.Length() > 0 {
		t.label = cleanText(label)
		t.hasLbl = true
	}
	return t, nil
}

func cleanText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

func (t *Snapshot) Headers() ([]string, error) {
	return t.headers, nil
}

func (t *Snapshot) Rows() ([][]string, error) {
	return t.rows, nil
}

func (t *Snapshot) RowCells(match string) ([]string, error) {
	return FindRow(t.rows, match)
}

func (t *Snapshot) Label() (string, error) {
	if !t.hasLbl {
		return "", errors.New("snapshot has no label")
	}
	return t.label, nil
}

var _ Source = (*Snapshot)(nil)
