package pages

import (
	"fmt"

	"practice_automation/application/locator"
	"practice_automation/application/table"
	"practice_automation/domain/entities"
	"practice_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// DynamicTablePage is the task manager table whose rows shuffle on every load
type DynamicTablePage struct {
	basePage
	sel table.Selectors
}

func NewDynamicTablePage(page interfaces.Page, settings entities.Settings, log logrus.FieldLogger) *DynamicTablePage {
	return &DynamicTablePage{
		basePage: newBasePage(page, settings, log, "dynamic_table"),
		sel:      table.DefaultSelectors,
	}
}

// Open loads the page and waits for the table
func (p *DynamicTablePage) Open() *DynamicTablePage {
	p.open(joinURL(p.settings.BaseURL, "/dynamic-table"), "table")
	return p
}

func (p *DynamicTablePage) live() *table.Extractor {
	return table.NewExtractor(liveTable{find: p.find, sel: p.sel})
}

// ColumnIndex returns the position of header name, or table.NotFound
func (p *DynamicTablePage) ColumnIndex(name string) int {
	if p.err != nil {
		return table.NotFound
	}
	headers, err := p.find.All(p.sel.Headers).AllInnerTexts()
	if err != nil {
		p.fail("read headers", err)
		return table.NotFound
	}
	return table.ColumnIndex(headers, name)
}

// CPUForProcess returns the CPU cell of the first row mentioning process
func (p *DynamicTablePage) CPUForProcess(process string) (string, error) {
	return p.ValueFor(process, "CPU")
}

// ValueFor returns the cell under header in the first row mentioning process
func (p *DynamicTablePage) ValueFor(process, header string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	v, err := p.live().ValueFor(process, header)
	if err != nil {
		return "", fmt.Errorf("%s of %s: %w", header, process, err)
	}
	return v, nil
}

// LabelText returns the highlighted summary label
func (p *DynamicTablePage) LabelText() (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.find.ByCSS(p.sel.Label).InnerText()
}

// CPUFromLabel returns the percentage quoted in the summary label
func (p *DynamicTablePage) CPUFromLabel() (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.live().LabelPercentage()
}

// RowTexts returns the text of every body row
func (p *DynamicTablePage) RowTexts() ([]string, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.find.All(p.sel.Rows).AllInnerTexts()
}

// TableData returns the cells of every body row
func (p *DynamicTablePage) TableData() ([][]string, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.live().Rows()
}

func (p *DynamicTablePage) RowCount() (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	return p.find.All(p.sel.Rows).Count()
}

// Snapshot captures the document once and returns an extractor over it.
// Values read from the snapshot are consistent with each other even though
// the live table re-renders.
func (p *DynamicTablePage) Snapshot() (*table.Extractor, error) {
	if p.err != nil {
		return nil, p.err
	}
	html, err := p.page.Content()
	if err != nil {
		return nil, fmt.Errorf("capture content: %w", err)
	}
	snap, err := table.ParseSnapshot(html, p.sel)
	if err != nil {
		return nil, err
	}
	return table.NewExtractor(snap), nil
}

// liveTable reads the table through locators, one query per call
type liveTable struct {
	find locator.Resolver
	sel  table.Selectors
}

func (t liveTable) Headers() ([]string, error) {
	return t.find.All(t.sel.Headers).AllInnerTexts()
}

func (t liveTable) RowCells(match string) ([]string, error) {
	rows := t.find.All(t.sel.Rows).Filter(match)
	n, err := rows.Count()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %q", entities.ErrRowNotFound, match)
	}
	return locator.Within(rows.First()).All(t.sel.Cells).AllInnerTexts()
}

func (t liveTable) Rows() ([][]string, error) {
	rows := t.find.All(t.sel.Rows)
	n, err := rows.Count()
	if err != nil {
		return nil, err
	}
	data := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		cells, err := locator.Within(rows.Nth(i)).All(t.sel.Cells).AllInnerTexts()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		data = append(data, cells)
	}
	return data, nil
}

func (t liveTable) Label() (string, error) {
	return t.find.ByCSS(t.sel.Label).InnerText()
}

var _ table.Source = liveTable{}
