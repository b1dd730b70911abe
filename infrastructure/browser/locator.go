package browser

import (
	"errors"
	"fmt"
	"time"

	"practice_automation/domain/entities"
	"practice_automation/domain/interfaces"

	"github.com/playwright-community/playwright-go"
)

type locator struct {
	loc  playwright.Locator
	desc string
}

func (l *locator) Describe() string {
	return l.desc
}

func (l *locator) child(loc playwright.Locator, desc string) *locator {
	return &locator{loc: loc, desc: l.desc + " >> " + desc}
}

func (l *locator) Locate(q entities.Query) interfaces.Locator {
	var loc playwright.Locator
	switch q.Strategy {
	case entities.StrategyRole:
		opts := playwright.LocatorGetByRoleOptions{Exact: exact(q)}
		if q.Value != "" {
			opts.Name = q.Value
		}
		loc = l.loc.GetByRole(playwright.AriaRole(q.Role), opts)
	case entities.StrategyLabel:
		loc = l.loc.GetByLabel(q.Value, playwright.LocatorGetByLabelOptions{Exact: exact(q)})
	case entities.StrategyPlaceholder:
		loc = l.loc.GetByPlaceholder(q.Value, playwright.LocatorGetByPlaceholderOptions{Exact: exact(q)})
	case entities.StrategyText:
		loc = l.loc.GetByText(q.Value, playwright.LocatorGetByTextOptions{Exact: exact(q)})
	default:
		loc = l.loc.Locator(q.Value)
	}
	return l.child(loc, q.String())
}

func (l *locator) Frame(selector string) interfaces.FrameLocator {
	return &frame{frame: l.loc.FrameLocator(selector), desc: l.desc + " >> " + selector}
}

func (l *locator) Click() error {
	return l.wrap("click", l.loc.Click())
}

func (l *locator) Fill(value string) error {
	return l.wrap("fill", l.loc.Fill(value))
}

func (l *locator) InnerText() (string, error) {
	text, err := l.loc.InnerText()
	return text, l.wrap("read inner text of", err)
}

func (l *locator) TextContent() (string, error) {
	text, err := l.loc.TextContent()
	return text, l.wrap("read text content of", err)
}

func (l *locator) IsVisible() (bool, error) {
	visible, err := l.loc.IsVisible()
	return visible, l.wrap("check visibility of", err)
}

func (l *locator) WaitFor(state interfaces.WaitState, timeout time.Duration) error {
	return l.wrap("wait for", l.loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   waitState(state),
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	}))
}

func (l *locator) Count() (int, error) {
	return l.loc.Count()
}

func (l *locator) AllInnerTexts() ([]string, error) {
	texts, err := l.loc.AllInnerTexts()
	return texts, l.wrap("read all inner texts of", err)
}

func (l *locator) Filter(hasText string) interfaces.Locator {
	return l.child(l.loc.Filter(playwright.LocatorFilterOptions{HasText: hasText}), fmt.Sprintf("has-text=%q", hasText))
}

func (l *locator) Nth(i int) interfaces.Locator {
	return l.child(l.loc.Nth(i), fmt.Sprintf("nth=%d", i))
}

func (l *locator) First() interfaces.Locator {
	return l.child(l.loc.First(), "nth=0")
}

// wrap - adds the selector to driver errors; a timeout with nothing matching
// is reported as ErrElementNotFound
func (l *locator) wrap(action string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, playwright.ErrTimeout) {
		if n, countErr := l.loc.Count(); countErr == nil && n == 0 {
			return fmt.Errorf("%s %s: %w: %w", action, l.desc, entities.ErrElementNotFound, err)
		}
	}
	return fmt.Errorf("%s %s: %w", action, l.desc, err)
}

func waitState(state interfaces.WaitState) *playwright.WaitForSelectorState {
	switch state {
	case interfaces.StateAttached:
		return playwright.WaitForSelectorStateAttached
	case interfaces.StateDetached:
		return playwright.WaitForSelectorStateDetached
	case interfaces.StateHidden:
		return playwright.WaitForSelectorStateHidden
	default:
		return playwright.WaitForSelectorStateVisible
	}
}

type frame struct {
	frame playwright.FrameLocator
	desc  string
}

func (f *frame) Describe() string {
	return f.desc
}

func (f *frame) Locate(q entities.Query) interfaces.Locator {
	var loc playwright.Locator
	switch q.Strategy {
	case entities.StrategyRole:
		opts := playwright.FrameLocatorGetByRoleOptions{Exact: exact(q)}
		if q.Value != "" {
			opts.Name = q.Value
		}
		loc = f.frame.GetByRole(playwright.AriaRole(q.Role), opts)
	case entities.StrategyLabel:
		loc = f.frame.GetByLabel(q.Value, playwright.FrameLocatorGetByLabelOptions{Exact: exact(q)})
	case entities.StrategyPlaceholder:
		loc = f.frame.GetByPlaceholder(q.Value, playwright.FrameLocatorGetByPlaceholderOptions{Exact: exact(q)})
	case entities.StrategyText:
		loc = f.frame.GetByText(q.Value, playwright.FrameLocatorGetByTextOptions{Exact: exact(q)})
	default:
		loc = f.frame.Locator(q.Value)
	}
	return &locator{loc: loc, desc: f.desc + " >> " + q.String()}
}

func (f *frame) Frame(selector string) interfaces.FrameLocator {
	return &frame{frame: f.frame.FrameLocator(selector), desc: f.desc + " >> " + selector}
}
