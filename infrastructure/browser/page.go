package browser

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"practice_automation/domain/entities"
	"practice_automation/domain/interfaces"

	"github.com/playwright-community/playwright-go"
)

type page struct {
	page playwright.Page
	// release closes the page's context
	release func() error

	mu      sync.Mutex
	pending *dialogSubscription
}

type dialogSubscription struct {
	handler func(interfaces.Dialog)
}

func newPage(pwPage playwright.Page, timeout time.Duration, release func() error) *page {
	p := &page{page: pwPage, release: release}
	pwPage.SetDefaultTimeout(float64(timeout.Milliseconds()))
	pwPage.OnDialog(p.dispatchDialog)
	return p
}

// dispatchDialog hands the dialog to the armed subscription, if any. With no
// subscription the dialog is dismissed, which is also the engine default.
func (p *page) dispatchDialog(d playwright.Dialog) {
	p.mu.Lock()
	sub := p.pending
	p.pending = nil
	p.mu.Unlock()

	if sub == nil {
		_ = d.Dismiss()
		return
	}
	sub.handler(&dialog{dialog: d})
}

// OnceDialog - arms a one-shot dialog handler
func (p *page) OnceDialog(handler func(interfaces.Dialog)) func() {
	sub := &dialogSubscription{handler: handler}

	p.mu.Lock()
	p.pending = sub
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.pending == sub {
			p.pending = nil
		}
	}
}

// Goto - navigates and waits for the load event
func (p *page) Goto(url string) error {
	_, err := p.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
	})
	if err != nil {
		if errors.Is(err, playwright.ErrTimeout) {
			return fmt.Errorf("goto %s: %w: %w", url, entities.ErrNavigationTimeout, err)
		}
		return fmt.Errorf("goto %s: %w", url, err)
	}
	return nil
}

func (p *page) URL() string {
	return p.page.URL()
}

func (p *page) Title() (string, error) {
	return p.page.Title()
}

func (p *page) Locate(q entities.Query) interfaces.Locator {
	var loc playwright.Locator
	switch q.Strategy {
	case entities.StrategyRole:
		opts := playwright.PageGetByRoleOptions{Exact: exact(q)}
		if q.Value != "" {
			opts.Name = q.Value
		}
		loc = p.page.GetByRole(playwright.AriaRole(q.Role), opts)
	case entities.StrategyLabel:
		loc = p.page.GetByLabel(q.Value, playwright.PageGetByLabelOptions{Exact: exact(q)})
	case entities.StrategyPlaceholder:
		loc = p.page.GetByPlaceholder(q.Value, playwright.PageGetByPlaceholderOptions{Exact: exact(q)})
	case entities.StrategyText:
		loc = p.page.GetByText(q.Value, playwright.PageGetByTextOptions{Exact: exact(q)})
	default:
		loc = p.page.Locator(q.Value)
	}
	return &locator{loc: loc, desc: q.String()}
}

func (p *page) Frame(selector string) interfaces.FrameLocator {
	return &frame{frame: p.page.FrameLocator(selector), desc: selector}
}

func (p *page) SetDefaultTimeout(timeout time.Duration) {
	p.page.SetDefaultTimeout(float64(timeout.Milliseconds()))
}

func (p *page) Pause(d time.Duration) {
	p.page.WaitForTimeout(float64(d.Milliseconds()))
}

func (p *page) Content() (string, error) {
	return p.page.Content()
}

// Screenshot - takes a full page screenshot into path
func (p *page) Screenshot(path string) error {
	_, err := p.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	return err
}

func (p *page) Close() error {
	if err := p.page.Close(); err != nil && !isClosedErr(err) {
		return err
	}
	if p.release == nil {
		return nil
	}
	release := p.release
	p.release = nil
	return release()
}

// exact - nil leaves the driver default of substring, case-insensitive matching
func exact(q entities.Query) *bool {
	if q.Exact {
		return playwright.Bool(true)
	}
	return nil
}

type dialog struct {
	dialog playwright.Dialog
}

func (d *dialog) Kind() entities.DialogKind {
	return entities.DialogKind(d.dialog.Type())
}

func (d *dialog) Message() string {
	return d.dialog.Message()
}

func (d *dialog) DefaultValue() string {
	return d.dialog.DefaultValue()
}

func (d *dialog) Accept(promptText string) error {
	if promptText == "" {
		return d.dialog.Accept()
	}
	return d.dialog.Accept(promptText)
}

func (d *dialog) Dismiss() error {
	return d.dialog.Dismiss()
}

var (
	_ interfaces.Browser = (*browserController)(nil)
	_ interfaces.Page    = (*page)(nil)
	_ interfaces.Dialog  = (*dialog)(nil)
)
