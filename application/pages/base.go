// Package pages holds one page object per page of the practice sites.
//
// Mutators return the page object so calls can be chained. The first
// failure in a chain is kept and every later mutator does nothing; Err
// reports it and accessors return it.
package pages

import (
	"fmt"
	"io"
	"strings"

	"practice_automation/application/locator"
	"practice_automation/domain/entities"
	"practice_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

type basePage struct {
	page     interfaces.Page
	find     locator.Resolver
	log      logrus.FieldLogger
	settings entities.Settings
	err      error
}

func newBasePage(page interfaces.Page, settings entities.Settings, log logrus.FieldLogger, name string) basePage {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return basePage{
		page:     page,
		find:     locator.New(page),
		log:      log.WithField("page", name),
		settings: settings.WithDefaults(),
	}
}

// Err returns the first failure of the chain, if any
func (b *basePage) Err() error {
	return b.err
}

// URL returns the current page URL
func (b *basePage) URL() string {
	return b.page.URL()
}

func (b *basePage) fail(op string, err error) {
	if b.err != nil {
		return
	}
	b.err = fmt.Errorf("%s: %w", op, err)
	b.log.WithError(err).WithField("op", op).Error("page action failed")
}

func (b *basePage) open(url, ready string) {
	if b.err != nil {
		return
	}
	b.log.WithField("url", url).Info("opening page")
	if err := b.page.Goto(url); err != nil {
		b.fail("open "+url, err)
		return
	}
	if ready == "" {
		return
	}
	if err := b.find.ByCSS(ready).WaitFor(interfaces.StateVisible, b.settings.DefaultTimeout); err != nil {
		b.fail("open "+url, fmt.Errorf("%w: %s never became visible: %w", entities.ErrNavigationTimeout, ready, err))
	}
}

// fill logs value under field, so the log hook can mask secrets by name
func (b *basePage) fill(field string, l interfaces.Locator, value string) {
	if b.err != nil {
		return
	}
	b.log.WithField(field, value).Debug("fill")
	if err := l.Fill(value); err != nil {
		b.fail("fill "+field, err)
	}
}

func (b *basePage) click(name string, l interfaces.Locator) {
	if b.err != nil {
		return
	}
	b.log.WithField("target", name).Debug("click")
	if err := l.Click(); err != nil {
		b.fail("click "+name, err)
	}
}

// visibleWithin waits up to the visibility timeout. A timeout is a plain false.
func (b *basePage) visibleWithin(l interfaces.Locator) bool {
	if err := l.WaitFor(interfaces.StateVisible, b.settings.VisibilityTimeout); err != nil {
		b.log.WithField("target", l.Describe()).Debug("not visible in time")
		return false
	}
	visible, err := l.IsVisible()
	return err == nil && visible
}

// textWithin reads the text content once l is visible, or "" on timeout
func (b *basePage) textWithin(l interfaces.Locator) string {
	if !b.visibleWithin(l) {
		return ""
	}
	text, err := l.TextContent()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
