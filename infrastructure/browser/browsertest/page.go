package browsertest

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"strings"
	"sync"
	"time"

	"practice_automation/domain/entities"
	"practice_automation/domain/interfaces"
)

// ErrTimeout stands in for the driver's timeout error
var ErrTimeout = errors.New("browsertest: timeout")

// Page is an in-memory interfaces.Page
type Page struct {
	Root *Node

	CurrentURL string
	TitleText  string
	HTML       string

	// GotoErr is returned by every Goto when set
	GotoErr error
	// OnGoto runs after the URL changed, to swap in the document for url
	OnGoto func(p *Page, url string)

	mu          sync.Mutex
	actions     []entities.Action
	dialogs     []*Dialog
	pending     *subscription
	paused      time.Duration
	timeout     time.Duration
	screenshots []string
	closed      bool
	cookies     map[string]string
	onClose     func(cookies map[string]string)
}

type subscription struct {
	handler func(interfaces.Dialog)
}

// NewPage returns an empty page
func NewPage() *Page {
	return &Page{Root: NewNode("")}
}

func (p *Page) record(a entities.Action) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.actions = append(p.actions, a)
}

// Actions returns the interactions performed so far
func (p *Page) Actions() []entities.Action {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]entities.Action(nil), p.actions...)
}

// Dialogs returns every dialog raised so far
func (p *Page) Dialogs() []*Dialog {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*Dialog(nil), p.dialogs...)
}

// Paused returns the total time spent in Pause
func (p *Page) Paused() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// Timeout returns the default timeout last set
func (p *Page) Timeout() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.timeout
}

// Screenshots returns the paths written by Screenshot
func (p *Page) Screenshots() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.screenshots...)
}

// Closed reports whether Close was called
func (p *Page) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// RaiseDialog delivers a dialog to the armed handler. Without one it is
// dismissed, as the engine does.
func (p *Page) RaiseDialog(kind entities.DialogKind, message, defaultValue string) *Dialog {
	d := &Dialog{kind: kind, message: message, defaultValue: defaultValue}

	p.mu.Lock()
	p.dialogs = append(p.dialogs, d)
	sub := p.pending
	p.pending = nil
	p.mu.Unlock()

	p.record(entities.Action{Type: entities.ActionDialog, Target: string(kind), Value: message})
	if sub == nil {
		_ = d.Dismiss()
		return d
	}
	sub.handler(d)
	return d
}

func (p *Page) OnceDialog(handler func(interfaces.Dialog)) func() {
	sub := &subscription{handler: handler}
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

// Armed reports whether a dialog handler is waiting
func (p *Page) Armed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending != nil
}

func (p *Page) Goto(url string) error {
	p.record(entities.Action{Type: entities.ActionNavigate, Target: url})
	if p.GotoErr != nil {
		return fmt.Errorf("goto %s: %w", url, p.GotoErr)
	}
	p.CurrentURL = url
	if p.OnGoto != nil {
		p.OnGoto(p, url)
	}
	return nil
}

func (p *Page) URL() string {
	return p.CurrentURL
}

func (p *Page) Title() (string, error) {
	return p.TitleText, nil
}

func (p *Page) Locate(q entities.Query) interfaces.Locator {
	key := q.String()
	return &locator{
		page: p,
		desc: key,
		resolve: func() []*Node {
			return p.Root.Children[key]
		},
	}
}

func (p *Page) Frame(selector string) interfaces.FrameLocator {
	return &frame{
		page: p,
		desc: selector,
		resolve: func() *Node {
			return p.Root.Frames[selector]
		},
	}
}

func (p *Page) SetDefaultTimeout(timeout time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.timeout = timeout
}

func (p *Page) Pause(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paused += d
}

func (p *Page) Content() (string, error) {
	return p.HTML, nil
}

// Screenshot writes a placeholder file so callers can check it exists
func (p *Page) Screenshot(path string) error {
	if err := os.WriteFile(path, []byte("png"), 0644); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.screenshots = append(p.screenshots, path)
	return nil
}

func (p *Page) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	release := p.onClose
	cookies := maps.Clone(p.cookies)
	p.mu.Unlock()

	if release != nil {
		release(cookies)
	}
	return nil
}

// SetCookie stores a cookie for the page's context
func (p *Page) SetCookie(name, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cookies == nil {
		p.cookies = make(map[string]string)
	}
	p.cookies[name] = value
}

// Cookie returns the named cookie, if set
func (p *Page) Cookie(name string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.cookies[name]
	return v, ok
}

// Dialog is a fake native dialog that remembers how it was resolved
type Dialog struct {
	kind         entities.DialogKind
	message      string
	defaultValue string

	mu       sync.Mutex
	resolved int
	accepted bool
	response string
}

func (d *Dialog) Kind() entities.DialogKind { return d.kind }
func (d *Dialog) Message() string           { return d.message }
func (d *Dialog) DefaultValue() string      { return d.defaultValue }

func (d *Dialog) Accept(promptText string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.resolved > 0 {
		d.resolved++
		return errors.New("dialog already handled")
	}
	d.resolved++
	d.accepted = true
	d.response = promptText
	return nil
}

func (d *Dialog) Dismiss() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.resolved > 0 {
		d.resolved++
		return errors.New("dialog already handled")
	}
	d.resolved++
	return nil
}

// Resolutions returns how many times accept or dismiss was called
func (d *Dialog) Resolutions() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.resolved
}

// Accepted reports whether the dialog was accepted, and with what text
func (d *Dialog) Accepted() (bool, string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.accepted, d.response
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(normalizeSpace(s)), strings.ToLower(normalizeSpace(sub)))
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
