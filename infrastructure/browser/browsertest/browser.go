package browsertest

import (
	"encoding/json"
	"os"
	"sync"

	"practice_automation/domain/interfaces"
)

// Browser hands out fake pages built by NewPageFunc. Every page gets its own
// cookie jar, like a page in a fresh browser context.
type Browser struct {
	// NewPageFunc builds each page; NewPage is used when nil
	NewPageFunc func() *Page

	mu     sync.Mutex
	pages  []*Page
	last   map[string]string
	states []string
	closed bool
}

func (b *Browser) NewPage() (interfaces.Page, error) {
	build := b.NewPageFunc
	if build == nil {
		build = NewPage
	}
	p := build()

	p.mu.Lock()
	p.cookies = make(map[string]string)
	p.onClose = b.release
	p.mu.Unlock()

	b.mu.Lock()
	defer b.mu.Unlock()
	b.pages = append(b.pages, p)
	return p, nil
}

func (b *Browser) release(cookies map[string]string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.last = cookies
}

// Pages returns every page handed out
func (b *Browser) Pages() []*Page {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*Page(nil), b.pages...)
}

// SaveState writes the cookies of the last closed page
func (b *Browser) SaveState(path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	cookies := make([]fakeCookie, 0, len(b.last))
	for name, value := range b.last {
		cookies = append(cookies, fakeCookie{Name: name, Value: value})
	}
	raw, err := json.Marshal(fakeState{Cookies: cookies, Origins: []any{}})
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return err
	}
	b.states = append(b.states, path)
	return nil
}

type fakeCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type fakeState struct {
	Cookies []fakeCookie `json:"cookies"`
	Origins []any        `json:"origins"`
}

// States returns the paths SaveState wrote
func (b *Browser) States() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.states...)
}

func (b *Browser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

// Closed reports whether Close was called
func (b *Browser) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

var (
	_ interfaces.Browser = (*Browser)(nil)
	_ interfaces.Page    = (*Page)(nil)
)
