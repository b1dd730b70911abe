package browser

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"practice_automation/domain/interfaces"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

// Options controls how the browser is launched
type Options struct {
	Browser        string // chromium, firefox or webkit
	Headless       bool
	SlowMo         time.Duration
	DefaultTimeout time.Duration
	// Install downloads the driver and browser before launching
	Install bool
	// StatePath is a storage state file to seed the context with, if it exists
	StatePath string
}

type browserController struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	opts    Options
	logger  *logrus.Logger

	mu sync.Mutex
	// last is the storage state of the most recently closed context
	last *playwright.StorageState
}

// NewBrowserController - starts playwright and launches the configured browser
func NewBrowserController(opts Options, logger *logrus.Logger) (interfaces.Browser, error) {
	if opts.Install {
		if err := playwright.Install(&playwright.RunOptions{
			Browsers: []string{opts.Browser},
			Verbose:  false,
		}); err != nil {
			return nil, fmt.Errorf("failed to install playwright: %w", err)
		}
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browserType, err := pickBrowserType(pw, opts.Browser)
	if err != nil {
		_ = pw.Stop()
		return nil, err
	}

	browser, err := browserType.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		SlowMo:   playwright.Float(float64(opts.SlowMo.Milliseconds())),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to launch %s: %w", opts.Browser, err)
	}

	logger.WithFields(logrus.Fields{
		"browser":  opts.Browser,
		"headless": opts.Headless,
		"timeout":  opts.DefaultTimeout,
	}).Info("Browser launched")

	return &browserController{
		pw:      pw,
		browser: browser,
		opts:    opts,
		logger:  logger,
	}, nil
}

// contextOptions - every context starts from the seed state file, if there is one
func (b *browserController) contextOptions() playwright.BrowserNewContextOptions {
	contextOptions := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  1280,
			Height: 720,
		},

		JavaScriptEnabled: playwright.Bool(true),

		IgnoreHttpsErrors: playwright.Bool(true),
	}

	if b.opts.StatePath != "" {
		if _, err := os.Stat(b.opts.StatePath); err == nil {
			contextOptions.StorageStatePath = playwright.String(b.opts.StatePath)
		}
	}
	return contextOptions
}

func pickBrowserType(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch strings.ToLower(name) {
	case "", "chromium", "chrome":
		return pw.Chromium, nil
	case "firefox":
		return pw.Firefox, nil
	case "webkit", "safari":
		return pw.WebKit, nil
	default:
		return nil, fmt.Errorf("unsupported browser type: %s", name)
	}
}

// NewPage - opens a tab in its own context, so no cookies or storage carry
// over from earlier pages. Closing the page closes the context.
func (b *browserController) NewPage() (interfaces.Page, error) {
	if b.browser == nil {
		return nil, errors.New("browser is closed")
	}

	context, err := b.browser.NewContext(b.contextOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to create context: %w", err)
	}
	context.SetDefaultTimeout(float64(b.opts.DefaultTimeout.Milliseconds()))

	page, err := context.NewPage()
	if err != nil {
		_ = context.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	return newPage(page, b.opts.DefaultTimeout, func() error {
		return b.release(context)
	}), nil
}

// release - keeps the context's storage state for SaveState, then closes it
func (b *browserController) release(context playwright.BrowserContext) error {
	state, err := context.StorageState()
	if err != nil {
		b.logger.WithError(err).Debug("Could not read storage state")
	} else {
		b.mu.Lock()
		b.last = state
		b.mu.Unlock()
	}

	if err := context.Close(); err != nil && !isClosedErr(err) {
		return fmt.Errorf("failed to close context: %w", err)
	}
	return nil
}

// SaveState - saves cookies and local storage of the last closed page to path
func (b *browserController) SaveState(path string) error {
	b.mu.Lock()
	state := b.last
	b.mu.Unlock()

	if state == nil || path == "" {
		return nil
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode browser state: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to save browser state: %w", err)
	}

	return nil
}

// Close - closes the browser, with any context still open, and the playwright driver
func (b *browserController) Close() error {
	var closeErr error

	if b.browser != nil {
		if err := b.browser.Close(); err != nil && !isClosedErr(err) {
			closeErr = fmt.Errorf("failed to close browser: %w", err)
		}
		b.browser = nil
	}

	if b.pw != nil {
		if err := b.pw.Stop(); err != nil {
			closeErr = errors.Join(closeErr, fmt.Errorf("failed to stop playwright: %w", err))
		}
		b.pw = nil
	}

	return closeErr
}

// isClosedErr - the target already went away, nothing left to clean up
func isClosedErr(err error) bool {
	errStr := err.Error()
	return strings.Contains(errStr, "closed") || strings.Contains(errStr, "target closed")
}
