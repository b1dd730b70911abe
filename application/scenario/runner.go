package scenario

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"practice_automation/domain/entities"
	"practice_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// RunnerConfig wires a Runner
type RunnerConfig struct {
	Browser  interfaces.Browser
	Store    interfaces.ArtifactStore
	Settings entities.Settings
	Data     entities.TestData
	Logger   logrus.FieldLogger
	// Redactor masks sensitive result details before they are kept
	Redactor interfaces.Redactor
	// SaveState dumps the browser storage state after each run
	SaveState bool
}

// Runner executes scenarios one after another, each on its own page
type Runner struct {
	browser   interfaces.Browser
	store     interfaces.ArtifactStore
	settings  entities.Settings
	data      entities.TestData
	logger    logrus.FieldLogger
	redactor  interfaces.Redactor
	saveState bool
}

// NewRunner - creates new scenario runner
func NewRunner(cfg RunnerConfig) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Runner{
		browser:   cfg.Browser,
		store:     cfg.Store,
		settings:  cfg.Settings.WithDefaults(),
		data:      cfg.Data,
		logger:    logger,
		redactor:  cfg.Redactor,
		saveState: cfg.SaveState,
	}
}

// Run executes scenarios in order. Once ctx is done the remaining ones are
// reported as skipped and ctx's error is returned with the results.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) ([]entities.Result, error) {
	results := make([]entities.Result, 0, len(scenarios))

	var runErr error
	for _, s := range scenarios {
		if runErr == nil {
			select {
			case <-ctx.Done():
				runErr = fmt.Errorf("run canceled: %w", ctx.Err())
			default:
			}
		}
		if runErr != nil {
			results = append(results, entities.Result{Name: s.Name, Status: entities.RunStatusSkipped})
			continue
		}
		results = append(results, r.RunOne(ctx, s))
	}

	r.persist(results)
	return results, runErr
}

// RunOne executes a single scenario on a fresh page
func (r *Runner) RunOne(ctx context.Context, s Scenario) entities.Result {
	log := r.logger.WithField("scenario", s.Name)
	log.Info("Starting scenario")

	start := time.Now()
	result := entities.Result{Name: s.Name, Status: entities.RunStatusRunning}

	page, err := r.browser.NewPage()
	if err != nil {
		result.Status = entities.RunStatusFailed
		result.Error = fmt.Sprintf("failed to open page: %v", err)
		result.Duration = time.Since(start)
		log.WithError(err).Error("Scenario failed")
		return result
	}
	defer func() {
		if err := page.Close(); err != nil {
			log.WithError(err).Warn("Failed to close page")
		}
	}()
	page.SetDefaultTimeout(r.settings.DefaultTimeout)

	env := &Env{
		Page:     page,
		Settings: r.settings,
		Data:     r.data,
		Logger:   log,
	}
	err = s.Run(ctx, env)

	result.Details = r.redact(env.details)
	result.Duration = time.Since(start)
	if err == nil {
		result.Status = entities.RunStatusPassed
		log.WithField("duration", result.Duration).Info("Scenario passed")
		return result
	}

	result.Status = entities.RunStatusFailed
	result.Error = err.Error()
	result.Screenshot = r.screenshot(page, s.Name, log)

	info := pageInfo(page)
	if result.Details == nil {
		result.Details = make(map[string]string)
	}
	result.Details["failed_at_url"] = info.URL
	result.Details["failed_at_title"] = info.Title
	log.WithField("preview", info.Preview).Debug("Page at failure")

	log.WithError(err).WithField("duration", result.Duration).Error("Scenario failed")
	return result
}

func (r *Runner) redact(details map[string]string) map[string]string {
	if r.redactor == nil {
		return details
	}
	return r.redactor.RedactMap(details)
}

const previewLength = 500

// pageInfo - best effort snapshot of where the page was
func pageInfo(page interfaces.Page) entities.PageInfo {
	info := entities.PageInfo{URL: page.URL()}
	if title, err := page.Title(); err == nil {
		info.Title = title
	}
	if html, err := page.Content(); err == nil {
		info.Preview = truncate(html, previewLength)
	}
	return info
}

// truncate cuts s to at most n bytes without splitting a rune
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func (r *Runner) screenshot(page interfaces.Page, name string, log logrus.FieldLogger) string {
	if r.store == nil {
		return ""
	}
	path, err := r.store.ScreenshotPath(name)
	if err != nil {
		log.WithError(err).Warn("No screenshot path")
		return ""
	}
	if err := page.Screenshot(path); err != nil {
		log.WithError(err).Warn("Failed to take screenshot")
		return ""
	}
	return path
}

func (r *Runner) persist(results []entities.Result) {
	if r.store == nil {
		return
	}
	if err := r.store.SaveResults(results); err != nil {
		r.logger.WithError(err).Warn("Failed to save results")
	}
	if !r.saveState {
		return
	}
	path, err := r.store.StatePath()
	if err == nil {
		err = r.browser.SaveState(path)
	}
	if err != nil {
		r.logger.WithError(err).Warn("Failed to save browser state")
	}
}

// Summarize counts results by outcome
func Summarize(results []entities.Result) (passed, failed, skipped int) {
	for _, res := range results {
		switch res.Status {
		case entities.RunStatusPassed:
			passed++
		case entities.RunStatusSkipped:
			skipped++
		default:
			failed++
		}
	}
	return passed, failed, skipped
}
