package scenario

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"practice_automation/domain/entities"
	"practice_automation/infrastructure/browser/browsertest"
	"practice_automation/infrastructure/fixtures"
	"practice_automation/infrastructure/security"
	"practice_automation/infrastructure/storage"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunner(t *testing.T, dialogs bool) (*Runner, *browsertest.Browser, *test.Hook) {
	t.Helper()
	return newRunnerWith(t, siteOptions{Dialogs: dialogs})
}

func newRunnerWith(t *testing.T, opts siteOptions) (*Runner, *browsertest.Browser, *test.Hook) {
	t.Helper()
	data, err := fixtures.Default()
	require.NoError(t, err)
	store, err := storage.NewRunStore(t.TempDir())
	require.NoError(t, err)

	logger, hook := test.NewNullLogger()
	browser := &browsertest.Browser{NewPageFunc: func() *browsertest.Page { return practiceSiteWith(opts) }}

	r := NewRunner(RunnerConfig{
		Browser:   browser,
		Store:     store,
		Settings:  entities.Settings{DialogTimeout: 50 * time.Millisecond},
		Data:      data,
		Logger:    logger,
		Redactor:  security.NewSecurityLayer(),
		SaveState: true,
	})
	return r, browser, hook
}

func TestLookup(t *testing.T) {
	all, err := Lookup("all")
	require.NoError(t, err)
	assert.Len(t, all, len(Names()))
	assert.Equal(t, "launch_url", all[0].Name)

	some, err := Lookup("login", " iframe_docs ")
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "iframe_docs", some[1].Name)

	_, err = Lookup("login", "checkout")
	assert.ErrorIs(t, err, ErrUnknownScenario)
}

func TestRunAllAgainstFakeSite(t *testing.T) {
	r, browser, _ := newRunner(t, true)

	results, err := r.Run(context.Background(), All())
	require.NoError(t, err)
	require.Len(t, results, len(All()))

	for _, res := range results {
		assert.True(t, res.Passed(), "%s: %s", res.Name, res.Error)
		assert.Empty(t, res.Screenshot, res.Name)
	}

	passed, failed, skipped := Summarize(results)
	assert.Equal(t, len(results), passed)
	assert.Zero(t, failed)
	assert.Zero(t, skipped)

	pages := browser.Pages()
	require.Len(t, pages, len(results))
	for _, p := range pages {
		assert.True(t, p.Closed())
		assert.Equal(t, 30*time.Second, p.Timeout())
	}
	assert.Len(t, browser.States(), 1)

	saved, err := r.store.LoadResults()
	require.NoError(t, err)
	assert.Equal(t, len(results), len(saved))
}

func TestScenarioDetails(t *testing.T) {
	r, _, _ := newRunner(t, true)

	scenarios, err := Lookup("register", "alert_prompt", "dynamic_table_cpu", "login_invalid")
	require.NoError(t, err)
	results, err := r.Run(context.Background(), scenarios)
	require.NoError(t, err)

	reg := results[0]
	assert.Regexp(t, `^user_[a-z0-9]{8}$`, reg.Details["username"])
	assert.Equal(t, security.Redacted, reg.Details["password"])
	assert.Contains(t, reg.Details["url"], "login")

	prompt := results[1]
	assert.Equal(t, "Test User", prompt.Details["response"])
	assert.Equal(t, "true", prompt.Details["echoed"])
	assert.Equal(t, "prompt", prompt.Details["kind"])

	cpu := results[2]
	assert.Equal(t, "6.8%", cpu.Details["table"])
	assert.Equal(t, "6.8%", cpu.Details["label"])

	invalid := results[3]
	assert.True(t, containsAll(invalid.Details["flash"], "username", "invalid"))
}

func TestFailureTakesScreenshot(t *testing.T) {
	r, _, hook := newRunner(t, false)

	scenarios, err := Lookup("alert_simple", "iframe_docs")
	require.NoError(t, err)
	results, err := r.Run(context.Background(), scenarios)
	require.NoError(t, err)

	failedRes := results[0]
	assert.Equal(t, entities.RunStatusFailed, failedRes.Status)
	assert.Contains(t, failedRes.Error, entities.ErrNoDialog.Error())
	require.NotEmpty(t, failedRes.Screenshot)
	assert.FileExists(t, failedRes.Screenshot)

	assert.Equal(t, entities.DefaultAlertURL, failedRes.Details["failed_at_url"])
	assert.True(t, results[1].Passed(), "a failure must not stop the run")

	var sawFailure bool
	for _, e := range hook.AllEntries() {
		if e.Data["scenario"] == "alert_simple" && e.Message == "Scenario failed" {
			sawFailure = true
		}
	}
	assert.True(t, sawFailure)
}

func TestAssertionFailure(t *testing.T) {
	r, _, _ := newRunner(t, true)
	r.data.Process = "Opera"

	scenarios, err := Lookup("dynamic_table_cpu")
	require.NoError(t, err)
	results, _ := r.Run(context.Background(), scenarios)
	assert.Equal(t, entities.RunStatusFailed, results[0].Status)
	assert.Contains(t, results[0].Error, entities.ErrRowNotFound.Error())

	r.data.InvalidUser.ExpectedError = "Your password is invalid!"
	scenarios, err = Lookup("login_invalid")
	require.NoError(t, err)
	results, _ = r.Run(context.Background(), scenarios)
	assert.Contains(t, results[0].Error, entities.ErrAssertionFailed.Error())
}

func TestCanceledRunSkipsRemaining(t *testing.T) {
	r, browser, _ := newRunner(t, true)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := r.Run(ctx, All())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))

	_, _, skipped := Summarize(results)
	assert.Equal(t, len(All()), skipped)
	assert.Empty(t, browser.Pages())
}

func TestEnvRecord(t *testing.T) {
	env := &Env{}
	env.Record("k", "v")
	assert.Equal(t, map[string]string{"k": "v"}, env.details)
}

func TestResultDetailsAreRedacted(t *testing.T) {
	r, _, _ := newRunner(t, true)
	leaky := Scenario{Name: "leaky", Run: func(_ context.Context, env *Env) error {
		env.Record("password", "hunter2")
		env.Record("session_token", "abc123")
		env.Record("user", "ada")
		return nil
	}}

	results, err := r.Run(context.Background(), []Scenario{leaky})
	require.NoError(t, err)
	assert.Equal(t, security.Redacted, results[0].Details["password"])
	assert.Equal(t, "ada", results[0].Details["user"])

	raw, err := os.ReadFile(filepath.Join(r.store.Dir(), "results.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hunter2")
	assert.NotContains(t, string(raw), "abc123")
	assert.Contains(t, string(raw), "ada")
}

func TestEachScenarioGetsFreshContext(t *testing.T) {
	r, browser, _ := newRunner(t, true)

	scenarios, err := Lookup("login", "login_invalid")
	require.NoError(t, err)
	results, err := r.Run(context.Background(), scenarios)
	require.NoError(t, err)
	for _, res := range results {
		assert.True(t, res.Passed(), "%s: %s", res.Name, res.Error)
	}

	pages := browser.Pages()
	require.Len(t, pages, 2)
	_, ok := pages[0].Cookie("session")
	assert.True(t, ok, "login sets a session")
	_, ok = pages[1].Cookie("session")
	assert.False(t, ok, "session leaked into the next scenario")

	// the saved state belongs to the last scenario only
	states := browser.States()
	require.Len(t, states, 1)
	raw, err := os.ReadFile(states[0])
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "session")
}

func TestSavedStateComesFromLastPage(t *testing.T) {
	r, browser, _ := newRunner(t, true)

	scenarios, err := Lookup("login")
	require.NoError(t, err)
	_, err = r.Run(context.Background(), scenarios)
	require.NoError(t, err)

	states := browser.States()
	require.Len(t, states, 1)
	raw, err := os.ReadFile(states[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"name":"session"`)
}

func TestAlertFlowsCheckThePage(t *testing.T) {
	r, _, _ := newRunnerWith(t, siteOptions{Dialogs: true, AlwaysConfirmed: true, NoEcho: true})

	scenarios, err := Lookup("alert_confirm_dismiss", "alert_prompt", "alert_confirm_accept")
	require.NoError(t, err)
	results, err := r.Run(context.Background(), scenarios)
	require.NoError(t, err)

	dismiss, prompt, accept := results[0], results[1], results[2]
	assert.Equal(t, entities.RunStatusFailed, dismiss.Status)
	assert.Contains(t, dismiss.Error, entities.ErrAssertionFailed.Error())
	assert.Contains(t, dismiss.Error, confirmMarker)

	assert.Equal(t, entities.RunStatusFailed, prompt.Status)
	assert.Contains(t, prompt.Error, entities.ErrAssertionFailed.Error())
	assert.Equal(t, "false", prompt.Details["echoed"])

	assert.True(t, accept.Passed(), accept.Error)
}

func TestPageInfoPreviewKeepsRunes(t *testing.T) {
	page := browsertest.NewPage()
	page.CurrentURL = base + "/"
	page.HTML = strings.Repeat("a", previewLength-1) + "é" + "tail"

	info := pageInfo(page)
	assert.True(t, utf8.ValidString(info.Preview))
	assert.Len(t, info.Preview, previewLength-1)

	page.HTML = "<p>short</p>"
	assert.Equal(t, "<p>short</p>", pageInfo(page).Preview)
}

func TestLaunchRejectsBlankTitle(t *testing.T) {
	data, err := fixtures.Default()
	require.NoError(t, err)
	logger, _ := test.NewNullLogger()
	r := NewRunner(RunnerConfig{
		Browser: &browsertest.Browser{},
		Data:    data,
		Logger:  logger,
	})

	scenarios, err := Lookup("launch_url")
	require.NoError(t, err)
	results, err := r.Run(context.Background(), scenarios)
	require.NoError(t, err)
	assert.Equal(t, entities.RunStatusFailed, results[0].Status)
	assert.Contains(t, results[0].Error, entities.ErrAssertionFailed.Error())
}
