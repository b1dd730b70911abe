//go:build e2e

package scenario

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"practice_automation/infrastructure/browser"
	"practice_automation/infrastructure/config"
	"practice_automation/infrastructure/fixtures"
	"practice_automation/infrastructure/logging"
	"practice_automation/infrastructure/security"
	"practice_automation/infrastructure/storage"

	"github.com/stretchr/testify/require"
)

// liveRunner launches the configured browser against the real practice
// sites. The test is skipped when Playwright or the browser is missing.
func liveRunner(t *testing.T) *Runner {
	t.Helper()
	cfg, err := config.Load(filepath.Join("..", "..", "config"))
	require.NoError(t, err)

	logger := logging.New(cfg.LogLevel(), os.Stderr, security.NewSecurityLayer())

	data, err := fixtures.Default()
	require.NoError(t, err)
	data.ValidUser = cfg.ApplyCredentials(data.ValidUser)

	store, err := storage.NewRunStore(t.TempDir())
	require.NoError(t, err)

	b, err := browser.NewBrowserController(cfg.BrowserOptions(), logger)
	if err != nil {
		t.Skip("Playwright not available:", err)
	}
	t.Cleanup(func() { _ = b.Close() })

	return NewRunner(RunnerConfig{
		Browser:   b,
		Store:     store,
		Settings:  cfg.Settings(),
		Data:      data,
		Logger:    logger,
		SaveState: cfg.Artifacts.SaveState,
	})
}

func TestLiveScenarios(t *testing.T) {
	r := liveRunner(t)

	for _, s := range All() {
		t.Run(s.Name, func(t *testing.T) {
			res := r.RunOne(context.Background(), s)
			if !res.Passed() {
				t.Fatalf("%s failed: %s (screenshot: %s)", s.Name, res.Error, res.Screenshot)
			}
			for k, v := range res.Details {
				t.Logf("%s = %s", k, v)
			}
		})
	}
}
