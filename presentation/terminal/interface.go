package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"practice_automation/application/scenario"
	"practice_automation/domain/entities"
	"practice_automation/domain/interfaces"
	"practice_automation/infrastructure/browser"
	"practice_automation/infrastructure/config"
	"practice_automation/infrastructure/fixtures"
	"practice_automation/infrastructure/logging"
	"practice_automation/infrastructure/security"
	"practice_automation/infrastructure/storage"
)

type TerminalInterface struct {
	runner  *scenario.Runner
	browser interfaces.Browser
	store   interfaces.ArtifactStore
	reader  *bufio.Reader
	out     io.Writer
}

// NewTerminalInterface - loads config and wires browser, store and runner
func NewTerminalInterface() (*TerminalInterface, error) {
	cfg, err := config.Load("config")
	if err != nil {
		return nil, err
	}

	// Setup logger
	redactor := security.NewSecurityLayer()
	logger := logging.New(cfg.LogLevel(), os.Stderr, redactor)
	logger.WithField("env", cfg.Env).Debug("Configuration loaded")

	data, err := loadData(cfg)
	if err != nil {
		return nil, err
	}

	store, err := storage.NewRunStore(cfg.Artifacts.Dir)
	if err != nil {
		return nil, err
	}

	// Initialize browser controller
	browserCtrl, err := browser.NewBrowserController(cfg.BrowserOptions(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize browser: %w", err)
	}

	runner := scenario.NewRunner(scenario.RunnerConfig{
		Browser:   browserCtrl,
		Store:     store,
		Settings:  cfg.Settings(),
		Data:      data,
		Logger:    logger,
		Redactor:  redactor,
		SaveState: cfg.Artifacts.SaveState,
	})

	logger.WithField("dir", store.Dir()).Info("Artifacts directory ready")
	return newTerminal(runner, browserCtrl, store, os.Stdin, os.Stdout), nil
}

func loadData(cfg *config.Config) (entities.TestData, error) {
	var (
		data entities.TestData
		err  error
	)
	if cfg.Fixtures.File != "" {
		data, err = fixtures.Load(cfg.Fixtures.File)
	} else {
		data, err = fixtures.Default()
	}
	if err != nil {
		return data, err
	}
	data.ValidUser = cfg.ApplyCredentials(data.ValidUser)
	return data, nil
}

func newTerminal(runner *scenario.Runner, b interfaces.Browser, store interfaces.ArtifactStore, in io.Reader, out io.Writer) *TerminalInterface {
	return &TerminalInterface{
		runner:  runner,
		browser: b,
		store:   store,
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

// Run - reads scenario names from the input until quit or EOF
func (t *TerminalInterface) Run(ctx context.Context) error {
	fmt.Fprintln(t.out, "Practice site E2E runner")
	fmt.Fprintln(t.out, "========================")
	fmt.Fprintln(t.out, "Type scenario names or 'all' to run them")
	fmt.Fprintln(t.out, "'list' shows scenarios, 'report [dir]' shows saved results, 'quit' exits")
	fmt.Fprintln(t.out)

	for {
		fmt.Fprint(t.out, "> ")
		input, err := t.reader.ReadString('\n')
		if err != nil && input == "" {
			if err == io.EOF {
				return nil
			}
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		fields := strings.Fields(input)
		switch fields[0] {
		case "quit", "exit", "q":
			fmt.Fprintln(t.out, "Bye!")
			return nil
		case "list", "ls":
			t.list()
			continue
		case "report":
			if err := t.showSaved(fields[1:]); err != nil {
				fmt.Fprintf(t.out, "\n%v\n\n", err)
			}
			continue
		}

		if _, err := t.RunScenarios(ctx, strings.FieldsFunc(input, isSeparator)); err != nil {
			fmt.Fprintf(t.out, "\n%v\n\n", err)
			if ctx.Err() != nil {
				return ctx.Err()
			}
		}
	}
}

// RunScenarios - runs the named scenarios and prints the results. It
// reports whether every scenario passed.
func (t *TerminalInterface) RunScenarios(ctx context.Context, names []string) (bool, error) {
	scenarios, err := scenario.Lookup(names...)
	if err != nil {
		return false, fmt.Errorf("%w (try 'list')", err)
	}

	results, err := t.runner.Run(ctx, scenarios)
	t.report(results, t.store)
	if err != nil {
		return false, err
	}

	_, failed, skipped := scenario.Summarize(results)
	return failed == 0 && skipped == 0, nil
}

func (t *TerminalInterface) list() {
	w := tabwriter.NewWriter(t.out, 0, 0, 2, ' ', 0)
	for _, s := range scenario.All() {
		fmt.Fprintf(w, "  %s\t%s\n", s.Name, s.Description)
	}
	w.Flush()
}

// showSaved - prints the results saved in a run directory, this run's when dir is omitted
func (t *TerminalInterface) showSaved(args []string) error {
	store := t.store
	if len(args) > 0 {
		opened, err := storage.OpenRunStore(args[0])
		if err != nil {
			return fmt.Errorf("failed to open run: %w", err)
		}
		store = opened
	}
	if store == nil {
		return errors.New("no run directory")
	}

	results, err := store.LoadResults()
	if err != nil {
		return fmt.Errorf("failed to load results: %w", err)
	}
	if len(results) == 0 {
		fmt.Fprintf(t.out, "No results saved in %s\n", store.Dir())
		return nil
	}
	t.report(results, store)
	return nil
}

func (t *TerminalInterface) report(results []entities.Result, store interfaces.ArtifactStore) {
	fmt.Fprintln(t.out)
	w := tabwriter.NewWriter(t.out, 0, 0, 2, ' ', 0)
	for _, res := range results {
		line := fmt.Sprintf("  %s\t%s\t%s", strings.ToUpper(string(res.Status)), res.Name, res.Duration.Round(time.Millisecond))
		if res.Error != "" {
			line += "\t" + res.Error
		}
		fmt.Fprintln(w, line)
	}
	w.Flush()

	passed, failed, skipped := scenario.Summarize(results)
	fmt.Fprintf(t.out, "\n%d passed, %d failed, %d skipped", passed, failed, skipped)
	if store != nil {
		fmt.Fprintf(t.out, " (artifacts in %s)", store.Dir())
	}
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out)
}

func isSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t'
}

func (t *TerminalInterface) Close() error {
	if t.browser == nil {
		return nil
	}
	err := t.browser.Close()
	t.browser = nil
	return err
}
