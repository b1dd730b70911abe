// Package scenario holds the named end-to-end flows and the runner that
// executes them, one fresh page per flow.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"practice_automation/application/datagen"
	"practice_automation/application/pages"
	"practice_automation/domain/entities"
	"practice_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// ErrUnknownScenario is returned for a name that is not registered
var ErrUnknownScenario = errors.New("unknown scenario")

// Env is what a flow runs against
type Env struct {
	Page     interfaces.Page
	Settings entities.Settings
	Data     entities.TestData
	Logger   logrus.FieldLogger

	details map[string]string
}

// Record keeps a detail for the scenario result
func (e *Env) Record(key, value string) {
	if e.details == nil {
		e.details = make(map[string]string)
	}
	e.details[key] = value
}

// Flow drives page objects and returns an error when the end state is wrong
type Flow func(ctx context.Context, env *Env) error

type Scenario struct {
	Name        string
	Description string
	Run         Flow
}

var registry = []Scenario{
	{"launch_url", "open the practice site and check where we landed", launchURL},
	{"login", "log in with valid credentials", login},
	{"login_invalid", "log in with bad credentials and read the flash", loginInvalid},
	{"register", "sign up a freshly generated user", register},
	{"web_input", "search the landing page", webInput},
	{"alert_simple", "accept a simple alert", alertSimple},
	{"alert_confirm_accept", "press OK on a confirm", alertConfirmAccept},
	{"alert_confirm_dismiss", "press Cancel on a confirm", alertConfirmDismiss},
	{"alert_prompt", "answer a prompt", alertPrompt},
	{"dynamic_table_rows", "dump the task manager table", dynamicTableRows},
	{"dynamic_table_cpu", "compare Chrome CPU in the table and the label", dynamicTableCPU},
	{"iframe_docs", "follow the Docs link inside an iframe", iframeDocs},
}

// All returns every scenario in run order
func All() []Scenario {
	return append([]Scenario(nil), registry...)
}

// Names returns the registered scenario names in run order
func Names() []string {
	names := make([]string, len(registry))
	for i, s := range registry {
		names[i] = s.Name
	}
	return names
}

// Lookup finds scenarios by name, all of them for "all"
func Lookup(names ...string) ([]Scenario, error) {
	var out []Scenario
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "all" {
			out = append(out, registry...)
			continue
		}
		s, ok := find(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
		}
		out = append(out, s)
	}
	return out, nil
}

func find(name string) (Scenario, bool) {
	for _, s := range registry {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

func check(ok bool, format string, args ...any) error {
	if ok {
		return nil
	}
	return fmt.Errorf("%w: %s", entities.ErrAssertionFailed, fmt.Sprintf(format, args...))
}

func launchURL(_ context.Context, env *Env) error {
	home := pages.NewHomePage(env.Page, env.Settings, env.Logger).Open(env.Settings.BaseURL + "/")
	if err := home.Err(); err != nil {
		return err
	}
	env.Record("url", home.URL())

	if err := check(home.URLContains(env.Data.Domain), "url %q does not contain %q", home.URL(), env.Data.Domain); err != nil {
		return err
	}

	title, err := home.Title()
	if err != nil {
		return err
	}
	env.Record("title", title)
	lowered := strings.ToLower(title)
	return check(strings.Contains(lowered, "practice") || strings.Contains(lowered, "expand"),
		"unexpected title %q", title)
}

func login(_ context.Context, env *Env) error {
	user := env.Data.ValidUser
	page := pages.NewLoginPage(env.Page, env.Settings, env.Logger).Open().Login(user.Username, user.Password)
	if err := page.Err(); err != nil {
		return err
	}
	loggedIn := page.IsLoggedIn()
	env.Record("url", page.URL())
	return check(loggedIn, "login was not successful, url %q", page.URL())
}

func loginInvalid(_ context.Context, env *Env) error {
	user := env.Data.InvalidUser
	page := pages.NewLoginPage(env.Page, env.Settings, env.Logger).Open().Login(user.Username, user.Password)
	if err := page.Err(); err != nil {
		return err
	}
	if err := check(!page.IsLoggedIn(), "logged in with invalid credentials"); err != nil {
		return err
	}
	flash := page.FlashMessage()
	env.Record("flash", flash)
	return check(strings.Contains(flash, user.ExpectedError), "flash %q does not contain %q", flash, user.ExpectedError)
}

func register(_ context.Context, env *Env) error {
	username := datagen.RandomUsername()
	password := datagen.RandomPassword(12)
	env.Record("username", username)
	env.Record("password", datagen.Mask(password))

	page := pages.NewRegisterPage(env.Page, env.Settings, env.Logger).
		Open().
		EnterUsername(username).
		EnterPassword(password).
		EnterConfirmPassword(password).
		ClickRegister()
	if err := page.Err(); err != nil {
		return err
	}

	url := page.URL()
	env.Record("url", url)
	return check(strings.Contains(url, "register") || strings.Contains(url, "welcome") || strings.Contains(url, "login"),
		"unexpected url after registration %q", url)
}

func webInput(ctx context.Context, env *Env) error {
	if len(env.Data.WebInputs) == 0 {
		return check(false, "no web inputs in test data")
	}
	for _, in := range env.Data.WebInputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		page := pages.NewWebInputPage(env.Page, env.Settings, env.Logger).Open().EnterText(in.Input).ClickSearch()
		if err := page.Err(); err != nil {
			return fmt.Errorf("%s: %w", in.Name, err)
		}
		if err := check(page.IsHeadingPresent(), "%s: heading did not show up", in.Name); err != nil {
			return err
		}
		heading, err := page.HeadingText()
		if err != nil {
			return fmt.Errorf("%s: %w", in.Name, err)
		}
		env.Record(in.Name, heading)
		if err := check(strings.Contains(heading, in.ExpectedHeading), "%s: heading %q does not contain %q", in.Name, heading, in.ExpectedHeading); err != nil {
			return err
		}
	}
	return nil
}

func recordDialog(env *Env, ev entities.DialogEvent) {
	env.Record("kind", string(ev.Kind))
	env.Record("message", ev.Message)
	env.Record("accepted", fmt.Sprint(ev.Accepted))
}

func alertSimple(_ context.Context, env *Env) error {
	ev, err := pages.NewAlertPage(env.Page, env.Settings, env.Logger).Open().SimpleAlert()
	if err != nil {
		return err
	}
	recordDialog(env, ev)
	return check(ev.Message != "", "alert had no message")
}

func alertConfirmAccept(_ context.Context, env *Env) error {
	page := pages.NewAlertPage(env.Page, env.Settings, env.Logger).Open()
	ev, err := page.ConfirmAndAccept()
	if err != nil {
		return err
	}
	recordDialog(env, ev)
	if err := check(ev.Message != "", "confirm had no message"); err != nil {
		return err
	}
	marker := env.Data.ConfirmMarker
	return check(page.Echoed(marker), "page does not show %q after accepting", marker)
}

func alertConfirmDismiss(_ context.Context, env *Env) error {
	page := pages.NewAlertPage(env.Page, env.Settings, env.Logger).Open()
	ev, err := page.ConfirmAndDismiss()
	if err != nil {
		return err
	}
	recordDialog(env, ev)
	if err := check(ev.Message != "", "confirm had no message"); err != nil {
		return err
	}
	marker := env.Data.ConfirmMarker
	return check(!page.Shows(marker), "page shows %q after dismissing", marker)
}

func alertPrompt(_ context.Context, env *Env) error {
	name := env.Data.PromptName
	page := pages.NewAlertPage(env.Page, env.Settings, env.Logger).Open()
	ev, err := page.PromptAndEnter(name)
	if err != nil {
		return err
	}
	recordDialog(env, ev)
	env.Record("response", ev.Response)

	if err := check(ev.Message != "", "prompt had no message"); err != nil {
		return err
	}
	echoed := page.Echoed(name)
	env.Record("echoed", fmt.Sprint(echoed))
	return check(echoed, "page does not echo %q", name)
}

func dynamicTableRows(_ context.Context, env *Env) error {
	page := pages.NewDynamicTablePage(env.Page, env.Settings, env.Logger).Open()
	if err := page.Err(); err != nil {
		return err
	}
	data, err := page.TableData()
	if err != nil {
		return err
	}
	for i, row := range data {
		env.Logger.WithField("row", i).Info(strings.Join(row, " | "))
	}

	count, err := page.RowCount()
	if err != nil {
		return err
	}
	env.Record("rows", fmt.Sprint(count))
	return check(count > 0, "table has no rows")
}

func dynamicTableCPU(_ context.Context, env *Env) error {
	page := pages.NewDynamicTablePage(env.Page, env.Settings, env.Logger).Open()
	if err := page.Err(); err != nil {
		return err
	}

	snap, err := page.Snapshot()
	if err != nil {
		return err
	}
	cell, label, err := snap.Crosscheck(env.Data.Process, "CPU")
	if err != nil {
		return err
	}
	env.Record("table", cell)
	env.Record("label", label)
	return check(cell == label, "mismatch: table=%s, label=%s", cell, label)
}

func iframeDocs(_ context.Context, env *Env) error {
	heading, err := pages.NewIframePage(env.Page, env.Settings, env.Logger).Open().ClickDocsLink().HeadingText("Installation")
	if err != nil {
		return err
	}
	env.Record("heading", heading)
	return check(heading == "Installation", "heading is %q", heading)
}
