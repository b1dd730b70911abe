package scenario

import (
	"strings"

	"practice_automation/domain/entities"
	"practice_automation/infrastructure/browser/browsertest"
)

const (
	base          = entities.DefaultBaseURL
	topFrame      = "iframe[name='top-iframe']"
	confirmMarker = "You pressed OK"
)

const dynamicTableHTML = `<html><body>
<table class="table table-striped">
<thead><tr><th>Name</th><th>Memory</th><th>Network</th><th>CPU</th><th>Disk</th></tr></thead>
<tbody>
<tr><td>Firefox</td><td>30.2 MB</td><td>8.1 Mbps</td><td>2.6%</td><td>0.7 MB/s</td></tr>
<tr><td>Chrome</td><td>90.4 MB</td><td>3.3 Mbps</td><td>6.8%</td><td>0.2 MB/s</td></tr>
<tr><td>System</td><td>55.1 MB</td><td>0.1 Mbps</td><td>1.4%</td><td>0.5 MB/s</td></tr>
</tbody>
</table>
<p id="chrome-cpu" class="bg-warning">Chrome CPU: 6.8%</p>
</body></html>`

// siteOptions breaks the fake alert page in the ways a real regression would
type siteOptions struct {
	// Dialogs makes the alert buttons raise their dialog
	Dialogs bool
	// AlwaysConfirmed shows the confirmed marker even after Cancel
	AlwaysConfirmed bool
	// NoEcho stops the page from echoing the prompt answer
	NoEcho bool
}

// practiceSite returns a page that renders a fake version of every practice
// page on navigation. dialogs controls whether the alert buttons raise one.
func practiceSite(dialogs bool) *browsertest.Page {
	return practiceSiteWith(siteOptions{Dialogs: dialogs})
}

func practiceSiteWith(opts siteOptions) *browsertest.Page {
	page := browsertest.NewPage()
	page.OnGoto = func(p *browsertest.Page, url string) {
		p.Root = browsertest.NewNode("")
		p.TitleText = ""
		p.HTML = ""

		switch {
		case url == base+"/":
			homePage(p)
		case url == base+"/login":
			loginPage(p)
		case url == base+"/register":
			registerPage(p)
		case url == base+"/dynamic-table":
			dynamicTablePage(p)
		case url == entities.DefaultAlertURL:
			alertPage(p, opts)
		case url == entities.DefaultIframeURL:
			iframePage(p)
		}
	}
	return page
}

func homePage(p *browsertest.Page) {
	p.TitleText = "Automation Testing Practice Website for QA and Developers | UI and API"
	search := browsertest.NewNode("")
	p.Root.
		Add(browsertest.Placeholder("Search an example..."), search).
		Add(browsertest.Role("button", "Search"), browsertest.NewNode("Search").Clicked(func(p *browsertest.Page) {
			p.Root.Set(browsertest.Role("heading", "Sample applications for"),
				browsertest.NewNode("Sample applications for "+search.Value))
		}))
}

func loginPage(p *browsertest.Page) {
	user := browsertest.NewNode("")
	pass := browsertest.NewNode("")
	p.Root.
		Add(browsertest.Label("Username"), user).
		Add(browsertest.Label("Password"), pass).
		Add(browsertest.Role("button", "Login"), browsertest.NewNode("Login").Clicked(func(p *browsertest.Page) {
			if user.Value == "practice" && pass.Value == "SuperSecretPassword!" {
				p.CurrentURL = base + "/secure"
				p.SetCookie("session", "s3cr3t")
				p.Root.Add(browsertest.Role("heading", "You logged into a secure area!"),
					browsertest.NewNode("You logged into a secure area!"))
				return
			}
			p.Root.Set("#flash", browsertest.NewNode("Your username is invalid!"))
		}))
}

func registerPage(p *browsertest.Page) {
	pass := browsertest.NewNode("")
	confirm := browsertest.NewNode("")
	p.Root.
		Add(browsertest.Label("Username"), browsertest.NewNode("")).
		Add("#password", pass).
		Add("#confirmPassword", confirm).
		Add(browsertest.Role("button", "Register"), browsertest.NewNode("Register").Clicked(func(p *browsertest.Page) {
			if pass.Value != confirm.Value {
				p.Root.Set(".alert-danger, .error-message, .alert-error", browsertest.NewNode("Passwords do not match."))
				return
			}
			p.CurrentURL = base + "/login"
		}))
}

func dynamicTablePage(p *browsertest.Page) {
	p.HTML = dynamicTableHTML
	p.Root.
		Add("table", browsertest.NewNode("")).
		Add("table thead th",
			browsertest.NewNode("Name"), browsertest.NewNode("Memory"), browsertest.NewNode("Network"),
			browsertest.NewNode("CPU"), browsertest.NewNode("Disk")).
		Add("table tbody tr",
			browsertest.Row("Firefox", "30.2 MB", "8.1 Mbps", "2.6%", "0.7 MB/s"),
			browsertest.Row("Chrome", "90.4 MB", "3.3 Mbps", "6.8%", "0.2 MB/s"),
			browsertest.Row("System", "55.1 MB", "0.1 Mbps", "1.4%", "0.5 MB/s")).
		Add(".bg-warning", browsertest.NewNode("Chrome CPU: 6.8%"))
}

func alertPage(p *browsertest.Page, opts siteOptions) {
	raise := func(kind entities.DialogKind, msg string) func(*browsertest.Page) {
		if !opts.Dialogs {
			return nil
		}
		return func(p *browsertest.Page) {
			d := p.RaiseDialog(kind, msg, "")
			ok, text := d.Accepted()
			switch {
			case kind == entities.DialogConfirm && (ok || opts.AlwaysConfirmed):
				p.Root.Set(browsertest.Text(confirmMarker), browsertest.NewNode(confirmMarker+"!"))
			case kind == entities.DialogPrompt && ok && !opts.NoEcho:
				p.Root.Set(browsertest.Text(text), browsertest.NewNode("You entered: "+text))
			}
		}
	}
	p.Root.Add("button",
		browsertest.NewNode("Simple Alert").Clicked(raise(entities.DialogAlert, "This is a simple alert")),
		browsertest.NewNode("Confirm Alert").Clicked(raise(entities.DialogConfirm, "Do you confirm?")),
		browsertest.NewNode("Prompt Alert").Clicked(raise(entities.DialogPrompt, "What is your name?")),
	)
}

func iframePage(p *browsertest.Page) {
	doc := browsertest.NewNode("")
	doc.Add(browsertest.Role("link", "Docs"), browsertest.NewNode("Docs").Clicked(func(*browsertest.Page) {
		doc.Set(browsertest.Role("heading", "Installation"), browsertest.NewNode("Installation"))
	}))
	p.Root.
		Add(topFrame, browsertest.NewNode("")).
		AddFrame(topFrame, doc)
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
