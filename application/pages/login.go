package pages

import (
	"strings"

	"practice_automation/domain/entities"
	"practice_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

const loginSuccessHeading = "You logged into a secure area!"

// LoginPage is the form at /login
type LoginPage struct {
	basePage
}

func NewLoginPage(page interfaces.Page, settings entities.Settings, log logrus.FieldLogger) *LoginPage {
	return &LoginPage{basePage: newBasePage(page, settings, log, "login")}
}

func (p *LoginPage) Open() *LoginPage {
	p.open(joinURL(p.settings.BaseURL, "/login"), "")
	return p
}

func (p *LoginPage) EnterUsername(username string) *LoginPage {
	p.fill("username", p.find.ByLabel("Username"), username)
	return p
}

func (p *LoginPage) EnterPassword(password string) *LoginPage {
	p.fill("password", p.find.ByLabel("Password"), password)
	return p
}

func (p *LoginPage) ClickLogin() *LoginPage {
	p.click("login button", p.find.ByRole("button", "Login"))
	return p
}

// Login fills both fields and submits the form
func (p *LoginPage) Login(username, password string) *LoginPage {
	return p.EnterUsername(username).EnterPassword(password).ClickLogin()
}

// IsLoggedIn checks the URL first and falls back to waiting for the
// success heading.
func (p *LoginPage) IsLoggedIn() bool {
	if p.err != nil {
		return false
	}
	if strings.Contains(p.URL(), "/secure") {
		return true
	}
	return p.visibleWithin(p.find.ByRole("heading", loginSuccessHeading))
}

// FlashMessage returns the flash banner text, or "" when none shows up
func (p *LoginPage) FlashMessage() string {
	if p.err != nil {
		return ""
	}
	return p.textWithin(p.find.ByCSS("#flash"))
}
