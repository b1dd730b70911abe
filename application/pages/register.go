package pages

import (
	"practice_automation/domain/entities"
	"practice_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

const (
	registerSuccessSelector = ".alert-success, .success-message, [role='alert']"
	registerErrorSelector   = ".alert-danger, .error-message, .alert-error"
)

// RegisterPage is the sign up form at /register
type RegisterPage struct {
	basePage
}

func NewRegisterPage(page interfaces.Page, settings entities.Settings, log logrus.FieldLogger) *RegisterPage {
	return &RegisterPage{basePage: newBasePage(page, settings, log, "register")}
}

func (p *RegisterPage) Open() *RegisterPage {
	p.open(joinURL(p.settings.BaseURL, "/register"), "")
	return p
}

func (p *RegisterPage) EnterUsername(username string) *RegisterPage {
	p.fill("username", p.find.ByLabel("Username"), username)
	return p
}

func (p *RegisterPage) EnterPassword(password string) *RegisterPage {
	p.fill("password", p.find.ByCSS("#password"), password)
	return p
}

func (p *RegisterPage) EnterConfirmPassword(password string) *RegisterPage {
	p.fill("confirm_password", p.find.ByCSS("#confirmPassword"), password)
	return p
}

func (p *RegisterPage) ClickRegister() *RegisterPage {
	p.click("register button", p.find.ByRole("button", "Register"))
	return p
}

func (p *RegisterPage) IsSuccessMessageVisible() bool {
	return p.err == nil && p.visibleWithin(p.find.ByCSS(registerSuccessSelector))
}

func (p *RegisterPage) IsErrorMessageVisible() bool {
	return p.err == nil && p.visibleWithin(p.find.ByCSS(registerErrorSelector))
}

func (p *RegisterPage) SuccessMessageText() string {
	if p.err != nil {
		return ""
	}
	return p.textWithin(p.find.ByCSS(registerSuccessSelector))
}

func (p *RegisterPage) ErrorMessageText() string {
	if p.err != nil {
		return ""
	}
	return p.textWithin(p.find.ByCSS(registerErrorSelector))
}
