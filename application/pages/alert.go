package pages

import (
	"practice_automation/application/dialog"
	"practice_automation/domain/entities"
	"practice_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// AlertPage raises the three kinds of native dialog
type AlertPage struct {
	basePage
}

func NewAlertPage(page interfaces.Page, settings entities.Settings, log logrus.FieldLogger) *AlertPage {
	return &AlertPage{basePage: newBasePage(page, settings, log, "alert")}
}

func (p *AlertPage) Open() *AlertPage {
	p.open(p.settings.AlertURL, "")
	return p
}

// SimpleAlert clicks the alert button and accepts the alert
func (p *AlertPage) SimpleAlert() (entities.DialogEvent, error) {
	return p.raise("Simple Alert", dialog.Accept())
}

// ConfirmAndAccept clicks the confirm button and presses OK
func (p *AlertPage) ConfirmAndAccept() (entities.DialogEvent, error) {
	return p.raise("Confirm Alert", dialog.Accept())
}

// ConfirmAndDismiss clicks the confirm button and presses Cancel
func (p *AlertPage) ConfirmAndDismiss() (entities.DialogEvent, error) {
	return p.raise("Confirm Alert", dialog.Dismiss())
}

// PromptAndEnter answers the prompt with name
func (p *AlertPage) PromptAndEnter(name string) (entities.DialogEvent, error) {
	return p.raise("Prompt Alert", dialog.AcceptWith(name))
}

// Echoed reports whether text shows up on the page within the visibility timeout
func (p *AlertPage) Echoed(text string) bool {
	return p.err == nil && p.visibleWithin(p.find.ByTextContaining(text))
}

// Shows reports whether text is on the page right now, without waiting
func (p *AlertPage) Shows(text string) bool {
	if p.err != nil {
		return false
	}
	visible, err := p.find.ByTextContaining(text).IsVisible()
	return err == nil && visible
}

func (p *AlertPage) raise(button string, policy dialog.Policy) (entities.DialogEvent, error) {
	if p.err != nil {
		return entities.DialogEvent{}, p.err
	}
	btn := p.find.HasText("button", button)
	ev, err := dialog.Intercept(p.page, policy, btn.Click, p.settings.DialogTimeout)
	if err != nil {
		p.fail(button, err)
		return ev, p.err
	}
	p.page.Pause(p.settings.DialogSettle)

	p.log.WithFields(logrus.Fields{
		"kind":     ev.Kind,
		"message":  ev.Message,
		"accepted": ev.Accepted,
	}).Info("dialog handled")
	return ev, nil
}
