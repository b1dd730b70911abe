package pages

import (
	"strings"

	"practice_automation/domain/entities"
	"practice_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// HomePage is any landing page opened by URL
type HomePage struct {
	basePage
}

func NewHomePage(page interfaces.Page, settings entities.Settings, log logrus.FieldLogger) *HomePage {
	return &HomePage{basePage: newBasePage(page, settings, log, "home")}
}

// Open navigates to url
func (p *HomePage) Open(url string) *HomePage {
	p.open(url, "")
	return p
}

func (p *HomePage) Title() (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.page.Title()
}

// URLContains reports whether the current URL contains s
func (p *HomePage) URLContains(s string) bool {
	return strings.Contains(p.URL(), s)
}
