package pages

import (
	"practice_automation/application/locator"
	"practice_automation/domain/entities"
	"practice_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

const topFrame = "iframe[name='top-iframe']"

// IframePage embeds a documentation site in an iframe
type IframePage struct {
	basePage
}

func NewIframePage(page interfaces.Page, settings entities.Settings, log logrus.FieldLogger) *IframePage {
	return &IframePage{basePage: newBasePage(page, settings, log, "iframe")}
}

// Open loads the page and waits for the top iframe
func (p *IframePage) Open() *IframePage {
	p.open(p.settings.IframeURL, topFrame)
	return p
}

// Frame returns a resolver over the top iframe document
func (p *IframePage) Frame() locator.Resolver {
	return p.find.Frame(topFrame)
}

func (p *IframePage) ClickDocsLink() *IframePage {
	p.click("docs link", p.Frame().ByRole("link", "Docs"))
	return p
}

// HeadingText reads the heading called name inside the iframe
func (p *IframePage) HeadingText(name string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.Frame().ByRole("heading", name).InnerText()
}
