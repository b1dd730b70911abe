package pages

import (
	"strings"

	"practice_automation/domain/entities"
	"practice_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

const sampleAppsHeading = "Sample applications for"

// WebInputPage is the search box on the landing page
type WebInputPage struct {
	basePage
}

func NewWebInputPage(page interfaces.Page, settings entities.Settings, log logrus.FieldLogger) *WebInputPage {
	return &WebInputPage{basePage: newBasePage(page, settings, log, "web_input")}
}

func (p *WebInputPage) Open() *WebInputPage {
	p.open(joinURL(p.settings.BaseURL, "/"), "")
	return p
}

func (p *WebInputPage) EnterText(text string) *WebInputPage {
	p.fill("search", p.find.ByPlaceholder("Search an example..."), text)
	return p
}

func (p *WebInputPage) ClickSearch() *WebInputPage {
	p.click("search button", p.find.ByRole("button", "Search"))
	return p
}

// IsHeadingPresent waits a bounded time for the results heading
func (p *WebInputPage) IsHeadingPresent() bool {
	return p.err == nil && p.visibleWithin(p.find.ByRole("heading", sampleAppsHeading))
}

func (p *WebInputPage) HeadingText() (string, error) {
	if p.err != nil {
		return "", p.err
	}
	text, err := p.find.ByRole("heading", sampleAppsHeading).TextContent()
	return strings.TrimSpace(text), err
}
