package pages

import (
	"testing"

	"practice_automation/infrastructure/browser/browsertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebInputSearch(t *testing.T) {
	page := browsertest.NewPage()
	search := browsertest.NewNode("")
	page.Root.
		Add(browsertest.Placeholder("Search an example..."), search).
		Add(browsertest.Role("button", "Search"), browsertest.NewNode("Search").Clicked(func(p *browsertest.Page) {
			p.Root.Add(browsertest.Role("heading", sampleAppsHeading),
				browsertest.NewNode(" Sample applications for "+search.Value+" "))
		}))

	web := NewWebInputPage(page, testSettings(), nil).Open()
	assert.Equal(t, "https://practice.expandtesting.com/", page.URL())
	assert.False(t, web.IsHeadingPresent())

	web.EnterText("Test").ClickSearch()
	require.NoError(t, web.Err())
	assert.True(t, web.IsHeadingPresent())

	heading, err := web.HeadingText()
	require.NoError(t, err)
	assert.Equal(t, "Sample applications for Test", heading)
}
