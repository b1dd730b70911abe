package pages

import (
	"testing"

	"practice_automation/infrastructure/browser/browsertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginForm(onSubmit func(p *browsertest.Page)) *browsertest.Page {
	page := browsertest.NewPage()
	page.Root.
		Add(browsertest.Label("Username"), browsertest.NewNode("")).
		Add(browsertest.Label("Password"), browsertest.NewNode("")).
		Add(browsertest.Role("button", "Login"), browsertest.NewNode("Login").Clicked(onSubmit))
	return page
}

func TestLoginRedirectsToSecure(t *testing.T) {
	page := loginForm(func(p *browsertest.Page) {
		p.CurrentURL = "https://practice.expandtesting.com/secure"
	})

	login := NewLoginPage(page, testSettings(), nil).Open()
	assert.Equal(t, "https://practice.expandtesting.com/login", page.URL())

	login.Login("practice", "SuperSecretPassword!")
	require.NoError(t, login.Err())
	assert.True(t, login.IsLoggedIn())

	assert.Equal(t, "practice", page.Root.Children[browsertest.Label("Username")][0].Value)
	assert.Equal(t, "SuperSecretPassword!", page.Root.Children[browsertest.Label("Password")][0].Value)
}

func TestLoginHeadingFallback(t *testing.T) {
	page := loginForm(func(p *browsertest.Page) {
		p.Root.Add(browsertest.Role("heading", loginSuccessHeading), browsertest.NewNode(loginSuccessHeading))
	})

	login := NewLoginPage(page, testSettings(), nil).Open().Login("practice", "SuperSecretPassword!")
	require.NoError(t, login.Err())
	assert.NotContains(t, login.URL(), "/secure")
	assert.True(t, login.IsLoggedIn())
}

func TestLoginInvalidCredentials(t *testing.T) {
	page := loginForm(func(p *browsertest.Page) {
		p.Root.Add("#flash", browsertest.NewNode("  Your username is invalid!\n×"))
	})

	login := NewLoginPage(page, testSettings(), nil).Open().Login("wrongUser", "wrongPassword")
	require.NoError(t, login.Err())
	assert.False(t, login.IsLoggedIn())
	assert.Contains(t, login.FlashMessage(), "Your username is invalid!")
}

func TestLoginNoFlash(t *testing.T) {
	page := loginForm(nil)

	login := NewLoginPage(page, testSettings(), nil).Open()
	assert.Empty(t, login.FlashMessage())
}
