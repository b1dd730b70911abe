package pages

import (
	"testing"

	"practice_automation/infrastructure/browser/browsertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerForm(onSubmit func(p *browsertest.Page)) *browsertest.Page {
	page := browsertest.NewPage()
	page.Root.
		Add(browsertest.Label("Username"), browsertest.NewNode("")).
		Add("#password", browsertest.NewNode("")).
		Add("#confirmPassword", browsertest.NewNode("")).
		Add(browsertest.Role("button", "Register"), browsertest.NewNode("Register").Clicked(onSubmit))
	return page
}

func TestRegisterSuccess(t *testing.T) {
	page := registerForm(func(p *browsertest.Page) {
		p.CurrentURL = "https://practice.expandtesting.com/login"
		p.Root.Add(registerSuccessSelector, browsertest.NewNode("Successfully registered, you can log in now."))
	})

	reg := NewRegisterPage(page, testSettings(), nil).
		Open().
		EnterUsername("user_ab12cd34").
		EnterPassword("s3cret!Pass").
		EnterConfirmPassword("s3cret!Pass").
		ClickRegister()
	require.NoError(t, reg.Err())

	assert.Contains(t, reg.URL(), "login")
	assert.True(t, reg.IsSuccessMessageVisible())
	assert.Equal(t, "Successfully registered, you can log in now.", reg.SuccessMessageText())
	assert.False(t, reg.IsErrorMessageVisible())
	assert.Empty(t, reg.ErrorMessageText())
}

func TestRegisterMismatch(t *testing.T) {
	page := registerForm(func(p *browsertest.Page) {
		p.Root.Add(registerErrorSelector, browsertest.NewNode("Passwords do not match."))
	})

	reg := NewRegisterPage(page, testSettings(), nil).
		Open().
		EnterUsername("user_ab12cd34").
		EnterPassword("one").
		EnterConfirmPassword("two").
		ClickRegister()
	require.NoError(t, reg.Err())

	assert.True(t, reg.IsErrorMessageVisible())
	assert.Equal(t, "Passwords do not match.", reg.ErrorMessageText())
	assert.False(t, reg.IsSuccessMessageVisible())
	assert.Equal(t, "two", page.Root.Children["#confirmPassword"][0].Value)
}
