package entities

// LoginUser is a set of credentials and what logging in with them should do
type LoginUser struct {
	Username      string `yaml:"username" json:"username"`
	Password      string `yaml:"password" json:"password"`
	ExpectedURL   string `yaml:"expected_url,omitempty" json:"expected_url,omitempty"`
	ExpectedError string `yaml:"expected_error,omitempty" json:"expected_error,omitempty"`
}

// WebInput is one search performed on the home page
type WebInput struct {
	Name            string `yaml:"name" json:"name"`
	Input           string `yaml:"input" json:"input"`
	ExpectedHeading string `yaml:"expected_heading" json:"expected_heading"`
}

// TestData is the data scenarios are driven with
type TestData struct {
	ValidUser   LoginUser  `yaml:"valid_user" json:"valid_user"`
	InvalidUser LoginUser  `yaml:"invalid_user" json:"invalid_user"`
	WebInputs   []WebInput `yaml:"web_inputs" json:"web_inputs"`
	PromptName  string     `yaml:"prompt_name" json:"prompt_name"`
	Process     string     `yaml:"process" json:"process"`

	// ConfirmMarker is the text the alert page shows once a confirm is accepted
	ConfirmMarker string `yaml:"confirm_marker" json:"confirm_marker"`
	// Domain is the substring every practice page URL contains
	Domain        string `yaml:"domain" json:"domain"`
}
