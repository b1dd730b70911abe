package entities

import "time"

// Settings is what page objects need to know about the target sites
type Settings struct {
	BaseURL   string `json:"base_url"`
	AlertURL  string `json:"alert_url"`
	IframeURL string `json:"iframe_url"`

	// DefaultTimeout bounds every single driver operation
	DefaultTimeout time.Duration `json:"default_timeout"`
	// VisibilityTimeout bounds the waits inside accessors that report false on timeout
	VisibilityTimeout time.Duration `json:"visibility_timeout"`
	// DialogTimeout bounds how long an armed interceptor waits for its dialog
	DialogTimeout time.Duration `json:"dialog_timeout"`
	// DialogSettle is the pause after a dialog is resolved
	DialogSettle time.Duration `json:"dialog_settle"`
}

const (
	DefaultBaseURL   = "https://practice.expandtesting.com"
	DefaultAlertURL  = "https://www.qaplayground.com/practice/alert"
	DefaultIframeURL = "https://practice-automation.com/iframes/"
)

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		BaseURL:           DefaultBaseURL,
		AlertURL:          DefaultAlertURL,
		IframeURL:         DefaultIframeURL,
		DefaultTimeout:    30 * time.Second,
		VisibilityTimeout: 5 * time.Second,
		DialogTimeout:     5 * time.Second,
		DialogSettle:      500 * time.Millisecond,
	}
}

// WithDefaults fills unset fields from DefaultSettings. A zero DialogSettle
// is kept, it only means no pause.
func (s Settings) WithDefaults() Settings {
	d := DefaultSettings()
	if s.BaseURL == "" {
		s.BaseURL = d.BaseURL
	}
	if s.AlertURL == "" {
		s.AlertURL = d.AlertURL
	}
	if s.IframeURL == "" {
		s.IframeURL = d.IframeURL
	}
	if s.DefaultTimeout <= 0 {
		s.DefaultTimeout = d.DefaultTimeout
	}
	if s.VisibilityTimeout <= 0 {
		s.VisibilityTimeout = d.VisibilityTimeout
	}
	if s.DialogTimeout <= 0 {
		s.DialogTimeout = d.DialogTimeout
	}
	if s.DialogSettle < 0 {
		s.DialogSettle = d.DialogSettle
	}
	return s
}
