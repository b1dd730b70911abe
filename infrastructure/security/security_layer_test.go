package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestIsSensitive(t *testing.T) {
	s := NewSecurityLayer()

	for _, key := range []string{"password", "confirm_password", "Confirm-Password", "API_KEY", "Authorization", "session_id", "csrfToken"} {
		assert.True(t, s.IsSensitive(key), key)
	}
	for _, key := range []string{"username", "url", "page", "search", "", "  "} {
		assert.False(t, s.IsSensitive(key), key)
	}
}

func TestExtraKeywords(t *testing.T) {
	s := NewSecurityLayer("Credit-Card", " ")
	assert.True(t, s.IsSensitive("credit_card_number"))
	assert.False(t, s.IsSensitive("username"))
}

func TestRedact(t *testing.T) {
	s := NewSecurityLayer()
	assert.Equal(t, Redacted, s.Redact("password", "SuperSecretPassword!"))
	assert.Equal(t, "practice", s.Redact("username", "practice"))
	assert.Equal(t, "", s.Redact("password", ""))

	fields := map[string]string{"username": "practice", "password": "x"}
	got := s.RedactMap(fields)
	assert.Equal(t, map[string]string{"username": "practice", "password": Redacted}, got)
	assert.Equal(t, "x", fields["password"], "input map must not change")
	assert.Nil(t, s.RedactMap(nil))
}

func TestRedactNeverLeaksPasswords(t *testing.T) {
	s := NewSecurityLayer()
	rapid.Check(t, func(t *rapid.T) {
		prefix := rapid.StringMatching(`[a-z_]{0,8}`).Draw(t, "prefix")
		value := rapid.StringN(1, 32, -1).Draw(t, "value")
		key := prefix + "password"
		if rapid.Bool().Draw(t, "upper") {
			key = strings.ToUpper(key)
		}

		if got := s.Redact(key, value); got != Redacted {
			t.Fatalf("Redact(%q, %q) = %q", key, value, got)
		}
	})
}
