package security

import (
	"strings"

	"practice_automation/domain/interfaces"
)

// Redacted replaces sensitive values in logs and reports
const Redacted = "[REDACTED]"

var sensitiveKeywords = []string{
	"password", "passwd", "secret", "token", "apikey", "cookie", "auth", "session",
}

type SecurityLayer struct {
	keywords []string
}

// NewSecurityLayer - creates a redactor matching the built-in keywords plus extra
func NewSecurityLayer(extra ...string) *SecurityLayer {
	keywords := append([]string(nil), sensitiveKeywords...)
	for _, k := range extra {
		if k = normalizeKey(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	return &SecurityLayer{keywords: keywords}
}

func (s *SecurityLayer) IsSensitive(key string) bool {
	normalized := normalizeKey(key)
	if normalized == "" {
		return false
	}

	for _, keyword := range s.keywords {
		if strings.Contains(normalized, keyword) {
			return true
		}
	}

	return false
}

func (s *SecurityLayer) Redact(key, value string) string {
	if value != "" && s.IsSensitive(key) {
		return Redacted
	}
	return value
}

// RedactMap returns a copy of fields with sensitive values masked
func (s *SecurityLayer) RedactMap(fields map[string]string) map[string]string {
	if fields == nil {
		return nil
	}
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[k] = s.Redact(k, v)
	}
	return out
}

// "Confirm-Password" and "confirm_password" both become "confirmpassword"
func normalizeKey(key string) string {
	normalized := strings.ToLower(strings.TrimSpace(key))
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.ReplaceAll(normalized, "_", "")
	return normalized
}

// Ensure SecurityLayer implements Redactor interface
var _ interfaces.Redactor = (*SecurityLayer)(nil)
