package interfaces

// Redactor decides which values are too sensitive to log
type Redactor interface {
	// IsSensitive checks if a field name likely carries a secret
	IsSensitive(key string) bool

	// Redact returns value, masked when key is sensitive
	Redact(key, value string) string

	// RedactMap returns a copy of fields with sensitive values masked
	RedactMap(fields map[string]string) map[string]string
}
