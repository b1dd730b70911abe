package entities

import "fmt"

// Strategy is the way a locator finds its elements
type Strategy string

const (
	StrategyRole        Strategy = "role"
	StrategyLabel       Strategy = "label"
	StrategyPlaceholder Strategy = "placeholder"
	StrategyCSS         Strategy = "css"
	StrategyText        Strategy = "text"
)

// Query describes a locator. It is a description only; nothing is looked up
// until an interaction method runs against it.
type Query struct {
	Strategy Strategy `json:"strategy"`
	Value    string   `json:"value"`
	// Role is only used by StrategyRole, Value then holds the accessible name.
	Role  string `json:"role,omitempty"`
	Exact bool   `json:"exact,omitempty"`
}

func (q Query) String() string {
	switch q.Strategy {
	case StrategyRole:
		if q.Value == "" {
			return fmt.Sprintf("role=%s", q.Role)
		}
		return fmt.Sprintf("role=%s[name=%q]", q.Role, q.Value)
	case StrategyCSS:
		return q.Value
	default:
		return fmt.Sprintf("%s=%q", q.Strategy, q.Value)
	}
}
