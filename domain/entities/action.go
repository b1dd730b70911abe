package entities

// ActionType represents the kind of user interaction a page object performs
type ActionType string

const (
	ActionNavigate ActionType = "navigate"
	ActionClick    ActionType = "click"
	ActionFill     ActionType = "fill"
	ActionRead     ActionType = "read"
	ActionWait     ActionType = "wait"
	ActionDialog   ActionType = "dialog"
)

// Action represents a single interaction against the page
type Action struct {
	Type   ActionType `json:"type"`
	Target string     `json:"target,omitempty"`
	Value  string     `json:"value,omitempty"`
}
