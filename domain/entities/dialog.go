package entities

// DialogKind is the type of native browser dialog
type DialogKind string

const (
	DialogAlert        DialogKind = "alert"
	DialogConfirm      DialogKind = "confirm"
	DialogPrompt       DialogKind = "prompt"
	DialogBeforeUnload DialogKind = "beforeunload"
)

// DialogEvent is what was observed and decided for one dialog
type DialogEvent struct {
	Kind         DialogKind `json:"kind"`
	Message      string     `json:"message"`
	DefaultValue string     `json:"default_value,omitempty"`
	// Response is the text supplied on accept, prompt dialogs only.
	Response string `json:"response,omitempty"`
	Accepted bool   `json:"accepted"`
}
