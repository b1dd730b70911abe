package interfaces

import (
	"time"

	"practice_automation/domain/entities"
)

// WaitState is the element state a locator can wait for
type WaitState string

const (
	StateAttached WaitState = "attached"
	StateDetached WaitState = "detached"
	StateVisible  WaitState = "visible"
	StateHidden   WaitState = "hidden"
)

// Navigable is anything that can load a document and report where it is
type Navigable interface {
	// Goto navigates to url and waits for the load event
	Goto(url string) error

	// URL returns the current page URL
	URL() string

	// Title returns the current document title
	Title() (string, error)
}

// Clickable is an element that can be clicked
type Clickable interface {
	Click() error
}

// TextReadable is an element whose text can be read
type TextReadable interface {
	// InnerText returns the rendered text of the first match
	InnerText() (string, error)

	// TextContent returns the raw text content of the first match
	TextContent() (string, error)
}

// Scope is something locators can be created from: a page, a frame or an element
type Scope interface {
	// Locate builds a lazy locator, no lookup happens here
	Locate(q entities.Query) Locator

	// Frame returns a scope over the document of the iframe matching selector
	Frame(selector string) FrameLocator
}

// Locator is a re-resolvable query against the live page
type Locator interface {
	Scope
	Clickable
	TextReadable

	Fill(value string) error
	IsVisible() (bool, error)
	WaitFor(state WaitState, timeout time.Duration) error
	Count() (int, error)
	AllInnerTexts() ([]string, error)

	// Filter narrows the matches to those containing text
	Filter(hasText string) Locator
	Nth(i int) Locator
	First() Locator

	// Describe returns a human readable selector for logs and errors
	Describe() string
}

// FrameLocator is a scope over an embedded frame
type FrameLocator interface {
	Scope
	Describe() string
}

// Dialog is a native browser dialog waiting to be resolved
type Dialog interface {
	Kind() entities.DialogKind
	Message() string
	DefaultValue() string
	Accept(promptText string) error
	Dismiss() error
}

// DialogSource delivers dialogs raised by the page
type DialogSource interface {
	// OnceDialog registers handler for the next dialog only. After disarm is
	// called the handler is no longer invoked and a late dialog is dismissed.
	OnceDialog(handler func(Dialog)) (disarm func())
}

// Page is one browser tab
type Page interface {
	Navigable
	Scope
	DialogSource

	SetDefaultTimeout(timeout time.Duration)

	// Pause blocks for d, letting the page settle
	Pause(d time.Duration)

	// Content returns the serialized HTML of the document
	Content() (string, error)

	Screenshot(path string) error
	Close() error
}

// Browser hands out isolated pages
type Browser interface {
	NewPage() (Page, error)

	// SaveState writes cookies and local storage of the default context to path
	SaveState(path string) error
	Close() error
}
