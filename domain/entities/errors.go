package entities

import "errors"

var (
	// ErrElementNotFound is returned when a locator matched nothing before its timeout.
	ErrElementNotFound = errors.New("element not found")
	// ErrNavigationTimeout is returned when a page did not reach its ready state.
	ErrNavigationTimeout = errors.New("navigation timeout")
	ErrRowNotFound       = errors.New("row not found")
	ErrColumnNotFound    = errors.New("column not found")
	// ErrNoDialog is returned when an armed interceptor saw no dialog.
	ErrNoDialog = errors.New("no dialog was raised")
	// ErrAssertionFailed is returned by a scenario whose end state is wrong.
	ErrAssertionFailed = errors.New("assertion failed")
)
