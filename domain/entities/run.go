package entities

import "time"

// RunStatus represents the status of a scenario run
type RunStatus string

const (
	RunStatusPending RunStatus = "pending"
	RunStatusRunning RunStatus = "running"
	RunStatusPassed  RunStatus = "passed"
	RunStatusFailed  RunStatus = "failed"
	RunStatusSkipped RunStatus = "skipped"
)

// Result is the outcome of one scenario
type Result struct {
	Name       string            `json:"name"`
	Status     RunStatus         `json:"status"`
	Details    map[string]string `json:"details,omitempty"`
	Error      string            `json:"error,omitempty"`
	Duration   time.Duration     `json:"duration"`
	Screenshot string            `json:"screenshot,omitempty"`
}

// Passed reports whether the scenario succeeded
func (r Result) Passed() bool {
	return r.Status == RunStatusPassed
}
