package interfaces

import "practice_automation/domain/entities"

// ArtifactStore persists what a run leaves behind
type ArtifactStore interface {
	// ScreenshotPath returns where a screenshot for the named scenario should go
	ScreenshotPath(name string) (string, error)

	// StatePath returns where the browser storage state should go
	StatePath() (string, error)

	// SaveResults writes the results of the run
	SaveResults(results []entities.Result) error

	// LoadResults reads back the results of the run
	LoadResults() ([]entities.Result, error)

	// Dir returns the run directory
	Dir() string
}
