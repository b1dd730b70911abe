package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"practice_automation/domain/entities"
	"practice_automation/domain/interfaces"

	"github.com/google/uuid"
)

var unsafeName = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

type runStore struct {
	dir string
}

// NewRunStore - creates a fresh run directory under base
func NewRunStore(base string) (interfaces.ArtifactStore, error) {
	runID := fmt.Sprintf("%s-%s", time.Now().Format("20060102-150405"), uuid.NewString()[:8])
	dir := filepath.Join(base, runID)
	if err := os.MkdirAll(filepath.Join(dir, "screenshots"), 0755); err != nil {
		return nil, fmt.Errorf("failed to create run directory: %w", err)
	}

	return &runStore{dir: dir}, nil
}

// OpenRunStore - reopens an existing run directory
func OpenRunStore(dir string) (interfaces.ArtifactStore, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	return &runStore{dir: dir}, nil
}

func (s *runStore) Dir() string {
	return s.dir
}

// ScreenshotPath - unique png path for the named scenario
func (s *runStore) ScreenshotPath(name string) (string, error) {
	safe := strings.Trim(unsafeName.ReplaceAllString(name, "_"), "_")
	if safe == "" {
		safe = "screenshot"
	}
	dir := filepath.Join(s.dir, "screenshots")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, fmt.Sprintf("%s-%s.png", safe, uuid.NewString()[:8])), nil
}

// StatePath - where cookies and local storage are dumped
func (s *runStore) StatePath() (string, error) {
	return filepath.Join(s.dir, "state.json"), nil
}

// SaveResults - saves scenario results of the run
func (s *runStore) SaveResults(results []entities.Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.resultsPath(), data, 0644)
}

// LoadResults - loads scenario results of the run
func (s *runStore) LoadResults() ([]entities.Result, error) {
	data, err := os.ReadFile(s.resultsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return []entities.Result{}, nil
		}
		return nil, err
	}

	var results []entities.Result
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, err
	}

	return results, nil
}

func (s *runStore) resultsPath() string {
	return filepath.Join(s.dir, "results.json")
}
