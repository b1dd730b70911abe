// Package fixtures carries the data scenarios are driven with.
package fixtures

import (
	_ "embed"
	"fmt"
	"os"

	"practice_automation/domain/entities"

	"gopkg.in/yaml.v3"
)

//go:embed data.yaml
var defaultData []byte

// Default returns the built-in test data
func Default() (entities.TestData, error) {
	return Parse(defaultData)
}

// Load reads test data from a YAML file, falling back to the built-in data
// for every field the file leaves out.
func Load(path string) (entities.TestData, error) {
	data, err := Default()
	if err != nil {
		return data, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return data, fmt.Errorf("failed to read test data: %w", err)
	}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return data, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return data, validate(data)
}

// Parse decodes YAML test data
func Parse(raw []byte) (entities.TestData, error) {
	var data entities.TestData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return data, fmt.Errorf("failed to parse test data: %w", err)
	}
	return data, validate(data)
}

func validate(data entities.TestData) error {
	if data.ValidUser.Username == "" || data.ValidUser.Password == "" {
		return fmt.Errorf("test data: valid_user needs a username and password")
	}
	for i, in := range data.WebInputs {
		if in.Input == "" {
			return fmt.Errorf("test data: web_inputs[%d] has no input", i)
		}
	}
	return nil
}
