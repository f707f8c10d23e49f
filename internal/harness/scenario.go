package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: a named sequence of store
// operations with expected outcomes.
type Scenario struct {
	// Name uniquely identifies this scenario; it also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Steps contains the operations to execute, in order.
	Steps []Step `yaml:"steps"`
}

// Step is one operation with its expected outcome. Exactly one of Add, List,
// Delete must be set.
type Step struct {
	Add    *AddStep    `yaml:"add,omitempty"`
	List   *ListStep   `yaml:"list,omitempty"`
	Delete *DeleteStep `yaml:"delete,omitempty"`

	// WantError is the store error code this step must fail with.
	// Empty means the step must succeed.
	WantError string `yaml:"want_error,omitempty"`

	// WantCount pins the number of records a list step must return.
	WantCount *int `yaml:"want_count,omitempty"`
}

// AddStep adds a record. An empty password means "generate one".
type AddStep struct {
	Service  string `yaml:"service"`
	Username string `yaml:"username"`
	Password string `yaml:"password,omitempty"`
}

// ListStep lists records, optionally filtered by exact service name.
type ListStep struct {
	Service string `yaml:"service,omitempty"`
}

// DeleteStep removes the record matching the pair.
type DeleteStep struct {
	Service  string `yaml:"service"`
	Username string `yaml:"username"`
}

// LoadScenario reads and validates a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario file %s: %w", path, err)
	}
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("scenario file %s: %w", path, err)
	}
	return &scenario, nil
}

// Validate checks structural constraints before execution.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario %s has no steps", s.Name)
	}
	for i, step := range s.Steps {
		ops := 0
		if step.Add != nil {
			ops++
		}
		if step.List != nil {
			ops++
		}
		if step.Delete != nil {
			ops++
		}
		if ops != 1 {
			return fmt.Errorf("step %d must carry exactly one of add/list/delete, got %d", i+1, ops)
		}
		if step.WantCount != nil && step.List == nil {
			return fmt.Errorf("step %d: want_count is only valid on list steps", i+1)
		}
	}
	return nil
}
