package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Eyono/Password-manager-final/internal/store"
	"github.com/Eyono/Password-manager-final/internal/testutil"
)

// Result holds the outcome of one scenario execution.
type Result struct {
	// Pass is true when every step met its expectation.
	Pass bool

	// Errors lists expectation violations, one per failed step.
	Errors []string

	// StoreCSV is the final raw contents of the backing file, used for
	// golden comparison.
	StoreCSV []byte
}

// clockBase is the first timestamp any scenario stamps. Each operation that
// creates a record advances the clock by one second.
var clockBase = time.Date(2024, 1, 15, 10, 30, 0, 0, time.Local)

// Run executes a scenario against a fresh store in a throwaway directory.
//
// Deterministic helpers (fixed clock, sequential stand-in generator) make
// the resulting CSV bytes identical across runs.
func Run(scenario *Scenario) (*Result, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	dir, err := os.MkdirTemp("", "passman-harness-")
	if err != nil {
		return nil, fmt.Errorf("create scenario dir: %w", err)
	}
	defer os.RemoveAll(dir)

	clock := testutil.NewFixedClock(clockBase, time.Second)
	gen := 0
	generate := func(length int) (string, error) {
		gen++
		return fmt.Sprintf("generated-%04d", gen), nil
	}

	path := filepath.Join(dir, "passwords.csv")
	st, err := store.Open(path, store.WithClock(clock.Now), store.WithGenerator(generate))
	if err != nil {
		return nil, fmt.Errorf("open scenario store: %w", err)
	}

	result := &Result{}
	for i, step := range scenario.Steps {
		if msg := executeStep(st, i+1, step); msg != "" {
			result.Errors = append(result.Errors, msg)
		}
	}
	result.Pass = len(result.Errors) == 0

	csv, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read final store file: %w", err)
	}
	result.StoreCSV = csv

	return result, nil
}

// executeStep runs one step and returns an expectation-violation message,
// or "" when the step behaved as the scenario demands.
func executeStep(st *store.Store, n int, step Step) string {
	var err error
	switch {
	case step.Add != nil:
		_, err = st.Add(step.Add.Service, step.Add.Username, step.Add.Password)
	case step.Delete != nil:
		err = st.Delete(step.Delete.Service, step.Delete.Username)
	case step.List != nil:
		listed, listErr := st.List(step.List.Service)
		err = listErr
		if listErr == nil && step.WantCount != nil && len(listed) != *step.WantCount {
			return fmt.Sprintf("step %d: list returned %d records, want %d", n, len(listed), *step.WantCount)
		}
	}

	switch {
	case step.WantError == "" && err != nil:
		return fmt.Sprintf("step %d: unexpected error: %v", n, err)
	case step.WantError != "" && err == nil:
		return fmt.Sprintf("step %d: expected error %s, got success", n, step.WantError)
	case step.WantError != "" && string(store.CodeOf(err)) != step.WantError:
		return fmt.Sprintf("step %d: expected error %s, got %v", n, step.WantError, err)
	}
	return ""
}
