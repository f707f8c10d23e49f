// Package harness provides conformance testing for the credential store.
//
// The harness loads YAML scenario files, executes their steps against a
// fresh store in a throwaway directory, and validates expected outcomes.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	steps:
//	  - add: { service: github, username: alice, password: s3cret }
//	  - add: { service: gitlab, username: bob }
//	  - list: { service: github }
//	    want_count: 1
//	  - add: { service: github, username: alice }
//	    want_error: DUPLICATE_ENTRY
//	  - delete: { service: github, username: alice }
//
// Each step carries exactly one of add/list/delete. want_error names the
// store error code the step must fail with (omitted = step must succeed);
// want_count pins the size of a list result.
//
// # Deterministic Testing
//
// All scenarios execute with a deterministic clock (testutil.FixedClock,
// one second per operation) and a sequential stand-in password generator,
// so the resulting CSV bytes are identical across runs and can be compared
// against golden files with goldie:
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/basic.yaml")
//	...
//	harness.RunWithGolden(t, scenario)
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
package harness
