// Package harness provides conformance testing for scoring formats.
//
// The harness runs hand-written competitors through a format and checks the
// outcome against per-competitor expectations and rule-level assertions.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	format: odds-and-evens        # optional, defaults to odds-and-evens
//	penalty:                      # optional, defaults to 10 points
//	  type: points
//	  per: 10
//	competitors:
//	  - name: Anna Lind
//	    points: 100
//	    seconds: 2730
//	    control_sequence: [31, 32, 33, 34, 41, 42]
//	    expect:
//	      flagged: [33, 34, 41, 42]
//	      penalty_count: 4
//	      penalty: "-40"
//	      final: "60"
//	assertions:
//	  - type: transitions
//	  - type: flagged_total
//	    count: 4
//
// # Assertion Types
//
// The following assertion types are supported:
//
//   - transitions: every competitor with k parity transitions has k-1 flagged controls
//   - parity_symmetric: flipping the parity of every code flags the same positions
//   - final_consistent: the final value follows from score, time and penalty
//   - flagged_total: the flagged controls across all competitors add up to count
//
// Assertions apply to every competitor unless a competitor name is given.
//
// # Usage
//
// Load a scenario:
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/mixed_tail.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Execute it:
//
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, e := range result.Errors {
//	        log.Println(e)
//	    }
//	}
package harness
