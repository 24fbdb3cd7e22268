// Package harness runs end-to-end scenarios against the ponteiro CLI.
//
// # Scenario Format
//
// Scenarios are defined in YAML files:
//
//	name: option_two
//	description: "Default run prints the record, ten factorials and option 2"
//	args: [run, --option, "2"]
//	fail_allocation: false
//	run_id: run-fixed-0001
//	assertions:
//	  - type: exit_code
//	    code: 0
//	  - type: line_count
//	    stream: stdout
//	    count: 12
//	  - type: line_order
//	    lines: ["ID: 42, Nome: Zé do Ponteiro", "0! = 1", "Escolheu 2"]
//	  - type: contains
//	    stream: stderr
//	    text: "Erro de alocação!"
//
// # Assertion Types
//
//   - exit_code: the process exit code equals code
//   - contains: stream (stdout by default) contains text
//   - not_contains: stream does not contain text
//   - line_count: stream has exactly count lines
//   - line_order: lines appear in stdout in this order, other lines may
//     appear in between
//
// # Determinism
//
// Every scenario runs with a fixed run id (run_id, or "scenario-run" when
// empty) so JSON output is byte-stable and can be compared against
// testdata/golden/{name}.golden with RunWithGolden. fail_allocation swaps
// the record allocator for one that always fails.
package harness
