package invariants

import (
	"fmt"
	"strings"
)

// CheckResult is the outcome of one invariant check.
type CheckResult struct {
	Name      string
	Satisfied bool
	Details   string
}

// Report collects every check run against a Graph.
type Report struct {
	Passed  bool
	Results []CheckResult
}

// NewReport returns an empty, passing report; Add flips Passed to false
// on the first unsatisfied result.
func NewReport() *Report {
	return &Report{Passed: true}
}

// Add appends a result and updates Passed.
func (r *Report) Add(result CheckResult) {
	if !result.Satisfied {
		r.Passed = false
	}
	r.Results = append(r.Results, result)
}

// Failures returns every unsatisfied result.
func (r *Report) Failures() []CheckResult {
	var out []CheckResult
	for _, res := range r.Results {
		if !res.Satisfied {
			out = append(out, res)
		}
	}
	return out
}

// Summary renders a human-readable, pass/fail-then-itemized-results report.
func (r *Report) Summary() string {
	var b strings.Builder
	b.WriteString("=== Invariant Report ===\n\n")
	if r.Passed {
		b.WriteString("Status: PASSED\n")
	} else {
		b.WriteString("Status: FAILED\n")
	}

	passed := 0
	for _, res := range r.Results {
		if res.Satisfied {
			passed++
		}
	}
	b.WriteString(fmt.Sprintf("Checks passed: %d/%d\n\n", passed, len(r.Results)))

	for i, res := range r.Results {
		status := "PASS"
		if !res.Satisfied {
			status = "FAIL"
		}
		b.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, status, res.Name, res.Details))
	}
	return b.String()
}
