// Package engineerr holds the discriminated error kinds the engine can
// surface: Transport and ServerReject (oracle channel failures), Decode
// (wire-format violations), Inconsistency (engine-internal defects, wrapping
// the concrete errors pkg/roomgraph, pkg/compact, and pkg/guess raise), and
// Budget (hard-iteration-limit exhaustion).
package engineerr

import (
	"fmt"

	"github.com/mkorrel/libraryrecon/pkg/invariants"
)

// TransportError reports a failed oracle call at the channel level: network
// timeout, connection reset, malformed HTTP response. Retried automatically
// by pkg/oracle before it's surfaced here.
type TransportError struct {
	Op  string // "select", "explore", or "guess"
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("engine: transport error during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServerRejectError reports a structured rejection from the oracle itself
// (e.g. unknown problem name, malformed guess body).
type ServerRejectError struct {
	Op      string
	Message string
}

func (e *ServerRejectError) Error() string {
	return fmt.Sprintf("engine: oracle rejected %s: %s", e.Op, e.Message)
}

// DecodeError reports a plan or observation that failed format validation:
// length mismatch against the submitted plan's move count, a label outside
// {0,1,2,3}, or a malformed charcoal marker. Fatal to the iteration.
type DecodeError struct {
	Detail string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("engine: decode error: %s: %v", e.Detail, e.Err)
	}
	return fmt.Sprintf("engine: decode error: %s", e.Detail)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// InconsistencyKind discriminates the sub-kinds of InconsistencyError.
type InconsistencyKind int

const (
	MergeContradiction InconsistencyKind = iota
	PairConflict
	InconsistentOpen
	GuessInfeasible
)

func (k InconsistencyKind) String() string {
	switch k {
	case MergeContradiction:
		return "merge_contradiction"
	case PairConflict:
		return "pair_conflict"
	case InconsistentOpen:
		return "inconsistent_open"
	case GuessInfeasible:
		return "guess_infeasible"
	default:
		return fmt.Sprintf("InconsistencyKind(%d)", int(k))
	}
}

// InconsistencyError wraps a concrete defect surfaced from pkg/roomgraph,
// pkg/compact, or pkg/guess, tagged with the sub-kind so the driver can log
// a diagnostic and abort without inspecting the underlying type. Report is
// an invariant snapshot of the graph taken at the moment the defect was
// detected, so a caller can print what actually broke before exiting.
type InconsistencyError struct {
	Kind   InconsistencyKind
	Err    error
	Report *invariants.Report
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("engine: inconsistency (%s): %v", e.Kind, e.Err)
}

func (e *InconsistencyError) Unwrap() error { return e.Err }

// BudgetError reports that the exploration loop's hard iteration limit was
// reached without satisfying the termination check. BestEffort is true when
// a guess was still assembled (possibly with pair-closure gaps left
// unresolved); false means even a best-effort guess was infeasible.
type BudgetError struct {
	Iterations int
	BestEffort bool
}

func (e *BudgetError) Error() string {
	if e.BestEffort {
		return fmt.Sprintf("engine: budget exhausted after %d iterations; submitting best-effort guess", e.Iterations)
	}
	return fmt.Sprintf("engine: budget exhausted after %d iterations; no feasible guess available", e.Iterations)
}
