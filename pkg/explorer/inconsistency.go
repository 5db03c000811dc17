package explorer

import (
	"errors"

	"github.com/mkorrel/libraryrecon/pkg/compact"
	"github.com/mkorrel/libraryrecon/pkg/engineerr"
	"github.com/mkorrel/libraryrecon/pkg/guess"
	"github.com/mkorrel/libraryrecon/pkg/invariants"
	"github.com/mkorrel/libraryrecon/pkg/roomgraph"
)

// classifyInconsistency maps a concrete engine-internal defect surfaced by
// pkg/roomgraph, pkg/compact, or pkg/guess into the shared inconsistency
// taxonomy, attaching a fresh invariant snapshot of the graph so the abort
// carries a diagnostic a caller can print. Errors that don't match any
// known defect type (transport failures, decode errors, a cancelled
// context) pass through unchanged.
func (e *Engine) classifyInconsistency(err error) error {
	if err == nil {
		return nil
	}
	kind, ok := inconsistencyKind(err)
	if !ok {
		return err
	}
	return &engineerr.InconsistencyError{Kind: kind, Err: err, Report: invariants.CheckAll(e.g)}
}

func inconsistencyKind(err error) (engineerr.InconsistencyKind, bool) {
	var mergeErr *compact.MergeContradictionError
	if errors.As(err, &mergeErr) {
		return engineerr.MergeContradiction, true
	}
	var compactPairErr *compact.PairConflictError
	if errors.As(err, &compactPairErr) {
		return engineerr.PairConflict, true
	}
	var roomPairErr *roomgraph.PairConflictError
	if errors.As(err, &roomPairErr) {
		return engineerr.PairConflict, true
	}
	var openErr *roomgraph.InconsistentOpenError
	if errors.As(err, &openErr) {
		return engineerr.InconsistentOpen, true
	}
	var infeasibleErr *guess.InfeasibleError
	if errors.As(err, &infeasibleErr) {
		return engineerr.GuessInfeasible, true
	}
	return 0, false
}
