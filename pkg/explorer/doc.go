// Package explorer implements the exploration loop: each iteration
// refreshes canonical paths, picks one query source from the ping ⟶
// ping-followup ⟶ regular ⟶ fancy ⟶ random cascade (first non-empty wins),
// submits the resulting plans to an oracle.Oracle, applies the observations
// back onto the roomgraph, runs compact.CollapseUntilDeath, and checks the
// termination condition. On budget exhaustion it falls back to
// guess.BuildBestEffort and surfaces engineerr.BudgetError.
package explorer
