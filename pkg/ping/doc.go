// Package ping implements the PingPlanner: it picks a bound room B and an
// unbound candidate R sharing B's label and R.potential, builds a plan that
// charcoals B and walks to whatever the tentative graph currently believes
// is R, and records a Query side-table the observation handler uses to
// interpret the oracle's reply as either a ping elimination or a ping
// confirmation against the compactor's structural test.
package ping
