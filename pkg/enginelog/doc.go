// Package enginelog carries per-run structured logging fields through
// context.Context, the way the pack's relay service enriches every log
// line with business context automatically instead of threading fields
// through every call site by hand.
package enginelog
