// Package walk implements the walk primitives used to compose plans: de
// Bruijn cover sequences, random fill, and door-probing templates, before
// they are tokenized by package planwire.
package walk
