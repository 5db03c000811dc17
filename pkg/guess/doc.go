// Package guess implements the GuessBuilder: closing every bound
// room's unset door pairs, assigning canonical room indices, and emitting
// the wire-ready MapDescription the oracle's guess endpoint expects.
package guess
