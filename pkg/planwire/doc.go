// Package planwire stores a plan internally as a typed sequence of tokens
// (Move(d) | Charcoal(L)) and only renders it to the ASCII wire form — move
// digits interleaved with `[L]` charcoal markers — at the oracle boundary.
// Working with typed tokens instead of raw strings keeps move-counting and
// charcoal placement free of string-index arithmetic.
package planwire
