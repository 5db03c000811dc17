// Package oracle defines the Oracle interface the exploration loop drives,
// a concrete HTTP-backed client with transport-error retry, and an
// in-memory fixture oracle for local tests that answers by simulating a
// known hidden graph.
package oracle
