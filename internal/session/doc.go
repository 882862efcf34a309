// Package session implements the command surface of the timeline engine. A
// Session binds the project store to the pure timeline and continuity
// operations: every mutation loads the current snapshot, applies the
// operation, hands the result to persistence, and returns the new state.
//
// Saves are a hand-off, not part of the mutation contract: a failed save is
// logged and the returned snapshot stands.
package session
