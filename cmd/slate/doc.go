// Command slate is the CLI for the story timeline and continuity engine:
// scene intake, story-day detection, day and scene mutations, and continuity
// element tracking for a single production.
package main
