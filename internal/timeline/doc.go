// Package timeline models the partition of shooting-script scenes into
// numbered story days across the four narrative timelines (main, flashback,
// dream, other).
//
// A Store holds the ordered day list for one timeline; a Document bundles all
// four. Detect assigns an initial partition on the main timeline from scene
// time-of-day metadata, and the mutation functions (CreateDay, RemoveDay,
// MoveScene, ReorderDays, ReorderSceneInDay, ChangeSceneTimeline) apply user
// edits. Every function here is a pure transformation: inputs are never
// mutated, success returns a fresh snapshot with contiguous day keys 1..N and
// rewritten scene back-references, and failure returns a sentinel error with
// the prior state untouched.
//
// Treat this package as the single source of truth for day-numbering
// semantics; persistence and presentation live elsewhere.
package timeline
