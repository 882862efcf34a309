// Package continuity tracks attributes (injuries, costume state, prop damage,
// and the like) that must stay consistent across a contiguous span of story
// days.
//
// Elements store absolute day keys resolved at creation time and are never
// rewritten when day numbering changes; Visible clamps each element's range to
// the days that currently exist and flags ranges that drifted as stale rather
// than repairing them.
package continuity
