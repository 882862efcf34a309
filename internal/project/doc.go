// Package project persists one production's timeline state in SQLite: the
// scene list in script order, the per-timeline story-day document, and the
// continuity element list.
//
// The Store owns the database connection, schema initialization, and a file
// lock that enforces the single-writer session model: a second Open against
// the same project fails fast instead of racing. Snapshots are replaced
// wholesale after each mutation; the database is the durable copy of the
// in-memory state, not an edit log.
//
// Schema changes bump the version in schema.go; users recreate the database
// to adopt the new schema.
package project
