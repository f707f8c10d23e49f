// Package store provides the CSV-backed credential store behind passman.
//
// The store persists (service, username, password, created_at) records in a
// flat UTF-8 CSV file with a fixed four-column header. The file is created
// on first open and is the single source of truth: every operation re-reads
// it fully, so nothing cached in memory can drift from disk between
// invocations.
//
// # Invariants
//
//   - The (service, username) pair is unique across the store; usernames are
//     NFC-normalized for identity comparison, stored bytes are verbatim
//   - Every persisted record has a validated, non-empty service name
//   - The file always carries the header row, even when empty
//   - Insertion order is preserved across adds and survives deletes
//
// # Write discipline
//
//   - Add appends a single row; prior rows are never touched
//   - Delete rewrites the whole file through a temp file in the same
//     directory and renames it over the original, so an interrupted rewrite
//     leaves the previous contents intact
//   - Mutations hold an advisory exclusive lock on a sibling .lock file
//     (gofrs/flock); listings hold the shared lock. This serializes
//     concurrent invocations that would otherwise lose updates in the
//     read-modify-write cycle
//
// Malformed files (wrong header, short rows, unparseable timestamps) surface
// as STORAGE_IO errors; the store reports them and never attempts repair.
package store
