// Package estimates provides the persistence layer for estimate records.
//
// The package defines a Repository interface and a SQLite-backed
// implementation over dbx.DBTX. Line items are persisted as a JSON array in
// a single TEXT column; totals are stored as computed by the service layer
// and never recomputed on read.
package estimates
