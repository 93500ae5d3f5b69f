// Package customers provides the persistence layer for customer records.
//
// The package defines a Repository interface and a SQLite-backed
// implementation over dbx.DBTX (either *sql.DB or *sql.Tx), following the
// same split used by the estimates and invoices repositories.
package customers
