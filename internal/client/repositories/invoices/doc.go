// Package invoices provides the persistence layer for invoice records.
//
// The package defines a Repository interface and a SQLite-backed
// implementation over dbx.DBTX. Invoice numbers are unique; sequential
// assignment is the service layer's job (via Count), not the repository's.
package invoices
