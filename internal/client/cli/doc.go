// Package cli implements the interactive FieldBill command-line client.
//
// The client is a small REPL over the local SQLite store: it creates
// customers, estimates, and invoices, and produces share links that a
// recipient can open in the stateless viewer. Commands prompt for their
// input interactively; nothing is taken from command-line arguments
// except configuration flags handled by the config package.
package cli
