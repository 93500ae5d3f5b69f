// Package services implements the application logic of the FieldBill CLI:
// customer management, estimate and invoice creation with totals
// computation, and the share operation that turns a stored document into a
// share URL and customer-facing message.
//
// Services sit between the CLI commands and the repositories. They own
// identifier generation (uuid), timestamping, totals arithmetic, and the
// wiring of the share link builder; repositories stay dumb storage.
package services
