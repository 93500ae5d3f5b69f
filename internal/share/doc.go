// Package share implements the shareable-document codec: it projects an
// estimate or invoice into a compact payload, encodes the payload into a
// URL-safe token, and builds complete share URLs and messages around it.
//
// # Overview
//
// The producing app and the stateless viewer are separate runtimes with no
// shared process or database; the share URL is their only channel. Data
// flows one way for sharing (document -> projection -> token -> URL) and one
// way for viewing (URL -> token -> payload -> rendered view).
//
// The payload uses fixed short keys (see Payload) and must match exactly on
// both sides. It is regenerated per share action, never persisted, and
// carries no signature, checksum, or version tag: tokens are same-session
// link transport, not long-term storage, and must not be treated as
// tamper-proof or forward-compatible.
//
// # Failure Model
//
// Encode is total for every payload the projections can produce. Decode is
// defensive: any malformed token (bad percent-encoding, bad base64, bytes
// that are not UTF-8, text that is not JSON) collapses to a nil result, so
// a tampered or truncated URL degrades to an "invalid link" view rather
// than an error propagating into the hosting application.
//
// Key Types
//
//   - type Payload  — the compact wire record
//   - type Item     — a line item carried as a [name, quantity, unitPrice] triple
//   - type Kind     — document kind discriminator (estimate | invoice)
//   - type Builder  — share URL and message construction over a base origin
//
// All functions in this package are pure and safe for concurrent use.
package share
