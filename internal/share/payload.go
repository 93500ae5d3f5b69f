package share

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind discriminates the two shareable document kinds. Its string value is
// the literal path segment used in share URLs.
type Kind string

const (
	KindEstimate Kind = "estimate"
	KindInvoice  Kind = "invoice"
)

// ParseKind maps a URL path segment to a Kind. The second return value is
// false for anything that is not a known kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindEstimate:
		return KindEstimate, true
	case KindInvoice:
		return KindInvoice, true
	}
	return "", false
}

// Item is a line item in its compact wire form. On the wire it is a
// three-element JSON array [name, quantity, unitPrice]; the per-line total
// is deliberately not carried and is always recomputed on read.
type Item struct {
	Name      string
	Quantity  float64
	UnitPrice float64
}

// MarshalJSON encodes the item as a [name, quantity, unitPrice] array.
func (it Item) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]any{it.Name, it.Quantity, it.UnitPrice})
}

// UnmarshalJSON decodes a [name, quantity, unitPrice] array. Anything that
// is not a three-element array of (string, number, number) is an error,
// which Decode collapses into its nil outcome.
func (it *Item) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 3 {
		return fmt.Errorf("line item must be a [name, quantity, unitPrice] triple, got %d elements", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &it.Name); err != nil {
		return err
	}
	if err := json.Unmarshal(tuple[1], &it.Quantity); err != nil {
		return err
	}
	return json.Unmarshal(tuple[2], &it.UnitPrice)
}

// Payload is the compact, flat record carried inside a share token. The
// JSON keys are a fixed wire contract shared with the viewer and must not
// change. Optional fields use omitempty so that an empty source value omits
// the key entirely; an omitted key must never round-trip into "" semantics
// other than Go's zero value on the consuming side.
type Payload struct {
	Number    string  `json:"n"`            // short id / invoice number
	Customer  string  `json:"c"`            // customer display name
	Items     []Item  `json:"li"`           // always present, may be empty
	Subtotal  float64 `json:"st"`           //
	TaxRate   float64 `json:"tr"`           // percentage, full precision
	TaxAmount float64 `json:"ta"`           //
	Total     float64 `json:"t"`            //
	Notes     string  `json:"no,omitempty"` // only if non-empty
	Created   string  `json:"dt"`           // YYYY-MM-DD
	Expires   string  `json:"ex,omitempty"` // estimate only
	Terms     string  `json:"pt,omitempty"` // invoice only, optional
	DueDate   string  `json:"dd,omitempty"` // invoice only, optional
	Status    string  `json:"s,omitempty"`  // invoice only
	Business  string  `json:"bn,omitempty"` // only if non-empty
}

// dateOnly truncates an ISO-8601 timestamp at the date/time separator.
// A value with no time component passes through unchanged. No timezone
// conversion happens here or anywhere else in the codec.
func dateOnly(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	return s
}
