package share

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/url"
	"unicode/utf8"
)

// Encode serializes a payload to a single opaque token safe to place as a
// query-string value without further escaping: canonical JSON, base64 over
// the UTF-8 bytes, then percent-encoding. Encode is total for every payload
// the projections can produce (finite, JSON-serializable data), so it has
// no error return.
func Encode(p Payload) string {
	b, err := json.Marshal(p)
	if err != nil {
		// Payload contains only strings, floats, and Item slices; Marshal
		// cannot fail on it. Keep the invariant loud in case the type grows.
		panic("share: payload marshal failed: " + err.Error())
	}
	return url.QueryEscape(base64.StdEncoding.EncodeToString(b))
}

// Decode parses a token back into a payload. It returns nil for any
// malformed input: empty strings, invalid percent-encoding, invalid base64,
// bytes that are not valid UTF-8, and text that is not a JSON object
// (including the literal "null"). All failure paths collapse to the same
// nil outcome; callers can only distinguish success from failure.
func Decode(token string) *Payload {
	if token == "" {
		return nil
	}
	unescaped, err := url.QueryUnescape(token)
	if err != nil {
		return nil
	}
	raw, err := base64.StdEncoding.DecodeString(unescaped)
	if err != nil {
		return nil
	}
	if !utf8.Valid(raw) {
		return nil
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}
	return &p
}
