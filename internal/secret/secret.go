// Package secret isolates sensitive credential fields behind a type that
// cannot leak through logging or string formatting.
//
// The inventory stores passwords and SSH keys verbatim; encryption at rest
// is a storage concern outside this layer. What this type guarantees is
// that %v, %s, and error-message formatting render "<redacted>" instead of
// the value. JSON round-trips the real value, since the API contract
// returns credentials to authorized callers.
package secret

import "encoding/json"

// Redacted replaces secret values in all string formatting output.
const Redacted = "<redacted>"

// Text holds a sensitive string such as a password or private key.
type Text string

// Reveal returns the underlying value. Call sites are explicit so secret
// use is greppable.
func (t Text) Reveal() string { return string(t) }

// IsZero reports whether no value is set.
func (t Text) IsZero() bool { return t == "" }

// String implements fmt.Stringer and always redacts.
func (t Text) String() string {
	if t == "" {
		return ""
	}
	return Redacted
}

// GoString redacts %#v output as well.
func (t Text) GoString() string { return "secret.Text(" + t.String() + ")" }

// MarshalJSON emits the real value; the API contract includes credentials.
func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON accepts a plain string.
func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = Text(s)
	return nil
}
