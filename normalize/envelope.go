package normalize

import (
	"encoding/json"
	"fmt"
)

// Envelope is the outer response wrapper shared by every upstream endpoint:
// a truthy status flag, an optional failure message, and a platform-specific
// data payload whose internal shape is not contractually stable.
type Envelope struct {
	Status bool
	Msg    string
	Data   any
}

// ParseEnvelope decodes and validates the outer upstream wrapper once at the
// boundary. A falsy status is a definitive upstream failure and surfaces the
// upstream-provided message verbatim; the data payload is left untyped for
// the per-platform normalizers.
func ParseEnvelope(body []byte) (*Envelope, error) {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode upstream response: %w", err)
	}

	obj, ok := AsRaw(decoded)
	if !ok {
		return nil, fmt.Errorf("upstream response is not an object")
	}

	env := &Envelope{Data: obj["data"]}

	// Historical shapes flag success as either "status" or "success".
	if _, present := obj["status"]; present {
		env.Status = obj.Truthy("status")
	} else {
		env.Status = obj.Truthy("success")
	}

	env.Msg = FirstString(obj.StrOr("msg", ""), obj.StrOr("message", ""), obj.StrOr("error", ""))

	return env, nil
}

// DataRaw returns the data payload as a Raw object when it is one.
func (e *Envelope) DataRaw() (Raw, bool) {
	return AsRaw(e.Data)
}
