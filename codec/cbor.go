package codec

import (
	"github.com/fxamacker/cbor/v2"
)

// CBOR serializes with fxamacker/cbor. The zero value is NOT ready to use;
// construct with NewCBOR or MustCBOR.
//
// Use deterministic=true for canonical encoding (RFC 8949 Core
// Deterministic) when you need byte-for-byte stable documents (e.g. hashing
// or content addressing). Otherwise PreferredUnsortedEncOptions are used.
// Time values are encoded as RFC3339Nano for stable, human-readable
// timestamps.
type CBOR struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Codec = CBOR{}

// NewCBOR constructs a CBOR codec.
//   - Deterministic is true, uses CoreDetEncOptions (RFC 8949).
//   - Otherwise uses PreferredUnsortedEncOptions (smaller/faster defaults).
func NewCBOR(deterministic bool) (CBOR, error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}
	eo.Time = cbor.TimeRFC3339Nano

	em, err := eo.EncMode()
	if err != nil {
		return CBOR{}, err
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error. Handy for package-level
// variables in tests/examples.
func MustCBOR(deterministic bool) CBOR {
	c, err := NewCBOR(deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR) Marshal(v any) ([]byte, error)      { return c.enc.Marshal(v) }
func (c CBOR) Unmarshal(data []byte, v any) error { return c.dec.Unmarshal(data, v) }

func (c CBOR) MarshalDocument(doc map[string][]byte) ([]byte, error) {
	raw := make(map[string]cbor.RawMessage, len(doc))
	for tag, blob := range doc {
		raw[tag] = cbor.RawMessage(blob)
	}
	return c.enc.Marshal(raw)
}

func (c CBOR) UnmarshalDocument(data []byte) (map[string][]byte, error) {
	var raw map[string]cbor.RawMessage
	if err := c.dec.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	doc := make(map[string][]byte, len(raw))
	for tag, blob := range raw {
		doc[tag] = []byte(blob)
	}
	return doc, nil
}

func (c CBOR) Name() string { return "cbor" }
