package codec

import "github.com/vmihailenco/msgpack/v5"

// Msgpack serializes with vmihailenco/msgpack/v5. The zero value is ready
// to use.
//
// Msgpack is compact and fast; be mindful of struct tag differences vs JSON.
// Use `msgpack:"fieldName"` tags if you need explicit control.
type Msgpack struct{}

var _ Codec = Msgpack{}

func (Msgpack) Marshal(v any) ([]byte, error)      { return msgpack.Marshal(v) }
func (Msgpack) Unmarshal(data []byte, v any) error { return msgpack.Unmarshal(data, v) }

func (Msgpack) MarshalDocument(doc map[string][]byte) ([]byte, error) {
	raw := make(map[string]msgpack.RawMessage, len(doc))
	for tag, blob := range doc {
		raw[tag] = msgpack.RawMessage(blob)
	}
	return msgpack.Marshal(raw)
}

func (Msgpack) UnmarshalDocument(data []byte) (map[string][]byte, error) {
	var raw map[string]msgpack.RawMessage
	if err := msgpack.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	doc := make(map[string][]byte, len(raw))
	for tag, blob := range raw {
		doc[tag] = []byte(blob)
	}
	return doc, nil
}

func (Msgpack) Name() string { return "msgpack" }
