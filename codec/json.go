package codec

import "encoding/json"

// JSON is the default Codec. The zero value is ready to use.
// Sub-container keys follow encoding/json map-key rules: strings, integer
// types, or encoding.TextMarshaler.
type JSON struct{}

var _ Codec = JSON{}

func (JSON) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func (JSON) MarshalDocument(doc map[string][]byte) ([]byte, error) {
	raw := make(map[string]json.RawMessage, len(doc))
	for tag, blob := range doc {
		raw[tag] = json.RawMessage(blob)
	}
	return json.Marshal(raw)
}

func (JSON) UnmarshalDocument(data []byte) (map[string][]byte, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	doc := make(map[string][]byte, len(raw))
	for tag, blob := range raw {
		doc[tag] = []byte(blob)
	}
	return doc, nil
}

func (JSON) Name() string { return "json" }
