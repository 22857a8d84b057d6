// Package codec provides the encode/decode capability hoard delegates to.
//
// A Codec serves two layers: individual sub-containers (Marshal/Unmarshal of
// arbitrary caller values, typically map[K]T) and the whole document, an
// associative structure from tag string to encoded sub-container blob.
// Document handling MUST be blob-transparent: UnmarshalDocument returns the
// exact bytes MarshalDocument was given for each tag, so never-decoded
// entries survive a round trip verbatim.
package codec

// Codec encodes/decodes values and tag->blob documents.
type Codec interface {
	// Marshal serializes v into bytes.
	Marshal(v any) ([]byte, error)
	// Unmarshal deserializes data into v (must be a pointer).
	Unmarshal(data []byte, v any) error

	// MarshalDocument writes a document; each blob is embedded verbatim.
	MarshalDocument(doc map[string][]byte) ([]byte, error)
	// UnmarshalDocument splits a document back into per-tag blobs without
	// decoding them.
	UnmarshalDocument(data []byte) (map[string][]byte, error)

	// Name returns the codec identifier used for diagnostics.
	Name() string
}
