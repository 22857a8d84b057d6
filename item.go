package hoard

// Item is the contract a type must satisfy to live in the cache.
// K is the item's own key type.
//
// Tag returns the stable, per-type identifier written into serialized
// documents. It MUST be constant: the cache calls Tag on the zero value of
// the type (including a nil pointer when the item type is a pointer), so the
// method must not read receiver state. Tags must be unique across all types
// ever placed in one cache; hoard rejects in-process collisions with
// *TagCollisionError, but a collision against never-promoted foreign data in
// a decoded document is only caught when its decode fails.
//
// Key returns the key of this particular instance. Keys must be encodable by
// the configured Codec (with the JSON codec, that means string, integer, or
// encoding.TextMarshaler keys).
type Item[K comparable] interface {
	Key() K
	Tag() string
}
