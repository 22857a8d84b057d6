package hoard

import (
	"reflect"
	"sort"

	"github.com/ayvens/hoard/codec"
)

// Cache holds three partitions:
//
//   - raw:   tag -> still-encoded sub-container, populated only by Decode.
//   - typed: type identity -> decoded, type-erased sub-container, populated
//     by every typed operation.
//   - tags:  type identity -> tag, recorded whenever a type is promoted or
//     inserted; needed at Encode time to know which tag each typed
//     sub-container is written under.
//
// Invariant: for any concrete type, at most one of raw[tag] / typed[identity]
// is populated at any instant, and a tags entry exists iff a typed
// sub-container exists. Type identities (reflect.Type) are process-local and
// never serialized; only tags appear in documents.
type Cache struct {
	raw   map[string][]byte
	typed map[reflect.Type]bucket
	tags  map[reflect.Type]string
	byTag map[string]reflect.Type

	codec codec.Codec
	log   Logger
	hooks Hooks
}

// New returns an empty cache. All Options fields are optional.
func New(opts Options) *Cache {
	c := &Cache{
		raw:   make(map[string][]byte),
		typed: make(map[reflect.Type]bucket),
		tags:  make(map[reflect.Type]string),
		byTag: make(map[string]reflect.Type),
	}

	// defaults
	c.codec = coalesce[codec.Codec](opts.Codec, codec.JSON{})
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	return c
}

// Decode builds a cache from a serialized document. Every (tag, blob) pair
// lands in the raw partition, opaque; no attempt is made to guess concrete
// types. Entries are decoded lazily, on first typed access to their type.
func Decode(data []byte, opts Options) (*Cache, error) {
	c := New(opts)
	doc, err := c.codec.UnmarshalDocument(data)
	if err != nil {
		return nil, err
	}
	for tag, blob := range doc {
		c.raw[tag] = blob
	}
	c.log.Debug("decoded document", Fields{"codec": c.codec.Name(), "tags": len(doc)})
	return c, nil
}

// Encode serializes the whole cache into a document: every typed
// sub-container is encoded under its registered tag, and every still-raw
// entry is re-emitted verbatim under its own tag, with no decode/re-encode
// round trip. Encode never mutates the cache; a failed encode leaves it
// untouched.
func (c *Cache) Encode() ([]byte, error) {
	doc := make(map[string][]byte, len(c.tags)+len(c.raw))
	for rt, tag := range c.tags {
		blob, err := c.typed[rt].encode(c.codec)
		if err != nil {
			c.hooks.EncodeFailed(tag, err)
			return nil, &EncodeError{Tag: tag, Err: err}
		}
		doc[tag] = blob
	}
	for tag, blob := range c.raw {
		doc[tag] = blob
	}
	return c.codec.MarshalDocument(doc)
}

// Tags returns every tag currently live in the cache, promoted or not,
// sorted ascending.
func (c *Cache) Tags() []string {
	out := make([]string, 0, len(c.tags)+len(c.raw))
	for _, tag := range c.tags {
		out = append(out, tag)
	}
	for tag := range c.raw {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// Pending returns the tags still sitting undecoded in the raw partition,
// sorted ascending.
func (c *Cache) Pending() []string {
	out := make([]string, 0, len(c.raw))
	for tag := range c.raw {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// register binds tag to the given type identity, rejecting a tag already
// bound to a different type. Callers create the typed sub-container
// immediately after a successful register, keeping the tags/typed invariant.
func (c *Cache) register(rt reflect.Type, tag string) error {
	if prev, ok := c.byTag[tag]; ok && prev != rt {
		return &TagCollisionError{Tag: tag, First: prev, Second: rt}
	}
	if _, ok := c.tags[rt]; ok {
		return nil
	}
	c.tags[rt] = tag
	c.byTag[tag] = rt
	return nil
}

// bucket is a type-erased typed sub-container. The concrete type is always
// items[K, T]; the downcast back is a checked type assertion.
type bucket interface {
	encode(cd codec.Codec) ([]byte, error)
}

// items is a strongly-typed sub-container: key -> item, one concrete type
// per bucket. Values are stored behind pointers so GetMut can hand out a
// mutable handle.
type items[K comparable, T Item[K]] map[K]*T

func (m items[K, T]) encode(cd codec.Codec) ([]byte, error) {
	return cd.Marshal(map[K]*T(m))
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
