package hoard

import "reflect"

// Typed access lives in package-level generic functions because Go methods
// cannot introduce type parameters. K is inferred from the key argument for
// Get, GetMut and Take; Insert and Promote need both type arguments spelled
// out (hoard.Insert[User, int](c, u)) since inference does not consult the
// Item constraint's method set.

// Insert promotes T's raw entry if one exists, records T's tag in the
// registry, and upserts item under item.Key() in T's typed sub-container
// (creating it if absent). Last write wins on key collision. The returned
// error is non-nil only when promotion fails to decode a raw entry, or when
// T's tag is already bound to a different type.
func Insert[T Item[K], K comparable](c *Cache, item T) error {
	if err := promote[T, K](c); err != nil {
		return err
	}
	rt := typeOf[T]()
	if err := c.register(rt, item.Tag()); err != nil {
		return err
	}
	b, ok := c.typed[rt]
	if !ok {
		b = items[K, T]{}
		c.typed[rt] = b
	}
	m, err := downcast[T, K](b)
	if err != nil {
		return err
	}
	m[item.Key()] = &item
	return nil
}

// Get is a non-promoting read. If T's data is still raw, the sub-container
// is decoded transiently, without storing the result: repeated Gets on an
// unpromoted type decode repeatedly and never change cache state. Otherwise
// the typed partition is consulted. A miss (absent type or absent key) is
// (zero, false, nil), never an error.
func Get[T Item[K], K comparable](c *Cache, key K) (T, bool, error) {
	var zero T
	tag := zero.Tag()

	if blob, ok := c.raw[tag]; ok {
		var m map[K]*T
		if err := c.codec.Unmarshal(blob, &m); err != nil {
			c.hooks.DecodeFailed(tag, err)
			return zero, false, &DecodeError{Tag: tag, Type: typeOf[T](), Err: err}
		}
		p, ok := m[key]
		if !ok || p == nil {
			return zero, false, nil
		}
		return *p, true, nil
	}

	b, ok := c.typed[typeOf[T]()]
	if !ok {
		return zero, false, nil
	}
	m, err := downcast[T, K](b)
	if err != nil {
		return zero, false, err
	}
	p, ok := m[key]
	if !ok || p == nil {
		return zero, false, nil
	}
	return *p, true, nil
}

// GetMut promotes T, then returns a pointer into T's typed sub-container.
// The pointer stays valid until the item is removed with Take. ok implies a
// non-nil pointer: an entry decoded from an explicit null reads as a miss.
func GetMut[T Item[K], K comparable](c *Cache, key K) (*T, bool, error) {
	if err := promote[T, K](c); err != nil {
		return nil, false, err
	}
	b, ok := c.typed[typeOf[T]()]
	if !ok {
		return nil, false, nil
	}
	m, err := downcast[T, K](b)
	if err != nil {
		return nil, false, err
	}
	p, ok := m[key]
	if !ok || p == nil {
		return nil, false, nil
	}
	return p, true, nil
}

// Take promotes T, then removes and returns the item stored under key.
// Removing the last key leaves an empty typed sub-container in place; the
// type stays registered until the cache itself is dropped.
func Take[T Item[K], K comparable](c *Cache, key K) (T, bool, error) {
	var zero T
	if err := promote[T, K](c); err != nil {
		return zero, false, err
	}
	b, ok := c.typed[typeOf[T]()]
	if !ok {
		return zero, false, nil
	}
	m, err := downcast[T, K](b)
	if err != nil {
		return zero, false, err
	}
	p, ok := m[key]
	if !ok || p == nil {
		return zero, false, nil
	}
	delete(m, key)
	return *p, true, nil
}

// Promote eagerly migrates T's raw entry, if any, into the typed partition.
// Idempotent; a no-op when T is already typed or has never been in the
// cache. Useful to front-load decode cost or surface a decode error early.
func Promote[T Item[K], K comparable](c *Cache) error {
	return promote[T, K](c)
}

func promote[T Item[K], K comparable](c *Cache) error {
	rt := typeOf[T]()
	if _, ok := c.typed[rt]; ok {
		return nil
	}

	var zero T
	tag := zero.Tag()
	blob, ok := c.raw[tag]
	if !ok {
		return nil
	}

	var m map[K]*T
	if err := c.codec.Unmarshal(blob, &m); err != nil {
		// the raw entry stays put; one bad blob must not poison the rest
		c.hooks.DecodeFailed(tag, err)
		return &DecodeError{Tag: tag, Type: rt, Err: err}
	}
	if m == nil {
		m = map[K]*T{}
	}
	if err := c.register(rt, tag); err != nil {
		return err
	}
	c.typed[rt] = items[K, T](m)
	delete(c.raw, tag)

	c.log.Debug("promoted raw entry", Fields{"tag": tag, "items": len(m)})
	c.hooks.Promoted(tag, len(m))
	return nil
}

// downcast recovers the strongly-typed sub-container from a type-erased
// bucket. A mismatch means the identity index is broken; fail loudly rather
// than serve wrong-typed data.
func downcast[T Item[K], K comparable](b bucket) (items[K, T], error) {
	m, ok := b.(items[K, T])
	if !ok {
		var zero T
		return nil, &TypeMismatchError{Tag: zero.Tag(), Want: typeOf[T](), Got: reflect.TypeOf(b)}
	}
	return m, nil
}
