// Package hoard implements a heterogeneous, serializable in-memory cache:
// one store holding values of many unrelated types at once, each type keyed
// by its own comparable key type, round-trippable through a single encoded
// document.
//
// Components:
//   - Item[K]: the contract a cacheable type implements (its own key, its
//     stable per-type tag).
//   - Codec: encodes/decodes sub-containers and the whole document
//     (JSON, CBOR, Msgpack).
//   - Store: optional byte store for persisted documents (file, Redis,
//     BigCache, Ristretto).
//
// A decoded document keeps every sub-container opaque until a typed
// operation against that type supplies its own decode logic. Mutating
// operations (Insert, GetMut, Take) promote the raw entry into a typed
// sub-container permanently; Get decodes transiently and never changes
// cache state. Types the current process never touches stay opaque and are
// re-emitted verbatim on the next Encode.
//
// Usage:
//
//	type User struct {
//		ID   int    `json:"id"`
//		Name string `json:"name"`
//	}
//
//	func (User) Tag() string { return "user" }
//	func (u User) Key() int  { return u.ID }
//
//	c := hoard.New(hoard.Options{})
//	_ = hoard.Insert[User, int](c, User{ID: 1, Name: "Ada"})
//
//	doc, _ := c.Encode()
//	c2, _ := hoard.Decode(doc, hoard.Options{})
//	u, ok, _ := hoard.Get[User](c2, 1)
//
// The cache is a plain single-owner data structure: no internal locking, no
// background goroutines. Wrap it behind your own mutex if shared across
// goroutines; even Get is not safe to interleave with a concurrent mutating
// call.
package hoard
