package hoard

import (
	"fmt"
	"reflect"
)

// DecodeError reports a raw sub-container that could not be decoded as the
// requested type: a malformed document, or a tag pointing at bytes written
// by a different type. The raw entry is left in place; other partitions are
// unaffected.
type DecodeError struct {
	Tag  string
	Type reflect.Type
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("hoard: decode tag %q as %s: %v", e.Tag, e.Type, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a typed sub-container whose encode failed during
// Encode. The document write is aborted; the in-memory cache is unmodified.
type EncodeError struct {
	Tag string
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("hoard: encode tag %q: %v", e.Tag, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// TagCollisionError reports two distinct types claiming the same tag. The
// colliding operation is rejected before any partition is touched.
type TagCollisionError struct {
	Tag    string
	First  reflect.Type // the type the tag is already bound to
	Second reflect.Type // the type that tried to claim it
}

func (e *TagCollisionError) Error() string {
	return fmt.Sprintf("hoard: tag %q already bound to %s, rejected for %s", e.Tag, e.First, e.Second)
}

// TypeMismatchError reports a type-erased sub-container that failed the
// downcast back to its concrete type. This indicates internal index
// corruption and is surfaced loudly instead of serving wrong-typed data.
type TypeMismatchError struct {
	Tag  string
	Want reflect.Type
	Got  reflect.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("hoard: sub-container for tag %q holds %s, want %s", e.Tag, e.Got, e.Want)
}
