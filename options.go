package hoard

import (
	c "github.com/ayvens/hoard/codec"
)

// Options tune the cache. Every field is optional.
type Options struct {
	Codec  c.Codec // encodes sub-containers and documents; nil => codec.JSON{}
	Logger Logger  // debug diagnostics; nil => NopLogger
	Hooks  Hooks   // event callbacks; nil => NopHooks
}
