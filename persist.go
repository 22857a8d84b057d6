package hoard

import (
	"context"
	"time"

	"github.com/ayvens/hoard/internal/wire"
	st "github.com/ayvens/hoard/store"
)

// Save encodes the cache and writes the sealed document to a store under
// key. A store that rejects the write under pressure (ok=false) is not an
// error; it is logged at debug level and the caller keeps its in-memory
// state.
func Save(ctx context.Context, c *Cache, s st.Store, key string, ttl time.Duration) error {
	doc, err := c.Encode()
	if err != nil {
		return err
	}
	sealed := wire.Seal(doc)
	ok, err := s.Set(ctx, key, sealed, int64(len(sealed)), ttl)
	if err != nil {
		return err
	}
	if !ok {
		c.log.Debug("store rejected document write", Fields{"key": key, "bytes": len(sealed)})
	}
	return nil
}

// Load reads a sealed document from a store and decodes it into a fresh
// cache. ok=false means the store had no entry for key. A corrupt envelope
// surfaces wire.ErrCorrupt.
func Load(ctx context.Context, s st.Store, key string, opts Options) (*Cache, bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}
	payload, err := wire.Open(raw)
	if err != nil {
		return nil, false, err
	}
	c, err := Decode(payload, opts)
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}
