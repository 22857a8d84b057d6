package hoard

// Hooks are lightweight callbacks for high-signal cache events.
// Implementations MUST be cheap and non-blocking; the cache calls them
// synchronously on the caller's goroutine.
type Hooks interface {
	// A raw entry was migrated into the typed partition.
	Promoted(tag string, items int)

	// A raw entry could not be decoded as the requested type (promotion or
	// transient read). The raw entry stays in place.
	DecodeFailed(tag string, err error)

	// A typed sub-container failed to encode during Encode.
	EncodeFailed(tag string, err error)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) Promoted(string, int)       {}
func (NopHooks) DecodeFailed(string, error) {}
func (NopHooks) EncodeFailed(string, error) {}
