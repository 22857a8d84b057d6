// Package event is a type-keyed publish/subscribe emitter. Listeners are
// registered per message type and dispatched concurrently on emit; a
// listener error is logged, never propagated, so one failing listener
// cannot suppress the others.
//
// Register all listeners before the first Emit. Registration is not safe to
// interleave with concurrent emission; emission alone is safe from multiple
// goroutines.
package event

import (
	"context"
	"reflect"

	"golang.org/x/sync/errgroup"

	"github.com/ayvens/hoard"
)

type Emitter struct {
	log       hoard.Logger
	listeners map[reflect.Type][]any
}

// NewEmitter returns an emitter routing listener failures through log
// (nil disables failure logging).
func NewEmitter(log hoard.Logger) *Emitter {
	if log == nil {
		log = hoard.NopLogger{}
	}
	return &Emitter{
		log:       log,
		listeners: make(map[reflect.Type][]any),
	}
}

// On registers a listener for messages of type M.
func On[M any](e *Emitter, fn func(context.Context, M) error) {
	rt := typeOf[M]()
	e.listeners[rt] = append(e.listeners[rt], fn)
}

// Emit delivers msg to every listener registered for M, concurrently, and
// returns once all of them finish.
func Emit[M any](ctx context.Context, e *Emitter, msg M) {
	rt := typeOf[M]()
	fns := e.listeners[rt]
	if len(fns) == 0 {
		return
	}

	g := new(errgroup.Group)
	for _, f := range fns {
		fn := f.(func(context.Context, M) error)
		g.Go(func() error {
			if err := fn(ctx, msg); err != nil {
				e.log.Error("event listener failed", hoard.Fields{"event": rt.String(), "err": err})
			}
			return nil
		})
	}
	_ = g.Wait()
}

func typeOf[M any]() reflect.Type {
	return reflect.TypeOf((*M)(nil)).Elem()
}
