// Package queue is a channel-backed, actor-style worker: one goroutine owns
// a private state value and processes messages in arrival order, optionally
// answering each message on a single-shot reply channel.
package queue

import "context"

// Handler processes one message against the worker's private state and
// produces the reply. It runs on the worker goroutine only; state needs no
// locking.
type Handler[T, D, R any] func(msg T, state *D) R

type request[T, R any] struct {
	msg   T
	reply chan<- R // nil for fire-and-forget
}

type Queue[T, R any] struct {
	ch   chan request[T, R]
	done chan struct{}
}

// New starts the worker goroutine with its initial state. Stop it with
// Close.
func New[T, R, D any](handler Handler[T, D, R], state D) *Queue[T, R] {
	q := &Queue[T, R]{
		ch:   make(chan request[T, R]),
		done: make(chan struct{}),
	}
	go func() {
		defer close(q.done)
		for req := range q.ch {
			r := handler(req.msg, &state)
			if req.reply != nil {
				req.reply <- r
				close(req.reply)
			}
		}
	}()
	return q
}

// Emit enqueues msg and returns a channel carrying the single reply. The
// channel is buffered and closed after the reply, so the caller may read it
// whenever convenient, or not at all.
func (q *Queue[T, R]) Emit(ctx context.Context, msg T) (<-chan R, error) {
	reply := make(chan R, 1)
	select {
	case q.ch <- request[T, R]{msg: msg, reply: reply}:
		return reply, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// EmitNoReply enqueues msg without a reply channel.
func (q *Queue[T, R]) EmitNoReply(ctx context.Context, msg T) error {
	select {
	case q.ch <- request[T, R]{msg: msg}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the worker after it drains in-flight messages and waits for
// it to exit. No Emit may run concurrently with, or after, Close.
func (q *Queue[T, R]) Close() {
	close(q.ch)
	<-q.done
}
