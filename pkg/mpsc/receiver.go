/*
Copyright 2026 The mpsc Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package mpsc

import (
	"context"

	logutil "github.com/hmunye/mpsc/internal/logging"
)

// Receiver is the sole consumer handle for a channel. It is NOT safe for concurrent use: there is exactly one consumer
// by construction, so a Receiver may be handed from one goroutine to another, but must never be used by two at once.
// That single-consumer guarantee is what lets the private buffer exist without any synchronization of its own.
type Receiver[T any] struct {
	state *state[T]

	// buf and head form the private fast-path buffer: a drained prefix [0, head) of zeroed slots and a pending
	// suffix [head, len). Exclusively owned by the receiver; never touched under the lock by anyone else.
	buf  []T
	head int

	// done latches once disconnection has been observed with an empty channel. Disconnection is terminal: after
	// this, every receive reports ErrDisconnected without consulting the shared state.
	done bool
}

// Recv dequeues the next value, blocking until a value is available or the channel disconnects. The returned error is
// nil or `ErrDisconnected`; disconnection is the expected end-of-stream signal and is permanent once observed.
//
// Values already handed to the receiver's private buffer are always delivered before disconnection is reported: the
// buffer and the shared queue together are the logical pending set, and Recv drains both.
func (r *Receiver[T]) Recv() (T, error) {
	if v, ok := r.popLocal(); ok {
		return v, nil
	}
	return r.recvSlow(nil)
}

// RecvContext is Recv with cancellation: it additionally returns the context's error if `ctx` is cancelled or times
// out while the receiver is blocked. When a value and a cancellation race, either outcome is valid; a returned value
// is always one that was genuinely dequeued, and a context error never consumes a value.
func (r *Receiver[T]) RecvContext(ctx context.Context) (T, error) {
	if v, ok := r.popLocal(); ok {
		return v, nil
	}
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	if ctx.Done() == nil {
		// Context can never be cancelled; this is a plain blocking receive.
		return r.recvSlow(nil)
	}

	// A condition variable cannot select on a channel, so a watcher goroutine converts the context firing into a
	// wake-up. Broadcasting under the lock closes the race window between the wait loop's last predicate check and
	// its park: once the watcher holds the lock, the receiver is either before the ctx.Err() re-check (and will see
	// it) or already registered as a waiter (and will be woken).
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			st := r.state
			st.mu.Lock()
			st.avail.Broadcast()
			st.mu.Unlock()
		case <-stop:
		}
	}()

	return r.recvSlow(ctx)
}

// TryRecv dequeues the next value without blocking. It returns `ErrEmpty` if the channel is open but holds no value,
// or `ErrDisconnected` if the channel is empty and no sender remains.
func (r *Receiver[T]) TryRecv() (T, error) {
	if v, ok := r.popLocal(); ok {
		return v, nil
	}
	var zero T
	if r.done {
		return zero, ErrDisconnected
	}

	st := r.state
	spare := r.buf[:0]
	r.buf, r.head = nil, 0

	st.mu.Lock()
	if v, ok := r.popSharedLocked(spare); ok {
		st.mu.Unlock()
		st.rec.RecordReceive()
		return v, nil
	}
	disconnected := st.senders == 0
	st.mu.Unlock()

	if disconnected {
		r.markDisconnected()
		return zero, ErrDisconnected
	}
	// Keep the drained backing array for the next exchange.
	r.buf = spare
	return zero, ErrEmpty
}

// Pending reports the number of values sent but not yet delivered: the private buffer plus the shared queue.
// The shared portion is read under the lock and may be stale by the time the caller acts on it.
func (r *Receiver[T]) Pending() int {
	n := len(r.buf) - r.head
	st := r.state
	st.mu.Lock()
	n += len(st.queue)
	st.mu.Unlock()
	return n
}

// popLocal pops the front of the private buffer. Fast path: no lock is taken.
func (r *Receiver[T]) popLocal() (T, bool) {
	if r.head >= len(r.buf) {
		var zero T
		return zero, false
	}
	v := r.buf[r.head]
	var zero T
	r.buf[r.head] = zero // release the slot so delivered values are collectable
	r.head++
	r.state.rec.RecordReceive()
	return v, true
}

// recvSlow is the lock-guarded receive path, entered only with the private buffer exhausted. A non-nil ctx adds
// cancellation as a third way out of the wait loop; RecvContext's watcher guarantees the wake-up for it.
func (r *Receiver[T]) recvSlow(ctx context.Context) (T, error) {
	var zero T
	if r.done {
		return zero, ErrDisconnected
	}

	st := r.state
	// Hand the exhausted buffer's backing array to the shared slot on exchange, so senders append into warm storage
	// instead of reallocating. Every slot in it has already been zeroed by popLocal.
	spare := r.buf[:0]
	r.buf, r.head = nil, 0

	st.mu.Lock()
	for {
		if v, ok := r.popSharedLocked(spare); ok {
			st.mu.Unlock()
			st.rec.RecordReceive()
			return v, nil
		}
		if st.senders == 0 {
			st.mu.Unlock()
			r.markDisconnected()
			return zero, ErrDisconnected
		}
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				st.mu.Unlock()
				r.buf = spare
				return zero, err
			}
		}
		// Wait releases the lock while parked and reacquires it before returning. Every return is treated as
		// spurious: the loop re-establishes the predicate from scratch rather than trusting the wake reason.
		st.avail.Wait()
	}
}

// popSharedLocked takes the entire shared backlog in one exchange: the head is returned, the remainder becomes the
// new private buffer, and `spare` (the receiver's drained storage) becomes the new shared queue. Grabbing the whole
// backlog rather than one value is what amortizes lock acquisition across the following fast-path pops; it is
// behavior-transparent because the buffer and queue drain in the same FIFO order either way.
//
// Caller must hold st.mu.
func (r *Receiver[T]) popSharedLocked(spare []T) (T, bool) {
	st := r.state
	if len(st.queue) == 0 {
		var zero T
		return zero, false
	}
	taken := st.queue
	st.queue = spare

	v := taken[0]
	var zero T
	taken[0] = zero
	r.buf, r.head = taken, 1
	return v, true
}

// markDisconnected latches the terminal state and records it once.
func (r *Receiver[T]) markDisconnected() {
	if r.done {
		return
	}
	r.done = true
	r.buf, r.head = nil, 0
	r.state.rec.RecordDisconnect()
	r.state.logger.V(logutil.DEBUG).Info("Receiver observed disconnection; end of stream.")
}
