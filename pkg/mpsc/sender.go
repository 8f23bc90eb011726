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
	"sync/atomic"

	logutil "github.com/hmunye/mpsc/internal/logging"
)

// Sender is a producer handle for a channel. A Sender is safe for concurrent use by multiple goroutines, and any
// number of Senders for the same channel may send concurrently; each `Send` is serialized by the shared lock.
//
// Go has no destructors, so releasing a handle is explicit: every Sender must be closed exactly once with `Close`.
// When the last Sender closes, the channel disconnects and a blocked receiver wakes to observe it.
type Sender[T any] struct {
	state *state[T]
	// closed guards against use of this particular handle after its Close. It protects nothing in the shared state;
	// the live-sender count is what the channel acts on.
	closed atomic.Bool
}

// Send enqueues a value at the back of the shared queue and wakes the receiver if it is parked. Send never blocks and
// never fails: the queue is unbounded, so there is no backpressure to report, and loss of the receiver is deliberately
// not reported either — detecting loss of counterpart is the receiver's job, not the sender's.
//
// Send panics if the handle has been closed, mirroring Go's own send-on-closed-channel discipline.
func (s *Sender[T]) Send(v T) {
	if s.closed.Load() {
		panic("mpsc: Send on closed Sender")
	}

	st := s.state
	st.mu.Lock()
	st.queue = append(st.queue, v)
	st.mu.Unlock()

	// Signal after releasing the lock so the receiver does not wake straight into a lock we still hold. Signaling
	// under the lock would still be correct (the waiter reacquires after wake), just an avoidable context switch.
	st.avail.Signal()
	st.rec.RecordSend()
}

// Clone registers a new producer and returns its handle. The increment of the live-sender count happens under the
// shared lock, so a clone can never race a concurrent close of the last other sender into a false disconnect: the
// count is either observed before the increment (with this handle's parent still live) or after it.
//
// Clone panics if the handle has been closed.
func (s *Sender[T]) Clone() *Sender[T] {
	if s.closed.Load() {
		panic("mpsc: Clone of closed Sender")
	}

	st := s.state
	st.mu.Lock()
	st.senders++
	n := st.senders
	st.mu.Unlock()

	st.logger.V(logutil.DEBUG).Info("Sender cloned.", "liveSenders", n)
	return &Sender[T]{state: st}
}

// Close releases this producer handle. If it was the last live Sender, the channel disconnects and the receiver is
// woken once so it observes end-of-stream instead of waiting forever. Closing an already-closed handle returns
// `ErrClosedSender` and has no other effect.
func (s *Sender[T]) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return ErrClosedSender
	}

	st := s.state
	st.mu.Lock()
	st.senders--
	last := st.senders == 0
	st.mu.Unlock()

	if last {
		// Wake a receiver parked in Recv so it re-checks the sender count and reports disconnection.
		st.avail.Signal()
		st.logger.V(logutil.DEBUG).Info("Last sender closed; channel disconnected.")
	}
	return nil
}
