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

// Package mpsc provides an unbounded, blocking multi-producer, single-consumer channel built on a mutex and condition
// variable rather than on Go's native channels.
//
// A channel is created with `New`, which returns the initial `Sender` and the sole `Receiver` sharing one heap-allocated
// state block. Additional producers are registered with `Sender.Clone`; each handle is released with `Sender.Close`.
// When the last sender closes, a receiver blocked in `Recv` wakes and observes `ErrDisconnected` once the queue drains.
// Disconnection is the expected end-of-stream signal, not a failure.
//
// # Concurrency Model
//
// All shared state (the FIFO queue and the live-sender count) lives behind a single lock; no field is read or written
// outside a held critical section. One condition variable, associated with that lock, signals "the queue became
// non-empty, or the last sender is gone." The receiver's wait loop treats every wake as potentially spurious and
// re-checks its predicate before acting, so correctness never depends on the reason `Wait` returned.
//
// Senders are safe for concurrent use from any number of goroutines (each `Send` is a single short critical section).
// The `Receiver` is deliberately not: there is exactly one consumer, so it may be moved between goroutines but must
// never be used from two at once. This is what makes the receive fast path possible.
//
// # Fast Path and Slow Path
//
// The receiver owns a private buffer invisible to senders. When the buffer holds values, `Recv` pops from it without
// taking the lock at all (the fast path). When it is empty, `Recv` locks the shared queue and, if values are pending,
// takes the entire backlog in one exchange: the head is returned and the remainder becomes the new private buffer,
// so the next several calls are lock-free again. The exchange happens wholly inside the critical section and is
// behavior-transparent: FIFO order and disconnect detection are identical to consulting the shared queue on every call.
//
// # Ordering Guarantees
//
// Values from a given sender are received in the order that sender sent them. Across senders, the only guarantee is
// the order in which their `Send` calls won the shared lock; concurrent senders may interleave arbitrarily.
//
// # Lock Substitution
//
// The channel only requires the `sync.Locker` contract plus `sync.Cond`'s monitor semantics. `WithLocker` substitutes
// any conforming primitive (for example a spin lock built on compare-and-swap) without changing channel behavior.
package mpsc
