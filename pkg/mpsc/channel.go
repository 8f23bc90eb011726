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
	"fmt"
	"sync"

	"github.com/go-logr/logr"

	logutil "github.com/hmunye/mpsc/internal/logging"
	"github.com/hmunye/mpsc/pkg/mpsc/metrics"
)

// state is the single shared allocation behind a channel, reachable from every handle. It is the only mutable state
// shared across goroutines; the Go garbage collector reclaims it when the last handle drops, so no explicit reference
// count over the block itself is needed.
//
// `senders` is tracked as its own counter rather than inferred from reachability: the receiver also holds the block,
// so "no handles at all" and "no senders" are different conditions, and only the latter means disconnection.
type state[T any] struct {
	mu sync.Locker
	// avail signals "the queue became non-empty, or the last sender closed." It is only ever waited on or signaled
	// in coordination with mu; `Wait` releases mu atomically while parked and reacquires it on wake.
	avail *sync.Cond

	// queue is the shared FIFO backlog: pushed at the back by senders, drained from the front by the receiver.
	// Guarded by mu.
	queue []T
	// senders counts live `Sender` handles. It reaches zero exactly once and never rises again, since `Clone` is only
	// reachable through a live handle. Guarded by mu.
	senders int

	logger logr.Logger
	rec    *metrics.Recorder
}

// New creates an unbounded MPSC channel, returning its initial `Sender` and its sole `Receiver`. Additional producers
// are registered with `Sender.Clone`; there is never more than one receiver.
//
// New panics if an option produces an invalid `Config` (see `NewConfig`); option misuse is a programming error, not a
// runtime condition.
func New[T any](opts ...Option) (*Sender[T], *Receiver[T]) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		panic(fmt.Sprintf("mpsc: invalid config: %v", err))
	}

	s := &state[T]{
		mu:      cfg.Locker,
		queue:   make([]T, 0, cfg.InitialCapacity),
		senders: 1,
		logger:  cfg.Logger,
		rec:     cfg.Recorder,
	}
	s.avail = sync.NewCond(s.mu)

	s.logger.V(logutil.DEBUG).Info("Channel created.", "initialCapacity", cfg.InitialCapacity)
	return &Sender[T]{state: s}, &Receiver[T]{state: s}
}
