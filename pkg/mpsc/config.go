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

	"github.com/hmunye/mpsc/pkg/mpsc/metrics"
)

// defaultInitialCapacity is the default backing capacity of the shared queue. Small on purpose: a channel that never
// backlogs should not pin memory, and `append` grows the queue for the ones that do.
const defaultInitialCapacity = 8

// Config holds the configuration for a channel.
type Config struct {
	// Locker guards the shared state and backs the condition variable. Any primitive satisfying the `sync.Locker`
	// contract with ordinary mutual-exclusion semantics works; channel behavior does not depend on fairness or on
	// which waiter a wake reaches first.
	// Optional: Defaults to a new `sync.Mutex`.
	Locker sync.Locker

	// Logger receives lifecycle events (construction, clone, close, disconnection) at V-levels from
	// `internal/logging`. Per-value operations are never logged.
	// Optional: Defaults to `logr.Discard()`.
	Logger logr.Logger

	// InitialCapacity is the initial backing capacity of the shared queue.
	// Optional: Defaults to `defaultInitialCapacity` (8). Must not be negative.
	InitialCapacity int

	// Recorder instruments the channel with Prometheus metrics.
	// Optional: If nil, the channel is uninstrumented.
	Recorder *metrics.Recorder
}

// Option is a functional option for configuring a channel.
type Option func(*Config)

// NewConfig creates a new Config with the given options, applying defaults and validation.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		Locker:          &sync.Mutex{},
		Logger:          logr.Discard(),
		InitialCapacity: defaultInitialCapacity,
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// WithLocker substitutes the lock primitive guarding the shared state.
func WithLocker(l sync.Locker) Option {
	return func(c *Config) {
		c.Locker = l
	}
}

// WithLogger sets the logger for channel lifecycle events.
func WithLogger(logger logr.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithInitialCapacity sets the initial backing capacity of the shared queue.
func WithInitialCapacity(n int) Option {
	return func(c *Config) {
		c.InitialCapacity = n
	}
}

// WithMetrics attaches a metrics recorder to the channel.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(c *Config) {
		c.Recorder = rec
	}
}

// validate checks the configuration for validity.
func (c *Config) validate() error {
	if c.Locker == nil {
		return fmt.Errorf("Locker must not be nil")
	}
	if c.InitialCapacity < 0 {
		return fmt.Errorf("InitialCapacity cannot be negative, but got %d", c.InitialCapacity)
	}
	return nil
}
