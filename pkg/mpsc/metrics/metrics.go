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

// Package metrics provides optional Prometheus instrumentation for a channel. A `Recorder` is attached with
// `mpsc.WithMetrics`; a channel without one records nothing and pays no instrumentation cost beyond a nil check.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const subsystem = "mpsc"

// Recorder holds the per-channel instruments. All methods are safe to call on a nil receiver, which is how an
// uninstrumented channel stays free of conditionals at every call site.
type Recorder struct {
	sends       prometheus.Counter
	receives    prometheus.Counter
	disconnects prometheus.Counter
	depth       prometheus.Gauge
}

// NewRecorder creates a `Recorder` and registers its collectors with `reg`. If `reg` is nil, the Prometheus default
// registerer is used. Registration panics on collector name collision, so attach at most one Recorder per registry
// unless `name` differs.
func NewRecorder(reg prometheus.Registerer, name string) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	constLabels := prometheus.Labels{"channel": name}
	r := &Recorder{
		sends: prometheus.NewCounter(prometheus.CounterOpts{
			Subsystem:   subsystem,
			Name:        "sends_total",
			Help:        "Count of values enqueued into the channel.",
			ConstLabels: constLabels,
		}),
		receives: prometheus.NewCounter(prometheus.CounterOpts{
			Subsystem:   subsystem,
			Name:        "receives_total",
			Help:        "Count of values delivered to the receiver.",
			ConstLabels: constLabels,
		}),
		disconnects: prometheus.NewCounter(prometheus.CounterOpts{
			Subsystem:   subsystem,
			Name:        "disconnects_total",
			Help:        "Count of receive calls that observed channel disconnection.",
			ConstLabels: constLabels,
		}),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Subsystem:   subsystem,
			Name:        "pending_values",
			Help:        "Number of values sent but not yet delivered (shared queue plus receiver buffer).",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(r.sends, r.receives, r.disconnects, r.depth)
	return r
}

// RecordSend records one enqueued value.
func (r *Recorder) RecordSend() {
	if r == nil {
		return
	}
	r.sends.Inc()
	r.depth.Inc()
}

// RecordReceive records one delivered value.
func (r *Recorder) RecordReceive() {
	if r == nil {
		return
	}
	r.receives.Inc()
	r.depth.Dec()
}

// RecordDisconnect records a receive call that observed disconnection.
func (r *Recorder) RecordDisconnect() {
	if r == nil {
		return
	}
	r.disconnects.Inc()
}
