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

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counts(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	rec := NewRecorder(reg, "unit")

	rec.RecordSend()
	rec.RecordSend()
	rec.RecordReceive()
	rec.RecordDisconnect()

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.sends), "sends_total must count every RecordSend")
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.receives), "receives_total must count every RecordReceive")
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.disconnects), "disconnects_total must count every RecordDisconnect")
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.depth), "depth must track sends minus receives")
}

func TestRecorder_NilIsSafe(t *testing.T) {
	t.Parallel()

	var rec *Recorder
	assert.NotPanics(t, func() {
		rec.RecordSend()
		rec.RecordReceive()
		rec.RecordDisconnect()
	}, "a nil Recorder must be a no-op, not a crash")
}

func TestNewRecorder_RegistersCollectors(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	NewRecorder(reg, "a")

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.ElementsMatch(t,
		[]string{"mpsc_sends_total", "mpsc_receives_total", "mpsc_disconnects_total", "mpsc_pending_values"},
		names, "all four instruments must be registered")

	// Distinct channel names may share one registry; identical names may not.
	assert.NotPanics(t, func() { NewRecorder(reg, "b") })
	assert.Panics(t, func() { NewRecorder(reg, "a") })
}
