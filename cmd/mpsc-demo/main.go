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

// mpsc-demo fans work from several producer goroutines into a single consumer over one mpsc channel, reporting
// throughput at the end and, optionally, live channel metrics over HTTP while it runs.
package main

import (
	"flag"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	logutil "github.com/hmunye/mpsc/internal/logging"
	"github.com/hmunye/mpsc/pkg/mpsc"
	"github.com/hmunye/mpsc/pkg/mpsc/metrics"
)

// workItem is the payload fanned into the channel: a tagged, timestamped unit of fake work.
type workItem struct {
	id       string
	producer int
	seq      int
	sentAt   time.Time
}

func main() {
	var (
		producers   = flag.Int("producers", 4, "number of producer goroutines")
		perProducer = flag.Int("count", 10000, "values sent by each producer")
		metricsAddr = flag.String("metrics-addr", "", "address to serve /metrics on; empty disables the endpoint")
		verbosity   = flag.Int("v", logutil.DEFAULT, "logging verbosity")
	)
	flag.Parse()

	logger := newLogger(*verbosity)

	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg, "demo")
	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			logger.Info("Serving metrics.", "addr", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				logutil.Fatal(logger, err, "Metrics endpoint failed.")
			}
		}()
	}

	tx, rx := mpsc.New[workItem](
		mpsc.WithLogger(logger),
		mpsc.WithMetrics(rec),
		mpsc.WithInitialCapacity((*producers)*(*perProducer)/8),
	)

	start := time.Now()
	var g errgroup.Group
	for id := range *producers {
		s := tx.Clone()
		g.Go(func() error {
			defer logger.V(logutil.DEBUG).Info("Producer finished.", "producer", id)
			for seq := range *perProducer {
				s.Send(workItem{
					id:       uuid.NewString(),
					producer: id,
					seq:      seq,
					sentAt:   time.Now(),
				})
			}
			return s.Close()
		})
	}
	// Release the constructor's handle; disconnection waits on the producer clones.
	if err := tx.Close(); err != nil {
		logutil.Fatal(logger, err, "Closing the root sender failed.")
	}

	// Consume in the main goroutine until the channel disconnects.
	received := 0
	var totalLatency time.Duration
	for {
		item, err := rx.Recv()
		if err != nil {
			logger.V(logutil.DEBUG).Info("Channel drained.", "err", err)
			break
		}
		received++
		totalLatency += time.Since(item.sentAt)
		logger.V(logutil.TRACE).Info("Received work item.",
			"id", item.id, "producer", item.producer, "seq", item.seq)
	}

	if err := g.Wait(); err != nil {
		logutil.Fatal(logger, err, "A producer failed.")
	}

	elapsed := time.Since(start)
	expected := *producers * *perProducer
	logger.Info("Run complete.",
		"received", received,
		"expected", expected,
		"elapsed", elapsed,
		"valuesPerSecond", int(float64(received)/elapsed.Seconds()),
		"meanHandoffLatency", totalLatency/time.Duration(max(received, 1)),
	)
	if received != expected {
		logutil.Fatal(logger, nil, "Value count mismatch.", "received", received, "expected", expected)
	}
}

// newLogger builds a dev-mode zap logger bridged to logr, with logr V-levels up to `verbosity` enabled.
func newLogger(verbosity int) logr.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	zl, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return zapr.NewLogger(zl)
}
