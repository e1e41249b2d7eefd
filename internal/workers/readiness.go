// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Farabee

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/jfarabee/signon/internal/adapter"
	"github.com/jfarabee/signon/internal/logger"
)

// probeTimeout bounds a single health probe so a hung provider cannot stall
// the polling loop.
const probeTimeout = 5 * time.Second

// ReadinessProber polls the provider health endpoint in the background until
// the first success, then opens the readiness gate exactly once and exits.
// Failed probes are logged and retried at the configured interval; the prober
// never reports readiness on anything other than a successful probe.
type ReadinessProber struct {
	adapter  adapter.ProviderAdapter
	gate     ReadinessGate
	log      *logger.Logger
	interval time.Duration

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func NewReadinessProber(providerAdapter adapter.ProviderAdapter, gate ReadinessGate, interval time.Duration, log *logger.Logger) *ReadinessProber {
	if interval <= 0 {
		interval = time.Second
	}
	return &ReadinessProber{
		adapter:  providerAdapter,
		gate:     gate,
		log:      log,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run starts the polling loop in its own goroutine and returns immediately.
func (p *ReadinessProber) Run() {
	go p.loop()
}

// Stop terminates the loop and waits for it to finish. Safe to call more
// than once and safe to call after the gate has already opened.
func (p *ReadinessProber) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
	<-p.done
}

func (p *ReadinessProber) loop() {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		if p.probe(attempt) {
			p.gate.MarkReady()
			return
		}

		select {
		case <-p.stop:
			return
		case <-ticker.C:
		}
	}
}

func (p *ReadinessProber) probe(attempt int) bool {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	if err := p.adapter.CheckHealth(ctx); err != nil {
		p.log.Debug().Int("attempt", attempt).Err(err).Msg("provider health probe failed")
		return false
	}

	p.log.Info().Int("attempt", attempt).Msg("provider health probe succeeded")
	return true
}
