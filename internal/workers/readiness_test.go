// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Farabee

package workers

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jfarabee/signon/internal/logger"
	"github.com/jfarabee/signon/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type countingGate struct {
	opened atomic.Int32
}

func (g *countingGate) MarkReady() {
	g.opened.Add(1)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition never satisfied")
}

func TestReadinessProber_OpensGateOnFirstSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	providerAdapter := mock.NewMockProviderAdapter(ctrl)
	providerAdapter.EXPECT().CheckHealth(gomock.Any()).Return(nil)

	gate := &countingGate{}
	p := NewReadinessProber(providerAdapter, gate, 10*time.Millisecond, logger.Nop())

	p.Run()
	waitFor(t, func() bool { return gate.opened.Load() == 1 })
	p.Stop()

	assert.Equal(t, int32(1), gate.opened.Load())
}

func TestReadinessProber_RetriesUntilSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	providerAdapter := mock.NewMockProviderAdapter(ctrl)

	gomock.InOrder(
		providerAdapter.EXPECT().CheckHealth(gomock.Any()).Return(errors.New("connection refused")).Times(2),
		providerAdapter.EXPECT().CheckHealth(gomock.Any()).Return(nil),
	)

	gate := &countingGate{}
	p := NewReadinessProber(providerAdapter, gate, 10*time.Millisecond, logger.Nop())

	p.Run()
	waitFor(t, func() bool { return gate.opened.Load() == 1 })
	p.Stop()
}

func TestReadinessProber_StopBeforeSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	providerAdapter := mock.NewMockProviderAdapter(ctrl)
	providerAdapter.EXPECT().CheckHealth(gomock.Any()).Return(errors.New("connection refused")).AnyTimes()

	gate := &countingGate{}
	p := NewReadinessProber(providerAdapter, gate, 10*time.Millisecond, logger.Nop())

	p.Run()
	time.Sleep(30 * time.Millisecond)
	p.Stop()

	assert.Equal(t, int32(0), gate.opened.Load())

	// Stop is idempotent.
	require.NotPanics(t, func() { p.Stop() })
}

func TestWorkers_RunStartsEveryWorker(t *testing.T) {
	var ran atomic.Int32
	w := NewWorkers(workerFunc(func() { ran.Add(1) }), workerFunc(func() { ran.Add(1) }))

	w.Run()

	assert.Equal(t, int32(2), ran.Load())
}

type workerFunc func()

func (f workerFunc) Run() { f() }
