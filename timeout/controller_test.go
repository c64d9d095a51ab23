// Copyright 2026 The Onereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onereq/onereq/onereqerr"
)

func newFiredCollector() (func(*onereqerr.Error), func() []*onereqerr.Error) {
	var mu sync.Mutex
	var fired []*onereqerr.Error
	onFire := func(e *onereqerr.Error) {
		mu.Lock()
		defer mu.Unlock()
		fired = append(fired, e)
	}
	get := func() []*onereqerr.Error {
		mu.Lock()
		defer mu.Unlock()
		return append([]*onereqerr.Error(nil), fired...)
	}
	return onFire, get
}

func TestArmRequestThenArmResponsePanics(t *testing.T) {
	onFire, _ := newFiredCollector()
	c := NewController(time.Hour, "http://example.com", onFire)
	c.ArmRequest()
	assert.Panics(t, func() { c.ArmResponse() })
}

func TestArmRequestTwicePanics(t *testing.T) {
	onFire, _ := newFiredCollector()
	c := NewController(time.Hour, "http://example.com", onFire)
	c.ArmRequest()
	assert.Panics(t, func() { c.ArmRequest() })
}

func TestClearWithoutArmIsNoop(t *testing.T) {
	onFire, _ := newFiredCollector()
	c := NewController(time.Hour, "http://example.com", onFire)
	assert.NotPanics(t, func() { c.ClearRequest() })
	assert.False(t, c.Armed())
}

func TestRefreshWrongPhaseIsNoop(t *testing.T) {
	onFire, _ := newFiredCollector()
	c := NewController(time.Hour, "http://example.com", onFire)
	c.ArmRequest()
	assert.NotPanics(t, func() { c.RefreshResponse() })
	assert.True(t, c.Armed())
}

func TestClearStopsFiring(t *testing.T) {
	onFire, get := newFiredCollector()
	c := NewController(20*time.Millisecond, "http://example.com", onFire)
	c.ArmRequest()
	c.ClearRequest()
	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, get())
	assert.False(t, c.Armed())
}

func TestRequestPhaseFiresRequestTimedOut(t *testing.T) {
	onFire, get := newFiredCollector()
	c := NewController(10*time.Millisecond, "http://example.com:80", onFire)
	c.ArmRequest()
	require.Eventually(t, func() bool { return len(get()) == 1 }, time.Second, time.Millisecond)
	got := get()[0]
	assert.Equal(t, onereqerr.HttpRequestTimedOut, got.Kind)
	assert.Equal(t, "http://example.com:80", got.Origin)
	assert.False(t, c.Armed())
}

func TestResponsePhaseFiresResponseTimedOut(t *testing.T) {
	onFire, get := newFiredCollector()
	c := NewController(10*time.Millisecond, "http://example.com:80", onFire)
	c.ArmResponse()
	require.Eventually(t, func() bool { return len(get()) == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, onereqerr.HttpResponseTimedOut, get()[0].Kind)
}

func TestRefreshRestartsCountdown(t *testing.T) {
	onFire, get := newFiredCollector()
	c := NewController(40*time.Millisecond, "http://example.com", onFire)
	c.ArmRequest()
	// Refresh repeatedly, always before the timer would have fired,
	// and confirm it never does.
	for i := 0; i < 3; i++ {
		time.Sleep(20 * time.Millisecond)
		c.RefreshRequest()
	}
	assert.Empty(t, get())
	c.ClearRequest()
}

func TestRefreshRacingConcurrentFireIsNoop(t *testing.T) {
	onFire, get := newFiredCollector()
	c := NewController(10*time.Millisecond, "http://example.com", onFire)
	c.ArmRequest()
	require.Eventually(t, func() bool { return len(get()) == 1 }, time.Second, time.Millisecond)
	// The timer already fired and cleared itself; a caller that observed
	// the timer as armed just before that must not panic here.
	assert.NotPanics(t, func() { c.RefreshRequest() })
}

func TestClearRacingConcurrentFireIsNoop(t *testing.T) {
	onFire, get := newFiredCollector()
	c := NewController(10*time.Millisecond, "http://example.com", onFire)
	c.ArmRequest()
	require.Eventually(t, func() bool { return len(get()) == 1 }, time.Second, time.Millisecond)
	assert.NotPanics(t, func() { c.ClearRequest() })
}

func TestArmRequestThenResponseAfterClear(t *testing.T) {
	onFire, _ := newFiredCollector()
	c := NewController(time.Hour, "http://example.com", onFire)
	c.ArmRequest()
	c.ClearRequest()
	c.ArmResponse()
	assert.True(t, c.Armed())
	c.ClearResponse()
	assert.False(t, c.Armed())
}
