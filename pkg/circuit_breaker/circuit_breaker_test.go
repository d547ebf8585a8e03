package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/reading-tracker/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()
	successfulService := func() error {
		return nil
	}
	errService := errors.New("service error")
	failingService := func() error {
		return errService
	}

	tests := []struct {
		name      string
		cfg       circuit_breaker.Config
		calls     []func() error
		wait      time.Duration
		after     []func() error
		wantState circuit_breaker.Status
		wantErr   error
	}{
		{
			name:      "stays closed on success",
			cfg:       circuit_breaker.Config{RecordLength: 4, Timeout: time.Second, Percentile: 0.5, RecoveryRequests: 1},
			calls:     []func() error{successfulService, successfulService, successfulService},
			wantState: circuit_breaker.Closed,
		},
		{
			name:      "opens when failures reach percentile",
			cfg:       circuit_breaker.Config{RecordLength: 4, Timeout: time.Minute, Percentile: 0.5, RecoveryRequests: 1},
			calls:     []func() error{failingService, failingService},
			after:     []func() error{successfulService},
			wantState: circuit_breaker.Open,
			wantErr:   circuit_breaker.ErrOpenCB,
		},
		{
			name:      "half-open success closes",
			cfg:       circuit_breaker.Config{RecordLength: 2, Timeout: 10 * time.Millisecond, Percentile: 0.5, RecoveryRequests: 1},
			calls:     []func() error{failingService},
			wait:      20 * time.Millisecond,
			after:     []func() error{successfulService},
			wantState: circuit_breaker.Closed,
		},
		{
			name:      "half-open failure reopens",
			cfg:       circuit_breaker.Config{RecordLength: 2, Timeout: 10 * time.Millisecond, Percentile: 0.5, RecoveryRequests: 1},
			calls:     []func() error{failingService},
			wait:      20 * time.Millisecond,
			after:     []func() error{failingService},
			wantState: circuit_breaker.Open,
			wantErr:   errService,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cb := circuit_breaker.New(tt.cfg)
			for _, call := range tt.calls {
				_ = cb.Call(call)
			}
			time.Sleep(tt.wait)
			var err error
			for _, call := range tt.after {
				err = cb.Call(call)
			}
			require.ErrorIs(t, err, tt.wantErr)
			require.Equal(t, tt.wantState, cb.State())
		})
	}
}

func Test_circuitBreaker_Reset(t *testing.T) {
	t.Parallel()
	cb := circuit_breaker.New(circuit_breaker.Config{RecordLength: 1, Timeout: time.Minute, Percentile: 1, RecoveryRequests: 1})
	_ = cb.Call(func() error { return errors.New("boom") })
	require.Equal(t, circuit_breaker.Open, cb.State())

	cb.Reset()
	require.Equal(t, circuit_breaker.Closed, cb.State())
	require.NoError(t, cb.Call(func() error { return nil }))
}
