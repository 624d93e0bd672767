package circuit_breaker_test

import (
	"testing"
	"time"

	"github.com/campuskit/lending-service/pkg/circuit_breaker"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()

	serviceErr := errors.New("service error")
	failing := func() error { return serviceErr }
	successful := func() error { return nil }

	t.Run("opens after failure percentile and rejects fast", func(t *testing.T) {
		t.Parallel()
		cb := circuit_breaker.New(10, time.Minute, 0.5, 2)

		for i := 0; i < 5; i++ {
			require.NoError(t, cb.Call(successful))
		}
		for i := 0; i < 5; i++ {
			require.ErrorIs(t, cb.Call(failing), serviceErr)
		}
		// tail is now 50% failures: breaker is open, calls short-circuit
		require.ErrorIs(t, cb.Call(successful), circuit_breaker.ErrOpenCB)
	})

	t.Run("half-open recovers after enough successes", func(t *testing.T) {
		t.Parallel()
		cb := circuit_breaker.New(4, 10*time.Millisecond, 0.5, 1)

		for i := 0; i < 4; i++ {
			require.ErrorIs(t, cb.Call(failing), serviceErr)
		}
		require.ErrorIs(t, cb.Call(successful), circuit_breaker.ErrOpenCB)

		time.Sleep(20 * time.Millisecond)

		// half-open: calls pass through again and close the breaker
		require.NoError(t, cb.Call(successful))
		require.NoError(t, cb.Call(successful))
		require.NoError(t, cb.Call(successful))
	})

	t.Run("half-open failure reopens", func(t *testing.T) {
		t.Parallel()
		cb := circuit_breaker.New(4, 10*time.Millisecond, 0.5, 2)

		for i := 0; i < 4; i++ {
			require.ErrorIs(t, cb.Call(failing), serviceErr)
		}
		time.Sleep(20 * time.Millisecond)

		require.ErrorIs(t, cb.Call(failing), serviceErr)
		require.ErrorIs(t, cb.Call(successful), circuit_breaker.ErrOpenCB)
	})

	t.Run("reset closes the breaker", func(t *testing.T) {
		t.Parallel()
		cb := circuit_breaker.New(4, time.Minute, 0.5, 2)

		for i := 0; i < 4; i++ {
			require.ErrorIs(t, cb.Call(failing), serviceErr)
		}
		require.ErrorIs(t, cb.Call(successful), circuit_breaker.ErrOpenCB)

		cb.Reset()
		require.NoError(t, cb.Call(successful))
	})
}
