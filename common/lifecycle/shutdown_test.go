package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/narender/product-console/common/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRunShutdownOrderAndErrors(t *testing.T) {
	var order []string
	boom := errors.New("flush failed")

	err := RunShutdown(time.Second, []Task{
		{Name: "server", Timeout: time.Second, Shutdown: func(context.Context) error { order = append(order, "server"); return nil }},
		{Name: "skipped", Timeout: time.Second},
		{Name: "telemetry", Timeout: time.Second, Shutdown: func(context.Context) error { order = append(order, "telemetry"); return boom }},
	})

	assert.Equal(t, []string{"server", "telemetry"}, order)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, ExitCode(err))
}

func TestRunShutdownTaskTimeout(t *testing.T) {
	err := RunShutdown(time.Second, []Task{
		{Name: "slow", Timeout: 10 * time.Millisecond, Shutdown: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}},
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWaitForGracefulShutdownOnContextCancel(t *testing.T) {
	cfg := config.NewDefaultConfig()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	server := &stubServer{}
	telemetryCalled := false
	err := WaitForGracefulShutdown(ctx, cfg, server, func(context.Context) error {
		telemetryCalled = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, server.called)
	assert.True(t, telemetryCalled)
	assert.Equal(t, 0, ExitCode(err))
}

type stubServer struct{ called bool }

func (s *stubServer) Shutdown(context.Context) error {
	s.called = true
	return nil
}

func TestFiberShutdownAdapterNilApp(t *testing.T) {
	assert.NoError(t, (&FiberShutdownAdapter{}).Shutdown(context.Background()))
}
