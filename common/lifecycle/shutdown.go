package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/narender/product-console/common/config"
	"github.com/sirupsen/logrus"
)

// Task is one step of an ordered shutdown.
type Task struct {
	Name     string
	Timeout  time.Duration
	Shutdown func(context.Context) error
}

// WaitForGracefulShutdown blocks until SIGINT/SIGTERM arrives or ctx is done,
// then shuts down the server and telemetry in that order.
func WaitForGracefulShutdown(ctx context.Context, cfg *config.Config, server Shutdowner, telemetryShutdown func(context.Context) error) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logrus.WithField("cause", context.Cause(ctx)).Info("Shutdown requested, initiating graceful shutdown...")

	var serverShutdown func(context.Context) error
	if server != nil {
		serverShutdown = server.Shutdown
	}
	return RunShutdown(cfg.ShutdownTotalTimeout, []Task{
		{Name: "server", Timeout: cfg.ShutdownServerTimeout, Shutdown: serverShutdown},
		{Name: "telemetry", Timeout: cfg.ShutdownOtelMinTimeout, Shutdown: telemetryShutdown},
	})
}

// RunShutdown runs tasks sequentially, each bounded by its own timeout and
// all of them by total. Remaining tasks are skipped once total expires.
func RunShutdown(total time.Duration, tasks []Task) error {
	logger := logrus.StandardLogger()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), total)
	defer cancel()

	var shutdownErrs error
	for _, task := range tasks {
		if task.Shutdown == nil {
			logger.Debugf("Skipping shutdown for %s (nil function)", task.Name)
			continue
		}

		taskCtx, taskCancel := context.WithTimeout(shutdownCtx, task.Timeout)
		logger.Infof("Attempting to shut down %s (timeout: %s)...", task.Name, task.Timeout)
		if err := task.Shutdown(taskCtx); err != nil {
			logger.WithError(err).Errorf("Error during %s shutdown", task.Name)
			shutdownErrs = errors.Join(shutdownErrs, fmt.Errorf("%s shutdown error: %w", task.Name, err))
		} else {
			logger.Infof("%s shutdown complete", task.Name)
		}
		taskCancel()

		if shutdownCtx.Err() != nil {
			logger.Warnf("Overall shutdown timeout (%s) exceeded during %s shutdown. Aborting further steps.", total, task.Name)
			if !errors.Is(shutdownErrs, context.DeadlineExceeded) {
				shutdownErrs = errors.Join(shutdownErrs, fmt.Errorf("overall shutdown timeout exceeded: %w", shutdownCtx.Err()))
			}
			break
		}
	}

	if shutdownErrs != nil {
		logger.WithError(shutdownErrs).Error("Application shutdown completed with errors")
		return shutdownErrs
	}
	logger.Info("Application shutdown completed successfully")
	return nil
}

// ExitCode maps the shutdown result to a process exit status.
func ExitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

