package app

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"
)

var errWorkerExited = errors.New("worker exited unexpectedly")

// supervise keeps run alive until ctx is done, waiting RestartDelay
// between a failure and the next attempt.
func (a *App) supervise(ctx context.Context, name string, run func(context.Context) error) error {
	log := a.log.WithField("worker", name)

	for {
		a.status.Started(name)
		err := safeRun(ctx, run)
		if ctx.Err() != nil {
			a.status.Stopped(name, nil)
			return nil
		}
		if err == nil {
			err = errWorkerExited
		}
		a.status.Stopped(name, err)

		log.WithError(err).WithField("restart_in", a.cfg.RestartDelay.String()).
			Error("worker failed")

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(a.cfg.RestartDelay.Duration):
		}
	}
}

func safeRun(ctx context.Context, run func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
	}()
	return run(ctx)
}
