// Package mainthread serialises scene graph work onto the single goroutine that
// owns the graph. Work is queued from any goroutine and drained on a fixed tick.
package mainthread

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abdidvp/assetkraft/internal/domain"
)

// DefaultInterval is the drain period used when none is configured.
const DefaultInterval = 20 * time.Millisecond

// ErrStopped is returned for work submitted after the loop has stopped.
var ErrStopped = errors.New("main thread loop stopped")

type task struct {
	fn   func() error
	done chan error
}

// Loop drains queued work on its owner goroutine.
type Loop struct {
	interval time.Duration
	queue    chan task
	stopped  chan struct{}
	log      *zap.Logger
}

// New creates a loop. Run must be called on the goroutine that owns the graph.
func New(interval time.Duration, log *zap.Logger) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{
		interval: interval,
		queue:    make(chan task, 64),
		stopped:  make(chan struct{}),
		log:      log,
	}
}

// Run polls the queue every interval until ctx is done. Work already queued when
// ctx ends is drained before Run returns.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	defer close(l.stopped)

	for {
		select {
		case <-ctx.Done():
			l.drain()
			return nil
		case <-ticker.C:
			l.drain()
		}
	}
}

func (l *Loop) drain() {
	for {
		select {
		case t := <-l.queue:
			t.done <- l.run(t.fn)
		default:
			return
		}
	}
}

func (l *Loop) run(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error("main thread task panicked", zap.Any("panic", r))
			err = fmt.Errorf("main thread task panicked: %v", r)
		}
	}()
	return fn()
}

// Do queues fn and waits for the owner goroutine to run it. A batch runs to
// completion once started; ctx only bounds the wait for it to start.
func (l *Loop) Do(ctx context.Context, fn func() error) error {
	t := task{fn: fn, done: make(chan error, 1)}

	select {
	case l.queue <- t:
	case <-l.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-t.done:
		return err
	case <-l.stopped:
		// Run drains before closing stopped, so the result may already be there.
		select {
		case err := <-t.done:
			return err
		default:
			return ErrStopped
		}
	}
}

// Apply queues a typed command against graph on the owner goroutine.
func (l *Loop) Apply(ctx context.Context, graph domain.SceneGraph, cmd domain.Command) error {
	return l.Do(ctx, func() error {
		l.log.Debug("applying command", zap.Stringer("command", cmd))
		return graph.Apply(cmd)
	})
}
