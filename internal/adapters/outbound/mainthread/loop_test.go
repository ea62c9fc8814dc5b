package mainthread_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abdidvp/assetkraft/internal/adapters/outbound/mainthread"
	"github.com/abdidvp/assetkraft/internal/adapters/outbound/memgraph"
	"github.com/abdidvp/assetkraft/internal/domain"
)

func startLoop(t *testing.T, log *zap.Logger) (*mainthread.Loop, context.CancelFunc, <-chan struct{}) {
	t.Helper()
	loop := mainthread.New(time.Millisecond, log)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = loop.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return loop, cancel, done
}

func TestLoop_DoRunsOnLoopGoroutine(t *testing.T) {
	loop, _, _ := startLoop(t, nil)

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := loop.Do(context.Background(), func() error {
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	assert.Len(t, order, 20)
}

func TestLoop_DoReturnsTaskError(t *testing.T) {
	loop, _, _ := startLoop(t, nil)
	boom := errors.New("boom")
	assert.ErrorIs(t, loop.Do(context.Background(), func() error { return boom }), boom)
}

func TestLoop_RecoversPanics(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	loop, _, _ := startLoop(t, zap.New(core))

	err := loop.Do(context.Background(), func() error { panic("bad task") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad task")
	assert.Equal(t, 1, logs.FilterMessage("main thread task panicked").Len())

	assert.NoError(t, loop.Do(context.Background(), func() error { return nil }))
}

func TestLoop_StoppedRejectsWork(t *testing.T) {
	loop, cancel, done := startLoop(t, nil)
	cancel()
	<-done

	err := loop.Do(context.Background(), func() error { return nil })
	assert.ErrorIs(t, err, mainthread.ErrStopped)
}

func TestLoop_Apply(t *testing.T) {
	loop, _, _ := startLoop(t, nil)
	g := memgraph.New().AddObject(domain.Object{Name: "Body", Type: domain.ObjectTypeMesh, Scale: domain.Vector3{2, 2, 2}})

	require.NoError(t, loop.Apply(context.Background(), g, domain.SetProperty(domain.KindObject, "Body", domain.PropScale, domain.UnitScale)))

	var body domain.Object
	require.NoError(t, loop.Do(context.Background(), func() error {
		var err error
		body, err = g.Object("Body")
		return err
	}))
	assert.Equal(t, domain.UnitScale, body.Scale)

	err := loop.Apply(context.Background(), g, domain.Remove(domain.KindObject, "Body"))
	assert.ErrorIs(t, err, domain.ErrInvalidCommand)
}

func TestNew_DefaultInterval(t *testing.T) {
	assert.NotNil(t, mainthread.New(0, nil))
	assert.Equal(t, 20*time.Millisecond, mainthread.DefaultInterval)
}
