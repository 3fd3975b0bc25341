package shutdown

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	order []string
}

func (r *recorder) add(name string) Func {
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.order = append(r.order, name)
	}
}

func TestManager_ShutdownReverseOrder(t *testing.T) {
	rec := &recorder{}
	m := NewManager(nil)
	m.Register(rec.add("quit"))
	m.Register(rec.add("lifecycle"))

	m.Shutdown()

	assert.Equal(t, []string{"lifecycle", "quit"}, rec.order)
	assert.Error(t, m.ctx.Err())
}

func TestManager_ShutdownOnce(t *testing.T) {
	var calls int
	m := NewManager(nil)
	m.Register(Func(func() { calls++ }))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Shutdown()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
}

func TestManager_SlowComponentTimesOut(t *testing.T) {
	block := make(chan struct{})
	defer close(block)

	rec := &recorder{}
	m := NewManager(nil)
	m.SetTimeout(20 * time.Millisecond)
	m.Register(rec.add("after"))
	m.Register(Func(func() { <-block }))

	start := time.Now()
	m.Shutdown()

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, []string{"after"}, rec.order)
}

func TestManager_ReleaseSkipsComponents(t *testing.T) {
	var calls int
	m := NewManager(nil)
	m.Register(Func(func() { calls++ }))
	m.Listen()

	m.Release()

	require.Error(t, m.ctx.Err())
	assert.Zero(t, calls)

	// a later Shutdown still runs the components
	m.Shutdown()
	assert.Equal(t, 1, calls)
}
