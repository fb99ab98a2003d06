package shutdown

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"volume-tracker/internal/logger"
)

type recorder struct {
	name  string
	mu    *sync.Mutex
	order *[]string
	delay time.Duration
}

func (r recorder) Shutdown() {
	time.Sleep(r.delay)
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.order = append(*r.order, r.name)
}

func TestShutdownReverseOrder(t *testing.T) {
	var (
		mu    sync.Mutex
		order []string
	)
	m := NewManager(logger.Nop())
	m.Register(recorder{name: "service", mu: &mu, order: &order})
	m.Register(recorder{name: "controller", mu: &mu, order: &order})

	m.Shutdown()

	assert.Equal(t, []string{"controller", "service"}, order)
	assert.Error(t, m.Context().Err())
	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownRunsOnce(t *testing.T) {
	var (
		mu    sync.Mutex
		order []string
	)
	m := NewManager(logger.Nop())
	m.Register(recorder{name: "service", mu: &mu, order: &order})

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"service"}, order)
}

func TestShutdownTimeoutMovesOn(t *testing.T) {
	var (
		mu    sync.Mutex
		order []string
	)
	m := NewManager(logger.Nop())
	m.SetTimeout(10 * time.Millisecond)
	m.Register(recorder{name: "fast", mu: &mu, order: &order})
	m.Register(recorder{name: "slow", mu: &mu, order: &order, delay: 200 * time.Millisecond})

	start := time.Now()
	m.Shutdown()

	assert.Less(t, time.Since(start), 150*time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"fast"}, order)
}
