package overwatch

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockService struct {
	name    string
	hash    string
	started chan struct{}
	stopC   chan struct{}
	once    sync.Once
	stopped bool
}

func newMockService(name, hash string) *mockService {
	return &mockService{name: name, hash: hash, started: make(chan struct{}), stopC: make(chan struct{})}
}

func (s *mockService) String() string {
	return s.name
}

func (s *mockService) Hash() string {
	return s.hash
}

func (s *mockService) Start() error {
	close(s.started)
	<-s.stopC
	return nil
}

func (s *mockService) Stop() error {
	s.once.Do(func() {
		s.stopped = true
		close(s.stopC)
	})
	return nil
}

func waitStarted(t *testing.T, s *mockService) {
	t.Helper()
	select {
	case <-s.started:
	case <-time.After(5 * time.Second):
		t.Fatalf("service %s was not started", s.name)
	}
}

func TestAppManager_AddReplace(t *testing.T) {
	finished := make(chan string, 4)
	m := NewAppManager(func(name string, err error) {
		assert.NoError(t, err)
		finished <- name
	})

	first := newMockService("cloudflare:example.com", "a")
	m.Add(first)
	waitStarted(t, first)

	// same hash, nothing happens
	same := newMockService("cloudflare:example.com", "a")
	m.Add(same)
	assert.False(t, first.stopped)
	require.Len(t, m.Services(), 1)
	assert.Same(t, first, m.Services()[0])

	changed := newMockService("cloudflare:example.com", "b")
	m.Add(changed)
	waitStarted(t, changed)
	assert.True(t, first.stopped)
	assert.Equal(t, "cloudflare:example.com", <-finished)
	assert.Same(t, changed, m.Services()[0])

	m.Shutdown()
	assert.True(t, changed.stopped)
	assert.Empty(t, m.Services())
}

func TestAppManager_Remove(t *testing.T) {
	m := NewAppManager(nil)
	a := newMockService("a", "1")
	b := newMockService("b", "1")
	m.Add(b)
	m.Add(a)
	waitStarted(t, a)
	waitStarted(t, b)

	services := m.Services()
	require.Len(t, services, 2)
	assert.Equal(t, "a", services[0].String())

	m.Remove("a")
	assert.True(t, a.stopped)
	assert.Len(t, m.Services(), 1)

	m.Remove("missing")
	m.Shutdown()
	assert.True(t, b.stopped)
}
