package overwatch

import (
	"sort"
	"sync"

	"github.com/jxo-me/cfddns/core/service"
)

// ServiceCallback is a service notify it's run loop finished.
// the first parameter is the service name,
// the second parameter is an optional error if the service failed
type ServiceCallback func(string, error)

// AppManager runs at most one service per name. Replacing a service stops
// the old one before the new one starts, so two runs never overlap.
type AppManager struct {
	mu       sync.Mutex
	services map[string]service.IDDNSService
	callback ServiceCallback
}

// NewAppManager creates a new over-watched manager
func NewAppManager(callback ServiceCallback) Manager {
	return &AppManager{services: make(map[string]service.IDDNSService), callback: callback}
}

// Add takes in a new service to manage.
// It stops the service if it already exists in the manager and is running
// It then starts the newly added service
func (m *AppManager) Add(svc service.IDDNSService) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if current, ok := m.services[svc.String()]; ok {
		if current.Hash() == svc.Hash() {
			return // the exact same service, no changes, so move along
		}
		_ = current.Stop() // wait for the old run loop before starting the new one
	}
	m.services[svc.String()] = svc

	go m.serviceRun(svc)
}

// Remove shutdowns the service by name and removes it from its current management list
func (m *AppManager) Remove(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if current, ok := m.services[name]; ok {
		_ = current.Stop()
	}
	delete(m.services, name)
}

// Services returns all the current Services being managed, ordered by name
func (m *AppManager) Services() []service.IDDNSService {
	m.mu.Lock()
	defer m.mu.Unlock()

	values := make([]service.IDDNSService, 0, len(m.services))
	for _, value := range m.services {
		values = append(values, value)
	}
	sort.Slice(values, func(i, j int) bool {
		return values[i].String() < values[j].String()
	})
	return values
}

// Shutdown stops and removes every service.
func (m *AppManager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for name, svc := range m.services {
		_ = svc.Stop()
		delete(m.services, name)
	}
}

func (m *AppManager) serviceRun(svc service.IDDNSService) {
	err := svc.Start()
	if m.callback != nil {
		m.callback(svc.String(), err)
	}
}
