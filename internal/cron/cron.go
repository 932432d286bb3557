package cron

import (
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/partnerhub/iis-host/internal/repository/service"
	"github.com/partnerhub/iis-host/pkg/logger"
)

// Manager runs the periodic repository root check
type Manager struct {
	cron   *cron.Cron
	logger *logger.Logger
	roots  service.RootResolver
	path   string

	mu        sync.Mutex
	checked   bool
	available bool
}

// NewManager creates a new cron manager watching the given root
func NewManager(logger *logger.Logger, roots service.RootResolver, path string) *Manager {
	return &Manager{
		cron:   cron.New(cron.WithLogger(cron.DefaultLogger)),
		logger: logger,
		roots:  roots,
		path:   path,
	}
}

// Start schedules the root check with the given cron spec. An empty spec disables it.
func (m *Manager) Start(spec string) error {
	if spec == "" {
		m.logger.Info("Repository root watch disabled")
		return nil
	}

	if _, err := m.cron.AddFunc(spec, m.CheckRoot); err != nil {
		return err
	}

	m.cron.Start()
	m.logger.Info("Cron manager started (root watch %q)", spec)
	return nil
}

// Stop stops the cron manager and waits for a running check to finish
func (m *Manager) Stop() {
	<-m.cron.Stop().Done()
	m.logger.Info("Cron manager stopped")
}

// CheckRoot resolves the root and logs when its availability changes.
func (m *Manager) CheckRoot() {
	_, ok := m.roots.Resolve()

	m.mu.Lock()
	changed := !m.checked || ok != m.available
	m.checked = true
	m.available = ok
	m.mu.Unlock()

	if !changed {
		return
	}
	if ok {
		m.logger.Available("Repository root %s is available", m.path)
	} else {
		m.logger.Unavailable("Repository root %s is not available", m.path)
	}
}

// Available reports the result of the last check
func (m *Manager) Available() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.available
}
