package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// ErrClosed is returned by stores that have been shut down
var ErrClosed = errors.New("cache is closed")

// Store is the cache-aside byte store used for serialized chart and summary payloads.
// A miss is (nil, false, nil); errors are reserved for store failures.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Cleaner is implemented by stores that hold expired entries until swept
type Cleaner interface {
	CleanExpired() int
}

// Manager periodically sweeps expired entries out of registered stores
type Manager struct {
	caches      []Cleaner
	stopCleanup chan struct{}
	cleanupDone chan struct{}
	started     bool
	logger      *slog.Logger
}

func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		caches:      make([]Cleaner, 0),
		stopCleanup: make(chan struct{}),
		cleanupDone: make(chan struct{}),
		logger:      logger,
	}
}

// Register adds a cache to the manager for cleanup
func (m *Manager) Register(cache Cleaner) {
	m.caches = append(m.caches, cache)
}

// StartCleanup begins periodic cleanup of all registered caches
func (m *Manager) StartCleanup(interval time.Duration) {
	m.started = true
	go m.cleanup(interval)
}

func (m *Manager) cleanup(interval time.Duration) {
	defer close(m.cleanupDone)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if cleaned := m.CleanNow(); cleaned > 0 {
				m.logger.Debug("cache cleanup removed expired entries", "count", cleaned)
			}
		case <-m.stopCleanup:
			return
		}
	}
}

// CleanNow sweeps every registered cache once and returns the number of removed entries
func (m *Manager) CleanNow() int {
	total := 0
	for _, c := range m.caches {
		total += c.CleanExpired()
	}
	return total
}

// Stop ends the cleanup routine started by StartCleanup
func (m *Manager) Stop() {
	select {
	case <-m.stopCleanup:
		return
	default:
	}
	close(m.stopCleanup)
	if m.started {
		<-m.cleanupDone
	}
}

// NoopStore never stores anything; used when caching is disabled
type NoopStore struct{}

func (NoopStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (NoopStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (NoopStore) Delete(ctx context.Context, key string) error {
	return nil
}
