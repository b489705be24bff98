package loader

import (
	"context"
	"sync"
	"time"

	"github.com/zjrosen/modelstore/internal/log"
	"github.com/zjrosen/modelstore/internal/pubsub"
	"github.com/zjrosen/modelstore/internal/registry"
	"github.com/zjrosen/modelstore/internal/watcher"
)

// Service keeps a store populated from an environment file.
//
// The store itself is single-threaded by contract, so the service never
// mutates a live store: a reload parses into a fresh store and swaps it in
// under the service lock. Readers going through the service always see a
// complete environment, never a half-loaded one.
//
// Service implements registry.ObjectProvider, so it can stand directly in a
// multiplexer chain.
type Service struct {
	mu     sync.RWMutex
	path   string
	store  *registry.Store
	broker *pubsub.Broker[int] // payload: number of objects after reload

	watch  *watcher.Watcher
	cancel context.CancelFunc
}

// Compile-time check that the service resolves identifiers like any provider.
var _ registry.ObjectProvider = (*Service)(nil)

// NewService loads the environment file at path and returns a service
// backed by it.
func NewService(path string) (*Service, error) {
	store, err := NewStoreFromFile(path)
	if err != nil {
		return nil, err
	}
	return &Service{
		path:   path,
		store:  store,
		broker: pubsub.NewBroker[int](),
	}, nil
}

// Store returns the current store. The returned store must not be mutated
// while the service is watching; use Reload to refresh contents.
func (s *Service) Store() *registry.Store {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store
}

// GetIdentifiable resolves an identifier against the current store.
func (s *Service) GetIdentifiable(identifier string) (registry.Identifiable, error) {
	return s.Store().GetIdentifiable(identifier)
}

// Reload re-reads the environment file and swaps in a fresh store.
// On failure the previous store stays in place.
func (s *Service) Reload() error {
	store, err := NewStoreFromFile(s.path)
	if err != nil {
		log.ErrorErr(log.CatLoader, "environment reload failed, keeping previous store", err, "path", s.path)
		return err
	}

	s.mu.Lock()
	s.store = store
	s.mu.Unlock()

	s.broker.Publish(pubsub.ReloadedEvent, store.Len())
	return nil
}

// Subscribe returns a channel of reload events.
// The subscription is cleaned up when the context is cancelled.
func (s *Service) Subscribe(ctx context.Context) <-chan pubsub.Event[int] {
	return s.broker.Subscribe(ctx)
}

// StartWatching begins reloading the store whenever the environment file
// changes on disk, debounced by the given duration.
func (s *Service) StartWatching(debounce time.Duration) error {
	w, err := watcher.New(watcher.Config{Path: s.path, DebounceDur: debounce})
	if err != nil {
		return err
	}
	onChange, err := w.Start()
	if err != nil {
		_ = w.Stop()
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.watch = w
	s.cancel = cancel

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-onChange:
				if !ok {
					return
				}
				log.Debug(log.CatWatcher, "environment file changed, reloading", "path", s.path)
				_ = s.Reload()
			}
		}
	}()

	return nil
}

// Close stops watching and shuts down the reload broker.
func (s *Service) Close() error {
	if s.cancel != nil {
		s.cancel()
	}
	s.broker.Close()
	if s.watch != nil {
		return s.watch.Stop()
	}
	return nil
}
