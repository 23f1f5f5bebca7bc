package services

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/ports"
)

// DefaultFavoritesKey is the storage key holding the serialized list.
const DefaultFavoritesKey = "pokemon-favorites"

// FavoritesListener is called with a snapshot of the list after it changes.
type FavoritesListener func(favorites []entities.Creature)

// FavoritesStore holds the saved creature list and mirrors it to a single
// durable key. Every change rewrites the whole list.
type FavoritesStore struct {
	store  ports.KeyValueStore
	key    string
	logger *zap.Logger

	mu        sync.Mutex
	favorites []entities.Creature

	listenersMu sync.Mutex
	listeners   map[int]FavoritesListener
	nextID      int
}

// NewFavoritesStore creates a store backed by the given key-value slot.
// Call Initialize before use.
func NewFavoritesStore(store ports.KeyValueStore, key string, logger *zap.Logger) *FavoritesStore {
	if key == "" {
		key = DefaultFavoritesKey
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FavoritesStore{
		store:     store,
		key:       key,
		logger:    logger.With(zap.String("favorites_key", key)),
		favorites: []entities.Creature{},
		listeners: make(map[int]FavoritesListener),
	}
}

// Initialize loads the previously stored list. Absent or corrupt data leaves
// the list empty; the failure is only logged.
func (s *FavoritesStore) Initialize(ctx context.Context) {
	loaded := s.load(ctx)

	s.mu.Lock()
	s.favorites = loaded
	s.mu.Unlock()
}

func (s *FavoritesStore) load(ctx context.Context) []entities.Creature {
	data, err := s.store.Get(ctx, s.key)
	if errors.Is(err, ports.ErrNotFound) {
		s.logger.Debug("no stored favorites")
		return []entities.Creature{}
	}
	if err != nil {
		s.logger.Warn("reading favorites", zap.Error(err))
		return []entities.Creature{}
	}

	var stored []entities.Creature
	if err := json.Unmarshal(data, &stored); err != nil {
		s.logger.Warn("discarding corrupt favorites", zap.Error(err))
		return []entities.Creature{}
	}

	// Keep the first occurrence of each id.
	out := make([]entities.Creature, 0, len(stored))
	seen := make(map[int]bool, len(stored))
	for _, c := range stored {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	return out
}

// List returns a copy of the current favorites in insertion order.
func (s *FavoritesStore) List() []entities.Creature {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.favorites)
}

// Len returns the number of favorites.
func (s *FavoritesStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.favorites)
}

// IsFavorite reports whether a creature with the id is saved.
func (s *FavoritesStore) IsFavorite(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(id) >= 0
}

// indexOf must be called with mu held.
func (s *FavoritesStore) indexOf(id int) int {
	return slices.IndexFunc(s.favorites, func(c entities.Creature) bool {
		return c.ID == id
	})
}

// Add appends the creature unless one with the same id is already saved.
// It reports whether the list changed.
func (s *FavoritesStore) Add(ctx context.Context, c entities.Creature) bool {
	s.mu.Lock()
	snapshot, ok := s.addLocked(ctx, c)
	s.mu.Unlock()

	if ok {
		s.notify(snapshot)
	}
	return ok
}

// Remove drops the creature with the id if present.
// It reports whether the list changed.
func (s *FavoritesStore) Remove(ctx context.Context, id int) bool {
	s.mu.Lock()
	snapshot, ok := s.removeLocked(ctx, id)
	s.mu.Unlock()

	if ok {
		s.notify(snapshot)
	}
	return ok
}

// Toggle removes the creature if saved, otherwise adds it.
// It reports whether the creature is a favorite afterwards.
func (s *FavoritesStore) Toggle(ctx context.Context, c entities.Creature) bool {
	s.mu.Lock()
	var snapshot []entities.Creature
	favorite := s.indexOf(c.ID) < 0
	if favorite {
		snapshot, _ = s.addLocked(ctx, c)
	} else {
		snapshot, _ = s.removeLocked(ctx, c.ID)
	}
	s.mu.Unlock()

	s.notify(snapshot)
	return favorite
}

// addLocked and removeLocked must be called with mu held. The write happens
// under the same lock so stored snapshots land in mutation order.
func (s *FavoritesStore) addLocked(ctx context.Context, c entities.Creature) ([]entities.Creature, bool) {
	if s.indexOf(c.ID) >= 0 {
		return nil, false
	}
	s.favorites = append(s.favorites, c)
	snapshot := slices.Clone(s.favorites)
	s.persist(ctx, snapshot)
	return snapshot, true
}

func (s *FavoritesStore) removeLocked(ctx context.Context, id int) ([]entities.Creature, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, false
	}
	s.favorites = slices.Delete(s.favorites, i, i+1)
	snapshot := slices.Clone(s.favorites)
	s.persist(ctx, snapshot)
	return snapshot, true
}

// Subscribe registers a listener called after every change.
// The returned function unregisters it.
func (s *FavoritesStore) Subscribe(fn FavoritesListener) func() {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.listenersMu.Lock()
		defer s.listenersMu.Unlock()
		delete(s.listeners, id)
	}
}

// notify runs listeners in registration order, outside mu.
func (s *FavoritesStore) notify(snapshot []entities.Creature) {
	s.listenersMu.Lock()
	listeners := make([]FavoritesListener, 0, len(s.listeners))
	for i := 0; i < s.nextID; i++ {
		if fn, ok := s.listeners[i]; ok {
			listeners = append(listeners, fn)
		}
	}
	s.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(slices.Clone(snapshot))
	}
}

// persist writes the whole list. A failed write is logged and dropped;
// the in-memory list keeps the change.
func (s *FavoritesStore) persist(ctx context.Context, snapshot []entities.Creature) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.Warn("encoding favorites", zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, s.key, data); err != nil {
		s.logger.Warn("writing favorites", zap.Error(err), zap.Int("count", len(snapshot)))
	}
}
