// Package store owns the user's bookings, favorites and display
// currency. It is the source of truth for membership queries and
// writes every mutation through to durable storage before notifying
// subscribers.
package store

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/dcazacu/goskyfare/internal/skyfare/entity"
)

const (
	keyBookings  = "bookings"
	keyFavorites = "favorites"
	keyCurrency  = "currency"
)

type Store struct {
	mu        sync.RWMutex
	storage   Storage
	bookings  []entity.Booking
	favorites []entity.Favorite
	currency  entity.Currency
	now       func() time.Time

	listenerMu   sync.Mutex
	listeners    map[int]func()
	nextListener int
}

// New loads prior state from storage. Absent or malformed values mean
// a fresh start, never a failure.
func New(storage Storage) *Store {
	s := &Store{
		storage:   storage,
		currency:  entity.CurrencyUSD,
		now:       time.Now,
		listeners: make(map[int]func()),
	}
	s.load()
	return s
}

func (s *Store) load() {
	loadSequence(s.storage, keyBookings, &s.bookings)
	loadSequence(s.storage, keyFavorites, &s.favorites)

	raw, ok, err := s.storage.Get(keyCurrency)
	if err != nil {
		slog.Warn("read persisted currency failed, using default", "error", err)
		return
	}
	if !ok {
		return
	}
	currency, valid := entity.ParseCurrency(raw)
	if !valid {
		slog.Warn("unrecognized persisted currency, using default", "value", raw)
	}
	s.currency = currency
}

func loadSequence[T any](storage Storage, key string, target *[]T) {
	raw, ok, err := storage.Get(key)
	if err != nil {
		slog.Warn("read persisted state failed, starting empty", "key", key, "error", err)
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		slog.Warn("malformed persisted state, starting empty", "key", key, "error", err)
		*target = nil
	}
}

// Bookings returns the bookings in insertion order.
func (s *Store) Bookings() []entity.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *Store) Favorites() []entity.Favorite {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Favorite, len(s.favorites))
	copy(out, s.favorites)
	return out
}

// AddBooking appends a booking stamped with the current time. The
// store stays permissive about duplicates; callers that want
// uniqueness check IsBooked first, as the search UI does.
func (s *Store) AddBooking(flight entity.Flight) entity.Booking {
	s.mu.Lock()
	booking := entity.Booking{Flight: flight, BookedAt: s.now()}
	s.bookings = append(s.bookings, booking)
	s.persist(keyBookings, s.bookings)
	s.mu.Unlock()

	s.notify()
	return booking
}

// RemoveBooking drops every booking with the given flight id. Removing
// an id that is not booked is a no-op.
func (s *Store) RemoveBooking(flightID string) {
	s.mu.Lock()
	kept := s.bookings[:0]
	for _, booking := range s.bookings {
		if booking.ID != flightID {
			kept = append(kept, booking)
		}
	}
	s.bookings = kept
	s.persist(keyBookings, s.bookings)
	s.mu.Unlock()

	s.notify()
}

// ToggleFavorite adds the flight to favorites, or removes it when
// already present. Returns whether the flight is a favorite afterwards.
func (s *Store) ToggleFavorite(flight entity.Flight) bool {
	s.mu.Lock()
	removed := false
	kept := s.favorites[:0]
	for _, favorite := range s.favorites {
		if favorite.ID == flight.ID {
			removed = true
			continue
		}
		kept = append(kept, favorite)
	}
	s.favorites = kept
	if !removed {
		s.favorites = append(s.favorites, entity.Favorite{Flight: flight, FavoritedAt: s.now()})
	}
	s.persist(keyFavorites, s.favorites)
	s.mu.Unlock()

	s.notify()
	return !removed
}

func (s *Store) IsBooked(flightID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, booking := range s.bookings {
		if booking.ID == flightID {
			return true
		}
	}
	return false
}

func (s *Store) IsFavorite(flightID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, favorite := range s.favorites {
		if favorite.ID == flightID {
			return true
		}
	}
	return false
}

func (s *Store) Currency() entity.Currency {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currency
}

func (s *Store) SetCurrency(currency entity.Currency) {
	s.mu.Lock()
	s.currency = currency
	if err := s.storage.Put(keyCurrency, string(currency)); err != nil {
		slog.Warn("persist currency failed", "error", err)
	}
	s.mu.Unlock()

	s.notify()
}

// Subscribe registers a listener invoked after each committed
// mutation. The returned function removes the listener.
func (s *Store) Subscribe(listener func()) func() {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()

	id := s.nextListener
	s.nextListener++
	s.listeners[id] = listener

	return func() {
		s.listenerMu.Lock()
		defer s.listenerMu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) persist(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		slog.Warn("serialize state failed", "key", key, "error", err)
		return
	}
	if err := s.storage.Put(key, string(data)); err != nil {
		slog.Warn("persist state failed", "key", key, "error", err)
	}
}

func (s *Store) notify() {
	s.listenerMu.Lock()
	listeners := make([]func(), 0, len(s.listeners))
	for _, listener := range s.listeners {
		listeners = append(listeners, listener)
	}
	s.listenerMu.Unlock()

	for _, listener := range listeners {
		listener()
	}
}
