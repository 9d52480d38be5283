package seatmap

import (
	"sync"

	"github.com/dcazacu/goskyfare/internal/pkg/pkgerror"
	"github.com/dcazacu/goskyfare/internal/skyfare/entity"
)

// Session tracks seat selection over one generated layout. It lives in
// memory only; an abandoned session is discarded, never persisted.
type Session struct {
	mu       sync.Mutex
	flightID string
	seats    []entity.Seat
	index    map[string]int
}

func NewSession(flightID string, seats []entity.Seat) *Session {
	index := make(map[string]int, len(seats))
	for i, seat := range seats {
		index[seat.ID] = i
	}
	return &Session{flightID: flightID, seats: seats, index: index}
}

func (s *Session) FlightID() string {
	return s.flightID
}

func (s *Session) Seats() []entity.Seat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copySeats()
}

// Toggle flips a seat between available and selected. Occupied seats
// never change. It returns the updated layout and the selected subset.
func (s *Session) Toggle(seatID string) ([]entity.Seat, []entity.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[seatID]
	if !ok {
		return nil, nil, pkgerror.NewBusiness("seat not found", pkgerror.CodeNotFound)
	}

	switch s.seats[i].Status {
	case entity.SeatAvailable:
		s.seats[i].Status = entity.SeatSelected
	case entity.SeatSelected:
		s.seats[i].Status = entity.SeatAvailable
	case entity.SeatOccupied:
		// terminal for the lifetime of the map
	}

	return s.copySeats(), s.selected(), nil
}

func (s *Session) Selected() []entity.Seat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected()
}

// TotalPrice is the sum of the prices of the currently selected seats.
func (s *Session) TotalPrice() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalPrice(s.selected())
}

// Confirm finalizes the selection, returning the selected seats and
// their total price. Confirming with nothing selected is a business
// error surfaced to the user, not a fatal condition.
func (s *Session) Confirm() ([]entity.Seat, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected := s.selected()
	if len(selected) == 0 {
		return nil, 0, pkgerror.NewBusiness("no seats selected", pkgerror.CodeNoSelection)
	}
	return selected, totalPrice(selected), nil
}

func (s *Session) copySeats() []entity.Seat {
	out := make([]entity.Seat, len(s.seats))
	copy(out, s.seats)
	return out
}

func (s *Session) selected() []entity.Seat {
	selected := make([]entity.Seat, 0, len(s.seats))
	for _, seat := range s.seats {
		if seat.Status == entity.SeatSelected {
			selected = append(selected, seat)
		}
	}
	return selected
}

func totalPrice(selected []entity.Seat) int {
	total := 0
	for _, seat := range selected {
		total += seat.Price
	}
	return total
}
