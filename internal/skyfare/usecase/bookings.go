package usecase

import (
	"context"

	"github.com/dcazacu/goskyfare/internal/pkg/pkgerror"
	"github.com/dcazacu/goskyfare/internal/skyfare/entity"
)

type BookingView struct {
	entity.Booking
	PriceDisplay string
}

// Book records a booking for the flight without seat selection. The
// store itself permits duplicates, so the already-booked guard lives
// here, on the calling side.
func (u *Usecase) Book(_ context.Context, flightID string) (*BookingView, error) {
	flight, ok := u.catalog.Find(flightID)
	if !ok {
		return nil, pkgerror.NewBusiness("flight not found", pkgerror.CodeNotFound)
	}
	if u.store.IsBooked(flightID) {
		return nil, pkgerror.NewBusiness("flight already booked", pkgerror.CodeConflict)
	}

	booking := u.store.AddBooking(flight)
	view := u.bookingView(booking)
	return &view, nil
}

// CancelBooking removes every booking for the flight id. Cancelling an
// id that is not booked is a no-op, not an error.
func (u *Usecase) CancelBooking(_ context.Context, flightID string) {
	u.store.RemoveBooking(flightID)
}

// Bookings returns the user's bookings in insertion order.
func (u *Usecase) Bookings(_ context.Context) []BookingView {
	bookings := u.store.Bookings()
	views := make([]BookingView, 0, len(bookings))
	for _, booking := range bookings {
		views = append(views, u.bookingView(booking))
	}
	return views
}

func (u *Usecase) bookingView(booking entity.Booking) BookingView {
	price := booking.Price
	if booking.TotalPrice > 0 {
		price = booking.TotalPrice
	}
	return BookingView{
		Booking:      booking,
		PriceDisplay: u.converter.Convert(price, u.store.Currency()),
	}
}
