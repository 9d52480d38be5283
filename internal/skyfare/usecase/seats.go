package usecase

import (
	"context"

	"github.com/dcazacu/goskyfare/internal/pkg/pkgerror"
	"github.com/dcazacu/goskyfare/internal/skyfare/entity"
	"github.com/dcazacu/goskyfare/internal/skyfare/notify"
	"github.com/dcazacu/goskyfare/internal/skyfare/seatmap"
)

type SeatView struct {
	entity.Seat
	PriceDisplay string
}

type SeatMapOutput struct {
	SessionID         string
	FlightID          string
	Currency          entity.Currency
	Seats             []SeatView
	Selected          []SeatView
	TotalPrice        int
	TotalPriceDisplay string
}

// OpenSeatMap generates a fresh layout for the flight and opens a
// selection session over it. Sessions expire after the configured TTL
// when abandoned.
func (u *Usecase) OpenSeatMap(_ context.Context, flightID string) (*SeatMapOutput, error) {
	flight, ok := u.catalog.Find(flightID)
	if !ok {
		return nil, pkgerror.NewBusiness("flight not found", pkgerror.CodeNotFound)
	}

	session := seatmap.NewSession(flight.ID, u.generator.Generate(flight.Price))
	sessionID := u.uid.Generate()
	u.sessions.Set(sessionID, session, u.sessionTTL)

	return u.seatMapOutput(sessionID, session), nil
}

// SeatMap returns the current state of an open session.
func (u *Usecase) SeatMap(_ context.Context, sessionID string) (*SeatMapOutput, error) {
	session, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}
	return u.seatMapOutput(sessionID, session), nil
}

// ToggleSeat flips one seat and returns the updated session state.
func (u *Usecase) ToggleSeat(_ context.Context, sessionID, seatID string) (*SeatMapOutput, error) {
	session, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}
	if _, _, err := session.Toggle(seatID); err != nil {
		return nil, err
	}
	return u.seatMapOutput(sessionID, session), nil
}

// ConfirmSeats finalizes the selection and books the flight with the
// chosen seats merged on. An empty selection aborts the booking and is
// surfaced through the notification sink.
func (u *Usecase) ConfirmSeats(ctx context.Context, sessionID string) (*BookingView, error) {
	session, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}

	selected, total, err := session.Confirm()
	if err != nil {
		if pkgerror.CodeOf(err) == pkgerror.CodeNoSelection {
			u.notifier.Notify(
				"No seats selected",
				"Please select at least one seat to continue.",
				notify.SeverityDestructive,
			)
		}
		return nil, err
	}

	flight, ok := u.catalog.Find(session.FlightID())
	if !ok {
		return nil, pkgerror.NewBusiness("flight not found", pkgerror.CodeNotFound)
	}
	if u.store.IsBooked(flight.ID) {
		return nil, pkgerror.NewBusiness("flight already booked", pkgerror.CodeConflict)
	}

	flight.SelectedSeats = selected
	flight.TotalPrice = total

	booking := u.store.AddBooking(flight)
	u.sessions.Delete(sessionID)

	view := u.bookingView(booking)
	return &view, nil
}

func (u *Usecase) session(sessionID string) (*seatmap.Session, error) {
	session, ok := u.sessions.Get(sessionID)
	if !ok {
		return nil, pkgerror.NewBusiness("seat map session not found", pkgerror.CodeNotFound)
	}
	return session, nil
}

func (u *Usecase) seatMapOutput(sessionID string, session *seatmap.Session) *SeatMapOutput {
	selected := u.store.Currency()
	total := session.TotalPrice()

	return &SeatMapOutput{
		SessionID:         sessionID,
		FlightID:          session.FlightID(),
		Currency:          selected,
		Seats:             u.seatViews(session.Seats(), selected),
		Selected:          u.seatViews(session.Selected(), selected),
		TotalPrice:        total,
		TotalPriceDisplay: u.converter.Convert(total, selected),
	}
}

func (u *Usecase) seatViews(seats []entity.Seat, currency entity.Currency) []SeatView {
	views := make([]SeatView, 0, len(seats))
	for _, seat := range seats {
		views = append(views, SeatView{
			Seat:         seat,
			PriceDisplay: u.converter.Convert(seat.Price, currency),
		})
	}
	return views
}
