package inbound

import (
	"context"
	"net/http"

	"github.com/dcazacu/goskyfare/internal/pkg/pkgrouter"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Health(_ context.Context, _ *http.Request) (any, error) {
	return StatusResponse{Status: "ok"}, nil
}

func (h *HTTPEndpoint) Search(ctx context.Context, r *http.Request) (any, error) {
	output, err := h.uc.Search(ctx, parseSearchInput(r))
	if err != nil {
		return nil, err
	}
	return mapSearchResponse(output), nil
}

func (h *HTTPEndpoint) Flight(ctx context.Context, r *http.Request) (any, error) {
	view, err := h.uc.Flight(ctx, pkgrouter.PathParam(r, "id"))
	if err != nil {
		return nil, err
	}
	return mapFlightResponse(*view), nil
}

func (h *HTTPEndpoint) Cities(ctx context.Context, _ *http.Request) (any, error) {
	return CitiesResponse{Cities: h.uc.Cities(ctx)}, nil
}

func (h *HTTPEndpoint) OpenSeatMap(ctx context.Context, r *http.Request) (any, error) {
	output, err := h.uc.OpenSeatMap(ctx, pkgrouter.PathParam(r, "id"))
	if err != nil {
		return nil, err
	}
	return mapSeatMapResponse(output), nil
}

func (h *HTTPEndpoint) SeatMap(ctx context.Context, r *http.Request) (any, error) {
	output, err := h.uc.SeatMap(ctx, pkgrouter.PathParam(r, "sid"))
	if err != nil {
		return nil, err
	}
	return mapSeatMapResponse(output), nil
}

func (h *HTTPEndpoint) ToggleSeat(ctx context.Context, r *http.Request) (any, error) {
	seatID, err := parseToggleSeatRequest(r)
	if err != nil {
		return nil, err
	}

	output, err := h.uc.ToggleSeat(ctx, pkgrouter.PathParam(r, "sid"), seatID)
	if err != nil {
		return nil, err
	}
	return mapSeatMapResponse(output), nil
}

func (h *HTTPEndpoint) ConfirmSeats(ctx context.Context, r *http.Request) (any, error) {
	view, err := h.uc.ConfirmSeats(ctx, pkgrouter.PathParam(r, "sid"))
	if err != nil {
		return nil, err
	}
	return mapBookingResponse(*view), nil
}

func (h *HTTPEndpoint) Bookings(ctx context.Context, _ *http.Request) (any, error) {
	views := h.uc.Bookings(ctx)
	bookings := make([]BookingResponse, 0, len(views))
	for _, view := range views {
		bookings = append(bookings, mapBookingResponse(view))
	}
	return BookingsResponse{Bookings: bookings}, nil
}

func (h *HTTPEndpoint) Book(ctx context.Context, r *http.Request) (any, error) {
	flightID, err := parseFlightIDRequest(r)
	if err != nil {
		return nil, err
	}

	view, err := h.uc.Book(ctx, flightID)
	if err != nil {
		return nil, err
	}
	return mapBookingResponse(*view), nil
}

func (h *HTTPEndpoint) CancelBooking(ctx context.Context, r *http.Request) (any, error) {
	h.uc.CancelBooking(ctx, pkgrouter.PathParam(r, "id"))
	return StatusResponse{Status: "cancelled"}, nil
}

func (h *HTTPEndpoint) Favorites(ctx context.Context, _ *http.Request) (any, error) {
	views := h.uc.Favorites(ctx)
	favorites := make([]FavoriteResponse, 0, len(views))
	for _, view := range views {
		favorites = append(favorites, mapFavoriteResponse(view))
	}
	return FavoritesResponse{Favorites: favorites}, nil
}

func (h *HTTPEndpoint) ToggleFavorite(ctx context.Context, r *http.Request) (any, error) {
	flightID, err := parseFlightIDRequest(r)
	if err != nil {
		return nil, err
	}

	status, err := h.uc.ToggleFavorite(ctx, flightID)
	if err != nil {
		return nil, err
	}
	return FavoriteStatusResponse{FlightID: status.FlightID, Favorite: status.Favorite}, nil
}

func (h *HTTPEndpoint) Currency(ctx context.Context, _ *http.Request) (any, error) {
	return mapCurrencyResponse(h.uc.Currency(ctx)), nil
}

func (h *HTTPEndpoint) SetCurrency(ctx context.Context, r *http.Request) (any, error) {
	code, err := parseCurrencyRequest(r)
	if err != nil {
		return nil, err
	}

	output, err := h.uc.SetCurrency(ctx, code)
	if err != nil {
		return nil, err
	}
	return mapCurrencyResponse(output), nil
}
