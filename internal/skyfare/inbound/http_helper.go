package inbound

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/dcazacu/goskyfare/internal/pkg/pkgerror"
	"github.com/dcazacu/goskyfare/internal/skyfare/entity"
	"github.com/dcazacu/goskyfare/internal/skyfare/usecase"
)

func parseSearchInput(r *http.Request) usecase.SearchInput {
	q := r.URL.Query()
	return usecase.SearchInput{
		From: strings.TrimSpace(q.Get("from")),
		To:   strings.TrimSpace(q.Get("to")),
		Date: strings.TrimSpace(q.Get("date")),
	}
}

func parseToggleSeatRequest(r *http.Request) (string, error) {
	var req ToggleSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", pkgerror.NewBusiness("invalid request body", pkgerror.CodeInvalidInput)
	}
	seatID := strings.TrimSpace(req.SeatID)
	if seatID == "" {
		return "", pkgerror.NewBusiness("seat_id is required", pkgerror.CodeInvalidInput)
	}
	return seatID, nil
}

func parseFlightIDRequest(r *http.Request) (string, error) {
	var req FlightIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", pkgerror.NewBusiness("invalid request body", pkgerror.CodeInvalidInput)
	}
	flightID := strings.TrimSpace(req.FlightID)
	if flightID == "" {
		return "", pkgerror.NewBusiness("flight_id is required", pkgerror.CodeInvalidInput)
	}
	return flightID, nil
}

func parseCurrencyRequest(r *http.Request) (string, error) {
	var req CurrencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", pkgerror.NewBusiness("invalid request body", pkgerror.CodeInvalidInput)
	}
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return "", pkgerror.NewBusiness("code is required", pkgerror.CodeInvalidInput)
	}
	return code, nil
}

func mapSearchResponse(output *usecase.SearchOutput) SearchResponse {
	flights := make([]FlightResponse, 0, len(output.Flights))
	for _, view := range output.Flights {
		flights = append(flights, mapFlightResponse(view))
	}
	return SearchResponse{
		Criteria: SearchCriteriaResponse{
			From: output.Criteria.From,
			To:   output.Criteria.To,
			Date: output.Criteria.Date,
		},
		Currency: string(output.Currency),
		CacheHit: output.CacheHit,
		Flights:  flights,
	}
}

func mapFlightResponse(view usecase.FlightView) FlightResponse {
	return FlightResponse{
		ID:           view.ID,
		Airline:      view.Airline,
		FlightNumber: view.FlightNumber,
		Departure:    FlightPointResponse{City: view.Departure.City, Airport: view.Departure.Airport, Time: view.Departure.Time},
		Arrival:      FlightPointResponse{City: view.Arrival.City, Airport: view.Arrival.Airport, Time: view.Arrival.Time},
		Date:         view.Date,
		Price:        view.Price,
		PriceDisplay: view.PriceDisplay,
		Duration:     view.Duration,
		Stops:        view.Stops,
		Aircraft:     view.Aircraft,
		Booked:       view.Booked,
		Favorite:     view.Favorite,
	}
}

func mapSeatMapResponse(output *usecase.SeatMapOutput) SeatMapResponse {
	return SeatMapResponse{
		SessionID:         output.SessionID,
		FlightID:          output.FlightID,
		Currency:          string(output.Currency),
		Seats:             mapSeatResponses(output.Seats),
		Selected:          mapSeatResponses(output.Selected),
		TotalPrice:        output.TotalPrice,
		TotalPriceDisplay: output.TotalPriceDisplay,
	}
}

func mapSeatResponses(views []usecase.SeatView) []SeatResponse {
	seats := make([]SeatResponse, 0, len(views))
	for _, view := range views {
		seats = append(seats, SeatResponse{
			ID:           view.ID,
			Row:          view.Row,
			Column:       view.Column,
			Class:        string(view.Class),
			Status:       string(view.Status),
			Price:        view.Price,
			PriceDisplay: view.PriceDisplay,
		})
	}
	return seats
}

func mapBookingResponse(view usecase.BookingView) BookingResponse {
	return BookingResponse{
		FlightResponse: mapFlightResponse(usecase.FlightView{
			Flight:       view.Flight,
			PriceDisplay: view.PriceDisplay,
			Booked:       true,
		}),
		SelectedSeats: mapBookedSeats(view.SelectedSeats),
		TotalPrice:    view.TotalPrice,
		BookedAt:      view.BookedAt.Format(time.RFC3339),
	}
}

func mapFavoriteResponse(view usecase.FavoriteView) FavoriteResponse {
	return FavoriteResponse{
		FlightResponse: mapFlightResponse(usecase.FlightView{
			Flight:       view.Flight,
			PriceDisplay: view.PriceDisplay,
			Favorite:     true,
		}),
		FavoritedAt: view.FavoritedAt.Format(time.RFC3339),
	}
}

func mapBookedSeats(seats []entity.Seat) []SeatResponse {
	if len(seats) == 0 {
		return nil
	}
	out := make([]SeatResponse, 0, len(seats))
	for _, seat := range seats {
		out = append(out, SeatResponse{
			ID:     seat.ID,
			Row:    seat.Row,
			Column: seat.Column,
			Class:  string(seat.Class),
			Status: string(seat.Status),
			Price:  seat.Price,
		})
	}
	return out
}

func mapCurrencyResponse(output *usecase.CurrencyOutput) CurrencyResponse {
	rates := make([]CurrencyRateResponse, 0, len(output.Rates))
	for _, rate := range output.Rates {
		rates = append(rates, CurrencyRateResponse{
			Code:   string(rate.Code),
			Symbol: rate.Symbol,
			Rate:   rate.Rate,
		})
	}
	return CurrencyResponse{Selected: string(output.Selected), Rates: rates}
}
