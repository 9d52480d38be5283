package inbound

import (
	"context"

	"github.com/dcazacu/goskyfare/internal/pkg/pkgrouter"
	"github.com/dcazacu/goskyfare/internal/skyfare/usecase"
)

type uc interface {
	Search(ctx context.Context, in usecase.SearchInput) (*usecase.SearchOutput, error)
	Flight(ctx context.Context, id string) (*usecase.FlightView, error)
	Cities(ctx context.Context) []string
	OpenSeatMap(ctx context.Context, flightID string) (*usecase.SeatMapOutput, error)
	SeatMap(ctx context.Context, sessionID string) (*usecase.SeatMapOutput, error)
	ToggleSeat(ctx context.Context, sessionID, seatID string) (*usecase.SeatMapOutput, error)
	ConfirmSeats(ctx context.Context, sessionID string) (*usecase.BookingView, error)
	Book(ctx context.Context, flightID string) (*usecase.BookingView, error)
	CancelBooking(ctx context.Context, flightID string)
	Bookings(ctx context.Context) []usecase.BookingView
	ToggleFavorite(ctx context.Context, flightID string) (*usecase.FavoriteStatus, error)
	Favorites(ctx context.Context) []usecase.FavoriteView
	Currency(ctx context.Context) *usecase.CurrencyOutput
	SetCurrency(ctx context.Context, code string) (*usecase.CurrencyOutput, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/health", end.Health)

	r.GET("/flights", end.Search)
	r.GET("/flights/{id}", end.Flight)
	r.GET("/cities", end.Cities)

	r.POST("/flights/{id}/seatmap", end.OpenSeatMap)
	r.GET("/seatmaps/{sid}", end.SeatMap)
	r.POST("/seatmaps/{sid}/toggle", end.ToggleSeat)
	r.POST("/seatmaps/{sid}/confirm", end.ConfirmSeats)

	r.GET("/bookings", end.Bookings)
	r.POST("/bookings", end.Book)
	r.DELETE("/bookings/{id}", end.CancelBooking)

	r.GET("/favorites", end.Favorites)
	r.POST("/favorites/toggle", end.ToggleFavorite)

	r.GET("/currency", end.Currency)
	r.PUT("/currency", end.SetCurrency)
}
