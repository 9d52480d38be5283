package entity

import "time"

type FlightPoint struct {
	City    string `json:"city"`
	Airport string `json:"airport"`
	Time    string `json:"time"`
}

// Flight is a catalog record. SelectedSeats and TotalPrice are only set
// on copies produced by a confirmed seat selection, never on the
// catalog entry itself.
type Flight struct {
	ID            string      `json:"id"`
	Airline       string      `json:"airline"`
	FlightNumber  string      `json:"flightNumber"`
	Departure     FlightPoint `json:"departure"`
	Arrival       FlightPoint `json:"arrival"`
	Date          string      `json:"date"`
	Price         int         `json:"price"`
	Duration      string      `json:"duration"`
	Stops         int         `json:"stops"`
	Aircraft      string      `json:"aircraft"`
	SelectedSeats []Seat      `json:"selectedSeats,omitempty"`
	TotalPrice    int         `json:"totalPrice,omitempty"`
}

type Booking struct {
	Flight
	BookedAt time.Time `json:"bookedAt"`
}

type Favorite struct {
	Flight
	FavoritedAt time.Time `json:"favoritedAt"`
}
