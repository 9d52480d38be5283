package inbound

type StatusResponse struct {
	Status string `json:"status"`
}

type ToggleSeatRequest struct {
	SeatID string `json:"seat_id"`
}

type FlightIDRequest struct {
	FlightID string `json:"flight_id"`
}

type CurrencyRequest struct {
	Code string `json:"code"`
}

type SearchResponse struct {
	Criteria SearchCriteriaResponse `json:"criteria"`
	Currency string                 `json:"currency"`
	CacheHit bool                   `json:"cache_hit"`
	Flights  []FlightResponse       `json:"flights"`
}

type SearchCriteriaResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
	Date string `json:"date"`
}

type CitiesResponse struct {
	Cities []string `json:"cities"`
}

type FlightPointResponse struct {
	City    string `json:"city"`
	Airport string `json:"airport"`
	Time    string `json:"time"`
}

type FlightResponse struct {
	ID           string              `json:"id"`
	Airline      string              `json:"airline"`
	FlightNumber string              `json:"flight_number"`
	Departure    FlightPointResponse `json:"departure"`
	Arrival      FlightPointResponse `json:"arrival"`
	Date         string              `json:"date"`
	Price        int                 `json:"price"`
	PriceDisplay string              `json:"price_display"`
	Duration     string              `json:"duration"`
	Stops        int                 `json:"stops"`
	Aircraft     string              `json:"aircraft"`
	Booked       bool                `json:"booked"`
	Favorite     bool                `json:"favorite"`
}

type SeatResponse struct {
	ID           string `json:"id"`
	Row          int    `json:"row"`
	Column       string `json:"column"`
	Class        string `json:"class"`
	Status       string `json:"status"`
	Price        int    `json:"price"`
	PriceDisplay string `json:"price_display,omitempty"`
}

type SeatMapResponse struct {
	SessionID         string         `json:"session_id"`
	FlightID          string         `json:"flight_id"`
	Currency          string         `json:"currency"`
	Seats             []SeatResponse `json:"seats"`
	Selected          []SeatResponse `json:"selected"`
	TotalPrice        int            `json:"total_price"`
	TotalPriceDisplay string         `json:"total_price_display"`
}

type BookingResponse struct {
	FlightResponse
	SelectedSeats []SeatResponse `json:"selected_seats,omitempty"`
	TotalPrice    int            `json:"total_price,omitempty"`
	BookedAt      string         `json:"booked_at"`
}

type BookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

type FavoriteResponse struct {
	FlightResponse
	FavoritedAt string `json:"favorited_at"`
}

type FavoritesResponse struct {
	Favorites []FavoriteResponse `json:"favorites"`
}

type FavoriteStatusResponse struct {
	FlightID string `json:"flight_id"`
	Favorite bool   `json:"favorite"`
}

type CurrencyRateResponse struct {
	Code   string  `json:"code"`
	Symbol string  `json:"symbol"`
	Rate   float64 `json:"rate"`
}

type CurrencyResponse struct {
	Selected string                 `json:"selected"`
	Rates    []CurrencyRateResponse `json:"rates"`
}
