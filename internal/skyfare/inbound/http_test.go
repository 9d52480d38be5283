package inbound

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dcazacu/goskyfare/internal/pkg/pkgrouter"
	"github.com/dcazacu/goskyfare/internal/pkg/pkguid"
	"github.com/dcazacu/goskyfare/internal/skyfare/cache"
	"github.com/dcazacu/goskyfare/internal/skyfare/catalog"
	"github.com/dcazacu/goskyfare/internal/skyfare/currency"
	"github.com/dcazacu/goskyfare/internal/skyfare/entity"
	"github.com/dcazacu/goskyfare/internal/skyfare/notify"
	"github.com/dcazacu/goskyfare/internal/skyfare/seatmap"
	"github.com/dcazacu/goskyfare/internal/skyfare/store"
	"github.com/dcazacu/goskyfare/internal/skyfare/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand struct {
	value float64
}

func (f fixedRand) Float64() float64 { return f.value }

type recordingNotifier struct {
	titles     []string
	severities []notify.Severity
}

func (n *recordingNotifier) Notify(title, _ string, severity notify.Severity) {
	n.titles = append(n.titles, title)
	n.severities = append(n.severities, severity)
}

func testCatalog() *catalog.Catalog {
	return catalog.New([]entity.Flight{
		{
			ID:           "F1",
			Airline:      "Air Moldova",
			FlightNumber: "9U171",
			Departure:    entity.FlightPoint{City: "Chișinău", Airport: "KIV", Time: "08:15"},
			Arrival:      entity.FlightPoint{City: "Paris", Airport: "CDG", Time: "10:45"},
			Date:         "2024-06-01",
			Price:        5000,
			Duration:     "3h 30m",
			Aircraft:     "Airbus A320",
		},
		{
			ID:           "F2",
			Airline:      "HiSky",
			FlightNumber: "H4201",
			Departure:    entity.FlightPoint{City: "Chișinău", Airport: "KIV", Time: "06:40"},
			Arrival:      entity.FlightPoint{City: "London", Airport: "LTN", Time: "08:55"},
			Date:         "2024-06-01",
			Price:        4200,
			Duration:     "3h 45m",
			Aircraft:     "Airbus A321neo",
		},
	})
}

func setupServer(t *testing.T) (*pkgrouter.Router, *recordingNotifier) {
	t.Helper()

	notifier := &recordingNotifier{}
	uc := usecase.New(usecase.Dependency{
		Catalog:     testCatalog(),
		Store:       store.New(store.NewMemoryStorage()),
		Converter:   currency.NewConverter(),
		Generator:   seatmap.NewGenerator(fixedRand{value: 0.99}, seatmap.DefaultOccupancy()),
		Sessions:    cache.New[*seatmap.Session](nil),
		SessionTTL:  time.Minute,
		SearchCache: cache.New(usecase.CloneFlights),
		SearchTTL:   time.Minute,
		UID:         pkguid.NewUUID(),
		Notifier:    notifier,
	})

	router := pkgrouter.NewRouter(pkguid.NewUUID())
	RegisterHTTPEndpoint(router, uc)
	return router, notifier
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
	}
	return rec
}

func TestSearchFlights(t *testing.T) {
	router, _ := setupServer(t)

	var resp SearchResponse
	rec := doJSON(t, router, http.MethodGet, "/flights?from=chi&to=paris", nil, &resp)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	require.Len(t, resp.Flights, 1)
	assert.Equal(t, "F1", resp.Flights[0].ID)
	assert.Equal(t, "$5,000", resp.Flights[0].PriceDisplay)
	assert.False(t, resp.Flights[0].Booked)

	// Same criteria again hits the filter cache.
	rec = doJSON(t, router, http.MethodGet, "/flights?from=chi&to=paris", nil, &resp)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.CacheHit)
}

func TestSearchAllEmptyReturnsCatalogOrder(t *testing.T) {
	router, _ := setupServer(t)

	var resp SearchResponse
	doJSON(t, router, http.MethodGet, "/flights", nil, &resp)

	require.Len(t, resp.Flights, 2)
	assert.Equal(t, "F1", resp.Flights[0].ID)
	assert.Equal(t, "F2", resp.Flights[1].ID)
}

func TestFlightNotFound(t *testing.T) {
	router, _ := setupServer(t)

	rec := doJSON(t, router, http.MethodGet, "/flights/F9", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCities(t *testing.T) {
	router, _ := setupServer(t)

	var resp CitiesResponse
	doJSON(t, router, http.MethodGet, "/cities", nil, &resp)

	assert.Equal(t, []string{"Chișinău", "London", "Paris"}, resp.Cities)
}

func TestSeatSelectionFlow(t *testing.T) {
	router, _ := setupServer(t)

	var seatMap SeatMapResponse
	rec := doJSON(t, router, http.MethodPost, "/flights/F1/seatmap", nil, &seatMap)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, seatMap.SessionID)
	require.Len(t, seatMap.Seats, 180)
	assert.Equal(t, "1A", seatMap.Seats[0].ID)
	assert.Equal(t, 12500, seatMap.Seats[0].Price)
	assert.Equal(t, "business", seatMap.Seats[0].Class)

	sid := seatMap.SessionID

	rec = doJSON(t, router, http.MethodPost, "/seatmaps/"+sid+"/toggle", ToggleSeatRequest{SeatID: "8A"}, &seatMap)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/seatmaps/"+sid+"/toggle", ToggleSeatRequest{SeatID: "8B"}, &seatMap)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, seatMap.Selected, 2)
	assert.Equal(t, 10000, seatMap.TotalPrice)
	assert.Equal(t, "$10,000", seatMap.TotalPriceDisplay)

	var booking BookingResponse
	rec = doJSON(t, router, http.MethodPost, "/seatmaps/"+sid+"/confirm", nil, &booking)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "F1", booking.ID)
	assert.Len(t, booking.SelectedSeats, 2)
	assert.Equal(t, 10000, booking.TotalPrice)
	assert.NotEmpty(t, booking.BookedAt)

	// The session is consumed by a successful confirm.
	rec = doJSON(t, router, http.MethodGet, "/seatmaps/"+sid, nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var bookings BookingsResponse
	doJSON(t, router, http.MethodGet, "/bookings", nil, &bookings)
	require.Len(t, bookings.Bookings, 1)
	assert.Equal(t, 10000, bookings.Bookings[0].TotalPrice)
}

func TestConfirmWithoutSelection(t *testing.T) {
	router, notifier := setupServer(t)

	var seatMap SeatMapResponse
	doJSON(t, router, http.MethodPost, "/flights/F1/seatmap", nil, &seatMap)

	rec := doJSON(t, router, http.MethodPost, "/seatmaps/"+seatMap.SessionID+"/confirm", nil, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	require.Len(t, notifier.titles, 1)
	assert.Equal(t, "No seats selected", notifier.titles[0])
	assert.Equal(t, notify.SeverityDestructive, notifier.severities[0])

	// Nothing was booked and the session survives the failed confirm.
	var bookings BookingsResponse
	doJSON(t, router, http.MethodGet, "/bookings", nil, &bookings)
	assert.Empty(t, bookings.Bookings)

	rec = doJSON(t, router, http.MethodGet, "/seatmaps/"+seatMap.SessionID, nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestToggleOccupiedSeatKeepsSelectionEmpty(t *testing.T) {
	notifier := &recordingNotifier{}
	uc := usecase.New(usecase.Dependency{
		Catalog:     testCatalog(),
		Store:       store.New(store.NewMemoryStorage()),
		Converter:   currency.NewConverter(),
		Generator:   seatmap.NewGenerator(fixedRand{value: 0}, seatmap.DefaultOccupancy()),
		Sessions:    cache.New[*seatmap.Session](nil),
		SessionTTL:  time.Minute,
		SearchCache: cache.New(usecase.CloneFlights),
		SearchTTL:   time.Minute,
		UID:         pkguid.NewUUID(),
		Notifier:    notifier,
	})
	router := pkgrouter.NewRouter(pkguid.NewUUID())
	RegisterHTTPEndpoint(router, uc)

	var seatMap SeatMapResponse
	doJSON(t, router, http.MethodPost, "/flights/F1/seatmap", nil, &seatMap)
	assert.Equal(t, "occupied", seatMap.Seats[0].Status)

	rec := doJSON(t, router, http.MethodPost, "/seatmaps/"+seatMap.SessionID+"/toggle", ToggleSeatRequest{SeatID: "1A"}, &seatMap)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, seatMap.Selected)
	assert.Equal(t, "occupied", seatMap.Seats[0].Status)
}

func TestBookingLifecycle(t *testing.T) {
	router, _ := setupServer(t)

	var booking BookingResponse
	rec := doJSON(t, router, http.MethodPost, "/bookings", FlightIDRequest{FlightID: "F2"}, &booking)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "F2", booking.ID)
	assert.True(t, booking.Booked)

	// The endpoint guards against double booking even though the store
	// itself would allow it.
	rec = doJSON(t, router, http.MethodPost, "/bookings", FlightIDRequest{FlightID: "F2"}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var search SearchResponse
	doJSON(t, router, http.MethodGet, "/flights?to=london", nil, &search)
	require.Len(t, search.Flights, 1)
	assert.True(t, search.Flights[0].Booked)

	rec = doJSON(t, router, http.MethodDelete, "/bookings/F2", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var bookings BookingsResponse
	doJSON(t, router, http.MethodGet, "/bookings", nil, &bookings)
	assert.Empty(t, bookings.Bookings)

	// Cancelling again stays a no-op.
	rec = doJSON(t, router, http.MethodDelete, "/bookings/F2", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBookingUnknownFlight(t *testing.T) {
	router, _ := setupServer(t)

	rec := doJSON(t, router, http.MethodPost, "/bookings", FlightIDRequest{FlightID: "F9"}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFavoritesFlow(t *testing.T) {
	router, _ := setupServer(t)

	var status FavoriteStatusResponse
	rec := doJSON(t, router, http.MethodPost, "/favorites/toggle", FlightIDRequest{FlightID: "F1"}, &status)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, status.Favorite)

	var favorites FavoritesResponse
	doJSON(t, router, http.MethodGet, "/favorites", nil, &favorites)
	require.Len(t, favorites.Favorites, 1)
	assert.Equal(t, "F1", favorites.Favorites[0].ID)
	assert.NotEmpty(t, favorites.Favorites[0].FavoritedAt)

	doJSON(t, router, http.MethodPost, "/favorites/toggle", FlightIDRequest{FlightID: "F1"}, &status)
	assert.False(t, status.Favorite)

	doJSON(t, router, http.MethodGet, "/favorites", nil, &favorites)
	assert.Empty(t, favorites.Favorites)
}

func TestCurrencySelection(t *testing.T) {
	router, _ := setupServer(t)

	var resp CurrencyResponse
	doJSON(t, router, http.MethodGet, "/currency", nil, &resp)
	assert.Equal(t, "USD", resp.Selected)
	assert.Len(t, resp.Rates, 3)

	rec := doJSON(t, router, http.MethodPut, "/currency", CurrencyRequest{Code: "MDL"}, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MDL", resp.Selected)

	var search SearchResponse
	doJSON(t, router, http.MethodGet, "/flights?to=paris", nil, &search)
	require.Len(t, search.Flights, 1)
	assert.Equal(t, "L89,000", search.Flights[0].PriceDisplay)

	rec = doJSON(t, router, http.MethodPut, "/currency", CurrencyRequest{Code: "DOGE"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvalidRequestBodies(t *testing.T) {
	router, _ := setupServer(t)

	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/bookings", FlightIDRequest{}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	router, _ := setupServer(t)

	var resp StatusResponse
	rec := doJSON(t, router, http.MethodGet, "/health", nil, &resp)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", resp.Status)
}
