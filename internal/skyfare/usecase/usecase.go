package usecase

import (
	"time"

	"github.com/dcazacu/goskyfare/internal/pkg/pkguid"
	"github.com/dcazacu/goskyfare/internal/skyfare/cache"
	"github.com/dcazacu/goskyfare/internal/skyfare/catalog"
	"github.com/dcazacu/goskyfare/internal/skyfare/currency"
	"github.com/dcazacu/goskyfare/internal/skyfare/entity"
	"github.com/dcazacu/goskyfare/internal/skyfare/notify"
	"github.com/dcazacu/goskyfare/internal/skyfare/seatmap"
	"github.com/dcazacu/goskyfare/internal/skyfare/store"
)

type Dependency struct {
	Catalog     *catalog.Catalog
	Store       *store.Store
	Converter   *currency.Converter
	Generator   *seatmap.Generator
	Sessions    *cache.Cache[*seatmap.Session]
	SessionTTL  time.Duration
	SearchCache *cache.Cache[[]entity.Flight]
	SearchTTL   time.Duration
	UID         pkguid.StringID
	Notifier    notify.Notifier
}

type Usecase struct {
	catalog     *catalog.Catalog
	store       *store.Store
	converter   *currency.Converter
	generator   *seatmap.Generator
	sessions    *cache.Cache[*seatmap.Session]
	sessionTTL  time.Duration
	searchCache *cache.Cache[[]entity.Flight]
	searchTTL   time.Duration
	uid         pkguid.StringID
	notifier    notify.Notifier
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		catalog:     dep.Catalog,
		store:       dep.Store,
		converter:   dep.Converter,
		generator:   dep.Generator,
		sessions:    dep.Sessions,
		sessionTTL:  dep.SessionTTL,
		searchCache: dep.SearchCache,
		searchTTL:   dep.SearchTTL,
		uid:         dep.UID,
		notifier:    dep.Notifier,
	}
}

// FlightView decorates a catalog record with membership flags and the
// price rendered in the selected display currency.
type FlightView struct {
	entity.Flight
	PriceDisplay string
	Booked       bool
	Favorite     bool
}

func (u *Usecase) flightView(flight entity.Flight) FlightView {
	selected := u.store.Currency()
	price := flight.Price
	if flight.TotalPrice > 0 {
		price = flight.TotalPrice
	}
	return FlightView{
		Flight:       flight,
		PriceDisplay: u.converter.Convert(price, selected),
		Booked:       u.store.IsBooked(flight.ID),
		Favorite:     u.store.IsFavorite(flight.ID),
	}
}

// CloneFlights is the clone hook for the search cache so callers never
// alias the cached slice.
func CloneFlights(flights []entity.Flight) []entity.Flight {
	if flights == nil {
		return nil
	}
	out := make([]entity.Flight, len(flights))
	copy(out, flights)
	return out
}
