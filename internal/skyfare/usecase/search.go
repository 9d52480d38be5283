package usecase

import (
	"context"
	"strings"

	"github.com/dcazacu/goskyfare/internal/pkg/pkgerror"
	"github.com/dcazacu/goskyfare/internal/skyfare/catalog"
	"github.com/dcazacu/goskyfare/internal/skyfare/entity"
)

type SearchInput struct {
	From string
	To   string
	Date string
}

type SearchOutput struct {
	Criteria SearchInput
	Currency entity.Currency
	CacheHit bool
	Flights  []FlightView
}

// Search filters the catalog by the optional criteria. Filter results
// are cached; membership flags and price display are computed fresh on
// every call since bookings and currency change between searches.
func (u *Usecase) Search(_ context.Context, in SearchInput) (*SearchOutput, error) {
	key := searchKey(in)

	flights, hit := u.searchCache.Get(key)
	if !hit {
		flights = u.catalog.Filter(catalog.Criteria{From: in.From, To: in.To, Date: in.Date})
		u.searchCache.Set(key, flights, u.searchTTL)
	}

	views := make([]FlightView, 0, len(flights))
	for _, flight := range flights {
		views = append(views, u.flightView(flight))
	}

	return &SearchOutput{
		Criteria: in,
		Currency: u.store.Currency(),
		CacheHit: hit,
		Flights:  views,
	}, nil
}

// Flight returns a single catalog record by id.
func (u *Usecase) Flight(_ context.Context, id string) (*FlightView, error) {
	flight, ok := u.catalog.Find(id)
	if !ok {
		return nil, pkgerror.NewBusiness("flight not found", pkgerror.CodeNotFound)
	}
	view := u.flightView(flight)
	return &view, nil
}

// Cities returns the sorted set of searchable cities.
func (u *Usecase) Cities(_ context.Context) []string {
	return u.catalog.Cities()
}

func searchKey(in SearchInput) string {
	return strings.ToLower(strings.Join([]string{
		strings.TrimSpace(in.From),
		strings.TrimSpace(in.To),
		strings.TrimSpace(in.Date),
	}, "|"))
}
