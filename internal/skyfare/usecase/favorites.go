package usecase

import (
	"context"

	"github.com/dcazacu/goskyfare/internal/pkg/pkgerror"
	"github.com/dcazacu/goskyfare/internal/skyfare/entity"
)

type FavoriteView struct {
	entity.Favorite
	PriceDisplay string
}

type FavoriteStatus struct {
	FlightID string
	Favorite bool
}

// ToggleFavorite flips the favorite state of a catalog flight and
// reports the state after the flip.
func (u *Usecase) ToggleFavorite(_ context.Context, flightID string) (*FavoriteStatus, error) {
	flight, ok := u.catalog.Find(flightID)
	if !ok {
		return nil, pkgerror.NewBusiness("flight not found", pkgerror.CodeNotFound)
	}

	favorite := u.store.ToggleFavorite(flight)
	return &FavoriteStatus{FlightID: flightID, Favorite: favorite}, nil
}

// Favorites returns the user's favorites in insertion order.
func (u *Usecase) Favorites(_ context.Context) []FavoriteView {
	favorites := u.store.Favorites()
	views := make([]FavoriteView, 0, len(favorites))
	for _, favorite := range favorites {
		views = append(views, FavoriteView{
			Favorite:     favorite,
			PriceDisplay: u.converter.Convert(favorite.Price, u.store.Currency()),
		})
	}
	return views
}
