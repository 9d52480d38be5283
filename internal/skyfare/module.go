package skyfare

import (
	"log/slog"
	"time"

	"github.com/dcazacu/goskyfare/internal/pkg/pkgconfig"
	"github.com/dcazacu/goskyfare/internal/pkg/pkgrouter"
	"github.com/dcazacu/goskyfare/internal/pkg/pkguid"
	"github.com/dcazacu/goskyfare/internal/skyfare/cache"
	"github.com/dcazacu/goskyfare/internal/skyfare/catalog"
	"github.com/dcazacu/goskyfare/internal/skyfare/currency"
	"github.com/dcazacu/goskyfare/internal/skyfare/inbound"
	"github.com/dcazacu/goskyfare/internal/skyfare/notify"
	"github.com/dcazacu/goskyfare/internal/skyfare/seatmap"
	"github.com/dcazacu/goskyfare/internal/skyfare/store"
	"github.com/dcazacu/goskyfare/internal/skyfare/usecase"
)

type Dependency struct {
	Config  pkgconfig.Config
	Router  *pkgrouter.Router
	Storage store.Storage
	UID     pkguid.StringID
}

func New(dep Dependency) error {
	catalogPath := dep.Config.GetString("modules.skyfare.catalog.path")
	if catalogPath == "" {
		catalogPath = "data/flights.json"
	}
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return err
	}

	st := store.New(dep.Storage)
	st.Subscribe(func() {
		slog.Debug("store state changed",
			"bookings", len(st.Bookings()),
			"favorites", len(st.Favorites()),
			"currency", st.Currency(),
		)
	})

	occupancy := seatmap.DefaultOccupancy()
	if v := dep.Config.GetFloat64("modules.skyfare.seatmap.occupancy.business"); v > 0 {
		occupancy.Business = v
	}
	if v := dep.Config.GetFloat64("modules.skyfare.seatmap.occupancy.comfort"); v > 0 {
		occupancy.Comfort = v
	}
	if v := dep.Config.GetFloat64("modules.skyfare.seatmap.occupancy.economy"); v > 0 {
		occupancy.Economy = v
	}

	sessionTTL := 15 * time.Minute
	if seconds := dep.Config.GetInt("modules.skyfare.seatmap.session_ttl_seconds"); seconds > 0 {
		sessionTTL = time.Duration(seconds) * time.Second
	}

	searchTTL := 60 * time.Second
	if seconds := dep.Config.GetInt("modules.skyfare.search.cache_ttl_seconds"); seconds > 0 {
		searchTTL = time.Duration(seconds) * time.Second
	}

	uc := usecase.New(usecase.Dependency{
		Catalog:     cat,
		Store:       st,
		Converter:   currency.NewConverter(),
		Generator:   seatmap.NewGenerator(seatmap.NewSafeRand(), occupancy),
		Sessions:    cache.New[*seatmap.Session](nil),
		SessionTTL:  sessionTTL,
		SearchCache: cache.New(usecase.CloneFlights),
		SearchTTL:   searchTTL,
		UID:         dep.UID,
		Notifier:    notify.NewLogNotifier(),
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	slog.Info("module skyfare initialized",
		"flights", len(cat.Flights()),
		"currency", st.Currency(),
	)

	return nil
}
