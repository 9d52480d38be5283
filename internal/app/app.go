package app

import (
	"context"
	"net/http"

	"github.com/dcazacu/goskyfare/internal/pkg/pkgconfig"
	"github.com/dcazacu/goskyfare/internal/pkg/pkglog"
	"github.com/dcazacu/goskyfare/internal/pkg/pkgrouter"
	"github.com/dcazacu/goskyfare/internal/pkg/pkguid"
	"github.com/dcazacu/goskyfare/internal/skyfare/store"
)

type App struct {
	config     pkgconfig.Config
	uuid       pkguid.StringID
	router     *pkgrouter.Router
	storage    store.Storage
	httpServer *http.Server
	closerFn   map[string]func(context.Context) error
}

func New() *App {
	app := &App{}
	pkglog.InitLogging()
	app.initConfig()
	app.initHTTPServer()
	app.initStorage()
	app.initModules()
	app.initClosers()
	return app
}
