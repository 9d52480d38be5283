package app

import (
	"log/slog"
	"os"

	"github.com/dcazacu/goskyfare/internal/skyfare"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.skyfare.enabled") {
		if err := skyfare.New(skyfare.Dependency{
			Config:  a.config,
			Router:  a.router,
			Storage: a.storage,
			UID:     a.uuid,
		}); err != nil {
			slog.Error("failed to init module skyfare", "error", err)
			os.Exit(1)
		}
	}
}
