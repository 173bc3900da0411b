package app

import (
	"github.com/nlevin/taskdeck/internal/config"
	"github.com/nlevin/taskdeck/internal/services"
	"github.com/nlevin/taskdeck/internal/storage"
)

// The store and the auth gate are constructed once here and handed to
// the handlers; neither package keeps a singleton of its own.
var (
	globalStorage     *storage.Storage
	globalAuthService services.AuthService
)

func MustInitStorage() {
	globalStorage = storage.New(globalLogger)
	globalLogger.Info().Msg("initialized in-memory storage")
}

func MustInitAuthService() {
	cfg := config.Global().Auth

	svc, err := services.NewAuthService(
		globalLogger,
		cfg.Username,
		cfg.Password,
		cfg.JWTIssuer,
		cfg.JWTSigningKey,
	)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to init auth service")
		panic(err)
	}

	globalAuthService = svc
	globalLogger.Info().Msg("initialized auth service")
}
