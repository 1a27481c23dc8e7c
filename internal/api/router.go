package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/gamemodules/internal/api/apierr"
	"github.com/mcoot/gamemodules/internal/api/handler"
	"github.com/mcoot/gamemodules/internal/api/middleware"
	sharedmw "github.com/mcoot/gamemodules/internal/middleware"
	"github.com/mcoot/gamemodules/internal/services/asset"
	"github.com/mcoot/gamemodules/internal/services/auth"
	"github.com/mcoot/gamemodules/internal/services/combat"
	"github.com/mcoot/gamemodules/internal/services/registry"
	"github.com/mcoot/gamemodules/internal/services/stub"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	AuthService     *auth.Service
	RegistryService *registry.Service
	CombatService   *combat.Service
	AssetService    *asset.Service
	StubService     *stub.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.RegistryService)
	combatHandler := handler.NewCombatHandler(cfg.CombatService)
	assetHandler := handler.NewAssetHandler(cfg.AssetService)
	systemHandler := handler.NewSystemHandler(cfg.StubService)

	// API subrouter with common middleware. Proofs are optional at this
	// layer; each service decides whether it needs a verified caller.
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(sharedmw.RequestID())
	api.Use(sharedmw.Recovery(cfg.Logger, apierr.PanicHandler))
	api.Use(sharedmw.Logging(cfg.Logger))
	api.Use(middleware.BodyLimit(middleware.DefaultMaxBodyBytes))
	api.Use(middleware.Auth(cfg.AuthService))

	api.HandleFunc("/health", systemHandler.Health).Methods(http.MethodGet)
	api.HandleFunc("/initialize", systemHandler.Initialize).Methods(http.MethodPost)

	// Player registry
	api.HandleFunc("/players/{address}", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/{address}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{address}/level", playerHandler.UpdateLevel).Methods(http.MethodPut)

	// Combat
	api.HandleFunc("/combatants/{address}", combatHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/combatants/{address}", combatHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/combatants/{address}/attack", combatHandler.Attack).Methods(http.MethodPost)

	// Assets
	api.HandleFunc("/mints/{mint}", assetHandler.CreateMint).Methods(http.MethodPost)
	api.HandleFunc("/mints/{mint}/accounts/{account}", assetHandler.OpenAccount).Methods(http.MethodPost)
	api.HandleFunc("/mints/{mint}/items", assetHandler.MintItem).Methods(http.MethodPost)
	api.HandleFunc("/accounts/{account}", assetHandler.GetAccount).Methods(http.MethodGet)

	return r
}
