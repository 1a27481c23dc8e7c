package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/gamemodules/internal/api/middleware"
	"github.com/mcoot/gamemodules/internal/api/request"
	"github.com/mcoot/gamemodules/internal/api/response"
	"github.com/mcoot/gamemodules/internal/model"
	"github.com/mcoot/gamemodules/internal/services/registry"
)

// PlayerHandler handles player registry endpoints
type PlayerHandler struct {
	registryService *registry.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(registryService *registry.Service) *PlayerHandler {
	return &PlayerHandler{
		registryService: registryService,
	}
}

// Register handles POST /api/v1/players/{address}
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	addr := model.Address(mux.Vars(r)["address"])

	var req request.RegisterPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	caller := middleware.GetCaller(r.Context())
	profile, err := h.registryService.RegisterPlayer(r.Context(), caller, addr, req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, r.URL.Path, response.PlayerFromModel(addr, profile))
}

// Get handles GET /api/v1/players/{address}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	addr := model.Address(mux.Vars(r)["address"])

	profile, err := h.registryService.GetPlayer(r.Context(), addr)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(addr, profile))
}

// UpdateLevel handles PUT /api/v1/players/{address}/level
func (h *PlayerHandler) UpdateLevel(w http.ResponseWriter, r *http.Request) {
	addr := model.Address(mux.Vars(r)["address"])

	var req request.UpdateLevelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Level == nil {
		WriteError(w, NewInvalidRequestError("level is required"))
		return
	}

	caller := middleware.GetCaller(r.Context())
	profile, err := h.registryService.UpdateLevel(r.Context(), caller, addr, *req.Level)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(addr, profile))
}
