package handler

import (
	"net/http"

	"github.com/mcoot/gamemodules/internal/api/middleware"
	"github.com/mcoot/gamemodules/internal/api/response"
	"github.com/mcoot/gamemodules/internal/services/stub"
)

// SystemHandler handles health and initialization endpoints
type SystemHandler struct {
	stubService *stub.Service
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(stubService *stub.Service) *SystemHandler {
	return &SystemHandler{
		stubService: stubService,
	}
}

// Health handles GET /api/v1/health
func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Status{Status: "ok"})
}

// Initialize handles POST /api/v1/initialize
func (h *SystemHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetCaller(r.Context())
	if err := h.stubService.Initialize(r.Context(), caller); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Status{Status: "initialized"})
}
