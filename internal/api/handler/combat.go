package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/gamemodules/internal/api/middleware"
	"github.com/mcoot/gamemodules/internal/api/request"
	"github.com/mcoot/gamemodules/internal/api/response"
	"github.com/mcoot/gamemodules/internal/model"
	"github.com/mcoot/gamemodules/internal/services/combat"
)

// CombatHandler handles combat endpoints
type CombatHandler struct {
	combatService *combat.Service
}

// NewCombatHandler creates a new combat handler
func NewCombatHandler(combatService *combat.Service) *CombatHandler {
	return &CombatHandler{
		combatService: combatService,
	}
}

// Register handles POST /api/v1/combatants/{address}
func (h *CombatHandler) Register(w http.ResponseWriter, r *http.Request) {
	addr := model.Address(mux.Vars(r)["address"])

	// An empty body registers with the default hp
	var req request.RegisterCombatantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	hp := model.DefaultHP
	if req.HP != nil {
		hp = *req.HP
	}

	caller := middleware.GetCaller(r.Context())
	record, err := h.combatService.RegisterCombatant(r.Context(), caller, addr, hp)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, r.URL.Path, response.CombatantFromModel(addr, record))
}

// Get handles GET /api/v1/combatants/{address}
func (h *CombatHandler) Get(w http.ResponseWriter, r *http.Request) {
	addr := model.Address(mux.Vars(r)["address"])

	record, err := h.combatService.GetCombatant(r.Context(), addr)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CombatantFromModel(addr, record))
}

// Attack handles POST /api/v1/combatants/{address}/attack
func (h *CombatHandler) Attack(w http.ResponseWriter, r *http.Request) {
	addr := model.Address(mux.Vars(r)["address"])

	var req request.AttackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Damage == nil {
		WriteError(w, NewInvalidRequestError("damage is required"))
		return
	}

	caller := middleware.GetCaller(r.Context())
	record, err := h.combatService.Attack(r.Context(), caller, addr, *req.Damage)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CombatantFromModel(addr, record))
}
