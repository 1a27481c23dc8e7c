package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/gamemodules/internal/api/middleware"
	"github.com/mcoot/gamemodules/internal/api/request"
	"github.com/mcoot/gamemodules/internal/api/response"
	"github.com/mcoot/gamemodules/internal/model"
	"github.com/mcoot/gamemodules/internal/services/asset"
)

// AssetHandler handles mint and token account endpoints
type AssetHandler struct {
	assetService *asset.Service
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(assetService *asset.Service) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// CreateMint handles POST /api/v1/mints/{mint}
func (h *AssetHandler) CreateMint(w http.ResponseWriter, r *http.Request) {
	mint := model.MintRef(mux.Vars(r)["mint"])

	caller := middleware.GetCaller(r.Context())
	if err := h.assetService.CreateMint(r.Context(), caller, mint); err != nil {
		WriteError(w, err)
		return
	}

	// CreateMint succeeded, so the caller is verified
	authority, _ := caller.Identity()
	response.JSON(w, http.StatusCreated, response.Mint{
		Mint:      string(mint),
		Authority: authority.String(),
	})
}

// OpenAccount handles POST /api/v1/mints/{mint}/accounts/{account}
func (h *AssetHandler) OpenAccount(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	mint := model.MintRef(vars["mint"])
	account := model.AccountRef(vars["account"])

	caller := middleware.GetCaller(r.Context())
	if err := h.assetService.OpenAccount(r.Context(), caller, mint, account); err != nil {
		WriteError(w, err)
		return
	}

	a, err := h.assetService.GetAccount(r.Context(), account)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, "/api/v1/accounts/"+string(account), response.AccountFromLedger(account, a))
}

// GetAccount handles GET /api/v1/accounts/{account}
func (h *AssetHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	account := model.AccountRef(mux.Vars(r)["account"])

	a, err := h.assetService.GetAccount(r.Context(), account)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AccountFromLedger(account, a))
}

// MintItem handles POST /api/v1/mints/{mint}/items
func (h *AssetHandler) MintItem(w http.ResponseWriter, r *http.Request) {
	mint := model.MintRef(mux.Vars(r)["mint"])

	var req request.MintItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Destination == "" {
		WriteError(w, NewInvalidRequestError("destination is required"))
		return
	}

	destination := model.AccountRef(req.Destination)
	caller := middleware.GetCaller(r.Context())
	if err := h.assetService.MintItem(r.Context(), caller, mint, destination); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MintedItem{
		Mint:        string(mint),
		Destination: string(destination),
		Quantity:    asset.ItemQuantity,
	})
}
