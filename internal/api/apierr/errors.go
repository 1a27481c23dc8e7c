package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/gamemodules/internal/ledger"
	"github.com/mcoot/gamemodules/internal/model"
	"github.com/mcoot/gamemodules/internal/storage"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest        = "INVALID_REQUEST"
	CodeInvalidAuthority      = "INVALID_AUTHORITY"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeAlreadyExists         = "ALREADY_EXISTS"
	CodeNotFound              = "NOT_FOUND"
	CodeLethalDamage          = "LETHAL_DAMAGE"
	CodeMintAuthorityMismatch = "MINT_AUTHORITY_MISMATCH"
	CodeLedgerError           = "LEDGER_ERROR"
	CodeConflict              = "CONFLICT"
	CodeInternalError         = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status code err maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Ledger failures keep one code; the status follows the cause
	if errors.Is(err, model.ErrLedger) {
		return &httpError{ledgerStatus(err), APIError{CodeLedgerError, err.Error()}}
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrInvalidAuthority):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidAuthority, err.Error()}}
	case errors.Is(err, model.ErrUnauthorized):
		return &httpError{http.StatusForbidden, APIError{CodeUnauthorized, "Caller does not own this record"}}
	case errors.Is(err, model.ErrNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Record not found"}}
	case errors.Is(err, model.ErrAlreadyExists):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyExists, "Record already exists"}}
	case errors.Is(err, model.ErrLethalDamage):
		return &httpError{http.StatusConflict, APIError{CodeLethalDamage, "Damage must be lower than current hp"}}
	case errors.Is(err, model.ErrMintAuthorityMismatch):
		return &httpError{http.StatusForbidden, APIError{CodeMintAuthorityMismatch, "Caller is not the mint authority"}}
	case errors.Is(err, model.ErrInvalidAddress):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Address must be 1-64 characters of [A-Za-z0-9_-]"}}
	case errors.Is(err, model.ErrInvalidName):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Name must be 1-32 bytes of UTF-8"}}
	case errors.Is(err, model.ErrInvalidHP):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "hp must be greater than zero"}}

	// Map storage errors
	case errors.Is(err, storage.ErrConflict):
		return &httpError{http.StatusConflict, APIError{CodeConflict, "Record was modified concurrently"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

func ledgerStatus(err error) int {
	switch {
	case errors.Is(err, ledger.ErrMintNotFound), errors.Is(err, ledger.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrMintExists), errors.Is(err, ledger.ErrAccountExists):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrAccountMintMismatch), errors.Is(err, ledger.ErrSupplyOverflow), errors.Is(err, ledger.ErrZeroQuantity):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInvalidAuthorityError creates an error for a malformed proof
func NewInvalidAuthorityError(message string) error {
	return &httpError{http.StatusUnauthorized, APIError{CodeInvalidAuthority, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

// PanicHandler writes the JSON internal error body for a recovered panic
func PanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	WriteError(w, NewInternalError())
}
