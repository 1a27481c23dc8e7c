package model

import "errors"

// Common errors used across the application
var (
	// Authorization errors
	ErrInvalidAuthority = errors.New("invalid authority")
	ErrUnauthorized     = errors.New("caller is not the record owner")

	// Record errors
	ErrAlreadyExists = errors.New("record already exists")
	ErrNotFound      = errors.New("record not found")
	ErrCorruptRecord = errors.New("corrupt record data")

	// Combat errors
	ErrLethalDamage = errors.New("player would be defeated")
	ErrInvalidHP    = errors.New("hp must be greater than zero")

	// Asset errors
	ErrMintAuthorityMismatch = errors.New("mint authority mismatch")
	ErrLedger                = errors.New("ledger error")

	// Validation errors
	ErrInvalidIdentity = errors.New("invalid identity")
	ErrInvalidAddress  = errors.New("invalid address")
	ErrInvalidName     = errors.New("invalid name")
)

// LedgerError wraps a token ledger failure other than an authority mismatch
type LedgerError struct {
	Err error
}

func (e *LedgerError) Error() string {
	return "ledger error: " + e.Err.Error()
}

// Unwrap returns the underlying ledger failure
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrLedger) match any LedgerError
func (e *LedgerError) Is(target error) bool {
	return target == ErrLedger
}
