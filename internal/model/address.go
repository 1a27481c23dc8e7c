package model

// MaxAddressLength bounds addresses so they embed cleanly in storage keys and URLs
const MaxAddressLength = 64

// Address is the key a record lives under in the record store
type Address string

// Validate checks that the address is non-empty, bounded and uses [A-Za-z0-9_-]
func (a Address) Validate() error {
	if len(a) == 0 || len(a) > MaxAddressLength {
		return ErrInvalidAddress
	}
	for _, c := range a {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '-':
		default:
			return ErrInvalidAddress
		}
	}
	return nil
}

// MintRef addresses a mint held by the token ledger
type MintRef = Address

// AccountRef addresses a token balance account held by the token ledger
type AccountRef = Address
