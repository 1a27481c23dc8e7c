package model

import "unicode/utf8"

// MaxNameLength is the maximum byte length of a profile name
const MaxNameLength = 32

// InitialLevel is the level every profile is registered with
const InitialLevel uint8 = 1

// ProfileRecord is the registry's view of a player
type ProfileRecord struct {
	Owner Identity
	Name  string
	Level uint8
}

// NewProfileRecord builds a freshly registered profile
func NewProfileRecord(owner Identity, name string) *ProfileRecord {
	return &ProfileRecord{
		Owner: owner,
		Name:  name,
		Level: InitialLevel,
	}
}

// ValidateName checks that a name is non-empty valid UTF-8 within MaxNameLength bytes
func ValidateName(name string) error {
	if name == "" || len(name) > MaxNameLength || !utf8.ValidString(name) {
		return ErrInvalidName
	}
	return nil
}
