package model

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

const discriminatorSize = 8

// Fixed on-store sizes of each record layout
const (
	ProfileRecordSize = discriminatorSize + IdentitySize + 4 + MaxNameLength + 1
	CombatRecordSize  = discriminatorSize + IdentitySize + 1
)

var (
	profileDiscriminator = discriminator("ProfileRecord")
	combatDiscriminator  = discriminator("CombatRecord")
)

func discriminator(typeName string) [discriminatorSize]byte {
	sum := sha256.Sum256([]byte("account:" + typeName))
	var d [discriminatorSize]byte
	copy(d[:], sum[:discriminatorSize])
	return d
}

// MarshalBinary encodes the profile as
// disc(8) | owner(32) | nameLen(u32 LE) | name(32, zero padded) | level(1)
func (p *ProfileRecord) MarshalBinary() ([]byte, error) {
	if err := ValidateName(p.Name); err != nil {
		return nil, err
	}
	buf := make([]byte, ProfileRecordSize)
	off := copy(buf, profileDiscriminator[:])
	off += copy(buf[off:], p.Owner[:])
	binary.LittleEndian.PutUint32(buf[off:], uint32(len(p.Name)))
	off += 4
	copy(buf[off:off+MaxNameLength], p.Name)
	off += MaxNameLength
	buf[off] = p.Level
	return buf, nil
}

// UnmarshalBinary decodes a profile written by MarshalBinary
func (p *ProfileRecord) UnmarshalBinary(data []byte) error {
	if len(data) != ProfileRecordSize {
		return fmt.Errorf("%w: profile length %d", ErrCorruptRecord, len(data))
	}
	if !bytes.Equal(data[:discriminatorSize], profileDiscriminator[:]) {
		return fmt.Errorf("%w: not a profile record", ErrCorruptRecord)
	}
	off := discriminatorSize
	copy(p.Owner[:], data[off:off+IdentitySize])
	off += IdentitySize
	nameLen := binary.LittleEndian.Uint32(data[off:])
	off += 4
	if nameLen > MaxNameLength {
		return fmt.Errorf("%w: name length %d", ErrCorruptRecord, nameLen)
	}
	p.Name = string(data[off : off+int(nameLen)])
	off += MaxNameLength
	p.Level = data[off]
	return nil
}

// MarshalBinary encodes the combatant as disc(8) | owner(32) | hp(1)
func (c *CombatRecord) MarshalBinary() ([]byte, error) {
	buf := make([]byte, CombatRecordSize)
	off := copy(buf, combatDiscriminator[:])
	off += copy(buf[off:], c.Owner[:])
	buf[off] = c.HP
	return buf, nil
}

// UnmarshalBinary decodes a combatant written by MarshalBinary
func (c *CombatRecord) UnmarshalBinary(data []byte) error {
	if len(data) != CombatRecordSize {
		return fmt.Errorf("%w: combat length %d", ErrCorruptRecord, len(data))
	}
	if !bytes.Equal(data[:discriminatorSize], combatDiscriminator[:]) {
		return fmt.Errorf("%w: not a combat record", ErrCorruptRecord)
	}
	off := discriminatorSize
	copy(c.Owner[:], data[off:off+IdentitySize])
	off += IdentitySize
	c.HP = data[off]
	return nil
}
