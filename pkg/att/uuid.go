package att

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/go-ble/ble"
	"github.com/google/uuid"
)

// uuidKind tags which representation a UUID carries.
type uuidKind uint8

const (
	kindNone uuidKind = iota
	kind16
	kind128
)

// baseUUID is the Bluetooth SIG base UUID 00000000-0000-1000-8000-00805F9B34FB
// in little-endian byte order. A 16-bit UUID occupies bytes 12 and 13.
var baseUUID = [16]byte{
	0xFB, 0x34, 0x9B, 0x5F, 0x80, 0x00, 0x00, 0x80,
	0x00, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// UUID is an attribute type: either a 16-bit short UUID or a full 128-bit UUID.
//
// Compare UUIDs with Equal, not ==. A short UUID and its expansion into the
// SIG base UUID are the same UUID even though their representations differ.
type UUID struct {
	kind  uuidKind
	short uint16
	long  [16]byte // little-endian
}

// UUID16 returns the short-form UUID v.
func UUID16(v uint16) UUID {
	return UUID{kind: kind16, short: v}
}

// UUID128 returns a 128-bit UUID from its little-endian bytes.
func UUID128(b [16]byte) UUID {
	return UUID{kind: kind128, long: b}
}

// ParseUUID parses "2800", "0x2800", a canonical hyphenated 128-bit UUID
// (optionally in braces) or its 32 hex digit form. 128-bit UUIDs are stored
// byte reversed.
func ParseUUID(s string) (UUID, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	switch len(s) {
	case 4, 32:
		b, err := ble.Parse(s)
		if err != nil {
			return UUID{}, fmt.Errorf("invalid UUID %q: %w", s, err)
		}
		return FromBLE(b)
	case 36, 38:
		u, err := uuid.Parse(s)
		if err != nil {
			return UUID{}, fmt.Errorf("invalid 128-bit UUID %q: %w", s, err)
		}
		var le [16]byte
		for i := range u {
			le[15-i] = u[i]
		}
		return UUID128(le), nil
	}
	return UUID{}, fmt.Errorf("invalid UUID %q: must be 4, 32 or 36 characters", s)
}

// MustParseUUID is like ParseUUID but panics on error.
func MustParseUUID(s string) UUID {
	u, err := ParseUUID(s)
	if err != nil {
		panic(err)
	}
	return u
}

// FromBLE converts a go-ble UUID (little-endian, 2 or 16 bytes).
func FromBLE(u ble.UUID) (UUID, error) {
	switch len(u) {
	case 2:
		return UUID16(binary.LittleEndian.Uint16(u)), nil
	case 16:
		var b [16]byte
		copy(b[:], u)
		return UUID128(b), nil
	}
	return UUID{}, fmt.Errorf("UUIDs must have length 2 or 16, got %d", len(u))
}

// IsZero reports whether u is the zero UUID value.
func (u UUID) IsZero() bool {
	return u.kind == kindNone
}

// Is16Bit reports whether u is stored in short form.
func (u UUID) Is16Bit() bool {
	return u.kind == kind16
}

// Short returns the 16-bit value of u. It succeeds for short UUIDs and for
// 128-bit UUIDs built on the SIG base UUID.
func (u UUID) Short() (uint16, bool) {
	switch u.kind {
	case kind16:
		return u.short, true
	case kind128:
		b := u.long
		v := binary.LittleEndian.Uint16(b[12:14])
		b[12], b[13] = 0, 0
		if b == baseUUID {
			return v, true
		}
	}
	return 0, false
}

// Expand returns the little-endian 128-bit form of u.
func (u UUID) Expand() [16]byte {
	switch u.kind {
	case kind16:
		b := baseUUID
		binary.LittleEndian.PutUint16(b[12:14], u.short)
		return b
	case kind128:
		return u.long
	}
	return [16]byte{}
}

// Equal reports whether u and v denote the same UUID, regardless of the
// representation each one uses.
func (u UUID) Equal(v UUID) bool {
	if u.kind == kindNone || v.kind == kindNone {
		return u.kind == v.kind
	}
	if u.kind == kind16 && v.kind == kind16 {
		return u.short == v.short
	}
	return u.Expand() == v.Expand()
}

// Len returns the wire length of u in bytes: 2, 16 or 0 for the zero UUID.
func (u UUID) Len() int {
	switch u.kind {
	case kind16:
		return 2
	case kind128:
		return 16
	}
	return 0
}

// Bytes returns the little-endian wire encoding of u.
func (u UUID) Bytes() []byte {
	switch u.kind {
	case kind16:
		return []byte{byte(u.short), byte(u.short >> 8)}
	case kind128:
		b := u.long
		return b[:]
	}
	return nil
}

// AppendBytes appends the wire encoding of u to b.
func (u UUID) AppendBytes(b []byte) []byte {
	switch u.kind {
	case kind16:
		return binary.LittleEndian.AppendUint16(b, u.short)
	case kind128:
		return append(b, u.long[:]...)
	}
	return b
}

// BLE converts u to a go-ble UUID.
func (u UUID) BLE() ble.UUID {
	return ble.UUID(u.Bytes())
}

// String returns "2800" for short UUIDs and the canonical lowercase
// hyphenated form for 128-bit UUIDs.
func (u UUID) String() string {
	switch u.kind {
	case kind16:
		return fmt.Sprintf("%04x", u.short)
	case kind128:
		var be uuid.UUID
		for i := range u.long {
			be[15-i] = u.long[i]
		}
		return be.String()
	}
	return ""
}

// MarshalText implements encoding.TextMarshaler.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *UUID) UnmarshalText(text []byte) error {
	v, err := ParseUUID(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
