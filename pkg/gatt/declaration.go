package gatt

import (
	"encoding/binary"
	"fmt"

	"github.com/srg/blecore/pkg/att"
)

// ServiceDeclarationValue returns the value of a service declaration: the
// service UUID, little-endian.
func ServiceDeclarationValue(u att.UUID) []byte {
	return u.Bytes()
}

// CharacteristicDeclarationValue returns the value of a characteristic
// declaration: properties, value handle (little-endian) and UUID
// (little-endian).
func CharacteristicDeclarationValue(props Property, valueHandle att.Handle, u att.UUID) []byte {
	b := make([]byte, 0, 3+u.Len())
	b = append(b, byte(props))
	b = binary.LittleEndian.AppendUint16(b, uint16(valueHandle))
	return u.AppendBytes(b)
}

// CharacteristicDeclaration is a decoded characteristic declaration value.
type CharacteristicDeclaration struct {
	Properties  Property
	ValueHandle att.Handle
	UUID        att.UUID
}

// ParseCharacteristicDeclaration decodes a characteristic declaration value.
func ParseCharacteristicDeclaration(b []byte) (CharacteristicDeclaration, error) {
	var d CharacteristicDeclaration
	switch len(b) {
	case 5:
		d.UUID = att.UUID16(binary.LittleEndian.Uint16(b[3:]))
	case 19:
		var u [16]byte
		copy(u[:], b[3:])
		d.UUID = att.UUID128(u)
	default:
		return d, fmt.Errorf("characteristic declaration must be 5 or 19 bytes, got %d", len(b))
	}
	d.Properties = Property(b[0])
	d.ValueHandle = att.Handle(binary.LittleEndian.Uint16(b[1:3]))
	return d, nil
}
