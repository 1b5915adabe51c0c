package gatt

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// CCCDFlags is the value of a Client Characteristic Configuration
// descriptor.
type CCCDFlags uint16

// CCCD values.
const (
	CCCDNotify   CCCDFlags = 0x0001
	CCCDIndicate CCCDFlags = 0x0002
)

// Bytes returns the little-endian descriptor value.
func (f CCCDFlags) Bytes() []byte {
	return binary.LittleEndian.AppendUint16(nil, uint16(f))
}

// ParseCCCDFlags parses a comma or pipe separated list of "notify" and
// "indicate". The empty string means no subscription.
func ParseCCCDFlags(s string) (CCCDFlags, error) {
	var f CCCDFlags
	for _, name := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' }) {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "":
		case "notify":
			f |= CCCDNotify
		case "indicate":
			f |= CCCDIndicate
		default:
			return 0, fmt.Errorf("unknown subscription %q (must be notify or indicate)", name)
		}
	}
	return f, nil
}

// allowedBy reports whether every flag in f is backed by a property in p.
func (f CCCDFlags) allowedBy(p Property) bool {
	if f&CCCDNotify != 0 && !p.Has(PropNotify) {
		return false
	}
	if f&CCCDIndicate != 0 && !p.Has(PropIndicate) {
		return false
	}
	return f&^(CCCDNotify|CCCDIndicate) == 0
}
