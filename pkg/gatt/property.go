package gatt

import (
	"fmt"
	"strings"
)

// Property is the characteristic properties bit field of a characteristic
// declaration.
type Property uint8

const (
	PropBroadcast   Property = 0x01
	PropRead        Property = 0x02
	PropWriteCmd    Property = 0x04 // write without response
	PropWriteReq    Property = 0x08
	PropNotify      Property = 0x10
	PropIndicate    Property = 0x20
	PropSignedWrite Property = 0x40
	PropExtended    Property = 0x80
)

var propertyNames = []struct {
	p    Property
	name string
}{
	{PropBroadcast, "broadcast"},
	{PropRead, "read"},
	{PropWriteCmd, "write-cmd"},
	{PropWriteReq, "write"},
	{PropNotify, "notify"},
	{PropIndicate, "indicate"},
	{PropSignedWrite, "signed-write"},
	{PropExtended, "extended"},
}

// aliases accepted by ParseProperties in addition to the canonical names.
var propertyAliases = map[string]Property{
	"write-req":      PropWriteReq,
	"write-nr":       PropWriteCmd,
	"write-no-resp":  PropWriteCmd,
	"writenoresp":    PropWriteCmd,
	"notification":   PropNotify,
	"indication":     PropIndicate,
	"auth-signed":    PropSignedWrite,
	"extended-props": PropExtended,
}

// Has reports whether all bits of q are set in p.
func (p Property) Has(q Property) bool {
	return p&q == q
}

// String lists the set properties, e.g. "read|notify".
func (p Property) String() string {
	var names []string
	for _, pn := range propertyNames {
		if p&pn.p != 0 {
			names = append(names, pn.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// ParseProperties parses a comma or pipe separated list such as
// "read,write,notify".
func ParseProperties(s string) (Property, error) {
	var p Property
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' })
	for _, f := range fields {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		if q, ok := lookupProperty(f); ok {
			p |= q
			continue
		}
		return 0, fmt.Errorf("unknown characteristic property %q", f)
	}
	return p, nil
}

func lookupProperty(name string) (Property, bool) {
	for _, pn := range propertyNames {
		if pn.name == name {
			return pn.p, true
		}
	}
	p, ok := propertyAliases[name]
	return p, ok
}
