// Package bledb names well-known Bluetooth SIG UUIDs.
//
// The table is small and hand maintained: it covers the declarations,
// descriptors, services and characteristics the attribute tables of this
// module use, plus the common GAP/GATT entries.
package bledb

import (
	"strings"

	"github.com/srg/blecore/pkg/att"
	"github.com/srg/blecore/pkg/gatt"
)

// Kind is the category of a well-known UUID.
type Kind string

const (
	Declaration    Kind = "Declaration"
	Service        Kind = "Service"
	Characteristic Kind = "Characteristic"
	Descriptor     Kind = "Descriptor"
)

// Entry is one well-known UUID.
type Entry struct {
	Name string
	Kind Kind
}

var known = []struct {
	uuid  att.UUID
	entry Entry
}{
	{gatt.GAPServiceUUID, Entry{"Generic Access", Service}},
	{gatt.GATTServiceUUID, Entry{"Generic Attribute", Service}},
	{att.UUID16(0x180A), Entry{"Device Information", Service}},
	{att.UUID16(0x180D), Entry{"Heart Rate", Service}},
	{gatt.BatteryServiceUUID, Entry{"Battery Service", Service}},
	{gatt.MidiServiceUUID, Entry{"MIDI Service", Service}},

	{gatt.PrimaryServiceUUID, Entry{"Primary Service", Declaration}},
	{gatt.SecondaryServiceUUID, Entry{"Secondary Service", Declaration}},
	{gatt.IncludeUUID, Entry{"Include", Declaration}},
	{gatt.CharacteristicUUID, Entry{"Characteristic", Declaration}},

	{gatt.ExtendedPropertiesUUID, Entry{"Characteristic Extended Properties", Descriptor}},
	{gatt.UserDescriptionUUID, Entry{"Characteristic User Description", Descriptor}},
	{gatt.ClientCharacteristicConfigUUID, Entry{"Client Characteristic Configuration", Descriptor}},
	{gatt.ServerCharacteristicConfigUUID, Entry{"Server Characteristic Configuration", Descriptor}},
	{att.UUID16(0x2904), Entry{"Characteristic Presentation Format", Descriptor}},

	{att.UUID16(0x2A00), Entry{"Device Name", Characteristic}},
	{att.UUID16(0x2A01), Entry{"Appearance", Characteristic}},
	{gatt.BatteryLevelUUID, Entry{"Battery Level", Characteristic}},
	{att.UUID16(0x2A37), Entry{"Heart Rate Measurement", Characteristic}},
	{att.UUID16(0x2A38), Entry{"Body Sensor Location", Characteristic}},
	{gatt.MidiIOUUID, Entry{"MIDI Data I/O", Characteristic}},
}

// entries is keyed by the expanded form, so 16-bit UUIDs and their SIG base
// 128-bit forms share a key.
var entries = func() map[[16]byte]Entry {
	m := make(map[[16]byte]Entry, len(known))
	for _, k := range known {
		m[k.uuid.Expand()] = k.entry
	}
	return m
}()

// Lookup returns the entry for u. 128-bit UUIDs on the SIG base resolve
// like their short form.
func Lookup(u att.UUID) (Entry, bool) {
	if u.IsZero() {
		return Entry{}, false
	}
	e, ok := entries[u.Expand()]
	return e, ok
}

// Name returns the name of u, or "" when unknown.
func Name(u att.UUID) string {
	e, _ := Lookup(u)
	return e.Name
}

// NormalizeUUID converts a UUID string to lowercase without dashes. Full
// 128-bit UUIDs in Bluetooth SIG base format (0000xxxx-0000-1000-8000-00805f9b34fb)
// collapse to their 16-bit short form (xxxx). It returns "" for strings that
// are not UUIDs.
func NormalizeUUID(s string) string {
	s = strings.Trim(strings.TrimSpace(s), "{}")
	u, err := att.ParseUUID(s)
	if err != nil {
		return ""
	}
	if v, ok := u.Short(); ok {
		return att.UUID16(v).String()
	}
	return strings.ReplaceAll(u.String(), "-", "")
}

func lookupKind(s string, kind Kind) string {
	u, err := att.ParseUUID(strings.Trim(strings.TrimSpace(s), "{}"))
	if err != nil {
		return ""
	}
	e, ok := Lookup(u)
	if !ok || e.Kind != kind {
		return ""
	}
	return e.Name
}

// LookupService returns the name of a well-known service UUID string.
func LookupService(s string) string { return lookupKind(s, Service) }

// LookupCharacteristic returns the name of a well-known characteristic UUID string.
func LookupCharacteristic(s string) string { return lookupKind(s, Characteristic) }

// LookupDescriptor returns the name of a well-known descriptor UUID string.
func LookupDescriptor(s string) string { return lookupKind(s, Descriptor) }
