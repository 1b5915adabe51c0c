package gatt

import "github.com/srg/blecore/pkg/att"

// Assigned numbers from the Bluetooth Core and GATT documents.

// Attribute types.
var (
	PrimaryServiceUUID   = att.UUID16(0x2800)
	SecondaryServiceUUID = att.UUID16(0x2801)
	IncludeUUID          = att.UUID16(0x2802)
	CharacteristicUUID   = att.UUID16(0x2803)

	ExtendedPropertiesUUID         = att.UUID16(0x2900)
	UserDescriptionUUID            = att.UUID16(0x2901)
	ClientCharacteristicConfigUUID = att.UUID16(0x2902)
	ServerCharacteristicConfigUUID = att.UUID16(0x2903)
)

// Services and characteristics used by the reference tables.
var (
	GAPServiceUUID     = att.UUID16(0x1800)
	GATTServiceUUID    = att.UUID16(0x1801)
	BatteryServiceUUID = att.UUID16(0x180F)
	BatteryLevelUUID   = att.UUID16(0x2A19)

	// https://www.midi.org/specifications-old/item/bluetooth-le-midi
	MidiServiceUUID = att.MustParseUUID("03B80E5A-EDE8-4B33-A751-6CE34EC4C700")
	MidiIOUUID      = att.MustParseUUID("7772E5DB-3868-4112-A1A9-F2669D106BF3")
)
