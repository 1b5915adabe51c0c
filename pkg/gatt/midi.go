package gatt

import "github.com/srg/blecore/pkg/att"

// MidiServiceAttrs is an attribute table that enumerates as a BLE MIDI
// Service with its MIDI Data I/O characteristic.
type MidiServiceAttrs struct {
	attributes [4]att.Attribute
}

// NewMidiServiceAttrs returns the MIDI Service table at handles 1..4.
func NewMidiServiceAttrs() *MidiServiceAttrs {
	return &MidiServiceAttrs{
		attributes: [4]att.Attribute{
			att.NewAttribute(
				PrimaryServiceUUID,
				0x0001,
				[]byte{
					0x00, 0xC7, 0xC4, 0x4E, 0xE3, 0x6C,
					0x51, 0xA7,
					0x33, 0x4B,
					0xE8, 0xED,
					0x5A, 0x0E, 0xB8, 0x03,
				}, // 03B80E5A-EDE8-4B33-A751-6CE34EC4C700
			),
			att.NewAttribute(
				CharacteristicUUID,
				0x0002,
				[]byte{
					byte(PropRead | PropWriteReq | PropWriteCmd | PropNotify),
					0x03, 0x00, // value handle 0x0003
					0xF3, 0x6B, 0x10, 0x9D, 0x66, 0xF2,
					0xA9, 0xA1,
					0x12, 0x41,
					0x68, 0x38,
					0xDB, 0xE5, 0x72, 0x77,
				}, // 7772E5DB-3868-4112-A1A9-F2669D106BF3
			),
			// MIDI Data I/O value, empty until a packet is queued.
			att.NewAttribute(
				MidiIOUUID,
				0x0003,
				[]byte{},
			),
			att.NewAttribute(
				ClientCharacteristicConfigUUID,
				0x0004,
				[]byte{0x00, 0x00},
			),
		},
	}
}

func (m *MidiServiceAttrs) ForAttrsInRange(r att.HandleRange, f att.Visitor) error {
	return att.VisitSlice(m, m.attributes[:], 0x0001, r, f)
}

func (m *MidiServiceAttrs) IsGroupingAttr(uuid att.UUID) bool {
	return uuid.Equal(PrimaryServiceUUID)
}

// GroupEnd answers for the two declarations, like BatteryServiceAttrs.
func (m *MidiServiceAttrs) GroupEnd(h att.Handle) (*att.Attribute, bool) {
	switch h {
	case 0x0001, 0x0002:
		return &m.attributes[3], true
	}
	return nil, false
}
