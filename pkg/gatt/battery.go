package gatt

import "github.com/srg/blecore/pkg/att"

// BatteryServiceAttrs is an attribute table that enumerates as a Battery
// Service with a single readable Battery Level characteristic.
type BatteryServiceAttrs struct {
	attributes [3]att.Attribute
}

// NewBatteryServiceAttrs returns the Battery Service table at handles 1..3
// reporting a level of 48%.
func NewBatteryServiceAttrs() *BatteryServiceAttrs {
	return &BatteryServiceAttrs{
		attributes: [3]att.Attribute{
			att.NewAttribute(
				PrimaryServiceUUID,
				0x0001,
				[]byte{0x0F, 0x18}, // Battery Service = 0x180F
			),
			att.NewAttribute(
				CharacteristicUUID,
				0x0002,
				[]byte{
					byte(PropRead),
					0x03, 0x00, // value handle 0x0003
					0x19, 0x2A, // Battery Level = 0x2A19
				},
			),
			att.NewAttribute(
				BatteryLevelUUID,
				0x0003,
				[]byte{48},
			),
		},
	}
}

// SetLevel updates the Battery Level value.
func (b *BatteryServiceAttrs) SetLevel(percent uint8) {
	b.attributes[2].Value = []byte{percent}
}

func (b *BatteryServiceAttrs) ForAttrsInRange(r att.HandleRange, f att.Visitor) error {
	return att.VisitSlice(b, b.attributes[:], 0x0001, r, f)
}

func (b *BatteryServiceAttrs) IsGroupingAttr(uuid att.UUID) bool {
	// TODO: recognize Secondary Service (0x2801) once a table declares one.
	return uuid.Equal(PrimaryServiceUUID)
}

// GroupEnd answers for the service declaration and the characteristic
// declaration only.
func (b *BatteryServiceAttrs) GroupEnd(h att.Handle) (*att.Attribute, bool) {
	switch h {
	case 0x0001, 0x0002:
		return &b.attributes[2], true
	}
	return nil, false
}
