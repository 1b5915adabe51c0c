package gatt

import (
	"fmt"

	"github.com/srg/blecore/pkg/att"
)

// Service describes a primary service for BuildTable.
type Service struct {
	UUID            att.UUID
	Characteristics []Characteristic
}

// Characteristic describes a characteristic and its descriptors.
// Subscribed is the initial value of the automatic CCCD.
type Characteristic struct {
	UUID        att.UUID
	Properties  Property
	Value       []byte
	Subscribed  CCCDFlags
	Descriptors []Descriptor
}

// Descriptor describes a characteristic descriptor.
type Descriptor struct {
	UUID  att.UUID
	Value []byte
}

// BuildTable lays services out as an attribute table starting at base.
//
// Each service becomes a Primary Service declaration followed, per
// characteristic, by its declaration, its value attribute, a CCCD when the
// characteristic notifies or indicates and declares none itself, and its
// descriptors.
func BuildTable(base att.Handle, services ...Service) (*att.Table, error) {
	if !base.IsValid() {
		return nil, &att.LayoutError{Handle: base, Reason: "base handle is reserved"}
	}

	var attrs []att.Attribute
	h := int(base)
	add := func(typ att.UUID, value []byte) error {
		if h > int(att.HandleMax) {
			return &att.LayoutError{Handle: att.HandleMax, Reason: "table overflows the handle space"}
		}
		attrs = append(attrs, att.NewAttribute(typ, att.Handle(h), value))
		h++
		return nil
	}

	for _, svc := range services {
		if svc.UUID.IsZero() {
			return nil, fmt.Errorf("service at handle %s has no UUID", att.Handle(h))
		}
		if err := add(PrimaryServiceUUID, ServiceDeclarationValue(svc.UUID)); err != nil {
			return nil, err
		}

		for _, c := range svc.Characteristics {
			if c.UUID.IsZero() {
				return nil, fmt.Errorf("characteristic at handle %s in service %s has no UUID", att.Handle(h), svc.UUID)
			}
			if err := c.checkSubscribed(); err != nil {
				return nil, err
			}
			valueHandle := att.Handle(h + 1)
			if err := add(CharacteristicUUID, CharacteristicDeclarationValue(c.Properties, valueHandle, c.UUID)); err != nil {
				return nil, err
			}
			if err := add(c.UUID, c.Value); err != nil {
				return nil, err
			}
			if c.needsCCCD() {
				if err := add(ClientCharacteristicConfigUUID, c.Subscribed.Bytes()); err != nil {
					return nil, err
				}
			}
			for _, d := range c.Descriptors {
				if err := add(d.UUID, d.Value); err != nil {
					return nil, err
				}
			}
		}
	}

	return att.NewTable(base, attrs)
}

func (c Characteristic) needsCCCD() bool {
	if c.Properties&(PropNotify|PropIndicate) == 0 {
		return false
	}
	for _, d := range c.Descriptors {
		if d.UUID.Equal(ClientCharacteristicConfigUUID) {
			return false
		}
	}
	return true
}

func (c Characteristic) checkSubscribed() error {
	if c.Subscribed == 0 {
		return nil
	}
	if !c.Subscribed.allowedBy(c.Properties) {
		return fmt.Errorf("characteristic %s: subscription %#04x not allowed by properties %s", c.UUID, uint16(c.Subscribed), c.Properties)
	}
	if !c.needsCCCD() {
		return fmt.Errorf("characteristic %s: subscription conflicts with its explicit CCCD", c.UUID)
	}
	return nil
}
