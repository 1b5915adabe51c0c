package gatt

import (
	"testing"

	"github.com/srg/blecore/pkg/att"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTableLayout(t *testing.T) {
	tbl, err := BuildTable(0x0010,
		Service{
			UUID: att.UUID16(0x180D),
			Characteristics: []Characteristic{
				{UUID: att.UUID16(0x2A37), Properties: PropNotify, Value: []byte{0x00, 0x48}},
				{UUID: att.UUID16(0x2A38), Properties: PropRead, Value: []byte{0x01},
					Descriptors: []Descriptor{{UUID: UserDescriptionUUID, Value: []byte("loc")}}},
			},
		},
		Service{UUID: BatteryServiceUUID},
	)
	require.NoError(t, err)

	attrs, err := att.Collect(tbl, att.FullRange)
	require.NoError(t, err)

	expectedTypes := []att.UUID{
		PrimaryServiceUUID,             // 0x10
		CharacteristicUUID,             // 0x11
		att.UUID16(0x2A37),             // 0x12
		ClientCharacteristicConfigUUID, // 0x13 automatic
		CharacteristicUUID,             // 0x14
		att.UUID16(0x2A38),             // 0x15
		UserDescriptionUUID,            // 0x16
		PrimaryServiceUUID,             // 0x17
	}
	require.Len(t, attrs, len(expectedTypes))
	for i, typ := range expectedTypes {
		assert.True(t, typ.Equal(attrs[i].Type), "type at %s: got %s want %s", attrs[i].Handle, attrs[i].Type, typ)
		assert.Equal(t, att.Handle(0x10+i), attrs[i].Handle)
	}

	decl, err := ParseCharacteristicDeclaration(attrs[4].Value)
	require.NoError(t, err)
	assert.Equal(t, att.Handle(0x15), decl.ValueHandle)

	end, ok := tbl.GroupEnd(0x12)
	require.True(t, ok)
	assert.Equal(t, att.Handle(0x16), end.Handle)

	end, ok = tbl.GroupEnd(0x17)
	require.True(t, ok)
	assert.Equal(t, att.Handle(0x17), end.Handle)
}

func TestBuildTableExplicitCCCD(t *testing.T) {
	tbl, err := BuildTable(1, Service{
		UUID: BatteryServiceUUID,
		Characteristics: []Characteristic{{
			UUID:        BatteryLevelUUID,
			Properties:  PropRead | PropNotify,
			Value:       []byte{100},
			Descriptors: []Descriptor{{UUID: ClientCharacteristicConfigUUID, Value: []byte{0x01, 0x00}}},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, tbl.Len())

	cccd, ok := tbl.At(4)
	require.True(t, ok)
	assert.Equal(t, []byte{0x01, 0x00}, cccd.Value)
}

func TestBuildTableErrors(t *testing.T) {
	_, err := BuildTable(0, Service{UUID: BatteryServiceUUID})
	var layoutErr *att.LayoutError
	assert.ErrorAs(t, err, &layoutErr)

	_, err = BuildTable(0xFFFE, Service{
		UUID:            BatteryServiceUUID,
		Characteristics: []Characteristic{{UUID: BatteryLevelUUID, Properties: PropRead}},
	})
	assert.ErrorAs(t, err, &layoutErr)

	_, err = BuildTable(1, Service{})
	assert.Error(t, err)

	_, err = BuildTable(1, Service{UUID: BatteryServiceUUID, Characteristics: []Characteristic{{}}})
	assert.Error(t, err)
}
