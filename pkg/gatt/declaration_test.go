package gatt

import (
	"testing"

	"github.com/srg/blecore/pkg/att"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacteristicDeclarationValue(t *testing.T) {
	assert.Equal(t,
		[]byte{0x12, 0x34, 0x12, 0x37, 0x2A},
		CharacteristicDeclarationValue(PropRead|PropNotify, 0x1234, att.UUID16(0x2A37)))

	long := CharacteristicDeclarationValue(PropWriteCmd, 0x0003, MidiIOUUID)
	require.Len(t, long, 19)
	assert.Equal(t, byte(0x04), long[0])
	assert.Equal(t, []byte{0x03, 0x00}, long[1:3])
	assert.Equal(t, MidiIOUUID.Bytes(), long[3:])
}

func TestParseCharacteristicDeclaration(t *testing.T) {
	d, err := ParseCharacteristicDeclaration([]byte{0x1A, 0x05, 0x01, 0x19, 0x2A})
	require.NoError(t, err)
	assert.Equal(t, PropRead|PropWriteReq|PropNotify, d.Properties)
	assert.Equal(t, att.Handle(0x0105), d.ValueHandle)
	assert.True(t, d.UUID.Equal(BatteryLevelUUID))

	_, err = ParseCharacteristicDeclaration([]byte{0x02, 0x03})
	assert.Error(t, err)
}

func TestServiceDeclarationValue(t *testing.T) {
	assert.Equal(t, []byte{0x0F, 0x18}, ServiceDeclarationValue(BatteryServiceUUID))
	assert.Len(t, ServiceDeclarationValue(MidiServiceUUID), 16)
}

func TestPropertyString(t *testing.T) {
	tests := []struct {
		p        Property
		expected string
	}{
		{p: 0, expected: "none"},
		{p: PropRead, expected: "read"},
		{p: PropRead | PropWriteCmd | PropWriteReq | PropNotify, expected: "read|write-cmd|write|notify"},
		{p: 0xFF, expected: "broadcast|read|write-cmd|write|notify|indicate|signed-write|extended"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.p.String())
	}
}

func TestPropertyBits(t *testing.T) {
	assert.Equal(t, Property(0x02), PropRead)
	assert.Equal(t, Property(0x04), PropWriteCmd)
	assert.Equal(t, Property(0x08), PropWriteReq)
	assert.Equal(t, Property(0x10), PropNotify)
	assert.True(t, (PropRead | PropNotify).Has(PropNotify))
	assert.False(t, PropRead.Has(PropRead|PropNotify))
}

func TestParseProperties(t *testing.T) {
	tests := []struct {
		input    string
		expected Property
		wantErr  bool
	}{
		{input: "", expected: 0},
		{input: "read", expected: PropRead},
		{input: "read,write,notify", expected: PropRead | PropWriteReq | PropNotify},
		{input: "Read | write-nr", expected: PropRead | PropWriteCmd},
		{input: "indication, extended-props", expected: PropIndicate | PropExtended},
		{input: "read,teleport", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParseProperties(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}
