// Package phy converts BLE channel indices into RF channels, centre
// frequencies and data whitening seeds.
//
// BLE transmits on 40 RF channels, 0 to 39, with ascending frequencies. RF
// channels 0, 12 and 39 carry advertising, the rest carry data. The Link
// Layer addresses channels by index instead: indices 0..36 are the data
// channels and 37..39 the advertising channels.
package phy

import (
	"errors"
	"fmt"
	"iter"
)

const (
	// BaseFreq is the centre frequency of RF channel 0 in MHz.
	BaseFreq = 2402
	// ChannelSpacing is the distance between RF channels in MHz.
	ChannelSpacing = 2

	MaxDataChannel   = 36
	MaxChannel       = 39
	NumChannels      = 40
	NumDataChannels  = 37
	whiteningIVFixed = 0b0100_0000
)

// ErrInvalidChannel is returned for channel indices above 39.
var ErrInvalidChannel = errors.New("invalid channel index")

// RFChannelFreq returns the centre frequency in MHz of an RF channel.
func RFChannelFreq(rf uint8) uint16 {
	return BaseFreq + uint16(rf)*ChannelSpacing
}

// WhiteningIV returns the 7-bit seed of the x^7 + x^4 + 1 whitening LFSR for
// a channel index: bit 6 set, bits 0..5 holding the index. Whitening covers
// PDU and CRC. It panics if idx is above 39.
func WhiteningIV(idx uint8) uint8 {
	if idx > MaxChannel {
		panic(fmt.Sprintf("phy: whitening channel index %d out of range 0..%d", idx, MaxChannel))
	}
	return whiteningIVFixed | idx
}

// Channel is a channel index of either kind.
type Channel interface {
	Index() uint8
	RFChannel() uint8
	Freq() uint16
	WhiteningIV() uint8
}

// ChannelFromIndex returns the data or advertising channel with index idx.
// Unlike the constructors it reports bad input as an error.
func ChannelFromIndex(idx uint8) (Channel, error) {
	switch {
	case idx <= MaxDataChannel:
		return DataChannel{idx: idx}, nil
	case idx <= MaxChannel:
		return AdvertisingChannel{idx: idx}, nil
	}
	return nil, fmt.Errorf("%w: %d (must be 0..%d)", ErrInvalidChannel, idx, MaxChannel)
}

// AllChannels yields every channel index 0..39 in order.
func AllChannels() iter.Seq[Channel] {
	return func(yield func(Channel) bool) {
		for i := uint8(0); i < NumChannels; i++ {
			c, _ := ChannelFromIndex(i)
			if !yield(c) {
				return
			}
		}
	}
}

// AdvertisingChannel is one of the advertising channel indices 37, 38, 39.
type AdvertisingChannel struct {
	idx uint8
}

var advertisingChannels = [3]AdvertisingChannel{{37}, {38}, {39}}

// NewAdvertisingChannel returns advertising channel idx. It panics unless
// idx is 37, 38 or 39.
func NewAdvertisingChannel(idx uint8) AdvertisingChannel {
	if idx <= MaxDataChannel || idx > MaxChannel {
		panic(fmt.Sprintf("phy: advertising channel index %d out of range 37..39", idx))
	}
	return AdvertisingChannel{idx: idx}
}

// FirstAdvertisingChannel returns the lowest advertising channel, 37.
func FirstAdvertisingChannel() AdvertisingChannel {
	return advertisingChannels[0]
}

// AdvertisingChannels yields 37, 38 and 39 in ascending order. The sequence
// may be ranged over any number of times.
func AdvertisingChannels() iter.Seq[AdvertisingChannel] {
	return func(yield func(AdvertisingChannel) bool) {
		for _, c := range advertisingChannels {
			if !yield(c) {
				return
			}
		}
	}
}

// AdvertisingChannelList returns the three advertising channels.
func AdvertisingChannelList() [3]AdvertisingChannel {
	return advertisingChannels
}

// Cycle returns the next advertising channel, wrapping from 39 to 37.
func (c AdvertisingChannel) Cycle() AdvertisingChannel {
	if c.idx == MaxChannel {
		return FirstAdvertisingChannel()
	}
	return AdvertisingChannel{idx: c.idx + 1}
}

// Index returns the channel index, 37..39.
func (c AdvertisingChannel) Index() uint8 { return c.idx }

// RFChannel returns the RF channel: 0, 12 or 39.
func (c AdvertisingChannel) RFChannel() uint8 {
	switch c.idx {
	case 37:
		return 0
	case 38:
		return 12
	case 39:
		return 39
	}
	panic(fmt.Sprintf("phy: invalid advertising channel index %d", c.idx))
}

// Freq returns the centre frequency in MHz.
func (c AdvertisingChannel) Freq() uint16 { return RFChannelFreq(c.RFChannel()) }

// WhiteningIV returns the whitening LFSR seed for this channel.
func (c AdvertisingChannel) WhiteningIV() uint8 { return WhiteningIV(c.idx) }

func (c AdvertisingChannel) String() string {
	return fmt.Sprintf("adv%d", c.idx)
}

// DataChannel is one of the 37 data channel indices 0..36 used between
// connected devices.
type DataChannel struct {
	idx uint8
}

// NewDataChannel returns data channel idx. It panics if idx is above 36: a
// hopping schedule must never produce such an index.
func NewDataChannel(idx uint8) DataChannel {
	if idx > MaxDataChannel {
		panic(fmt.Sprintf("phy: data channel index %d out of range 0..%d", idx, MaxDataChannel))
	}
	return DataChannel{idx: idx}
}

// Index returns the channel index, 0..36.
func (c DataChannel) Index() uint8 { return c.idx }

// RFChannel returns the RF channel, skipping the advertising RF channels 0
// and 12: indices 0..10 map to 1..11, indices 11..36 to 13..38.
func (c DataChannel) RFChannel() uint8 {
	if c.idx <= 10 {
		return c.idx + 1
	}
	return c.idx + 2
}

// Freq returns the centre frequency in MHz.
func (c DataChannel) Freq() uint16 { return RFChannelFreq(c.RFChannel()) }

// WhiteningIV returns the whitening LFSR seed for this channel.
func (c DataChannel) WhiteningIV() uint8 { return WhiteningIV(c.idx) }

func (c DataChannel) String() string {
	return fmt.Sprintf("data%d", c.idx)
}
