package phy

// Radio is a raw 2.4 GHz transmitter with no BLE specific support.
type Radio interface {
	// Transmit sends every byte of buf over the air, least significant bit
	// first, at freq MHz.
	Transmit(buf []byte, freq uint16)
}

// TransmitOn sends buf on channel c.
func TransmitOn(r Radio, c Channel, buf []byte) {
	r.Transmit(buf, c.Freq())
}
