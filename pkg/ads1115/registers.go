package ads1115

// Register pointer values.
const (
	regConversion = 0x00
	regConfig     = 0x01
	regLoThresh   = 0x02
	regHiThresh   = 0x03
)

// Writing 1 to the OS bit begins a single conversion.
const osStart = 1

// configWord packs the settings and mux selection into the two bytes of the
// configuration register, MSB first:
//
//	byte 0: OS(1) | MUX(3) | PGA(3) | MODE(1)
//	byte 1: DR(3) | COMP_MODE(1) | COMP_POL(1) | COMP_LAT(1) | COMP_QUE(2)
func configWord(s Settings, ch Channel) [2]byte {
	hi := byte(osStart)<<7 |
		byte(ch)<<4 |
		byte(s.Gain)<<1 |
		byte(s.Mode)
	lo := byte(s.Rate)<<5 |
		byte(s.CompMode)<<4 |
		byte(s.CompPolarity)<<3 |
		byte(s.CompLatch)<<2 |
		byte(s.CompQueue)
	return [2]byte{hi, lo}
}

// decodeRaw converts the big-endian conversion register contents to a
// signed code. The register is 16-bit two's complement, so values above
// 32767 wrap to negative.
func decodeRaw(hi, lo byte) int {
	raw := int(hi)<<8 | int(lo)
	if raw > 32767 {
		raw -= 65536
	}
	return raw
}

// codeToVolts converts a signed conversion code to volts for the given
// gain, subtracting the residual no-load voltage seen at the input pins.
func codeToVolts(code int, g Gain) float64 {
	return float64(code)*g.StepMV()/1000 - vOffset
}
