package ads1115

import "fmt"

// Address is one of the four I2C addresses selectable via the ADDR pin.
type Address uint16

const (
	Addr48 Address = 0x48 // ADDR - GND (default)
	Addr49 Address = 0x49 // ADDR - VDD
	Addr4A Address = 0x4A // ADDR - SDA
	Addr4B Address = 0x4B // ADDR - SCL
)

// addresses lists every address the device can answer on, used by the
// construction-time bus scan.
var addresses = [4]Address{Addr48, Addr49, Addr4A, Addr4B}

func (a Address) String() string { return fmt.Sprintf("0x%02X", uint16(a)) }

func (a Address) valid() bool {
	switch a {
	case Addr48, Addr49, Addr4A, Addr4B:
		return true
	}
	return false
}

// Gain selects the programmable full-scale range. The value is the exact
// 3-bit PGA field of the configuration register.
type Gain uint8

const (
	GainFSR6144  Gain = 0b000 // ±6.144V
	GainFSR4096  Gain = 0b001 // ±4.096V
	GainFSR2048  Gain = 0b010 // ±2.048V (device default)
	GainFSR1024  Gain = 0b011 // ±1.024V
	GainFSR0512  Gain = 0b100 // ±0.512V
	GainFSR0256  Gain = 0b101 // ±0.256V
	GainFSR0256B Gain = 0b110 // ±0.256V
	GainFSR0256C Gain = 0b111 // ±0.256V
)

// stepMV maps each gain code to its step size in millivolts per code unit.
// The three ±0.256V encodings share one step size; the datasheet reserves
// the extra codes but the scale does not change.
var stepMV = map[Gain]float64{
	GainFSR6144:  0.1875,
	GainFSR4096:  0.125,
	GainFSR2048:  0.0625,
	GainFSR1024:  0.03125,
	GainFSR0512:  0.015625,
	GainFSR0256:  0.0078125,
	GainFSR0256B: 0.0078125,
	GainFSR0256C: 0.0078125,
}

// StepMV returns the voltage step in millivolts per code unit.
func (g Gain) StepMV() float64 { return stepMV[g] }

func (g Gain) valid() bool {
	_, ok := stepMV[g]
	return ok
}

// Mode is the conversion operating mode bit.
type Mode uint8

const (
	Continuous Mode = 0b0
	SingleShot Mode = 0b1 // device default
)

func (m Mode) valid() bool { return m == Continuous || m == SingleShot }

// DataRate is the 3-bit output data rate field, in samples per second.
type DataRate uint8

const (
	Rate8SPS   DataRate = 0b000
	Rate16SPS  DataRate = 0b001
	Rate32SPS  DataRate = 0b010
	Rate64SPS  DataRate = 0b011
	Rate128SPS DataRate = 0b100 // device default
	Rate250SPS DataRate = 0b101
	Rate475SPS DataRate = 0b110
	Rate860SPS DataRate = 0b111
)

func (r DataRate) valid() bool { return r <= Rate860SPS }

// CompMode selects traditional or window comparator behavior.
type CompMode uint8

const (
	CompTraditional CompMode = 0b0 // default
	CompWindow      CompMode = 0b1
)

func (c CompMode) valid() bool { return c == CompTraditional || c == CompWindow }

// CompPolarity sets the ALERT/RDY pin polarity.
type CompPolarity uint8

const (
	CompActiveLow  CompPolarity = 0b0 // default
	CompActiveHigh CompPolarity = 0b1
)

func (c CompPolarity) valid() bool { return c == CompActiveLow || c == CompActiveHigh }

// CompLatch controls whether the ALERT/RDY pin latches once asserted.
type CompLatch uint8

const (
	CompNonLatching CompLatch = 0b0 // default
	CompLatching    CompLatch = 0b1
)

func (c CompLatch) valid() bool { return c == CompNonLatching || c == CompLatching }

// CompQueue is the number of out-of-threshold conversions before the
// comparator asserts. The encodings are not contiguous with their meaning,
// so the register value is spelled out per constant.
type CompQueue uint8

const (
	CompQueueOne  CompQueue = 0b00
	CompQueueTwo  CompQueue = 0b01
	CompQueueFour CompQueue = 0b10
	CompDisabled  CompQueue = 0b11 // default
)

func (c CompQueue) valid() bool { return c <= CompDisabled }

// Channel selects the input multiplexer: which pin pair the device
// digitizes. The value is the exact 3-bit MUX field.
type Channel uint8

const (
	In0In1 Channel = 0b000 // AINP = AIN0, AINN = AIN1
	In0In3 Channel = 0b001 // AINP = AIN0, AINN = AIN3
	In1In3 Channel = 0b010 // AINP = AIN1, AINN = AIN3
	In2In3 Channel = 0b011 // AINP = AIN2, AINN = AIN3
	In0Gnd Channel = 0b100 // AINP = AIN0, AINN = GND
	In1Gnd Channel = 0b101 // AINP = AIN1, AINN = GND
	In2Gnd Channel = 0b110 // AINP = AIN2, AINN = GND
	In3Gnd Channel = 0b111 // AINP = AIN3, AINN = GND
)

// Channels lists every input pair in sampling order: the four differential
// pairs first, then the four single-ended inputs.
var Channels = [8]Channel{In0In1, In0In3, In1In3, In2In3, In0Gnd, In1Gnd, In2Gnd, In3Gnd}

var channelKeys = map[Channel]string{
	In0In1: "in0_in1",
	In0In3: "in0_in3",
	In1In3: "in1_in3",
	In2In3: "in2_in3",
	In0Gnd: "in0_gnd",
	In1Gnd: "in1_gnd",
	In2Gnd: "in2_gnd",
	In3Gnd: "in3_gnd",
}

// Key returns the fixed string key used for this channel in snapshots.
func (c Channel) Key() string { return channelKeys[c] }

func (c Channel) valid() bool {
	_, ok := channelKeys[c]
	return ok
}

// Settings holds the full device configuration. Immutable once handed to
// New; every field maps to a fixed bit field of the configuration register
// except Samples, which is the per-measurement averaging count.
type Settings struct {
	Address      Address
	Gain         Gain
	Mode         Mode
	Rate         DataRate
	CompMode     CompMode
	CompPolarity CompPolarity
	CompLatch    CompLatch
	CompQueue    CompQueue
	Samples      int
}

// DefaultSettings mirrors the device defaults where sensible, with the
// data rate raised to 475 SPS so conversions finish well inside the
// settling delay.
func DefaultSettings() Settings {
	return Settings{
		Address:      Addr48,
		Gain:         GainFSR4096,
		Mode:         SingleShot,
		Rate:         Rate475SPS,
		CompMode:     CompTraditional,
		CompPolarity: CompActiveLow,
		CompLatch:    CompNonLatching,
		CompQueue:    CompDisabled,
		Samples:      5,
	}
}

// Validate rejects any field outside its register encoding range. Called at
// construction so a bad value can never reach the bus.
func (s Settings) Validate() error {
	if !s.Address.valid() {
		return fmt.Errorf("invalid i2c address 0x%02X", uint16(s.Address))
	}
	if !s.Gain.valid() {
		return fmt.Errorf("invalid gain code %d", s.Gain)
	}
	if !s.Mode.valid() {
		return fmt.Errorf("invalid operating mode %d", s.Mode)
	}
	if !s.Rate.valid() {
		return fmt.Errorf("invalid data rate code %d", s.Rate)
	}
	if !s.CompMode.valid() {
		return fmt.Errorf("invalid comparator mode %d", s.CompMode)
	}
	if !s.CompPolarity.valid() {
		return fmt.Errorf("invalid comparator polarity %d", s.CompPolarity)
	}
	if !s.CompLatch.valid() {
		return fmt.Errorf("invalid comparator latching %d", s.CompLatch)
	}
	if !s.CompQueue.valid() {
		return fmt.Errorf("invalid comparator queue %d", s.CompQueue)
	}
	if s.Samples <= 0 {
		return fmt.Errorf("samples must be > 0, got %d", s.Samples)
	}
	return nil
}
