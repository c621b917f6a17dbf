package ads1115

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

const (
	// settleDelay is the mandatory gap between a configuration write and
	// reading the conversion result, and again before the next write.
	settleDelay = 10 * time.Millisecond
	// samplingPeriod is the pause between background sampling cycles.
	samplingPeriod = 500 * time.Millisecond
	// vOffset is the residual voltage at the input pins under no load.
	vOffset = 0.02
	// historyDepth is the capacity of the snapshot ring.
	historyDepth = 20
)

// Driver owns one ADS1115 on an I2C bus. All bus access is serialized per
// full measurement, so a direct read can never interleave its config/read
// pair with the background sampler's.
type Driver struct {
	tr       Transport
	settings Settings
	words    [8][2]byte // per-channel config words, fixed at construction
	logger   *log.Logger

	busMu sync.Mutex // held for a whole Measure, not per transfer

	ring   snapshotRing
	period time.Duration
	cancel context.CancelFunc
	done   chan struct{}
}

// New validates the settings, probes the bus for the device, precomputes
// the per-channel configuration words and starts the background sampler.
// The transport is owned by the driver after a successful return; Close
// stops the sampler and closes it. A nil logger means log.Default().
func New(tr Transport, s Settings, logger *log.Logger) (*Driver, error) {
	d, err := newDriver(tr, s, logger)
	if err != nil {
		return nil, err
	}
	d.start()
	return d, nil
}

// Open opens the named I2C bus and constructs a driver on it.
func Open(bus string, s Settings, logger *log.Logger) (*Driver, error) {
	tr, err := OpenBus(bus)
	if err != nil {
		return nil, err
	}
	d, err := New(tr, s, logger)
	if err != nil {
		_ = tr.Close()
		return nil, err
	}
	return d, nil
}

func newDriver(tr Transport, s Settings, logger *log.Logger) (*Driver, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	var present []Address
	for _, a := range addresses {
		if tr.Probe(uint16(a)) {
			present = append(present, a)
		}
	}
	if !containsAddr(present, s.Address) {
		return nil, fmt.Errorf("no device at address 0x%02X (detected: %v)", uint16(s.Address), present)
	}
	d := &Driver{
		tr:       tr,
		settings: s,
		logger:   logger,
		period:   samplingPeriod,
		done:     make(chan struct{}),
	}
	for _, ch := range Channels {
		d.words[ch] = configWord(s, ch)
	}
	return d, nil
}

func containsAddr(as []Address, a Address) bool {
	for _, x := range as {
		if x == a {
			return true
		}
	}
	return false
}

// Settings returns the configuration the driver was built with.
func (d *Driver) Settings() Settings { return d.settings }

// Measure runs the full conversion sequence for one channel: write the
// channel's config word, wait for settling, read the conversion register,
// wait again, repeated Samples times. It returns the unrounded mean and
// blocks for roughly 2*Samples*10ms plus bus latency. Transport errors
// propagate unchanged; there is no retry here.
func (d *Driver) Measure(ch Channel) (float64, error) {
	if !ch.valid() {
		return 0, fmt.Errorf("invalid channel %d", ch)
	}
	d.busMu.Lock()
	defer d.busMu.Unlock()

	addr := uint16(d.settings.Address)
	word := d.words[ch]
	var total float64
	for i := 0; i < d.settings.Samples; i++ {
		// The config word is rewritten every iteration, even in
		// continuous mode, so each read gets a fresh start bit.
		if err := d.tr.WriteRegister(addr, regConfig, word[:]); err != nil {
			return 0, fmt.Errorf("write config: %w", err)
		}
		time.Sleep(settleDelay)
		data, err := d.tr.ReadRegister(addr, regConversion, 2)
		if err != nil {
			return 0, fmt.Errorf("read conversion: %w", err)
		}
		if len(data) < 2 {
			return 0, fmt.Errorf("read conversion: short reply, got %d bytes", len(data))
		}
		time.Sleep(settleDelay)
		total += codeToVolts(decodeRaw(data[0], data[1]), d.settings.Gain)
	}
	return total / float64(d.settings.Samples), nil
}

// Named single-channel reads, one per input pair.

func (d *Driver) ReadIn0In1() (float64, error) { return d.Measure(In0In1) }
func (d *Driver) ReadIn0In3() (float64, error) { return d.Measure(In0In3) }
func (d *Driver) ReadIn1In3() (float64, error) { return d.Measure(In1In3) }
func (d *Driver) ReadIn2In3() (float64, error) { return d.Measure(In2In3) }
func (d *Driver) ReadIn0Gnd() (float64, error) { return d.Measure(In0Gnd) }
func (d *Driver) ReadIn1Gnd() (float64, error) { return d.Measure(In1Gnd) }
func (d *Driver) ReadIn2Gnd() (float64, error) { return d.Measure(In2Gnd) }
func (d *Driver) ReadIn3Gnd() (float64, error) { return d.Measure(In3Gnd) }

// Latest pops the oldest buffered snapshot. It never blocks; ok is false
// when the sampler has not completed a cycle yet.
func (d *Driver) Latest() (Snapshot, bool) { return d.ring.pop() }

// Close cancels the background sampler at its next sleep boundary, waits
// for it to exit and closes the transport.
func (d *Driver) Close() error {
	if d.cancel != nil {
		d.cancel()
		<-d.done
	}
	return d.tr.Close()
}
