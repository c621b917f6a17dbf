package ads1115

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Transport is the raw register-level bus access the driver needs. The
// driver serializes all calls itself, so implementations do not need to be
// concurrency-safe.
type Transport interface {
	// Probe reports whether a device answers at the given address.
	Probe(addr uint16) bool
	// WriteRegister writes data to the register selected by reg.
	WriteRegister(addr uint16, reg uint8, data []byte) error
	// ReadRegister reads n bytes from the register selected by reg.
	ReadRegister(addr uint16, reg uint8, n int) ([]byte, error)
	Close() error
}

type i2cTransport struct {
	bus i2c.BusCloser
}

// OpenBus initializes the periph host and opens the named I2C bus
// (e.g. "1" -> /dev/i2c-1).
func OpenBus(name string) (Transport, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	bus, err := i2creg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open i2c: %w", err)
	}
	return &i2cTransport{bus: bus}, nil
}

func (t *i2cTransport) Probe(addr uint16) bool {
	// Read one byte so a real transfer hits the bus; a zero-length
	// transaction never solicits the ACK this check depends on.
	var b [1]byte
	return t.bus.Tx(addr, nil, b[:]) == nil
}

func (t *i2cTransport) WriteRegister(addr uint16, reg uint8, data []byte) error {
	w := make([]byte, 0, 1+len(data))
	w = append(w, reg)
	w = append(w, data...)
	return t.bus.Tx(addr, w, nil)
}

func (t *i2cTransport) ReadRegister(addr uint16, reg uint8, n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := t.bus.Tx(addr, []byte{reg}, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (t *i2cTransport) Close() error { return t.bus.Close() }
