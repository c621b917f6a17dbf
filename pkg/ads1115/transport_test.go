package ads1115

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/physic"
)

type stubTx struct {
	addr uint16
	w, r int
}

// stubBus models the kernel I2C driver closely enough to matter: a
// transaction with no payload in either direction is short-circuited and
// cannot fail, so it says nothing about device presence.
type stubBus struct {
	present map[uint16]bool
	txs     []stubTx
	closed  bool
}

func (b *stubBus) String() string                    { return "stub" }
func (b *stubBus) SetSpeed(f physic.Frequency) error { return nil }

func (b *stubBus) Close() error {
	b.closed = true
	return nil
}

func (b *stubBus) Tx(addr uint16, w, r []byte) error {
	if len(w) == 0 && len(r) == 0 {
		return nil
	}
	b.txs = append(b.txs, stubTx{addr: addr, w: len(w), r: len(r)})
	if !b.present[addr] {
		return errors.New("remote i/o error")
	}
	return nil
}

func TestProbeIssuesRealTransfer(t *testing.T) {
	bus := &stubBus{present: map[uint16]bool{0x48: true}}
	tr := &i2cTransport{bus: bus}

	if !tr.Probe(0x48) {
		t.Fatalf("present device not detected")
	}
	if tr.Probe(0x49) {
		t.Fatalf("absent device reported present")
	}
	if len(bus.txs) != 2 {
		t.Fatalf("transactions reached the bus: got %d; want 2", len(bus.txs))
	}
	for _, tx := range bus.txs {
		if tx.w+tx.r == 0 {
			t.Fatalf("probe of 0x%02X issued an empty transaction", tx.addr)
		}
	}
}

func TestTransportRegisterFraming(t *testing.T) {
	bus := &stubBus{present: map[uint16]bool{0x48: true}}
	tr := &i2cTransport{bus: bus}

	if err := tr.WriteRegister(0x48, regConfig, []byte{0xC3, 0x83}); err != nil {
		t.Fatalf("write register: %v", err)
	}
	if got := bus.txs[len(bus.txs)-1]; got.w != 3 || got.r != 0 {
		t.Fatalf("write framing: got w=%d r=%d; want w=3 r=0", got.w, got.r)
	}

	data, err := tr.ReadRegister(0x48, regConversion, 2)
	if err != nil {
		t.Fatalf("read register: %v", err)
	}
	if len(data) != 2 {
		t.Fatalf("read length: got %d; want 2", len(data))
	}
	if got := bus.txs[len(bus.txs)-1]; got.w != 1 || got.r != 2 {
		t.Fatalf("read framing: got w=%d r=%d; want w=1 r=2", got.w, got.r)
	}

	if err := tr.Close(); err != nil || !bus.closed {
		t.Fatalf("close: err=%v closed=%v", err, bus.closed)
	}
}
