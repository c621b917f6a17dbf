package ads1115

import (
	"math/rand"
	"sync"
)

// SimTransport emulates an ADS1115 without hardware: it answers the probe
// at the configured address and returns random conversion codes spanning
// the full 16-bit range, so decoded readings cover both polarities. Enough
// to run the whole pipeline on a machine with no I2C bus.
type SimTransport struct {
	Addr uint16

	mu  sync.Mutex
	rnd *rand.Rand
}

func (s *SimTransport) Probe(addr uint16) bool { return addr == s.Addr }

func (s *SimTransport) WriteRegister(addr uint16, reg uint8, data []byte) error {
	return nil
}

func (s *SimTransport) ReadRegister(addr uint16, reg uint8, n int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rnd == nil {
		s.rnd = rand.New(rand.NewSource(int64(s.Addr)))
	}
	buf := make([]byte, n)
	code := s.rnd.Intn(65536)
	if n >= 2 {
		buf[0] = byte(code >> 8)
		buf[1] = byte(code)
	}
	return buf, nil
}

func (s *SimTransport) Close() error { return nil }
