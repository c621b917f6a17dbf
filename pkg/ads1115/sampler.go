package ads1115

import (
	"context"
	"fmt"
	"math"
	"time"
)

func (d *Driver) start() {
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	go d.run(ctx)
}

// run is the background sampling loop: measure every channel, push one
// snapshot, sleep, repeat. A failed cycle is logged as a warning and its
// snapshot dropped; the loop only stops when the context is cancelled,
// checked at the sleep boundary.
func (d *Driver) run(ctx context.Context) {
	defer close(d.done)
	for {
		if snap, err := d.snapshot(); err != nil {
			d.logger.Printf("warning: sampling cycle failed: %v", err)
		} else {
			d.ring.push(snap)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(d.period):
		}
	}
}

// snapshot measures all channels in sampling order and assembles one
// timestamped set. The bus lock is taken per channel, so direct reads can
// slot in between two channels of a cycle without corrupting either.
func (d *Driver) snapshot() (Snapshot, error) {
	volts := make(map[string]float64, len(Channels))
	for _, ch := range Channels {
		v, err := d.Measure(ch)
		if err != nil {
			return Snapshot{}, fmt.Errorf("%s: %w", ch.Key(), err)
		}
		volts[ch.Key()] = round5(v)
	}
	return Snapshot{InputVoltage: volts, Timestamp: time.Now().Unix()}, nil
}

func round5(v float64) float64 { return math.Round(v*1e5) / 1e5 }
