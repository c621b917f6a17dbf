package console

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/ericogr/ads1115-sampler/pkg/ads1115"
)

func captureStdout(f func()) string {
	r, w, _ := os.Pipe()
	stdout := os.Stdout
	os.Stdout = w
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()
	f()
	_ = w.Close()
	os.Stdout = stdout
	return <-outC
}

func TestConsolePublish(t *testing.T) {
	c := NewConsole()
	snap := ads1115.Snapshot{
		InputVoltage: map[string]float64{
			"in0_in1": 4.68261, "in0_in3": 0, "in1_in3": 0, "in2_in3": 0,
			"in0_gnd": 1.5, "in1_gnd": 0, "in2_gnd": 0, "in3_gnd": 0,
		},
		Timestamp: 1627898911,
	}
	out := captureStdout(func() { _ = c.Publish(snap) })

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("line count: got %d want 8\n%s", len(lines), out)
	}
	if lines[0] != "2021-08-02T10:08:31Z in0_in1=4.68261V" {
		t.Fatalf("first line mismatch: %q", lines[0])
	}
	if lines[4] != "2021-08-02T10:08:31Z in0_gnd=1.50000V" {
		t.Fatalf("in0_gnd line mismatch: %q", lines[4])
	}
}
