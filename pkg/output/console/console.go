package console

import (
	"fmt"
	"time"

	"github.com/ericogr/ads1115-sampler/pkg/ads1115"
	"github.com/ericogr/ads1115-sampler/pkg/output"
)

type ConsoleOutput struct{}

func NewConsole() output.Output { return &ConsoleOutput{} }

func (c *ConsoleOutput) Publish(s ads1115.Snapshot) error {
	ts := time.Unix(s.Timestamp, 0).UTC().Format(time.RFC3339)
	for _, ch := range ads1115.Channels {
		fmt.Printf("%s %s=%.5fV\n", ts, ch.Key(), s.InputVoltage[ch.Key()])
	}
	return nil
}

func (c *ConsoleOutput) Close() error { return nil }
