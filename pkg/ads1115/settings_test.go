package ads1115

import "testing"

func TestValidateDefaults(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"address", func(s *Settings) { s.Address = 0x50 }},
		{"gain", func(s *Settings) { s.Gain = 8 }},
		{"mode", func(s *Settings) { s.Mode = 2 }},
		{"rate", func(s *Settings) { s.Rate = 9 }},
		{"comp mode", func(s *Settings) { s.CompMode = 3 }},
		{"comp polarity", func(s *Settings) { s.CompPolarity = 2 }},
		{"comp latch", func(s *Settings) { s.CompLatch = 2 }},
		{"comp queue", func(s *Settings) { s.CompQueue = 4 }},
		{"samples zero", func(s *Settings) { s.Samples = 0 }},
		{"samples negative", func(s *Settings) { s.Samples = -1 }},
	}
	for _, tt := range tests {
		s := DefaultSettings()
		tt.mutate(&s)
		if err := s.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tt.name)
		}
	}
}

func TestGainStepSizes(t *testing.T) {
	tests := []struct {
		g    Gain
		want float64
	}{
		{GainFSR6144, 0.1875},
		{GainFSR4096, 0.125},
		{GainFSR2048, 0.0625},
		{GainFSR1024, 0.03125},
		{GainFSR0512, 0.015625},
		{GainFSR0256, 0.0078125},
		{GainFSR0256B, 0.0078125},
		{GainFSR0256C, 0.0078125},
	}
	for _, tt := range tests {
		if got := tt.g.StepMV(); got != tt.want {
			t.Fatalf("gain %d step: got %v; want %v", tt.g, got, tt.want)
		}
	}
}

func TestChannelKeys(t *testing.T) {
	want := []string{"in0_in1", "in0_in3", "in1_in3", "in2_in3", "in0_gnd", "in1_gnd", "in2_gnd", "in3_gnd"}
	for i, ch := range Channels {
		if ch.Key() != want[i] {
			t.Fatalf("channel %d key: got %q; want %q", i, ch.Key(), want[i])
		}
	}
}
