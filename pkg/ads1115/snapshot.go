package ads1115

// Snapshot is one complete set of channel readings captured at a single
// timestamp. Values are volts rounded to 5 decimals, keyed by Channel.Key.
type Snapshot struct {
	InputVoltage map[string]float64 `json:"input_voltage"`
	Timestamp    int64              `json:"timestamp"`
}
