package ads1115

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotJSONRoundTrip(t *testing.T) {
	js := `{
        "input_voltage": {
            "in0_in1": 4.68261, "in0_in3": 0.1, "in1_in3": 0.2, "in2_in3": 0.3,
            "in0_gnd": 1.1, "in1_gnd": 1.2, "in2_gnd": 1.3, "in3_gnd": 1.4
        },
        "timestamp": 1627898911
    }`

	var snap Snapshot
	require.NoError(t, json.Unmarshal([]byte(js), &snap))
	assert.Equal(t, int64(1627898911), snap.Timestamp)
	assert.Equal(t, 4.68261, snap.InputVoltage["in0_in1"])

	b, err := json.Marshal(snap)
	require.NoError(t, err)

	var again Snapshot
	require.NoError(t, json.Unmarshal(b, &again))
	assert.Equal(t, snap, again)
}
