package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type MQTTConfig struct {
	Server   string `json:"server"`
	Username string `json:"username"`
	Password string `json:"password"`
	ClientID string `json:"client_id"`
	Topic    string `json:"topic"`
}

type OutputConfig struct {
	Type string      `json:"type"`
	MQTT *MQTTConfig `json:"mqtt,omitempty"`
}

type Config struct {
	I2CBus     string         `json:"i2c_bus"`
	I2CAddress int            `json:"i2c_address"`
	Gain       string         `json:"gain"`      // full-scale range in volts, e.g. "4.096"
	Samples    int            `json:"samples"`   // conversions averaged per reading
	DataRate   int            `json:"data_rate"` // samples per second
	Mode       string         `json:"mode"`      // single-shot|continuous
	SensorType string         `json:"sensor_type"`
	PollMs     int            `json:"poll_ms"` // how often main drains the snapshot buffer
	Outputs    []OutputConfig `json:"outputs"`
}

func DefaultConfig() Config {
	return Config{
		I2CBus:     "1",
		I2CAddress: 0x48,
		Gain:       "4.096",
		Samples:    5,
		DataRate:   475,
		Mode:       "single-shot",
		SensorType: "real",
		PollMs:     1000,
		Outputs:    []OutputConfig{{Type: "console"}},
	}
}

// LoadFromFlags loads configuration from a JSON file (optional) and flags.
// Flags override values present in the JSON file.
func LoadFromFlags() (Config, error) {
	cfgPath := flag.String("config", "", "Path to JSON config file")
	flagI2CBus := flag.String("i2c-bus", "", "I2C bus (e.g., '1' -> /dev/i2c-1)")
	flagI2CAddStr := flag.String("i2c-address", "", "I2C address (decimal or 0x hex)")
	flagGain := flag.String("gain", "", "Full-scale range in volts (6.144, 4.096, 2.048, 1.024, 0.512, 0.256)")
	flagSamples := flag.Int("samples", -1, "Conversions averaged per reading")
	flagDataRate := flag.Int("data-rate", -1, "ADS1115 data rate (SPS)")
	flagMode := flag.String("mode", "", "Operating mode: single-shot|continuous")
	flagSensorType := flag.String("sensor-type", "", "sensor type: real|simulation")
	flagPoll := flag.Int("poll-ms", -1, "Snapshot poll interval in ms")
	flagOutputs := flag.String("outputs", "", "Comma-separated outputs (console,mqtt)")
	flagMQTTServer := flag.String("mqtt-server", "", "MQTT server (tcp://host:port)")
	flagMQTTUser := flag.String("mqtt-user", "", "MQTT username")
	flagMQTTPass := flag.String("mqtt-pass", "", "MQTT password")
	flagClientID := flag.String("mqtt-client-id", "", "MQTT client id")
	flagTopic := flag.String("mqtt-topic", "", "MQTT topic")

	flag.Parse()

	cfg := DefaultConfig()

	if *cfgPath != "" {
		b, err := os.ReadFile(*cfgPath)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if *flagI2CBus != "" {
		cfg.I2CBus = *flagI2CBus
	}
	if *flagI2CAddStr != "" {
		v, err := parseIntOrHex(*flagI2CAddStr)
		if err != nil {
			return cfg, fmt.Errorf("i2c-address: %w", err)
		}
		cfg.I2CAddress = v
	}
	if *flagGain != "" {
		cfg.Gain = *flagGain
	}
	if *flagSamples != -1 {
		cfg.Samples = *flagSamples
	}
	if *flagDataRate != -1 {
		cfg.DataRate = *flagDataRate
	}
	if *flagMode != "" {
		cfg.Mode = *flagMode
	}
	if *flagSensorType != "" {
		cfg.SensorType = *flagSensorType
	}
	if *flagPoll != -1 {
		cfg.PollMs = *flagPoll
	}
	if *flagOutputs != "" {
		parts := parseCSV(*flagOutputs)
		outs := make([]OutputConfig, 0, len(parts))
		for _, p := range parts {
			outs = append(outs, OutputConfig{Type: p})
		}
		cfg.Outputs = outs
	}
	// map mqtt flags into the mqtt outputs (create one if missing)
	if *flagMQTTServer != "" || *flagMQTTUser != "" || *flagMQTTPass != "" || *flagClientID != "" || *flagTopic != "" {
		applied := false
		for i := range cfg.Outputs {
			if strings.ToLower(cfg.Outputs[i].Type) == "mqtt" {
				if cfg.Outputs[i].MQTT == nil {
					cfg.Outputs[i].MQTT = &MQTTConfig{}
				}
				applyMQTTFlags(cfg.Outputs[i].MQTT, *flagMQTTServer, *flagMQTTUser, *flagMQTTPass, *flagClientID, *flagTopic)
				applied = true
			}
		}
		if !applied {
			mqttOut := OutputConfig{Type: "mqtt", MQTT: &MQTTConfig{}}
			applyMQTTFlags(mqttOut.MQTT, *flagMQTTServer, *flagMQTTUser, *flagMQTTPass, *flagClientID, *flagTopic)
			cfg.Outputs = append(cfg.Outputs, mqttOut)
		}
	}

	if cfg.Samples <= 0 {
		return cfg, errors.New("samples must be > 0")
	}
	if cfg.PollMs <= 0 {
		return cfg, errors.New("poll-ms must be > 0")
	}

	return cfg, nil
}

func applyMQTTFlags(m *MQTTConfig, server, user, pass, clientID, topic string) {
	if server != "" {
		m.Server = server
	}
	if user != "" {
		m.Username = user
	}
	if pass != "" {
		m.Password = pass
	}
	if clientID != "" {
		m.ClientID = clientID
	}
	if topic != "" {
		m.Topic = topic
	}
}

func parseIntOrHex(s string) (int, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseInt(s[2:], 16, 0)
		return int(v), err
	}
	v, err := strconv.Atoi(s)
	return v, err
}

func parseCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
