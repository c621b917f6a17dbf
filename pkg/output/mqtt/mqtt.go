package mqtt

import (
	"encoding/json"
	"fmt"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/ericogr/ads1115-sampler/pkg/ads1115"
	"github.com/ericogr/ads1115-sampler/pkg/config"
	"github.com/ericogr/ads1115-sampler/pkg/output"
)

const (
	DefaultServer   = "tcp://localhost:1883"
	DefaultClientID = "ads1115-sampler"
	DefaultTopic    = "ads1115/voltages"

	// Home Assistant MQTT discovery
	discoveryTopicFmt     = "homeassistant/sensor/%s_%s/config"
	keyName               = "name"
	keyStateTopic         = "state_topic"
	keyUnitOfMeasurement  = "unit_of_measurement"
	keyDeviceClass        = "device_class"
	keyStateClass         = "state_class"
	keyValueTemplate      = "value_template"
	keyUniqueID           = "unique_id"
	unitVolts             = "V"
	deviceClassVoltage    = "voltage"
	stateClassMeasurement = "measurement"
)

type MQTTOutput struct {
	client mqtt.Client
	topic  string
}

// NewMQTT connects to the broker and, once connected, publishes one retained
// Home Assistant discovery payload per input channel so every voltage in the
// snapshot shows up as its own sensor entity.
func NewMQTT(cfg config.MQTTConfig) (output.Output, error) {
	if cfg.Server == "" {
		cfg.Server = DefaultServer
	}
	if cfg.ClientID == "" {
		cfg.ClientID = DefaultClientID
	}
	if cfg.Topic == "" {
		cfg.Topic = DefaultTopic
	}

	opts := mqtt.NewClientOptions().AddBroker(cfg.Server).SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	client := mqtt.NewClient(opts)
	token := client.Connect()
	if token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}

	m := &MQTTOutput{client: client, topic: cfg.Topic}

	for _, ch := range ads1115.Channels {
		dTopic := fmt.Sprintf(discoveryTopicFmt, cfg.ClientID, ch.Key())
		payload := map[string]interface{}{
			keyName:              fmt.Sprintf("ADS1115 %s", ch.Key()),
			keyStateTopic:        m.topic,
			keyUnitOfMeasurement: unitVolts,
			keyDeviceClass:       deviceClassVoltage,
			keyStateClass:        stateClassMeasurement,
			keyValueTemplate:     fmt.Sprintf("{{ value_json.input_voltage.%s }}", ch.Key()),
			keyUniqueID:          fmt.Sprintf("%s_%s", cfg.ClientID, ch.Key()),
		}
		if err := publishJSON(client, dTopic, true, payload); err != nil {
			log.Printf("mqtt discovery publish error: %v", err)
		}
	}

	return m, nil
}

// Publish sends the snapshot as a single JSON document:
// {"input_voltage":{"in0_in1":...},"timestamp":...}.
func (m *MQTTOutput) Publish(s ads1115.Snapshot) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	token := m.client.Publish(m.topic, 0, false, b)
	token.Wait()
	return token.Error()
}

func (m *MQTTOutput) Close() error {
	if m.client != nil {
		m.client.Disconnect(250)
	}
	return nil
}

func publishJSON(client mqtt.Client, topic string, retained bool, payload map[string]interface{}) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	token := client.Publish(topic, 0, retained, b)
	token.Wait()
	return token.Error()
}
