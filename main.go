package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ericogr/ads1115-sampler/pkg/ads1115"
	"github.com/ericogr/ads1115-sampler/pkg/config"
	"github.com/ericogr/ads1115-sampler/pkg/output"
	"github.com/ericogr/ads1115-sampler/pkg/output/console"
	"github.com/ericogr/ads1115-sampler/pkg/output/mqtt"
)

func main() {
	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	settings, err := settingsFromConfig(cfg)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var tr ads1115.Transport
	if cfg.SensorType == "simulation" {
		tr = &ads1115.SimTransport{Addr: uint16(settings.Address)}
	} else {
		tr, err = ads1115.OpenBus(cfg.I2CBus)
		if err != nil {
			log.Fatalf("i2c bus %q: %v", cfg.I2CBus, err)
		}
	}

	drv, err := ads1115.New(tr, settings, nil)
	if err != nil {
		log.Fatalf("ads1115: %v", err)
	}
	defer drv.Close()
	log.Printf("ads1115 initialized on bus %q, address 0x%02X", cfg.I2CBus, cfg.I2CAddress)

	outs, err := initOutputs(cfg)
	if err != nil {
		log.Fatalf("outputs: %v", err)
	}
	defer func() {
		for _, o := range outs {
			_ = o.Close()
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(time.Duration(cfg.PollMs) * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("shutting down")
			return
		case <-ticker.C:
			snap, ok := drv.Latest()
			if !ok {
				continue
			}
			for _, o := range outs {
				if err := o.Publish(snap); err != nil {
					log.Printf("publish error: %v", err)
				}
			}
		}
	}
}

// settingsFromConfig maps the flat file/flag config onto typed driver
// settings; unknown strings fail here, before any bus access.
func settingsFromConfig(cfg config.Config) (ads1115.Settings, error) {
	s := ads1115.DefaultSettings()
	s.Address = ads1115.Address(cfg.I2CAddress)
	s.Samples = cfg.Samples

	gain, err := gainFromString(cfg.Gain)
	if err != nil {
		return s, err
	}
	s.Gain = gain

	rate, err := rateFromSPS(cfg.DataRate)
	if err != nil {
		return s, err
	}
	s.Rate = rate

	switch strings.ToLower(cfg.Mode) {
	case "", "single-shot":
		s.Mode = ads1115.SingleShot
	case "continuous":
		s.Mode = ads1115.Continuous
	default:
		return s, fmt.Errorf("invalid mode %q", cfg.Mode)
	}

	return s, s.Validate()
}

func gainFromString(g string) (ads1115.Gain, error) {
	switch g {
	case "6.144":
		return ads1115.GainFSR6144, nil
	case "4.096":
		return ads1115.GainFSR4096, nil
	case "2.048":
		return ads1115.GainFSR2048, nil
	case "1.024":
		return ads1115.GainFSR1024, nil
	case "0.512":
		return ads1115.GainFSR0512, nil
	case "0.256":
		return ads1115.GainFSR0256, nil
	default:
		return 0, fmt.Errorf("invalid gain %q", g)
	}
}

func rateFromSPS(sps int) (ads1115.DataRate, error) {
	switch sps {
	case 8:
		return ads1115.Rate8SPS, nil
	case 16:
		return ads1115.Rate16SPS, nil
	case 32:
		return ads1115.Rate32SPS, nil
	case 64:
		return ads1115.Rate64SPS, nil
	case 128:
		return ads1115.Rate128SPS, nil
	case 250:
		return ads1115.Rate250SPS, nil
	case 475:
		return ads1115.Rate475SPS, nil
	case 860:
		return ads1115.Rate860SPS, nil
	default:
		return 0, fmt.Errorf("invalid data rate %d SPS", sps)
	}
}

func initOutputs(cfg config.Config) ([]output.Output, error) {
	outs := make([]output.Output, 0, len(cfg.Outputs))
	for _, oc := range cfg.Outputs {
		switch strings.ToLower(oc.Type) {
		case "console":
			outs = append(outs, console.NewConsole())
		case "mqtt":
			mc := config.MQTTConfig{}
			if oc.MQTT != nil {
				mc = *oc.MQTT
			}
			o, err := mqtt.NewMQTT(mc)
			if err != nil {
				return nil, fmt.Errorf("mqtt output: %w", err)
			}
			outs = append(outs, o)
		default:
			return nil, fmt.Errorf("unknown output type %q", oc.Type)
		}
	}
	return outs, nil
}
