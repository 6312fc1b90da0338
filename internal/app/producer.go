// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/wt61_logger/internal/config"
	"github.com/relabs-tech/wt61_logger/internal/reading"
)

// RunProducer reads the sensor and publishes every reading to its
// per-kind MQTT topic, plus the merged state snapshot to the state
// topic. Messages are retained so late subscribers get the latest
// value immediately.
func RunProducer() error {
	cfg := config.Get()

	// --- connect to MQTT ---
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDProducer)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	defer client.Disconnect(250)
	log.Printf("producer: connected to MQTT broker at %s", cfg.MQTTBroker)

	// --- open the sensor ---
	port, err := openSensorPort()
	if err != nil {
		return err
	}
	defer port.Close()

	topicFor := func(k reading.Kind) string {
		switch k {
		case reading.Acceleration:
			return cfg.TopicAccel
		case reading.AngularVelocity:
			return cfg.TopicGyro
		case reading.Angle:
			return cfg.TopicAngle
		}
		return ""
	}

	pipeline := NewPipeline(func(r reading.Reading, snap reading.State) {
		if payload, err := json.Marshal(r); err != nil {
			log.Printf("producer: reading marshal error: %v", err)
		} else if topic := topicFor(r.Kind); topic != "" {
			if token := client.Publish(topic, 0, true, payload); token.Wait() && token.Error() != nil {
				log.Printf("producer: publish error (%s): %v", topic, token.Error())
			}
		}

		if payload, err := json.Marshal(snap); err != nil {
			log.Printf("producer: state marshal error: %v", err)
		} else {
			if token := client.Publish(cfg.TopicState, 0, true, payload); token.Wait() && token.Error() != nil {
				log.Printf("producer: publish error (%s): %v", cfg.TopicState, token.Error())
			}
		}
	})

	log.Println("producer: starting publish loop")
	err = pipeline.Run(port)
	log.Printf("producer: %d frames, %d checksum rejects, %d unknown types",
		pipeline.Frames(), pipeline.Rejected(), pipeline.Unsupported())
	return err
}
