package app

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/wt61_logger/internal/config"
	"github.com/relabs-tech/wt61_logger/internal/reading"
)

func RunConsoleMQTT() error {
	cfg := config.Get()

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDConsole)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("console: connected to MQTT broker at %s", cfg.MQTTBroker)

	printReading := func(label string, msg mqtt.Message) {
		var r reading.Reading
		if err := json.Unmarshal(msg.Payload(), &r); err != nil {
			log.Printf("console: %s unmarshal error: %v", label, err)
			return
		}
		fmt.Printf("[%s] X=%8.3f  Y=%8.3f  Z=%8.3f  T=%6.2f\n",
			label, r.X, r.Y, r.Z, r.TempC)
	}

	// Subscribe to the per-kind reading topics
	subs := []struct {
		topic string
		label string
	}{
		{cfg.TopicAccel, "ACC "},
		{cfg.TopicGyro, "GYRO"},
		{cfg.TopicAngle, "ANGL"},
	}
	for _, sub := range subs {
		label := sub.label
		token := client.Subscribe(sub.topic, 0, func(_ mqtt.Client, msg mqtt.Message) {
			printReading(label, msg)
		})
		token.Wait()
		if token.Error() != nil {
			return token.Error()
		}
		log.Printf("console: subscribed to %s", sub.topic)
	}

	// Subscribe to the merged state
	stateToken := client.Subscribe(cfg.TopicState, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var s reading.State
		if err := json.Unmarshal(msg.Payload(), &s); err != nil {
			log.Printf("console: state unmarshal error: %v", err)
			return
		}
		fmt.Printf("[STAT] A=(%.3f %.3f %.3f)  W=(%.2f %.2f %.2f)  RPY=(%.2f %.2f %.2f)  T=%.2f\n",
			s.Ax, s.Ay, s.Az, s.Wx, s.Wy, s.Wz, s.Roll, s.Pitch, s.Yaw, s.TempC)
	})
	stateToken.Wait()
	if stateToken.Error() != nil {
		return stateToken.Error()
	}
	log.Printf("console: subscribed to %s", cfg.TopicState)

	// Wait for Ctrl+C
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("console: shutting down")
	client.Disconnect(250)
	return nil
}
