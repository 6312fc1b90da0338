// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"math"
	"time"

	"github.com/relabs-tech/wt61_logger/internal/wt61"
)

// MockStream is an io.Reader that emits well-formed WT61 frames from
// smooth synthetic motion, so the pipeline and its consumers can run
// without the sensor attached.
type MockStream struct {
	start   time.Time
	pending []byte
	period  time.Duration
}

// NewMockStream returns a stream producing one accel/gyro/angle frame
// trio every period.
func NewMockStream(period time.Duration) *MockStream {
	return &MockStream{start: time.Now(), period: period}
}

// rawFromG converts a value in g back to the sensor's raw scale.
func rawFromG(g float64) int16 { return int16(g / 16.0 * 32768.0) }

// rawFromDegS converts deg/s back to the raw gyro scale.
func rawFromDegS(w float64) int16 { return int16(w / 2000.0 * 32768.0) }

// rawFromDeg converts degrees back to the raw angle scale.
func rawFromDeg(a float64) int16 { return int16(a / 180.0 * 32768.0) }

// rawFromCelsius converts °C back to the raw temperature scale.
func rawFromCelsius(c float64) int16 { return int16((c - 36.25) * 340.0) }

func (m *MockStream) refill() {
	time.Sleep(m.period)
	elapsed := time.Since(m.start).Seconds()

	temp := rawFromCelsius(24.0 + math.Sin(elapsed*0.1))

	frames := []wt61.Frame{
		wt61.EncodeFrame(wt61.PacketAcceleration,
			rawFromG(0.2*math.Sin(elapsed)),
			rawFromG(0.2*math.Cos(elapsed*0.7)),
			rawFromG(1.0),
			temp),
		wt61.EncodeFrame(wt61.PacketAngularVelocity,
			rawFromDegS(30*math.Cos(elapsed)),
			rawFromDegS(20*math.Sin(elapsed*0.7)),
			rawFromDegS(5*math.Sin(elapsed*0.3)),
			temp),
		wt61.EncodeFrame(wt61.PacketAngle,
			rawFromDeg(20*math.Sin(elapsed)),
			rawFromDeg(15*math.Cos(elapsed*0.7)),
			rawFromDeg(math.Mod(elapsed*30, 360)-180),
			temp),
	}
	for _, f := range frames {
		m.pending = append(m.pending, f[:]...)
	}
}

// Read hands out buffered frame bytes, generating a fresh trio when the
// buffer drains. It never returns io.EOF; the mock sensor never stops.
func (m *MockStream) Read(p []byte) (int, error) {
	if len(m.pending) == 0 {
		m.refill()
	}
	n := copy(p, m.pending)
	m.pending = m.pending[n:]
	return n, nil
}
