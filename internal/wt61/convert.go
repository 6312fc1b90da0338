// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package wt61

import (
	"errors"

	"github.com/relabs-tech/wt61_logger/internal/reading"
)

// ErrUnsupportedType reports a raw sample whose packet type has no
// conversion formula. The frame is dropped, not fatal.
var ErrUnsupportedType = errors.New("wt61: unsupported packet type")

// Per-axis full-scale factors. The sensor transmits each reading as a
// signed 16-bit fraction of full scale: ±16 g, ±2000 deg/s, ±180 deg.
const (
	accelScale = 16.0 / 32768.0
	gyroScale  = 2000.0 / 32768.0
	angleScale = 180.0 / 32768.0
)

// tempCelsius converts the raw temperature field, present in every
// packet type.
func tempCelsius(raw int16) float64 {
	return float64(raw)/340.0 + 36.25
}

// Convert maps a raw sample to a physical reading in fixed units:
// acceleration in g, angular velocity in deg/s, angle in deg, and the
// accompanying temperature in °C. Pure and deterministic. Unknown
// packet types return ErrUnsupportedType rather than a guessed scale.
func Convert(s RawSample) (reading.Reading, error) {
	var kind reading.Kind
	var scale float64

	switch s.Type {
	case PacketAcceleration:
		kind, scale = reading.Acceleration, accelScale
	case PacketAngularVelocity:
		kind, scale = reading.AngularVelocity, gyroScale
	case PacketAngle:
		kind, scale = reading.Angle, angleScale
	default:
		return reading.Reading{}, ErrUnsupportedType
	}

	return reading.Reading{
		Kind:  kind,
		X:     float64(s.X) * scale,
		Y:     float64(s.Y) * scale,
		Z:     float64(s.Z) * scale,
		TempC: tempCelsius(s.Temp),
	}, nil
}
