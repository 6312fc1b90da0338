// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package wt61 implements the WT61 inertial sensor wire protocol: an
// endless stream of 11-byte frames, each carrying one vector of raw
// 16-bit readings plus the sensor temperature.
//
// Frame layout:
//
//	0:     header (0x55)
//	1:     packet type (0x51 accel, 0x52 gyro, 0x53 angle)
//	2-7:   X, Y, Z as little-endian signed 16-bit values
//	8-9:   temperature, little-endian signed 16-bit
//	10:    checksum = sum of bytes 0..9 mod 256
package wt61

import "errors"

const (
	// Header is the fixed leading byte of every frame.
	Header byte = 0x55

	// FrameLen is the wire size of one frame.
	FrameLen = 11
)

// PacketType identifies what the frame's X/Y/Z triple measures.
type PacketType byte

const (
	PacketAcceleration    PacketType = 0x51
	PacketAngularVelocity PacketType = 0x52
	PacketAngle           PacketType = 0x53
)

// Known reports whether t is one of the three packet types the WT61
// documents. Frames with other type bytes still decode; they just
// carry no convertible reading.
func (t PacketType) Known() bool {
	switch t {
	case PacketAcceleration, PacketAngularVelocity, PacketAngle:
		return true
	}
	return false
}

func (t PacketType) String() string {
	switch t {
	case PacketAcceleration:
		return "acceleration"
	case PacketAngularVelocity:
		return "angular_velocity"
	case PacketAngle:
		return "angle"
	}
	return "unknown"
}

var (
	// ErrFrameLength reports a candidate that is not exactly FrameLen bytes.
	ErrFrameLength = errors.New("wt61: candidate frame is not 11 bytes")

	// ErrChecksumMismatch reports a candidate whose checksum byte disagrees
	// with the sum of the preceding bytes. Expected under line noise; the
	// scanner recovers by resynchronizing.
	ErrChecksumMismatch = errors.New("wt61: checksum mismatch")
)

// Frame is a validated 11-byte WT61 frame. It is only constructed by
// Validate (or EncodeFrame), so holders may rely on the checksum
// invariant and access fields by name instead of raw index.
type Frame [FrameLen]byte

// checksum is the sum of the first 10 bytes, truncated to 8 bits.
func checksum(b []byte) byte {
	var sum byte
	for _, v := range b[:FrameLen-1] {
		sum += v
	}
	return sum
}

// Validate checks length and checksum of a candidate frame and returns
// it as a Frame. It is pure: same input, same result, no state.
func Validate(candidate []byte) (Frame, error) {
	if len(candidate) != FrameLen {
		return Frame{}, ErrFrameLength
	}
	if checksum(candidate) != candidate[FrameLen-1] {
		return Frame{}, ErrChecksumMismatch
	}
	var f Frame
	copy(f[:], candidate)
	return f, nil
}

// Type returns the frame's packet type byte.
func (f Frame) Type() PacketType { return PacketType(f[1]) }

// int16At assembles the little-endian signed 16-bit value whose low
// byte sits at offset i. The uint16 round trip gives two's-complement
// reinterpretation of the high bit.
func (f Frame) int16At(i int) int16 {
	return int16(uint16(f[i]) | uint16(f[i+1])<<8)
}

// RawX returns the raw X-axis value (data bytes 0-1).
func (f Frame) RawX() int16 { return f.int16At(2) }

// RawY returns the raw Y-axis value (data bytes 2-3).
func (f Frame) RawY() int16 { return f.int16At(4) }

// RawZ returns the raw Z-axis value (data bytes 4-5).
func (f Frame) RawZ() int16 { return f.int16At(6) }

// RawTemp returns the raw temperature value (data bytes 6-7).
// Every WT61 packet type carries one.
func (f Frame) RawTemp() int16 { return f.int16At(8) }

// RawSample is one decoded frame: the packet type plus the raw signed
// readings, before unit conversion.
type RawSample struct {
	Type PacketType `json:"type"`

	X int16 `json:"x"`
	Y int16 `json:"y"`
	Z int16 `json:"z"`

	Temp int16 `json:"temp"`
}

// Decode extracts the raw sample from a validated frame. Unknown packet
// types decode like any other; the caller decides whether to drop them.
func Decode(f Frame) RawSample {
	return RawSample{
		Type: f.Type(),
		X:    f.RawX(),
		Y:    f.RawY(),
		Z:    f.RawZ(),
		Temp: f.RawTemp(),
	}
}

// EncodeFrame builds a valid frame from raw values, including the
// checksum byte. Inverse of Decode; used by the mock stream and tests.
func EncodeFrame(t PacketType, x, y, z, temp int16) Frame {
	var f Frame
	f[0] = Header
	f[1] = byte(t)
	put := func(i int, v int16) {
		f[i] = byte(uint16(v))
		f[i+1] = byte(uint16(v) >> 8)
	}
	put(2, x)
	put(4, y)
	put(6, z)
	put(8, temp)
	f[FrameLen-1] = checksum(f[:])
	return f
}
