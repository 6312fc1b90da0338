// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	serial "github.com/jacobsa/go-serial/serial"

	"github.com/relabs-tech/wt61_logger/internal/config"
	"github.com/relabs-tech/wt61_logger/internal/csvlog"
	"github.com/relabs-tech/wt61_logger/internal/reading"
)

// openSensorPort opens the WT61 serial port from the global config.
func openSensorPort() (io.ReadWriteCloser, error) {
	cfg := config.Get()

	opts := serial.OpenOptions{
		PortName:              cfg.SerialPort,
		BaudRate:              uint(cfg.BaudRate),
		DataBits:              8,
		StopBits:              1,
		MinimumReadSize:       1,
		ParityMode:            serial.PARITY_NONE,
		InterCharacterTimeout: 0,
	}

	port, err := serial.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", opts.PortName, err)
	}
	log.Printf("serial port opened on %s at %d baud", opts.PortName, opts.BaudRate)
	return port, nil
}

// RunLogger reads the sensor and writes every accepted frame to a
// timestamped CSV file while keeping a single status line on the
// console, the way the original bench tool did.
func RunLogger() error {
	cfg := config.Get()

	port, err := openSensorPort()
	if err != nil {
		return err
	}
	defer port.Close()

	name := filepath.Join(cfg.CSVDir, csvlog.Filename(cfg.CSVBaseName, ".csv"))
	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create log file: %w", err)
	}
	defer file.Close()

	w, err := csvlog.NewWriter(file)
	if err != nil {
		return err
	}
	log.Printf("logger: writing to %s", name)

	// The sensor pushes ~300 frames/s; repaint the status line at a
	// humane rate while logging every frame.
	interval := time.Duration(cfg.ConsoleUpdateInterval) * time.Millisecond
	var lastPrint time.Time

	pipeline := NewPipeline(func(r reading.Reading, snap reading.State) {
		now := time.Now()
		ts := float64(now.UnixNano()) / 1e9
		if err := w.WriteReading(ts, r); err != nil {
			log.Printf("logger: %v", err)
		}
		if now.Sub(lastPrint) >= interval {
			lastPrint = now
			printStatusLine(ts, snap)
		}
	})

	err = pipeline.Run(port)

	fmt.Println()
	log.Printf("logger: %d frames, %d checksum rejects, %d unknown types, %d rows",
		pipeline.Frames(), pipeline.Rejected(), pipeline.Unsupported(), w.Rows())
	return err
}

// printStatusLine rewrites one console line with the current state.
func printStatusLine(ts float64, s reading.State) {
	fmt.Printf("\rTime: %.2f | Ax: %.3f Ay: %.3f Az: %.3f | Wx: %.3f Wy: %.3f Wz: %.3f | Roll: %.3f Pitch: %.3f Yaw: %.3f | T: %.3f   ",
		ts,
		s.Ax, s.Ay, s.Az,
		s.Wx, s.Wy, s.Wz,
		s.Roll, s.Pitch, s.Yaw,
		s.TempC,
	)
}
