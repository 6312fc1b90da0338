// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package csvlog writes the session log: one CSV row per accepted
// frame, with the frame's own category filled in and NaN in the other
// columns, so downstream tooling can tell "not measured in this frame"
// from a real zero.
package csvlog

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/relabs-tech/wt61_logger/internal/reading"
)

// header matches the column order of State and the row layout below.
const header = "time,ax,ay,az,wx,wy,wz,roll,pitch,yaw,T\n"

// Filename builds a session log name from the current time, e.g.
// "log_20260830_154512.csv".
func Filename(base, ext string) string {
	return base + "_" + time.Now().Format("20060102_150405") + ext
}

// Writer appends log rows to an underlying stream. If the stream also
// implements Flush-on-demand via Sync (an *os.File does), every row is
// pushed through so a yanked cable still leaves a usable log.
type Writer struct {
	w    io.Writer
	sync interface{ Sync() error }
	rows uint64
}

// NewWriter writes the CSV header and returns the Writer.
func NewWriter(w io.Writer) (*Writer, error) {
	lw := &Writer{w: w}
	if s, ok := w.(interface{ Sync() error }); ok {
		lw.sync = s
	}
	if _, err := io.WriteString(w, header); err != nil {
		return nil, fmt.Errorf("csvlog: write header: %w", err)
	}
	return lw, nil
}

// formatTimestamp prints the shortest decimal form that round-trips,
// never exponent notation, keeping the time column identical to the
// historical logs.
func formatTimestamp(ts float64) string {
	return strconv.FormatFloat(ts, 'f', -1, 64)
}

// WriteReading appends one row for r at timestamp ts (seconds since
// epoch, fractional).
func (lw *Writer) WriteReading(ts float64, r reading.Reading) error {
	var row string
	switch r.Kind {
	case reading.Acceleration:
		row = fmt.Sprintf("%s,%.3f,%.3f,%.3f,NaN,NaN,NaN,NaN,NaN,NaN,%.3f\n",
			formatTimestamp(ts), r.X, r.Y, r.Z, r.TempC)
	case reading.AngularVelocity:
		row = fmt.Sprintf("%s,NaN,NaN,NaN,%.3f,%.3f,%.3f,NaN,NaN,NaN,%.3f\n",
			formatTimestamp(ts), r.X, r.Y, r.Z, r.TempC)
	case reading.Angle:
		row = fmt.Sprintf("%s,NaN,NaN,NaN,NaN,NaN,NaN,%.3f,%.3f,%.3f,%.3f\n",
			formatTimestamp(ts), r.X, r.Y, r.Z, r.TempC)
	default:
		return fmt.Errorf("csvlog: no row layout for reading kind %v", r.Kind)
	}

	if _, err := io.WriteString(lw.w, row); err != nil {
		return fmt.Errorf("csvlog: write row: %w", err)
	}
	lw.rows++
	if lw.sync != nil {
		if err := lw.sync.Sync(); err != nil {
			return fmt.Errorf("csvlog: sync: %w", err)
		}
	}
	return nil
}

// Rows reports how many data rows have been written.
func (lw *Writer) Rows() uint64 { return lw.rows }
