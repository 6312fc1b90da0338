// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text


package app

import (
	"time"

	"github.com/relabs-tech/wt61_logger/internal/reading"
)

// RunMockConsole drives the full decode pipeline from the synthetic
// frame stream and keeps the status line updated, no hardware needed.
func RunMockConsole() error {
	pipeline := NewPipeline(func(_ reading.Reading, snap reading.State) {
		ts := float64(time.Now().UnixNano()) / 1e9
		printStatusLine(ts, snap)
	})
	return pipeline.Run(NewMockStream(100 * time.Millisecond))
}
