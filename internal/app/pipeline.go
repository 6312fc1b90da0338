// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"fmt"
	"io"

	"github.com/relabs-tech/wt61_logger/internal/reading"
	"github.com/relabs-tech/wt61_logger/internal/wt61"
)

// Pipeline drives raw bytes through scan → validate → decode → convert
// → aggregate and hands each accepted reading, together with the state
// snapshot it produced, to OnReading. The logger, the MQTT producer and
// the mock console all run the same pipeline with different callbacks.
type Pipeline struct {
	scanner *wt61.Scanner
	agg     *reading.Aggregator

	// OnReading is invoked once per successfully converted frame, on the
	// pipeline goroutine. The snapshot already includes the reading.
	OnReading func(r reading.Reading, snap reading.State)

	unsupported uint64
}

// NewPipeline returns a Pipeline with a fresh scanner and aggregator.
func NewPipeline(onReading func(reading.Reading, reading.State)) *Pipeline {
	return &Pipeline{
		scanner:   wt61.NewScanner(),
		agg:       reading.NewAggregator(),
		OnReading: onReading,
	}
}

// Run reads src until it is exhausted or fails. End of stream (io.EOF)
// is a graceful stop, not an error; checksum failures and unknown
// packet types are recovered internally and only counted. Any other
// read error is a transport fault and is surfaced to the caller.
func (p *Pipeline) Run(src io.Reader) error {
	buf := make([]byte, 256)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			p.feed(buf[:n])
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("pipeline: read: %w", err)
		}
	}
}

func (p *Pipeline) feed(chunk []byte) {
	for _, f := range p.scanner.Feed(chunk) {
		r, err := wt61.Convert(wt61.Decode(f))
		if err != nil {
			// Unknown packet type: drop the frame, keep the stream.
			p.unsupported++
			continue
		}
		snap := p.agg.Update(r)
		if p.OnReading != nil {
			p.OnReading(r, snap)
		}
	}
}

// Snapshot returns the aggregator's current state.
func (p *Pipeline) Snapshot() reading.State { return p.agg.Snapshot() }

// Frames reports how many valid frames have been scanned.
func (p *Pipeline) Frames() uint64 { return p.scanner.Frames() }

// Rejected reports how many candidates failed their checksum.
func (p *Pipeline) Rejected() uint64 { return p.scanner.Rejected() }

// Unsupported reports how many valid frames carried an unknown packet
// type and were dropped before aggregation.
func (p *Pipeline) Unsupported() uint64 { return p.unsupported }
