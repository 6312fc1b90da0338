// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package wt61

// Scanner finds valid frames in a raw byte stream. Bytes may arrive in
// chunks of any size, split anywhere; the scanner buffers partial frames
// across Feed calls. Noise before a header byte is discarded. A candidate
// that fails its checksum costs exactly one byte: scanning resumes at the
// byte after the rejected header, so a single dropped or corrupted byte
// on the wire only loses the frame it hit.
//
// Not safe for concurrent use; the pipeline has a single producer.
type Scanner struct {
	buf      []byte
	frames   uint64
	rejected uint64
}

// NewScanner returns a Scanner ready to consume a fresh stream.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Feed consumes the next chunk of the stream and returns every frame
// completed and validated by it, in wire order. A short or empty chunk
// is fine: incomplete candidates stay buffered until more bytes arrive.
func (s *Scanner) Feed(p []byte) []Frame {
	s.buf = append(s.buf, p...)

	var out []Frame
	for {
		// Discard everything before the next header candidate.
		i := 0
		for i < len(s.buf) && s.buf[i] != Header {
			i++
		}
		s.buf = s.buf[i:]

		if len(s.buf) < FrameLen {
			// Suspend until more input. Reclaim the backing array so the
			// buffer never outgrows one frame once aligned.
			s.buf = append([]byte(nil), s.buf...)
			return out
		}

		f, err := Validate(s.buf[:FrameLen])
		if err != nil {
			// Resync: skip only the rejected header byte, not the whole
			// window, in case a true frame starts inside it.
			s.rejected++
			s.buf = s.buf[1:]
			continue
		}

		s.frames++
		out = append(out, f)
		s.buf = s.buf[FrameLen:]
	}
}

// Frames reports how many valid frames the scanner has produced.
func (s *Scanner) Frames() uint64 { return s.frames }

// Rejected reports how many candidates failed checksum validation.
// Diagnostic only; rejections are recovered, never fatal.
func (s *Scanner) Rejected() uint64 { return s.rejected }
