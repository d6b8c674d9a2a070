// Package encode bridges rendered buffers to the beep streaming world
// and encodes them as WAV.
package encode

import (
	"errors"
	"fmt"
	"io"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/rbrindha8-hub/moodtunes/internal/synth"
)

// ErrSeekOutOfRange is returned when seeking outside the buffer.
var ErrSeekOutOfRange = errors.New("seek position out of range")

// bufferStreamer streams a finished render. It implements
// beep.StreamSeeker.
type bufferStreamer struct {
	buf *synth.Buffer
	pos int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.buf.Left) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if s.pos >= len(s.buf.Left) {
			break
		}
		samples[i][0] = s.buf.Left[s.pos]
		samples[i][1] = s.buf.Right[s.pos]
		s.pos++
		n++
	}
	return n, true
}

func (s *bufferStreamer) Err() error { return nil }

func (s *bufferStreamer) Len() int { return len(s.buf.Left) }

func (s *bufferStreamer) Position() int { return s.pos }

func (s *bufferStreamer) Seek(p int) error {
	if p < 0 || p > len(s.buf.Left) {
		return fmt.Errorf("%w: %d", ErrSeekOutOfRange, p)
	}
	s.pos = p
	return nil
}

// Streamer adapts a rendered buffer to a seekable beep streamer.
func Streamer(buf *synth.Buffer) beep.StreamSeeker {
	return &bufferStreamer{buf: buf}
}

// Format describes a rendered buffer in beep terms: stereo, 16-bit.
func Format(buf *synth.Buffer) beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(buf.SampleRate),
		NumChannels: 2,
		Precision:   2,
	}
}

// WriteWAV encodes the buffer as a RIFF/WAVE stream.
func WriteWAV(w io.WriteSeeker, buf *synth.Buffer) error {
	if err := wav.Encode(w, Streamer(buf), Format(buf)); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}
	return nil
}

// WAVBytes encodes the buffer into an in-memory WAV file, ready to
// persist or serve over HTTP.
func WAVBytes(buf *synth.Buffer) ([]byte, error) {
	var sb seekBuffer
	if err := WriteWAV(&sb, buf); err != nil {
		return nil, err
	}
	return sb.data, nil
}

// seekBuffer is an in-memory io.WriteSeeker. The wav encoder needs to
// seek back to patch the RIFF header lengths after streaming the data
// chunk.
type seekBuffer struct {
	data []byte
	off  int
}

func (b *seekBuffer) Write(p []byte) (int, error) {
	if end := b.off + len(p); end > len(b.data) {
		grown := make([]byte, end)
		copy(grown, b.data)
		b.data = grown
	}
	copy(b.data[b.off:], p)
	b.off += len(p)
	return len(p), nil
}

func (b *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(b.off) + offset
	case io.SeekEnd:
		abs = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("seek buffer: invalid whence %d", whence)
	}
	if abs < 0 {
		return 0, fmt.Errorf("seek buffer: negative position %d", abs)
	}
	b.off = int(abs)
	return abs, nil
}
