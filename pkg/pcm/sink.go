// Package pcm provides the destination side of the encoder: a small
// Sink interface for streaming floating-point sample blocks, a
// concrete WAV file writer, and an in-memory fake for tests. Reshaped
// from the teacher's real-time pkg/device callback interface into a
// batch, single-threaded write path, since the encoder runs strictly
// sequentially with no suspension points (spec.md §5).
package pcm

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

// Sink accepts interleaved PCM sample blocks, one call per symbol (or
// guard/silence run) the encoder emits, and reports the channel count
// it expects each block to be interleaved for.
type Sink interface {
	Channels() int
	Write(samples []float64) error
}

// MemorySink is an in-memory fake, grounded on pkg/device.Loopback's
// role as a swap-in test double for a real device: it accumulates
// every written block instead of touching a file or a live stream.
type MemorySink struct {
	channels int
	Samples  []float64
}

// NewMemorySink builds a fake sink expecting the given channel count.
func NewMemorySink(channels int) *MemorySink {
	return &MemorySink{channels: channels}
}

func (m *MemorySink) Channels() int { return m.channels }

func (m *MemorySink) Write(samples []float64) error {
	m.Samples = append(m.Samples, samples...)
	return nil
}

// WAVSink writes a canonical PCM WAV file, 16-bit signed
// little-endian samples written with encoding/binary. The header is
// patched in
// place at Close, since the total data length isn't known until every
// block has been written.
type WAVSink struct {
	file       *os.File
	channels   int
	sampleRate int
	bitsPerSample int
	dataBytes  int64
}

// NewWAVSink creates filename and reserves space for a 44-byte
// canonical WAV header, to be filled in by Close.
func NewWAVSink(filename string, sampleRate, channels, bitsPerSample int) (*WAVSink, error) {
	if bitsPerSample != 16 {
		return nil, fmt.Errorf("pcm: only 16-bit PCM output is supported, got %d", bitsPerSample)
	}
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("pcm: create %s: %w", filename, err)
	}
	w := &WAVSink{file: f, channels: channels, sampleRate: sampleRate, bitsPerSample: bitsPerSample}
	if err := w.writeHeaderPlaceholder(); err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}

func (w *WAVSink) Channels() int { return w.channels }

// Write appends one block of samples in [-1, 1], interleaved across
// Channels(), clamping and quantizing to 16-bit signed PCM.
func (w *WAVSink) Write(samples []float64) error {
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		v := clampSample(s)
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(int16(v)))
	}
	n, err := w.file.Write(buf)
	if err != nil {
		return fmt.Errorf("pcm: write samples: %w", err)
	}
	w.dataBytes += int64(n)
	return nil
}

// Silence writes n seconds of silence on every channel, matching
// original_source/encode.cc's silence(output_rate) bracketing before
// and after a frame (spec.md §6).
func (w *WAVSink) Silence(seconds float64) error {
	n := int(seconds * float64(w.sampleRate))
	block := make([]float64, n*w.channels)
	return w.Write(block)
}

// Close finalizes the RIFF/WAVE header with the now-known data length
// and closes the underlying file.
func (w *WAVSink) Close() error {
	if err := w.patchHeader(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

func clampSample(s float64) int32 {
	const max = 32767
	const min = -32768
	v := math.Round(s * 32767)
	if v > max {
		v = max
	}
	if v < min {
		v = min
	}
	return int32(v)
}

func (w *WAVSink) writeHeaderPlaceholder() error {
	_, err := w.file.Write(make([]byte, 44))
	return err
}

func (w *WAVSink) patchHeader() error {
	blockAlign := w.channels * w.bitsPerSample / 8
	byteRate := w.sampleRate * blockAlign

	hdr := make([]byte, 44)
	copy(hdr[0:4], "RIFF")
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(36+w.dataBytes))
	copy(hdr[8:12], "WAVE")
	copy(hdr[12:16], "fmt ")
	binary.LittleEndian.PutUint32(hdr[16:20], 16)
	binary.LittleEndian.PutUint16(hdr[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(hdr[22:24], uint16(w.channels))
	binary.LittleEndian.PutUint32(hdr[24:28], uint32(w.sampleRate))
	binary.LittleEndian.PutUint32(hdr[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(hdr[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(hdr[34:36], uint16(w.bitsPerSample))
	copy(hdr[36:40], "data")
	binary.LittleEndian.PutUint32(hdr[40:44], uint32(w.dataBytes))

	if _, err := w.file.WriteAt(hdr, 0); err != nil {
		return fmt.Errorf("pcm: patch header: %w", err)
	}
	return nil
}
