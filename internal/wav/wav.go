// Package wav writes mono 16-bit signed PCM audio in a RIFF/WAVE container.
package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
)

const (
	// HeaderSize is the size of the canonical PCM header.
	HeaderSize = 44

	Channels      = 1
	BitsPerSample = 16

	formatPCM = 1
	maxSample = math.MaxInt16
	minSample = math.MinInt16
)

// ErrInvalidHeader is returned by Decode for data that is not a canonical
// 16-bit PCM WAV file.
var ErrInvalidHeader = errors.New("invalid wav header")

// Header describes the format fields of a PCM WAV file.
type Header struct {
	Format        uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataSize      uint32
}

// Quantize converts float samples in [-1, 1] to 16-bit signed PCM.
// Each sample maps to round(s*32767), clipped to the int16 range.
func Quantize(samples []float64) []int16 {
	out := make([]int16, len(samples))
	for i, s := range samples {
		if math.IsNaN(s) {
			continue
		}
		v := math.Round(s * maxSample)
		switch {
		case v > maxSample:
			v = maxSample
		case v < minSample:
			v = minSample
		}
		out[i] = int16(v)
	}
	return out
}

// Encode returns a complete WAV file holding samples at sampleRate.
func Encode(samples []float64, sampleRate int) ([]byte, error) {
	if sampleRate <= 0 || sampleRate > math.MaxUint32/(Channels*BitsPerSample/8) {
		return nil, fmt.Errorf("invalid sample rate %d", sampleRate)
	}

	blockAlign := Channels * BitsPerSample / 8
	byteRate := sampleRate * blockAlign
	dataSize := len(samples) * blockAlign
	if uint64(dataSize)+HeaderSize-8 > math.MaxUint32 {
		return nil, fmt.Errorf("%d samples exceed the wav size limit", len(samples))
	}

	buf := make([]byte, HeaderSize+dataSize)
	le := binary.LittleEndian

	// RIFF header
	copy(buf[0:4], "RIFF")
	le.PutUint32(buf[4:8], uint32(36+dataSize))
	copy(buf[8:12], "WAVE")

	// fmt chunk
	copy(buf[12:16], "fmt ")
	le.PutUint32(buf[16:20], 16) // chunk size
	le.PutUint16(buf[20:22], formatPCM)
	le.PutUint16(buf[22:24], Channels)
	le.PutUint32(buf[24:28], uint32(sampleRate))
	le.PutUint32(buf[28:32], uint32(byteRate))
	le.PutUint16(buf[32:34], uint16(blockAlign))
	le.PutUint16(buf[34:36], BitsPerSample)

	// data chunk
	copy(buf[36:40], "data")
	le.PutUint32(buf[40:44], uint32(dataSize))

	offset := HeaderSize
	for _, v := range Quantize(samples) {
		le.PutUint16(buf[offset:offset+2], uint16(v))
		offset += 2
	}

	return buf, nil
}

// WriteFile encodes samples and writes them to path, replacing any existing file.
func WriteFile(path string, samples []float64, sampleRate int) error {
	data, err := Encode(samples, sampleRate)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Decode parses a canonical 44-byte-header PCM WAV file and returns its
// header and samples.
func Decode(data []byte) (Header, []int16, error) {
	var h Header
	if len(data) < HeaderSize {
		return h, nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrInvalidHeader, len(data))
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return h, nil, fmt.Errorf("%w: missing RIFF/WAVE magic", ErrInvalidHeader)
	}
	if string(data[12:16]) != "fmt " || string(data[36:40]) != "data" {
		return h, nil, fmt.Errorf("%w: unexpected chunk layout", ErrInvalidHeader)
	}

	le := binary.LittleEndian
	h = Header{
		Format:        le.Uint16(data[20:22]),
		Channels:      le.Uint16(data[22:24]),
		SampleRate:    le.Uint32(data[24:28]),
		ByteRate:      le.Uint32(data[28:32]),
		BlockAlign:    le.Uint16(data[32:34]),
		BitsPerSample: le.Uint16(data[34:36]),
		DataSize:      le.Uint32(data[40:44]),
	}
	if h.Format != formatPCM || h.BitsPerSample != BitsPerSample || h.Channels != Channels {
		return h, nil, fmt.Errorf("%w: format %d, %d channels, %d bits", ErrInvalidHeader, h.Format, h.Channels, h.BitsPerSample)
	}

	payload := data[HeaderSize:]
	if uint64(h.DataSize) > uint64(len(payload)) {
		return h, nil, fmt.Errorf("%w: data chunk claims %d bytes, have %d", ErrInvalidHeader, h.DataSize, len(payload))
	}
	payload = payload[:h.DataSize]

	samples := make([]int16, len(payload)/2)
	for i := range samples {
		samples[i] = int16(le.Uint16(payload[i*2:]))
	}
	return h, samples, nil
}
