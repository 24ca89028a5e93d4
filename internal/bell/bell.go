// Package bell synthesizes decaying, harmonically enriched bell tones.
// A tone is the sum of sine partials at fixed multiples of a fundamental,
// shaped by an exponential decay and a short linear attack, then normalized
// to a fixed peak amplitude.
package bell

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultSampleRate is the sample rate used for every cue.
	DefaultSampleRate = 44100

	// PeakAmplitude is the absolute peak of every synthesized buffer.
	PeakAmplitude = 0.8

	// AttackSeconds is the length of the linear fade-in at onset.
	AttackSeconds = 0.01

	// DecayRate controls the exponential envelope exp(-DecayRate*t/duration).
	DecayRate = 3.0

	// MaxSamples is the longest buffer a 16-bit mono WAV data chunk can hold.
	MaxSamples = (math.MaxUint32 - 36) / 2
)

var (
	// ErrInvalidParameter is returned for a non-positive or non-finite
	// duration, frequency or sample rate.
	ErrInvalidParameter = errors.New("invalid tone parameter")

	// ErrDegenerateSignal is returned when the shaped buffer is silent and
	// cannot be normalized.
	ErrDegenerateSignal = errors.New("degenerate signal: buffer is silent")
)

// Request describes a single tone.
type Request struct {
	Duration   float64 // seconds
	Frequency  float64 // fundamental, Hz
	SampleRate int     // Hz
}

// NewRequest returns a Request at DefaultSampleRate.
func NewRequest(duration, frequency float64) Request {
	return Request{Duration: duration, Frequency: frequency, SampleRate: DefaultSampleRate}
}

// NumSamples returns round(Duration * SampleRate).
func (r Request) NumSamples() int {
	return int(math.Round(r.Duration * float64(r.SampleRate)))
}

// Validate reports whether the request can be synthesized.
func (r Request) Validate() error {
	if !(r.Duration > 0) || math.IsInf(r.Duration, 0) {
		return fmt.Errorf("%w: duration %v must be positive", ErrInvalidParameter, r.Duration)
	}
	if !(r.Frequency > 0) || math.IsInf(r.Frequency, 0) {
		return fmt.Errorf("%w: frequency %v must be positive", ErrInvalidParameter, r.Frequency)
	}
	if r.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d must be positive", ErrInvalidParameter, r.SampleRate)
	}
	// Bound the product before NumSamples converts it to int.
	n := math.Round(r.Duration * float64(r.SampleRate))
	if n <= 0 {
		return fmt.Errorf("%w: %vs at %d Hz yields no samples", ErrInvalidParameter, r.Duration, r.SampleRate)
	}
	if n > MaxSamples {
		return fmt.Errorf("%w: %vs at %d Hz exceeds %d samples", ErrInvalidParameter, r.Duration, r.SampleRate, MaxSamples)
	}
	return nil
}

// Buffer holds amplitude samples, one per time step.
type Buffer []float64

// Peak returns the maximum absolute amplitude in the buffer.
func (b Buffer) Peak() float64 {
	peak := 0.0
	for _, s := range b {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	return peak
}

// Synthesize renders the tone described by req using the given timbre.
// The returned buffer has length req.NumSamples() and a peak absolute
// amplitude of exactly PeakAmplitude.
func Synthesize(req Request, timbre Timbre) (Buffer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	n := req.NumSamples()
	rate := float64(req.SampleRate)
	partials := timbre.PartialsFor(req.Frequency)

	buf := make(Buffer, n)
	for i := range buf {
		t := float64(i) / rate

		var s float64
		for _, p := range partials {
			s += p.Weight * math.Sin(2*math.Pi*req.Frequency*p.Multiplier*t)
		}

		buf[i] = s * math.Exp(-DecayRate*t/req.Duration)
	}

	applyAttack(buf, req.SampleRate)

	if err := normalize(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// applyAttack multiplies the first AttackSeconds of buf by a ramp from 0 to 1.
// Buffers shorter than the attack receive only the leading part of the ramp.
func applyAttack(buf Buffer, sampleRate int) {
	attack := int(math.Round(AttackSeconds * float64(sampleRate)))
	if attack <= 0 {
		return
	}

	steps := float64(attack - 1)
	for i := 0; i < attack && i < len(buf); i++ {
		gain := 0.0
		if steps > 0 {
			gain = float64(i) / steps
		}
		buf[i] *= gain
	}
}

// normalize scales buf so its peak absolute amplitude is PeakAmplitude.
func normalize(buf Buffer) error {
	peak := buf.Peak()
	if peak == 0 || math.IsNaN(peak) || math.IsInf(peak, 0) {
		return ErrDegenerateSignal
	}

	// Dividing each sample keeps the peak sample at exactly PeakAmplitude.
	for i, s := range buf {
		buf[i] = s / peak * PeakAmplitude
	}
	return nil
}
