package bell

import (
	"errors"
	"math"
	"testing"
)

func TestSynthesizeLength(t *testing.T) {
	tests := []struct {
		name       string
		duration   float64
		frequency  float64
		sampleRate int
		want       int
	}{
		{"start cue", 2.5, 528, 44100, 110250},
		{"pause cue", 1.5, 440, 44100, 66150},
		{"resume cue", 2.0, 550, 44100, 88200},
		{"completion cue", 5.0, 200, 44100, 220500},
		{"rounds to nearest", 0.10001, 440, 8000, 800},
		{"odd rate", 0.5, 300, 22050, 11025},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := Synthesize(Request{tt.duration, tt.frequency, tt.sampleRate}, DefaultTimbre())
			if err != nil {
				t.Fatalf("Synthesize: %v", err)
			}
			if len(buf) != tt.want {
				t.Errorf("len = %d, want %d", len(buf), tt.want)
			}
		})
	}
}

func TestSynthesizePeak(t *testing.T) {
	for _, req := range []Request{
		NewRequest(2.5, 528),
		NewRequest(1.5, 440),
		NewRequest(5.0, 200),
		{Duration: 0.25, Frequency: 1000, SampleRate: 16000},
	} {
		buf, err := Synthesize(req, DefaultTimbre())
		if err != nil {
			t.Fatalf("Synthesize(%+v): %v", req, err)
		}
		if peak := buf.Peak(); peak != PeakAmplitude {
			t.Errorf("Synthesize(%+v) peak = %v, want %v", req, peak, PeakAmplitude)
		}
		for i, s := range buf {
			if math.IsNaN(s) || math.Abs(s) > PeakAmplitude {
				t.Fatalf("sample %d = %v out of range", i, s)
			}
		}
	}
}

func TestSynthesizeStartsSilent(t *testing.T) {
	buf, err := Synthesize(NewRequest(0.5, 440), DefaultTimbre())
	if err != nil {
		t.Fatal(err)
	}
	if buf[0] != 0 {
		t.Errorf("first sample = %v, want 0", buf[0])
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	req := NewRequest(1.5, 440)
	a, err := Synthesize(req, DefaultTimbre())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Synthesize(req, DefaultTimbre())
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
			t.Fatalf("sample %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSynthesizeDecays(t *testing.T) {
	buf, err := Synthesize(NewRequest(2.5, 528), DefaultTimbre())
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 110250 {
		t.Fatalf("len = %d, want 110250", len(buf))
	}

	tail := buf[len(buf)-len(buf)/100:]
	var energy float64
	for _, s := range tail {
		energy += s * s
	}
	rms := math.Sqrt(energy / float64(len(tail)))
	if rms >= 0.1*PeakAmplitude {
		t.Errorf("tail RMS = %v, want below %v", rms, 0.1*PeakAmplitude)
	}
}

func TestSynthesizeShortAttackClamped(t *testing.T) {
	// 4ms at 44100 Hz is shorter than the 441-sample attack.
	req := Request{Duration: 0.004, Frequency: 528, SampleRate: 44100}
	buf, err := Synthesize(req, DefaultTimbre())
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if len(buf) != 176 {
		t.Fatalf("len = %d, want 176", len(buf))
	}
	if buf.Peak() != PeakAmplitude {
		t.Errorf("peak = %v, want %v", buf.Peak(), PeakAmplitude)
	}
}

func TestSynthesizeInvalidParameter(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{"zero frequency", Request{Duration: 1, Frequency: 0, SampleRate: 44100}},
		{"zero duration", Request{Duration: 0, Frequency: 440, SampleRate: 44100}},
		{"negative duration", Request{Duration: -1, Frequency: 440, SampleRate: 44100}},
		{"negative frequency", Request{Duration: 1, Frequency: -440, SampleRate: 44100}},
		{"zero sample rate", Request{Duration: 1, Frequency: 440, SampleRate: 0}},
		{"NaN duration", Request{Duration: math.NaN(), Frequency: 440, SampleRate: 44100}},
		{"infinite frequency", Request{Duration: 1, Frequency: math.Inf(1), SampleRate: 44100}},
		{"rounds to no samples", Request{Duration: 1e-6, Frequency: 440, SampleRate: 44100}},
		{"too many samples", Request{Duration: 1e14, Frequency: 440, SampleRate: 44100}},
		{"just over the wav limit", Request{Duration: float64(MaxSamples + 1), Frequency: 440, SampleRate: 1}},
		{"beyond int range", Request{Duration: math.MaxFloat64, Frequency: 440, SampleRate: 44100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := Synthesize(tt.req, DefaultTimbre())
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("err = %v, want ErrInvalidParameter", err)
			}
			if buf != nil {
				t.Errorf("expected nil buffer, got %d samples", len(buf))
			}
		})
	}
}

func TestSynthesizeDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		req    Request
		timbre Timbre
	}{
		{"no partials", NewRequest(1, 440), Timbre{}},
		{"zero weights", NewRequest(1, 440), Timbre{Partials: []Partial{{Multiplier: 1, Weight: 0}}}},
		// A lone sample sits at t=0 where every partial is zero.
		{"single sample", Request{Duration: 1, Frequency: 440, SampleRate: 1}, DefaultTimbre()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Synthesize(tt.req, tt.timbre)
			if !errors.Is(err, ErrDegenerateSignal) {
				t.Errorf("err = %v, want ErrDegenerateSignal", err)
			}
		})
	}
}

func TestRequestDefaults(t *testing.T) {
	req := NewRequest(2.5, 528)
	if req.SampleRate != DefaultSampleRate {
		t.Errorf("SampleRate = %d, want %d", req.SampleRate, DefaultSampleRate)
	}
	if req.NumSamples() != 110250 {
		t.Errorf("NumSamples = %d, want 110250", req.NumSamples())
	}
}

func TestApplyAttackRamp(t *testing.T) {
	buf := make(Buffer, 200)
	for i := range buf {
		buf[i] = 1
	}
	// 10 ms at 10 kHz is a 100-sample attack.
	applyAttack(buf, 10000)

	if buf[0] != 0 {
		t.Errorf("buf[0] = %v, want 0", buf[0])
	}
	if buf[99] != 1 {
		t.Errorf("buf[99] = %v, want 1", buf[99])
	}
	if got, want := buf[33], 33.0/99.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("buf[33] = %v, want %v", got, want)
	}
	if buf[150] != 1 {
		t.Errorf("buf[150] = %v, want untouched 1", buf[150])
	}
}
