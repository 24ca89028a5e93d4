package bell

// Partial is one sine component of a tone.
type Partial struct {
	Multiplier float64 `yaml:"multiplier"` // multiple of the fundamental
	Weight     float64 `yaml:"weight"`     // relative amplitude
}

// Timbre is the declarative partial table for a bell.
// LowPartials are added on top of Partials when the fundamental is below
// LowThreshold.
type Timbre struct {
	Partials     []Partial `yaml:"partials"`
	LowThreshold float64   `yaml:"lowThreshold"`
	LowPartials  []Partial `yaml:"lowPartials"`
}

// DefaultTimbre returns the canonical bell partial table.
func DefaultTimbre() Timbre {
	return Timbre{
		Partials: []Partial{
			{Multiplier: 1.0, Weight: 1.0},   // fundamental
			{Multiplier: 2.0, Weight: 0.5},   // octave
			{Multiplier: 3.0, Weight: 0.3},   // fifth above the octave
			{Multiplier: 4.25, Weight: 0.15}, // inharmonic
			{Multiplier: 5.125, Weight: 0.125},
		},
		LowThreshold: 400,
		LowPartials: []Partial{
			{Multiplier: 4.0, Weight: 0.05},
			{Multiplier: 6.0, Weight: 0.025},
			{Multiplier: 8.5, Weight: 0.05},
		},
	}
}

// PartialsFor returns the partials sounded for a fundamental of freq Hz.
func (t Timbre) PartialsFor(freq float64) []Partial {
	if freq >= t.LowThreshold || len(t.LowPartials) == 0 {
		return t.Partials
	}
	out := make([]Partial, 0, len(t.Partials)+len(t.LowPartials))
	out = append(out, t.Partials...)
	return append(out, t.LowPartials...)
}
