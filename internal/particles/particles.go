// Package particles generates the decorative background particle layout.
//
// Layouts are fully determined by a count and a seed, so the page renders the
// same field on every load and in every environment.
package particles

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultCount = 56
	DefaultSeed  = 0xa53a

	// seedStride separates the seeds of neighbouring particles.
	seedStride = 97
)

// Mulberry32 is a small 32-bit state PRNG.
type Mulberry32 struct {
	a uint32
}

func NewMulberry32(seed uint32) *Mulberry32 {
	return &Mulberry32{a: seed}
}

// Uint32 advances the generator and returns the raw 32-bit output.
func (m *Mulberry32) Uint32() uint32 {
	m.a += 0x6d2b79f5
	t := (m.a ^ m.a>>15) * (m.a | 1)
	t = (t + (t^t>>7)*(t|61)) ^ t
	return t ^ t>>14
}

// Float64 returns a value in [0, 1).
func (m *Mulberry32) Float64() float64 {
	return float64(m.Uint32()) / 4294967296
}

// Style describes one particle. Left and Top are percentages of the
// container, Width and Height pixels, the animation fields seconds and the
// drift fields pixel offsets.
type Style struct {
	Left              float64 `json:"left"`
	Top               float64 `json:"top"`
	Width             float64 `json:"width"`
	Height            float64 `json:"height"`
	AnimationDelay    float64 `json:"animationDelay"`
	AnimationDuration float64 `json:"animationDuration"`
	DriftX            float64 `json:"driftX"`
	DriftY            float64 `json:"driftY"`
}

// CSS returns the inline style properties the page binds to each particle.
func (s Style) CSS() map[string]string {
	return map[string]string{
		"left":              formatFloat(s.Left) + "%",
		"top":               formatFloat(s.Top) + "%",
		"width":             formatFloat(s.Width) + "px",
		"height":            formatFloat(s.Height) + "px",
		"animationDelay":    formatFloat(s.AnimationDelay) + "s",
		"animationDuration": formatFloat(s.AnimationDuration) + "s",
		"--drift-x":         formatFloat(s.DriftX) + "px",
		"--drift-y":         formatFloat(s.DriftY) + "px",
	}
}

// Generate returns count particle styles. Particle i draws from its own
// generator seeded with baseSeed+i*97, seven draws in a fixed order.
func Generate(count, baseSeed int) []Style {
	if count <= 0 {
		return []Style{}
	}

	styles := make([]Style, count)
	for i := range styles {
		rng := NewMulberry32(uint32(int64(baseSeed) + int64(i)*seedStride))

		// Explicit float64 conversions keep the compiler from fusing
		// multiply-add pairs, which would change the low bits.
		left := float64(rng.Float64() * 100)
		top := float64(rng.Float64() * 100)
		size := 1.5 + float64(rng.Float64()*6.5)
		delay := float64(rng.Float64() * 10)
		duration := 7 + float64(rng.Float64()*13)
		driftX := float64((rng.Float64() - 0.5) * 120)
		driftY := float64((rng.Float64() - 0.5) * 80)

		styles[i] = Style{
			Left:              left,
			Top:               top,
			Width:             size,
			Height:            size,
			AnimationDelay:    delay,
			AnimationDuration: duration,
			DriftX:            driftX,
			DriftY:            driftY,
		}
	}
	return styles
}

// Field is a generated particle layout.
type Field struct {
	Count  int     `json:"count"`
	Seed   int     `json:"seed"`
	Styles []Style `json:"styles"`
}

func NewField(count, seed int) *Field {
	styles := Generate(count, seed)
	return &Field{Count: len(styles), Seed: seed, Styles: styles}
}

// Style returns the n-th particle, counting from 1.
func (f *Field) Style(n int) (Style, bool) {
	if n < 1 || n > len(f.Styles) {
		return Style{}, false
	}
	return f.Styles[n-1], true
}

// CSS returns the inline style maps for every particle in order.
func (f *Field) CSS() []map[string]string {
	out := make([]map[string]string, len(f.Styles))
	for i, s := range f.Styles {
		out[i] = s.CSS()
	}
	return out
}

// formatFloat prints v the way a browser stringifies a number: plain decimals
// between 1e-6 and 1e21, exponent form outside, and no negative zero.
func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	if abs := math.Abs(v); abs < 1e-6 || abs >= 1e21 {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
