package particles

import (
	"math"
	"reflect"
	"testing"
)

func TestMulberry32_Sequence(t *testing.T) {
	tests := []struct {
		seed uint32
		want []uint32
	}{
		{0, []uint32{1144304738, 1416247, 958946056}},
		{DefaultSeed, []uint32{2903694243, 4144882367}},
	}

	for _, tt := range tests {
		rng := NewMulberry32(tt.seed)
		for i, want := range tt.want {
			if got := rng.Uint32(); got != want {
				t.Errorf("seed %d draw %d: got %d, want %d", tt.seed, i, got, want)
			}
		}
	}
}

func TestMulberry32_Float64(t *testing.T) {
	rng := NewMulberry32(42)
	want := []float64{0.6011037519201636, 0.44829055899754167}
	for i, w := range want {
		if got := rng.Float64(); got != w {
			t.Errorf("draw %d: got %v, want %v", i, got, w)
		}
	}
}

func TestGenerate_Golden(t *testing.T) {
	want := []Style{
		{
			Left: 67.60689995717257, Top: 96.50556293781847,
			Width: 7.812185770482756, Height: 7.812185770482756,
			AnimationDelay: 1.5155893051996827, AnimationDuration: 13.713981771608815,
			DriftX: -22.32885162346065, DriftY: 30.240083541721106,
		},
		{
			Left: 52.17575829010457, Top: 2.032732148654759,
			Width: 4.7496105236932635, Height: 4.7496105236932635,
			AnimationDelay: 3.1530221551656723, AnimationDuration: 9.165013587800786,
			DriftX: 12.909922376275063, DriftY: -11.166089940816164,
		},
		{
			Left: 86.45881372503936, Top: 17.82259880565107,
			Width: 2.4970870601246133, Height: 2.4970870601246133,
			AnimationDelay: 7.977609334047884, AnimationDuration: 9.665323356864974,
			DriftX: 56.1882580909878, DriftY: -8.79874987527728,
		},
	}

	got := Generate(3, DefaultSeed)
	if len(got) != len(want) {
		t.Fatalf("expected %d styles, got %d", len(want), len(got))
	}
	for i := range want {
		assertStyleEqual(t, i, got[i], want[i])
	}
}

func TestGenerate_NegativeSeedWraps(t *testing.T) {
	got := Generate(1, -5)
	want := Style{
		Left: 48.38471892289817, Top: 5.296749505214393,
		Width: 7.6037160196574405, Height: 7.6037160196574405,
		AnimationDelay: 7.963776015676558, AnimationDuration: 19.69197473442182,
		DriftX: 41.6464673448354, DriftY: 0.45001985505223274,
	}
	assertStyleEqual(t, 0, got[0], want)
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(DefaultCount, DefaultSeed)
	b := Generate(DefaultCount, DefaultSeed)
	if !reflect.DeepEqual(a, b) {
		t.Error("expected identical output for identical inputs")
	}

	c := Generate(DefaultCount, DefaultSeed+1)
	if reflect.DeepEqual(a, c) {
		t.Error("expected different output for a different seed")
	}
}

func TestGenerate_PrefixStable(t *testing.T) {
	short := Generate(5, 7)
	long := Generate(50, 7)
	if !reflect.DeepEqual(short, long[:5]) {
		t.Error("particle i should not depend on count")
	}
}

func TestGenerate_Ranges(t *testing.T) {
	for _, s := range Generate(500, 12345) {
		check := func(name string, v, lo, hi float64) {
			if v < lo || v > hi {
				t.Errorf("%s = %v outside [%v, %v]", name, v, lo, hi)
			}
		}
		check("left", s.Left, 0, 100)
		check("top", s.Top, 0, 100)
		check("size", s.Width, 1.5, 8)
		check("delay", s.AnimationDelay, 0, 10)
		check("duration", s.AnimationDuration, 7, 20)
		check("driftX", s.DriftX, -60, 60)
		check("driftY", s.DriftY, -40, 40)
		if s.Width != s.Height {
			t.Errorf("particles are square, got %v x %v", s.Width, s.Height)
		}
	}
}

func TestGenerate_NonPositiveCount(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		got := Generate(n, DefaultSeed)
		if got == nil || len(got) != 0 {
			t.Errorf("count %d: expected empty slice, got %v", n, got)
		}
	}
}

func TestField_Style(t *testing.T) {
	f := NewField(4, DefaultSeed)
	if f.Count != 4 {
		t.Errorf("expected count 4, got %d", f.Count)
	}

	first, ok := f.Style(1)
	if !ok {
		t.Fatal("expected particle 1")
	}
	if first != f.Styles[0] {
		t.Error("Style(1) should be the first particle")
	}

	if _, ok := f.Style(0); ok {
		t.Error("Style(0) should not exist")
	}
	if _, ok := f.Style(5); ok {
		t.Error("Style(5) should not exist")
	}
}

func TestStyle_CSS(t *testing.T) {
	s := Style{
		Left: 12.5, Top: 50, Width: 2, Height: 2,
		AnimationDelay: 1.25, AnimationDuration: 9,
		DriftX: -30, DriftY: 4.5,
	}
	want := map[string]string{
		"left":              "12.5%",
		"top":               "50%",
		"width":             "2px",
		"height":            "2px",
		"animationDelay":    "1.25s",
		"animationDuration": "9s",
		"--drift-x":         "-30px",
		"--drift-y":         "4.5px",
	}
	if got := s.CSS(); !reflect.DeepEqual(got, want) {
		t.Errorf("CSS() = %v, want %v", got, want)
	}

	golden := Generate(1, DefaultSeed)[0].CSS()
	if golden["left"] != "67.60689995717257%" {
		t.Errorf("unexpected left %q", golden["left"])
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{12.5, "12.5"},
		{-30, "-30"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{1.5e-7, "1.5e-7"},
		{-2.5e-8, "-2.5e-8"},
		{1e21, "1e+21"},
		{123456789012345680000, "123456789012345680000"},
	}
	for _, tt := range tests {
		if got := formatFloat(tt.v); got != tt.want {
			t.Errorf("formatFloat(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func assertStyleEqual(t *testing.T, i int, got, want Style) {
	t.Helper()
	pairs := []struct {
		name      string
		got, want float64
	}{
		{"left", got.Left, want.Left},
		{"top", got.Top, want.Top},
		{"width", got.Width, want.Width},
		{"height", got.Height, want.Height},
		{"delay", got.AnimationDelay, want.AnimationDelay},
		{"duration", got.AnimationDuration, want.AnimationDuration},
		{"driftX", got.DriftX, want.DriftX},
		{"driftY", got.DriftY, want.DriftY},
	}
	for _, p := range pairs {
		if p.got != p.want {
			t.Errorf("particle %d %s: got %v, want %v", i, p.name, p.got, p.want)
		}
	}
}
