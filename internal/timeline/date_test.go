package timeline

import (
	"encoding/json"
	"math"
	"testing"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   DateValue
		want Date
	}{
		{"2019", Date{Year: 2019, Month: 1, Valid: true}},
		{"2023-07", Date{Year: 2023, Month: 7, Valid: true}},
		{"2018-00", Date{Year: 2018, Month: 1, Valid: true}},
		{"2018-xx", Date{Year: 2018, Month: 1, Valid: true}},
		{"2018-", Date{Year: 2018, Month: 1, Valid: true}},
		{"2021-03-15", Date{Year: 2021, Month: 3, Valid: true}},
		{Present, Date{Year: PresentYear, Month: PresentMonth, Valid: true}},
		{"present", Date{Month: 1}},
		{"soon", Date{Month: 1}},
		{"", Date{Month: 1}},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			if got := ParseDate(tt.in); got != tt.want {
				t.Errorf("ParseDate(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecimal(t *testing.T) {
	tests := []struct {
		in   DateValue
		want float64
	}{
		{"2023-07", 2023.5},
		{"2014", 2014},
		{"2020-01", 2020},
		{"2016-04", 2016.25},
		{Present, 2026 + 11.0/12},
	}

	for _, tt := range tests {
		if got := Decimal(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Decimal(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDecimal_MalformedIsNaN(t *testing.T) {
	for _, in := range []DateValue{"soon", "", "Q3-2020"} {
		if got := Decimal(in); !math.IsNaN(got) {
			t.Errorf("Decimal(%q) = %v, want NaN", in, got)
		}
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   DateValue
		want string
	}{
		{"2023-07", "Jul 2023"},
		{"2019", "Jan 2019"},
		{"2015-12", "Dec 2015"},
		{Present, "Present"},
		{"soon", "soon"},
		{"2019-13", "2019-13"},
	}

	for _, tt := range tests {
		if got := FormatDate(tt.in); got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDate_Stable(t *testing.T) {
	for _, in := range []DateValue{"2023-07", "2019", Present} {
		first := FormatDate(in)
		if again := FormatDate(in); again != first {
			t.Errorf("FormatDate(%q) not stable: %q then %q", in, first, again)
		}
	}
}

func TestFormatDateRange(t *testing.T) {
	got := FormatDateRange("2019-06", Present)
	if got != "Jun 2019 - Present" {
		t.Errorf("got %q", got)
	}
}

func TestDateValue_UnmarshalJSON(t *testing.T) {
	var got []DateValue
	if err := json.Unmarshal([]byte(`[2019, "2020-03", "Present", null]`), &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	want := []DateValue{"2019", "2020-03", Present, ""}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d: got %q, want %q", i, got[i], want[i])
		}
	}

	var bad DateValue
	if err := json.Unmarshal([]byte(`{"year": 2019}`), &bad); err == nil {
		t.Error("expected error for an object")
	}
}
