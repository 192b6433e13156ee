package subtitles

import (
	"testing"
)

func TestParseRangeLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Range
		ok   bool
	}{
		{"standard", "00:00:01,000 --> 00:00:05,000", Range{1000, 5000}, true},
		{"inversé accepté tel quel", "00:00:05,000 --> 00:00:01,000", Range{5000, 1000}, true},
		{"contenu en fin de ligne", "00:00:01,000 --> 00:00:05,000 X1:10", Range{}, false},
		{"séparateur point", "00:00:01.000 --> 00:00:05.000", Range{}, false},
		{"flèche sans espaces", "00:00:01,000-->00:00:05,000", Range{}, false},
		{"secondes invalides", "00:00:61,000 --> 00:00:05,000", Range{}, false},
		{"index", "12", Range{}, false},
		{"texte", "Hello --> world", Range{}, false},
		{"vide", "", Range{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseRangeLine(tc.in)
			if ok != tc.ok {
				t.Fatalf("ParseRangeLine(%q) ok = %v; want %v", tc.in, ok, tc.ok)
			}
			if got != tc.want {
				t.Fatalf("ParseRangeLine(%q) = %+v; want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestRangeFormat(t *testing.T) {
	got, err := Range{3000, 7000}.Format()
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if want := "00:00:03,000 --> 00:00:07,000"; got != want {
		t.Fatalf("Format = %q; want %q", got, want)
	}
	if _, err := (Range{0, MaxTimestamp + 1}).Format(); err == nil {
		t.Fatalf("Format hors limites: expected error")
	}
	if s := (Range{-5, 10}).String(); s != "Range{-5ms --> 10ms}" {
		t.Fatalf("String() hors limites = %q", s)
	}
}

func TestShift(t *testing.T) {
	tests := []struct {
		name   string
		in     Range
		offset int64
		dir    Direction
		want   Range
	}{
		{"delay", Range{1000, 5000}, 2000, Delay, Range{3000, 7000}},
		{"delay offset nul", Range{1000, 5000}, 0, Delay, Range{1000, 5000}},
		{"hasten", Range{1000, 5000}, 500, Hasten, Range{500, 4500}},
		{"hasten début protégé", Range{300, 1000}, 500, Hasten, Range{300, 500}},
		{"hasten début égal à l'offset", Range{500, 2000}, 500, Hasten, Range{500, 1500}},
		{"hasten fin protégée", Range{300, 700}, 500, Hasten, Range{300, 700}},
		{"hasten fin et début protégés", Range{100, 400}, 500, Hasten, Range{100, 400}},
		{"hasten intervalle déjà inversé", Range{5000, 1000}, 500, Hasten, Range{4500, 1000}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Shift(tc.in, tc.offset, tc.dir)
			if got != tc.want {
				t.Fatalf("Shift(%+v, %d, %s) = %+v; want %+v", tc.in, tc.offset, tc.dir, got, tc.want)
			}
		})
	}
}

func TestRetreatSafety(t *testing.T) {
	steps := []int64{0, 1, 250, 499, 500, 501, 999, 1000, 5000, 60000}
	for _, start := range steps {
		for _, dur := range steps {
			for _, off := range steps {
				in := Range{Start: start, End: start + dur}
				got := Retreat(in, off)
				if got.Start < 0 {
					t.Fatalf("Retreat(%+v, %d): début négatif %+v", in, off, got)
				}
				if got.End < got.Start {
					t.Fatalf("Retreat(%+v, %d): fin avant début %+v", in, off, got)
				}
				if adv := Advance(in, off); adv.Start != in.Start+off || adv.End != in.End+off {
					t.Fatalf("Advance(%+v, %d) = %+v", in, off, adv)
				}
			}
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"delay", Delay, false},
		{"Advance", Delay, false},
		{"", Delay, false},
		{"hasten", Hasten, false},
		{" RETREAT ", Hasten, false},
		{"sideways", Delay, true},
	}
	for _, tc := range tests {
		got, err := ParseDirection(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseDirection(%q) err = %v; wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("ParseDirection(%q) = %s; want %s", tc.in, got, tc.want)
		}
	}
}
