package subtitles

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"00:00:00,000", 0},
		{"00:00:01,000", 1000},
		{"00:00:00,300", 300},
		{"00:01:00,000", 60000},
		{"01:00:00,000", 3600000},
		{"01:23:45,678", 5025678},
		{"99:59:59,999", MaxTimestamp},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTimestamp(tc.in)
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("ParseTimestamp(%q) = %d; want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseTimestamp_Malformed(t *testing.T) {
	for _, in := range []string{
		"",
		"0:00:01,000",
		"00:00:01.000",
		"00:00:01,00",
		"00-00-01,000",
		"aa:bb:cc,ddd",
		"00:60:00,000",
		"00:00:60,000",
		" 00:00:01,000",
		"00:00:01,000 ",
		"00:00:01,000 --> 00:00:02,000",
	} {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			_, err := ParseTimestamp(in)
			if err == nil {
				t.Fatalf("ParseTimestamp(%q): expected error", in)
			}
			if !errors.Is(err, ErrFormat) {
				t.Fatalf("ParseTimestamp(%q): error %v is not ErrFormat", in, err)
			}
			var fe *FormatError
			if !errors.As(err, &fe) || fe.Value != in {
				t.Fatalf("ParseTimestamp(%q): expected *FormatError carrying the value, got %#v", in, err)
			}
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "00:00:00,000"},
		{500, "00:00:00,500"},
		{4500, "00:00:04,500"},
		{5025678, "01:23:45,678"},
		{MaxTimestamp, "99:59:59,999"},
	}
	for _, tc := range tests {
		got, err := FormatTimestamp(tc.in)
		if err != nil {
			t.Fatalf("FormatTimestamp(%d) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("FormatTimestamp(%d) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatTimestamp_OutOfRange(t *testing.T) {
	for _, in := range []int64{-1, MaxTimestamp + 1} {
		_, err := FormatTimestamp(in)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("FormatTimestamp(%d): error = %v; want ErrOutOfRange", in, err)
		}
	}
}

// parcourt un échantillon régulier de l'intervalle plus les bornes de chaque champ
func TestTimestampRoundTripAndMonotonic(t *testing.T) {
	values := []int64{0, 1, 999, 1000, 59999, 60000, 3599999, 3600000, MaxTimestamp - 1, MaxTimestamp}
	for ms := int64(0); ms <= MaxTimestamp; ms += 997_331 {
		values = append(values, ms)
	}

	prev := int64(-1)
	prevStr := ""
	for _, ms := range values {
		s, err := FormatTimestamp(ms)
		if err != nil {
			t.Fatalf("FormatTimestamp(%d) error: %v", ms, err)
		}
		back, err := ParseTimestamp(s)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q) error: %v", s, err)
		}
		if back != ms {
			t.Fatalf("round trip %d -> %q -> %d", ms, s, back)
		}
		again, _ := FormatTimestamp(back)
		if again != s {
			t.Fatalf("encode(decode(%q)) = %q", s, again)
		}
		if ms > prev && prevStr != "" && !(s > prevStr) {
			t.Fatalf("ordre non conservé: %q (%d) <= %q (%d)", s, ms, prevStr, prev)
		}
		if ms > prev {
			prev, prevStr = ms, s
		}
	}
}
