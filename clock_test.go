package pentoface

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestDisplayDigit(t *testing.T) {
	for v := range 100 {
		tens, ones := DisplayDigit(v, true), DisplayDigit(v, false)
		if tens*10+ones != v {
			t.Errorf("DisplayDigit(%d): tens %d ones %d", v, tens, ones)
		}
		if tens < 0 || tens > 9 || ones < 0 || ones > 9 {
			t.Errorf("DisplayDigit(%d) out of range: %d %d", v, tens, ones)
		}
	}
}

func TestHourConvention(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	for _, tc := range []struct {
		hour     int
		h24, h12 int
	}{
		{0, 0, 12},
		{1, 1, 1},
		{11, 11, 11},
		{12, 12, 12},
		{13, 13, 1},
		{23, 23, 11},
	} {
		tm := day.Add(time.Duration(tc.hour) * time.Hour)
		if got := Hour24.Hours(tm); got != tc.h24 {
			t.Errorf("Hour24 at %d = %d, want %d", tc.hour, got, tc.h24)
		}
		if got := Hour12.Hours(tm); got != tc.h12 {
			t.Errorf("Hour12 at %d = %d, want %d", tc.hour, got, tc.h12)
		}
	}
}

func TestSourceDigits(t *testing.T) {
	tm := time.Date(2026, 3, 14, 21, 47, 38, 0, time.UTC)
	want24 := [NumSources]int{2, 1, 4, 7, 3, 8}
	want12 := [NumSources]int{0, 9, 4, 7, 3, 8}
	for s := range Source(NumSources) {
		if got := s.Digit(tm, Hour24); got != want24[s] {
			t.Errorf("%s Hour24 = %d, want %d", s, got, want24[s])
		}
		if got := s.Digit(tm, Hour12); got != want12[s] {
			t.Errorf("%s Hour12 = %d, want %d", s, got, want12[s])
		}
	}
}

func TestManualClock(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewManualClock(start)
	if !c.Now().Equal(start) {
		t.Fatalf("Now = %v, want %v", c.Now(), start)
	}
	c.Advance(1500 * time.Millisecond)
	if got := c.Now().Sub(start); got != 1500*time.Millisecond {
		t.Errorf("after Advance: %v", got)
	}
	c.Set(start)
	if !c.Now().Equal(start) {
		t.Errorf("after Set: %v", c.Now())
	}
}

func TestConventionFor(t *testing.T) {
	for _, tc := range []struct {
		tag  string
		want HourConvention
	}{
		{"en-US", Hour12},
		{"en-GB", Hour24},
		{"de-DE", Hour24},
		{"en-AU", Hour12},
		{"ko-KR", Hour12},
		{"fr-FR", Hour24},
		{"en-US-u-hc-h23", Hour24},
		{"de-DE-u-hc-h12", Hour12},
		{"ja-JP-u-hc-h11", Hour12},
	} {
		if got := ConventionFor(language.MustParse(tc.tag)); got != tc.want {
			t.Errorf("ConventionFor(%s) = %v, want %v", tc.tag, got, tc.want)
		}
	}
}

func TestConventionFromEnv(t *testing.T) {
	for _, tc := range []struct {
		name                string
		lcAll, lcTime, lang string
		want                HourConvention
	}{
		{"unset", "", "", "", Hour24},
		{"lang only", "", "", "en_US.UTF-8", Hour12},
		{"lc_time wins over lang", "", "de_DE.UTF-8", "en_US.UTF-8", Hour24},
		{"lc_all wins", "en_US", "de_DE", "de_DE", Hour12},
		{"posix", "C", "en_US", "en_US", Hour24},
		{"modifier", "", "", "en_AU.UTF-8@euro", Hour12},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("LC_ALL", tc.lcAll)
			t.Setenv("LC_TIME", tc.lcTime)
			t.Setenv("LANG", tc.lang)
			if got := ConventionFromEnv(); got != tc.want {
				t.Errorf("ConventionFromEnv() = %v, want %v", got, tc.want)
			}
		})
	}
}
