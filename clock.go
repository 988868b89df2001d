package pentoface

import (
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Clock supplies wall-clock time. Components (hour, minute, second) are read
// in the time's own location.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real local time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a controllable clock for tests and demos.
type ManualClock struct {
	t time.Time
}

// NewManualClock returns a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{t: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time {
	return c.t
}

// Set moves the clock to t.
func (c *ManualClock) Set(t time.Time) {
	c.t = t
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// HourConvention selects how hours are displayed.
type HourConvention uint8

const (
	Hour24 HourConvention = iota // 0..23
	Hour12                       // 1..12, midnight and noon show 12
)

func (hc HourConvention) String() string {
	if hc == Hour12 {
		return "12h"
	}
	return "24h"
}

// Hours returns t's hour under the convention.
func (hc HourConvention) Hours(t time.Time) int {
	h := t.Hour()
	if hc == Hour12 {
		h %= 12
		if h == 0 {
			return 12
		}
	}
	return h
}

// Source names the numeral and digit a slot displays.
type Source uint8

const (
	SourceHourTens Source = iota
	SourceHourOnes
	SourceMinuteTens
	SourceMinuteOnes
	SourceSecondTens
	SourceSecondOnes

	NumSources = iota
)

var sourceNames = [NumSources]string{
	"hour-tens", "hour-ones", "minute-tens", "minute-ones", "second-tens", "second-ones",
}

func (s Source) String() string {
	if int(s) < NumSources {
		return sourceNames[s]
	}
	return "source(?)"
}

// Tens reports whether the source shows the tens digit of its numeral.
func (s Source) Tens() bool {
	return s%2 == 0
}

// Numeral returns the two-digit value (hours, minutes or seconds) at t.
func (s Source) Numeral(t time.Time, hc HourConvention) int {
	switch s {
	case SourceHourTens, SourceHourOnes:
		return hc.Hours(t)
	case SourceMinuteTens, SourceMinuteOnes:
		return t.Minute()
	default:
		return t.Second()
	}
}

// Digit returns the digit the source displays at t.
func (s Source) Digit(t time.Time, hc HourConvention) int {
	return DisplayDigit(s.Numeral(t, hc), s.Tens())
}

// DisplayDigit splits a 0..99 value into its tens or ones digit.
func DisplayDigit(value int, tens bool) int {
	if tens {
		return value / 10
	}
	return value % 10
}

// twelveHourRegions lists regions whose common time format uses a 12-hour
// clock with a day period.
var twelveHourRegions = map[string]bool{
	"US": true, "CA": true, "AU": true, "NZ": true, "IN": true, "PK": true,
	"BD": true, "PH": true, "MY": true, "KR": true, "TW": true, "HK": true,
	"EG": true, "SA": true, "AE": true, "JO": true, "KW": true, "QA": true,
	"OM": true, "BH": true, "IQ": true, "LY": true, "SD": true, "YE": true,
	"CO": true, "SV": true, "HN": true, "NI": true,
}

// ConventionFor picks the hour convention for a locale. An explicit Unicode
// hour-cycle extension (-u-hc-h12 and friends) wins; otherwise the region
// decides, defaulting to 24 hours.
func ConventionFor(tag language.Tag) HourConvention {
	switch tag.TypeForKey("hc") {
	case "h11", "h12":
		return Hour12
	case "h23", "h24":
		return Hour24
	}
	region, conf := tag.Region()
	if conf == language.No {
		return Hour24
	}
	if twelveHourRegions[region.String()] {
		return Hour12
	}
	return Hour24
}

// ConventionFromEnv reads the POSIX locale variables (LC_ALL, LC_TIME, LANG)
// and returns the matching convention. Unset, "C" and "POSIX" locales use 24
// hours.
func ConventionFromEnv() HourConvention {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		tag, ok := posixLocaleTag(v)
		if !ok {
			return Hour24
		}
		return ConventionFor(tag)
	}
	return Hour24
}

// posixLocaleTag converts "en_US.UTF-8@euro" style names to a BCP 47 tag.
func posixLocaleTag(s string) (language.Tag, bool) {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" || s == "C" || s == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
