// Package humantime formats elapsed seconds as short human readable text
// such as "3d 4h" or "59m 59s".
package humantime

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	minuteSeconds = 60
	hourSeconds   = 60 * minuteSeconds
	daySeconds    = 24 * hourSeconds
)

// AllParts renders every non-leading part
const AllParts = math.MaxInt

// HumanTime is a duration in whole seconds
type HumanTime uint64

// FromDuration truncates d to whole seconds; negative durations become zero
func FromDuration(d time.Duration) HumanTime {
	if d < 0 {
		return 0
	}
	return HumanTime(d / time.Second)
}

// Part is one unit of a formatted duration
type Part struct {
	Value uint64
	Unit  byte
}

func (p Part) String() string {
	return strconv.FormatUint(p.Value, 10) + string(p.Unit)
}

// Parts returns days, hours, minutes and seconds, skipping leading units
// that do not apply. Seconds are always present.
func (h HumanTime) Parts() []Part {
	secs := uint64(h)
	parts := make([]Part, 0, 4)
	if secs >= daySeconds {
		parts = append(parts, Part{secs / daySeconds, 'd'})
	}
	if secs >= hourSeconds {
		parts = append(parts, Part{secs / hourSeconds % 24, 'h'})
	}
	if secs >= minuteSeconds {
		parts = append(parts, Part{secs / minuteSeconds % 60, 'm'})
	}
	return append(parts, Part{secs % minuteSeconds, 's'})
}

// ToHuman joins at most maxParts parts with a space. Smaller units are
// truncated, not rounded.
func (h HumanTime) ToHuman(maxParts int) string {
	parts := h.Parts()
	if maxParts < len(parts) {
		parts = parts[:max(maxParts, 0)]
	}

	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.String())
	}
	return b.String()
}

// String renders all parts
func (h HumanTime) String() string {
	return h.ToHuman(AllParts)
}

// Since returns the time elapsed since t, or false when t is in the future
func Since(t time.Time, now time.Time) (HumanTime, bool) {
	if now.Before(t) {
		return 0, false
	}
	return FromDuration(now.Sub(t)), true
}
