package timer

import (
	"strconv"
	"time"
)

// Auto thresholds, ascending.
const (
	nsPerMicrosecond = int64(time.Microsecond)
	nsPerMillisecond = int64(time.Millisecond)
	nsPerSecond      = int64(time.Second)
	nsPerMinute      = int64(time.Minute)
	nsPerHour        = int64(time.Hour)
)

// FormatAuto renders ns in the largest unit whose value stays at or above 1.
// Values under a microsecond are whole nanoseconds; everything else is a
// decimal in us, ms, s, m or h. Anything from one hour up is rendered in hours.
func FormatAuto(ns int64) string {
	switch {
	case ns < nsPerMicrosecond:
		return strconv.FormatInt(ns, 10) + " ns"
	case ns < nsPerMillisecond:
		return formatDecimal(ns, nsPerMicrosecond) + " us"
	case ns < nsPerSecond:
		return formatDecimal(ns, nsPerMillisecond) + " ms"
	case ns < nsPerMinute:
		return formatDecimal(ns, nsPerSecond) + " s"
	case ns < nsPerHour:
		return formatDecimal(ns, nsPerMinute) + " m"
	default:
		return formatDecimal(ns, nsPerHour) + " h"
	}
}

// FormatFixed renders ns as a whole number of u, truncating toward zero.
// UnitAuto falls back to FormatAuto.
func FormatFixed(ns int64, u Unit) string {
	length := u.Nanoseconds()
	if length == 0 {
		return FormatAuto(ns)
	}

	return strconv.FormatInt(ns/length, 10) + " " + u.Suffix()
}

// Format renders d in u.
func Format(d time.Duration, u Unit) string {
	return FormatFixed(d.Nanoseconds(), u)
}

func formatDecimal(ns, per int64) string {
	return strconv.FormatFloat(float64(ns)/float64(per), 'f', -1, 64)
}
