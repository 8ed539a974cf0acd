package api

import (
	"strings"
	"time"
)

//dateLayouts are the date formats accepted across the sheets, tried in order
var dateLayouts = []string{"2006-01-02", "02/01/2006", "01/02/2006", "02-01-2006"}

//ParseDate parses a date cell in any of the accepted layouts. Empty cells,
//unset sentinels, and unparseable strings all report ok=false rather than an
//error: a bad date degrades downstream checks instead of failing them.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if noValue(s) {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

//DatesOverlap reports whether the two inclusive date ranges overlap. If any
//endpoint fails to parse, the ranges are conservatively treated as disjoint.
func DatesOverlap(startA, endA, startB, endB string) bool {
	sa, ok1 := ParseDate(startA)
	ea, ok2 := ParseDate(endA)
	sb, ok3 := ParseDate(startB)
	eb, ok4 := ParseDate(endB)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false
	}
	return !sa.After(eb) && !sb.After(ea)
}

//MissionDays returns the inclusive day count of a mission, floored at 1 for
//valid dates. It returns 0 when either date fails to parse; callers must treat
//0 as "unknown duration", distinct from a legitimate 1-day mission.
func MissionDays(start, end string) int {
	s, ok1 := ParseDate(start)
	e, ok2 := ParseDate(end)
	if !ok1 || !ok2 {
		return 0
	}
	days := int(e.Sub(s).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}
