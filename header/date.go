package header

import (
	"time"

	"braces.dev/errtrace"
)

const dateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

// Layouts accepted by [ParseDate] in the order they are tried.
// Days may be written with one or two digits.
var dateLayouts = []string{
	"Mon, _2 Jan 2006 15:04:05 MST",
	"Monday, _2 Jan 2006 15:04:05 MST",
	"Monday, _2-Jan-06 15:04:05 MST",
	"Mon, _2-Jan-06 15:04:05 MST",
	time.ANSIC,
	"Monday Jan _2 15:04:05 2006",
}

// North American zone names of RFC 5322 Section 4.3 with their offsets in seconds.
// [time.ParseInLocation] reads them with a zero offset.
var obsZoneOffsets = map[string]int{
	"EST": -5 * 3600,
	"EDT": -4 * 3600,
	"CST": -6 * 3600,
	"CDT": -5 * 3600,
	"MST": -7 * 3600,
	"MDT": -6 * 3600,
	"PST": -8 * 3600,
	"PDT": -7 * 3600,
}

// FormatDate formats t as an HTTP date, for example "Sun, 06 Nov 1994 08:49:37 GMT".
// The time is converted to UTC and sub-second precision is dropped.
func FormatDate(t time.Time) string { return t.UTC().Format(dateLayout) }

// ParseDate parses an HTTP date in one of the RFC 1123, RFC 850 or ANSI C asctime forms.
// Values without a zone are interpreted in UTC.
// The returned time is always in UTC.
func ParseDate(s string) (time.Time, bool) {
	if len(s) < 3 {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err != nil {
			continue
		}
		if name, off := t.Zone(); off == 0 {
			t = t.Add(-time.Duration(obsZoneOffsets[name]) * time.Second)
		}
		return t.UTC(), true
	}
	return time.Time{}, false
}

// DateValue parses the first value of the named header as a date.
// It returns the zero time if the header is absent and [*ParseError] if the value is not a date.
func (h *Headers) DateValue(name string) (time.Time, error) {
	v, ok := h.First(name)
	if !ok {
		return time.Time{}, nil
	}
	t, ok := ParseDate(v)
	if !ok {
		return time.Time{}, errtrace.Wrap(newParseErr(name, v, nil))
	}
	return t, nil
}

// SetDateValue formats t with [FormatDate] and sets it as the only value of the named header.
func (h *Headers) SetDateValue(name string, t time.Time) error {
	return errtrace.Wrap(h.Set(name, FormatDate(t)))
}

func (h *Headers) lenientDateValue(name string) time.Time {
	t, err := h.DateValue(name)
	if err != nil {
		h.logger().Debug("drop unparseable date", "header", name, "error", err)
		return time.Time{}
	}
	return t
}
