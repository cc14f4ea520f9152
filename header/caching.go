package header

import (
	"time"

	"braces.dev/errtrace"
)

func (h *Headers) SetCacheControl(directives string) error {
	return errtrace.Wrap(h.Set(CacheControl, directives))
}

// CacheControl returns all values of the Cache-Control header joined with ", ".
func (h *Headers) CacheControl() (string, bool) { return h.FieldValues(CacheControl) }

func (h *Headers) SetPragma(pragma string) error {
	return errtrace.Wrap(h.Set(Pragma, pragma))
}

func (h *Headers) Pragma() (string, bool) { return h.First(Pragma) }

func (h *Headers) SetDate(t time.Time) error {
	return errtrace.Wrap(h.SetDateValue(Date, t))
}

// Date returns the date of the Date header.
// An absent header gives the zero time, an unparseable one gives [*ParseError].
func (h *Headers) Date() (time.Time, error) {
	return errtrace.Wrap2(h.DateValue(Date))
}

func (h *Headers) SetExpires(t time.Time) error {
	return errtrace.Wrap(h.SetDateValue(Expires, t))
}

// Expires returns the date of the Expires header.
// An absent or unparseable header gives the zero time.
func (h *Headers) Expires() time.Time { return h.lenientDateValue(Expires) }

func (h *Headers) SetVary(names ...string) error {
	return errtrace.Wrap(h.Set(Vary, JoinList(names)))
}

func (h *Headers) Vary() []string { return h.ListValues(Vary) }
