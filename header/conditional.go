package header

import (
	"time"

	"braces.dev/errtrace"
)

// SetETag sets the ETag header.
// The value must be a quoted entity tag, optionally prefixed with "W/".
func (h *Headers) SetETag(etag string) error {
	if !isETag(etag) {
		return errtrace.Wrap(newInvalidArgErr("invalid %s value %q: want quoted entity tag", ETag, etag))
	}
	return errtrace.Wrap(h.Set(ETag, etag))
}

func (h *Headers) ETag() (string, bool) { return h.First(ETag) }

// SetIfMatch sets the If-Match header to the entity tags joined with ", ".
func (h *Headers) SetIfMatch(etags ...string) error {
	return errtrace.Wrap(h.Set(IfMatch, JoinList(etags)))
}

// IfMatch returns the entity tags of the If-Match header, see [Headers.ETagValues].
func (h *Headers) IfMatch() ([]string, error) {
	return errtrace.Wrap2(h.ETagValues(IfMatch))
}

// SetIfNoneMatch sets the If-None-Match header to the entity tags joined with ", ".
func (h *Headers) SetIfNoneMatch(etags ...string) error {
	return errtrace.Wrap(h.Set(IfNoneMatch, JoinList(etags)))
}

// IfNoneMatch returns the entity tags of the If-None-Match header, see [Headers.ETagValues].
func (h *Headers) IfNoneMatch() ([]string, error) {
	return errtrace.Wrap2(h.ETagValues(IfNoneMatch))
}

func (h *Headers) SetIfModifiedSince(t time.Time) error {
	return errtrace.Wrap(h.SetDateValue(IfModifiedSince, t))
}

// IfModifiedSince returns the date of the If-Modified-Since header.
// An absent or unparseable header gives the zero time.
func (h *Headers) IfModifiedSince() time.Time { return h.lenientDateValue(IfModifiedSince) }

func (h *Headers) SetIfUnmodifiedSince(t time.Time) error {
	return errtrace.Wrap(h.SetDateValue(IfUnmodifiedSince, t))
}

// IfUnmodifiedSince returns the date of the If-Unmodified-Since header.
// An absent or unparseable header gives the zero time.
func (h *Headers) IfUnmodifiedSince() time.Time { return h.lenientDateValue(IfUnmodifiedSince) }

func (h *Headers) SetLastModified(t time.Time) error {
	return errtrace.Wrap(h.SetDateValue(LastModified, t))
}

// LastModified returns the date of the Last-Modified header.
// An absent or unparseable header gives the zero time.
func (h *Headers) LastModified() time.Time { return h.lenientDateValue(LastModified) }
