package header_test

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/httphdr/header"
	"github.com/ghettovoice/httphdr/log"
)

func newHeaders() *header.Headers { return header.New(&header.Options{Logger: log.Noop}) }

func TestWrap(t *testing.T) {
	t.Parallel()

	if _, err := header.Wrap(nil, nil); !errors.Is(err, header.ErrInvalidArgument) {
		t.Errorf("header.Wrap(nil, nil) error = %v, want %v", err, header.ErrInvalidArgument)
	}

	s := header.NewStore()
	h, err := header.Wrap(s, nil)
	if err != nil {
		t.Fatalf("header.Wrap(s, nil) error = %v, want nil", err)
	}
	if err := h.SetContentLength(5); err != nil {
		t.Fatalf("h.SetContentLength(5) error = %v, want nil", err)
	}
	if v, _ := s.First(header.ContentLength); v != "5" {
		t.Errorf("s.First(%q) = %q, want %q", header.ContentLength, v, "5")
	}
}

func TestReadOnly(t *testing.T) {
	t.Parallel()

	h := newHeaders()
	_ = h.SetAllow(header.MethodGet)

	ro := header.ReadOnly(h)
	_ = h.SetAllow(header.MethodPost)

	if diff := cmp.Diff(ro.Allow(), []header.RequestMethod{header.MethodGet}); diff != "" {
		t.Errorf("ro.Allow() mismatch\ndiff (-got +want):\n%v", diff)
	}
	err := ro.SetAllow(header.MethodPut)
	if diff := cmp.Diff(err, header.ErrUnsupportedOperation, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("ro.SetAllow(PUT) error = %v, want %v\ndiff (-got +want):\n%v", err, header.ErrUnsupportedOperation, diff)
	}

	if empty := header.ReadOnly(nil); !empty.IsReadOnly() || !empty.IsEmpty() {
		t.Errorf("header.ReadOnly(nil) = %v, want empty read-only headers", empty)
	}
}

func TestHeaders_Equal(t *testing.T) {
	t.Parallel()

	h1 := newHeaders()
	_ = h1.SetVary("Accept")
	h2 := newHeaders()
	_ = h2.Set("vary", "Accept")

	if !h1.Equal(h2) {
		t.Errorf("h1.Equal(h2) = false, want true")
	}
	if !h1.Equal(h2.Store) {
		t.Errorf("h1.Equal(h2.Store) = false, want true")
	}
	if !h1.Equal(h1.ReadOnly()) {
		t.Errorf("h1.Equal(h1.ReadOnly()) = false, want true")
	}
	_ = h2.Add("Vary", "Origin")
	if h1.Equal(h2) {
		t.Errorf("h1.Equal(h2) = true after changing h2, want false")
	}
}

func TestHeaders_ListValues(t *testing.T) {
	t.Parallel()

	h := newHeaders()
	if got := h.Vary(); len(got) != 0 {
		t.Errorf("h.Vary() = %q, want empty", got)
	}

	_ = h.Add(header.Vary, "Accept, , Origin ")
	_ = h.Add(header.Vary, "Accept-Encoding")
	want := []string{"Accept", "Origin", "Accept-Encoding"}
	if diff := cmp.Diff(h.Vary(), want); diff != "" {
		t.Errorf("h.Vary() mismatch\ndiff (-got +want):\n%v", diff)
	}

	_ = h.Add(header.CacheControl, "no-cache")
	_ = h.Add(header.CacheControl, "max-age=0")
	if got, ok := h.CacheControl(); !ok || got != "no-cache, max-age=0" {
		t.Errorf("h.CacheControl() = (%q, %v), want (%q, true)", got, ok, "no-cache, max-age=0")
	}
}

func TestHeaders_StringAccessors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hdr  string
		set  func(h *header.Headers) error
		get  func(h *header.Headers) (string, bool)
		want string
	}{
		{
			"origin", header.Origin,
			func(h *header.Headers) error { return h.SetOrigin("https://example.com") },
			(*header.Headers).Origin,
			"https://example.com",
		},
		{
			"pragma", header.Pragma,
			func(h *header.Headers) error { return h.SetPragma("no-cache") },
			(*header.Headers).Pragma,
			"no-cache",
		},
		{
			"upgrade", header.Upgrade,
			func(h *header.Headers) error { return h.SetUpgrade("websocket") },
			(*header.Headers).Upgrade,
			"websocket",
		},
		{
			"cache control", header.CacheControl,
			func(h *header.Headers) error { return h.SetCacheControl("no-store") },
			(*header.Headers).CacheControl,
			"no-store",
		},
		{
			"allow origin", header.AccessControlAllowOrigin,
			func(h *header.Headers) error { return h.SetAccessControlAllowOrigin("*") },
			(*header.Headers).AccessControlAllowOrigin,
			"*",
		},
		{
			"etag", header.ETag,
			func(h *header.Headers) error { return h.SetETag(`W/"v1"`) },
			(*header.Headers).ETag,
			`W/"v1"`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			h := newHeaders()
			if got, ok := c.get(h); ok {
				t.Errorf("getter on empty headers = (%q, true), want (\"\", false)", got)
			}
			if err := c.set(h); err != nil {
				t.Fatalf("setter error = %v, want nil", err)
			}
			if got, ok := c.get(h); !ok || got != c.want {
				t.Errorf("getter = (%q, %v), want (%q, true)", got, ok, c.want)
			}
			if got, _ := h.First(c.hdr); got != c.want {
				t.Errorf("h.First(%q) = %q, want %q", c.hdr, got, c.want)
			}
		})
	}
}

func TestHeaders_ListAccessors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		hdr     string
		set     func(h *header.Headers, vals ...string) error
		get     func(h *header.Headers) []string
		wantRaw string
	}{
		{"allow headers", header.AccessControlAllowHeaders, (*header.Headers).SetAccessControlAllowHeaders, (*header.Headers).AccessControlAllowHeaders, "X-A, X-B"},
		{"expose headers", header.AccessControlExposeHeaders, (*header.Headers).SetAccessControlExposeHeaders, (*header.Headers).AccessControlExposeHeaders, "X-A, X-B"},
		{"request headers", header.AccessControlRequestHeaders, (*header.Headers).SetAccessControlRequestHeaders, (*header.Headers).AccessControlRequestHeaders, "X-A, X-B"},
		{"vary", header.Vary, (*header.Headers).SetVary, (*header.Headers).Vary, "X-A, X-B"},
		{"connection", header.Connection, (*header.Headers).SetConnection, (*header.Headers).Connection, "X-A, X-B"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			h := newHeaders()
			if err := c.set(h, "X-A", "X-B"); err != nil {
				t.Fatalf("setter error = %v, want nil", err)
			}
			if got, _ := h.First(c.hdr); got != c.wantRaw {
				t.Errorf("h.First(%q) = %q, want %q", c.hdr, got, c.wantRaw)
			}
			if diff := cmp.Diff(c.get(h), []string{"X-A", "X-B"}); diff != "" {
				t.Errorf("getter mismatch\ndiff (-got +want):\n%v", diff)
			}
		})
	}
}

func TestHeaders_Allow(t *testing.T) {
	t.Parallel()

	h := newHeaders()
	if got := h.Allow(); len(got) != 0 {
		t.Errorf("h.Allow() = %v, want empty", got)
	}

	if err := h.SetAllow(header.MethodPost, header.MethodGet); err != nil {
		t.Fatalf("h.SetAllow(POST, GET) error = %v, want nil", err)
	}
	if got, _ := h.First(header.Allow); got != "POST,GET" {
		t.Errorf("h.First(%q) = %q, want %q", header.Allow, got, "POST,GET")
	}
	if diff := cmp.Diff(h.Allow(), []header.RequestMethod{header.MethodGet, header.MethodPost}); diff != "" {
		t.Errorf("h.Allow() mismatch\ndiff (-got +want):\n%v", diff)
	}

	_ = h.Set(header.Allow, "TRACE, get, FOO, GET, TRACE")
	if diff := cmp.Diff(h.Allow(), []header.RequestMethod{header.MethodGet, header.MethodTrace}); diff != "" {
		t.Errorf("h.Allow() mismatch\ndiff (-got +want):\n%v", diff)
	}

	_ = h.Set(header.Allow, "")
	if got := h.Allow(); len(got) != 0 {
		t.Errorf("h.Allow() = %v for empty value, want empty", got)
	}
}

func TestHeaders_AccessControlMethods(t *testing.T) {
	t.Parallel()

	h := newHeaders()
	if err := h.SetAccessControlAllowMethods(header.MethodPut, header.MethodGet); err != nil {
		t.Fatalf("h.SetAccessControlAllowMethods(PUT, GET) error = %v, want nil", err)
	}
	if got, _ := h.First(header.AccessControlAllowMethods); got != "PUT,GET" {
		t.Errorf("h.First(%q) = %q, want %q", header.AccessControlAllowMethods, got, "PUT,GET")
	}

	_ = h.Set(header.AccessControlAllowMethods, "PUT, bogus, GET")
	if diff := cmp.Diff(h.AccessControlAllowMethods(), []header.RequestMethod{header.MethodPut, header.MethodGet}); diff != "" {
		t.Errorf("h.AccessControlAllowMethods() mismatch\ndiff (-got +want):\n%v", diff)
	}

	if _, ok := h.AccessControlRequestMethod(); ok {
		t.Errorf("h.AccessControlRequestMethod() ok = true on absent header, want false")
	}
	_ = h.SetAccessControlRequestMethod(header.MethodDelete)
	if m, ok := h.AccessControlRequestMethod(); !ok || m != header.MethodDelete {
		t.Errorf("h.AccessControlRequestMethod() = (%q, %v), want (DELETE, true)", m, ok)
	}
	_ = h.Set(header.AccessControlRequestMethod, "delete")
	if m, ok := h.AccessControlRequestMethod(); ok {
		t.Errorf("h.AccessControlRequestMethod() = (%q, true) for lower case name, want false", m)
	}
}

func TestHeaders_AccessControlAllowCredentials(t *testing.T) {
	t.Parallel()

	h := newHeaders()
	if h.AccessControlAllowCredentials() {
		t.Errorf("h.AccessControlAllowCredentials() = true on absent header, want false")
	}
	_ = h.SetAccessControlAllowCredentials(true)
	if got, _ := h.First(header.AccessControlAllowCredentials); got != "true" {
		t.Errorf("h.First(%q) = %q, want %q", header.AccessControlAllowCredentials, got, "true")
	}
	_ = h.Set(header.AccessControlAllowCredentials, "TRUE")
	if !h.AccessControlAllowCredentials() {
		t.Errorf("h.AccessControlAllowCredentials() = false for %q, want true", "TRUE")
	}
	_ = h.Set(header.AccessControlAllowCredentials, "yes")
	if h.AccessControlAllowCredentials() {
		t.Errorf("h.AccessControlAllowCredentials() = true for %q, want false", "yes")
	}
}

func TestHeaders_Numbers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		hdr     string
		raw     string
		get     func(h *header.Headers) (int64, error)
		want    int64
		wantErr error
	}{
		{"length absent", header.ContentLength, "", (*header.Headers).ContentLength, -1, nil},
		{"length", header.ContentLength, "1024", (*header.Headers).ContentLength, 1024, nil},
		{"length malformed", header.ContentLength, "1k", (*header.Headers).ContentLength, -1, header.ErrMalformedValue},
		{"max age absent", header.AccessControlMaxAge, "", (*header.Headers).AccessControlMaxAge, -1, nil},
		{"max age", header.AccessControlMaxAge, "600", (*header.Headers).AccessControlMaxAge, 600, nil},
		{"max age malformed", header.AccessControlMaxAge, "", (*header.Headers).AccessControlMaxAge, -1, header.ErrMalformedValue},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			h := newHeaders()
			if c.raw != "" || c.wantErr != nil {
				_ = h.Set(c.hdr, c.raw)
			}

			got, err := c.get(h)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("getter error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if got != c.want {
				t.Errorf("getter = %d, want %d", got, c.want)
			}
		})
	}

	h := newHeaders()
	_ = h.SetContentLength(42)
	_ = h.SetAccessControlMaxAge(3600)
	if got, _ := h.First(header.ContentLength); got != "42" {
		t.Errorf("h.First(%q) = %q, want %q", header.ContentLength, got, "42")
	}
	if got, _ := h.First(header.AccessControlMaxAge); got != "3600" {
		t.Errorf("h.First(%q) = %q, want %q", header.AccessControlMaxAge, got, "3600")
	}
}

func TestHeaders_ContentType(t *testing.T) {
	t.Parallel()

	h := newHeaders()
	if mt, err := h.ContentType(); err != nil || !mt.IsZero() {
		t.Errorf("h.ContentType() = (%v, %v) on absent header, want zero", mt, err)
	}

	for _, mt := range []header.MediaType{
		{Type: "*", Subtype: "*"},
		{Type: "text", Subtype: "*"},
		{Type: "application", Subtype: "*+json"},
	} {
		err := h.SetContentType(mt)
		if diff := cmp.Diff(err, header.ErrInvalidArgument, cmpopts.EquateErrors()); diff != "" {
			t.Errorf("h.SetContentType(%v) error = %v, want %v\ndiff (-got +want):\n%v", mt, err, header.ErrInvalidArgument, diff)
		}
	}
	if h.Has(header.ContentType) {
		t.Fatalf("h.Has(%q) = true after rejected setters, want false", header.ContentType)
	}

	mt := header.MediaType{Type: "application", Subtype: "json", Params: header.Values{"charset": {"utf-8"}}}
	if err := h.SetContentType(mt); err != nil {
		t.Fatalf("h.SetContentType(%v) error = %v, want nil", mt, err)
	}
	if got, _ := h.First(header.ContentType); got != "application/json;charset=utf-8" {
		t.Errorf("h.First(%q) = %q, want %q", header.ContentType, got, "application/json;charset=utf-8")
	}
	got, err := h.ContentType()
	if err != nil {
		t.Fatalf("h.ContentType() error = %v, want nil", err)
	}
	if diff := cmp.Diff(got, mt); diff != "" {
		t.Errorf("h.ContentType() mismatch\ndiff (-got +want):\n%v", diff)
	}

	_ = h.Set(header.ContentType, "")
	if mt, err := h.ContentType(); err != nil || !mt.IsZero() {
		t.Errorf("h.ContentType() = (%v, %v) on empty header, want zero", mt, err)
	}

	_ = h.Set(header.ContentType, "garbage")
	_, err = h.ContentType()
	var perr *header.ParseError
	if !errors.As(err, &perr) || perr.Name != header.ContentType || perr.Value != "garbage" {
		t.Errorf("h.ContentType() error = %v, want *header.ParseError for %q", err, "garbage")
	}
}

func TestHeaders_Accept(t *testing.T) {
	t.Parallel()

	h := newHeaders()
	if got, err := h.Accept(); err != nil || len(got) != 0 {
		t.Errorf("h.Accept() = (%v, %v) on absent header, want empty", got, err)
	}

	mts := []header.MediaType{
		{Type: "text", Subtype: "html"},
		{Type: "application", Subtype: "json", Params: header.Values{"q": {"0.9"}}},
		{Type: "*", Subtype: "*", Params: header.Values{"q": {"0.1"}}},
	}
	if err := h.SetAccept(mts...); err != nil {
		t.Fatalf("h.SetAccept(...) error = %v, want nil", err)
	}
	want := "text/html, application/json;q=0.9, */*;q=0.1"
	if got, _ := h.First(header.Accept); got != want {
		t.Errorf("h.First(%q) = %q, want %q", header.Accept, got, want)
	}
	got, err := h.Accept()
	if err != nil {
		t.Fatalf("h.Accept() error = %v, want nil", err)
	}
	if diff := cmp.Diff(got, mts); diff != "" {
		t.Errorf("h.Accept() mismatch\ndiff (-got +want):\n%v", diff)
	}

	_ = h.Set(header.Accept, "text/html, nonsense")
	if _, err := h.Accept(); !errors.Is(err, header.ErrMalformedValue) {
		t.Errorf("h.Accept() error = %v, want %v", err, header.ErrMalformedValue)
	}
}

func TestHeaders_AcceptCharset(t *testing.T) {
	t.Parallel()

	h := newHeaders()
	if got, err := h.AcceptCharset(); err != nil || len(got) != 0 {
		t.Errorf("h.AcceptCharset() = (%v, %v) on absent header, want empty", got, err)
	}

	if err := h.SetAcceptCharset(header.CharsetUTF8, header.CharsetISO88591); err != nil {
		t.Fatalf("h.SetAcceptCharset(...) error = %v, want nil", err)
	}
	if got, _ := h.First(header.AcceptCharset); got != "utf-8, iso-8859-1" {
		t.Errorf("h.First(%q) = %q, want %q", header.AcceptCharset, got, "utf-8, iso-8859-1")
	}

	_ = h.Set(header.AcceptCharset, "utf-8;q=0.7, *;q=0.1, ISO-8859-1")
	got, err := h.AcceptCharset()
	if err != nil {
		t.Fatalf("h.AcceptCharset() error = %v, want nil", err)
	}
	if diff := cmp.Diff(got, []header.Charset{header.CharsetUTF8, header.CharsetISO88591}); diff != "" {
		t.Errorf("h.AcceptCharset() mismatch\ndiff (-got +want):\n%v", diff)
	}

	_ = h.Set(header.AcceptCharset, "utf-8, no-such-charset")
	if _, err := h.AcceptCharset(); !errors.Is(err, header.ErrMalformedValue) {
		t.Errorf("h.AcceptCharset() error = %v, want %v", err, header.ErrMalformedValue)
	}
}

func TestHeaders_ContentDisposition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		field    string
		filename string
		cs       header.Charset
		want     string
		wantErr  error
	}{
		{"name only", "field", "", "", `form-data; name="field"`, nil},
		{"filename", "file", "a.txt", "", `form-data; name="file"; filename="a.txt"`, nil},
		{"ascii charset", "file", "a.txt", header.CharsetUSASCII, `form-data; name="file"; filename="a.txt"`, nil},
		{"utf-8 charset", "file", "€.txt", header.CharsetUTF8, `form-data; name="file"; filename*=UTF-8''%E2%82%AC.txt`, nil},
		{"latin-1 charset", "file", "café.txt", header.CharsetISO88591, `form-data; name="file"; filename*=ISO-8859-1''caf%E9.txt`, nil},
		{"unsupported charset", "file", "a.txt", "UTF-16", "", header.ErrInvalidArgument},
		{"empty name", "", "a.txt", "", "", header.ErrInvalidArgument},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			h := newHeaders()
			var err error
			if c.cs == "" {
				err = h.SetContentDispositionFormData(c.field, c.filename)
			} else {
				err = h.SetContentDispositionFormDataCharset(c.field, c.filename, c.cs)
			}
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("setter error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if got, _ := h.First(header.ContentDisposition); got != c.want {
				t.Errorf("h.First(%q) = %q, want %q", header.ContentDisposition, got, c.want)
			}
		})
	}
}

func TestHeaders_ETag(t *testing.T) {
	t.Parallel()

	cases := []struct {
		etag    string
		wantErr error
	}{
		{`"abc"`, nil},
		{`W/"abc"`, nil},
		{`""`, nil},
		{`abc`, header.ErrInvalidArgument},
		{`"abc`, header.ErrInvalidArgument},
		{`W/abc`, header.ErrInvalidArgument},
		{``, header.ErrInvalidArgument},
	}

	for _, c := range cases {
		t.Run(c.etag, func(t *testing.T) {
			t.Parallel()

			h := newHeaders()
			err := h.SetETag(c.etag)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("h.SetETag(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.etag, err, c.wantErr, diff)
			}
			if got, ok := h.ETag(); ok != (c.wantErr == nil) || (ok && got != c.etag) {
				t.Errorf("h.ETag() = (%q, %v), want stored only on success", got, ok)
			}
		})
	}
}

func TestHeaders_ConditionalTags(t *testing.T) {
	t.Parallel()

	h := newHeaders()
	if got, err := h.IfNoneMatch(); err != nil || len(got) != 0 {
		t.Errorf("h.IfNoneMatch() = (%q, %v) on absent header, want empty", got, err)
	}

	if err := h.SetIfNoneMatch(`"xyzzy"`, `W/"weak"`, "*"); err != nil {
		t.Fatalf("h.SetIfNoneMatch(...) error = %v, want nil", err)
	}
	want := []string{`"xyzzy"`, `W/"weak"`, `*`}
	got, err := h.IfNoneMatch()
	if err != nil {
		t.Fatalf("h.IfNoneMatch() error = %v, want nil", err)
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("h.IfNoneMatch() mismatch\ndiff (-got +want):\n%v", diff)
	}

	_ = h.SetIfMatch(`"a"`)
	_ = h.Add(header.IfMatch, "no tags here")
	got, err = h.IfMatch()
	if err != nil {
		t.Fatalf("h.IfMatch() error = %v, want nil", err)
	}
	if diff := cmp.Diff(got, []string{`"a"`}); diff != "" {
		t.Errorf("h.IfMatch() mismatch\ndiff (-got +want):\n%v", diff)
	}
}

func TestHeaders_ETagValues_Malformed(t *testing.T) {
	t.Parallel()

	h := newHeaders()
	_ = h.Set(header.IfMatch, "not-a-tag")
	_ = h.Add(header.IfMatch, `"valid"`)

	_, err := h.IfMatch()
	if !errors.Is(err, header.ErrMalformedValue) {
		t.Fatalf("h.IfMatch() error = %v, want %v", err, header.ErrMalformedValue)
	}
	var perr *header.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("h.IfMatch() error = %T, want *header.ParseError", err)
	}
	if perr.Name != header.IfMatch || perr.Value != "not-a-tag" {
		t.Errorf("ParseError = {%q, %q}, want {%q, %q}", perr.Name, perr.Value, header.IfMatch, "not-a-tag")
	}
	if !perr.Grammar() {
		t.Errorf("perr.Grammar() = false, want true")
	}
}

func TestHeaders_Dates(t *testing.T) {
	t.Parallel()

	ts := time.Date(1994, time.November, 6, 8, 49, 37, 0, time.UTC)

	cases := []struct {
		name string
		hdr  string
		set  func(h *header.Headers, t time.Time) error
		get  func(h *header.Headers) time.Time
	}{
		{"expires", header.Expires, (*header.Headers).SetExpires, (*header.Headers).Expires},
		{"last modified", header.LastModified, (*header.Headers).SetLastModified, (*header.Headers).LastModified},
		{"if modified since", header.IfModifiedSince, (*header.Headers).SetIfModifiedSince, (*header.Headers).IfModifiedSince},
		{"if unmodified since", header.IfUnmodifiedSince, (*header.Headers).SetIfUnmodifiedSince, (*header.Headers).IfUnmodifiedSince},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			h := newHeaders()
			if got := c.get(h); !got.IsZero() {
				t.Errorf("getter = %v on absent header, want zero", got)
			}
			if err := c.set(h, ts.Add(500*time.Millisecond)); err != nil {
				t.Fatalf("setter error = %v, want nil", err)
			}
			if got, _ := h.First(c.hdr); got != "Sun, 06 Nov 1994 08:49:37 GMT" {
				t.Errorf("h.First(%q) = %q, want %q", c.hdr, got, "Sun, 06 Nov 1994 08:49:37 GMT")
			}
			if diff := cmp.Diff(c.get(h), ts); diff != "" {
				t.Errorf("getter mismatch\ndiff (-got +want):\n%v", diff)
			}

			_ = h.Set(c.hdr, "yesterday")
			if got := c.get(h); !got.IsZero() {
				t.Errorf("getter = %v on unparseable value, want zero", got)
			}
		})
	}
}

func TestHeaders_Date(t *testing.T) {
	t.Parallel()

	h := newHeaders()
	if got, err := h.Date(); err != nil || !got.IsZero() {
		t.Errorf("h.Date() = (%v, %v) on absent header, want zero", got, err)
	}

	ts := time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC)
	_ = h.SetDate(ts)
	got, err := h.Date()
	if err != nil {
		t.Fatalf("h.Date() error = %v, want nil", err)
	}
	if !got.Equal(ts) {
		t.Errorf("h.Date() = %v, want %v", got, ts)
	}

	_ = h.Set(header.Date, "Sun, 6 Nov 1994 08:49:37 GMT")
	want := time.Date(1994, time.November, 6, 8, 49, 37, 0, time.UTC)
	if got, err := h.Date(); err != nil || !got.Equal(want) {
		t.Errorf("h.Date() = (%v, %v), want (%v, nil)", got, err, want)
	}

	_ = h.Set(header.Date, "yesterday")
	_, err = h.Date()
	var perr *header.ParseError
	if !errors.As(err, &perr) || perr.Name != header.Date || perr.Value != "yesterday" {
		t.Errorf("h.Date() error = %v, want *header.ParseError for %q", err, "yesterday")
	}
}

func TestHeaders_Location(t *testing.T) {
	t.Parallel()

	h := newHeaders()
	if u, err := h.Location(); u != nil || err != nil {
		t.Errorf("h.Location() = (%v, %v) on absent header, want (nil, nil)", u, err)
	}
	if err := h.SetLocation(nil); !errors.Is(err, header.ErrInvalidArgument) {
		t.Errorf("h.SetLocation(nil) error = %v, want %v", err, header.ErrInvalidArgument)
	}

	u := &url.URL{Scheme: "https", Host: "example.com", Path: "/a b", RawQuery: "x=1"}
	if err := h.SetLocation(u); err != nil {
		t.Fatalf("h.SetLocation(%v) error = %v, want nil", u, err)
	}
	if got, _ := h.First(header.Location); got != "https://example.com/a%20b?x=1" {
		t.Errorf("h.First(%q) = %q, want %q", header.Location, got, "https://example.com/a%20b?x=1")
	}
	got, err := h.Location()
	if err != nil {
		t.Fatalf("h.Location() error = %v, want nil", err)
	}
	if got.String() != u.String() {
		t.Errorf("h.Location() = %v, want %v", got, u)
	}

	for _, c := range []struct {
		in, want string
	}{
		{"https://example.com/search?q=café", "https://example.com/search?q=caf%C3%A9"},
		{"https://example.com/café#résumé", "https://example.com/caf%C3%A9#r%C3%A9sum%C3%A9"},
	} {
		u, err := url.Parse(c.in)
		if err != nil {
			t.Fatalf("url.Parse(%q) error = %v, want nil", c.in, err)
		}
		if err := h.SetLocation(u); err != nil {
			t.Fatalf("h.SetLocation(%v) error = %v, want nil", u, err)
		}
		if got, _ := h.First(header.Location); got != c.want {
			t.Errorf("h.First(%q) = %q, want %q", header.Location, got, c.want)
		}
	}

	_ = h.Set(header.Location, "http://[::1")
	if _, err := h.Location(); !errors.Is(err, header.ErrMalformedValue) {
		t.Errorf("h.Location() error = %v, want %v", err, header.ErrMalformedValue)
	}
}

func TestHeaders_Range(t *testing.T) {
	t.Parallel()

	h := newHeaders()
	if rs, err := h.Range(); rs != nil || err != nil {
		t.Errorf("h.Range() = (%v, %v) on absent header, want (nil, nil)", rs, err)
	}
	if err := h.SetRange(); !errors.Is(err, header.ErrInvalidArgument) {
		t.Errorf("h.SetRange() error = %v, want %v", err, header.ErrInvalidArgument)
	}
	if err := h.SetRange(header.Bytes(10, 5)); !errors.Is(err, header.ErrInvalidArgument) {
		t.Errorf("h.SetRange(10-5) error = %v, want %v", err, header.ErrInvalidArgument)
	}

	rs := []header.ByteRange{header.Bytes(0, 499), header.BytesFrom(9500), header.LastBytes(500)}
	if err := h.SetRange(rs...); err != nil {
		t.Fatalf("h.SetRange(...) error = %v, want nil", err)
	}
	if got, _ := h.First(header.Range); got != "bytes=0-499, 9500-, -500" {
		t.Errorf("h.First(%q) = %q, want %q", header.Range, got, "bytes=0-499, 9500-, -500")
	}
	got, err := h.Range()
	if err != nil {
		t.Fatalf("h.Range() error = %v, want nil", err)
	}
	if diff := cmp.Diff(got, rs); diff != "" {
		t.Errorf("h.Range() mismatch\ndiff (-got +want):\n%v", diff)
	}

	_ = h.Set(header.Range, "items=0-1")
	if _, err := h.Range(); !errors.Is(err, header.ErrMalformedValue) {
		t.Errorf("h.Range() error = %v, want %v", err, header.ErrMalformedValue)
	}
}
