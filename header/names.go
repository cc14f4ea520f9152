package header

import (
	"net/textproto"

	"github.com/ghettovoice/httphdr/internal/util"
)

// Well-known header names.
const (
	Accept                        = "Accept"
	AcceptCharset                 = "Accept-Charset"
	AcceptEncoding                = "Accept-Encoding"
	AcceptLanguage                = "Accept-Language"
	AcceptRanges                  = "Accept-Ranges"
	AccessControlAllowCredentials = "Access-Control-Allow-Credentials"
	AccessControlAllowHeaders     = "Access-Control-Allow-Headers"
	AccessControlAllowMethods     = "Access-Control-Allow-Methods"
	AccessControlAllowOrigin      = "Access-Control-Allow-Origin"
	AccessControlExposeHeaders    = "Access-Control-Expose-Headers"
	AccessControlMaxAge           = "Access-Control-Max-Age"
	AccessControlRequestHeaders   = "Access-Control-Request-Headers"
	AccessControlRequestMethod    = "Access-Control-Request-Method"
	Age                           = "Age"
	Allow                         = "Allow"
	Authorization                 = "Authorization"
	CacheControl                  = "Cache-Control"
	Connection                    = "Connection"
	ContentEncoding               = "Content-Encoding"
	ContentDisposition            = "Content-Disposition"
	ContentLanguage               = "Content-Language"
	ContentLength                 = "Content-Length"
	ContentLocation               = "Content-Location"
	ContentRange                  = "Content-Range"
	ContentType                   = "Content-Type"
	Cookie                        = "Cookie"
	Date                          = "Date"
	ETag                          = "ETag"
	Expect                        = "Expect"
	Expires                       = "Expires"
	From                          = "From"
	Host                          = "Host"
	IfMatch                       = "If-Match"
	IfModifiedSince               = "If-Modified-Since"
	IfNoneMatch                   = "If-None-Match"
	IfRange                       = "If-Range"
	IfUnmodifiedSince             = "If-Unmodified-Since"
	LastModified                  = "Last-Modified"
	Link                          = "Link"
	Location                      = "Location"
	MaxForwards                   = "Max-Forwards"
	Origin                        = "Origin"
	Pragma                        = "Pragma"
	ProxyAuthenticate             = "Proxy-Authenticate"
	ProxyAuthorization            = "Proxy-Authorization"
	Range                         = "Range"
	Referer                       = "Referer"
	RetryAfter                    = "Retry-After"
	Server                        = "Server"
	SetCookie                     = "Set-Cookie"
	SetCookie2                    = "Set-Cookie2"
	TE                            = "TE"
	Trailer                       = "Trailer"
	TransferEncoding              = "Transfer-Encoding"
	Upgrade                       = "Upgrade"
	UserAgent                     = "User-Agent"
	Vary                          = "Vary"
	Via                           = "Via"
	Warning                       = "Warning"
	WWWAuthenticate               = "WWW-Authenticate"
)

// Names whose spelling differs from [textproto.CanonicalMIMEHeaderKey].
var hdrNames = map[string]string{
	"Etag":             ETag,
	"Te":               TE,
	"Www-Authenticate": WWWAuthenticate,
}

// CanonicName converts name to the canonical form.
// The canonicalization converts the first letter and any letter following a hyphen to upper case;
// the rest are converted to lowercase. For example, the canonical name for "accept-encoding" is "Accept-Encoding".
// Names of the catalog that do not follow this rule keep their usual spelling, e.g. "etag" converts to "ETag".
func CanonicName(name string) string {
	name = util.TrimSP(name)
	if n, ok := hdrNames[name]; ok {
		return n
	}

	name = textproto.CanonicalMIMEHeaderKey(name)
	if n, ok := hdrNames[name]; ok {
		return n
	}
	return name
}
