package header

import (
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/log"
)

// Headers wraps a [Store] and adds typed accessors for well-known header fields.
// All [Store] methods are available on Headers.
//
// Use [New] or [Wrap] to create Headers.
type Headers struct {
	*Store
	log *slog.Logger
}

// New creates Headers over a new empty store.
func New(opts *Options) *Headers {
	return &Headers{
		Store: NewStore(),
		log:   opts.log(),
	}
}

// Wrap creates Headers over s.
// Changes made through the returned Headers are visible in s and vice versa.
func Wrap(s *Store, opts *Options) (*Headers, error) {
	if s == nil {
		return nil, errtrace.Wrap(newInvalidArgErr("nil store"))
	}
	return &Headers{
		Store: s,
		log:   opts.log(),
	}, nil
}

// ReadOnly returns read-only Headers over a deep copy of h's store.
// A nil h gives empty read-only Headers.
func ReadOnly(h *Headers) *Headers {
	if h == nil {
		return &Headers{Store: NewStore().ReadOnly(), log: log.Default()}
	}
	return h.ReadOnly()
}

// ReadOnly returns read-only Headers over a deep copy of the store.
// If the store is already read-only, it is shared.
func (h *Headers) ReadOnly() *Headers {
	if h == nil {
		return ReadOnly(nil)
	}
	return &Headers{Store: h.Store.ReadOnly(), log: h.logger()}
}

// Clone returns mutable Headers over a deep copy of the store.
func (h *Headers) Clone() *Headers {
	if h == nil {
		return nil
	}
	return &Headers{Store: h.Store.Clone(), log: h.log}
}

// Equal reports whether val holds the same header content as h.
// It accepts [Headers] and [Store] values and pointers.
func (h *Headers) Equal(val any) bool {
	var other *Store
	switch v := val.(type) {
	case *Headers:
		if v == nil {
			return h == nil
		}
		other = v.Store
	case Headers:
		other = v.Store
	case *Store:
		other = v
	case Store:
		other = &v
	default:
		return false
	}
	if h == nil {
		return false
	}
	return h.Store.Equal(other)
}

func (h *Headers) logger() *slog.Logger {
	if h == nil || h.log == nil {
		return log.Default()
	}
	return h.log
}

func (h *Headers) LogValue() slog.Value {
	if h == nil {
		return slog.Value{}
	}
	return h.Store.LogValue()
}
