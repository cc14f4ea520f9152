package header

import (
	"log/slog"

	"github.com/ghettovoice/httphdr/log"
)

// Options configures [Headers].
// A nil *Options is valid and means all defaults.
type Options struct {
	// Logger is used to report values dropped by lenient getters.
	// Default is [log.Default].
	Logger *slog.Logger
}

func (o *Options) log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}
