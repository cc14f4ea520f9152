package header

import (
	"fmt"

	"github.com/ghettovoice/httphdr/internal/types"
	"github.com/ghettovoice/httphdr/internal/util"
)

// Values represents parameters of a header value as a multi-value map.
type Values = types.Values

// OrderedMap is a case-insensitive map that keeps the insertion order of its keys.
type OrderedMap[V any] = types.OrderedMap[V]

// NewOrderedMap creates an empty ordered map with room for size keys.
func NewOrderedMap[V any](size int) *OrderedMap[V] { return types.NewOrderedMap[V](size) }

// Value is a structured header value, such as [MediaType] or [ByteRange].
type Value interface {
	fmt.Stringer
	types.ValidFlag
	types.Equalable
}

func joinValues[V Value](vals []V, sep string) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for i := range vals {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(vals[i].String())
	}
	return sb.String()
}
