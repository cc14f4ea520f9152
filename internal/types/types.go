// Package types contains common types used across the module packages.
package types

type Equalable interface {
	Equal(val any) bool
}

type ValidFlag interface {
	IsValid() bool
}
