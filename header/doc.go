// Package header provides typed access to HTTP header fields.
//
// [Store] is an ordered multi-value map keyed by case-insensitive header names.
// It keeps the spelling of the first inserted name and the insertion order of names.
// A store obtained with [Store.ReadOnly] is a deep copy that rejects every mutation
// with [ErrUnsupportedOperation].
//
// [Headers] wraps a [Store] and adds typed getters and setters for the well-known fields
// listed in names.go, such as Content-Type, Allow, If-None-Match or Date.
// Setters serialize a value into a single header value and replace the stored list.
// Getters read the stored text back and either return an error ([*ParseError]) or fall
// back to a "not present" value, depending on the field:
//
//   - numeric getters return -1 for an absent field;
//   - date getters return the zero [time.Time] for an absent field;
//   - list getters return an empty list for an absent field.
//
// The package does not parse or render HTTP messages. It only manages the in-memory
// header representation and the text form of individual header values.
package header

//go:generate go tool errtrace -w .
