// Package enum gives integer-backed named types the list and dictionary
// views other languages derive from enum metadata.
//
// Go keeps no such metadata, so each enumeration is registered once with its
// ordered members:
//
//	type Color int
//
//	const (
//		Red Color = iota + 1
//		Green
//	)
//
//	var Colors = enum.Register(enum.M("Red", Red), enum.M("Green", Green))
//
// EnumToList and EnumToDictionary then work from a reflect.Type, failing with
// ext.ErrNilReference for a nil type and ext.ErrTypeMismatch for an
// unregistered type or a mismatched element type.
package enum
