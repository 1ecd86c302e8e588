package ext

import (
	"reflect"
	"strings"
)

// IsNil reports whether i is nil or holds a nil pointer, map, slice, chan,
// func or interface.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsHashable reports whether i can be used as a map key at run time. Values
// of interface-typed elements may hold slices, maps or funcs that cannot.
func IsHashable(i interface{}) bool {
	if i == nil {
		return true
	}
	return reflect.ValueOf(i).Comparable()
}
