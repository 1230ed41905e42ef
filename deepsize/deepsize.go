// Package deepsize provides a reflection-based deep memory size estimate.
// The interning table uses it to report how much heap a table occupies,
// including the record arena, both tree indices, and every text payload.
package deepsize

import (
	"reflect"
	"unsafe"
)

// Rough flat overhead of the runtime map header and buckets.
const mapOverhead = int64(unsafe.Sizeof(uint64(0))) * 8

// Of returns an estimate of the total memory occupied by v, including all
// reachable heap allocations. Pointer cycles are detected and counted once.
func Of(v any) int64 {
	if v == nil {
		return 0
	}
	w := walker{seen: make(map[uintptr]struct{})}
	return w.total(reflect.ValueOf(v))
}

// walker tracks visited pointers during a traversal.
type walker struct {
	seen map[uintptr]struct{}
}

// total returns the full size of v: its inline representation plus
// everything it points to.
func (w *walker) total(v reflect.Value) int64 {
	if !v.IsValid() {
		return 0
	}
	return int64(v.Type().Size()) + w.indirect(v)
}

// indirect returns only the heap-allocated size reachable from v, excluding
// the inline storage a parent container already accounts for.
func (w *walker) indirect(v reflect.Value) int64 {
	if !v.IsValid() {
		return 0
	}

	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return 0
		}
		ptr := v.Pointer()
		if _, ok := w.seen[ptr]; ok {
			return 0
		}
		w.seen[ptr] = struct{}{}
		return w.total(v.Elem())

	case reflect.String:
		// Backing byte array; the header is inline.
		return int64(v.Len())

	case reflect.Slice:
		if v.IsNil() {
			return 0
		}
		s := int64(v.Cap()) * int64(v.Type().Elem().Size())
		if hasIndirect(v.Type().Elem()) {
			for i := 0; i < v.Len(); i++ {
				s += w.indirect(v.Index(i))
			}
		}
		return s

	case reflect.Map:
		if v.IsNil() {
			return 0
		}
		s := mapOverhead
		iter := v.MapRange()
		for iter.Next() {
			s += w.total(iter.Key())
			s += w.total(iter.Value())
		}
		return s

	case reflect.Interface:
		if v.IsNil() {
			return 0
		}
		return w.total(v.Elem())

	case reflect.Struct:
		s := int64(0)
		for i := 0; i < v.NumField(); i++ {
			s += w.indirect(v.Field(i))
		}
		return s

	case reflect.Array:
		s := int64(0)
		if hasIndirect(v.Type().Elem()) {
			for i := 0; i < v.Len(); i++ {
				s += w.indirect(v.Index(i))
			}
		}
		return s

	default:
		// bool, ints, uints, floats: fully inline.
		return 0
	}
}

// hasIndirect reports whether values of type t can reference heap memory
// beyond their inline representation.
func hasIndirect(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.String,
		reflect.Interface:
		return true
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasIndirect(t.Field(i).Type) {
				return true
			}
		}
	case reflect.Array:
		return hasIndirect(t.Elem())
	}
	return false
}
