package alloc

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"
)

// maxBlockBytes caps a single request well below what any platform can map,
// so oversized requests fail with ErrOutOfMemory instead of a runtime panic.
const maxBlockBytes = 1 << 46

// Bytes returns the size in bytes of n elements of T, or -1 when n is negative
// or the product overflows.
func Bytes[T any](n int) int {
	if n < 0 {
		return -1
	}
	size := int(unsafe.Sizeof(*new(T)))
	if size != 0 && n > math.MaxInt/size {
		return -1
	}
	return n * size
}

// checkRequest validates an allocation request for n elements of T.
func checkRequest[T any](n int) error {
	size := Bytes[T](n)
	if size < 0 || size > maxBlockBytes {
		return fmt.Errorf("%w: %d elements of %d bytes", ErrOutOfMemory, n, unsafe.Sizeof(*new(T)))
	}
	return nil
}

// hasPointers reports whether values of t hold references the collector must trace.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.Interface, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
