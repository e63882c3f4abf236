package skipset

import "reflect"

// Comparer must be implemented by element types that provide their own
// natural order. Compare follows the semantics of cmp.Compare: negative when
// the receiver sorts before other, zero when equal, positive otherwise.
type Comparer[T any] interface {
	Compare(other T) int
}

// Comparator is an explicit ordering function. Sets only use natural order,
// so SkipListSet.Comparator always reports nil.
type Comparator[T any] func(a, b T) int

// nullable reports whether values of T can be nil at all.
func nullable[T any]() bool {
	var zero T
	return isNil(zero)
}

func isNil[T any](x T) bool {
	v := any(x)
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
