package internal

import "reflect"

var boolType = reflect.TypeFor[bool]()

// Equal reports whether a and b are equal. A value with a method
// Equal(other T) bool, T being its own type, decides for itself. Everything
// else is compared with reflect.DeepEqual.
func Equal[T any](a, b T) bool {
	if eq, ok := any(a).(interface{ Equal(T) bool }); ok {
		return eq.Equal(b)
	}

	// a and b may be stored behind an interface type such as any
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.IsValid() && vb.IsValid() && va.Type() == vb.Type() {
		if m := va.MethodByName("Equal"); m.IsValid() {
			mt := m.Type()
			if mt.NumIn() == 1 && mt.NumOut() == 1 && mt.In(0) == va.Type() && mt.Out(0) == boolType {
				return m.Call([]reflect.Value{vb})[0].Bool()
			}
		}
	}

	return reflect.DeepEqual(a, b)
}
