package expects

import (
	"reflect"
)

// TypeName returns the fully qualified name of t, e.g.
// "github.com/oriumgames/expects/example/physics.Position".
// Unnamed types fall back to their Go syntax.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind() {
	case reflect.Ptr:
		return "*" + TypeName(t.Elem())
	case reflect.Slice:
		if t.Name() == "" {
			return "[]" + TypeName(t.Elem())
		}
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// TypeNames returns the fully qualified names of types, in order.
// Generated code uses it to build the display names of a contract.
func TypeNames(types ...reflect.Type) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = TypeName(t)
	}
	return names
}
