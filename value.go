package validation

import (
	"fmt"
	"reflect"
)

///////////////////////////////////////////////////////////////////////////////
// Value helpers
///////////////////////////////////////////////////////////////////////////////

// isEmpty reports whether a value is empty in the PHP empty() sense:
// absent/nil, the empty string, "0", numeric zero, false, or an empty
// container. The required rule fails on exactly these values; most
// other rules pass vacuously on them.
func isEmpty(value any) bool {
	if value == nil {
		return true
	}

	switch v := value.(type) {
	case string:
		return v == "" || v == "0"
	case bool:
		return !v
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}

	return false
}

// stringOf renders a scalar as the string the length, character-class,
// and format rules operate on. Absent values render as "".
func stringOf(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// strictEqual compares two values without type juggling: "1" and 1
// are not equal, nor are int 1 and float64 1.
func strictEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
