package zone

import (
	"errors"
	"math"
	"reflect"
	"strings"
)

// ErrSwitchKeyNotFound is reported when a switch key resolves in none of
// the event detail, the action params, or the static configuration values.
var ErrSwitchKeyNotFound = errors.New("switch key not found in event detail, params, or configuration")

// resolveSwitch computes the boolean intent for a switch request.
//
// The key may carry a leading "!" negation marker; the marker is stripped
// before lookup and the looked-up value is inverted after coercion. Lookup
// precedence is strict: event detail, then action params, then the static
// configuration values. An empty key falls back to "active".
func resolveSwitch(key string, evt *Event, configured map[string]any) (bool, error) {
	negated := strings.HasPrefix(key, "!")
	key = strings.TrimPrefix(key, "!")
	if key == "" {
		key = "active"
	}

	var (
		detail, params map[string]any
	)
	if evt != nil {
		detail = evt.Detail
		params = evt.Params
	}

	for _, source := range []map[string]any{detail, params, configured} {
		if value, ok := source[key]; ok {
			return Truthy(value) != negated, nil
		}
	}

	return false, ErrSwitchKeyNotFound
}

// Truthy coerces an arbitrary JSON-like value to a boolean. Booleans pass
// through; nil, numeric zero (including NaN), the empty string, and empty
// collections are false; everything else is true.
func Truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int8:
		return v != 0
	case int16:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case uint:
		return v != 0
	case uint8:
		return v != 0
	case uint16:
		return v != 0
	case uint32:
		return v != 0
	case uint64:
		return v != 0
	case float32:
		return v != 0 && !math.IsNaN(float64(v))
	case float64:
		return v != 0 && !math.IsNaN(v)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() > 0
	case reflect.Ptr, reflect.Interface:
		return !rv.IsNil()
	}

	return true
}
