package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// stringify renders an id value as document content.
// nil becomes "null"; scalars use their canonical form; composites fall back to JSON.
func stringify(v any) string {
	if v == nil {
		return "null"
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	// Named scalar types (type Snowflake string) have no cast case of their own.
	if s, ok := scalarString(reflect.ValueOf(v)); ok {
		return s
	}
	if s, err := encodeJSON(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

func scalarString(rv reflect.Value) (string, bool) {
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	}
	return "", false
}

// encodeJSON marshals without HTML escaping so mentions like <@123> stay greppable.
func encodeJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// snapshot renders a record for error messages.
func snapshot(v any) string {
	s, err := encodeJSON(v)
	if err != nil {
		return fmt.Sprintf("%#v", v)
	}
	return s
}
