package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/goccy/go-json"
)

// DecodeErrors maps a wrongly typed field in a request body to a field-level
// message. It returns nil for any other decoding failure.
func DecodeErrors(dst any, err error) Errors {
	var te *json.UnmarshalTypeError
	if !errors.As(err, &te) {
		return nil
	}

	leaf := te.Field
	if i := strings.LastIndex(leaf, "."); i >= 0 {
		leaf = leaf[i+1:]
	}
	if leaf == "" {
		return nil
	}

	t := reflect.TypeOf(dst)
	field := fieldPath(t, te.Struct, leaf, "")
	if field == "" {
		field = fieldPath(t, "", leaf, "")
	}
	if field == "" {
		field = leaf
	}
	return Errors{fmt.Sprintf("%s %s", field, typeMessage(te.Type))}
}

// fieldPath finds leaf by Go or json name and returns its dotted json path.
// A non-empty structName restricts the match to fields of that struct.
func fieldPath(t reflect.Type, structName, leaf, prefix string) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return ""
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = f.Name
		}

		if (structName == "" || t.Name() == structName) && (f.Name == leaf || name == leaf) {
			return prefix + name
		}
		if path := fieldPath(f.Type, structName, leaf, prefix+name+"."); path != "" {
			return path
		}
	}
	return ""
}

func typeMessage(t reflect.Type) string {
	if t == nil {
		return "has an invalid type"
	}

	switch t.Kind() {
	case reflect.String:
		return "must be a string"
	case reflect.Map, reflect.Struct:
		return "must be an object"
	case reflect.Bool:
		return "must be a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "must be a number"
	default:
		return "has an invalid type"
	}
}
