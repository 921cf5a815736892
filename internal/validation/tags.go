package validation

import (
	"reflect"
	"strings"
)

// jsonTagName returns the json name of a struct field, or "" to fall back to
// the Go field name.
func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
