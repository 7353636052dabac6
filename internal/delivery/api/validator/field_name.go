package validator

import (
	"reflect"
	"strings"
)

// jsonFieldName reports struct fields by the tag the client actually sent.
func jsonFieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "query", "param", "form"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return field.Name
}
