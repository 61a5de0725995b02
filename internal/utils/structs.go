package utils

import (
	"fmt"
	"reflect"
	"strings"
)

var FormTag = "form"

// StructTagValues lists the FormTag values of the exported fields of input, in
// declaration order.
func StructTagValues(input any) []string {
	t := structType(input)

	result := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name, ok := tagName(t.Field(i)); ok {
			result = append(result, name)
		}
	}

	return result
}

// FieldIndexByTag maps each FormTag value of input to its field index.
func FieldIndexByTag(input any) map[string]int {
	t := structType(input)

	result := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name, ok := tagName(t.Field(i)); ok {
			result[name] = i
		}
	}

	return result
}

func structType(input any) reflect.Type {
	t := reflect.TypeOf(input)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t == nil || t.Kind() != reflect.Struct {
		panic("input must be a pointer to a struct or a struct")
	}

	return t
}

func tagName(f reflect.StructField) (string, bool) {
	if f.PkgPath != "" {
		return "", false
	}

	tagValue, _, _ := strings.Cut(f.Tag.Get(FormTag), ",")
	if tagValue == "" || tagValue == "-" {
		return "", false
	}

	return tagValue, true
}

func ErrorWrapOrNil(err error, msg string) error {
	if err == nil {
		return nil
	}

	if msg == "" {
		return err
	}

	return fmt.Errorf("%s: %w", msg, err)
}
