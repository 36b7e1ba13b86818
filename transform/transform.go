package transform

import (
	"reflect"
	"strings"
	"unicode"
)

// TrimSpace, ToLower and ToUpper are token sanitizers, usable with
// inputvalidation.WithSanitizers.
var (
	TrimSpace = strings.TrimSpace
	ToLower   = strings.ToLower
	ToUpper   = strings.ToUpper
)

// StripControl removes control characters (escape sequences pasted into a
// terminal, stray carriage returns) from s.
func StripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// CollapseSpace replaces every run of whitespace in s with a single space
// and trims the ends. Useful for whole-line text input.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Chain returns a sanitizer applying fns in order.
func Chain(fns ...func(string) string) func(string) string {
	return func(s string) string {
		for _, f := range fns {
			s = f(s)
		}
		return s
	}
}

// StructTrimSpace runs [strings.TrimSpace] on all string fields in the struct
// recursively, including string slices such as menu options. Fields tagged
// transform:"-" are left alone.
func StructTrimSpace(v any) {
	stringFunc(v, strings.TrimSpace)
}

// StructStringFunc applies f to every string field in the struct recursively.
func StructStringFunc(v any, f func(string) string) {
	stringFunc(v, f)
}

func stringFunc(a any, f func(string) string) {
	v := reflect.ValueOf(a)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}
	for i := range v.NumField() {
		field := v.Field(i)
		if !field.CanSet() || v.Type().Field(i).Tag.Get("transform") == "-" {
			continue
		}
		switch field.Kind() {
		case reflect.String:
			field.SetString(f(field.String()))
		case reflect.Struct:
			stringFunc(field.Addr().Interface(), f)
		case reflect.Ptr:
			if field.IsNil() {
				continue
			}
			switch field.Elem().Kind() {
			case reflect.String:
				field.Elem().SetString(f(field.Elem().String()))
			case reflect.Struct:
				stringFunc(field.Interface(), f)
			}
		case reflect.Slice:
			for j := range field.Len() {
				elem := field.Index(j)
				switch elem.Kind() {
				case reflect.String:
					elem.SetString(f(elem.String()))
				case reflect.Struct:
					stringFunc(elem.Addr().Interface(), f)
				}
			}
		}
	}
}
