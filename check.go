package inputvalidation

import (
	"reflect"
	"strings"
)

// MissingRules returns the names of exported config fields that have no
// corresponding entry in the Ruler's Rules(). Embedded Ruler fields (such as
// Policy) are expanded and their inner fields checked as well.
//
// Fields tagged json:"-" or validate:"-" are skipped.
//
// Use in tests to catch a config option that bypasses validation:
//
//	assert.Empty(t, MissingRules(&Config[int]{}))
func MissingRules(structPtr any, exclude ...string) []string {
	r, ok := structPtr.(Ruler)
	if !ok {
		return nil
	}
	fields := expandFields(structPtr, r.Rules())

	structVal := reflect.Indirect(reflect.ValueOf(structPtr))
	covered := map[string]bool{}
	for _, fr := range fields {
		fv := reflect.ValueOf(fr.fieldPtr)
		if fv.Kind() != reflect.Ptr {
			continue
		}
		if sf := findStructField(structVal, fv); sf != nil {
			covered[fieldKey(*sf)] = true
		}
	}

	excl := map[string]bool{}
	for _, e := range exclude {
		excl[e] = true
	}

	var missing []string
	collectUncovered(structVal.Type(), excl, covered, &missing)
	return missing
}

// fieldKey returns the json tag name if present, otherwise the Go field name.
func fieldKey(sf reflect.StructField) string {
	tag := strings.Split(sf.Tag.Get("json"), ",")[0]
	if tag != "" && tag != "-" {
		return tag
	}
	return sf.Name
}

func collectUncovered(t reflect.Type, excl, covered map[string]bool, missing *[]string) {
	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.Anonymous {
			inner := sf.Type
			if inner.Kind() == reflect.Ptr {
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				collectUncovered(inner, excl, covered, missing)
			}
			continue
		}
		if !sf.IsExported() {
			continue
		}
		if strings.Split(sf.Tag.Get("json"), ",")[0] == "-" || sf.Tag.Get("validate") == "-" {
			continue
		}
		key := fieldKey(sf)
		if excl[key] || excl[sf.Name] {
			continue
		}
		if !covered[key] {
			*missing = append(*missing, key)
		}
	}
}
