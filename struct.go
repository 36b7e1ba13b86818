package inputvalidation

import (
	"reflect"
)

// Field creates a FieldRules binding a struct field pointer to its validation rules.
func Field[T any](fieldPtr *T, rules ...Rule) *FieldRules {
	return &FieldRules{
		fieldPtr: fieldPtr,
		rules:    rules,
	}
}

// expandFields flattens embedded Ruler field rules into the parent's rule set.
// Embedded Policy values inside reader configs are expanded this way, so
// error keys and schema properties are flat (not nested under "Policy").
func expandFields(structPtr any, fields []*FieldRules) []*FieldRules {
	structVal := reflect.Indirect(reflect.ValueOf(structPtr))
	if !structVal.IsValid() || structVal.Kind() != reflect.Struct {
		return fields
	}

	result := make([]*FieldRules, 0, len(fields))
	for _, fr := range fields {
		fv := reflect.ValueOf(fr.fieldPtr)
		if fv.Kind() == reflect.Ptr {
			if sf := findStructField(structVal, fv); sf != nil && sf.Anonymous {
				embeddedPtr := fv.Interface()
				if r, ok := embeddedPtr.(Ruler); ok {
					result = append(result, expandFields(embeddedPtr, r.Rules())...)
					continue
				}
			}
		}
		result = append(result, fr)
	}
	return result
}

// findStructField returns the field of structVal whose address is fieldPtr,
// searching embedded structs as well.
func findStructField(structVal reflect.Value, fieldPtr reflect.Value) *reflect.StructField {
	ptr := fieldPtr.Pointer()
	for i := structVal.NumField() - 1; i >= 0; i-- {
		sf := structVal.Type().Field(i)
		fi := structVal.Field(i)
		// An embedded struct shares its address with its first field, so the
		// type has to match as well.
		if fi.CanAddr() && ptr == fi.UnsafeAddr() && sf.Type == fieldPtr.Elem().Type() {
			return &sf
		}
		if sf.Anonymous {
			if sf.Type.Kind() == reflect.Ptr {
				if fi.IsNil() {
					continue
				}
				fi = fi.Elem()
			}
			if fi.Kind() == reflect.Struct {
				if f := findStructField(fi, fieldPtr); f != nil {
					return f
				}
			}
		}
	}
	return nil
}
