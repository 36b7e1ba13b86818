package inputvalidation

import (
	"reflect"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate validates value. If value implements Ruler its fields are
// validated through Rules(); slices of Ruler structs are validated element
// by element. Anything else is accepted.
func Validate(value any) error {
	return validateCore(value)
}

// ValidateStruct validates a struct with explicit field rules.
// Prefer Validate for types implementing Ruler.
func ValidateStruct(structPtr any, fields []*FieldRules) error {
	return validation.ValidateStruct(structPtr, convertFieldRules(structPtr, fields...)...)
}

func validateCore(value any) error {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return nil
	}
	if (rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface) && rv.IsNil() {
		return nil
	}

	if r, ok := value.(Ruler); ok {
		return validation.ValidateStruct(value, convertFieldRules(value, r.Rules()...)...)
	}
	// A struct value reaches here when ozzo hands a field value to the
	// bridge rule; *T may still implement Ruler.
	if rv.Kind() == reflect.Struct {
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)
		if r, ok := ptr.Interface().(Ruler); ok {
			return validation.ValidateStruct(ptr.Interface(), convertFieldRules(ptr.Interface(), r.Rules()...)...)
		}
		return nil
	}

	rv = reflect.Indirect(rv)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if isRulerStruct(rv.Type().Elem()) {
			return validateSlice(rv)
		}
	case reflect.Ptr, reflect.Interface:
		return validateCore(rv.Elem().Interface())
	}
	return nil
}

func isRulerStruct(t reflect.Type) bool {
	if t.Kind() != reflect.Struct {
		return false
	}
	_, ok := reflect.New(t).Interface().(Ruler)
	return ok
}

func validateSlice(rv reflect.Value) error {
	errs := validation.Errors{}
	for i := range rv.Len() {
		elem := rv.Index(i)
		target := elem.Interface()
		if elem.CanAddr() {
			target = elem.Addr().Interface()
		}
		if err := validateCore(target); err != nil {
			errs[strconv.Itoa(i)] = err
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// rulerBridge is an ozzo validation.Rule that sends field values back
// through validateCore so nested Ruler structs (a config's Bound, for
// instance) are validated along with their parent.
type rulerBridge struct{}

func (rulerBridge) Validate(value any) error {
	if value == nil {
		return nil
	}
	return validateCore(value)
}

// convertFieldRules translates FieldRules into ozzo FieldRules. Embedded
// Ruler fields are expanded first so error keys stay flat.
func convertFieldRules(structPtr any, fields ...*FieldRules) []*validation.FieldRules {
	flat := expandFields(structPtr, fields)

	vFields := make([]*validation.FieldRules, len(flat))
	for i, fr := range flat {
		rules := make([]validation.Rule, len(fr.rules), len(fr.rules)+1)
		for j, r := range fr.rules {
			rules[j] = validation.Rule(r)
		}
		rules = append(rules, rulerBridge{})
		vFields[i] = validation.Field(fr.fieldPtr, rules...)
	}
	return vFields
}

func convertRules(rules ...Rule) []validation.Rule {
	vRules := make([]validation.Rule, len(rules))
	for i := range rules {
		vRules[i] = validation.Rule(rules[i])
	}
	return vRules
}
