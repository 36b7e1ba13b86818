package inputvalidation

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// appendDescription adds desc to the schema description, space separated.
func appendDescription(ref *openapi3.SchemaRef, desc string) {
	if desc == "" {
		return
	}
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += desc
}

type requiredRule struct {
	validation.RequiredRule
}

// Required rejects empty values: blank text, zero numbers, nil and empty collections.
var Required = requiredRule{validation.Required}

func (r requiredRule) Describe(name string, schema *openapi3.Schema, _ *openapi3.SchemaRef) error {
	if !slices.Contains(schema.Required, name) {
		schema.Required = append(schema.Required, name)
	}
	return nil
}

type thresholdRule struct {
	validation.ThresholdRule
	threshold any
	min       bool
}

// Min returns a rule that checks a value is greater than or equal to
// threshold. Numbers of different kinds are compared by value, so Min(1)
// works for int, uint and float readers alike, and zero is checked like
// any other value.
func Min(threshold any) Rule {
	return thresholdRule{validation.Min(threshold), threshold, true}
}

// Max returns a rule that checks a value is less than or equal to threshold.
func Max(threshold any) Rule {
	return thresholdRule{validation.Max(threshold), threshold, false}
}

func (r thresholdRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if ref.Value.Type.Is(openapi3.TypeString) {
		ref.Value.Format = fmt.Sprintf("%T", r.threshold)
	}
	f, err := getFloat(r.threshold)
	if err != nil {
		return err
	}
	if r.min {
		ref.Value.Min = &f
	} else {
		ref.Value.Max = &f
	}
	return nil
}

var floatType = reflect.TypeOf(float64(0))

func getFloat(unk any) (float64, error) {
	v := reflect.Indirect(reflect.ValueOf(unk))
	if !v.IsValid() || !v.Type().ConvertibleTo(floatType) {
		return 0, errors.Newf("cannot convert %T to float64", unk)
	}
	return v.Convert(floatType).Float(), nil
}

// Validate checks the value against the threshold. Text values (from a
// Reader[string]) are parsed using the threshold's kind first. Only nil is
// skipped.
func (r thresholdRule) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}

	if rv := reflect.ValueOf(value); rv.Kind() == reflect.String {
		s := rv.String()
		var err error
		switch numberKind(r.threshold) {
		case kindInt:
			if value, err = strconv.ParseInt(s, 10, 64); err != nil {
				return validation.NewError("validation_is_int", "must be an integer")
			}
		case kindUint:
			if value, err = strconv.ParseUint(s, 10, 64); err != nil {
				return validation.NewError("validation_is_uint", "must be a non-negative integer")
			}
		case kindFloat:
			if value, err = strconv.ParseFloat(s, 64); err != nil {
				return validation.NewError("validation_is_float", "must be a number")
			}
		}
	}

	if numberKind(value) == kindOther || numberKind(r.threshold) == kindOther {
		// Times keep ozzo's semantics; anything it cannot compare is a
		// misconfigured rule rather than a rejected value.
		err := r.ThresholdRule.Validate(value)
		var verr validation.Error
		if err != nil && !errors.As(err, &verr) {
			return validation.NewInternalError(err)
		}
		return err
	}
	order, err := compareNumbers(value, r.threshold)
	if err != nil {
		return validation.NewInternalError(err)
	}
	params := map[string]any{"threshold": r.threshold}
	if r.min && order < 0 {
		return validation.ErrMinGreaterEqualThanRequired.SetParams(params)
	}
	if !r.min && order > 0 {
		return validation.ErrMaxLessEqualThanRequired.SetParams(params)
	}
	return nil
}

type numKind int

const (
	kindOther numKind = iota
	kindInt
	kindUint
	kindFloat
)

func numberKind(v any) numKind {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return kindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return kindUint
	case reflect.Float32, reflect.Float64:
		return kindFloat
	}
	return kindOther
}

// compareNumbers orders two numbers of any kinds, exactly for integers and
// through float64 when either side is a float.
func compareNumbers(a, b any) (int, error) {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	ak, bk := numberKind(a), numberKind(b)
	switch {
	case ak == kindFloat || bk == kindFloat:
		af, err := getFloat(a)
		if err != nil {
			return 0, err
		}
		bf, err := getFloat(b)
		if err != nil {
			return 0, err
		}
		return cmp.Compare(af, bf), nil
	case ak == kindInt && bk == kindInt:
		return cmp.Compare(av.Int(), bv.Int()), nil
	case ak == kindUint && bk == kindUint:
		return cmp.Compare(av.Uint(), bv.Uint()), nil
	case ak == kindInt:
		if av.Int() < 0 {
			return -1, nil
		}
		return cmp.Compare(uint64(av.Int()), bv.Uint()), nil
	default:
		if bv.Int() < 0 {
			return 1, nil
		}
		return cmp.Compare(av.Uint(), uint64(bv.Int())), nil
	}
}

type lengthRule struct {
	validation.LengthRule
	min, max int
}

// Length returns a rule that checks the rune length of text, or the length
// of a slice, is within [lo, hi]. hi == 0 means no upper bound.
func Length(lo, hi int) Rule {
	return &lengthRule{validation.RuneLength(lo, hi), lo, hi}
}

// Validate checks the length. Unlike ozzo's rule an empty text or slice is
// measured too, so a whole-line reader with Length(1, 0) rejects a blank line.
func (r *lengthRule) Validate(value any) error {
	v, isNil := validation.Indirect(value)
	if isNil || r.min == 0 {
		return r.LengthRule.Validate(value)
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		if reflect.ValueOf(v).Len() > 0 {
			break
		}
		if r.max > 0 {
			return validation.ErrLengthOutOfRange.SetParams(map[string]any{"min": r.min, "max": r.max})
		}
		return validation.ErrLengthTooShort.SetParams(map[string]any{"min": r.min})
	}
	return r.LengthRule.Validate(value)
}

func (r *lengthRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if ref.Value.Type.Is(openapi3.TypeArray) {
		ref.Value.MinItems = uint64(r.min)
		if r.max > 0 {
			hi := uint64(r.max)
			ref.Value.MaxItems = &hi
		}
		return nil
	}
	ref.Value.MinLength = uint64(r.min)
	if r.max > 0 {
		hi := uint64(r.max)
		ref.Value.MaxLength = &hi
	}
	return nil
}

// inRule checks a value is one of a fixed set.
type inRule struct {
	values []any
	msg    string
}

// In returns a rule that checks a value is one of the allowed values. Zero
// values are checked too.
func In(values ...any) Rule {
	want := make([]string, len(values))
	for i := range values {
		want[i] = fmt.Sprintf("'%v'", values[i])
	}
	return &inRule{values: values, msg: "must be one of " + strings.Join(want, ", ")}
}

func (r *inRule) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	for _, e := range r.values {
		if e == value {
			return nil
		}
	}
	return validation.NewError("validation_in_invalid", fmt.Sprintf("%s got '%v'", r.msg, value))
}

func (r *inRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Enum = r.values
	return nil
}

type eachRule struct {
	validation.EachRule
	rules []Rule
}

// Each returns a rule that applies rules to every element of a slice, such
// as the labels of a menu.
func Each(rules ...Rule) Rule {
	return &eachRule{validation.Each(convertRules(rules...)...), rules}
}

func (r *eachRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	target := ref
	if ref.Value.Items != nil && ref.Value.Items.Value != nil {
		target = ref.Value.Items
	}
	for i := range r.rules {
		if err := r.rules[i].Describe(name, schema, target); err != nil {
			return err
		}
	}
	return nil
}

type custom struct {
	f    func(any) error
	desc string
}

// Custom returns a rule that uses f for validation and desc for the hint.
func Custom(f func(any) error, desc string) Rule {
	return custom{f: f, desc: desc}
}

func (r custom) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}

func (r custom) Validate(value any) error {
	return r.f(value)
}

// By wraps a RuleFunc into a Rule. Unlike Custom, f is run through ozzo so
// nil and typed-nil pointers are dereferenced before f sees them.
func By(f RuleFunc, desc string) Rule {
	return &inlineRule{validation.By(validation.RuleFunc(f)), desc}
}

type inlineRule struct {
	validation.Rule
	desc string
}

func (r *inlineRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}

type describe struct {
	desc string
}

// Describe returns a documentation-only rule. It never rejects a value; its
// text shows up in hints and schemas.
func Describe(desc string) Rule {
	return &describe{desc: desc}
}

func (r *describe) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}

func (r *describe) Validate(_ any) error {
	return nil
}

// DateRule checks text against a time layout. Use [Date] to create one and
// chain [DateRule.Min] and [DateRule.Max] to bound the accepted range.
type DateRule struct {
	validation.DateRule
	layout   string
	min, max time.Time
}

// Date creates a rule accepting text that parses with layout.
func Date(layout string) *DateRule {
	return &DateRule{
		DateRule: validation.Date(layout),
		layout:   layout,
	}
}

// Min sets the earliest accepted date.
func (r *DateRule) Min(t time.Time) *DateRule {
	r.min = t
	r.DateRule = r.DateRule.Min(t)
	return r
}

// Max sets the latest accepted date.
func (r *DateRule) Max(t time.Time) *DateRule {
	r.max = t
	r.DateRule = r.DateRule.Max(t)
	return r
}

// Describe implements [Rule] by recording the layout and range.
func (r *DateRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Format = r.layout
	if !r.min.IsZero() {
		appendDescription(ref, "on or after "+r.min.Format(r.layout))
	}
	if !r.max.IsZero() {
		appendDescription(ref, "on or before "+r.max.Format(r.layout))
	}
	return nil
}

type stringRule struct {
	validation.StringRule
	desc string
}

// NewStringRuleWithError returns a text rule with a custom error and hint description.
func NewStringRuleWithError(validator func(string) bool, err validation.Error, desc string) Rule {
	return stringRule{validation.NewStringRuleWithError(validator, err), desc}
}

// NewStringRule returns a text rule using desc as both the error message and hint.
func NewStringRule(validator func(string) bool, desc string) Rule {
	return stringRule{validation.NewStringRule(validator, desc), desc}
}

// NewStringRuleDecimalMax returns a rule that limits the decimal places of a numeric string.
func NewStringRuleDecimalMax(i uint) Rule {
	desc := fmt.Sprintf("no more than %d decimals", i)
	return NewStringRule(func(s string) bool {
		spl := strings.Split(s, ".")
		if len(spl) < 2 {
			return true
		}
		return len(spl[1]) <= int(i)
	}, desc)
}

func (r stringRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}
