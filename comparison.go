package inputvalidation

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Comparison selects the relational test a reader applies between a parsed
// value and its reference value.
type Comparison int

const (
	// CompareNone accepts every parsed value.
	CompareNone Comparison = iota
	LessThan
	LessOrEqual
	GreaterThan
	GreaterOrEqual
	Equal
	NotEqual
)

var comparisonNames = map[Comparison]string{
	CompareNone:    "none",
	LessThan:       "less than",
	LessOrEqual:    "less than or equal to",
	GreaterThan:    "greater than",
	GreaterOrEqual: "greater than or equal to",
	Equal:          "equal to",
	NotEqual:       "not equal to",
}

func (c Comparison) String() string {
	if s, ok := comparisonNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Comparison(%d)", int(c))
}

// holds reports whether a cmp.Compare result satisfies c.
func (c Comparison) holds(order int) bool {
	switch c {
	case CompareNone:
		return true
	case LessThan:
		return order < 0
	case LessOrEqual:
		return order <= 0
	case GreaterThan:
		return order > 0
	case GreaterOrEqual:
		return order >= 0
	case Equal:
		return order == 0
	case NotEqual:
		return order != 0
	}
	return false
}

// Bound pairs a comparison with the reference value it compares against.
// Build one with Bounded; a reader without a bound accepts every parsed
// value.
type Bound[T cmp.Ordered] struct {
	Kind Comparison `json:"kind"`
	Ref  T          `json:"ref"`
}

// Bounded returns a bound accepting values v for which "v kind ref" holds.
func Bounded[T cmp.Ordered](kind Comparison, ref T) *Bound[T] {
	return &Bound[T]{Kind: kind, Ref: ref}
}

func (b *Bound[T]) Rules() []*FieldRules {
	return []*FieldRules{
		Field(&b.Kind, Required, In(LessThan, LessOrEqual, GreaterThan, GreaterOrEqual, Equal, NotEqual)),
		Field(&b.Ref, Describe("reference value")),
	}
}

// Rule returns the acceptance rule for the bound.
func (b *Bound[T]) Rule() Rule {
	return Compare(b.Kind, b.Ref)
}

type comparisonRule[T cmp.Ordered] struct {
	kind Comparison
	ref  T
}

// Compare returns a rule accepting values v of type T for which "v kind ref"
// holds under T's natural ordering. Unlike Min and Max it also checks zero
// values, and it orders text as well as numbers.
func Compare[T cmp.Ordered](kind Comparison, ref T) Rule {
	return comparisonRule[T]{kind: kind, ref: ref}
}

func (r comparisonRule[T]) Validate(value any) error {
	v, ok := value.(T)
	if !ok {
		return validation.NewInternalError(errors.Newf("expected %T, got %T", r.ref, value))
	}
	if r.kind.holds(cmp.Compare(v, r.ref)) {
		return nil
	}
	return validation.NewError("validation_comparison", fmt.Sprintf("must be %s %v", r.kind, r.ref))
}

func (r comparisonRule[T]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.kind == CompareNone {
		return nil
	}
	switch r.kind {
	case Equal:
		ref.Value.Enum = []any{r.ref}
		return nil
	case NotEqual:
		ref.Value.Not = &openapi3.SchemaRef{Value: &openapi3.Schema{Enum: []any{r.ref}}}
		return nil
	}

	if reflect.ValueOf(r.ref).Kind() == reflect.String {
		appendDescription(ref, fmt.Sprintf("%s %q", r.kind, any(r.ref)))
		return nil
	}
	f, err := getFloat(r.ref)
	if err != nil {
		return err
	}
	switch r.kind {
	case LessThan, LessOrEqual:
		ref.Value.Max = &f
		ref.Value.ExclusiveMax = r.kind == LessThan
	case GreaterThan, GreaterOrEqual:
		ref.Value.Min = &f
		ref.Value.ExclusiveMin = r.kind == GreaterThan
	}
	return nil
}
