package inputvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// RuleFunc is a function type that validates a value and returns an error if invalid.
	RuleFunc func(value any) error

	// Rule is the interface that all validation rules must implement.
	// Validate gates acceptance of a parsed value; Describe records the
	// constraint on a schema so it can be rendered as a hint.
	Rule interface {
		Validate(value any) error
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}

	// FieldRules binds a struct field pointer to its validation rules.
	FieldRules struct {
		fieldPtr any
		tag      string
		rules    []Rule
	}

	// Ruler is implemented by configuration structs that validate their own
	// fields. NewReader and NewMenu validate their configs through it.
	//
	//	func (p *Policy) Rules() []*FieldRules {
	//	    return []*FieldRules{
	//	        Field(&p.MaxAttempts, Min(0)),
	//	    }
	//	}
	Ruler interface {
		Rules() []*FieldRules
	}
)
