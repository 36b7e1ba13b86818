package inputvalidation

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// WhenRule validates conditionally: it applies one set of rules when the
// condition is true, and an optional alternative set (via [WhenRule.Else])
// when false. Use [When] to create one.
type WhenRule struct {
	validation.WhenRule
	desc      string
	whenRules []Rule
	elseRules []Rule
}

// When returns a conditional rule that applies rules only when condition is true.
// The condition is fixed when the reader is built, e.g. a stricter bound in
// a non-interactive run.
func When(condition bool, desc string, rules ...Rule) *WhenRule {
	return &WhenRule{
		WhenRule:  validation.When(condition, convertRules(rules...)...),
		desc:      desc,
		whenRules: rules,
	}
}

// Else specifies alternative rules to apply when the [When] condition is false.
func (r *WhenRule) Else(rules ...Rule) *WhenRule {
	r.WhenRule = r.WhenRule.Else(convertRules(rules...)...)
	r.elseRules = rules
	return r
}

// Describe implements [Rule] by appending a summary of both branches to the
// schema description.
func (r *WhenRule) Describe(name string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if len(r.whenRules) > 0 {
		desc, err := describeRules(name, r.whenRules)
		if err != nil {
			return err
		}
		if desc != "" && r.desc != "" {
			desc = fmt.Sprintf("when %s: %s", r.desc, desc)
		}
		appendDescription(ref, desc)
	}

	if len(r.elseRules) > 0 {
		desc, err := describeRules(name, r.elseRules)
		if err != nil {
			return err
		}
		if desc != "" {
			appendDescription(ref, "else: "+desc)
		}
	}
	return nil
}
