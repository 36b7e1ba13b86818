package inputvalidation

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Hint renders a short, human readable summary of what rules accept, such
// as "min 18" or "greater than 3, one of [1, 2, 4]". It is what a reader
// shows after its prompt when ShowHint is set.
func Hint(name string, rules ...Rule) (string, error) {
	return describeRules(name, rules)
}

// describeRules runs Describe on each rule against a scratch schema and
// summarizes the resulting schema mutations.
func describeRules(name string, rules []Rule) (string, error) {
	if len(rules) == 0 {
		return "", nil
	}

	schema := openapi3.NewSchema()
	ref := &openapi3.SchemaRef{Value: openapi3.NewSchema()}
	for _, r := range rules {
		if err := r.Describe(name, schema, ref); err != nil {
			return "", err
		}
	}
	return summarize(schema, ref.Value), nil
}

func summarize(parent, s *openapi3.Schema) string {
	var parts []string

	if s.Description != "" {
		parts = append(parts, s.Description)
	}
	if len(parent.Required) > 0 {
		parts = append(parts, "required")
	}
	if s.Min != nil {
		if s.ExclusiveMin {
			parts = append(parts, fmt.Sprintf("greater than %g", *s.Min))
		} else {
			parts = append(parts, fmt.Sprintf("min %g", *s.Min))
		}
	}
	if s.Max != nil {
		if s.ExclusiveMax {
			parts = append(parts, fmt.Sprintf("less than %g", *s.Max))
		} else {
			parts = append(parts, fmt.Sprintf("max %g", *s.Max))
		}
	}
	if s.MinLength > 0 {
		parts = append(parts, fmt.Sprintf("at least %d characters", s.MinLength))
	}
	if s.MaxLength != nil {
		parts = append(parts, fmt.Sprintf("at most %d characters", *s.MaxLength))
	}
	if len(s.Enum) > 0 {
		parts = append(parts, "one of ["+joinValues(s.Enum)+"]")
	}
	if s.Not != nil && s.Not.Value != nil && len(s.Not.Value.Enum) > 0 {
		parts = append(parts, "not "+joinValues(s.Not.Value.Enum))
	}

	return strings.Join(parts, ", ")
}

func joinValues(vs []any) string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = fmt.Sprint(v)
	}
	return strings.Join(out, ", ")
}
