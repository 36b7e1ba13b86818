package inputvalidation

import (
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// scalarSchema returns the base schema for a reader's value type.
func scalarSchema(v any) *openapi3.Schema {
	switch reflect.ValueOf(v).Kind() {
	case reflect.String:
		return openapi3.NewStringSchema()
	case reflect.Float32, reflect.Float64:
		return openapi3.NewFloat64Schema()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return openapi3.NewIntegerSchema().WithMin(0)
	default:
		return openapi3.NewIntegerSchema()
	}
}

// ConfigSchema generates an OpenAPI schema for a configuration value such as
// a MenuConfig, applying the rules of every Ruler type it contains. The CLI
// uses it to document its menu file.
func ConfigSchema(value any) (*openapi3.SchemaRef, error) {
	g := openapi3gen.NewGenerator(openapi3gen.SchemaCustomizer(configCustomizer))
	return g.NewSchemaRefForValue(value, nil)
}

func configCustomizer(name string, t reflect.Type, _ reflect.StructTag, schema *openapi3.Schema) error {
	inst := reflect.New(t)
	r, ok := inst.Interface().(Ruler)
	if !ok {
		return nil
	}
	fields := expandFields(inst.Interface(), r.Rules())
	if err := mapFieldsToTags(fields, inst.Elem()); err != nil {
		return errors.Wrap(err, name)
	}

	for k, propRef := range schema.Properties {
		for _, f := range fields {
			if f.tag != k {
				continue
			}
			for _, rule := range f.rules {
				if err := rule.Describe(k, schema, propRef); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// mapFieldsToTags resolves each FieldRules' fieldPtr to its JSON tag name.
func mapFieldsToTags(fields []*FieldRules, structVal reflect.Value) error {
	for i, fr := range fields {
		fv := reflect.ValueOf(fr.fieldPtr)
		if fv.Kind() != reflect.Ptr {
			return errors.Newf("rule target for field index %d must be a pointer, got %s", i, fv.Kind())
		}
		sf := findStructField(structVal, fv)
		if sf == nil {
			return errors.Newf("rule target for field index %d not found in struct %s", i, structVal.Type())
		}
		fields[i].tag = fieldKey(*sf)
		if tag := strings.Split(sf.Tag.Get("json"), ",")[0]; tag == "-" {
			fields[i].tag = ""
		}
	}
	return nil
}
