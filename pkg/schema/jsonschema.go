package schema

import "github.com/getkin/kin-openapi/openapi3"

// JSONSchema describes the shape of a defaults file for this registry: one
// property per option, enumerated choices, and no additional properties.
func (r *Registry) JSONSchema() *openapi3.Schema {
	root := openapi3.NewObjectSchema()
	root.Title = "snowstart defaults"
	root.Description = "Per-user default settings applied with --defaults and used to seed prompts."

	for _, d := range r.All() {
		root.WithProperty(d.Name, propertySchema(d))
	}
	return root.WithoutAdditionalProperties()
}

func propertySchema(d Descriptor) *openapi3.Schema {
	var prop *openapi3.Schema
	switch d.Type {
	case TypeBoolean:
		prop = openapi3.NewBoolSchema()
	case TypeStringList:
		items := openapi3.NewStringSchema()
		if d.HasChoices() {
			items.WithEnum(enumValues(d)...)
		}
		prop = openapi3.NewArraySchema().WithItems(items)
	default:
		prop = openapi3.NewStringSchema()
		if d.HasChoices() {
			prop.WithEnum(enumValues(d)...)
		}
	}
	prop.Description = d.Message
	return prop
}

func enumValues(d Descriptor) []any {
	values := d.ChoiceValues()
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
