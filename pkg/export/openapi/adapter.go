// Package openapi converts derived validation schemas into kin-openapi
// values so OpenAPI tooling can embed a form's data shape in a document.
package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formspec/pkg/schemagen"
)

// Schema converts a derived validation schema into an OpenAPI 3 schema.
// oneOf const/title branches become single-value enums carrying the title,
// since OpenAPI 3.0 has no const keyword.
func Schema(src *schemagen.Schema) *openapi3.Schema {
	if src == nil {
		return nil
	}

	out := &openapi3.Schema{}
	if src.Type != "" {
		out.Type = &openapi3.Types{src.Type}
	}
	if len(src.Properties) > 0 {
		out.Properties = make(openapi3.Schemas, len(src.Properties))
		for name, property := range src.Properties {
			out.Properties[name] = openapi3.NewSchemaRef("", Schema(property))
		}
	}
	if len(src.Required) > 0 {
		out.Required = append([]string(nil), src.Required...)
	}
	for _, value := range src.Enum {
		out.Enum = append(out.Enum, value)
	}
	for _, branch := range src.OneOf {
		out.OneOf = append(out.OneOf, openapi3.NewSchemaRef("", &openapi3.Schema{
			Enum:  []any{branch.Const},
			Title: branch.Title,
		}))
	}
	if src.Items != nil {
		out.Items = openapi3.NewSchemaRef("", Schema(src.Items))
	}
	if src.Minimum != nil {
		value := *src.Minimum
		out.Min = &value
	}
	if src.Maximum != nil {
		value := *src.Maximum
		out.Max = &value
	}
	if src.MinItems != nil {
		out.MinItems = uint64(*src.MinItems)
	}
	if src.MaxItems != nil {
		value := uint64(*src.MaxItems)
		out.MaxItems = &value
	}
	return out
}
