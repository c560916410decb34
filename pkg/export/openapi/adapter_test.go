package openapi_test

import (
	"testing"

	"github.com/goliatone/go-formspec/pkg/export/openapi"
	"github.com/goliatone/go-formspec/pkg/schemagen"
	"github.com/goliatone/go-formspec/pkg/testsupport"
)

func TestSchema_Nil(t *testing.T) {
	if out := openapi.Schema(nil); out != nil {
		t.Fatalf("nil input must convert to nil, got %#v", out)
	}
}

func TestSchema_ContactScenario(t *testing.T) {
	src, err := schemagen.Generate(testsupport.ContactForm())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	out := openapi.Schema(src)
	if out.Type == nil || !out.Type.Is("object") {
		t.Fatalf("unexpected root type: %#v", out.Type)
	}
	for _, name := range []string{"name", "email", "status", "notes"} {
		ref, ok := out.Properties[name]
		if !ok || ref.Value == nil {
			t.Fatalf("missing property %q: %#v", name, out.Properties)
		}
	}
	if len(out.Required) != len(src.Required) {
		t.Fatalf("required mismatch: %v vs %v", out.Required, src.Required)
	}

	status := out.Properties["status"].Value
	if len(status.Enum) != 2 || status.Enum[0] != "draft" || status.Enum[1] != "sent" {
		t.Fatalf("unexpected status enum: %#v", status.Enum)
	}
}

func TestSchema_LabelledEnumBecomesSingleValueEnums(t *testing.T) {
	src := &schemagen.Schema{
		Type: "string",
		OneOf: []schemagen.EnumBranch{
			{Const: "low", Title: "Low"},
			{Const: "high", Title: "High"},
		},
	}

	out := openapi.Schema(src)
	if len(out.OneOf) != 2 {
		t.Fatalf("expected two oneOf branches, got %d", len(out.OneOf))
	}
	first := out.OneOf[0].Value
	if len(first.Enum) != 1 || first.Enum[0] != "low" || first.Title != "Low" {
		t.Fatalf("unexpected first branch: %#v", first)
	}
}

func TestSchema_NumericAndArrayBounds(t *testing.T) {
	min, max := 1.0, 10.0
	minItems, maxItems := 1, 5
	src := &schemagen.Schema{
		Type:     "array",
		MinItems: &minItems,
		MaxItems: &maxItems,
		Items: &schemagen.Schema{
			Type:    "number",
			Minimum: &min,
			Maximum: &max,
		},
	}

	out := openapi.Schema(src)
	if out.MinItems != 1 {
		t.Fatalf("minItems = %d", out.MinItems)
	}
	if out.MaxItems == nil || *out.MaxItems != 5 {
		t.Fatalf("maxItems = %v", out.MaxItems)
	}
	items := out.Items.Value
	if items.Min == nil || *items.Min != 1 || items.Max == nil || *items.Max != 10 {
		t.Fatalf("unexpected numeric bounds: %#v", items)
	}
}

func TestSchema_BoundsAreCopies(t *testing.T) {
	min := 2.0
	src := &schemagen.Schema{Type: "number", Minimum: &min}

	out := openapi.Schema(src)
	min = 99
	if *out.Min != 2 {
		t.Fatalf("converted schema must not alias the source bound: %v", *out.Min)
	}
}
