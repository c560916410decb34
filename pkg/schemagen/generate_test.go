package schemagen_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formspec/pkg/formspec"
	"github.com/goliatone/go-formspec/pkg/schemagen"
	"github.com/goliatone/go-formspec/pkg/testsupport"
)

func TestGenerate_ContactScenario(t *testing.T) {
	schema, err := schemagen.Generate(testsupport.ContactForm())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := &schemagen.Schema{
		Type: "object",
		Properties: map[string]*schemagen.Schema{
			"name":   {Type: "string"},
			"email":  {Type: "string"},
			"status": {Type: "string", Enum: []string{"draft", "sent"}},
			"notes":  {Type: "string"},
		},
		Required: []string{"name", "email", "status"},
	}
	if diff := cmp.Diff(want, schema); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_ExplicitOptionalFieldNotRequired(t *testing.T) {
	spec := &formspec.FormSpec{Elements: []formspec.Element{
		formspec.Text("name"),
		formspec.Text("nickname", formspec.Optional()),
	}}

	schema, err := schemagen.Generate(spec)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if diff := cmp.Diff([]string{"name"}, schema.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_GroupsAreSchemaTransparent(t *testing.T) {
	inner := []formspec.Element{
		formspec.Text("name"),
		formspec.Number("age", formspec.WithMinimum(0)),
	}
	wrapped := &formspec.FormSpec{Elements: []formspec.Element{
		formspec.NewGroup("Person", inner...),
	}}
	unwrapped := &formspec.FormSpec{Elements: inner}

	wrappedSchema, err := schemagen.Generate(wrapped)
	if err != nil {
		t.Fatalf("generate wrapped: %v", err)
	}
	unwrappedSchema, err := schemagen.Generate(unwrapped)
	if err != nil {
		t.Fatalf("generate unwrapped: %v", err)
	}
	if diff := cmp.Diff(unwrappedSchema, wrappedSchema); diff != "" {
		t.Fatalf("group changed the schema (-unwrapped +wrapped):\n%s", diff)
	}
}

func TestGenerate_ConditionalDescendantsNeverRequired(t *testing.T) {
	spec := &formspec.FormSpec{Elements: []formspec.Element{
		formspec.Bool("insured"),
		formspec.When("insured", true,
			formspec.Text("policy", formspec.WithRequired(true)),
			formspec.Object("provider", []formspec.Element{
				formspec.Text("id", formspec.WithRequired(true)),
			}),
		),
	}}

	schema, err := schemagen.Generate(spec)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if diff := cmp.Diff([]string{"insured"}, schema.Required); diff != "" {
		t.Fatalf("top-level required mismatch (-want +got):\n%s", diff)
	}
	provider := schema.Properties["provider"]
	if provider == nil {
		t.Fatalf("provider property missing: %#v", schema.Properties)
	}
	if len(provider.Required) != 0 {
		t.Fatalf("conditional descendant scope must stay optional, got required %v", provider.Required)
	}
	if _, ok := schema.Properties["policy"]; !ok {
		t.Fatalf("conditional field must still appear in properties")
	}
}

func TestGenerate_LabelledEnumKeepsTitles(t *testing.T) {
	spec := &formspec.FormSpec{Elements: []formspec.Element{
		formspec.EnumPairs("priority", []formspec.EnumOption{
			{ID: "low", Label: "Low"},
			{ID: "high", Label: "High"},
		}),
	}}

	schema, err := schemagen.Generate(spec)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	want := &schemagen.Schema{
		Type: "string",
		OneOf: []schemagen.EnumBranch{
			{Const: "low", Title: "Low"},
			{Const: "high", Title: "High"},
		},
	}
	if diff := cmp.Diff(want, schema.Properties["priority"]); diff != "" {
		t.Fatalf("enum schema mismatch (-want +got):\n%s", diff)
	}
	if len(schema.Properties["priority"].Enum) != 0 {
		t.Fatalf("labelled options must not collapse to a plain enum")
	}
}

func TestGenerate_EnumWithoutOptionsFails(t *testing.T) {
	spec := &formspec.FormSpec{Elements: []formspec.Element{
		formspec.EnumPairs("priority", nil),
	}}

	if _, err := schemagen.Generate(spec); err == nil || !strings.Contains(err.Error(), `enum field "priority" has no options`) {
		t.Fatalf("expected zero-option enum error, got %v", err)
	}
}

func TestGenerate_NestedCollections(t *testing.T) {
	spec := &formspec.FormSpec{Elements: []formspec.Element{
		formspec.Array("lines", []formspec.Element{
			formspec.Text("sku"),
			formspec.Number("quantity", formspec.WithMinimum(1), formspec.WithMaximum(99)),
		}, formspec.WithMinItems(1), formspec.WithMaxItems(10)),
		formspec.Object("shipping", []formspec.Element{
			formspec.Text("city"),
		}),
		formspec.DynamicEnum("warehouse", "warehouses"),
		formspec.DynamicSchema("extras", "extras.schema"),
	}}

	schema, err := schemagen.Generate(spec)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	one, ninetyNine := 1.0, 99.0
	minItems, maxItems := 1, 10
	want := &schemagen.Schema{
		Type: "object",
		Properties: map[string]*schemagen.Schema{
			"lines": {
				Type: "array",
				Items: &schemagen.Schema{
					Type: "object",
					Properties: map[string]*schemagen.Schema{
						"sku":      {Type: "string"},
						"quantity": {Type: "number", Minimum: &one, Maximum: &ninetyNine},
					},
					Required: []string{"sku", "quantity"},
				},
				MinItems: &minItems,
				MaxItems: &maxItems,
			},
			"shipping": {
				Type: "object",
				Properties: map[string]*schemagen.Schema{
					"city": {Type: "string"},
				},
				Required: []string{"city"},
			},
			"warehouse": {Type: "string"},
			"extras":    {Type: "object"},
		},
		Required: []string{"lines", "shipping", "warehouse", "extras"},
	}
	if diff := cmp.Diff(want, schema); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	spec := testsupport.ContactForm()

	first, err := schemagen.Generate(spec)
	if err != nil {
		t.Fatalf("first generate: %v", err)
	}
	second, err := schemagen.Generate(spec)
	if err != nil {
		t.Fatalf("second generate: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("derivation is not deterministic:\n%s", diff)
	}

	firstJSON, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal first: %v", err)
	}
	secondJSON, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal second: %v", err)
	}
	if string(firstJSON) != string(secondJSON) {
		t.Fatalf("serialised output differs:\n%s\n%s", firstJSON, secondJSON)
	}
}
