// Package testsupport provides shared fixtures for engine tests.
package testsupport

import "github.com/goliatone/go-formspec/pkg/formspec"

// ContactForm returns the canonical fixture used across engine tests: a
// contact group, a status enum, and a notes field shown only for drafts.
func ContactForm() *formspec.FormSpec {
	return &formspec.FormSpec{
		Title: "Contact",
		Elements: []formspec.Element{
			formspec.NewGroup("Contact",
				formspec.Text("name"),
				formspec.Text("email"),
			),
			formspec.Enum("status", []string{"draft", "sent"}),
			formspec.When("status", "draft",
				formspec.Text("notes"),
			),
		},
	}
}
