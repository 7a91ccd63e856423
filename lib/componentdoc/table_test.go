// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package componentdoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTableExtractor_ButtonTable(t *testing.T) {
	content := "| Name | Type | Default | Description |\n" +
		"|------|------|---------|-------------|\n" +
		"| color | string | \"primary\" | Button color |\n" +
		"| disabled | boolean |  | Disables the button |\n"

	schema := TableExtractor{}.Extract(content)

	want := []PropDescriptor{
		{Name: "color", Type: "string", DefaultValue: stringPointer(`"primary"`), Description: "Button color"},
		{Name: "disabled", Type: "boolean", Description: "Disables the button"},
	}
	if diff := cmp.Diff(want, schema.Props()); diff != "" {
		t.Errorf("Extract mismatch (-want +got):\n%s", diff)
	}
	disabled, _ := schema.Get("disabled")
	if disabled.DefaultValue != nil {
		t.Errorf("blank default cell produced %q, want nil", *disabled.DefaultValue)
	}
}

func TestTableExtractor_SurroundingProse(t *testing.T) {
	content := "# Card props\n\n" +
		"Props accepted by the card.\n\n" +
		"   | Prop | Type | Default | Description |   \n" +
		"| --- | --- | --- | --- |\n" +
		"|   elevation   | number | 1 | Shadow depth |\n" +
		"\n" +
		"| ignored | after | the | table |\n"

	schema := TableExtractor{}.Extract(content)

	want := []PropDescriptor{
		{Name: "elevation", Type: "number", DefaultValue: stringPointer("1"), Description: "Shadow depth"},
	}
	if diff := cmp.Diff(want, schema.Props()); diff != "" {
		t.Errorf("Extract mismatch (-want +got):\n%s", diff)
	}
}

func TestTableExtractor_MalformedRows(t *testing.T) {
	content := "| Name | Type | Default | Description |\n" +
		"|---|---|---|---|\n" +
		"| short | row |\n" +
		"| | string | x | no name |\n" +
		"| size | string | \"md\" |\n" +
		"| label | string | | Visible text | extra | cells |\n"

	schema := TableExtractor{}.Extract(content)

	// "| size | string | \"md\" |" splits into exactly five cells, so it
	// is kept with an empty description.
	want := []PropDescriptor{
		{Name: "size", Type: "string", DefaultValue: stringPointer(`"md"`)},
		{Name: "label", Type: "string", Description: "Visible text"},
	}
	if diff := cmp.Diff(want, schema.Props()); diff != "" {
		t.Errorf("Extract mismatch (-want +got):\n%s", diff)
	}
}

func TestTableExtractor_DuplicateNames(t *testing.T) {
	content := "| Name | Type | Default | Description |\n" +
		"|---|---|---|---|\n" +
		"| color | string | | first |\n" +
		"| size | number | | |\n" +
		"| color | \"primary\" | | second |\n"

	schema := TableExtractor{}.Extract(content)

	if diff := cmp.Diff([]string{"color", "size"}, schema.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
	color, _ := schema.Get("color")
	if color.Description != "second" || color.Type != `"primary"` {
		t.Errorf("color = %+v, want the later row", color)
	}
}

func TestTableExtractor_Empty(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"no table", "# Button\n\nNo props.\n"},
		{"header only", "| Name | Type | Default | Description |"},
		{"header and separator", "| Name | Type | Default | Description |\n|---|---|---|---|"},
		{"garbage", "\x01\x02|||\n|"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			schema := TableExtractor{}.Extract(test.content)
			if schema == nil {
				t.Fatal("Extract returned nil")
			}
			if schema.Len() != 0 {
				t.Errorf("Extract = %v, want empty", schema.Names())
			}
		})
	}
}
