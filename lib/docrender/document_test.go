// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package docrender

import (
	"strings"
	"testing"

	"github.com/bureau-foundation/designdoc/lib/componentdoc"
)

func TestDocument(t *testing.T) {
	set := &componentdoc.ArtifactSet{
		Component: "Button",
		Artifacts: []componentdoc.Artifact{
			{
				Candidate: componentdoc.Candidate{Category: componentdoc.CategoryComponent, Kind: componentdoc.KindDescription, Path: "docs/components/Button/description.md"},
				Content:   "# Button\n\nButtons trigger actions.",
			},
			{
				Candidate: componentdoc.Candidate{Category: componentdoc.CategoryComponent, Kind: componentdoc.KindExample, Path: "docs/components/Button/examples/basic-usage.md"},
				Content:   "```tsx\n<Button />\n```",
			},
		},
	}

	got := plain(80).Document(set)
	want := strings.Join([]string{
		"description  docs/components/Button/description.md  " + set.Artifacts[0].Digest().Short(),
		"",
		"Button",
		"",
		"Buttons trigger actions.",
		"",
		"example  docs/components/Button/examples/basic-usage.md  " + set.Artifacts[1].Digest().Short(),
		"",
		"<Button />",
	}, "\n")
	if got != want {
		t.Errorf("Document =\n%s\nwant\n%s", got, want)
	}
}

func TestProps(t *testing.T) {
	medium := "medium"
	schema := componentdoc.NewPropSchema()
	schema.Set(componentdoc.PropDescriptor{Name: "size", Type: "string", DefaultValue: &medium, Description: "Button size"})
	schema.Set(componentdoc.PropDescriptor{Name: "onClick", Type: "() => void", Description: "Click handler"})

	got := plain(80).Props(&componentdoc.PropsResolution{
		Component: "Button",
		Path:      "docs/components/Button/props.md",
		Schema:    schema,
	})

	lines := strings.Split(got, "\n")
	if len(lines) != 6 {
		t.Fatalf("Props rendered %d lines, want 6:\n%s", len(lines), got)
	}
	if lines[0] != "Button  docs/components/Button/props.md" {
		t.Errorf("title = %q", lines[0])
	}
	for i, want := range [][]string{
		2: {"Name", "Type", "Default", "Description"},
		4: {"size", "string", "medium", "Button size"},
		5: {"onClick", "() => void", noDefault, "Click handler"},
	} {
		if want == nil {
			continue
		}
		for _, cell := range want {
			if !strings.Contains(lines[i], cell) {
				t.Errorf("line %d = %q, missing %q", i, lines[i], cell)
			}
		}
	}
	if !strings.HasPrefix(lines[5], "onClick  () => void") {
		t.Errorf("row = %q, want columns aligned", lines[5])
	}
}

func TestPropsEmpty(t *testing.T) {
	got := plain(80).Props(&componentdoc.PropsResolution{
		Component: "Divider",
		Schema:    componentdoc.NewPropSchema(),
	})
	want := "Divider  no props artifact\n\nNo props documented."
	if got != want {
		t.Errorf("Props = %q, want %q", got, want)
	}
}
