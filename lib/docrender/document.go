// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package docrender

import (
	"strings"

	"github.com/bureau-foundation/designdoc/lib/componentdoc"
)

// noDefault is shown in the default column for props without one.
const noDefault = "-"

// Document renders every artifact of set in candidate order, each under
// a title naming its kind, location and short content digest.
func (renderer *Renderer) Document(set *componentdoc.ArtifactSet) string {
	var sections []string
	for _, artifact := range set.Artifacts {
		detail := artifact.Path + "  " + artifact.Digest().Short()
		sections = append(sections, renderer.title(string(artifact.Kind), detail)+"\n\n"+renderer.Markdown(artifact.Content))
	}
	return strings.Join(sections, "\n\n")
}

// Props renders a prop schema as a table of name, type, default, and
// description, in schema order. An empty schema renders a short
// notice instead.
func (renderer *Renderer) Props(resolution *componentdoc.PropsResolution) string {
	var builder strings.Builder
	path := resolution.Path
	if path == "" {
		path = "no props artifact"
	}
	builder.WriteString(renderer.title(resolution.Component, path))
	builder.WriteString("\n\n")

	if resolution.Schema.Len() == 0 {
		builder.WriteString(renderer.style().Foreground(renderer.theme.Faint).Render("No props documented."))
		return builder.String()
	}

	name := renderer.style().Foreground(renderer.theme.Accent)
	faint := renderer.style().Foreground(renderer.theme.Faint)
	g := &grid{header: []string{"Name", "Type", "Default", "Description"}}
	for _, prop := range resolution.Schema.Props() {
		defaultValue := faint.Render(noDefault)
		if prop.DefaultValue != nil {
			defaultValue = *prop.DefaultValue
		}
		g.rows = append(g.rows, []string{name.Render(prop.Name), prop.Type, defaultValue, prop.Description})
	}
	lines := g.lines(renderer.width,
		renderer.style().Bold(true),
		renderer.style().Foreground(renderer.theme.Border))
	builder.WriteString(strings.Join(lines, "\n"))
	return builder.String()
}

func (renderer *Renderer) title(heading, detail string) string {
	return renderer.style().Bold(true).Foreground(renderer.theme.Heading).Render(heading) +
		"  " + renderer.style().Foreground(renderer.theme.Faint).Render(detail)
}
