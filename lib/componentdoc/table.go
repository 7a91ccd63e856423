// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package componentdoc

import "strings"

// TableExtractor reads the first markdown table in the content. The
// table is expected to look like:
//
//	| Name | Type | Default | Description |
//	|------|------|---------|-------------|
//	| color | string | "primary" | Button color |
//
// The first row starting with a pipe is the header and the row after
// it the separator; neither is inspected. Each following row is split
// on pipes and read positionally. Rows with fewer than four columns
// are skipped. The table ends at the first line that does not start
// with a pipe.
type TableExtractor struct{}

// Extract implements Extractor.
func (TableExtractor) Extract(content string) *PropSchema {
	schema := NewPropSchema()

	lines := strings.Split(content, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	header := -1
	for i, line := range lines {
		if strings.HasPrefix(line, "|") {
			header = i
			break
		}
	}
	if header < 0 {
		return schema
	}

	for _, line := range lines[min(header+2, len(lines)):] {
		if !strings.HasPrefix(line, "|") {
			break
		}
		cells := strings.Split(line, "|")
		// A well-formed row splits into a leading empty cell followed by
		// name, type, default, description (and usually a trailing
		// empty cell).
		if len(cells) < 5 {
			continue
		}
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}

		descriptor := PropDescriptor{
			Name:        cells[1],
			Type:        cells[2],
			Description: cells[4],
		}
		if cells[3] != "" {
			descriptor.DefaultValue = stringPointer(cells[3])
		}
		schema.Set(descriptor)
	}
	return schema
}
