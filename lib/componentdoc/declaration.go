// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package componentdoc

import (
	"context"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
)

// propsNamePattern selects the declarations whose members are props.
var propsNamePattern = regexp.MustCompile(`(?i)props`)

// DeclarationExtractor reads TypeScript declarations of component
// props:
//
//	interface ButtonProps {
//	  /** Visual size. @default "medium" */
//	  size?: "small" | "medium" | "large";
//	}
//
// Every interface, and every type alias of an object type, whose name
// contains "props" in any case contributes its property signatures,
// wherever it is declared in the file. When several declarations
// define the same prop, the one declared last wins. A member's JSDoc
// comment supplies its description, and its @default tag its default.
//
// Content is parsed with the TSX grammar so that component source
// containing JSX is accepted. When the content is markdown with
// TypeScript fenced code blocks, those blocks are parsed first; the
// whole content is parsed when they declare no props.
type DeclarationExtractor struct{}

// Extract implements Extractor.
func (DeclarationExtractor) Extract(content string) *PropSchema {
	if blocks, ok := typescriptBlocks(content); ok {
		if schema := parseDeclarations(blocks); schema.Len() > 0 {
			return schema
		}
	}
	return parseDeclarations(content)
}

// parseDeclarations parses content as a TSX module and collects the
// members of its props declarations.
func parseDeclarations(content string) *PropSchema {
	schema := NewPropSchema()
	if strings.TrimSpace(content) == "" {
		return schema
	}

	source := []byte(content)
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(tsx.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return schema
	}
	defer tree.Close()

	walkDeclarations(tree.RootNode(), source, schema)
	return schema
}

// walkDeclarations visits node and all of its descendants in document
// order, adding the members of every matching declaration to schema.
func walkDeclarations(node *sitter.Node, source []byte, schema *PropSchema) {
	if node == nil {
		return
	}
	if body := propsDeclarationBody(node, source); body != nil {
		addMembers(body, source, schema)
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		walkDeclarations(node.NamedChild(i), source, schema)
	}
}

// propsDeclarationBody returns the member list of node when node is an
// interface or object type alias whose name matches propsNamePattern.
func propsDeclarationBody(node *sitter.Node, source []byte) *sitter.Node {
	var body *sitter.Node
	switch node.Type() {
	case "interface_declaration":
		body = node.ChildByFieldName("body")
	case "type_alias_declaration":
		body = node.ChildByFieldName("value")
		if body == nil || body.Type() != "object_type" {
			return nil
		}
	default:
		return nil
	}

	name := node.ChildByFieldName("name")
	if name == nil || body == nil {
		return nil
	}
	if !propsNamePattern.MatchString(name.Content(source)) {
		return nil
	}
	return body
}

// addMembers adds every property signature in body to schema.
func addMembers(body *sitter.Node, source []byte, schema *PropSchema) {
	for i := 0; i < int(body.NamedChildCount()); i++ {
		member := body.NamedChild(i)
		if member.Type() != "property_signature" {
			continue
		}
		name, ok := memberName(member.ChildByFieldName("name"), source)
		if !ok {
			continue
		}

		descriptor := PropDescriptor{Name: name}
		if annotation := member.ChildByFieldName("type"); annotation != nil {
			descriptor.Type = strings.TrimSpace(strings.TrimPrefix(annotation.Content(source), ":"))
		}
		if comment := member.PrevNamedSibling(); comment != nil && comment.Type() == "comment" {
			doc := parseDocComment(comment.Content(source))
			descriptor.Description = doc.description
			descriptor.DefaultValue = doc.defaultValue
		}
		schema.Set(descriptor)
	}
}

// memberName returns the property name of a name node. Identifiers
// and string literals resolve; computed names do not.
func memberName(node *sitter.Node, source []byte) (string, bool) {
	if node == nil {
		return "", false
	}
	switch node.Type() {
	case "property_identifier", "identifier", "number":
		return node.Content(source), true
	case "string":
		name := strings.Trim(node.Content(source), `"'`)
		return name, name != ""
	default:
		return "", false
	}
}

type docComment struct {
	description  string
	defaultValue *string
}

// parseDocComment reads a /** ... */ comment. The text before the first
// block tag is the description, with lines joined by spaces. The first
// @default or @defaultValue tag supplies the default. Line and block
// comments that are not JSDoc carry no documentation.
func parseDocComment(raw string) docComment {
	var doc docComment
	if !strings.HasPrefix(raw, "/**") || !strings.HasSuffix(raw, "*/") || len(raw) < 5 {
		return doc
	}
	body := raw[3 : len(raw)-2]

	var description []string
	inTags := false
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimPrefix(line, "*"))

		// A tag may start mid-line in single-line comments:
		// /** Visual size. @default "medium" */
		if index := tagIndex(line); index >= 0 {
			if !inTags {
				if before := strings.TrimSpace(line[:index]); before != "" {
					description = append(description, before)
				}
			}
			inTags = true
			if doc.defaultValue == nil {
				if value, ok := defaultTagValue(line[index:]); ok {
					doc.defaultValue = &value
				}
			}
			continue
		}
		if !inTags && line != "" {
			description = append(description, line)
		}
	}

	doc.description = strings.Join(description, " ")
	return doc
}

// tagIndex returns the offset of the first JSDoc block tag in line, or
// -1. A tag is an @ followed by a letter, at the start of the line or
// after whitespace, so addresses like user@example.com are not tags.
func tagIndex(line string) int {
	for index := 0; index < len(line)-1; index++ {
		if line[index] != '@' {
			continue
		}
		if index > 0 && line[index-1] != ' ' && line[index-1] != '\t' {
			continue
		}
		next := line[index+1]
		if next >= 'a' && next <= 'z' || next >= 'A' && next <= 'Z' {
			return index
		}
	}
	return -1
}

// defaultTagValue returns the value of a @default or @defaultValue tag.
func defaultTagValue(tag string) (string, bool) {
	for _, name := range []string{"@defaultValue", "@default"} {
		rest, ok := strings.CutPrefix(tag, name)
		if !ok {
			continue
		}
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			continue
		}
		return strings.TrimSpace(rest), true
	}
	return "", false
}
