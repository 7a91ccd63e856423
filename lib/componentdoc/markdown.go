// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package componentdoc

import (
	"regexp"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// markdownParserInstance is initialized once and reused. Parsing
// creates per-call state, so the instance is safe to share.
var (
	markdownParserInstance goldmark.Markdown
	markdownParserOnce     sync.Once
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParserInstance = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return markdownParserInstance
}

// fenceOpening matches a code fence that opens a markdown line. Fences
// inside JSDoc comments follow a "*" and do not match.
var fenceOpening = regexp.MustCompile("(?m)^ {0,3}(```|~~~)")

// typescriptFenceLanguages are the info strings of fenced code blocks
// whose content the declaration strategy parses.
var typescriptFenceLanguages = map[string]bool{
	"ts":         true,
	"tsx":        true,
	"typescript": true,
}

// typescriptBlocks returns the concatenated bodies of every TypeScript
// fenced code block in a markdown document, in document order. The
// boolean is false when the document has no such block, in which case
// callers treat the whole content as source.
func typescriptBlocks(content string) (string, bool) {
	if !fenceOpening.MatchString(content) {
		return "", false
	}

	source := []byte(content)
	document := getMarkdownParser().Parser().Parse(text.NewReader(source))

	var code strings.Builder
	found := false
	_ = ast.Walk(document, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		block, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		language := strings.ToLower(string(block.Language(source)))
		if !typescriptFenceLanguages[language] {
			return ast.WalkSkipChildren, nil
		}
		found = true
		lines := block.Lines()
		for index := 0; index < lines.Len(); index++ {
			segment := lines.At(index)
			code.Write(segment.Value(source))
		}
		code.WriteByte('\n')
		return ast.WalkSkipChildren, nil
	})
	return code.String(), found
}
