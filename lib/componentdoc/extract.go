// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package componentdoc

import (
	"fmt"
	"strings"
)

// Extractor turns the text of a props artifact into a prop schema.
// Extraction is best-effort: content that cannot be interpreted yields
// an empty or partial schema, never an error. The result is never nil.
type Extractor interface {
	Extract(content string) *PropSchema
}

// Strategy names an extraction strategy.
type Strategy string

const (
	// StrategyAuto tries the table strategy and falls back to the
	// declaration strategy when the table yields no props.
	StrategyAuto Strategy = "auto"

	// StrategyTable reads a markdown table of
	// | name | type | default | description | rows.
	StrategyTable Strategy = "table"

	// StrategyDeclaration reads TypeScript interface declarations whose
	// name mentions "props".
	StrategyDeclaration Strategy = "declaration"
)

// Strategies lists the valid strategy names.
var Strategies = []Strategy{StrategyAuto, StrategyTable, StrategyDeclaration}

// ParseStrategy validates a strategy name. The empty string selects
// StrategyAuto.
func ParseStrategy(name string) (Strategy, error) {
	if name == "" {
		return StrategyAuto, nil
	}
	for _, strategy := range Strategies {
		if string(strategy) == name {
			return strategy, nil
		}
	}
	valid := make([]string, len(Strategies))
	for i, strategy := range Strategies {
		valid[i] = string(strategy)
	}
	return "", fmt.Errorf("unknown extraction strategy %q (valid: %s)", name, strings.Join(valid, ", "))
}

// NewExtractor returns the extractor for strategy. Unknown strategies
// select StrategyAuto; use ParseStrategy to validate user input first.
func NewExtractor(strategy Strategy) Extractor {
	switch strategy {
	case StrategyTable:
		return TableExtractor{}
	case StrategyDeclaration:
		return DeclarationExtractor{}
	default:
		return fallbackExtractor{TableExtractor{}, DeclarationExtractor{}}
	}
}

// fallbackExtractor returns the first non-empty schema produced by its
// extractors, in order.
type fallbackExtractor []Extractor

func (extractors fallbackExtractor) Extract(content string) *PropSchema {
	for _, extractor := range extractors {
		if schema := extractor.Extract(content); schema.Len() > 0 {
			return schema
		}
	}
	return NewPropSchema()
}
