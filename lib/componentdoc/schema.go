// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package componentdoc

import (
	"bytes"
	"encoding/json"
)

// PropDescriptor describes one property of a component.
type PropDescriptor struct {
	// Name is the prop name. Never empty.
	Name string `json:"-"`

	// Type is the raw type expression as written in the artifact, not
	// interpreted: "string", `"small" | "large"`, "() => void".
	Type string `json:"type"`

	// DefaultValue is the default as written in the artifact, or nil
	// when the artifact gives none. An empty table cell is nil, not "".
	DefaultValue *string `json:"defaultValue,omitempty"`

	// Description is the prop documentation, possibly empty.
	Description string `json:"description"`
}

// PropSchema is an ordered mapping from prop name to descriptor,
// extracted from exactly one props artifact.
//
// Setting a name that is already present replaces its descriptor but
// keeps the position of the first occurrence, so iteration order is a
// deterministic function of the input.
type PropSchema struct {
	names []string
	props map[string]PropDescriptor
}

// NewPropSchema returns an empty schema.
func NewPropSchema() *PropSchema {
	return &PropSchema{props: make(map[string]PropDescriptor)}
}

// Set inserts or replaces the descriptor for descriptor.Name.
// Descriptors with an empty name are ignored.
func (schema *PropSchema) Set(descriptor PropDescriptor) {
	if descriptor.Name == "" {
		return
	}
	if _, exists := schema.props[descriptor.Name]; !exists {
		schema.names = append(schema.names, descriptor.Name)
	}
	schema.props[descriptor.Name] = descriptor
}

// Get returns the descriptor for name.
func (schema *PropSchema) Get(name string) (PropDescriptor, bool) {
	descriptor, ok := schema.props[name]
	return descriptor, ok
}

// Len returns the number of props.
func (schema *PropSchema) Len() int {
	return len(schema.names)
}

// Names returns the prop names in schema order.
func (schema *PropSchema) Names() []string {
	return append([]string(nil), schema.names...)
}

// Props returns the descriptors in schema order.
func (schema *PropSchema) Props() []PropDescriptor {
	props := make([]PropDescriptor, len(schema.names))
	for i, name := range schema.names {
		props[i] = schema.props[name]
	}
	return props
}

// MarshalJSON encodes the schema as a JSON object keyed by prop name,
// in schema order:
//
//	{"color":{"type":"string","defaultValue":"\"primary\"","description":"Button color"}}
func (schema *PropSchema) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteByte('{')
	for i, name := range schema.names {
		if i > 0 {
			buffer.WriteByte(',')
		}
		if err := writeJSONMember(&buffer, name, schema.props[name]); err != nil {
			return nil, err
		}
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keyed by prop name, preserving
// the key order of the input.
func (schema *PropSchema) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	if _, err := decoder.Token(); err != nil {
		return err
	}
	decoded := NewPropSchema()
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return err
		}
		name, _ := token.(string)
		var descriptor PropDescriptor
		if err := decoder.Decode(&descriptor); err != nil {
			return err
		}
		descriptor.Name = name
		decoded.Set(descriptor)
	}
	if _, err := decoder.Token(); err != nil {
		return err
	}
	*schema = *decoded
	return nil
}

// Digest returns the BLAKE3 digest of the schema's JSON encoding.
// Extracting the same artifact twice yields the same digest.
func (schema *PropSchema) Digest() Digest {
	encoded, err := schema.MarshalJSON()
	if err != nil {
		// Descriptors hold only strings; encoding cannot fail.
		panic("componentdoc: encoding prop schema: " + err.Error())
	}
	return keyedDigest(schemaDomainKey, encoded)
}

func stringPointer(value string) *string {
	return &value
}
