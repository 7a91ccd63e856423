// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"reflect"
	"strconv"
	"strings"
)

// Schema is the subset of JSON Schema used for MCP tool input and
// output descriptions.
type Schema struct {
	// Type is the JSON Schema type: "object", "string", "boolean",
	// "integer", "number", or "array". Empty accepts any value.
	Type string `json:"type,omitempty"`

	// Description is populated from the desc struct tag.
	Description string `json:"description,omitempty"`

	// Properties maps property names to their schemas. Only set when
	// Type is "object".
	Properties map[string]*Schema `json:"properties,omitempty"`

	// Required lists property names that must be provided.
	Required []string `json:"required,omitempty"`

	// Default is parsed from the default struct tag to the field's
	// JSON type.
	Default any `json:"default,omitempty"`

	// Enum restricts a string to the values listed in the enum tag.
	Enum []string `json:"enum,omitempty"`

	// Items describes the element type of array schemas.
	Items *Schema `json:"items,omitempty"`

	// AdditionalProperties describes the value type of map-typed
	// object schemas.
	AdditionalProperties *Schema `json:"additionalProperties,omitempty"`
}

// ParamsSchema generates a JSON Schema from a parameter struct. Property
// names come from json tags, descriptions from desc tags, defaults from
// default tags, and allowed values from comma-separated enum tags.
//
// Fields without a json tag, with json:"-", or implementing
// [FlagBinder] are excluded. A field is required when tagged
// required:"true" and has no default.
//
// params must be a struct or a pointer to one.
func ParamsSchema(params any) (*Schema, error) {
	value := reflect.ValueOf(params)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, Internal("params must be a struct or pointer to struct, got %T", params)
	}
	return buildObjectSchema(value.Type())
}

// OutputSchema generates a JSON Schema from the value returned by
// [Command.Output]. Structs, slices, maps, pointers, and primitives
// are supported.
func OutputSchema(output any) (*Schema, error) {
	return schemaForType(reflect.TypeOf(output))
}

var flagBinderType = reflect.TypeOf((*FlagBinder)(nil)).Elem()

func buildObjectSchema(structType reflect.Type) (*Schema, error) {
	schema := &Schema{
		Type:       "object",
		Properties: make(map[string]*Schema),
	}

	for i := range structType.NumField() {
		field := structType.Field(i)

		if field.Type.Kind() == reflect.Struct && field.IsExported() &&
			reflect.PointerTo(field.Type).Implements(flagBinderType) {
			continue
		}

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embedded, err := buildObjectSchema(field.Type)
			if err != nil {
				return nil, Internal("embedded %s: %w", field.Name, err)
			}
			for name, property := range embedded.Properties {
				schema.Properties[name] = property
			}
			schema.Required = append(schema.Required, embedded.Required...)
			continue
		}

		if !field.IsExported() {
			continue
		}
		propertyName, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if propertyName == "" || propertyName == "-" {
			continue
		}

		property, err := schemaForType(field.Type)
		if err != nil {
			return nil, Internal("field %s: %w", field.Name, err)
		}
		property.Description = field.Tag.Get("desc")
		if enum := field.Tag.Get("enum"); enum != "" {
			property.Enum = strings.Split(enum, ",")
		}
		if defaultString := field.Tag.Get("default"); defaultString != "" {
			defaultValue, err := parseDefault(field.Type, defaultString)
			if err != nil {
				return nil, Internal("field %s: default: %w", field.Name, err)
			}
			property.Default = defaultValue
		} else if field.Tag.Get("required") == "true" {
			schema.Required = append(schema.Required, propertyName)
		}

		schema.Properties[propertyName] = property
	}

	if len(schema.Properties) == 0 {
		schema.Properties = nil
	}
	return schema, nil
}

// parseDefault parses a default tag so it marshals to the field's
// JSON type.
func parseDefault(fieldType reflect.Type, value string) (any, error) {
	switch fieldType.Kind() {
	case reflect.String:
		return value, nil
	case reflect.Bool:
		return strconv.ParseBool(value)
	case reflect.Int:
		return strconv.Atoi(value)
	case reflect.Slice:
		if fieldType.Elem().Kind() == reflect.String {
			return strings.Split(value, ","), nil
		}
	}
	return nil, Internal("unsupported default type %s", fieldType)
}

func schemaForType(typ reflect.Type) (*Schema, error) {
	switch typ.Kind() {
	case reflect.Ptr:
		return schemaForType(typ.Elem())
	case reflect.Struct:
		return buildObjectSchema(typ)
	case reflect.Slice, reflect.Array:
		items, err := schemaForType(typ.Elem())
		if err != nil {
			return nil, Internal("array element: %w", err)
		}
		return &Schema{Type: "array", Items: items}, nil
	case reflect.Map:
		if typ.Key().Kind() != reflect.String {
			return nil, Internal("unsupported map key type %s", typ.Key())
		}
		if typ.Elem().Kind() == reflect.Interface {
			return &Schema{Type: "object"}, nil
		}
		values, err := schemaForType(typ.Elem())
		if err != nil {
			return nil, Internal("map value: %w", err)
		}
		return &Schema{Type: "object", AdditionalProperties: values}, nil
	case reflect.String:
		return &Schema{Type: "string"}, nil
	case reflect.Bool:
		return &Schema{Type: "boolean"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}, nil
	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}, nil
	case reflect.Interface:
		return &Schema{}, nil
	default:
		return nil, Internal("unsupported type %s (%s)", typ, typ.Kind())
	}
}
