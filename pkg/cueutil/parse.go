// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// DecodeMap unifies data with the schema definition at schemaPath (e.g. "#Config"),
// validates the result, and decodes it into a generic map. The map form is what
// viper.MergeConfigMap expects.
func DecodeMap(schema, data []byte, schemaPath string, opts ...Option) (map[string]any, error) {
	unified, filename, err := unify(schema, data, schemaPath, opts)
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := unified.Decode(&out); err != nil {
		return nil, FormatError(err, filename)
	}
	return out, nil
}

func unify(schema, data []byte, schemaPath string, opts []Option) (cue.Value, string, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	filename := options.filename
	if filename == "" {
		filename = "<input>"
	}

	if err := CheckFileSize(data, options.maxFileSize, filename); err != nil {
		return cue.Value{}, filename, err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return cue.Value{}, filename, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if userValue.Err() != nil {
		return cue.Value{}, filename, FormatError(userValue.Err(), filename)
	}

	schemaRoot := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if schemaRoot.Err() != nil {
		return cue.Value{}, filename, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, schemaRoot.Err())
	}

	unified := schemaRoot.Unify(userValue)
	if err := unified.Validate(cue.Concrete(options.concrete)); err != nil {
		return cue.Value{}, filename, FormatError(err, filename)
	}

	return unified, filename, nil
}
