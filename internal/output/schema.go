// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"bytes"
	"embed"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/document.schema.json
var schemaFS embed.FS

const schemaName = "document.schema.json"

// compileSchema loads the output document schema embedded in the binary.
func compileSchema() (*jsonschema.Schema, error) {
	raw, err := schemaFS.ReadFile("schema/" + schemaName)
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaName, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	s, err := c.Compile(schemaName)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	return s, nil
}
