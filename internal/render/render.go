// Package render produces the VS Code configuration documents from a project
// context. Rendering is pure: the same context always yields byte-identical
// documents.
package render

import (
	"encoding/json"
	"fmt"
)

// marshal encodes a document with the fixed indentation and trailing newline
// every generated file carries.
func marshal(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("could not marshal document: %w", err)
	}
	return append(data, '\n'), nil
}
