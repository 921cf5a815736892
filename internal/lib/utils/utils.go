// Package utils contains small helper functions used across the project.
//
// These are usually generic helpers that don't belong to a specific domain.
package utils

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// PrintJSON pretty-prints any Go value as indented JSON to w.
//
// Used by the local invoke tool to print handler responses.
// Values json cannot encode (channels, funcs) return an error.
func PrintJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return errors.Wrap(err, "error marshalling the JSON")
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
