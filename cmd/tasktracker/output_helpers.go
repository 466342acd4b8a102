package main

import (
	"encoding/json"
	"io"
	"os"
)

// printJSON writes v to stdout as indented JSON, for the --json flags.
func printJSON(v any) error {
	return writeJSON(os.Stdout, v)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
