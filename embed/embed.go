// Package embed provides the embedded cue catalog used by bells.
// The catalog is embedded at compile time using Go's embed directive.
package embed

import (
	_ "embed"
)

//go:embed cues.yaml
var cueCatalog []byte

// CatalogYAML returns a copy of the embedded cue catalog document.
func CatalogYAML() []byte {
	out := make([]byte, len(cueCatalog))
	copy(out, cueCatalog)
	return out
}
