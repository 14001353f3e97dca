// Package static holds the embedded demo page served at the site root.
package static

import _ "embed"

// IndexHTML is the single-page demo UI. It renders the element catalog and
// posts an event for every interaction.
//
//go:embed index.html
var IndexHTML []byte
