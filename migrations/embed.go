// Package migrations contains the embedded SQL migrations for the
// PostgreSQL store. They are applied with goose at process startup and by
// the test helpers, so a binary carries its own schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
