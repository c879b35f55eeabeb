// Package bundled ships the default item catalog inside the binary.
package bundled

import "embed"

// DefaultName is the catalog used when no other is configured
const DefaultName = "items"

// FS holds the bundled catalogs, readable through catalog.NewFile.
//
//go:embed *.json
var FS embed.FS
