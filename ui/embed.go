// Package ui holds the web front-end's templates and static assets.
package ui

import "embed"

//go:embed templates static
var Files embed.FS
