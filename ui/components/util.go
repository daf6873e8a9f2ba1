// Package components provides helpers shared by the page templates.
package components

import (
	"crypto/rand"
	"encoding/hex"
	"html/template"
)

// shortUID returns 8 random hex characters for pairing labels with inputs.
func shortUID() string {
	b := make([]byte, 4) //nolint:mnd // equals 8 characters
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

// percent returns part of total as a whole percentage, 0 when total is 0.
func percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return part * 100 / total //nolint:mnd // percentage
}

// Funcs returns the template functions available to every page.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"uid":     shortUID,
		"percent": percent,
		"inc": func(i int) int {
			return i + 1
		},
	}
}
