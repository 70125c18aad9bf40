package qmc

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var versionRaw string

// Version returns the release version embedded at build time.
func Version() string {
	return strings.TrimSpace(versionRaw)
}
