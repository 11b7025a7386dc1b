// Package textcore is a UTF-16 backed text-storage engine for editor
// buffers. The core types live in the text subpackage; this root package
// only carries version information.
package textcore

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the library version string in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}
