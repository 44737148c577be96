// Package routepath stores canonical HTTP paths for web modules.
package routepath

import "strings"

const (
	Root         = "/"
	Hello        = "/hello"
	Health       = "/up"
	StaticPrefix = "/static/"
)

// StaticAsset returns the public URL for a file in the static asset set.
func StaticAsset(name string) string {
	return StaticPrefix + strings.TrimLeft(strings.TrimSpace(name), "/")
}
