// Package app composes web modules into one root handler.
package app

import "net/http"

// BuildRootHandler composes a root mux using the configured module groups.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	return Composer{}.Compose(ComposeInput{
		PublicModules: cfg.PublicModules,
	})
}
