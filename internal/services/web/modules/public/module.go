// Package public serves the unauthenticated pages and the greeting endpoint.
package public

import (
	"net/http"

	module "github.com/yiroma/budgetmanagement/internal/services/web/module"
	"github.com/yiroma/budgetmanagement/internal/services/web/routepath"
)

const moduleID = "public"

// Module provides root, greeting, and health routes.
type Module struct {
	service service
}

// New returns the public module.
func New() Module {
	return Module{service: newService()}
}

// ID returns a stable module identifier.
func (Module) ID() string { return moduleID }

// Mount wires the module routes under the root prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.service))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
