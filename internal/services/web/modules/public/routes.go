package public

import (
	"net/http"

	"github.com/yiroma/budgetmanagement/internal/services/web/platform/httpx"
	"github.com/yiroma/budgetmanagement/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleHome)
	mux.HandleFunc(http.MethodGet+" "+routepath.Hello, h.handleHello)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(routepath.Hello, httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc("/{rest...}", h.handleNotFound)
}
