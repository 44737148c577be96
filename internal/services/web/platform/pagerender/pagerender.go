// Package pagerender centralizes full-document page rendering.
package pagerender

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/yiroma/budgetmanagement/internal/platform/i18n"
	"github.com/yiroma/budgetmanagement/internal/services/web/platform/httpx"
	"github.com/yiroma/budgetmanagement/internal/services/web/templates"
)

// Page describes one document response.
type Page struct {
	StatusCode int
	Fragment   templ.Component
}

// WritePage writes page.Fragment inside the root layout. The response is
// labelled with the document locale.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", i18n.DefaultTag().String())
	w.WriteHeader(statusCode)
	return templates.RootLayout().Render(templ.WithChildren(httpx.RequestContext(r), fragment), w)
}
