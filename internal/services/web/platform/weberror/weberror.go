// Package weberror renders error responses through the document shell.
package weberror

import (
	"log"
	"net/http"
	"strings"

	apperrors "github.com/yiroma/budgetmanagement/internal/services/web/platform/errors"
	"github.com/yiroma/budgetmanagement/internal/services/web/platform/pagerender"
	"github.com/yiroma/budgetmanagement/internal/services/web/templates"
)

// ShouldRenderPage reports whether status should use the error-page UX.
func ShouldRenderPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe message for err.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteStatusPage writes an error page for statusCode. Statuses outside the
// page set are reported as 500.
func WriteStatusPage(w http.ResponseWriter, r *http.Request, statusCode int) {
	if w == nil {
		return
	}
	if !ShouldRenderPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	err := pagerender.WritePage(w, r, pagerender.Page{
		StatusCode: statusCode,
		Fragment:   templates.StatusPage(statusCode),
	})
	if err != nil {
		WriteRenderError(w, statusCode, err)
	}
}

// WriteAppError writes the error page matching err's typed kind.
func WriteAppError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}
	WriteStatusPage(w, r, apperrors.HTTPStatus(err))
}

// WriteRenderError logs a failed page render and falls back to plain text.
func WriteRenderError(w http.ResponseWriter, statusCode int, err error) {
	if w == nil || err == nil {
		return
	}
	log.Printf("render page status=%d: %v", statusCode, err)
	http.Error(w, PublicMessage(err), statusCode)
}
