package templates

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
)

// Text renders s as an escaped text node.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// HomePage renders the landing content with the service greeting.
func HomePage(greeting string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<main id="main"><p>`+templ.EscapeString(greeting)+`</p></main>`)
		return err
	})
}

// statusCopy holds French copy for the statuses the service renders as pages.
var statusCopy = map[int]string{
	http.StatusNotFound:            "Page introuvable",
	http.StatusInternalServerError: "Une erreur interne est survenue",
	http.StatusServiceUnavailable:  "Service momentanément indisponible",
}

// StatusMessage returns the user-facing text for an error status.
func StatusMessage(statusCode int) string {
	if message, ok := statusCopy[statusCode]; ok {
		return message
	}
	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return statusCopy[http.StatusInternalServerError]
}

// StatusPage renders the body content for an error status.
func StatusPage(statusCode int) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<main id="main"><h1>`+strconv.Itoa(statusCode)+`</h1>`+
				`<p>`+templ.EscapeString(StatusMessage(statusCode))+`</p></main>`)
		return err
	})
}
