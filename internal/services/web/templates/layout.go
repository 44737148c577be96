// Package templates renders the document shell and the page fragments placed
// inside it.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/yiroma/budgetmanagement/internal/platform/branding"
	"github.com/yiroma/budgetmanagement/internal/platform/i18n"
	"github.com/yiroma/budgetmanagement/internal/services/web/static"
)

// Metadata is the descriptive head information shared by every document.
type Metadata struct {
	Title       string
	Description string
	Lang        string
}

var documentMetadata = Metadata{
	Title:       branding.AppName,
	Description: branding.Description,
	Lang:        i18n.Lang(),
}

// DocumentMetadata returns the fixed metadata every document carries.
func DocumentMetadata() Metadata {
	return documentMetadata
}

// RootLayout renders the document shell around the children carried by the
// render context (see templ.WithChildren). Children are written once into
// the body, untouched; without children the body is empty.
func RootLayout() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		if children == nil {
			children = templ.NopComponent
		}
		ctx = templ.ClearChildren(ctx)

		meta := documentMetadata
		if _, err := io.WriteString(w, `<!DOCTYPE html>`+"\n"+`<html lang="`+templ.EscapeString(meta.Lang)+`">`); err != nil {
			return err
		}
		if err := writeHead(w, meta); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<body>"); err != nil {
			return err
		}
		if err := children.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

func writeHead(w io.Writer, meta Metadata) error {
	head := `<head>` +
		`<meta charset="utf-8">` +
		`<meta name="viewport" content="width=device-width, initial-scale=1">` +
		`<title>` + templ.EscapeString(meta.Title) + `</title>` +
		`<meta name="description" content="` + templ.EscapeString(meta.Description) + `">`
	if sheet, ok := static.Global.Stylesheet(); ok {
		head += `<link rel="stylesheet" href="` + templ.EscapeString(sheet.Href) + `">`
	}
	head += `</head>`
	_, err := io.WriteString(w, head)
	return err
}
