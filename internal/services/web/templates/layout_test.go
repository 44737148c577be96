package templates

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/yiroma/budgetmanagement/internal/services/web/static"
)

func TestMain(m *testing.M) {
	if _, err := static.Global.Load(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func renderShell(t *testing.T, children templ.Component) string {
	t.Helper()
	ctx := context.Background()
	if children != nil {
		ctx = templ.WithChildren(ctx, children)
	}
	var b strings.Builder
	if err := RootLayout().Render(ctx, &b); err != nil {
		t.Fatalf("RootLayout() error = %v", err)
	}
	return b.String()
}

func section(t *testing.T, doc, open, close string) string {
	t.Helper()
	start := strings.Index(doc, open)
	end := strings.LastIndex(doc, close)
	if start < 0 || end < 0 || end < start {
		t.Fatalf("document missing %s...%s: %q", open, close, doc)
	}
	return doc[start+len(open) : end]
}

func TestRootLayoutWrapsTextChild(t *testing.T) {
	got := renderShell(t, Text("Hello"))

	if !strings.HasPrefix(got, "<!DOCTYPE html>\n") {
		t.Fatalf("expected doctype prefix, got %q", got)
	}
	if !strings.Contains(got, `<html lang="fr">`) {
		t.Fatalf("expected lang=fr root, got %q", got)
	}
	if body := section(t, got, "<body>", "</body>"); body != "Hello" {
		t.Fatalf("body = %q, want %q", body, "Hello")
	}
	if !strings.Contains(got, "<title>Budget Management</title>") {
		t.Fatalf("expected title in head, got %q", got)
	}
	if !strings.Contains(got, `<meta name="description" content="Application de gestion de budget personnel et partagé">`) {
		t.Fatalf("expected description in head, got %q", got)
	}
	if !strings.HasSuffix(got, "</body></html>") {
		t.Fatalf("expected closing tags, got %q", got)
	}
}

func TestRootLayoutRendersEmptyBodyWithoutChildren(t *testing.T) {
	got := renderShell(t, nil)
	if body := section(t, got, "<body>", "</body>"); body != "" {
		t.Fatalf("body = %q, want empty", body)
	}
	if !strings.Contains(got, "<title>Budget Management</title>") {
		t.Fatalf("expected title in head, got %q", got)
	}
}

func TestRootLayoutToleratesNilChildrenInContext(t *testing.T) {
	var b strings.Builder
	ctx := templ.WithChildren(context.Background(), nil)
	if err := RootLayout().Render(ctx, &b); err != nil {
		t.Fatalf("RootLayout() error = %v", err)
	}
	if body := section(t, b.String(), "<body>", "</body>"); body != "" {
		t.Fatalf("body = %q, want empty", body)
	}
}

func TestRootLayoutPassesChildrenThroughUnmodified(t *testing.T) {
	raw := `<section id="budget"><p>Solde &amp; dépenses</p></section>`
	got := renderShell(t, rawComponent(raw))
	if body := section(t, got, "<body>", "</body>"); body != raw {
		t.Fatalf("body = %q, want %q", body, raw)
	}
}

func TestRootLayoutRendersChildrenExactlyOnce(t *testing.T) {
	child := &countingComponent{markup: "<p>once</p>"}
	got := renderShell(t, child)
	if child.calls != 1 {
		t.Fatalf("child rendered %d times, want 1", child.calls)
	}
	if n := strings.Count(got, "<p>once</p>"); n != 1 {
		t.Fatalf("child markup appears %d times, want 1", n)
	}
}

func TestRootLayoutMetadataConstantAcrossInvocations(t *testing.T) {
	first := section(t, renderShell(t, Text("first")), "<head>", "</head>")
	second := section(t, renderShell(t, rawComponent("<div>second</div>")), "<head>", "</head>")
	if first != second {
		t.Fatalf("head changed between invocations:\n%q\n%q", first, second)
	}
}

func TestRootLayoutLinksGlobalStylesheetWithoutReloading(t *testing.T) {
	sheet, ok := static.Global.Stylesheet()
	if !ok {
		t.Fatal("expected global styles to be loaded")
	}
	for i := 0; i < 5; i++ {
		got := renderShell(t, Text("page"))
		if !strings.Contains(got, `<link rel="stylesheet" href="`+sheet.Href+`">`) {
			t.Fatalf("expected stylesheet link %q, got %q", sheet.Href, got)
		}
	}
	if got := static.Global.Loads(); got != 1 {
		t.Fatalf("global style loads = %d, want 1", got)
	}
}

func TestRootLayoutPropagatesWriterError(t *testing.T) {
	want := errors.New("client went away")
	err := RootLayout().Render(templ.WithChildren(context.Background(), Text("Hello")), failingWriter{err: want})
	if !errors.Is(err, want) {
		t.Fatalf("RootLayout() error = %v, want %v", err, want)
	}
}

func TestRootLayoutPropagatesChildError(t *testing.T) {
	want := errors.New("child failed")
	var b strings.Builder
	err := RootLayout().Render(templ.WithChildren(context.Background(), errComponent{err: want}), &b)
	if !errors.Is(err, want) {
		t.Fatalf("RootLayout() error = %v, want %v", err, want)
	}
}

func TestDocumentMetadataValues(t *testing.T) {
	meta := DocumentMetadata()
	if meta.Title != "Budget Management" {
		t.Fatalf("Title = %q, want %q", meta.Title, "Budget Management")
	}
	if meta.Description != "Application de gestion de budget personnel et partagé" {
		t.Fatalf("Description = %q", meta.Description)
	}
	if meta.Lang != "fr" {
		t.Fatalf("Lang = %q, want %q", meta.Lang, "fr")
	}
}

type rawComponent string

func (c rawComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

type countingComponent struct {
	markup string
	calls  int
}

func (c *countingComponent) Render(_ context.Context, w io.Writer) error {
	c.calls++
	_, err := io.WriteString(w, c.markup)
	return err
}

type errComponent struct {
	err error
}

func (c errComponent) Render(context.Context, io.Writer) error {
	return c.err
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}
