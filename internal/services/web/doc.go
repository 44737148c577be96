// Package web hosts the browser-facing Budget Management service.
//
// Every page is rendered inside one document shell that carries the fixed
// title, description, and locale, and links the global stylesheet loaded once
// at startup.
package web
