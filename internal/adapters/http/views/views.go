// Package views holds the embedded HTML templates for the server-rendered
// gallery pages.
package views

import (
	"embed"
	"html/template"
)

//go:embed *.tmpl
var files embed.FS

// Templates parses all embedded templates.
// Called once at startup; a parse failure is a programming error.
func Templates() (*template.Template, error) {
	return template.ParseFS(files, "*.tmpl")
}
