package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl templates/widgets/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle. Template names are
// relative to the bundle root: "document", "fragment" and "widgets/<name>".
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
