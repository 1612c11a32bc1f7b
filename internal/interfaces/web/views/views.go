// Package views embebe los templates HTML y construye el motor de render.
package views

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templatesFS embed.FS

// NewEngine crea el motor de templates sobre el FS embebido.
// Los templates se referencian sin prefijo: "inventory", "layouts/main".
func NewEngine() *html.Engine {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic("views: subtree de templates: " + err.Error())
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}
