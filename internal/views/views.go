// Package views holds the server-rendered HTML templates.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var files embed.FS

// Template names as registered in the engine.
const (
	Layout = "templates/layouts/main"
	Orders = "templates/orders"
	Login  = "templates/login"
	Course = "templates/course"
)

// NewEngine returns a fiber view engine over the embedded templates.
func NewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}
