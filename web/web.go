// Package web serves the embedded single-page UI.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var assets embed.FS

// Register mounts the UI at "/" and its assets next to it. The API lives
// under /api so the two never overlap.
func Register(r *gin.Engine) {
	index, err := assets.ReadFile("static/index.html")
	if err != nil {
		panic(err)
	}
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	static := http.FS(sub)

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
	r.StaticFileFS("/app.js", "app.js", static)
	r.StaticFileFS("/app.css", "app.css", static)
}
