// Package web serves the embedded browser client.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var static embed.FS

// Handler returns a file server for the browser client rooted at /.
func Handler() http.Handler {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// static is compiled in; Sub only fails on an invalid path.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
