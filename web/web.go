// Package web embeds the page markup and its static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates/index.html
var Index []byte

//go:embed static
var static embed.FS

// Static returns the static assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
