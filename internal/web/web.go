package web

import (
	"embed"
	"io/fs"
)

// IndexKey is the object key of the landing page in every asset store.
const IndexKey = "index.html"

//go:embed static
var static embed.FS

// Static returns the embedded assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// fs.Sub only fails on an invalid path, which is a compile-time constant here.
		panic(err)
	}
	return sub
}
