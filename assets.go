package resumegen

import (
	"io/fs"

	"github.com/goliatone/go-resumegen/pkg/templates"
)

// EmbeddedShells exposes the built-in page shells so callers can copy and
// override them through a templates directory.
func EmbeddedShells() fs.FS {
	return templates.ShellsFS()
}

// RuntimeAssetsFS exposes the page stylesheet and the inline editing script.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(resumegen.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	return templates.RuntimeFS()
}
