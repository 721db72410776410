package templates

import (
	"github.com/goliatone/go-resumegen/pkg/render/template/pongo"
)

// NewEngine returns a pongo2 engine over the embedded shells. A non-empty
// overrideDir is consulted first, so shells can be customised on disk.
func NewEngine(overrideDir string, opts ...pongo.Option) (*pongo.Engine, error) {
	base := []pongo.Option{pongo.WithFS(ShellsFS())}
	if overrideDir != "" {
		base = append(base, pongo.WithBaseDir(overrideDir))
	}
	return pongo.New(append(base, opts...)...)
}

// ShellName returns the engine template name for a definition.
func ShellName(def Definition) string {
	if def.Shell == "" {
		return ShellSingle
	}
	return def.Shell
}
