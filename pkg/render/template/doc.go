// Package template defines the engine-agnostic seam page shells are rendered
// through. The pongo subpackage provides the pongo2 backed implementation.
package template
