// Package template defines the template engine seam used by page renderers.
// Renderers depend on TemplateRenderer; the gotemplate subpackage provides the
// pongo2-backed implementation.
package template
