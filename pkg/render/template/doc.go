// Package template defines the renderer-agnostic seam the chrome layer
// renders through. The default implementation lives in the gotemplate
// subpackage; anything satisfying TemplateRenderer can replace it.
package template
