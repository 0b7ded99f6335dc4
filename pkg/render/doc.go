// Package render serializes VNode trees back to HTML.
//
// The renderer undoes the attribute translation done by package attrs, so a
// tree converted from markup renders to the markup it came from, modulo the
// documented normalizations:
//
//   - Attributes are written in sorted order with double quotes
//   - Prop names map back to attribute names (className → class,
//     strokeWidth → stroke-width inside <svg>)
//   - Style maps are written as CSS text in sorted property order
//   - Boolean props render as bare attribute names when true
//   - Comments and doctypes are not part of the tree
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// To stream HTML to a writer:
//
//	err := renderer.RenderToWriter(w, node)
//
// # Security
//
// Text and attribute values are escaped. Raw HTML from KindRaw nodes and
// dangerouslySetInnerHTML is written verbatim and should only carry trusted
// content.
package render
