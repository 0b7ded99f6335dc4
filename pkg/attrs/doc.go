// Package attrs translates markup attributes into framework props.
//
// The translation follows the React prop conventions: attribute names whose
// identifier differs between markup and the prop model are renamed
// (class → className, for → htmlFor, stroke-width → strokeWidth), inline style
// strings become structured Style maps, and presence-only attributes become
// boolean true.
//
// Every table in this package is immutable package-level data. The reverse
// lookups (AttributeName, Style.String) let a serializer undo the translation.
//
// # Namespaces
//
// HTML elements use the HTML table. Elements inside an <svg> subtree use the
// SVG table first and fall back to the HTML table, so class still becomes
// className on SVG nodes.
//
//	attrs.PropName("class", attrs.HTML)        // "className"
//	attrs.PropName("stroke-width", attrs.SVG)  // "strokeWidth"
//	attrs.PropName("viewbox", attrs.SVG)       // "viewBox"
//	attrs.ParseStyle("color: red; font-size: 12px")
//	// Style{"color": "red", "fontSize": "12px"}
package attrs
