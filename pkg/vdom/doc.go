// Package vdom provides the default element tree produced by the converter.
//
// VNode is an in-memory description of a UI node: an element with props and
// children, a text node, a fragment, or raw HTML. Props use the framework
// prop names produced by package attrs (className, htmlFor, style maps); the
// render package turns a VNode tree back into markup.
//
// # Library
//
// Library implements convert.Library. The "key" prop becomes VNode.Key,
// string children become text nodes, and only VNodes built with a known kind
// pass IsValidElement.
//
// # Building Trees By Hand
//
// Replace hooks usually return hand-built nodes:
//
//	vdom.El("span", vdom.Props{"className": "badge"}, "new")
//	vdom.Div(vdom.ID("main"), vdom.P("Content"))
package vdom
