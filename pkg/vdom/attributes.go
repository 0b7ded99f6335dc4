package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id prop.
func ID(id string) Attr { return attr("id", id) }

// ClassName sets the className prop, joining multiple classes with spaces.
func ClassName(classes ...string) Attr { return attr("className", strings.Join(classes, " ")) }

// Style sets the style prop from a property → value map.
func Style(style map[string]string) Attr { return attr("style", style) }

// Data creates a data-* prop.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Href sets the href prop.
func Href(url string) Attr { return attr("href", url) }

// Src sets the src prop.
func Src(url string) Attr { return attr("src", url) }

// Disabled sets the disabled prop.
func Disabled() Attr { return attr("disabled", true) }

// InnerHTML sets dangerouslySetInnerHTML. Use with caution.
func InnerHTML(html string) Attr {
	return attr("dangerouslySetInnerHTML", map[string]any{"__html": html})
}
