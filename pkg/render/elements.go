package render

import "github.com/vango-dev/htmlconv/pkg/dom"

// isVoidElement returns true if the tag is a void element.
func isVoidElement(tag string) bool {
	return dom.IsVoidElement(tag)
}

// inlineElements are elements that are typically rendered inline
// and don't need newlines in pretty-printed output.
var inlineElements = map[string]bool{
	"a":      true,
	"abbr":   true,
	"b":      true,
	"bdi":    true,
	"bdo":    true,
	"br":     true,
	"cite":   true,
	"code":   true,
	"data":   true,
	"dfn":    true,
	"em":     true,
	"i":      true,
	"kbd":    true,
	"mark":   true,
	"q":      true,
	"rb":     true,
	"rp":     true,
	"rt":     true,
	"rtc":    true,
	"ruby":   true,
	"s":      true,
	"samp":   true,
	"small":  true,
	"span":   true,
	"strong": true,
	"sub":    true,
	"sup":    true,
	"time":   true,
	"u":      true,
	"var":    true,
	"wbr":    true,
}

// isInlineElement returns true if the tag is an inline element.
func isInlineElement(tag string) bool {
	return inlineElements[tag]
}

// skippedProps are props that never become attributes.
var skippedProps = map[string]bool{
	"children":                       true,
	"dangerouslySetInnerHTML":        true,
	"key":                            true,
	"ref":                            true,
	"suppressContentEditableWarning": true,
	"suppressHydrationWarning":       true,
}

// formAttrs maps uncontrolled form props back to their attribute names.
var formAttrs = map[string]string{
	"defaultChecked": "checked",
	"defaultValue":   "value",
}
