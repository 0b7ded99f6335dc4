package attrs

import "strings"

// Namespace selects the attribute table used for an element.
type Namespace uint8

const (
	HTML   Namespace = iota // Default HTML namespace
	SVG                     // <svg> and its descendants
	MathML                  // <math> and its descendants
)

// String returns the string representation of the Namespace.
func (ns Namespace) String() string {
	switch ns {
	case HTML:
		return "html"
	case SVG:
		return "svg"
	case MathML:
		return "math"
	default:
		return "unknown"
	}
}

// htmlProps maps lowercase HTML attribute names to prop names.
// Names that are identical in both models are not listed.
var htmlProps = map[string]string{
	"accept-charset":          "acceptCharset",
	"accesskey":               "accessKey",
	"allowfullscreen":         "allowFullScreen",
	"autocapitalize":          "autoCapitalize",
	"autocomplete":            "autoComplete",
	"autocorrect":             "autoCorrect",
	"autofocus":               "autoFocus",
	"autoplay":                "autoPlay",
	"autosave":                "autoSave",
	"cellpadding":             "cellPadding",
	"cellspacing":             "cellSpacing",
	"charset":                 "charSet",
	"class":                   "className",
	"classid":                 "classID",
	"colspan":                 "colSpan",
	"contenteditable":         "contentEditable",
	"contextmenu":             "contextMenu",
	"controlslist":            "controlsList",
	"crossorigin":             "crossOrigin",
	"datetime":                "dateTime",
	"disablepictureinpicture": "disablePictureInPicture",
	"disableremoteplayback":   "disableRemotePlayback",
	"enctype":                 "encType",
	"enterkeyhint":            "enterKeyHint",
	"fetchpriority":           "fetchPriority",
	"for":                     "htmlFor",
	"formaction":              "formAction",
	"formenctype":             "formEncType",
	"formmethod":              "formMethod",
	"formnovalidate":          "formNoValidate",
	"formtarget":              "formTarget",
	"frameborder":             "frameBorder",
	"hreflang":                "hrefLang",
	"http-equiv":              "httpEquiv",
	"inputmode":               "inputMode",
	"itemid":                  "itemID",
	"itemprop":                "itemProp",
	"itemref":                 "itemRef",
	"itemscope":               "itemScope",
	"itemtype":                "itemType",
	"keyparams":               "keyParams",
	"keytype":                 "keyType",
	"marginheight":            "marginHeight",
	"marginwidth":             "marginWidth",
	"maxlength":               "maxLength",
	"mediagroup":              "mediaGroup",
	"minlength":               "minLength",
	"nomodule":                "noModule",
	"novalidate":              "noValidate",
	"playsinline":             "playsInline",
	"radiogroup":              "radioGroup",
	"readonly":                "readOnly",
	"referrerpolicy":          "referrerPolicy",
	"rowspan":                 "rowSpan",
	"spellcheck":              "spellCheck",
	"srcdoc":                  "srcDoc",
	"srclang":                 "srcLang",
	"srcset":                  "srcSet",
	"tabindex":                "tabIndex",
	"usemap":                  "useMap",
}

// svgKebab lists SVG attributes spelled with '-' or ':' in markup.
// Their prop names are the camelCased form (stroke-width → strokeWidth).
var svgKebab = []string{
	"accent-height", "alignment-baseline", "arabic-form", "baseline-shift",
	"cap-height", "clip-path", "clip-rule", "color-interpolation",
	"color-interpolation-filters", "color-profile", "color-rendering",
	"dominant-baseline", "enable-background", "fill-opacity", "fill-rule",
	"flood-color", "flood-opacity", "font-family", "font-size",
	"font-size-adjust", "font-stretch", "font-style", "font-variant",
	"font-weight", "glyph-name", "glyph-orientation-horizontal",
	"glyph-orientation-vertical", "horiz-adv-x", "horiz-origin-x",
	"image-rendering", "letter-spacing", "lighting-color", "marker-end",
	"marker-mid", "marker-start", "overline-position", "overline-thickness",
	"paint-order", "panose-1", "pointer-events", "rendering-intent",
	"shape-rendering", "stop-color", "stop-opacity", "strikethrough-position",
	"strikethrough-thickness", "stroke-dasharray", "stroke-dashoffset",
	"stroke-linecap", "stroke-linejoin", "stroke-miterlimit", "stroke-opacity",
	"stroke-width", "text-anchor", "text-decoration", "text-rendering",
	"transform-origin", "underline-position", "underline-thickness",
	"unicode-bidi", "unicode-range", "units-per-em", "v-alphabetic",
	"v-hanging", "v-ideographic", "v-mathematical", "vector-effect",
	"vert-adv-y", "vert-origin-x", "vert-origin-y", "word-spacing",
	"writing-mode", "x-height",
	"xlink:actuate", "xlink:arcrole", "xlink:href", "xlink:role",
	"xlink:show", "xlink:title", "xlink:type",
	"xml:base", "xml:lang", "xml:space", "xmlns:xlink",
}

// svgCamel lists SVG attributes that are camelCase in markup. Tokenizers
// lowercase them, so the lowercase spelling maps back to the camel one.
var svgCamel = []string{
	"allowReorder", "attributeName", "attributeType", "autoReverse",
	"baseFrequency", "baseProfile", "calcMode", "clipPathUnits",
	"contentScriptType", "contentStyleType", "diffuseConstant", "edgeMode",
	"externalResourcesRequired", "filterRes", "filterUnits", "glyphRef",
	"gradientTransform", "gradientUnits", "kernelMatrix", "kernelUnitLength",
	"keyPoints", "keySplines", "keyTimes", "lengthAdjust", "limitingConeAngle",
	"markerHeight", "markerUnits", "markerWidth", "maskContentUnits",
	"maskUnits", "numOctaves", "pathLength", "patternContentUnits",
	"patternTransform", "patternUnits", "pointsAtX", "pointsAtY", "pointsAtZ",
	"preserveAlpha", "preserveAspectRatio", "primitiveUnits", "refX", "refY",
	"repeatCount", "repeatDur", "requiredExtensions", "requiredFeatures",
	"specularConstant", "specularExponent", "spreadMethod", "startOffset",
	"stdDeviation", "stitchTiles", "surfaceScale", "systemLanguage",
	"tableValues", "targetX", "targetY", "textLength", "viewBox",
	"viewTarget", "xChannelSelector", "yChannelSelector", "zoomAndPan",
}

var (
	svgProps  = make(map[string]string, len(svgKebab)+len(svgCamel))
	svgAttrs  = make(map[string]string, len(svgKebab))
	htmlAttrs = make(map[string]string, len(htmlProps))
)

func init() {
	for _, name := range svgKebab {
		prop := camelize(name)
		svgProps[name] = prop
		svgAttrs[prop] = name
	}
	for _, name := range svgCamel {
		svgProps[strings.ToLower(name)] = name
		svgProps[name] = name
	}
	for attr, prop := range htmlProps {
		htmlAttrs[prop] = attr
	}
}

// IsCustomAttribute reports whether the attribute is passed through unchanged
// regardless of namespace (data-* and aria-*).
func IsCustomAttribute(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasPrefix(lower, "data-") || strings.HasPrefix(lower, "aria-")
}

// PropName returns the prop name for a markup attribute. Unmapped names are
// returned unchanged.
func PropName(name string, ns Namespace) string {
	if IsCustomAttribute(name) {
		return name
	}
	if ns == SVG {
		if prop, ok := svgProps[name]; ok {
			return prop
		}
	}
	lower := strings.ToLower(name)
	if ns == SVG {
		if prop, ok := svgProps[lower]; ok {
			return prop
		}
	}
	if prop, ok := htmlProps[lower]; ok {
		return prop
	}
	return name
}

// AttributeName returns the markup attribute name for a prop. It reverses
// PropName for every mapped name; unmapped props are returned unchanged.
func AttributeName(prop string, ns Namespace) string {
	if ns == SVG {
		if attr, ok := svgAttrs[prop]; ok {
			return attr
		}
	}
	if attr, ok := htmlAttrs[prop]; ok {
		return attr
	}
	return prop
}

// camelize converts a kebab or colon separated name to camelCase.
func camelize(name string) string {
	if !strings.ContainsAny(name, "-:") {
		return name
	}
	var b strings.Builder
	b.Grow(len(name))
	upper := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '-' || c == ':' {
			upper = b.Len() > 0
			continue
		}
		if upper && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper = false
		b.WriteByte(c)
	}
	return b.String()
}

// CamelCase converts an unmapped kebab-case attribute name to camelCase.
// Custom data-* and aria-* attributes are returned unchanged.
func CamelCase(name string) string {
	if IsCustomAttribute(name) {
		return name
	}
	return camelize(name)
}
