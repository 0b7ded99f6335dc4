package parser

// impliedClose maps a start tag to the open elements it closes when one of
// them is the innermost open element.
var impliedClose = func() map[string]map[string]bool {
	set := func(names ...string) map[string]bool {
		m := make(map[string]bool, len(names))
		for _, n := range names {
			m[n] = true
		}
		return m
	}

	p := set("p")
	form := set("input", "option", "optgroup", "select", "button", "datalist", "textarea")
	ddt := set("dd", "dt")
	rtp := set("rt", "rp")
	section := set("thead", "tbody")

	m := map[string]map[string]bool{
		"tr":       set("tr", "th", "td"),
		"th":       set("th"),
		"td":       set("thead", "th", "td"),
		"body":     set("head", "link", "script"),
		"li":       set("li"),
		"option":   set("option"),
		"optgroup": set("optgroup", "option"),
		"dd":       ddt,
		"dt":       ddt,
		"rt":       rtp,
		"rp":       rtp,
		"tbody":    section,
		"tfoot":    section,
	}
	for _, name := range []string{"select", "input", "output", "button", "datalist", "textarea"} {
		m[name] = form
	}
	for _, name := range []string{
		"p", "h1", "h2", "h3", "h4", "h5", "h6",
		"address", "article", "aside", "blockquote", "details", "div", "dl",
		"fieldset", "figcaption", "figure", "footer", "form", "header", "hr",
		"main", "nav", "ol", "pre", "section", "table", "ul",
	} {
		m[name] = p
	}
	return m
}()

// svgTagNames restores the mixed-case SVG element names the tokenizer lowercases.
var svgTagNames = map[string]string{
	"altglyph":            "altGlyph",
	"altglyphdef":         "altGlyphDef",
	"altglyphitem":        "altGlyphItem",
	"animatecolor":        "animateColor",
	"animatemotion":       "animateMotion",
	"animatetransform":    "animateTransform",
	"clippath":            "clipPath",
	"feblend":             "feBlend",
	"fecolormatrix":       "feColorMatrix",
	"fecomponenttransfer": "feComponentTransfer",
	"fecomposite":         "feComposite",
	"feconvolvematrix":    "feConvolveMatrix",
	"fediffuselighting":   "feDiffuseLighting",
	"fedisplacementmap":   "feDisplacementMap",
	"fedistantlight":      "feDistantLight",
	"fedropshadow":        "feDropShadow",
	"feflood":             "feFlood",
	"fefunca":             "feFuncA",
	"fefuncb":             "feFuncB",
	"fefuncg":             "feFuncG",
	"fefuncr":             "feFuncR",
	"fegaussianblur":      "feGaussianBlur",
	"feimage":             "feImage",
	"femerge":             "feMerge",
	"femergenode":         "feMergeNode",
	"femorphology":        "feMorphology",
	"feoffset":            "feOffset",
	"fepointlight":        "fePointLight",
	"fespecularlighting":  "feSpecularLighting",
	"fespotlight":         "feSpotLight",
	"fetile":              "feTile",
	"feturbulence":        "feTurbulence",
	"foreignobject":       "foreignObject",
	"glyphref":            "glyphRef",
	"lineargradient":      "linearGradient",
	"radialgradient":      "radialGradient",
	"textpath":            "textPath",
}

func adjustSVGTagName(name string) string {
	if adjusted, ok := svgTagNames[name]; ok {
		return adjusted
	}
	return name
}
