package attrs

import (
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Style is a structured inline style: camelCased CSS property → value.
type Style map[string]string

// ParseStyle parses an inline style attribute value.
//
// Declarations are separated by top-level semicolons; semicolons inside quotes
// or parentheses (url(data:...;base64,...)) do not split. A declaration with
// no colon, an empty property or an empty value is skipped.
func ParseStyle(s string) Style {
	style := make(Style)
	for _, decl := range splitDeclarations(s) {
		prop, value, ok := parseDeclaration(decl)
		if !ok {
			continue
		}
		style[StylePropName(prop)] = value
	}
	return style
}

// String formats the style as CSS text with properties in sorted order.
func (s Style) String() string {
	if len(s) == 0 {
		return ""
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(CSSPropertyName(k))
		b.WriteByte(':')
		b.WriteString(s[k])
	}
	return b.String()
}

// FormatStyle formats a style prop value as CSS text. It accepts Style,
// map[string]string, map[string]any and plain strings.
func FormatStyle(v any) (string, bool) {
	switch style := v.(type) {
	case Style:
		return style.String(), true
	case map[string]string:
		return Style(style).String(), true
	case map[string]any:
		converted := make(Style, len(style))
		for k, val := range style {
			if str, ok := val.(string); ok {
				converted[k] = str
			}
		}
		return converted.String(), true
	case string:
		return style, true
	default:
		return "", false
	}
}

// StylePropName converts a CSS property name to its prop form.
// Vendor prefixes follow the React convention: -webkit-x → WebkitX,
// -ms-x → msX. Custom properties (--x) are kept verbatim.
func StylePropName(prop string) string {
	if strings.HasPrefix(prop, "--") {
		return prop
	}
	prop = strings.ToLower(prop)
	if strings.HasPrefix(prop, "-ms-") {
		return camelize(prop[1:])
	}
	if strings.HasPrefix(prop, "-") {
		name := camelize(prop[1:])
		if name == "" {
			return name
		}
		return strings.ToUpper(name[:1]) + name[1:]
	}
	return camelize(prop)
}

// CSSPropertyName reverses StylePropName.
func CSSPropertyName(prop string) string {
	if strings.HasPrefix(prop, "--") {
		return prop
	}
	var b strings.Builder
	b.Grow(len(prop) + 4)
	if strings.HasPrefix(prop, "ms") && len(prop) > 2 && isUpper(prop[2]) {
		b.WriteByte('-')
	}
	for i := 0; i < len(prop); i++ {
		c := prop[i]
		if isUpper(c) {
			b.WriteByte('-')
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// splitDeclarations splits a declaration list on top-level semicolons.
func splitDeclarations(s string) []string {
	var (
		parts []string
		start int
		depth int
		quote byte
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case c == ';' && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		parts = append(parts, s[start:])
	}
	return parts
}

// parseDeclaration parses a single "property: value" declaration.
func parseDeclaration(decl string) (string, string, bool) {
	decl = strings.TrimSpace(decl)
	colon := strings.IndexByte(decl, ':')
	if colon <= 0 || strings.TrimSpace(decl[:colon]) == "" || strings.TrimSpace(decl[colon+1:]) == "" {
		return "", "", false
	}

	p := css.NewParser(parse.NewInputString(decl), true)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			return "", "", false
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			// The parser drops whitespace between value tokens, so the value
			// is taken from the source text.
			prop := strings.TrimSpace(string(data))
			value := strings.TrimSpace(decl[colon+1:])
			if prop == "" || value == "" {
				return "", "", false
			}
			return prop, value, true
		}
	}
}
