package attrs

import (
	"strings"

	"github.com/vango-dev/htmlconv/pkg/dom"
)

// Preferences are the translation choices a target library may declare.
type Preferences struct {
	// CamelCase converts unmapped kebab-case attribute names to camelCase.
	CamelCase bool

	// RawBooleans keeps presence-only attributes as their markup string
	// instead of coercing them to true.
	RawBooleans bool
}

// booleanProps are props the framework expects as booleans. Present means true.
var booleanProps = map[string]bool{
	"allowFullScreen":         true,
	"async":                   true,
	"autoFocus":               true,
	"autoPlay":                true,
	"checked":                 true,
	"controls":                true,
	"default":                 true,
	"defaultChecked":          true,
	"defer":                   true,
	"disabled":                true,
	"disablePictureInPicture": true,
	"disableRemotePlayback":   true,
	"formNoValidate":          true,
	"hidden":                  true,
	"inert":                   true,
	"itemScope":               true,
	"loop":                    true,
	"multiple":                true,
	"muted":                   true,
	"noModule":                true,
	"noValidate":              true,
	"open":                    true,
	"playsInline":             true,
	"readOnly":                true,
	"required":                true,
	"reversed":                true,
	"scoped":                  true,
	"seamless":                true,
	"selected":                true,
}

// overloadedBooleanProps are true when present without a value and keep their
// string value otherwise.
var overloadedBooleanProps = map[string]bool{
	"capture":  true,
	"download": true,
}

// IsBooleanProp reports whether the prop is rendered as a presence-only
// attribute.
func IsBooleanProp(prop string) bool {
	return booleanProps[prop] || overloadedBooleanProps[prop]
}

// BooleanValue coerces an attribute value for a prop. The second result is
// false when the prop is not boolean-typed and the raw string should be used.
// Presence alone makes a boolean attribute true, whatever its value.
func BooleanValue(prop, value string) (bool, bool) {
	if booleanProps[prop] {
		return true, true
	}
	if overloadedBooleanProps[prop] && value == "" {
		return true, true
	}
	return false, false
}

// formProps renames props whose markup form would make the framework treat
// the element as controlled.
var formProps = map[string]map[string]string{
	"input": {
		"value":   "defaultValue",
		"checked": "defaultChecked",
	},
	"select": {
		"value": "defaultValue",
	},
}

// IsCustomElement reports whether attributes on the element are passed
// through unaltered: custom element names contain a dash, and customized
// built-ins carry an "is" attribute.
func IsCustomElement(tag string, attrs []dom.Attribute) bool {
	if strings.Contains(tag, "-") {
		return true
	}
	for _, a := range attrs {
		if a.Key == "is" {
			return true
		}
	}
	return false
}

// Props translates an element's attributes into a props map.
func Props(tag string, attrs []dom.Attribute, ns Namespace, prefs Preferences) map[string]any {
	props, _ := OrderedProps(tag, attrs, ns, prefs)
	return props
}

// OrderedProps is Props that also returns the prop names in source attribute
// order. A prop set by more than one attribute is listed once, at its first
// position.
func OrderedProps(tag string, attrs []dom.Attribute, ns Namespace, prefs Preferences) (map[string]any, []string) {
	props := make(map[string]any, len(attrs))
	order := make([]string, 0, len(attrs))
	set := func(prop string, value any) {
		if _, ok := props[prop]; !ok {
			order = append(order, prop)
		}
		props[prop] = value
	}

	if ns == HTML && IsCustomElement(tag, attrs) {
		for _, a := range attrs {
			set(a.Key, a.Val)
		}
		return props, order
	}

	renames := formProps[strings.ToLower(tag)]
	if ns != HTML {
		renames = nil
	}

	for _, a := range attrs {
		if a.Key == "" {
			continue
		}
		prop := PropName(a.Key, ns)
		if prop == a.Key && prefs.CamelCase && !IsCustomAttribute(a.Key) {
			prop = CamelCase(a.Key)
		}
		if renamed, ok := renames[prop]; ok {
			prop = renamed
		}

		if prop == "style" {
			if strings.TrimSpace(a.Val) != "" {
				set("style", ParseStyle(a.Val))
			}
			continue
		}

		if !prefs.RawBooleans {
			if v, ok := BooleanValue(prop, a.Val); ok {
				set(prop, v)
				continue
			}
		}
		set(prop, a.Val)
	}
	return props, order
}
