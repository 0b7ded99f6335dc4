package convert

import "github.com/vango-dev/htmlconv/pkg/attrs"

// Element is a converted node: whatever the Library produced for an element,
// or a plain string for text.
type Element = any

// Props is the prop mapping handed to Library.CreateElement.
type Props = map[string]any

// Library materializes converted nodes. Selecting a different Library only
// changes which factory is invoked; props and children are identical for the
// same input.
type Library interface {
	// CreateElement builds an element of the given type. Props may contain a
	// "key" entry; children are elements or strings in sibling order.
	CreateElement(typ string, props map[string]any, children ...any) any

	// CreateFragment groups elements without a wrapping tag.
	CreateFragment(children ...any) any

	// IsValidElement reports whether v is an element this library produced.
	// It gates values returned from a Replace hook.
	IsValidElement(v any) bool
}

// Preferrer is implemented by libraries that want a different attribute
// translation than the default.
type Preferrer interface {
	Preferences() attrs.Preferences
}

// OrderedLibrary is implemented by libraries that keep the source order of
// attributes. Order lists the props keys in that order; "key" is not in it.
type OrderedLibrary interface {
	CreateOrderedElement(typ string, props map[string]any, order []string, children ...any) any
}

// Factory adapts plain functions to a Library.
type Factory struct {
	// Create builds elements. Required.
	Create func(typ string, props map[string]any, children ...any) any

	// Fragment groups elements. When nil the children slice itself is used.
	Fragment func(children ...any) any

	// Valid gates Replace results. When nil every Replace result is
	// rejected, so overrides need an explicit predicate.
	Valid func(v any) bool

	// Prefs are returned from Preferences.
	Prefs attrs.Preferences
}

// CreateElement implements Library.
func (f Factory) CreateElement(typ string, props map[string]any, children ...any) any {
	return f.Create(typ, props, children...)
}

// CreateFragment implements Library.
func (f Factory) CreateFragment(children ...any) any {
	if f.Fragment == nil {
		return children
	}
	return f.Fragment(children...)
}

// IsValidElement implements Library.
func (f Factory) IsValidElement(v any) bool {
	if f.Valid == nil || v == nil {
		return false
	}
	return f.Valid(v)
}

// Preferences implements Preferrer.
func (f Factory) Preferences() attrs.Preferences {
	return f.Prefs
}

// createElement builds an element with lib, passing the prop order when lib
// keeps it.
func createElement(lib Library, typ string, props map[string]any, order []string, children ...any) any {
	if ol, ok := lib.(OrderedLibrary); ok {
		return ol.CreateOrderedElement(typ, props, order, children...)
	}
	return lib.CreateElement(typ, props, children...)
}

// preferences returns the translation preferences declared by lib.
func preferences(lib Library) attrs.Preferences {
	if p, ok := lib.(Preferrer); ok {
		return p.Preferences()
	}
	return attrs.Preferences{}
}
