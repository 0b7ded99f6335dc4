// Package jsx builds React-shaped element descriptors.
//
// An Element mirrors what React.createElement returns: a type, an optional
// key and a props object whose "children" entry is absent for no children,
// the child itself for one child and a slice for several. Elements encode to
// the JSON a React client can revive:
//
//	{"$$typeof":"react.element","type":"p","key":null,"props":{"children":"hi"}}
//
// Only elements built by Library carry the element marker, so IsValidElement
// rejects look-alike values.
package jsx

import (
	"encoding/json"
	"fmt"
)

// FragmentType is the Type of elements built by CreateFragment.
const FragmentType = "#fragment"

// elementMarker tags elements created by this package.
const elementMarker = "react.element"

// Element is a React-shaped element descriptor.
type Element struct {
	Type  string
	Key   *string
	Props map[string]any

	typeof string
}

// Children returns the element's children as a slice.
func (e *Element) Children() []any {
	if e == nil {
		return nil
	}
	switch c := e.Props["children"].(type) {
	case nil:
		return nil
	case []any:
		return c
	default:
		return []any{c}
	}
}

type elementJSON struct {
	Typeof string         `json:"$$typeof"`
	Type   string         `json:"type"`
	Key    *string        `json:"key"`
	Props  map[string]any `json:"props"`
}

// MarshalJSON implements json.Marshaler.
func (e *Element) MarshalJSON() ([]byte, error) {
	props := e.Props
	if props == nil {
		props = map[string]any{}
	}
	return json.Marshal(elementJSON{
		Typeof: elementMarker,
		Type:   e.Type,
		Key:    e.Key,
		Props:  props,
	})
}

// Library builds *Element trees. It implements convert.Library.
type Library struct{}

// CreateElement builds an element. The key prop moves to Element.Key.
func (Library) CreateElement(typ string, props map[string]any, children ...any) any {
	el := &Element{
		Type:   typ,
		Props:  make(map[string]any, len(props)+1),
		typeof: elementMarker,
	}
	for k, v := range props {
		switch k {
		case "key":
			if v != nil {
				key := fmt.Sprint(v)
				el.Key = &key
			}
		case "children":
		default:
			el.Props[k] = v
		}
	}
	switch len(children) {
	case 0:
	case 1:
		el.Props["children"] = children[0]
	default:
		el.Props["children"] = append([]any(nil), children...)
	}
	return el
}

// CreateFragment builds a fragment element.
func (l Library) CreateFragment(children ...any) any {
	return l.CreateElement(FragmentType, nil, children...)
}

// IsValidElement reports whether v was built by Library.
func (Library) IsValidElement(v any) bool {
	el, ok := v.(*Element)
	return ok && el != nil && el.typeof == elementMarker
}
