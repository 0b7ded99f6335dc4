package vdom

// Library builds VNode trees. It implements convert.Library.
type Library struct{}

// CreateElement builds an element node. The key prop becomes VNode.Key.
func (Library) CreateElement(typ string, props map[string]any, children ...any) any {
	node := &VNode{
		Kind:     KindElement,
		Tag:      typ,
		Props:    make(Props, len(props)),
		Children: make([]*VNode, 0, len(children)),
	}
	for k, v := range props {
		node.setProp(k, v)
	}
	for _, child := range children {
		node.Children = appendChildren(node.Children, child)
	}
	return node
}

// CreateOrderedElement is CreateElement that records the prop order for the
// renderer.
func (l Library) CreateOrderedElement(typ string, props map[string]any, order []string, children ...any) any {
	node := l.CreateElement(typ, props, children...).(*VNode)
	node.PropOrder = make([]string, 0, len(order))
	for _, k := range order {
		if _, ok := node.Props[k]; ok {
			node.PropOrder = append(node.PropOrder, k)
		}
	}
	return node
}

// CreateFragment builds a fragment node.
func (Library) CreateFragment(children ...any) any {
	return Fragment(children...)
}

// IsValidElement reports whether v is a well-formed *VNode.
func (Library) IsValidElement(v any) bool {
	node, ok := v.(*VNode)
	return ok && node.IsValid()
}
