package vdom

import "testing"

func TestText(t *testing.T) {
	node := Text("Hello, World!")

	if node.Kind != KindText {
		t.Errorf("Kind = %v, want KindText", node.Kind)
	}
	if node.Text != "Hello, World!" {
		t.Errorf("Text = %v, want 'Hello, World!'", node.Text)
	}
}

func TestTextf(t *testing.T) {
	node := Textf("Count: %d", 42)
	if node.Text != "Count: 42" {
		t.Errorf("Text = %v, want 'Count: 42'", node.Text)
	}
}

func TestRaw(t *testing.T) {
	node := Raw("<strong>Bold</strong>")

	if node.Kind != KindRaw {
		t.Errorf("Kind = %v, want KindRaw", node.Kind)
	}
	if node.Text != "<strong>Bold</strong>" {
		t.Errorf("Text = %v, want '<strong>Bold</strong>'", node.Text)
	}
}

func TestFragment(t *testing.T) {
	t.Run("with VNodes", func(t *testing.T) {
		node := Fragment(Div(), Span(), P())
		if node.Kind != KindFragment {
			t.Errorf("Kind = %v, want KindFragment", node.Kind)
		}
		if len(node.Children) != 3 {
			t.Errorf("Children len = %v, want 3", len(node.Children))
		}
	})

	t.Run("with strings and nil", func(t *testing.T) {
		node := Fragment("a", nil, Span(), "b")
		if len(node.Children) != 3 {
			t.Fatalf("Children len = %v, want 3", len(node.Children))
		}
		if node.Children[0].Kind != KindText || node.Children[2].Text != "b" {
			t.Errorf("unexpected children %+v", node.Children)
		}
	})

	t.Run("empty", func(t *testing.T) {
		node := Fragment()
		if node.Children == nil || len(node.Children) != 0 {
			t.Errorf("Children = %v, want empty slice", node.Children)
		}
	})
}

func TestKey(t *testing.T) {
	if a := Key(7); a.Key != "key" || a.Value != "7" {
		t.Errorf("Key(7) = %+v", a)
	}
}

func TestWalkAndCount(t *testing.T) {
	tree := Div(
		P("a"),
		Ul(Li("1"), Li("2")),
		Raw("<b>x</b>"),
	)

	var tags []string
	Walk(tree, func(v *VNode) bool {
		if v.Kind == KindElement {
			tags = append(tags, v.Tag)
		}
		return v.Tag != "ul"
	})
	want := []string{"div", "p", "ul"}
	if len(tags) != len(want) {
		t.Fatalf("visited %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("visited[%d] = %q, want %q", i, tags[i], want[i])
		}
	}

	if got := Count(tree); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}
	if got := Count(nil); got != 0 {
		t.Errorf("Count(nil) = %d, want 0", got)
	}
}
