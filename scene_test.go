package pentoface

import "testing"

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.root == nil {
		t.Fatal("root should not be nil")
	}
	if s.root.Name != "root" {
		t.Errorf("root.Name = %q, want %q", s.root.Name, "root")
	}
	if s.root.Type != NodeTypeContainer {
		t.Errorf("root.Type = %d, want NodeTypeContainer", s.root.Type)
	}
	if s.Root() != s.root {
		t.Error("Root() should return the internal root node")
	}
}

func TestSceneFindNode(t *testing.T) {
	s := NewScene()
	n := NewContainer("DigitH10")
	s.Root().AddChild(n)
	if s.FindNode("DigitH10") != n {
		t.Error("FindNode should find a root child")
	}
	if s.FindNode("DigitH1") != nil {
		t.Error("FindNode should not match a prefix")
	}
}

func TestSceneUpdateTransforms(t *testing.T) {
	s := NewScene()
	a := NewContainer("a")
	a.X = 5
	b := NewContainer("b")
	b.Y = 7
	s.Root().AddChild(a)
	a.AddChild(b)

	s.UpdateTransforms()

	x, y := b.LocalToWorld(0, 0)
	assertNear(t, "x", x, 5)
	assertNear(t, "y", y, 7)
}
