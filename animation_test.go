package pentoface

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenAlphaInterpolates(t *testing.T) {
	node := NewContainer("alpha")
	node.Alpha = 1.0

	tw := TweenAlpha(node, 0.0, 1.0, ease.Linear)

	tw.Update(0.5)
	if tw.Done {
		t.Fatal("should not be done at halfway")
	}
	if math.Abs(node.Alpha-0.5) > 0.05 {
		t.Errorf("Alpha = %f, want ~0.5 at halfway", node.Alpha)
	}

	tw.Update(0.5)
	if !tw.Done {
		t.Fatal("should be done after full duration")
	}
	if math.Abs(node.Alpha-0.0) > 0.01 {
		t.Errorf("Alpha = %f, want ~0.0", node.Alpha)
	}
}

func TestTweenGroupMarksDirty(t *testing.T) {
	node := NewContainer("dirty")
	g := TweenAlpha(node, 0, 1.0, ease.Linear)
	node.transformDirty = false

	g.Update(0.1)
	if !node.transformDirty {
		t.Error("Update should mark the node dirty")
	}
}

func TestTweenGroupNilSafe(t *testing.T) {
	var g *TweenGroup
	g.Update(0.1) // should not panic
}

func TestTweenGroupUpdateZeroAlloc(t *testing.T) {
	node := NewContainer("alloc")
	g := TweenAlpha(node, 0, 1.0, ease.Linear)

	g.Update(0.01)

	result := testing.AllocsPerRun(100, func() {
		g.Update(0.001)
	})
	if result > 0 {
		t.Errorf("TweenGroup.Update allocated %f times per run, want 0", result)
	}
}

func TestDimmer(t *testing.T) {
	root := NewContainer("root")
	d := NewDimmer(root)
	if d.Active() {
		t.Error("new dimmer should be idle")
	}
	d.Update(0.1) // no fade yet

	d.Dim()
	if !d.Active() {
		t.Fatal("Dim should start a fade")
	}
	for range 10 {
		d.Update(0.05)
	}
	if d.Active() {
		t.Fatal("fade should finish within its duration")
	}
	if math.Abs(root.Alpha-DimAlpha) > 0.01 {
		t.Errorf("dimmed alpha = %v, want %v", root.Alpha, DimAlpha)
	}

	// Restoring halfway through a fade starts from the current alpha.
	d.Restore()
	d.Update(DimDuration / 2)
	if root.Alpha <= DimAlpha || root.Alpha >= 1 {
		t.Errorf("mid-restore alpha = %v", root.Alpha)
	}
	d.Dim()
	for range 10 {
		d.Update(0.05)
	}
	if math.Abs(root.Alpha-DimAlpha) > 0.01 {
		t.Errorf("re-dimmed alpha = %v, want %v", root.Alpha, DimAlpha)
	}
}
