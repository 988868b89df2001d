package pentoface

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DimDuration is how long hosts take to dim a paused face or bring it back.
const DimDuration = 0.35

// DimAlpha is the root alpha of a paused face.
const DimAlpha = 0.25

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one with TweenAlpha and call Update(dt) each frame. The group auto-applies values and marks the
// node dirty.
//
// Tweens run on host time, independently of Face.Update, so they keep going
// while the face is paused.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty.
func (g *TweenGroup) Update(dt float32) {
	if g == nil || g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenAlpha creates a TweenGroup that animates node.Alpha to the target value
// over the specified duration using the easing function.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Alpha), float32(to), duration, fn)
	g.fields[0] = &node.Alpha
	return g
}

// Dimmer fades a node (usually the scene root) down while the face is paused
// and back up when it resumes. Starting a fade while one is running picks up
// from the current alpha.
type Dimmer struct {
	node  *Node
	tween *TweenGroup
}

// NewDimmer creates a dimmer for node.
func NewDimmer(node *Node) *Dimmer {
	return &Dimmer{node: node}
}

// Dim starts fading to DimAlpha.
func (d *Dimmer) Dim() {
	d.tween = TweenAlpha(d.node, DimAlpha, DimDuration, ease.OutCubic)
}

// Restore starts fading back to full alpha.
func (d *Dimmer) Restore() {
	d.tween = TweenAlpha(d.node, 1, DimDuration, ease.InOutQuad)
}

// Update advances the running fade, if any.
func (d *Dimmer) Update(dt float32) {
	d.tween.Update(dt)
}

// Active reports whether a fade is in progress.
func (d *Dimmer) Active() bool {
	return d.tween != nil && !d.tween.Done
}
