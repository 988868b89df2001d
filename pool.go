package pentoface

import (
	"fmt"
	"math/rand/v2"
)

// Transform is the visual state applied to a node when it leaves a pool.
type Transform struct {
	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64
	Alpha          float64
	Depth          float64
}

// PoolStats reports a pool's accounting. Created == Idle + Active always holds.
type PoolStats struct {
	Created int
	Idle    int
	Active  int
}

func (s PoolStats) add(o PoolStats) PoolStats {
	return PoolStats{s.Created + o.Created, s.Idle + o.Idle, s.Active + o.Active}
}

// Pool reuses clones of one shape's prototype node. It grows on demand and
// never shrinks; clones live next to the prototype in the scene graph and
// are hidden while idle.
type Pool struct {
	shape     Shape
	prototype *Node
	rng       *rand.Rand
	idle      []*Node
	active    map[*Node]struct{}
	created   int
}

// NewPool creates an empty pool for shape that clones prototype.
func NewPool(shape Shape, prototype *Node, rng *rand.Rand) *Pool {
	return &Pool{
		shape:     shape,
		prototype: prototype,
		rng:       rng,
		active:    make(map[*Node]struct{}),
	}
}

// Shape returns the pool's shape.
func (p *Pool) Shape() Shape {
	return p.shape
}

// Acquire hands out an idle node, cloning the prototype first when none is
// idle. Which idle node is chosen is random. The node gets tr applied and is
// made visible.
func (p *Pool) Acquire(tr Transform) *Node {
	if len(p.idle) == 0 {
		p.grow()
	}
	i := 0
	if len(p.idle) > 1 {
		i = p.rng.IntN(len(p.idle))
	}
	n := p.idle[i]
	last := len(p.idle) - 1
	p.idle[i] = p.idle[last]
	p.idle[last] = nil
	p.idle = p.idle[:last]

	n.X, n.Y = tr.X, tr.Y
	n.ScaleX, n.ScaleY = tr.ScaleX, tr.ScaleY
	n.Rotation = tr.Rotation
	n.Alpha = tr.Alpha
	n.Depth = tr.Depth
	n.Visible = true
	n.MarkDirty()

	p.active[n] = struct{}{}
	return n
}

// Release hides n and returns it to the idle set. Panics if n is not
// currently acquired from this pool.
func (p *Pool) Release(n *Node) {
	if _, ok := p.active[n]; !ok {
		panic(fmt.Sprintf("pentoface: release of node %q not active in %s pool", n.Name, p.shape))
	}
	delete(p.active, n)
	n.Visible = false
	p.idle = append(p.idle, n)
}

// Stats returns the pool's current accounting.
func (p *Pool) Stats() PoolStats {
	return PoolStats{Created: p.created, Idle: len(p.idle), Active: len(p.active)}
}

func (p *Pool) grow() {
	n := p.prototype.Clone()
	p.created++
	n.Name = fmt.Sprintf("%s#%d", p.prototype.Name, p.created)
	n.Visible = false
	if p.prototype.Parent != nil {
		p.prototype.Parent.AddChild(n)
	}
	p.idle = append(p.idle, n)
	logger().Debug("pool grew", "shape", p.shape.String(), "created", p.created)
}

// Pools holds one Pool per shape, indexed by Shape.
type Pools [NumShapes]*Pool

// NewPools creates a pool for every shape from its prototype.
func NewPools(prototypes [NumShapes]*Node, rng *rand.Rand) *Pools {
	var ps Pools
	for s := range ps {
		ps[s] = NewPool(Shape(s), prototypes[s], rng)
	}
	return &ps
}

// Stats sums the accounting of every pool.
func (ps *Pools) Stats() PoolStats {
	var total PoolStats
	for _, p := range ps {
		total = total.add(p.Stats())
	}
	return total
}
