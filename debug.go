package pentoface

import (
	"fmt"
	"io"
	"os"
	"time"
)

// tickStats holds per-tick counters. Timing is only measured when the face is
// in debug mode.
type tickStats struct {
	updateTime time.Duration
	spawned    int
	released   int
}

// debugOut is where debug mode writes. Tests swap it.
var debugOut io.Writer = os.Stderr

// SetDebugMode enables per-tick timing and pool stats on stderr.
func (f *Face) SetDebugMode(enabled bool) {
	f.debug = enabled
}

// debugLog prints the tick's counters and the pool totals.
func (f *Face) debugLog(stats tickStats) {
	if !f.debug {
		return
	}
	if stats.spawned == 0 && stats.released == 0 {
		return
	}
	pools := f.env.pools.Stats()
	_, _ = fmt.Fprintf(debugOut,
		"[pentoface] update: %v | spawned: %d | released: %d\n",
		stats.updateTime, stats.spawned, stats.released)
	_, _ = fmt.Fprintf(debugOut,
		"[pentoface] pools: created %d | idle %d | active %d\n",
		pools.Created, pools.Idle, pools.Active)
	for _, p := range f.env.pools {
		if p.prototype.Parent != nil {
			debugCheckChildCount(p.prototype.Parent)
		}
	}
}

// debugCheckChildCount warns if a node has more than 1000 children, which
// for a face means a pool is leaking.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(debugOut, "[pentoface] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}
