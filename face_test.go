package pentoface

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

// faceStart puts the hour-tens anchor of the default layout at a sampled
// second of 5, so every slot starts waiting for a raw seconds digit of 6.
// The hour-tens slot fires 0.83s later and the second-ones slot after 2.5s.
var faceStart = time.Date(2026, 3, 14, 10, 20, 33, 0, time.UTC)

const tick = time.Second / 60

type eventRecorder []Event

func (r *eventRecorder) Emit(e Event) { *r = append(*r, e) }

type faceHarness struct {
	t      *testing.T
	face   *Face
	clock  *ManualClock
	ts     float64
	events *eventRecorder
}

func newFaceHarness(t *testing.T, start time.Time) *faceHarness {
	t.Helper()
	clock := NewManualClock(start)
	events := &eventRecorder{}
	f, err := NewFace(DefaultLayout().Build(), FaceConfig{Clock: clock, Seed: 7, Events: events})
	if err != nil {
		t.Fatalf("NewFace: %v", err)
	}
	h := &faceHarness{t: t, face: f, clock: clock, events: events}
	f.Update(h.ts)
	return h
}

// run advances wall-clock and host time together in frame-sized ticks.
func (h *faceHarness) run(d time.Duration) {
	for d > 0 {
		step := min(tick, d)
		d -= step
		h.clock.Advance(step)
		h.ts += step.Seconds()
		h.face.Update(h.ts)
	}
}

// runUntil runs until the clock reaches t.
func (h *faceHarness) runUntil(t time.Time) {
	h.run(t.Sub(h.clock.Now()))
}

func (h *faceHarness) assertPoolAccounting() {
	h.t.Helper()
	live := 0
	for _, s := range h.face.Slots() {
		live += len(s.Pieces())
	}
	st := h.face.Pools().Stats()
	if st.Active != live {
		h.t.Errorf("pool active %d, live pieces %d", st.Active, live)
	}
	if st.Created != st.Idle+st.Active {
		h.t.Errorf("Created %d != Idle %d + Active %d", st.Created, st.Idle, st.Active)
	}
}

func piecesPerDigit(d int) int {
	return len(Glyph(d)) / 5
}

// currentTiling returns the placements of the pieces that are not leaving.
func currentTiling(s *DigitSlot) Tiling {
	var t Tiling
	for _, p := range s.Pieces() {
		if p.Phase() < PhaseExiting {
			t = append(t, p.Placement())
		}
	}
	return t
}

// restingCells maps the centre of every cell of the slot's pieces back to
// the slot's glyph grid.
func restingCells(t *testing.T, s *DigitSlot) map[Cell]int {
	t.Helper()
	anchor := s.Anchor()
	cells := make(map[Cell]int)
	for _, p := range s.Pieces() {
		m := p.Node().LocalTransform()
		for _, c := range p.Node().Children() {
			x, y := m.Apply(c.X+c.ScaleX/2, c.Y+c.ScaleY/2)
			cell := Cell{
				X: int(math.Floor((x - anchor.X) / anchor.ScaleX)),
				Y: int(math.Floor((y - anchor.Y) / anchor.ScaleY)),
			}
			cells[cell]++
		}
	}
	return cells
}

func TestNewFaceInitialState(t *testing.T) {
	h := newFaceHarness(t, faceStart)
	for _, s := range h.face.Slots() {
		if s.WaitTarget() != 6 {
			t.Errorf("%s: WaitTarget = %d, want 6", s.Source(), s.WaitTarget())
		}
		if s.Bootstrapped() {
			t.Errorf("%s: should start in bootstrap mode", s.Source())
		}
		if s.Digit() != -1 || len(s.Pieces()) != 0 {
			t.Errorf("%s: digit %d with %d pieces before any tick", s.Source(), s.Digit(), len(s.Pieces()))
		}
	}
	if h.face.SeparatorShown() || h.face.Separator().Alpha != 0 {
		t.Error("separator should start hidden")
	}
	if h.face.Slot(SourceSecondOnes).Anchor().Name != NameSecondOnes {
		t.Error("slot anchors out of order")
	}
}

func TestNewFaceMissingElements(t *testing.T) {
	s := DefaultLayout().Build()
	s.FindNode(NameSecondOnes).RemoveFromParent()
	s.FindNode(ShapeX.PrototypeName()).RemoveFromParent()

	f, err := NewFace(s, FaceConfig{})
	if f != nil {
		t.Error("face should be nil on error")
	}
	if !errors.Is(err, ErrMissingElement) {
		t.Fatalf("err = %v, want ErrMissingElement", err)
	}
	for _, name := range []string{NameSecondOnes, "PentominoX"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name %s", err, name)
		}
	}
}

// The hour-tens slot samples a raw second of 5 at start, waits for 6, then
// spawns the hour tens digit and keys its wait to that digit.
func TestFaceFirstFire(t *testing.T) {
	h := newFaceHarness(t, faceStart)
	h10 := h.face.Slot(SourceHourTens)

	h.run(800 * time.Millisecond)
	if len(h10.Pieces()) != 0 {
		t.Fatalf("hour tens fired early at %v", h.clock.Now())
	}

	h.run(100 * time.Millisecond)
	if !h10.Bootstrapped() {
		t.Fatal("hour tens did not fire")
	}
	if h10.Digit() != 1 {
		t.Errorf("Digit = %d, want 1", h10.Digit())
	}
	if h10.WaitTarget() != 1 {
		t.Errorf("WaitTarget = %d, want the hour tens digit 1", h10.WaitTarget())
	}
	if n := len(h10.Pieces()); n != piecesPerDigit(1) {
		t.Errorf("pieces = %d, want %d", n, piecesPerDigit(1))
	}
	if err := CheckTiling(1, currentTiling(h10)); err != nil {
		t.Errorf("spawned pieces: %v", err)
	}
	for _, p := range h10.Pieces() {
		if p.Phase() > PhaseEntering {
			t.Errorf("new piece in phase %s", p.Phase())
		}
	}
	if len(h.face.Slot(SourceHourOnes).Pieces()) != 0 {
		t.Error("hour ones should fire after hour tens")
	}

	var spawn *Event
	for i, e := range *h.events {
		if e.Type == EventDigitSpawn && e.Slot == SourceHourTens {
			spawn = &(*h.events)[i]
			break
		}
	}
	if spawn == nil {
		t.Fatal("no hour-tens spawn event")
	}
	if spawn.Digit != 1 || !spawn.Bootstrap {
		t.Errorf("hour-tens spawn = %+v", *spawn)
	}
	h.assertPoolAccounting()
}

func TestFaceFirstUpdateOnlyRecords(t *testing.T) {
	clock := NewManualClock(faceStart)
	f, err := NewFace(DefaultLayout().Build(), FaceConfig{Clock: clock, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	// The hour-tens slot's target second has arrived by the first tick.
	clock.Advance(time.Second)
	f.Update(100)
	for _, s := range f.Slots() {
		if len(s.Pieces()) != 0 {
			t.Fatalf("%s spawned on the first update", s.Source())
		}
	}
	f.Update(100 + 1.0/60)
	if len(f.Slot(SourceHourTens).Pieces()) == 0 {
		t.Error("second update should run the slots")
	}
}

// After a quarter minute every slot shows the current time and the steady
// digits rest exactly on their glyphs.
func TestFaceSettles(t *testing.T) {
	h := newFaceHarness(t, faceStart)
	h.runUntil(time.Date(2026, 3, 14, 10, 20, 50, 0, time.UTC))

	for src, want := range map[Source]int{
		SourceHourTens:   1,
		SourceHourOnes:   0,
		SourceMinuteTens: 2,
		SourceMinuteOnes: 0,
	} {
		s := h.face.Slot(src)
		if s.Digit() != want {
			t.Errorf("%s: Digit = %d, want %d", src, s.Digit(), want)
		}
		if n := len(s.Pieces()); n != piecesPerDigit(want) {
			t.Errorf("%s: %d pieces, want %d", src, n, piecesPerDigit(want))
		}
		for _, p := range s.Pieces() {
			if p.Phase() != PhaseWaitingToExit {
				t.Errorf("%s: piece %s in phase %s", src, p.Placement().Shape, p.Phase())
			}
			if p.Node().Alpha != 1 || math.Abs(p.Node().Depth) > SnapEpsilon {
				t.Errorf("%s: resting piece alpha %v depth %v", src, p.Node().Alpha, p.Node().Depth)
			}
		}

		cells := restingCells(t, s)
		glyph := Glyph(want)
		if len(cells) != len(glyph) {
			t.Errorf("%s: pieces cover %d cells, glyph has %d", src, len(cells), len(glyph))
		}
		for _, c := range glyph {
			if cells[c] != 1 {
				t.Errorf("%s: glyph cell %v covered %d times", src, c, cells[c])
			}
		}
	}

	// The seconds anchor samples 10:20:50.5.
	for src, want := range map[Source]int{SourceSecondTens: 5, SourceSecondOnes: 0} {
		s := h.face.Slot(src)
		if s.Digit() != want {
			t.Errorf("%s: Digit = %d, want %d", src, s.Digit(), want)
		}
		if err := CheckTiling(want, currentTiling(s)); err != nil {
			t.Errorf("%s: live pieces: %v", src, err)
		}
	}

	if !h.face.SeparatorShown() || h.face.Separator().Alpha != 1 {
		t.Errorf("separator shown=%v alpha=%v, want on and opaque", h.face.SeparatorShown(), h.face.Separator().Alpha)
	}
	h.assertPoolAccounting()
}

func TestFaceEvents(t *testing.T) {
	h := newFaceHarness(t, faceStart)
	h.runUntil(time.Date(2026, 3, 14, 10, 20, 50, 0, time.UTC))

	var spawnsPerSlot [NumSources]int
	spawned, finished := 0, 0
	for _, e := range *h.events {
		switch e.Type {
		case EventDigitSpawn:
			if first := spawnsPerSlot[e.Slot] == 0; e.Bootstrap != first {
				t.Errorf("%s spawn %d: Bootstrap = %v", e.Slot, spawnsPerSlot[e.Slot], e.Bootstrap)
			}
			spawnsPerSlot[e.Slot]++
			spawned += piecesPerDigit(e.Digit)
		case EventPieceFinish:
			finished++
		}
	}

	// Seconds 36 through 50.
	if n := spawnsPerSlot[SourceSecondOnes]; n != 15 {
		t.Errorf("second-ones spawns = %d, want 15", n)
	}
	if n := spawnsPerSlot[SourceHourTens]; n != 1 {
		t.Errorf("hour-tens spawns = %d, want 1", n)
	}

	live := 0
	for _, s := range h.face.Slots() {
		live += len(s.Pieces())
	}
	if spawned-finished != live {
		t.Errorf("spawned %d - finished %d != live %d", spawned, finished, live)
	}
}

func TestFacePauseResume(t *testing.T) {
	h := newFaceHarness(t, faceStart)
	h.runUntil(time.Date(2026, 3, 14, 10, 20, 50, 0, time.UTC))

	h.face.Pause()
	h.face.Pause()
	if !h.face.Paused() {
		t.Fatal("face should be paused")
	}

	watched := h.face.Slot(SourceSecondOnes).Pieces()[0]
	alpha, phase := watched.Node().Alpha, watched.Phase()
	counts := make([]int, NumSources)
	for i, s := range h.face.Slots() {
		counts[i] = len(s.Pieces())
	}
	h.run(2 * time.Second)
	if watched.Node().Alpha != alpha || watched.Phase() != phase {
		t.Error("paused face kept animating")
	}
	for i, s := range h.face.Slots() {
		if len(s.Pieces()) != counts[i] {
			t.Errorf("%s spawned while paused", s.Source())
		}
	}

	// Now 10:20:52; the hour-tens anchor samples second 54.
	h.face.Resume()
	if h.face.Paused() {
		t.Fatal("face should be running")
	}
	if h.face.SeparatorShown() {
		t.Error("resume should clear the separator indicator")
	}
	for _, s := range h.face.Slots() {
		if s.Bootstrapped() || s.WaitTarget() != 5 {
			t.Errorf("%s: bootstrapped=%v waitTarget=%d, want bootstrap on 5", s.Source(), s.Bootstrapped(), s.WaitTarget())
		}
		for _, p := range s.Pieces() {
			if p.Phase() != PhaseExiting {
				t.Errorf("%s: piece in phase %s after resume", s.Source(), p.Phase())
			}
		}
	}

	h.clock.Advance(time.Second)
	h.face.Resume()
	if got := h.face.Slot(SourceHourTens).WaitTarget(); got != 5 {
		t.Errorf("second Resume changed the wait target to %d", got)
	}

	alpha = watched.Node().Alpha
	h.run(tick)
	if watched.Node().Alpha != alpha {
		t.Error("first update after resume should only record the timestamp")
	}

	// The hour-tens anchor already samples second 55: the new tiling spawns
	// while the forced-out pieces are still fading.
	h.run(tick)
	h10 := h.face.Slot(SourceHourTens)
	var exiting, fresh int
	for _, p := range h10.Pieces() {
		if p.Phase() == PhaseExiting {
			exiting++
		} else {
			fresh++
		}
	}
	if exiting == 0 || fresh != piecesPerDigit(1) {
		t.Errorf("after resume: %d exiting, %d new pieces; want overlap with %d new", exiting, fresh, piecesPerDigit(1))
	}
	h.assertPoolAccounting()

	h.run(3 * time.Second)
	for _, p := range h10.Pieces() {
		if p.Phase() == PhaseExiting {
			t.Error("forced-out pieces should have finished")
			break
		}
	}
	h.assertPoolAccounting()
}

func TestFaceClose(t *testing.T) {
	h := newFaceHarness(t, faceStart)
	h.run(5 * time.Second)
	if h.face.Pools().Stats().Active == 0 {
		t.Fatal("expected live pieces before Close")
	}
	h.face.Close()
	st := h.face.Pools().Stats()
	if st.Active != 0 || st.Idle != st.Created {
		t.Errorf("after Close: %+v", st)
	}
	for _, s := range h.face.Slots() {
		if len(s.Pieces()) != 0 {
			t.Errorf("%s still has pieces", s.Source())
		}
	}
}

func TestFaceSeedDeterministic(t *testing.T) {
	a := newFaceHarness(t, faceStart)
	b := newFaceHarness(t, faceStart)
	a.run(4 * time.Second)
	b.run(4 * time.Second)

	for src := range Source(NumSources) {
		pa, pb := a.face.Slot(src).Pieces(), b.face.Slot(src).Pieces()
		if len(pa) != len(pb) {
			t.Fatalf("%s: %d vs %d pieces", src, len(pa), len(pb))
		}
		for i := range pa {
			if pa[i].Placement() != pb[i].Placement() {
				t.Errorf("%s piece %d: %+v vs %+v", src, i, pa[i].Placement(), pb[i].Placement())
			}
		}
	}
}

func TestFaceConfigDefaults(t *testing.T) {
	c := FaceConfig{}.withDefaults()
	if _, ok := c.Clock.(SystemClock); !ok {
		t.Errorf("Clock = %T, want SystemClock", c.Clock)
	}
	if c.Rand == nil {
		t.Error("Rand should default")
	}
	if c.SecondsPerUnit != DefaultSecondsPerUnit || c.Lead != DefaultLead || c.Speed != DefaultSpeed || c.Enlarge != DefaultEnlarge {
		t.Errorf("defaults = %+v", c)
	}
	if got := (FaceConfig{Lead: 2, NoLead: true}).withDefaults().Lead; got != 0 {
		t.Errorf("NoLead: Lead = %v, want 0", got)
	}
	if got := (FaceConfig{Lead: 0.25}).withDefaults().Lead; got != 0.25 {
		t.Errorf("explicit Lead = %v, want 0.25", got)
	}
}

func TestFaceDebugLog(t *testing.T) {
	var buf bytes.Buffer
	prev := debugOut
	debugOut = &buf
	defer func() { debugOut = prev }()

	h := newFaceHarness(t, faceStart)
	h.face.SetDebugMode(true)
	h.run(2 * time.Second)

	out := buf.String()
	if !strings.Contains(out, "[pentoface] update:") || !strings.Contains(out, "[pentoface] pools: created") {
		t.Errorf("debug output missing stats:\n%s", out)
	}

	buf.Reset()
	h.face.SetDebugMode(false)
	h.run(2 * time.Second)
	if buf.Len() != 0 {
		t.Errorf("debug output after disabling: %q", buf.String())
	}
}
