// Package pentoface is an animated clock face that spells every digit with
// pentomino pieces.
//
// Each of the six digits (hours, minutes, seconds) is a glyph on a 5x9 grid
// tiled by pentominoes. When a digit changes, its slot picks a random tiling
// of the new glyph and the pieces shrink and fade into place while the
// previous pieces fade out behind them. Every element runs on its own
// virtual clock, skewed by its diagonal distance from the seconds digit, so
// the change sweeps across the face as a wave.
//
// # Quick start
//
// Build the scene from the embedded layout, wrap it in a [Face] and call
// [Face.Update] once per frame with a monotonic timestamp in seconds:
//
//	scene := pentoface.DefaultLayout().Build()
//	face, err := pentoface.NewFace(scene, pentoface.FaceConfig{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	// per frame:
//	face.Update(elapsed.Seconds())
//	for _, cmd := range scene.Commands() {
//		// draw the unit square through cmd.Transform in cmd.Color
//	}
//
// The display subpackage runs a face in an Ebitengine window and term runs
// it in a terminal; both pause the face while unfocused.
//
// # Scene graph
//
// The face animates a small tree of [Node] values. [NewFace] looks up, by
// name, six digit anchors ([NameHourTens] .. [NameSecondOnes]), the
// separator ([NameSeparator]) and one hidden prototype per [Shape]
// ("PentominoF" .. "PentominoZ"). Any scene that provides those names can be
// animated; [Layout] builds one from JSON.
//
// Anchors are scaled so one unit is one glyph cell. Pieces are clones of the
// prototypes drawn from per-shape [Pools] and reused for the life of the
// face.
//
// # Time
//
// Wall-clock time comes from a [Clock]; [ManualClock] makes tests and demos
// deterministic. Hours follow an [HourConvention], which [ConventionFromEnv]
// derives from the POSIX locale variables.
//
// # Events
//
// A face reports digit spawns and piece lifecycle to an optional
// [EventSink]. The chime subpackage turns spawns into tones; the ecs module
// publishes them into a Donburi world.
//
// The package is single-threaded: call Update, Pause and Resume from one
// goroutine.
package pentoface
