// Package meander is a momentum scroll-physics and path-generation engine
// for scroll-driven trail experiences built on [Ebitengine].
//
// Meander owns a single scalar path position and resolves all device input
// (wheel impulses, touch drags, keyboard jumps, edge clicks) into motion along
// a procedurally generated helical trail. Motion alternates between two modes:
// free integration (friction, impulse folding, magnetic attraction toward
// nearby sections) and eased snapping to an exact section position. Around the
// current position the engine rebuilds a bounded window of trail geometry
// (dot markers, milestone text, agent panels, decorative shapes) into
// caller-supplied scene groups.
//
// # Quick start
//
// Create an engine from a config, feed it input, and pump it once per frame:
//
//	eng, err := meander.NewEngine(meander.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// each frame:
//	eng.Wheel(deltaY, mods)
//	eng.Update(1.0 / 60.0)
//	pos := eng.CurrentPosition()
//
// With Ebitengine, [EbitenInput] polls the device state each frame and feeds
// the engine's input ports for you:
//
//	type Game struct {
//		eng   *meander.Engine
//		input *meander.EbitenInput
//	}
//
//	func (g *Game) Update() error {
//		g.input.Update()
//		g.eng.Update(1.0 / float64(ebiten.TPS()))
//		return nil
//	}
//
// # Collaborators
//
// The engine never owns rendering, audio, or background state. It writes
// geometry into three injected [SceneGroup] instances (dots, decorations,
// labels) via clear-and-repopulate, and notifies optional capability sinks:
// [BackgroundSink] once per agent transition, [WorkloadSink] on snap
// start/end, and [AudioSink] on arrival at an agent section. All sinks
// default to no-ops; a synthesized audio cue backed by [beep] is available
// in the meander/cue submodule.
//
// There is no global engine manager; users call Update themselves.
//
// [Ebitengine]: https://ebitengine.org
// [beep]: https://github.com/gopxl/beep
package meander
