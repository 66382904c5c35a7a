package meander

// syntheticEvent is a single injected device event. Events queue up between
// frames and are consumed at the start of the next Update, identical in
// effect to real device input.
type syntheticEvent struct {
	kind       syntheticKind
	value      float64 // wheel deltaY or touch y
	key        Key
	mods       KeyModifiers
	x, y, w, h float64 // click geometry
}

type syntheticKind uint8

const (
	synthWheel syntheticKind = iota
	synthKey
	synthClick
	synthTouchStart
	synthTouchMove
	synthTouchEnd
)

// InjectWheel queues a synthetic wheel event with the given deltaY and
// modifiers. Consumed on the next Update.
func (e *Engine) InjectWheel(deltaY float64, mods KeyModifiers) {
	e.inject = append(e.inject, syntheticEvent{kind: synthWheel, value: deltaY, mods: mods})
}

// InjectKey queues a synthetic navigation key press.
func (e *Engine) InjectKey(key Key) {
	e.inject = append(e.inject, syntheticEvent{kind: synthKey, key: key})
}

// InjectClick queues a synthetic click at (x, y) in a w×h viewport.
func (e *Engine) InjectClick(x, y, w, h float64) {
	e.inject = append(e.inject, syntheticEvent{kind: synthClick, x: x, y: y, w: w, h: h})
}

// InjectTouchDrag queues a full touch drag: start at fromY, `steps` linearly
// interpolated moves, then release at toY. Consumed over a single Update.
func (e *Engine) InjectTouchDrag(fromY, toY float64, steps int) {
	if steps < 1 {
		steps = 1
	}
	e.inject = append(e.inject, syntheticEvent{kind: synthTouchStart, value: fromY})
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		e.inject = append(e.inject, syntheticEvent{kind: synthTouchMove, value: fromY + (toY-fromY)*t})
	}
	e.inject = append(e.inject, syntheticEvent{kind: synthTouchEnd})
}

// drainInjected feeds all queued synthetic events through the regular input
// ports. Called at the start of Update.
func (e *Engine) drainInjected() {
	if len(e.inject) == 0 {
		return
	}
	queue := e.inject
	e.inject = e.inject[:0]
	for _, evt := range queue {
		switch evt.kind {
		case synthWheel:
			e.Wheel(evt.value, evt.mods)
		case synthKey:
			e.KeyDown(evt.key)
		case synthClick:
			e.Click(evt.x, evt.y, evt.w, evt.h)
		case synthTouchStart:
			e.TouchStart(evt.value)
		case synthTouchMove:
			e.TouchMove(evt.value)
		case synthTouchEnd:
			e.TouchEnd()
		}
	}
}
