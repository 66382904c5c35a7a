package meander

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// wheelDeltaScale converts ebiten's wheel units (lines) into the pixel-ish
// deltaY convention the engine's WheelScale is tuned for.
const wheelDeltaScale = 40.0

// EbitenInput polls Ebitengine device state once per frame and feeds the
// engine's input ports: wheel impulses, navigation keys, edge clicks, and a
// single tracked touch drag. The engine core never sees ebiten; hosts with
// other event sources wire the ports directly.
type EbitenInput struct {
	engine *Engine

	width  float64
	height float64

	touchActive bool
	touchID     ebiten.TouchID
	touchIDs    []ebiten.TouchID
}

// NewEbitenInput creates an adapter for the given engine. Call
// SetScreenSize from the game's Layout so click zones track the window.
func NewEbitenInput(engine *Engine) *EbitenInput {
	return &EbitenInput{engine: engine, width: 640, height: 480}
}

// SetScreenSize records the viewport dimensions used for click-zone
// interpretation.
func (in *EbitenInput) SetScreenSize(width, height int) {
	in.width = float64(width)
	in.height = float64(height)
}

// Update polls the device state for this frame. Call once per frame before
// Engine.Update.
func (in *EbitenInput) Update() {
	mods := readModifiers()

	if _, dy := ebiten.Wheel(); dy != 0 {
		// Ebiten reports wheel-up as positive; the engine follows browser
		// deltaY convention where scrolling down moves forward.
		in.engine.Wheel(-dy*wheelDeltaScale, mods)
	}

	in.pollKeys()
	in.pollClick()
	in.pollTouch()
}

func (in *EbitenInput) pollKeys() {
	for _, bind := range keyBindings {
		if inpututil.IsKeyJustPressed(bind.ebiten) {
			in.engine.KeyDown(bind.key)
		}
	}
}

var keyBindings = []struct {
	ebiten ebiten.Key
	key    Key
}{
	{ebiten.KeyArrowUp, KeyArrowUp},
	{ebiten.KeyArrowDown, KeyArrowDown},
	{ebiten.KeyArrowLeft, KeyArrowLeft},
	{ebiten.KeyArrowRight, KeyArrowRight},
	{ebiten.KeyPageUp, KeyPageUp},
	{ebiten.KeyPageDown, KeyPageDown},
	{ebiten.KeySpace, KeySpace},
	{ebiten.KeyHome, KeyHome},
}

func (in *EbitenInput) pollClick() {
	if !inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	in.engine.Click(float64(mx), float64(my), in.width, in.height)
}

// pollTouch tracks the first active touch as the scroll drag. Additional
// touches are ignored; the engine's path input is one-dimensional.
func (in *EbitenInput) pollTouch() {
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])

	if in.touchActive {
		for _, id := range in.touchIDs {
			if id == in.touchID {
				_, ty := ebiten.TouchPosition(id)
				in.engine.TouchMove(float64(ty))
				return
			}
		}
		in.touchActive = false
		in.engine.TouchEnd()
		return
	}

	if len(in.touchIDs) > 0 {
		in.touchActive = true
		in.touchID = in.touchIDs[0]
		_, ty := ebiten.TouchPosition(in.touchID)
		in.engine.TouchStart(float64(ty))
	}
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}
