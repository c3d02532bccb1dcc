//go:build !android

package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

type Input struct {
	prevMouse map[glfw.MouseButton]bool
	prevKeys  map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

// KeySnapshot is the boolean-array reading of the player ship's control
// keys for one tick: thrust, the three rotation axes, and fire (§6 External
// Interfaces).
type KeySnapshot struct {
	Thrust   bool
	Brake    bool
	YawLeft  bool
	YawRight bool
	PitchUp  bool
	PitchDown bool
	RollLeft  bool
	RollRight bool
	Fire      bool
	Quit      bool
}

// ReadKeys snapshots the current keyboard state into a KeySnapshot. W thrusts,
// S brakes, A/D yaw, the Up/Down arrows pitch, Q/E roll, Space fires,
// Escape quits.
func ReadKeys(window *glfw.Window) KeySnapshot {
	pressed := func(k glfw.Key) bool { return window.GetKey(k) == glfw.Press }
	return KeySnapshot{
		Thrust:    pressed(glfw.KeyW),
		Brake:     pressed(glfw.KeyS),
		YawLeft:   pressed(glfw.KeyA),
		YawRight:  pressed(glfw.KeyD),
		PitchUp:   pressed(glfw.KeyUp),
		PitchDown: pressed(glfw.KeyDown),
		RollLeft:  pressed(glfw.KeyQ),
		RollRight: pressed(glfw.KeyE),
		Fire:      pressed(glfw.KeySpace),
		Quit:      pressed(glfw.KeyEscape),
	}
}
