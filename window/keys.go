package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/ball-hunt/engine"
)

// keyBindings lists the physical keys for each direction
var keyBindings = map[engine.Direction][]ebiten.Key{
	engine.DirLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	engine.DirRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	engine.DirUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	engine.DirDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
}

// syncKeys copies the pressed state of every binding into the key state
func syncKeys(keys *engine.KeyState, pressed func(ebiten.Key) bool) {
	for dir, bound := range keyBindings {
		held := false
		for _, k := range bound {
			if pressed(k) {
				held = true
				break
			}
		}
		if held {
			keys.Press(dir)
		} else {
			keys.Release(dir)
		}
	}
}
