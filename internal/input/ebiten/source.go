// Package ebiten reads dialog input from an ebiten game loop.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gompdf/gomdialog/internal/input"
)

var _ = input.Source((*Source)(nil))

// Source reads dialog input from ebiten's per-tick input state: Enter or
// the bottom face button confirms, X or the left face button skips.
type Source struct {
	ConfirmKeys []ebiten.Key
	SkipKeys    []ebiten.Key

	gamepads []ebiten.GamepadID
}

// NewSource returns a source with the default key bindings.
func NewSource() *Source {
	return &Source{
		ConfirmKeys: []ebiten.Key{ebiten.KeyEnter},
		SkipKeys:    []ebiten.Key{ebiten.KeyX},
	}
}

func (s *Source) ConfirmPressed() bool {
	return s.justPressed(s.ConfirmKeys, ebiten.StandardGamepadButtonRightBottom)
}

func (s *Source) SkipPressed() bool {
	return s.justPressed(s.SkipKeys, ebiten.StandardGamepadButtonRightLeft)
}

func (s *Source) justPressed(keys []ebiten.Key, button ebiten.StandardGamepadButton) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}

	s.gamepads = ebiten.AppendGamepadIDs(s.gamepads[:0])
	for _, id := range s.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, button) {
			return true
		}
	}
	return false
}
