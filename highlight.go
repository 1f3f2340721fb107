package lattice

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	pulseMin    = 0.45 // selection border alpha at the low end of the pulse
	pulseMax    = 1.0
	pulsePeriod = 0.6  // seconds per half-cycle
	fadeIn      = 0.15 // seconds for the hover affordance to fade in
)

// highlightState animates the editor decorations: the selection border
// pulses continuously and the container hover affordance fades in when the
// hovered target changes. There is no global animation manager — the
// renderer ticks this once per turn.
type highlightState struct {
	pulse      *gween.Tween
	rising     bool
	pulseValue float32

	fade        *gween.Tween
	fadeValue   float32
	hoverTarget Handle
}

func newHighlightState() *highlightState {
	return &highlightState{
		pulse:      gween.New(pulseMin, pulseMax, pulsePeriod, ease.InOutQuad),
		rising:     true,
		pulseValue: pulseMin,
	}
}

// Update advances the tweens by dt seconds. selected and hovered are the
// current decoration targets; a hover change restarts the fade.
func (hs *highlightState) Update(dt float32, selected, hovered Handle) {
	if !selected.IsSet() {
		hs.pulse = gween.New(pulseMin, pulseMax, pulsePeriod, ease.InOutQuad)
		hs.rising = true
		hs.pulseValue = pulseMin
	} else {
		v, done := hs.pulse.Update(dt)
		hs.pulseValue = v
		if done {
			// Ping-pong between the two bounds.
			if hs.rising {
				hs.pulse = gween.New(pulseMax, pulseMin, pulsePeriod, ease.InOutQuad)
			} else {
				hs.pulse = gween.New(pulseMin, pulseMax, pulsePeriod, ease.InOutQuad)
			}
			hs.rising = !hs.rising
		}
	}

	if hovered != hs.hoverTarget {
		hs.hoverTarget = hovered
		if hovered.IsSet() {
			hs.fade = gween.New(0, 1, fadeIn, ease.OutQuad)
			hs.fadeValue = 0
		} else {
			hs.fade = nil
			hs.fadeValue = 0
		}
	}
	if hs.fade != nil {
		v, done := hs.fade.Update(dt)
		hs.fadeValue = v
		if done {
			hs.fade = nil
			hs.fadeValue = 1
		}
	}
}
