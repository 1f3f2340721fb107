package lattice

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action  string  `json:"action"`
	Variant string  `json:"variant,omitempty"`
	Node    int     `json:"node,omitempty"`
	Key     string  `json:"key,omitempty"`
	Value   string  `json:"value,omitempty"`
	Mode    string  `json:"mode,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// gestureScript is the top-level JSON structure.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptPlayer replays a scripted gesture sequence against a Canvas, one
// step per turn, for demos and automated interaction tests. Attach to a
// Canvas via SetScript.
//
// Supported actions: "click", "drag", "press", "move", "hover", "release"
// (pointer, fed through the injection queue — "move" drags with the button
// held, "hover" moves with it up), "create" (variant: container/heading/
// paragraph), "delete" (node), "connect" (node), "content"/"style"
// (node, key, value), "mode" (editor/preview), and "wait" (frames).
type ScriptPlayer struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON gesture script.
func LoadScript(jsonData []byte) (*ScriptPlayer, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	return &ScriptPlayer{steps: script.Steps}, nil
}

// SetScript attaches a script player to the canvas. The player advances one
// step per Update, before input processing.
func (c *Canvas) SetScript(player *ScriptPlayer) {
	c.script = player
}

// Done reports whether all steps have been executed and drained.
func (r *ScriptPlayer) Done() bool {
	return r.done
}

// step advances the player by one turn. Called from Canvas.Update.
func (r *ScriptPlayer) step(c *Canvas) {
	if r.done {
		return
	}
	// Let pending injections drain before advancing.
	if len(c.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		c.InjectPress(st.X, st.Y)
	case "move":
		c.InjectMove(st.X, st.Y)
	case "hover":
		c.InjectHover(st.X, st.Y)
	case "release":
		c.InjectRelease(st.X, st.Y)
	case "click":
		c.InjectClick(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 3 {
			frames = 3
		}
		c.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "create":
		c.editor.CreateNode(scriptVariant(st.Variant))
	case "delete":
		c.editor.DeleteNode(Handle(st.Node))
	case "connect":
		c.editor.StartConnect(Handle(st.Node))
	case "content":
		c.editor.SetContent(Handle(st.Node), st.Value)
	case "style":
		c.editor.SetStyle(Handle(st.Node), st.Key, st.Value)
	case "mode":
		if st.Mode == "preview" {
			c.editor.SwitchMode(ModePreview)
		} else {
			c.editor.SwitchMode(ModeEditor)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this turn counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}

// scriptVariant maps a script variant name to a Variant; unknown names fall
// back to paragraph.
func scriptVariant(name string) Variant {
	switch name {
	case "container":
		return VariantContainer
	case "heading":
		return VariantHeading
	default:
		return VariantParagraph
	}
}
