package easel

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner plays an input script against a Renderer, one step per
// animation frame: synthetic clicks, drags and hovers, waits, and
// screenshots. Attach it with Renderer.SetScriptRunner.
//
// A script is JSON:
//
//	{"steps": [
//	    {"action": "click", "x": 100, "y": 80},
//	    {"action": "wait", "frames": 10},
//	    {"action": "drag", "fromX": 100, "fromY": 80, "toX": 300, "toY": 80, "frames": 20},
//	    {"action": "screenshot", "label": "after-drag"}
//	]}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadInputScript parses a JSON input script.
func LoadInputScript(data []byte) (*ScriptRunner, error) {
	var script inputScript
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "click", "drag", "hover", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches runner to the renderer; it advances at the start
// of every animation frame. Pass nil to detach.
func (r *Renderer) SetScriptRunner(runner *ScriptRunner) {
	r.scriptRunner = runner
}

// Done reports whether every step has run.
func (sr *ScriptRunner) Done() bool {
	return sr.done
}

// step advances the runner by one frame.
func (sr *ScriptRunner) step(r *Renderer) {
	if sr.done {
		return
	}
	// Let queued input drain first.
	if len(r.injectQueue) > 0 {
		return
	}
	if sr.waitCount > 0 {
		sr.waitCount--
		return
	}
	if sr.cursor >= len(sr.steps) {
		sr.done = true
		return
	}

	st := sr.steps[sr.cursor]
	sr.cursor++

	switch st.Action {
	case "screenshot":
		r.Screenshot(st.Label)
	case "click":
		r.InjectClick(st.X, st.Y)
	case "hover":
		r.InjectHover(st.X, st.Y)
	case "drag":
		r.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			sr.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if sr.cursor >= len(sr.steps) && sr.waitCount == 0 && len(r.injectQueue) == 0 {
		sr.done = true
	}
}
