package spritecut

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// scriptStep is a single action in an editor script.
type scriptStep struct {
	Action string   `json:"action"`
	Label  string   `json:"label,omitempty"`
	Name   string   `json:"name,omitempty"`
	Rate   int      `json:"rate,omitempty"`
	Keys   []string `json:"keys,omitempty"`
	X      float64  `json:"x,omitempty"`
	Y      float64  `json:"y,omitempty"`
	FromX  float64  `json:"fromX,omitempty"`
	FromY  float64  `json:"fromY,omitempty"`
	ToX    float64  `json:"toX,omitempty"`
	ToY    float64  `json:"toY,omitempty"`
	Delta  float64  `json:"delta,omitempty"`
	Frames int      `json:"frames,omitempty"`

	keys []ebiten.Key
}

// script is the top-level JSON structure for an editor script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a sequence of editor actions across ticks, for
// automated runs and visual checks. Attach with Editor.SetScript.
//
// Actions: create {name, rate}, select {name}, click {x, y},
// drag {fromX, fromY, toX, toY, frames}, key {keys}, wheel {delta}, play,
// export, screenshot {label}, wait {frames}, quit. Pointer coordinates are
// screen pixels.
type ScriptRunner struct {
	// ExitOnDone ends the game loop once the script has finished.
	ExitOnDone bool

	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i := range sc.Steps {
		st := &sc.Steps[i]
		for _, name := range st.Keys {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("parse script: step %d: %w", i, err)
			}
			st.keys = append(st.keys, k)
		}
		if st.Action == "key" && len(st.keys) == 0 {
			return nil, fmt.Errorf("parse script: step %d: key action without keys", i)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// LoadScriptFile reads and parses a script file.
func LoadScriptFile(path string) (*ScriptRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return LoadScript(data)
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick. Called from Editor.Tick before
// input processing.
func (r *ScriptRunner) step(e *Editor) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(e.injectQueue) > 0 {
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
	case "create":
		if _, err := e.Store.CreateTrack(st.Name, st.Rate); err != nil {
			e.Logs.Add(err.Error(), true)
		}
	case "select":
		if err := e.Store.SelectTrack(st.Name); err != nil {
			e.Logs.Add(err.Error(), true)
		}
	case "click":
		e.InjectClick(st.X, st.Y)
	case "drag":
		e.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "key":
		e.InjectChord(st.keys...)
	case "wheel":
		e.InjectWheel(st.Delta)
	case "play":
		e.TogglePlayback()
	case "export":
		e.ExportNow()
	case "screenshot":
		e.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "quit":
		e.Quit()
	default:
		e.Logs.Add(fmt.Sprintf("script: unknown action %q", st.Action), true)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(e.injectQueue) == 0 {
		r.done = true
	}
}
