// Package debugui provides immediate-mode debug panels for loot-crate scenes
// using Dear ImGui. Panels render inside the frame driven by the host's
// scheduler; input capture state is exposed so the host can keep taps from
// leaking through ImGui windows.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/lootdrop/lootbox"
)

// Panel renders one ImGui window per frame.
type Panel interface {
	Render()
}

// InputState tracks Dear ImGui's input capture state. Hosts consult it to
// decide whether a mouse event belongs to the UI or to the scene.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// PanelSystem renders all registered panels once per frame and refreshes the
// shared InputState. Register it after the gameplay systems so panels show
// this frame's state.
type PanelSystem struct {
	Input  InputState
	panels []Panel
}

// Add appends a panel to the render order.
func (s *PanelSystem) Add(p Panel) {
	s.panels = append(s.panels, p)
}

// Execute updates input capture state and renders every panel.
func (s *PanelSystem) Execute(frame *lootbox.Frame) {
	io := imgui.CurrentIO()
	s.Input.WantCaptureMouse = io.WantCaptureMouse()
	s.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, p := range s.panels {
		p.Render()
	}
}
