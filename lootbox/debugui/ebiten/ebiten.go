// Package ebiten provides Dear ImGui backend integration for Ebiten-hosted
// loot-crate scenes.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend. Hosts call
// BeginFrame before running the scheduler, EndFrame after, and Draw from the
// Ebiten draw callback.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// New creates a backend and its window.
func New(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	return &ImguiBackend{EbitenBackend: backend}
}
