// Package ebiten provides Dear ImGui backend integration for the
// Ebiten game engine, used by the desktop frontend's debug overlay.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend
// implementation. Call BeginFrame before rendering overlay widgets and
// EndFrame after, then Draw the overlay on top of the game image.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// New creates the backend.
func New() *ImguiBackend {
	return &ImguiBackend{EbitenBackend: ebitenbackend.NewEbitenBackend()}
}
