package hud

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"triangle-viewer/internal/viewer"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the FPS text every N frames to reduce allocations.
	updateInterval = 30
)

var textColor = rl.NewColor(40, 40, 40, 255)

// HUD draws the on-screen overlay: selected vertex and live vertex colors top-left, FPS top-right.
type HUD struct {
	ShowState   bool
	ShowFPS     bool
	frameCount  uint32
	lastFpsText string
}

// New returns a HUD with both overlays hidden.
func New() *HUD {
	return &HUD{}
}

// SetShowState sets whether the selection and color lines are drawn.
func (h *HUD) SetShowState(show bool) {
	h.ShowState = show
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (h *HUD) SetShowFPS(show bool) {
	h.ShowFPS = show
}

// Lines returns the overlay text for s.
func Lines(s *viewer.State) []string {
	lines := make([]string, 0, 2+len(s.Colors))
	lines = append(lines, "Selected vertex: "+s.SelectedLabel())
	lines = append(lines, s.ColorLines()...)
	if s.Dragging {
		lines = append(lines, fmt.Sprintf("Rotating (%.2f, %.2f)", s.RotX, s.RotY))
	}
	return lines
}

// Draw renders the enabled overlays. Call after the triangle and before the frame is presented.
func (h *HUD) Draw(s *viewer.State) {
	if h.ShowState {
		y := int32(padding)
		for _, line := range Lines(s) {
			rl.DrawText(line, padding, y, fontSize, textColor)
			y += lineHeight
		}
	}

	if !h.ShowFPS {
		return
	}
	h.frameCount++
	if h.lastFpsText == "" || h.frameCount%updateInterval == 0 {
		h.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}
	w := rl.MeasureText(h.lastFpsText, fontSize)
	x := int32(rl.GetScreenWidth()) - w - padding
	rl.DrawText(h.lastFpsText, x, padding, fontSize, rl.DarkGreen)
}
