//go:build !ebiten

package ui

import "lifeboard/internal/core"

// Source is what the HUD displays and adjusts.
type Source interface {
	core.ParameterProvider
	core.ParameterControlsProvider
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(Source, int, string) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int) {}
