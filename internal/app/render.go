package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/daddyholnes/podplay-sanctuary-build/internal/config"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/pool"
	"github.com/daddyholnes/podplay-sanctuary-build/internal/wm"
)

// GetCanvas composes the full frame: every visible window as a layer, plus
// overlays and the taskbar when render is true. Hit-testing callers pass
// false to reuse the window layers without the overlay cost.
func (d *Desktop) GetCanvas(render bool) *lipgloss.Compositor {
	canvas := lipgloss.NewCompositor()

	layersPtr := pool.GetLayerSlice()
	layers := (*layersPtr)[:0]
	defer pool.PutLayerSlice(layersPtr)

	topMargin := d.topMargin()
	viewportWidth := d.Width
	viewportHeight := d.windowArea().Height

	// Consistent window style. The top border is drawn by decorateWindow
	// so it can carry the buttons.
	box := lipgloss.NewStyle().
		Align(lipgloss.Left).
		AlignVertical(lipgloss.Top).
		Foreground(lipgloss.Color("#FFFFFF")).
		Border(getBorder()).
		BorderTop(false)

	for _, window := range d.Manager.Windows() {
		// Minimized windows live in the taskbar
		if window.State == wm.StateMinimized {
			continue
		}

		frame := window.Frame()

		// Manager coordinates are relative to the window area; a top
		// taskbar pushes that area down by its height.
		screenY := frame.Y + topMargin

		// Visibility culling with a small margin so partially dragged-out
		// windows still draw their visible sliver
		margin := 5
		isVisible := frame.X+frame.Width >= -margin &&
			frame.X <= viewportWidth+margin &&
			screenY+frame.Height >= -margin &&
			screenY <= viewportHeight+topMargin+margin

		if !isVisible {
			continue
		}

		borderColor := d.borderColorFor(window)

		content := d.renderContent(window)

		focused := d.Manager.FocusedWindow()
		isRenaming := d.RenamingWindow && focused != nil && focused.ID == window.ID

		boxContent := decorateWindow(
			box.Width(frame.Width).
				Height(frame.Height-1).
				BorderForeground(borderColor).
				Render(content),
			borderColor,
			window,
			isRenaming,
			d.RenameBuffer,
		)

		clippedContent, finalX, finalY := clipWindowContent(
			boxContent,
			frame.X, screenY,
			viewportWidth, viewportHeight+topMargin,
		)

		layer := lipgloss.NewLayer(clippedContent).
			X(finalX).Y(finalY).Z(window.Z).ID(window.ID)
		layers = append(layers, layer)
	}

	if render {
		layers = append(layers, d.renderOverlays()...)

		if config.TaskbarPosition != "hidden" {
			layers = append(layers, d.renderTaskbar())
		}
	}

	canvas.AddLayers(layers...)
	return canvas
}

// renderContent asks the window's renderer for the interior at the current
// inner dimensions. Collapsed windows have no interior.
func (d *Desktop) renderContent(window *wm.Window) string {
	if window.Collapsed && window.State != wm.StateMaximized {
		return ""
	}
	if window.Content == nil {
		return ""
	}

	innerWidth := max(window.Width-2, 0)
	innerHeight := max(window.Height-2, 0)
	return window.Content.Render(innerWidth, innerHeight)
}

// View returns the rendered view.
func (d *Desktop) View() tea.View {
	var view tea.View

	// Sprint instead of Sprintln to avoid a trailing newline
	view.SetContent(lipgloss.Sprint(d.GetCanvas(true).Render()))

	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	view.ReportFocus = true
	view.DisableBracketedPasteMode = false

	return view
}
