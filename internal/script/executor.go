package script

import (
	"fmt"
	"strconv"
)

// Executor is the surface a scene command drives. The desktop implements
// it; tests can substitute a recorder. Windows are addressed by title.
type Executor interface {
	// OpenWindow creates a window. Negative coordinates mean "cascade";
	// negative dimensions mean "use the default size".
	OpenWindow(title, kind string, x, y, width, height int) error
	CloseWindow(title string) error
	FocusWindow(title string) error
	MoveWindow(title string, x, y int) error
	ResizeWindow(title string, width, height int) error
	MinimizeWindow(title string) error
	RestoreWindow(title string) error
	MaximizeWindow(title string) error
	UnmaximizeWindow(title string) error
	CollapseWindow(title string) error
	ExpandWindow(title string) error
	LockWindow(title string) error
	UnlockWindow(title string) error
	DockWindow(title, zone string) error
	UndockWindow(title string) error
	Arrange(mode string) error
	ApplyPreset(name string) error
	SetOption(key, value string) error
}

// Apply executes a single command against ex. Sleep is a no-op here;
// playback owns timing.
func Apply(cmd *Command, ex Executor) error {
	switch cmd.Type {
	case CommandType_Open:
		x := atoiOr(cmd.Args[2], -1)
		y := atoiOr(cmd.Args[3], -1)
		w := atoiOr(cmd.Args[4], -1)
		h := atoiOr(cmd.Args[5], -1)
		return ex.OpenWindow(cmd.Args[0], cmd.Args[1], x, y, w, h)
	case CommandType_Close:
		return ex.CloseWindow(cmd.Args[0])
	case CommandType_Focus:
		return ex.FocusWindow(cmd.Args[0])
	case CommandType_Move:
		return ex.MoveWindow(cmd.Args[0], atoiOr(cmd.Args[1], 0), atoiOr(cmd.Args[2], 0))
	case CommandType_Resize:
		return ex.ResizeWindow(cmd.Args[0], atoiOr(cmd.Args[1], 0), atoiOr(cmd.Args[2], 0))
	case CommandType_Minimize:
		return ex.MinimizeWindow(cmd.Args[0])
	case CommandType_Restore:
		return ex.RestoreWindow(cmd.Args[0])
	case CommandType_Maximize:
		return ex.MaximizeWindow(cmd.Args[0])
	case CommandType_Unmaximize:
		return ex.UnmaximizeWindow(cmd.Args[0])
	case CommandType_Collapse:
		return ex.CollapseWindow(cmd.Args[0])
	case CommandType_Expand:
		return ex.ExpandWindow(cmd.Args[0])
	case CommandType_Lock:
		return ex.LockWindow(cmd.Args[0])
	case CommandType_Unlock:
		return ex.UnlockWindow(cmd.Args[0])
	case CommandType_Dock:
		return ex.DockWindow(cmd.Args[0], cmd.Args[1])
	case CommandType_Undock:
		return ex.UndockWindow(cmd.Args[0])
	case CommandType_Arrange:
		return ex.Arrange(cmd.Args[0])
	case CommandType_Preset:
		return ex.ApplyPreset(cmd.Args[0])
	case CommandType_Set:
		return ex.SetOption(cmd.Args[0], cmd.Args[1])
	case CommandType_Sleep:
		return nil
	}
	return fmt.Errorf("unknown command %q", cmd.Type)
}

func atoiOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
