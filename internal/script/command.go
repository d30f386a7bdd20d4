package script

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CommandType identifies a scene command
type CommandType string

// Scene command types. Args layouts are fixed per type:
//
//	Open       [title, kind, x, y, w, h]  (kind and geometry may be "")
//	Move       [title, x, y]
//	Resize     [title, w, h]
//	Dock       [title, zone]
//	Arrange    [mode]
//	Preset     [name]
//	Sleep      [duration]
//	Set        [key, value]
//	all others [title]
const (
	CommandType_Open       CommandType = "Open"
	CommandType_Close      CommandType = "Close"
	CommandType_Focus      CommandType = "Focus"
	CommandType_Move       CommandType = "Move"
	CommandType_Resize     CommandType = "Resize"
	CommandType_Minimize   CommandType = "Minimize"
	CommandType_Restore    CommandType = "Restore"
	CommandType_Maximize   CommandType = "Maximize"
	CommandType_Unmaximize CommandType = "Unmaximize"
	CommandType_Collapse   CommandType = "Collapse"
	CommandType_Expand     CommandType = "Expand"
	CommandType_Lock       CommandType = "Lock"
	CommandType_Unlock     CommandType = "Unlock"
	CommandType_Dock       CommandType = "Dock"
	CommandType_Undock     CommandType = "Undock"
	CommandType_Arrange    CommandType = "Arrange"
	CommandType_Preset     CommandType = "Preset"
	CommandType_Sleep      CommandType = "Sleep"
	CommandType_Set        CommandType = "Set"
)

// Command is a single parsed scene command
type Command struct {
	Type   CommandType
	Args   []string
	Delay  time.Duration // only set for Sleep
	Line   int
	Column int
	Raw    string // original source text, reconstructed
}

// String returns a human-readable form of the command
func (c *Command) String() string {
	if c.Raw != "" {
		return c.Raw
	}
	if len(c.Args) == 0 {
		return string(c.Type)
	}
	return fmt.Sprintf("%s %s", c.Type, strings.Join(c.Args, " "))
}

// ParseDuration parses a duration literal like 500ms or 1.5s
func ParseDuration(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}

// ParseGeometry parses a geometry literal like 80x24 into width and height
func ParseGeometry(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid geometry %q", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid geometry %q", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid geometry %q", s)
	}
	return w, h, nil
}
