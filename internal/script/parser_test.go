package script

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestParseOpenCommand(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantArgs []string
		wantRaw  string
	}{
		{
			name:     "title only",
			input:    `Open "Chat"`,
			wantArgs: []string{"Chat", "", "", "", "", ""},
			wantRaw:  `Open "Chat"`,
		},
		{
			name:     "all clauses",
			input:    `Open "Chat" as chat at (4, 2) size 90x30`,
			wantArgs: []string{"Chat", "chat", "4", "2", "90", "30"},
			wantRaw:  `Open "Chat" as chat at (4, 2) size 90x30`,
		},
		{
			name:     "kind only",
			input:    `Open "Stats" as dashboard`,
			wantArgs: []string{"Stats", "dashboard", "", "", "", ""},
			wantRaw:  `Open "Stats" as dashboard`,
		},
		{
			name:     "position only",
			input:    `Open "Notes" at (10, 5)`,
			wantArgs: []string{"Notes", "", "10", "5", "", ""},
			wantRaw:  `Open "Notes" at (10, 5)`,
		},
		{
			name:     "size only",
			input:    `Open "Notes" size 50x20`,
			wantArgs: []string{"Notes", "", "", "", "50", "20"},
			wantRaw:  `Open "Notes" size 50x20`,
		},
		{
			name:     "clauses in any order",
			input:    `Open "Notes" size 50x20 as notes`,
			wantArgs: []string{"Notes", "notes", "", "", "50", "20"},
			wantRaw:  `Open "Notes" as notes size 50x20`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commands, errs := ParseFile(tt.input)
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if len(commands) != 1 {
				t.Fatalf("expected 1 command, got %d", len(commands))
			}

			cmd := commands[0]
			if cmd.Type != CommandType_Open {
				t.Errorf("expected Open, got %v", cmd.Type)
			}
			if !reflect.DeepEqual(cmd.Args, tt.wantArgs) {
				t.Errorf("Args: expected %v, got %v", tt.wantArgs, cmd.Args)
			}
			if cmd.Raw != tt.wantRaw {
				t.Errorf("Raw: expected %q, got %q", tt.wantRaw, cmd.Raw)
			}
		})
	}
}

func TestParseWindowCommands(t *testing.T) {
	tests := []struct {
		input    string
		wantType CommandType
	}{
		{`Close "Chat"`, CommandType_Close},
		{`Focus "Chat"`, CommandType_Focus},
		{`Minimize "Chat"`, CommandType_Minimize},
		{`Restore "Chat"`, CommandType_Restore},
		{`Maximize "Chat"`, CommandType_Maximize},
		{`Unmaximize "Chat"`, CommandType_Unmaximize},
		{`Collapse "Chat"`, CommandType_Collapse},
		{`Expand "Chat"`, CommandType_Expand},
		{`Lock "Chat"`, CommandType_Lock},
		{`Unlock "Chat"`, CommandType_Unlock},
		{`Undock "Chat"`, CommandType_Undock},
	}

	for _, tt := range tests {
		t.Run(string(tt.wantType), func(t *testing.T) {
			commands, errs := ParseFile(tt.input)
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if len(commands) != 1 {
				t.Fatalf("expected 1 command, got %d", len(commands))
			}

			cmd := commands[0]
			if cmd.Type != tt.wantType {
				t.Errorf("expected %v, got %v", tt.wantType, cmd.Type)
			}
			if len(cmd.Args) != 1 || cmd.Args[0] != "Chat" {
				t.Errorf("expected args [Chat], got %v", cmd.Args)
			}
		})
	}
}

func TestParseMoveCommand(t *testing.T) {
	commands, errs := ParseFile(`Move "Chat" to (10, 5)`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(commands) != 1 {
		t.Fatalf("expected 1 command, got %d", len(commands))
	}

	cmd := commands[0]
	if cmd.Type != CommandType_Move {
		t.Errorf("expected Move, got %v", cmd.Type)
	}
	want := []string{"Chat", "10", "5"}
	if !reflect.DeepEqual(cmd.Args, want) {
		t.Errorf("Args: expected %v, got %v", want, cmd.Args)
	}
}

func TestParseResizeCommand(t *testing.T) {
	commands, errs := ParseFile(`Resize "Chat" to 100x32`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(commands) != 1 {
		t.Fatalf("expected 1 command, got %d", len(commands))
	}

	cmd := commands[0]
	if cmd.Type != CommandType_Resize {
		t.Errorf("expected Resize, got %v", cmd.Type)
	}
	want := []string{"Chat", "100", "32"}
	if !reflect.DeepEqual(cmd.Args, want) {
		t.Errorf("Args: expected %v, got %v", want, cmd.Args)
	}
}

func TestParseDockCommand(t *testing.T) {
	for _, zone := range []string{"left", "right", "bottom"} {
		t.Run(zone, func(t *testing.T) {
			commands, errs := ParseFile(`Dock "Notes" ` + zone)
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if len(commands) != 1 {
				t.Fatalf("expected 1 command, got %d", len(commands))
			}

			cmd := commands[0]
			if cmd.Type != CommandType_Dock {
				t.Errorf("expected Dock, got %v", cmd.Type)
			}
			want := []string{"Notes", zone}
			if !reflect.DeepEqual(cmd.Args, want) {
				t.Errorf("Args: expected %v, got %v", want, cmd.Args)
			}
		})
	}

	t.Run("unknown zone", func(t *testing.T) {
		commands, errs := ParseFile(`Dock "Notes" top`)
		if len(commands) != 0 {
			t.Errorf("expected no commands, got %d", len(commands))
		}
		if len(errs) != 1 {
			t.Fatalf("expected 1 error, got %v", errs)
		}
		if !strings.Contains(errs[0], "unknown dock zone") {
			t.Errorf("unexpected error: %s", errs[0])
		}
	})
}

func TestParseArrangeCommand(t *testing.T) {
	for _, mode := range []string{"cascade", "tile", "stack"} {
		t.Run(mode, func(t *testing.T) {
			commands, errs := ParseFile(`Arrange ` + mode)
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if len(commands) != 1 {
				t.Fatalf("expected 1 command, got %d", len(commands))
			}

			cmd := commands[0]
			if cmd.Type != CommandType_Arrange {
				t.Errorf("expected Arrange, got %v", cmd.Type)
			}
			if len(cmd.Args) != 1 || cmd.Args[0] != mode {
				t.Errorf("expected args [%s], got %v", mode, cmd.Args)
			}
		})
	}

	t.Run("unknown mode", func(t *testing.T) {
		_, errs := ParseFile(`Arrange spiral`)
		if len(errs) != 1 {
			t.Fatalf("expected 1 error, got %v", errs)
		}
		if !strings.Contains(errs[0], "unknown layout mode") {
			t.Errorf("unexpected error: %s", errs[0])
		}
	})
}

func TestParseSleepCommand(t *testing.T) {
	commands, errs := ParseFile(`Sleep 500ms`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(commands) != 1 {
		t.Fatalf("expected 1 command, got %d", len(commands))
	}

	cmd := commands[0]
	if cmd.Type != CommandType_Sleep {
		t.Errorf("expected Sleep, got %v", cmd.Type)
	}
	if cmd.Delay != 500*time.Millisecond {
		t.Errorf("expected 500ms delay, got %v", cmd.Delay)
	}
}

func TestParseSetCommand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"identifier value", `Set theme dracula`, []string{"theme", "dracula"}},
		{"string value", `Set theme "gruvbox dark"`, []string{"theme", "gruvbox dark"}},
		{"number value", `Set cascade_step 3`, []string{"cascade_step", "3"}},
		{"geometry value", `Set default_size 80x24`, []string{"default_size", "80x24"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commands, errs := ParseFile(tt.input)
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if len(commands) != 1 {
				t.Fatalf("expected 1 command, got %d", len(commands))
			}

			cmd := commands[0]
			if cmd.Type != CommandType_Set {
				t.Errorf("expected Set, got %v", cmd.Type)
			}
			if !reflect.DeepEqual(cmd.Args, tt.want) {
				t.Errorf("Args: expected %v, got %v", tt.want, cmd.Args)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "missing title",
			input:   `Close`,
			wantErr: "Close expects a window title",
		},
		{
			name:    "bad coordinates",
			input:   `Move "Chat" to 10 5`,
			wantErr: "expected ( to open coordinates",
		},
		{
			name:    "missing to",
			input:   `Move "Chat" (10, 5)`,
			wantErr: "Move expects to",
		},
		{
			name:    "resize without geometry",
			input:   `Resize "Chat" to 100 32`,
			wantErr: "Resize expects WxH",
		},
		{
			name:    "unexpected token",
			input:   `Teleport "Chat"`,
			wantErr: "unexpected token",
		},
		{
			name:    "sleep without duration",
			input:   `Sleep fast`,
			wantErr: "Sleep expects a duration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := ParseFile(tt.input)
			if len(errs) == 0 {
				t.Fatal("expected an error, got none")
			}
			if !strings.Contains(errs[0], tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, errs[0])
			}
			if !strings.HasPrefix(errs[0], "line 1:") {
				t.Errorf("expected line prefix on error, got %q", errs[0])
			}
		})
	}
}

func TestParseErrorRecovery(t *testing.T) {
	input := `Open "Chat"
Teleport "Chat"
Arrange tile`

	commands, errs := ParseFile(input)

	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if !strings.HasPrefix(errs[0], "line 2:") {
		t.Errorf("expected error on line 2, got %q", errs[0])
	}

	// Lines before and after the bad one still parse
	if len(commands) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(commands))
	}
	if commands[0].Type != CommandType_Open {
		t.Errorf("expected Open, got %v", commands[0].Type)
	}
	if commands[1].Type != CommandType_Arrange {
		t.Errorf("expected Arrange, got %v", commands[1].Type)
	}
}

func TestParseFullScene(t *testing.T) {
	input := `# Morning layout
Set theme dracula

Open "Chat" as chat at (4, 2) size 90x30
Open "Notes" as notes
Sleep 250ms

Move "Chat" to (10, 5)
Resize "Chat" to 100x32
Dock "Notes" left
Undock "Notes"
Arrange tile
Preset "sanctuary"
Close "Chat"`

	commands, errs := ParseFile(input)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	wantTypes := []CommandType{
		CommandType_Set,
		CommandType_Open,
		CommandType_Open,
		CommandType_Sleep,
		CommandType_Move,
		CommandType_Resize,
		CommandType_Dock,
		CommandType_Undock,
		CommandType_Arrange,
		CommandType_Preset,
		CommandType_Close,
	}

	if len(commands) != len(wantTypes) {
		t.Fatalf("expected %d commands, got %d", len(wantTypes), len(commands))
	}

	for i, want := range wantTypes {
		if commands[i].Type != want {
			t.Errorf("command %d: expected %v, got %v", i, want, commands[i].Type)
		}
	}
}

func TestParseGeometryHelper(t *testing.T) {
	w, h, err := ParseGeometry("80x24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 80 || h != 24 {
		t.Errorf("expected 80x24, got %dx%d", w, h)
	}

	if _, _, err := ParseGeometry("80"); err == nil {
		t.Error("expected error for missing separator")
	}
	if _, _, err := ParseGeometry("axb"); err == nil {
		t.Error("expected error for non-numeric geometry")
	}
}
