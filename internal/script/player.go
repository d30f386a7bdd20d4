package script

import "fmt"

// Player is a cursor over a parsed scene. It tracks position and pause
// state only; the caller owns timing and decides when to apply the
// command under the cursor and move on.
type Player struct {
	commands []Command
	index    int
	paused   bool
	finished bool
}

// NewPlayer positions a cursor at the first command. An empty scene
// counts as already finished.
func NewPlayer(commands []Command) *Player {
	return &Player{
		commands: commands,
		finished: len(commands) == 0,
	}
}

// NextCommand peeks at the command under the cursor without consuming
// it. Returns nil once the scene is exhausted.
func (p *Player) NextCommand() *Command {
	if p.index >= len(p.commands) {
		return nil
	}
	return &p.commands[p.index]
}

// Advance consumes the current command.
func (p *Player) Advance() {
	if p.index < len(p.commands) {
		p.index++
	}
	p.finished = p.index >= len(p.commands)
}

func (p *Player) IsFinished() bool {
	return p.finished
}

func (p *Player) IsPaused() bool {
	return p.paused
}

// SetPaused suspends or resumes playback. The cursor keeps its
// position, so resuming continues from the same command.
func (p *Player) SetPaused(paused bool) {
	p.paused = paused
}

// Reset rewinds to the first command and clears the pause flag.
func (p *Player) Reset() {
	p.index = 0
	p.paused = false
	p.finished = len(p.commands) == 0
}

func (p *Player) CurrentIndex() int {
	return p.index
}

func (p *Player) TotalCommands() int {
	return len(p.commands)
}

// Progress reports playback position as a percentage of commands
// consumed. An empty scene reads as complete.
func (p *Player) Progress() int {
	if len(p.commands) == 0 {
		return 100
	}
	return (p.index * 100) / len(p.commands)
}

// CommandStr renders the command under the cursor for display.
func (p *Player) CommandStr() string {
	if p.index >= len(p.commands) {
		return "Scene finished"
	}
	return p.commands[p.index].String()
}

// PlaybackStatus is the one-line summary shown in the status bar while
// a scene drives the desktop.
func (p *Player) PlaybackStatus() string {
	if p.finished {
		return "scene finished"
	}
	state := "playing"
	if p.paused {
		state = "paused"
	}
	return fmt.Sprintf("%s %d/%d (%d%%)", state, p.index+1, len(p.commands), p.Progress())
}
