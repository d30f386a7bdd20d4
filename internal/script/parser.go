package script

import (
	"fmt"
	"strings"
)

// Parser parses scene files into commands
type Parser struct {
	lexer   *Lexer
	curTok  Token
	peekTok Token
	errors  []string
}

// NewParser creates a new parser from a lexer
func NewParser(l *Lexer) *Parser {
	p := &Parser{
		lexer:  l,
		errors: []string{},
	}
	p.nextToken()
	p.nextToken()
	return p
}

// nextToken advances to the next token
func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.lexer.NextToken()
}

// Parse parses the entire scene file and returns all commands
func (p *Parser) Parse() []Command {
	var commands []Command

	for p.curTok.Type != TOKEN_EOF {
		// Skip newlines
		if p.curTok.Type == TOKEN_NEWLINE {
			p.nextToken()
			continue
		}

		cmd, ok := p.parseCommand()
		if !ok {
			p.nextToken()
			continue
		}

		commands = append(commands, cmd)
	}

	return commands
}

// parseCommand parses a single command
func (p *Parser) parseCommand() (Command, bool) {
	var cmd Command
	cmd.Line = p.curTok.Line
	cmd.Column = p.curTok.Column

	// Skip any leading newlines
	for p.curTok.Type == TOKEN_NEWLINE {
		p.nextToken()
	}

	if p.curTok.Type == TOKEN_EOF {
		return cmd, false
	}

	switch p.curTok.Type {
	case TOKEN_OPEN:
		return p.parseOpenCommand()
	case TOKEN_CLOSE:
		return p.parseWindowCommand(CommandType_Close)
	case TOKEN_FOCUS:
		return p.parseWindowCommand(CommandType_Focus)
	case TOKEN_MOVE:
		return p.parseMoveCommand()
	case TOKEN_RESIZE:
		return p.parseResizeCommand()
	case TOKEN_MINIMIZE:
		return p.parseWindowCommand(CommandType_Minimize)
	case TOKEN_RESTORE:
		return p.parseWindowCommand(CommandType_Restore)
	case TOKEN_MAXIMIZE:
		return p.parseWindowCommand(CommandType_Maximize)
	case TOKEN_UNMAXIMIZE:
		return p.parseWindowCommand(CommandType_Unmaximize)
	case TOKEN_COLLAPSE:
		return p.parseWindowCommand(CommandType_Collapse)
	case TOKEN_EXPAND:
		return p.parseWindowCommand(CommandType_Expand)
	case TOKEN_LOCK:
		return p.parseWindowCommand(CommandType_Lock)
	case TOKEN_UNLOCK:
		return p.parseWindowCommand(CommandType_Unlock)
	case TOKEN_DOCK:
		return p.parseDockCommand()
	case TOKEN_UNDOCK:
		return p.parseWindowCommand(CommandType_Undock)
	case TOKEN_ARRANGE:
		return p.parseArrangeCommand()
	case TOKEN_PRESET:
		return p.parsePresetCommand()
	case TOKEN_SLEEP:
		return p.parseSleepCommand()
	case TOKEN_SET:
		return p.parseSetCommand()
	default:
		p.addError(fmt.Sprintf("unexpected token: %v", p.curTok.Type))
		p.skipToNextLine()
		return cmd, false
	}
}

// parseWindowCommand parses commands of the form <Command> "title"
func (p *Parser) parseWindowCommand(cmdType CommandType) (Command, bool) {
	cmd := Command{
		Type:   cmdType,
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
	}

	p.nextToken() // consume command name

	if p.curTok.Type == TOKEN_STRING {
		cmd.Args = []string{p.curTok.Literal}
		cmd.Raw = fmt.Sprintf("%s %q", cmdType, p.curTok.Literal)
		p.nextToken()
	} else if p.curTok.Type == TOKEN_IDENTIFIER {
		cmd.Args = []string{p.curTok.Literal}
		cmd.Raw = fmt.Sprintf("%s %s", cmdType, p.curTok.Literal)
		p.nextToken()
	} else {
		p.addError(fmt.Sprintf("%s expects a window title, got %v", cmdType, p.curTok.Type))
		p.skipToNextLine()
		return cmd, false
	}

	if p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.skipToNextLine()
	}

	return cmd, true
}

// parseOpenCommand parses Open "title" [as kind] [at (x, y)] [size WxH]
func (p *Parser) parseOpenCommand() (Command, bool) {
	cmd := Command{
		Type:   CommandType_Open,
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
	}

	p.nextToken() // consume Open

	if p.curTok.Type != TOKEN_STRING && p.curTok.Type != TOKEN_IDENTIFIER {
		p.addError(fmt.Sprintf("Open expects a window title, got %v", p.curTok.Type))
		p.skipToNextLine()
		return cmd, false
	}
	title := p.curTok.Literal
	p.nextToken()

	var kind, x, y, w, h string

clauses:
	for {
		switch p.curTok.Type {
		case TOKEN_AS:
			p.nextToken()
			if p.curTok.Type != TOKEN_IDENTIFIER && p.curTok.Type != TOKEN_STRING {
				p.addError(fmt.Sprintf("expected a content kind after as, got %v", p.curTok.Type))
				p.skipToNextLine()
				return cmd, false
			}
			kind = p.curTok.Literal
			p.nextToken()
		case TOKEN_AT:
			p.nextToken()
			var ok bool
			x, y, ok = p.parseCoords()
			if !ok {
				return cmd, false
			}
		case TOKEN_SIZE:
			p.nextToken()
			if p.curTok.Type != TOKEN_GEOMETRY {
				p.addError(fmt.Sprintf("expected WxH after size, got %v", p.curTok.Type))
				p.skipToNextLine()
				return cmd, false
			}
			w, h, _ = strings.Cut(p.curTok.Literal, "x")
			p.nextToken()
		default:
			break clauses
		}
	}

	cmd.Args = []string{title, kind, x, y, w, h}

	var raw strings.Builder
	fmt.Fprintf(&raw, "Open %q", title)
	if kind != "" {
		fmt.Fprintf(&raw, " as %s", kind)
	}
	if x != "" {
		fmt.Fprintf(&raw, " at (%s, %s)", x, y)
	}
	if w != "" {
		fmt.Fprintf(&raw, " size %sx%s", w, h)
	}
	cmd.Raw = raw.String()

	if p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.skipToNextLine()
	}

	return cmd, true
}

// parseMoveCommand parses Move "title" to (x, y)
func (p *Parser) parseMoveCommand() (Command, bool) {
	cmd := Command{
		Type:   CommandType_Move,
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
	}

	p.nextToken() // consume Move

	if p.curTok.Type != TOKEN_STRING && p.curTok.Type != TOKEN_IDENTIFIER {
		p.addError(fmt.Sprintf("Move expects a window title, got %v", p.curTok.Type))
		p.skipToNextLine()
		return cmd, false
	}
	title := p.curTok.Literal
	p.nextToken()

	if p.curTok.Type != TOKEN_TO {
		p.addError(fmt.Sprintf("Move expects to, got %v", p.curTok.Type))
		p.skipToNextLine()
		return cmd, false
	}
	p.nextToken()

	x, y, ok := p.parseCoords()
	if !ok {
		return cmd, false
	}

	cmd.Args = []string{title, x, y}
	cmd.Raw = fmt.Sprintf("Move %q to (%s, %s)", title, x, y)

	if p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.skipToNextLine()
	}

	return cmd, true
}

// parseResizeCommand parses Resize "title" to WxH
func (p *Parser) parseResizeCommand() (Command, bool) {
	cmd := Command{
		Type:   CommandType_Resize,
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
	}

	p.nextToken() // consume Resize

	if p.curTok.Type != TOKEN_STRING && p.curTok.Type != TOKEN_IDENTIFIER {
		p.addError(fmt.Sprintf("Resize expects a window title, got %v", p.curTok.Type))
		p.skipToNextLine()
		return cmd, false
	}
	title := p.curTok.Literal
	p.nextToken()

	if p.curTok.Type != TOKEN_TO {
		p.addError(fmt.Sprintf("Resize expects to, got %v", p.curTok.Type))
		p.skipToNextLine()
		return cmd, false
	}
	p.nextToken()

	if p.curTok.Type != TOKEN_GEOMETRY {
		p.addError(fmt.Sprintf("Resize expects WxH, got %v", p.curTok.Type))
		p.skipToNextLine()
		return cmd, false
	}
	w, h, _ := strings.Cut(p.curTok.Literal, "x")
	p.nextToken()

	cmd.Args = []string{title, w, h}
	cmd.Raw = fmt.Sprintf("Resize %q to %sx%s", title, w, h)

	if p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.skipToNextLine()
	}

	return cmd, true
}

// parseDockCommand parses Dock "title" left|right|bottom
func (p *Parser) parseDockCommand() (Command, bool) {
	cmd := Command{
		Type:   CommandType_Dock,
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
	}

	p.nextToken() // consume Dock

	if p.curTok.Type != TOKEN_STRING && p.curTok.Type != TOKEN_IDENTIFIER {
		p.addError(fmt.Sprintf("Dock expects a window title, got %v", p.curTok.Type))
		p.skipToNextLine()
		return cmd, false
	}
	title := p.curTok.Literal
	p.nextToken()

	if p.curTok.Type != TOKEN_IDENTIFIER {
		p.addError(fmt.Sprintf("Dock expects a zone, got %v", p.curTok.Type))
		p.skipToNextLine()
		return cmd, false
	}
	zone := p.curTok.Literal
	switch zone {
	case "left", "right", "bottom":
	default:
		p.addError(fmt.Sprintf("unknown dock zone %q (want left, right or bottom)", zone))
		p.skipToNextLine()
		return cmd, false
	}
	p.nextToken()

	cmd.Args = []string{title, zone}
	cmd.Raw = fmt.Sprintf("Dock %q %s", title, zone)

	if p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.skipToNextLine()
	}

	return cmd, true
}

// parseArrangeCommand parses Arrange cascade|tile|stack
func (p *Parser) parseArrangeCommand() (Command, bool) {
	cmd := Command{
		Type:   CommandType_Arrange,
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
	}

	p.nextToken() // consume Arrange

	if p.curTok.Type != TOKEN_IDENTIFIER {
		p.addError(fmt.Sprintf("Arrange expects a layout mode, got %v", p.curTok.Type))
		p.skipToNextLine()
		return cmd, false
	}
	mode := p.curTok.Literal
	switch mode {
	case "cascade", "tile", "stack":
	default:
		p.addError(fmt.Sprintf("unknown layout mode %q (want cascade, tile or stack)", mode))
		p.skipToNextLine()
		return cmd, false
	}
	p.nextToken()

	cmd.Args = []string{mode}
	cmd.Raw = fmt.Sprintf("Arrange %s", mode)

	if p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.skipToNextLine()
	}

	return cmd, true
}

// parsePresetCommand parses Preset "name"
func (p *Parser) parsePresetCommand() (Command, bool) {
	cmd := Command{
		Type:   CommandType_Preset,
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
	}

	p.nextToken() // consume Preset

	if p.curTok.Type == TOKEN_STRING || p.curTok.Type == TOKEN_IDENTIFIER {
		cmd.Args = []string{p.curTok.Literal}
		cmd.Raw = fmt.Sprintf("Preset %q", p.curTok.Literal)
		p.nextToken()
	} else {
		p.addError(fmt.Sprintf("Preset expects a name, got %v", p.curTok.Type))
		p.skipToNextLine()
		return cmd, false
	}

	if p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.skipToNextLine()
	}

	return cmd, true
}

// parseSleepCommand parses Sleep <duration> commands
func (p *Parser) parseSleepCommand() (Command, bool) {
	cmd := Command{
		Type:   CommandType_Sleep,
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
	}

	p.nextToken() // consume Sleep

	if p.curTok.Type == TOKEN_DURATION {
		duration, err := ParseDuration(p.curTok.Literal)
		if err != nil {
			p.addError(fmt.Sprintf("invalid duration: %s", p.curTok.Literal))
		}
		cmd.Args = []string{p.curTok.Literal}
		cmd.Delay = duration
		cmd.Raw = fmt.Sprintf("Sleep %s", p.curTok.Literal)
		p.nextToken()
	} else {
		p.addError(fmt.Sprintf("Sleep expects a duration, got %v", p.curTok.Type))
		p.skipToNextLine()
		return cmd, false
	}

	if p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.skipToNextLine()
	}

	return cmd, true
}

// parseSetCommand parses Set <key> <value> commands
func (p *Parser) parseSetCommand() (Command, bool) {
	cmd := Command{
		Type:   CommandType_Set,
		Line:   p.curTok.Line,
		Column: p.curTok.Column,
	}

	p.nextToken() // consume Set

	if p.curTok.Type != TOKEN_IDENTIFIER {
		p.addError("Set expects a key")
		p.skipToNextLine()
		return cmd, false
	}
	key := p.curTok.Literal
	p.nextToken()

	if p.curTok.Type == TOKEN_IDENTIFIER || p.curTok.Type == TOKEN_STRING ||
		p.curTok.Type == TOKEN_NUMBER || p.curTok.Type == TOKEN_DURATION ||
		p.curTok.Type == TOKEN_GEOMETRY {
		value := p.curTok.Literal
		cmd.Args = []string{key, value}
		cmd.Raw = fmt.Sprintf("Set %s %s", key, value)
		p.nextToken()
	} else {
		p.addError("Set expects a value")
		p.skipToNextLine()
		return cmd, false
	}

	if p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.skipToNextLine()
	}

	return cmd, true
}

// parseCoords parses a (x, y) coordinate pair
func (p *Parser) parseCoords() (string, string, bool) {
	if p.curTok.Type != TOKEN_LPAREN {
		p.addError(fmt.Sprintf("expected ( to open coordinates, got %v", p.curTok.Type))
		p.skipToNextLine()
		return "", "", false
	}
	p.nextToken()

	if p.curTok.Type != TOKEN_NUMBER {
		p.addError(fmt.Sprintf("expected x coordinate, got %v", p.curTok.Type))
		p.skipToNextLine()
		return "", "", false
	}
	x := p.curTok.Literal
	p.nextToken()

	if p.curTok.Type != TOKEN_COMMA {
		p.addError(fmt.Sprintf("expected , between coordinates, got %v", p.curTok.Type))
		p.skipToNextLine()
		return "", "", false
	}
	p.nextToken()

	if p.curTok.Type != TOKEN_NUMBER {
		p.addError(fmt.Sprintf("expected y coordinate, got %v", p.curTok.Type))
		p.skipToNextLine()
		return "", "", false
	}
	y := p.curTok.Literal
	p.nextToken()

	if p.curTok.Type != TOKEN_RPAREN {
		p.addError(fmt.Sprintf("expected ) to close coordinates, got %v", p.curTok.Type))
		p.skipToNextLine()
		return "", "", false
	}
	p.nextToken()

	return x, y, true
}

// skipToNextLine skips tokens until the next newline
func (p *Parser) skipToNextLine() {
	for p.curTok.Type != TOKEN_NEWLINE && p.curTok.Type != TOKEN_EOF {
		p.nextToken()
	}
}

// addError adds an error to the parser's error list
func (p *Parser) addError(msg string) {
	p.errors = append(p.errors, fmt.Sprintf("line %d: %s", p.curTok.Line, msg))
}

// Errors returns the list of parser errors
func (p *Parser) Errors() []string {
	return p.errors
}

// ParseFile parses a scene file from a string
func ParseFile(content string) ([]Command, []string) {
	l := New(content)
	p := NewParser(l)
	commands := p.Parse()
	return commands, p.Errors()
}
