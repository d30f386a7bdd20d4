// Package script implements the scene file format: a small declarative
// language for driving the desktop from a file. A scene is a sequence of
// window operations (Open, Move, Dock, Arrange, ...) replayed against a
// running desktop, one command per line.
package script

// TokenType identifies the type of a lexed token
type TokenType string

const (
	// Special tokens
	TOKEN_EOF     TokenType = "EOF"
	TOKEN_ILLEGAL TokenType = "ILLEGAL"
	TOKEN_NEWLINE TokenType = "NEWLINE"

	// Literals
	TOKEN_STRING     TokenType = "STRING"     // "Chat"
	TOKEN_NUMBER     TokenType = "NUMBER"     // 42
	TOKEN_DURATION   TokenType = "DURATION"   // 500ms, 1.5s
	TOKEN_GEOMETRY   TokenType = "GEOMETRY"   // 80x24
	TOKEN_IDENTIFIER TokenType = "IDENTIFIER" // chat, left, tile

	// Punctuation
	TOKEN_LPAREN TokenType = "("
	TOKEN_RPAREN TokenType = ")"
	TOKEN_COMMA  TokenType = ","

	// Commands
	TOKEN_OPEN       TokenType = "Open"
	TOKEN_CLOSE      TokenType = "Close"
	TOKEN_FOCUS      TokenType = "Focus"
	TOKEN_MOVE       TokenType = "Move"
	TOKEN_RESIZE     TokenType = "Resize"
	TOKEN_MINIMIZE   TokenType = "Minimize"
	TOKEN_RESTORE    TokenType = "Restore"
	TOKEN_MAXIMIZE   TokenType = "Maximize"
	TOKEN_UNMAXIMIZE TokenType = "Unmaximize"
	TOKEN_COLLAPSE   TokenType = "Collapse"
	TOKEN_EXPAND     TokenType = "Expand"
	TOKEN_LOCK       TokenType = "Lock"
	TOKEN_UNLOCK     TokenType = "Unlock"
	TOKEN_DOCK       TokenType = "Dock"
	TOKEN_UNDOCK     TokenType = "Undock"
	TOKEN_ARRANGE    TokenType = "Arrange"
	TOKEN_PRESET     TokenType = "Preset"
	TOKEN_SLEEP      TokenType = "Sleep"
	TOKEN_SET        TokenType = "Set"

	// Clause keywords
	TOKEN_AS   TokenType = "as"
	TOKEN_AT   TokenType = "at"
	TOKEN_TO   TokenType = "to"
	TOKEN_SIZE TokenType = "size"
)

// Token is a single lexed token with its position in the source
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// IsCommand returns true if the token type starts a command
func (tt TokenType) IsCommand() bool {
	switch tt {
	case TOKEN_OPEN, TOKEN_CLOSE, TOKEN_FOCUS, TOKEN_MOVE, TOKEN_RESIZE,
		TOKEN_MINIMIZE, TOKEN_RESTORE, TOKEN_MAXIMIZE, TOKEN_UNMAXIMIZE,
		TOKEN_COLLAPSE, TOKEN_EXPAND, TOKEN_LOCK, TOKEN_UNLOCK,
		TOKEN_DOCK, TOKEN_UNDOCK, TOKEN_ARRANGE, TOKEN_PRESET,
		TOKEN_SLEEP, TOKEN_SET:
		return true
	}
	return false
}

// IsClause returns true if the token is a clause keyword (as, at, to, size)
func (tt TokenType) IsClause() bool {
	switch tt {
	case TOKEN_AS, TOKEN_AT, TOKEN_TO, TOKEN_SIZE:
		return true
	}
	return false
}

// KeywordTokenMap maps scene file keywords to token types. Command words
// are capitalized, clause words are lowercase; lookups are case sensitive.
var KeywordTokenMap = map[string]TokenType{
	// Window lifecycle
	"Open":  TOKEN_OPEN,
	"Close": TOKEN_CLOSE,
	"Focus": TOKEN_FOCUS,

	// Geometry
	"Move":   TOKEN_MOVE,
	"Resize": TOKEN_RESIZE,

	// Window state
	"Minimize":   TOKEN_MINIMIZE,
	"Restore":    TOKEN_RESTORE,
	"Maximize":   TOKEN_MAXIMIZE,
	"Unmaximize": TOKEN_UNMAXIMIZE,
	"Collapse":   TOKEN_COLLAPSE,
	"Expand":     TOKEN_EXPAND,
	"Lock":       TOKEN_LOCK,
	"Unlock":     TOKEN_UNLOCK,

	// Docking
	"Dock":   TOKEN_DOCK,
	"Undock": TOKEN_UNDOCK,

	// Layout
	"Arrange": TOKEN_ARRANGE,
	"Preset":  TOKEN_PRESET,

	// Control
	"Sleep": TOKEN_SLEEP,
	"Set":   TOKEN_SET,

	// Clauses
	"as":   TOKEN_AS,
	"at":   TOKEN_AT,
	"to":   TOKEN_TO,
	"size": TOKEN_SIZE,
}

// LookupKeyword returns the token type for a keyword, or TOKEN_IDENTIFIER if not a keyword
func LookupKeyword(ident string) TokenType {
	if tt, ok := KeywordTokenMap[ident]; ok {
		return tt
	}
	return TOKEN_IDENTIFIER
}
