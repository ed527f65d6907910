package lexer

import (
	"strings"

	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/token"
)

// Lexer tokenizes a single statement. Input is one line of source; there is
// no notion of line numbers, only columns.
type Lexer struct {
	input        string
	position     int  // current char index
	readPosition int  // next char index
	ch           byte // current char

	column int // current column number (1-indexed)
}

func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, column: 0}
	l.readChar()
	return l
}

// ResetPosition rewinds the lexer so the statement can be scanned again.
func (l *Lexer) ResetPosition() {
	l.position = 0
	l.readPosition = 0
	l.column = 0 // readChar increments this to 1, so start at 0
	l.ch = 0
	l.readChar()
}

// readChar advances the lexer's position and updates the current character.
// It handles EOF and tracks the column number correctly.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NULL (EOF)
	} else {
		l.ch = l.input[l.readPosition]
	}

	l.position = l.readPosition
	l.readPosition++

	if l.ch != 0 {
		l.column++
	}
}

// Returns the next character without consuming it
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	startCol := l.column

	switch l.ch {
	case '=':
		l.readChar()
		return l.newToken(token.TokenAssign, "=", startCol)
	case '(':
		l.readChar()
		return l.newToken(token.TokenLParen, "(", startCol)
	case ')':
		l.readChar()
		return l.newToken(token.TokenRParen, ")", startCol)
	case '+':
		l.readChar()
		return l.newToken(token.TokenPlus, "+", startCol)
	case '-':
		l.readChar()
		return l.newToken(token.TokenMinus, "-", startCol)
	case '*':
		l.readChar()
		return l.newToken(token.TokenAsterisk, "*", startCol)
	case '/':
		l.readChar()
		return l.newToken(token.TokenSlash, "/", startCol)
	case 0:
		// EOF. Do NOT call l.readChar() here.
		return l.newToken(token.TokenEOF, "", startCol)
	default:
		if isLetter(l.ch) {
			return l.newToken(token.TokenIdent, l.readIdentifier(), startCol)
		} else if isDigit(l.ch) || l.ch == '.' {
			return l.readNumber(startCol)
		}
		tok := l.newToken(token.TokenIllegal, string(l.ch), startCol)
		l.readChar()
		return tok
	}
}

// newToken is a helper to create a token.Token struct
func (l *Lexer) newToken(tokenType token.TokenType, literal string, col int) token.Token {
	return token.Token{Type: tokenType, Literal: literal, Column: col}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\n' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber scans an integer or real literal. A literal may contain at most
// one decimal point; its presence is what tags the token as real. Bare-dot
// forms are normalized so they always parse as floats: ".5" -> "0.5",
// "5." -> "5.0".
func (l *Lexer) readNumber(startCol int) token.Token {
	start := l.position
	sawDot := false
	for isDigit(l.ch) || (l.ch == '.' && !sawDot) {
		if l.ch == '.' {
			sawDot = true
		}
		l.readChar()
	}
	literal := l.input[start:l.position]

	if !strings.Contains(literal, ".") {
		return l.newToken(token.TokenInt, literal, startCol)
	}
	if strings.HasPrefix(literal, ".") {
		literal = "0" + literal
	}
	if strings.HasSuffix(literal, ".") {
		literal = literal + "0"
	}
	return l.newToken(token.TokenReal, literal, startCol)
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
