package token

type TokenType string

const (
	// Single character tokens
	TokenLParen   TokenType = "LPAREN"   // (
	TokenRParen   TokenType = "RPAREN"   // )
	TokenAssign   TokenType = "ASSIGN"   // =
	TokenPlus     TokenType = "PLUS"     // +
	TokenMinus    TokenType = "MINUS"    // -
	TokenAsterisk TokenType = "ASTERISK" // *
	TokenSlash    TokenType = "SLASH"    // / (division)

	// Literals & Identifiers
	TokenInt   TokenType = "INT"   // 43
	TokenReal  TokenType = "REAL"  // 4.3
	TokenIdent TokenType = "IDENT" // Identifier (e.g. variable name)

	// Special
	TokenEOF     TokenType = "EOF"
	TokenIllegal TokenType = "ILLEGAL"
)

type Token struct {
	Type    TokenType
	Literal string
	Column  int // 1-indexed column within the statement
}
