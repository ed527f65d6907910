package parser

import (
	"strconv"

	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/ast"
	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/errs"
	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/lexer"
	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/symbols"
	"github.com/Juansebast123/Tabla-simbolos/internal/compiler/token"
)

// Parser is an LL(1) recursive-descent parser over the grammar
//
//	Stmt   → id '=' Exp | Exp
//	Exp    → Term (('+' | '-') Term)*
//	Term   → Factor (('*' | '/') Factor)*
//	Factor → '(' Exp ')' | id | num | '+' Factor | '-' Factor
//
// The starred repetitions are the left-recursion-free form of the grammar's
// Exp'/Term' productions, realized as accumulator loops that fold each new
// operand into the left side of a fresh binary node.
type Parser struct {
	l       *lexer.Lexer
	curTok  token.Token
	peekTok token.Token
}

func NewParser(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	// Prime the curTok/peekTok window
	p.nextToken()
	p.nextToken()
	return p
}

// --- Token Handling ---
func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.l.NextToken()
}

// expect consumes the current token if it has the wanted type, or fails with
// a SyntaxError naming both.
func (p *Parser) expect(tt token.TokenType) (token.Token, error) {
	tok := p.curTok
	if tok.Type == token.TokenIllegal {
		return tok, lexError(tok)
	}
	if tok.Type != tt {
		return tok, errs.New(errs.SyntaxError, tok.Column, "expected %s, found %s (%q)", tt, tok.Type, tok.Literal)
	}
	p.nextToken()
	return tok, nil
}

// lexError surfaces an illegal token from the lexer as a LexError carrying
// the offending character and its column.
func lexError(tok token.Token) error {
	return errs.New(errs.LexError, tok.Column, "unrecognized character %q", tok.Literal)
}

// ParseStatement parses exactly one statement and requires the line to end
// there. On any mismatch it aborts immediately; no partial AST is returned.
func (p *Parser) ParseStatement() (ast.Statement, error) {
	var stmt ast.Statement

	if p.curTok.Type == token.TokenIdent && p.peekTok.Type == token.TokenAssign {
		nameTok := p.curTok
		p.nextToken()
		assignTok := p.curTok
		p.nextToken()

		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt = &ast.AssignStatement{
			Token: assignTok,
			Name:  &ast.Identifier{Token: nameTok, Value: nameTok.Literal},
			Value: value,
		}
	} else {
		first := p.curTok
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt = &ast.ExpressionStatement{Token: first, Expression: expr}
	}

	// The statement must consume the whole line.
	if p.curTok.Type == token.TokenIllegal {
		return nil, lexError(p.curTok)
	}
	if p.curTok.Type != token.TokenEOF {
		return nil, errs.New(errs.SyntaxError, p.curTok.Column,
			"expected %s after statement, found %s (%q)", token.TokenEOF, p.curTok.Type, p.curTok.Literal)
	}
	return stmt, nil
}

// parseExpression handles '+'/'-' with an iterative left fold: the
// accumulator becomes the left child of each newly built binary node.
func (p *Parser) parseExpression() (ast.Expression, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.curTok.Type == token.TokenPlus || p.curTok.Type == token.TokenMinus {
		opTok := p.curTok
		op := ast.OpAdd
		if opTok.Type == token.TokenMinus {
			op = ast.OpSub
		}
		p.nextToken()

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Token: opTok, Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseTerm handles '*'/'/' with the same left-fold accumulation.
func (p *Parser) parseTerm() (ast.Expression, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.curTok.Type == token.TokenAsterisk || p.curTok.Type == token.TokenSlash {
		opTok := p.curTok
		op := ast.OpMul
		if opTok.Type == token.TokenSlash {
			op = ast.OpDiv
		}
		p.nextToken()

		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Token: opTok, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseFactor() (ast.Expression, error) {
	switch p.curTok.Type {
	case token.TokenPlus:
		// Unary plus is a no-op on the AST
		p.nextToken()
		return p.parseFactor()

	case token.TokenMinus:
		// Unary minus lowers to 0 - Factor. The zero's type is settled
		// during resolution to match the operand.
		opTok := p.curTok
		p.nextToken()

		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		zero := &ast.NumberLiteral{Token: opTok, Literal: "0", Typ: symbols.TypeInt}
		return &ast.BinaryExpression{Token: opTok, Op: ast.OpSub, Left: zero, Right: operand, Neg: true}, nil

	case token.TokenLParen:
		p.nextToken()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.TokenRParen); err != nil {
			return nil, err
		}
		// Grouping only steers precedence; the inner expression is the result
		return expr, nil

	case token.TokenInt:
		tok := p.curTok
		p.nextToken()
		v, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, errs.New(errs.SyntaxError, tok.Column, "integer literal %q out of range", tok.Literal)
		}
		return &ast.NumberLiteral{Token: tok, Literal: tok.Literal, Typ: symbols.TypeInt, Int: v}, nil

	case token.TokenReal:
		tok := p.curTok
		p.nextToken()
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, errs.New(errs.SyntaxError, tok.Column, "real literal %q out of range", tok.Literal)
		}
		return &ast.NumberLiteral{Token: tok, Literal: tok.Literal, Typ: symbols.TypeReal, Real: v}, nil

	case token.TokenIdent:
		tok := p.curTok
		p.nextToken()
		return &ast.Identifier{Token: tok, Value: tok.Literal}, nil

	case token.TokenIllegal:
		return nil, lexError(p.curTok)

	default:
		return nil, errs.New(errs.SyntaxError, p.curTok.Column,
			"expected a factor, found %s (%q)", p.curTok.Type, p.curTok.Literal)
	}
}
