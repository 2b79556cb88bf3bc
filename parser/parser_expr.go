/*
File    : susumu/parser/parser_expr.go

Expression grammar: arrow chains (P3), arithmetic precedence, literals,
property access and call syntax, object/array/tuple literals (P2, P4).
*/
package parser

import (
	"strconv"

	"github.com/susumu-lang/susumu/diagnostics"
	"github.com/susumu-lang/susumu/lexer"
)

// parseExpr is the entry point for any expression: an arrow chain whose
// head (and every step operand) is an arithmetic expression.
func (p *Parser) parseExpr() Expr {
	return p.parseArrowChain()
}

func isArrowOp(t lexer.TokenType) bool {
	return t == lexer.ARROW_RIGHT || t == lexer.ARROW_LEFT || t == lexer.MUT_ARROW
}

func arrowDirOf(t lexer.TokenType) ArrowDirection {
	switch t {
	case lexer.ARROW_LEFT:
		return Backward
	case lexer.MUT_ARROW:
		return Mut
	default:
		return Forward
	}
}

// parseArrowChain implements spec.md §3.5/§4.3.2: a head expression
// followed by a flat, left-associative run of arrow steps. P3's multi-line
// continuation rule: a Newline followed (after skipping further newlines)
// by an arrow operator does not end the chain.
func (p *Parser) parseArrowChain() Expr {
	pos := posOf(p.curr)
	head := p.parseAdditive()

	steps := make([]ArrowStep, 0)
	for {
		tokType := p.curr.Type
		if tokType == lexer.NEWLINE {
			peeked := p.peekPastNewlines()
			if !isArrowOp(peeked.Type) {
				break
			}
			p.skipNewlines()
			tokType = p.curr.Type
		}
		if !isArrowOp(tokType) {
			break
		}
		p.advance() // consume arrow operator
		p.skipNewlines()
		operand := p.parseAdditive()
		steps = append(steps, ArrowStep{Direction: arrowDirOf(tokType), Operand: operand})
	}

	if len(steps) == 0 {
		return head
	}
	return &ArrowChain{Pos: pos, Head: head, Steps: steps}
}

func (p *Parser) parseAdditive() Expr {
	pos := posOf(p.curr)
	left := p.parseMultiplicative()
	for p.curr.Type == lexer.PLUS || p.curr.Type == lexer.MINUS {
		op := BinaryOp(p.curr.Literal)
		p.advance()
		right := p.parseMultiplicative()
		left = &Binary{Pos: pos, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseMultiplicative() Expr {
	pos := posOf(p.curr)
	left := p.parseUnary()
	for p.curr.Type == lexer.STAR || p.curr.Type == lexer.SLASH {
		op := BinaryOp(p.curr.Literal)
		p.advance()
		right := p.parseUnary()
		left = &Binary{Pos: pos, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseUnary() Expr {
	if p.curr.Type == lexer.MINUS {
		pos := posOf(p.curr)
		p.advance()
		operand := p.parseUnary()
		return &Unary{Pos: pos, Operand: operand}
	}
	return p.parsePostfix()
}

// parsePostfix handles `.property` access and `(args)` call syntax chained
// onto a primary expression.
func (p *Parser) parsePostfix() Expr {
	start := posOf(p.curr)
	expr := p.parsePrimary()
	for {
		switch p.curr.Type {
		case lexer.DOT:
			p.advance()
			if p.curr.Type != lexer.IDENT {
				p.addErrorAt(p.curr, "expected property name after '.', got %s", p.curr.Type)
				return expr
			}
			prop := p.curr.Literal
			p.advance()
			expr = &PropertyAccess{Pos: start, Target: expr, Property: prop}
		case lexer.LPAREN:
			p.advance()
			args := p.parseExprList(lexer.RPAREN)
			expr = &Call{Pos: start, Callee: expr, Args: args}
		default:
			return expr
		}
	}
}

// parseExprList parses a comma-separated expression list up to (and
// consuming) closer, tolerating newlines and a trailing comma (P4).
func (p *Parser) parseExprList(closer lexer.TokenType) []Expr {
	exprs := make([]Expr, 0)
	p.skipNewlines()
	for p.curr.Type != closer && p.curr.Type != lexer.EOF {
		exprs = append(exprs, p.parseExpr())
		p.skipNewlines()
		if p.curr.Type == lexer.COMMA {
			p.advance()
			p.skipNewlines()
		}
	}
	if p.curr.Type != closer {
		p.addErrorAt(p.curr, "expected %s, got %s", closer, p.curr.Type)
	} else {
		p.advance()
	}
	return exprs
}

func (p *Parser) parsePrimary() Expr {
	tok := p.curr
	pos := posOf(tok)

	switch tok.Type {
	case lexer.NUMBER:
		p.advance()
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.addErrorAt(tok, "malformed number literal %q", tok.Literal)
		}
		return &NumberLit{Pos: pos, Value: f}
	case lexer.STRING:
		p.advance()
		return &StringLit{Pos: pos, Value: tok.Literal}
	case lexer.INVALID:
		p.Errors = append(p.Errors, diagnostics.New(diagnostics.LexError, tok.Line, tok.Column, "unterminated string literal"))
		p.advance()
		return &StringLit{Pos: pos, Value: tok.Literal}
	case lexer.TRUE_LIT:
		p.advance()
		return &BoolLit{Pos: pos, Value: true}
	case lexer.FALSE_LIT:
		p.advance()
		return &BoolLit{Pos: pos, Value: false}
	case lexer.NULL_LIT:
		p.advance()
		return &NullLit{Pos: pos}
	case lexer.IDENT:
		p.advance()
		return &Ident{Pos: pos, Name: tok.Literal}
	case lexer.LBRACKET:
		p.advance()
		elements := p.parseExprList(lexer.RBRACKET)
		return &ArrayLit{Pos: pos, Elements: elements}
	case lexer.LBRACE:
		// Expression position always prefers object literal (P2).
		return p.parseObjectLit()
	case lexer.LPAREN:
		return p.parseParenOrTuple()
	case lexer.KW_IF:
		return p.parseIf()
	case lexer.KW_FOREACH:
		return p.parseForeach()
	case lexer.KW_WHILE:
		return p.parseWhile()
	case lexer.KW_MATCH:
		return p.parseMatch()
	case lexer.KW_RETURN:
		p.advance()
		p.expectArrowLeft()
		value := p.parseExpr()
		return &Return{Pos: pos, Value: value}
	case lexer.KW_ERROR:
		p.advance()
		p.expectArrowLeft()
		value := p.parseExpr()
		return &ErrorExpr{Pos: pos, Value: value}
	}

	p.addErrorAt(tok, "unexpected token %s", tok.Type)
	p.advance()
	return nil
}

// expectArrowLeft consumes the `<-` that conventionally introduces the
// payload of `return <- v` / `error <- v` (spec.md §8.2 scenario 7). It is
// tolerant of its absence so `return <- v` and a bare value after `return`
// both parse, since spec.md's grammar gives only the `<-` form explicitly.
func (p *Parser) expectArrowLeft() {
	if p.curr.Type == lexer.ARROW_LEFT {
		p.advance()
	}
}

func (p *Parser) parseObjectLit() Expr {
	pos := posOf(p.curr)
	p.advance() // consume {
	p.skipNewlines()

	fields := make([]ObjectField, 0)
	for p.curr.Type != lexer.RBRACE && p.curr.Type != lexer.EOF {
		var key string
		switch p.curr.Type {
		case lexer.IDENT:
			key = p.curr.Literal
			p.advance()
		case lexer.STRING:
			key = p.curr.Literal
			p.advance()
		default:
			p.addErrorAt(p.curr, "expected object key, got %s", p.curr.Type)
			p.advance()
			continue
		}
		if p.curr.Type != lexer.COLON {
			p.addErrorAt(p.curr, "expected ':' after object key, got %s", p.curr.Type)
		} else {
			p.advance()
		}
		value := p.parseExpr()
		fields = append(fields, ObjectField{Key: key, Value: value})
		p.skipNewlines()
		if p.curr.Type == lexer.COMMA {
			p.advance()
			p.skipNewlines()
		}
	}
	if p.curr.Type != lexer.RBRACE {
		p.addErrorAt(p.curr, "expected '}' to close object literal, got %s", p.curr.Type)
	} else {
		p.advance()
	}
	return &ObjectLit{Pos: pos, Fields: fields}
}

// parseParenOrTuple parses `(expr)` grouping or, when >= 2 comma-separated
// elements are found, a TupleLit (spec.md §3.2).
func (p *Parser) parseParenOrTuple() Expr {
	pos := posOf(p.curr)
	p.advance() // consume (
	p.skipNewlines()

	first := p.parseExpr()
	p.skipNewlines()
	if p.curr.Type != lexer.COMMA {
		if p.curr.Type != lexer.RPAREN {
			p.addErrorAt(p.curr, "expected ')', got %s", p.curr.Type)
		} else {
			p.advance()
		}
		return first
	}

	elements := []Expr{first}
	for p.curr.Type == lexer.COMMA {
		p.advance()
		p.skipNewlines()
		if p.curr.Type == lexer.RPAREN {
			break
		}
		elements = append(elements, p.parseExpr())
		p.skipNewlines()
	}
	if p.curr.Type != lexer.RPAREN {
		p.addErrorAt(p.curr, "expected ')' to close tuple, got %s", p.curr.Type)
	} else {
		p.advance()
	}
	return &TupleLit{Pos: pos, Elements: elements}
}
