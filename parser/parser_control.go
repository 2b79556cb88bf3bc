/*
File    : susumu/parser/parser_control.go

Control-flow expression grammar: if/elif/else (P6), foreach, while, and
match (P5).
*/
package parser

import "github.com/susumu-lang/susumu/lexer"

// parseCondName consumes a condition-name keyword at an `i`/`ei`/match-arm
// position, reporting a ParseError for anything else (spec.md §9's open
// question: "unknown names at a condition position" are a ParseError).
func (p *Parser) parseCondName() lexer.TokenType {
	if !lexer.ConditionNames[p.curr.Type] {
		p.addErrorAt(p.curr, "expected a condition name (success, valid, error, positive, negative, zero, empty, found, some, none), got %s", p.curr.Type)
		return lexer.INVALID
	}
	t := p.curr.Type
	p.advance()
	return t
}

// parseIf implements P6: `i cond { } (ei cond { })* (e { })?`.
func (p *Parser) parseIf() Expr {
	pos := posOf(p.curr)
	p.advance() // consume 'i'
	thenName := p.parseCondName()
	thenBody := p.parseBlock()

	node := &If{Pos: pos, Then: CondBranch{CondName: thenName, Body: thenBody}}

	for p.curr.Type == lexer.KW_ELIF {
		p.advance()
		name := p.parseCondName()
		body := p.parseBlock()
		node.Elifs = append(node.Elifs, CondBranch{CondName: name, Body: body})
	}

	if p.curr.Type == lexer.KW_ELSE {
		p.advance()
		node.Else = p.parseBlock()
	}
	return node
}

// parseForeach implements `fe var in iterable { body }`.
func (p *Parser) parseForeach() Expr {
	pos := posOf(p.curr)
	p.advance() // consume 'fe'
	if p.curr.Type != lexer.IDENT {
		p.addErrorAt(p.curr, "expected loop variable name after 'fe', got %s", p.curr.Type)
	}
	varName := p.curr.Literal
	p.advance()
	if p.curr.Type != lexer.KW_IN {
		p.addErrorAt(p.curr, "expected 'in' in foreach, got %s", p.curr.Type)
	} else {
		p.advance()
	}
	iterable := p.parseAdditive()
	body := p.parseBlock()
	return &Foreach{Pos: pos, Var: varName, Iterable: iterable, Body: body}
}

// parseWhile implements `w cond { body }`.
func (p *Parser) parseWhile() Expr {
	pos := posOf(p.curr)
	p.advance() // consume 'w'
	cond := p.parseAdditive()
	body := p.parseBlock()
	return &While{Pos: pos, Cond: cond, Body: body}
}

// parseMatch implements `match scrutinee { arm* }` with arms per P5:
// `pattern_name (<- bind)? -> { body }`, newline-separated.
func (p *Parser) parseMatch() Expr {
	pos := posOf(p.curr)
	p.advance() // consume 'match'
	scrutinee := p.parseAdditive()

	if p.curr.Type != lexer.LBRACE {
		p.addErrorAt(p.curr, "expected '{' to start match body, got %s", p.curr.Type)
		return &Match{Pos: pos, Scrutinee: scrutinee}
	}
	p.advance() // consume {
	p.skipNewlines()

	arms := make([]MatchArm, 0)
	for p.curr.Type != lexer.RBRACE && p.curr.Type != lexer.EOF {
		name := p.parseCondName()
		bind := ""
		if p.curr.Type == lexer.ARROW_LEFT {
			p.advance()
			if p.curr.Type != lexer.IDENT {
				p.addErrorAt(p.curr, "expected binder identifier after '<-' in match arm, got %s", p.curr.Type)
			} else {
				bind = p.curr.Literal
				p.advance()
			}
		}
		if p.curr.Type != lexer.ARROW_RIGHT {
			p.addErrorAt(p.curr, "expected '->' before match arm body, got %s", p.curr.Type)
		} else {
			p.advance()
		}
		body := p.parseBlock()
		arms = append(arms, MatchArm{PatternName: name, Bind: bind, Body: body})
		p.skipNewlines()
	}
	if p.curr.Type != lexer.RBRACE {
		p.addErrorAt(p.curr, "expected '}' to close match body, got %s", p.curr.Type)
	} else {
		p.advance()
	}
	return &Match{Pos: pos, Scrutinee: scrutinee, Arms: arms}
}
