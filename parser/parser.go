/*
File    : susumu/parser/parser.go

Parser core: token cursor, error collection, and top-level/block parsing.
Structurally grounded on akashmaji946-go-mix/parser/parser.go's
Parser{Lex, CurrToken, NextToken} shape and its advance/expectAdvance/
expectNext/addError method set — generalized from Go-Mix's Pratt-table
dispatch to Susumu's smaller, direct-dispatch grammar (see DESIGN.md).
*/
package parser

import (
	"github.com/susumu-lang/susumu/diagnostics"
	"github.com/susumu-lang/susumu/lexer"
)

// Parser holds parsing state: the lexer, a two-token lookahead window, and
// collected errors (the parser never panics on a malformed construct; it
// records a diagnostic, skips the offending token and carries on).
type Parser struct {
	lex       *lexer.Lexer
	curr      lexer.Token
	next      lexer.Token
	Errors    []*diagnostics.Diagnostic
}

// New creates a Parser over src, primed with a two-token lookahead.
func New(src string) *Parser {
	p := &Parser{lex: lexer.NewLexer(src), Errors: make([]*diagnostics.Diagnostic, 0)}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.curr = p.next
	p.next = p.lex.NextToken()
}

func (p *Parser) addErrorAt(tok lexer.Token, format string, a ...interface{}) {
	p.Errors = append(p.Errors, diagnostics.New(diagnostics.ParseError, tok.Line, tok.Column, format, a...))
}

func (p *Parser) HasErrors() bool { return len(p.Errors) > 0 }

// skipNewlines advances past any run of Newline tokens — used at positions
// where the grammar treats newlines as pure whitespace (spec.md §4.2 P4).
func (p *Parser) skipNewlines() {
	for p.curr.Type == lexer.NEWLINE {
		p.advance()
	}
}

// peekPastNewlines returns the first non-Newline token starting at curr,
// without consuming anything. Used by P2 and
// P3's bounded lookahead rules.
func (p *Parser) peekPastNewlines() lexer.Token {
	if p.curr.Type != lexer.NEWLINE {
		return p.curr
	}
	// Re-scan a throwaway lexer copy so the real cursor is untouched.
	save := *p.lex
	tok := p.next
	for tok.Type == lexer.NEWLINE {
		tok = p.lex.NextToken()
	}
	*p.lex = save
	return tok
}

// Parse runs the whole program grammar: top-level items until Eof
// (spec.md §4.3.1 drives evaluation of exactly this list).
func (p *Parser) Parse() *Program {
	prog := &Program{Items: make([]Item, 0)}
	p.skipNewlines()
	for p.curr.Type != lexer.EOF {
		item := p.parseItem()
		if item != nil {
			prog.Items = append(prog.Items, item)
		}
		p.skipNewlines()
	}
	return prog
}

// parseItem parses one top-level or block-level item: FunctionDef,
// Assignment, or ExprStmt (spec.md §3.2, P1).
func (p *Parser) parseItem() Item {
	if p.curr.Type == lexer.IDENT && p.next.Type == lexer.LPAREN && p.looksLikeFunctionDef() {
		return p.parseFunctionDef()
	}
	if p.curr.Type == lexer.KW_MUT {
		return p.parseAssignment(true)
	}
	if p.curr.Type == lexer.IDENT && p.next.Type == lexer.EQ {
		return p.parseAssignment(false)
	}
	pos := posOf(p.curr)
	expr := p.parseExpr()
	if expr == nil {
		p.addErrorAt(p.curr, "unexpected token %s in statement position", p.curr.Type)
		p.advance()
		return nil
	}
	return &ExprStmt{Pos: pos, Expr: expr}
}

// looksLikeFunctionDef disambiguates `name(params) { body }` declarations
// from a plain call expression statement `name(args)`: a definition's
// parameter list is followed (after its closing paren) by `{`.
func (p *Parser) looksLikeFunctionDef() bool {
	save := *p.lex
	savedCurr, savedNext := p.curr, p.next

	depth := 0
	tok := p.next
	for {
		if tok.Type == lexer.LPAREN {
			depth++
		} else if tok.Type == lexer.RPAREN {
			depth--
			if depth == 0 {
				break
			}
		} else if tok.Type == lexer.EOF {
			break
		}
		tok = p.lex.NextToken()
	}
	after := p.lex.NextToken()
	for after.Type == lexer.NEWLINE {
		after = p.lex.NextToken()
	}
	isDef := after.Type == lexer.LBRACE

	*p.lex = save
	p.curr, p.next = savedCurr, savedNext
	return isDef
}

func (p *Parser) parseFunctionDef() Item {
	pos := posOf(p.curr)
	name := p.curr.Literal
	p.advance() // consume name
	p.advance() // consume (

	params := make([]string, 0)
	for p.curr.Type != lexer.RPAREN && p.curr.Type != lexer.EOF {
		if p.curr.Type == lexer.IDENT {
			params = append(params, p.curr.Literal)
			p.advance()
		}
		if p.curr.Type == lexer.COMMA {
			p.advance()
		}
	}
	if p.curr.Type != lexer.RPAREN {
		p.addErrorAt(p.curr, "expected ')' to close parameter list, got %s", p.curr.Type)
	}
	p.advance() // consume )
	p.skipNewlines()

	body := p.parseBlock()
	return &FunctionDef{Pos: pos, Name: name, Params: params, Body: body}
}

func (p *Parser) parseAssignment(mutable bool) Item {
	pos := posOf(p.curr)
	if mutable {
		p.advance() // consume mut
	}
	if p.curr.Type != lexer.IDENT {
		p.addErrorAt(p.curr, "assignment target must be an identifier, got %s", p.curr.Type)
		return nil
	}
	target := p.curr.Literal
	p.advance() // consume ident
	p.advance() // consume =
	value := p.parseExpr()
	return &Assignment{Pos: pos, Target: target, Mutable: mutable, Value: value}
}

// parseBlock parses `{ items... }`. Newlines between items are statement
// separators; empty lines are skipped.
func (p *Parser) parseBlock() *Block {
	pos := posOf(p.curr)
	if p.curr.Type != lexer.LBRACE {
		p.addErrorAt(p.curr, "expected '{' to start block, got %s", p.curr.Type)
		return &Block{Pos: pos, Items: nil}
	}
	p.advance() // consume {
	p.skipNewlines()

	items := make([]Item, 0)
	for p.curr.Type != lexer.RBRACE && p.curr.Type != lexer.EOF {
		item := p.parseItem()
		if item != nil {
			items = append(items, item)
		}
		p.skipNewlines()
	}
	if p.curr.Type != lexer.RBRACE {
		p.addErrorAt(p.curr, "expected '}' to close block, got %s", p.curr.Type)
	} else {
		p.advance() // consume }
	}
	return &Block{Pos: pos, Items: items}
}
