/*
File    : minij/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/minij/lexer"
)

// parseStatement dispatches on the current token (spec §4.2 Statement
// parsing). Structural keywords dispatch directly; identifier- and
// primitive-type-leading positions go through the speculative
// disambiguations below.
func (p *Parser) parseStatement() Stmt {
	switch p.cur().Type {
	case lexer.IF_KEY:
		return p.parseIf()
	case lexer.WHILE_KEY:
		return p.parseWhile()
	case lexer.DO_KEY:
		return p.parseDoWhile()
	case lexer.FOR_KEY:
		return p.parseFor()
	case lexer.SWITCH_KEY:
		return p.parseSwitch()
	case lexer.BREAK_KEY:
		p.advance()
		p.expect(lexer.SEMICOLON)
		return &Break{}
	case lexer.CONTINUE_KEY:
		p.advance()
		p.expect(lexer.SEMICOLON)
		return &Continue{}
	case lexer.RETURN_KEY:
		return p.parseReturn()
	case lexer.TRY_KEY:
		return p.parseTry()
	case lexer.THIS_KEY:
		return p.parseThisFieldAssign()
	case lexer.SEMICOLON:
		p.advance()
		return nil
	default:
		if lexer.PRIMITIVE_TYPES[p.cur().Type] || p.at(lexer.STRING_KEY) {
			return p.parseVarDeclFromType()
		}
		if p.at(lexer.IDENT_TYPE) {
			return p.parseIdentifierLeadingStatement()
		}
		expr := p.parseExpression()
		p.expect(lexer.SEMICOLON)
		return &ExprStmt{Expr: expr}
	}
}

// parseBlock parses either a `{ ... }` block or a single statement, always
// yielding a statement list (spec §4.2 Blocks).
func (p *Parser) parseBlock() []Stmt {
	if p.at(lexer.LEFT_BRACE) {
		p.advance()
		var stmts []Stmt
		for !p.at(lexer.RIGHT_BRACE) && !p.at(lexer.EOF_TYPE) && !p.HasErrors() {
			if s := p.parseStatement(); s != nil {
				stmts = append(stmts, s)
			}
		}
		p.expect(lexer.RIGHT_BRACE)
		return stmts
	}
	if s := p.parseStatement(); s != nil {
		return []Stmt{s}
	}
	return nil
}

// parseVarDeclFromType parses `T name;` or `T name = expr;` when T is a
// primitive type keyword or the String keyword — unambiguous, since a type
// keyword can never be an assignment target (spec §4.2 step 1/2/4).
func (p *Parser) parseVarDeclFromType() Stmt {
	typeName := p.cur().Literal
	p.advance()
	typeName += p.consumeArraySuffix()
	name := p.expect(lexer.IDENT_TYPE).Literal
	return p.finishVarDecl(typeName, name)
}

// consumeArraySuffix consumes a trailing `[]` (empty brackets) marking an
// array type, returning "[]" if present or "" otherwise. Non-empty
// brackets (`[i]`) are never consumed here — those belong to an index
// expression, not a type suffix.
func (p *Parser) consumeArraySuffix() string {
	suffix := ""
	for p.at(lexer.LEFT_BRACKET) && p.peek(1).Type == lexer.RIGHT_BRACKET {
		p.advance()
		p.advance()
		suffix += "[]"
	}
	return suffix
}

// finishVarDecl consumes the tail of a variable declaration once type and
// name are known: `= expr;`, a bare `;`, or (rule 4) any other token,
// which still commits to a declaration on an error-tolerant path.
func (p *Parser) finishVarDecl(typeName, name string) Stmt {
	switch p.cur().Type {
	case lexer.ASSIGN_OP:
		p.advance()
		init := p.parseExpression()
		p.expect(lexer.SEMICOLON)
		return &VarDecl{TypeName: typeName, Name: name, Init: init}
	case lexer.SEMICOLON:
		p.advance()
		return &VarDecl{TypeName: typeName, Name: name}
	default:
		p.expect(lexer.SEMICOLON)
		return &VarDecl{TypeName: typeName, Name: name}
	}
}

// parseIdentifierLeadingStatement implements spec §4.2's two-phase
// disambiguation for a leading plain identifier: a saved-index provisional
// parse of "type name" commits to a VarDecl if a second identifier
// follows; otherwise the single identifier is re-examined as an
// assignment target, a compound-assignment target, an array-element
// assignment target, a field-assignment target (via reparsing as a
// postfix expression once a `.` is spotted), or a plain expression
// statement (including the no-receiver method call case, `T(args);`).
func (p *Parser) parseIdentifierLeadingStatement() Stmt {
	mark := p.mark()
	typeName := p.cur().Literal
	p.advance()
	typeName += p.consumeArraySuffix()

	if p.at(lexer.IDENT_TYPE) {
		name := p.cur().Literal
		p.advance()
		return p.finishVarDecl(typeName, name)
	}

	p.reset(mark)
	return p.parseAssignmentLike(lexer.SEMICOLON)
}

// parseAssignmentLike parses the non-declaration forms a leading
// identifier can resolve to, ending at terminator. terminator is
// lexer.SEMICOLON for ordinary statements and lexer.RIGHT_PAREN for a
// `for (...; ...; update)` update clause, which is itself one of these
// forms but closed by the loop header's paren instead of a semicolon.
func (p *Parser) parseAssignmentLike(terminator lexer.TokenType) Stmt {
	mark := p.mark()
	name := p.cur().Literal
	p.advance()

	switch p.cur().Type {
	case lexer.ASSIGN_OP:
		p.advance()
		value := p.parseExpression()
		p.acceptTerminator(terminator)
		return &Assign{Name: name, Value: value}
	case lexer.PLUS_ASSIGN:
		p.advance()
		value := p.parseExpression()
		p.acceptTerminator(terminator)
		return &Assign{Name: name, Value: &BinOp{Operator: "+", Left: &Variable{Name: name}, Right: value}}
	case lexer.MINUS_ASSIGN:
		p.advance()
		value := p.parseExpression()
		p.acceptTerminator(terminator)
		return &Assign{Name: name, Value: &BinOp{Operator: "-", Left: &Variable{Name: name}, Right: value}}
	case lexer.LEFT_BRACKET:
		p.advance()
		index := p.parseExpression()
		p.expect(lexer.RIGHT_BRACKET)
		p.expect(lexer.ASSIGN_OP)
		value := p.parseExpression()
		p.acceptTerminator(terminator)
		return &ArrayAssign{Name: name, Index: index, Value: value}
	default:
		p.reset(mark)
		expr := p.parseExpression()
		if p.at(lexer.ASSIGN_OP) {
			if fa, ok := expr.(*FieldAccess); ok {
				p.advance()
				value := p.parseExpression()
				p.acceptTerminator(terminator)
				return &FieldAssign{Object: fa.Object, Field: fa.Name, Value: value}
			}
		}
		p.acceptTerminator(terminator)
		return &ExprStmt{Expr: expr}
	}
}

// acceptTerminator consumes terminator only when it's a semicolon; a
// right-paren terminator belongs to the enclosing `for (...)` header and
// is left for that caller to consume.
func (p *Parser) acceptTerminator(terminator lexer.TokenType) {
	if terminator == lexer.SEMICOLON {
		p.expect(lexer.SEMICOLON)
	}
}

// parseThisFieldAssign parses `this.field = expr;` (spec §4.2: "this —
// opens a this.field = expr; field assignment").
func (p *Parser) parseThisFieldAssign() Stmt {
	p.advance() // 'this'
	p.expect(lexer.DOT)
	field := p.expect(lexer.IDENT_TYPE).Literal
	p.expect(lexer.ASSIGN_OP)
	value := p.parseExpression()
	p.expect(lexer.SEMICOLON)
	return &FieldAssign{Object: &This{}, Field: field, Value: value}
}

// parseIf parses `if (cond) then [else else]`.
func (p *Parser) parseIf() Stmt {
	p.advance() // 'if'
	p.expect(lexer.LEFT_PAREN)
	cond := p.parseExpression()
	p.expect(lexer.RIGHT_PAREN)
	then := p.parseBlock()

	var els []Stmt
	if p.accept(lexer.ELSE_KEY) {
		if p.at(lexer.IF_KEY) {
			els = []Stmt{p.parseIf()}
		} else {
			els = p.parseBlock()
		}
	}
	return &If{Cond: cond, Then: then, Else: els}
}

// parseWhile parses `while (cond) body`.
func (p *Parser) parseWhile() Stmt {
	p.advance() // 'while'
	p.expect(lexer.LEFT_PAREN)
	cond := p.parseExpression()
	p.expect(lexer.RIGHT_PAREN)
	body := p.parseBlock()
	return &While{Cond: cond, Body: body}
}

// parseDoWhile parses `do body while (cond);`.
func (p *Parser) parseDoWhile() Stmt {
	p.advance() // 'do'
	body := p.parseBlock()
	p.expect(lexer.WHILE_KEY)
	p.expect(lexer.LEFT_PAREN)
	cond := p.parseExpression()
	p.expect(lexer.RIGHT_PAREN)
	p.expect(lexer.SEMICOLON)
	return &DoWhile{Cond: cond, Body: body}
}

// parseFor parses either a regular C-style for loop or a for-each loop,
// disambiguated by a speculative parse of the header's first clause: a
// `Type binder :` prefix commits to for-each, anything else rewinds and
// parses the regular `(init; cond; update)` header (spec §3 Statement
// variants: "regular for" vs "for-each").
func (p *Parser) parseFor() Stmt {
	p.advance() // 'for'
	p.expect(lexer.LEFT_PAREN)

	if stmt, ok := p.tryParseForEachHeader(); ok {
		return stmt
	}

	var init Stmt
	if !p.at(lexer.SEMICOLON) {
		init = p.parseStatement()
	} else {
		p.advance()
	}

	var cond Expr
	if !p.at(lexer.SEMICOLON) {
		cond = p.parseExpression()
	}
	p.expect(lexer.SEMICOLON)

	var update Stmt
	if !p.at(lexer.RIGHT_PAREN) {
		update = p.parseAssignmentLike(lexer.RIGHT_PAREN)
	}
	p.expect(lexer.RIGHT_PAREN)

	body := p.parseBlock()
	return &For{Init: init, Cond: cond, Update: update, Body: body}
}

// tryParseForEachHeader speculatively parses `Type binder : iterable)` at
// the current position (just after the for loop's opening paren). On
// success it consumes through the closing paren and parses the body,
// returning the complete ForEach statement. On failure it rewinds to the
// mark and returns ok=false so the caller can parse a regular for header
// instead.
func (p *Parser) tryParseForEachHeader() (Stmt, bool) {
	mark := p.mark()
	if !lexer.PRIMITIVE_TYPES[p.cur().Type] && !p.at(lexer.STRING_KEY) && !p.at(lexer.IDENT_TYPE) {
		return nil, false
	}
	elemType := p.cur().Literal
	p.advance()
	elemType += p.consumeArraySuffix()

	if !p.at(lexer.IDENT_TYPE) {
		p.reset(mark)
		return nil, false
	}
	binder := p.cur().Literal
	p.advance()

	if !p.at(lexer.COLON) {
		p.reset(mark)
		return nil, false
	}
	p.advance() // ':'
	iterable := p.parseExpression()
	p.expect(lexer.RIGHT_PAREN)
	body := p.parseBlock()
	return &ForEach{ElemType: elemType, Binder: binder, Iterable: iterable, Body: body}, true
}

// parseSwitch parses `switch (scrutinee) { case v: ... default: ... }`
// (spec §4.4 Control flow: fall-through until break or switch end).
func (p *Parser) parseSwitch() Stmt {
	p.advance() // 'switch'
	p.expect(lexer.LEFT_PAREN)
	scrutinee := p.parseExpression()
	p.expect(lexer.RIGHT_PAREN)
	p.expect(lexer.LEFT_BRACE)

	sw := &Switch{Scrutinee: scrutinee}
	for !p.at(lexer.RIGHT_BRACE) && !p.at(lexer.EOF_TYPE) && !p.HasErrors() {
		switch p.cur().Type {
		case lexer.CASE_KEY:
			p.advance()
			value := p.parseExpression()
			p.expect(lexer.COLON)
			body := p.parseCaseBody()
			sw.Cases = append(sw.Cases, &SwitchCase{Value: value, Body: body})
		case lexer.DEFAULT_KEY:
			p.advance()
			p.expect(lexer.COLON)
			sw.Default = p.parseCaseBody()
		default:
			p.addError("expected 'case' or 'default' in switch body")
			return sw
		}
	}
	p.expect(lexer.RIGHT_BRACE)
	return sw
}

// parseCaseBody collects statements until the next `case`, `default`, or
// the closing brace — a case's body has no block delimiters of its own.
func (p *Parser) parseCaseBody() []Stmt {
	var stmts []Stmt
	for !p.at(lexer.CASE_KEY) && !p.at(lexer.DEFAULT_KEY) && !p.at(lexer.RIGHT_BRACE) && !p.at(lexer.EOF_TYPE) && !p.HasErrors() {
		if s := p.parseStatement(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// parseReturn parses `return;` or `return expr;`.
func (p *Parser) parseReturn() Stmt {
	p.advance() // 'return'
	if p.accept(lexer.SEMICOLON) {
		return &Return{}
	}
	value := p.parseExpression()
	p.expect(lexer.SEMICOLON)
	return &Return{Value: value}
}

// parseTry parses `try { } catch (T b) { }... finally { }` (spec §4.2/§7).
func (p *Parser) parseTry() Stmt {
	p.advance() // 'try'
	body := p.parseBlock()

	t := &Try{Body: body}
	for p.at(lexer.CATCH_KEY) {
		p.advance()
		p.expect(lexer.LEFT_PAREN)
		typeName := p.expect(lexer.IDENT_TYPE).Literal
		binder := p.expect(lexer.IDENT_TYPE).Literal
		p.expect(lexer.RIGHT_PAREN)
		catchBody := p.parseBlock()
		t.Catches = append(t.Catches, &CatchClause{TypeName: typeName, Binder: binder, Body: catchBody})
	}
	if p.accept(lexer.FINALLY_KEY) {
		t.Finally = p.parseBlock()
	}
	return t
}
