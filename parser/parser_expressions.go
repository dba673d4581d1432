/*
File    : minij/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/minij/lexer"
)

// parseExpression is the single entry point into the expression grammar,
// starting at the lowest precedence level (ternary — spec §4.2 level 1).
func (p *Parser) parseExpression() Expr {
	return p.parseTernary()
}

// parseTernary implements level 1: `cond ? then : else`, right-associative.
func (p *Parser) parseTernary() Expr {
	cond := p.parseOr()
	if p.HasErrors() {
		return cond
	}
	if !p.accept(lexer.QUESTION_OP) {
		return cond
	}
	then := p.parseTernary()
	p.expect(lexer.COLON)
	els := p.parseTernary()
	return &Ternary{Cond: cond, Then: then, Else: els}
}

// parseOr implements level 2: `||`, left-associative.
func (p *Parser) parseOr() Expr {
	left := p.parseAnd()
	for !p.HasErrors() && p.at(lexer.OR_OP) {
		p.advance()
		right := p.parseAnd()
		left = &BinOp{Operator: "||", Left: left, Right: right}
	}
	return left
}

// parseAnd implements level 3: `&&`, left-associative.
func (p *Parser) parseAnd() Expr {
	left := p.parseEquality()
	for !p.HasErrors() && p.at(lexer.AND_OP) {
		p.advance()
		right := p.parseEquality()
		left = &BinOp{Operator: "&&", Left: left, Right: right}
	}
	return left
}

// parseEquality implements level 4: `==`, `!=`, left-associative.
func (p *Parser) parseEquality() Expr {
	left := p.parseRelational()
	for !p.HasErrors() && (p.at(lexer.EQ_OP) || p.at(lexer.NE_OP)) {
		op := string(p.cur().Type)
		p.advance()
		right := p.parseRelational()
		left = &BinOp{Operator: op, Left: left, Right: right}
	}
	return left
}

// parseRelational implements level 5: `<`, `<=`, `>`, `>=`. Spec §4.2 marks
// this level non-associative ("at most one") — unlike every other binary
// level, this does not loop: at most a single relational operator is
// consumed per production.
func (p *Parser) parseRelational() Expr {
	left := p.parseAdditive()
	if p.HasErrors() {
		return left
	}
	switch p.cur().Type {
	case lexer.LT_OP, lexer.LE_OP, lexer.GT_OP, lexer.GE_OP:
		op := string(p.cur().Type)
		p.advance()
		right := p.parseAdditive()
		return &BinOp{Operator: op, Left: left, Right: right}
	default:
		return left
	}
}

// parseAdditive implements level 6: `+`, `-`, left-associative.
func (p *Parser) parseAdditive() Expr {
	left := p.parseMultiplicative()
	for !p.HasErrors() && (p.at(lexer.PLUS_OP) || p.at(lexer.MINUS_OP)) {
		op := string(p.cur().Type)
		p.advance()
		right := p.parseMultiplicative()
		left = &BinOp{Operator: op, Left: left, Right: right}
	}
	return left
}

// parseMultiplicative implements level 7: `*`, `/`, `%`, left-associative.
func (p *Parser) parseMultiplicative() Expr {
	left := p.parseUnary()
	for !p.HasErrors() && (p.at(lexer.MUL_OP) || p.at(lexer.DIV_OP) || p.at(lexer.MOD_OP)) {
		op := string(p.cur().Type)
		p.advance()
		right := p.parseUnary()
		left = &BinOp{Operator: op, Left: left, Right: right}
	}
	return left
}

// parseUnary implements level 8: prefix `!`, `-`, `+`, `++`, `--`, and the
// primitive cast `(T) x`, right-associative.
func (p *Parser) parseUnary() Expr {
	switch p.cur().Type {
	case lexer.NOT_OP, lexer.MINUS_OP, lexer.PLUS_OP:
		op := string(p.cur().Type)
		p.advance()
		operand := p.parseUnary()
		return &UnaryOp{Operator: op, Operand: operand, Postfix: false}
	case lexer.INC_OP, lexer.DEC_OP:
		op := string(p.cur().Type)
		p.advance()
		operand := p.parseUnary()
		return &UnaryOp{Operator: op, Operand: operand, Postfix: false}
	case lexer.LEFT_PAREN:
		if p.isCastAhead() {
			p.advance() // '('
			targetType := p.cur().Literal
			p.advance() // primitive type keyword
			p.expect(lexer.RIGHT_PAREN)
			inner := p.parseUnary()
			return &Cast{TargetType: targetType, Inner: inner}
		}
	}
	return p.parsePostfix()
}

// isCastAhead reports whether the parser is sitting at `( T )` with T a
// primitive type keyword (spec §4.2 Cast disambiguation: "Parenthesized
// expressions beginning with an identifier are never treated as casts").
func (p *Parser) isCastAhead() bool {
	return lexer.PRIMITIVE_TYPES[p.peek(1).Type] && p.peek(2).Type == lexer.RIGHT_PAREN
}

// parsePostfix implements level 9: `[i]`, `.name`, `.name(args)`, `x++`,
// `x--`, left-associative, chained.
func (p *Parser) parsePostfix() Expr {
	expr := p.parsePrimary()
	for !p.HasErrors() {
		switch p.cur().Type {
		case lexer.LEFT_BRACKET:
			p.advance()
			index := p.parseExpression()
			p.expect(lexer.RIGHT_BRACKET)
			expr = &ArrayAccess{Array: expr, Index: index}
		case lexer.DOT:
			p.advance()
			name := p.expect(lexer.IDENT_TYPE).Literal
			if p.at(lexer.LEFT_PAREN) {
				args := p.parseArgumentList()
				expr = &MethodCall{Receiver: expr, Name: name, Args: args}
			} else {
				expr = &FieldAccess{Object: expr, Name: name}
			}
		case lexer.INC_OP:
			p.advance()
			expr = &UnaryOp{Operator: "++", Operand: expr, Postfix: true}
		case lexer.DEC_OP:
			p.advance()
			expr = &UnaryOp{Operator: "--", Operand: expr, Postfix: true}
		default:
			return expr
		}
	}
	return expr
}

// parsePrimary implements level 10: literals, `this`, `new`, brace array
// initializers, parenthesized expressions, and bare identifiers (which
// become either a variable reference or a no-receiver method call).
func (p *Parser) parsePrimary() Expr {
	tok := p.cur()
	switch tok.Type {
	case lexer.INT_LIT:
		p.advance()
		v, _ := strconv.ParseInt(tok.Literal, 10, 64)
		return &IntLit{Value: v}
	case lexer.FLOAT_LIT:
		p.advance()
		v, _ := strconv.ParseFloat(tok.Literal, 64)
		return &FloatLit{Value: v}
	case lexer.STRING_LIT:
		p.advance()
		return &StringLit{Value: tok.Literal}
	case lexer.CHAR_LIT:
		p.advance()
		return &CharLit{Value: tok.Literal[0]}
	case lexer.TRUE_KEY:
		p.advance()
		return &BoolLit{Value: true}
	case lexer.FALSE_KEY:
		p.advance()
		return &BoolLit{Value: false}
	case lexer.NULL_LIT:
		p.advance()
		return &NullLit{}
	case lexer.THIS_KEY:
		p.advance()
		return &This{}
	case lexer.NEW_KEY:
		return p.parseNewExpression()
	case lexer.LEFT_BRACE:
		return p.parseArrayLiteral()
	case lexer.LEFT_PAREN:
		p.advance()
		inner := p.parseExpression()
		p.expect(lexer.RIGHT_PAREN)
		return inner
	case lexer.IDENT_TYPE:
		p.advance()
		if p.at(lexer.LEFT_PAREN) {
			args := p.parseArgumentList()
			return &MethodCall{Receiver: nil, Name: tok.Literal, Args: args}
		}
		return &Variable{Name: tok.Literal}
	default:
		p.addError(fmt.Sprintf("[%d:%d] unexpected token %s in expression", tok.Line, tok.Column, tok.Type))
		return &NullLit{}
	}
}

// parseNewExpression parses `new ClassName(args)` or `new T[e1][e2]...`
// (spec §4.4 Object construction / Array construction).
func (p *Parser) parseNewExpression() Expr {
	p.advance() // 'new'
	typeName := p.cur().Literal
	p.advance() // type name token (identifier or primitive keyword)

	if p.at(lexer.LEFT_BRACKET) {
		var sizes []Expr
		for p.accept(lexer.LEFT_BRACKET) {
			sizes = append(sizes, p.parseExpression())
			p.expect(lexer.RIGHT_BRACKET)
		}
		return &NewArray{ElemType: typeName, Sizes: sizes}
	}

	p.expect(lexer.LEFT_PAREN)
	args := p.parseArgumentListBody()
	return &NewObject{ClassName: typeName, Args: args}
}

// parseArrayLiteral parses a `{ e, e, ... }` brace array initializer,
// usable in any expression position (spec §4.2 Primaries).
func (p *Parser) parseArrayLiteral() Expr {
	p.expect(lexer.LEFT_BRACE)
	var elems []Expr
	if !p.at(lexer.RIGHT_BRACE) {
		elems = append(elems, p.parseExpression())
		for p.accept(lexer.COMMA) {
			elems = append(elems, p.parseExpression())
		}
	}
	p.expect(lexer.RIGHT_BRACE)
	return &ArrayLit{Elements: elems}
}

// parseArgumentList consumes `(args)` including both parens.
func (p *Parser) parseArgumentList() []Expr {
	p.expect(lexer.LEFT_PAREN)
	return p.parseArgumentListBody()
}

// parseArgumentListBody consumes comma-separated arguments and the closing
// paren, assuming the opening paren was already consumed.
func (p *Parser) parseArgumentListBody() []Expr {
	var args []Expr
	if !p.at(lexer.RIGHT_PAREN) {
		args = append(args, p.parseExpression())
		for p.accept(lexer.COMMA) {
			args = append(args, p.parseExpression())
		}
	}
	p.expect(lexer.RIGHT_PAREN)
	return args
}
