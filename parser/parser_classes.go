/*
File    : minij/parser/parser_classes.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/minij/lexer"

// parseClass parses a full class declaration (spec §4.2 Class parsing).
func (p *Parser) parseClass() *Class {
	p.expect(lexer.CLASS_KEY)
	name := p.expect(lexer.IDENT_TYPE).Literal

	class := &Class{Name: name}
	if p.accept(lexer.EXTENDS_KEY) {
		class.Extends = p.expect(lexer.IDENT_TYPE).Literal
	}
	if p.at(lexer.IMPLEMENTS_KEY) {
		p.advance()
		p.expect(lexer.IDENT_TYPE) // recorded nowhere; spec carries no interface semantics
		for p.accept(lexer.COMMA) {
			p.expect(lexer.IDENT_TYPE)
		}
	}

	p.expect(lexer.LEFT_BRACE)
	for !p.at(lexer.RIGHT_BRACE) && !p.at(lexer.EOF_TYPE) && !p.HasErrors() {
		p.parseMember(class)
	}
	p.expect(lexer.RIGHT_BRACE)
	return class
}

// parseMember parses one class member: a constructor, a method, or a
// field, appending it to class. A member is a constructor exactly when its
// leading identifier (after any modifiers) equals the class name and is
// followed by `(` (spec §4.2). Otherwise it begins with a type, and a `(`
// after the member's name decides method vs field — on that branch the
// parser rewinds to before the type and reuses the method production,
// exactly as spec §4.2 describes.
func (p *Parser) parseMember(class *Class) {
	mods := p.parseModifiers()

	if p.at(lexer.IDENT_TYPE) && p.cur().Literal == class.Name && p.peek(1).Type == lexer.LEFT_PAREN {
		class.Constructors = append(class.Constructors, p.parseConstructor(mods, class.Name))
		return
	}

	mark := p.mark()
	typeName := p.cur().Literal
	p.advance()
	typeName += p.consumeArraySuffix()
	memberName := p.expect(lexer.IDENT_TYPE).Literal

	if p.at(lexer.LEFT_PAREN) {
		p.reset(mark)
		class.Methods = append(class.Methods, p.parseMethod(mods))
		return
	}

	class.Fields = append(class.Fields, p.parseFieldTail(mods, typeName, memberName))
}

// parseConstructor parses `Name(params) { body }`, the class name token
// already confirmed but not yet consumed.
func (p *Parser) parseConstructor(mods []string, className string) *Constructor {
	p.advance() // class name token
	params := p.parseParamList()
	body := p.parseBlock()
	return &Constructor{Modifiers: mods, ClassName: className, Params: params, Body: body}
}

// parseMethod parses `ReturnType name(params) { body }`.
func (p *Parser) parseMethod(mods []string) *Method {
	returnType := p.cur().Literal
	p.advance()
	returnType += p.consumeArraySuffix()
	name := p.expect(lexer.IDENT_TYPE).Literal
	params := p.parseParamList()
	body := p.parseBlock()
	return &Method{Modifiers: mods, ReturnType: returnType, Name: name, Params: params, Body: body}
}

// parseFieldTail parses the remainder of a field declaration once its
// modifiers, type, and name are already known: an optional `= expr`, then
// the terminating `;`.
func (p *Parser) parseFieldTail(mods []string, typeName, name string) *Field {
	var init Expr
	if p.accept(lexer.ASSIGN_OP) {
		init = p.parseExpression()
	}
	p.expect(lexer.SEMICOLON)
	return &Field{Modifiers: mods, TypeName: typeName, Name: name, Init: init}
}

// parseParamList parses `(T1 n1, T2 n2, ...)`.
func (p *Parser) parseParamList() []Param {
	p.expect(lexer.LEFT_PAREN)
	var params []Param
	if !p.at(lexer.RIGHT_PAREN) {
		params = append(params, p.parseParam())
		for p.accept(lexer.COMMA) {
			params = append(params, p.parseParam())
		}
	}
	p.expect(lexer.RIGHT_PAREN)
	return params
}

func (p *Parser) parseParam() Param {
	typeName := p.cur().Literal
	p.advance()
	typeName += p.consumeArraySuffix()
	name := p.expect(lexer.IDENT_TYPE).Literal
	return Param{TypeName: typeName, Name: name}
}

// parseModifiers collects any run of modifier keywords preceding a member
// (spec §4.2: "optionally preceded by any subset of the modifier
// tokens").
func (p *Parser) parseModifiers() []string {
	var mods []string
	for lexer.IsModifier(p.cur().Type) {
		mods = append(mods, p.cur().Literal)
		p.advance()
	}
	return mods
}
