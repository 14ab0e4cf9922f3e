package parser

import (
	"github.com/ngreenwood/langfront/internal/ast"
	"github.com/ngreenwood/langfront/internal/lexer"
)

// parseClassDefinition implements §4.2.8: `class` `ClassType` `{` members `}`.
// currentAccess is sticky across members, defaulting to Public, and changes
// whenever a `public:`/`private:`/`protected:` marker is seen.
func (p *Parser) parseClassDefinition() (ast.Statement, error) {
	p.advance() // consume 'class'

	nameTok, err := p.expect(lexer.ClassType)
	if err != nil {
		return nil, err
	}
	classType := &ast.TypeName{Name: nameTok.Text}

	if _, err := p.expect(lexer.OCurlyBrace); err != nil {
		return nil, err
	}

	decl := &ast.ClassDeclaration{Type: classType}
	currentAccess := ast.Public

	for p.peek().Kind != lexer.CCurlyBrace {
		switch p.peek().Kind {
		case lexer.public_:
			currentAccess = ast.Public
			p.advance()
			if _, err := p.expect(lexer.Colon); err != nil {
				return nil, err
			}
			continue
		case lexer.private_:
			currentAccess = ast.Private
			p.advance()
			if _, err := p.expect(lexer.Colon); err != nil {
				return nil, err
			}
			continue
		case lexer.protected_:
			currentAccess = ast.Protected
			p.advance()
			if _, err := p.expect(lexer.Colon); err != nil {
				return nil, err
			}
			continue
		}

		isMutable := false
		i := 0
		if p.peek().Kind == lexer.mutable_ {
			isMutable = true
			i++
		}

		if !isTypeToken(p.peekAt(i).Kind) {
			return nil, newParseError("expected a class member, got %s", p.peekAt(i).Kind)
		}
		i++

		if isRefOrPtrSigil(p.peekAt(i).Kind) {
			i++
		}

		if p.peekAt(i).Kind != lexer.Identifier {
			return nil, newParseError("expected an identifier in class member, got %s", p.peekAt(i).Kind)
		}
		i++

		isMethod := p.peekAt(i).Kind == lexer.OParen

		if isMutable {
			p.advance() // consume 'mutable'
		}

		if isMethod {
			method, err := p.parseFunctionDeclarationNode(isMutable)
			if err != nil {
				return nil, err
			}
			decl.Methods = append(decl.Methods, &ast.MethodDeclaration{Decl: method, Access: currentAccess})
		} else {
			field, err := p.parseVariableDeclarationNode(isMutable)
			if err != nil {
				return nil, err
			}
			decl.Fields = append(decl.Fields, &ast.FieldDeclaration{Decl: field, Access: currentAccess})
		}
	}
	p.advance() // consume '}'

	return wrap(decl), nil
}
