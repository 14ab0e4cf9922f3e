package parser

import (
	"github.com/ngreenwood/langfront/internal/ast"
	"github.com/ngreenwood/langfront/internal/lexer"
)

// parseTypeName consumes a type token and its optional ref/ptr sigil,
// starting from the current position. isMutable records whether a
// `mutable` prefix was already consumed by the caller.
func (p *Parser) parseTypeName(isMutable bool) (*ast.TypeName, error) {
	typeTok := p.peek()
	if !isTypeToken(typeTok.Kind) {
		return nil, newParseError("expected a type, got %s", typeTok.Kind)
	}
	p.advance()

	sigil := ast.NoSigil
	switch p.peek().Kind {
	case lexer.Reference:
		sigil = ast.Ref
		p.advance()
	case lexer.Pointer:
		sigil = ast.Ptr
		p.advance()
	}

	return &ast.TypeName{Name: typeTok.Text, IsMutable: isMutable, PtrOrRef: sigil}, nil
}

// parseVariableDeclaration implements §4.2.5. It starts at the type token
// (any `mutable` prefix has already been consumed by the caller, which
// tells us about it via isMutable) and consumes through the terminating
// semicolon itself.
func (p *Parser) parseVariableDeclarationNode(isMutable bool) (*ast.VariableDeclaration, error) {
	typeName, err := p.parseTypeName(isMutable)
	if err != nil {
		return nil, err
	}

	nameTok, err := p.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	name := &ast.Identifier{Symbol: nameTok.Text}

	switch p.peek().Kind {
	case lexer.Semicolon:
		p.advance()
		// The no-initializer branch discards isMutable, always recording
		// false — this is a known quirk inherited from the original
		// implementation, preserved rather than fixed (see design notes).
		return &ast.VariableDeclaration{
			IsMutable: false,
			Type:      typeName,
			Name:      name,
		}, nil

	case lexer.Equals:
		p.advance()
		value, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Semicolon); err != nil {
			return nil, err
		}
		return &ast.VariableDeclaration{
			IsMutable: isMutable,
			Type:      typeName,
			Name:      name,
			Value:     value,
		}, nil

	default:
		return nil, newParseError("expected '=' or ';' after variable name %q, got %s", name.Symbol, p.peek().Kind)
	}
}

// parseVariableDeclaration wraps parseVariableDeclarationNode for contexts
// that need a top-level Statement.
func (p *Parser) parseVariableDeclaration(isMutable bool) (ast.Statement, error) {
	decl, err := p.parseVariableDeclarationNode(isMutable)
	if err != nil {
		return nil, err
	}
	return wrap(decl), nil
}

// parseParameter parses a single function parameter: optional `mutable`,
// a type token, optional ref/ptr sigil, an identifier.
func (p *Parser) parseParameter() (*ast.Parameter, error) {
	isMutable := false
	if p.peek().Kind == lexer.mutable_ {
		isMutable = true
		p.advance()
	}

	typeName, err := p.parseTypeName(isMutable)
	if err != nil {
		return nil, err
	}

	nameTok, err := p.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}

	return &ast.Parameter{Type: typeName, Name: &ast.Identifier{Symbol: nameTok.Text}}, nil
}

// parseFunctionDeclaration implements §4.2.6. It starts at the return-type
// token; any `mutable` prefix has already been consumed by the caller.
func (p *Parser) parseFunctionDeclarationNode(isMutable bool) (*ast.FunctionDeclaration, error) {
	returnType, err := p.parseTypeName(isMutable)
	if err != nil {
		return nil, err
	}

	nameTok, err := p.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	name := &ast.Identifier{Symbol: nameTok.Text}

	if _, err := p.expect(lexer.OParen); err != nil {
		return nil, err
	}

	var params []*ast.Parameter
	for p.peek().Kind != lexer.CParen {
		param, err := p.parseParameter()
		if err != nil {
			return nil, err
		}
		params = append(params, param)

		switch p.peek().Kind {
		case lexer.Comma:
			p.advance()
		case lexer.CParen:
			// loop exits
		default:
			return nil, newParseError("expected ',' or ')' in parameter list of function %q, got %s", name.Symbol, p.peek().Kind)
		}
	}
	p.advance() // consume ')'

	if _, err := p.expect(lexer.OCurlyBrace); err != nil {
		return nil, err
	}

	body, err := p.parseFunctionBody()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.CCurlyBrace); err != nil {
		return nil, err
	}

	return &ast.FunctionDeclaration{
		IsMutable:  isMutable,
		ReturnType: returnType,
		Name:       name,
		Parameters: params,
		Body:       body,
	}, nil
}

// parseFunctionDeclaration wraps parseFunctionDeclarationNode for contexts
// that need a top-level Statement.
func (p *Parser) parseFunctionDeclaration(isMutable bool) (ast.Statement, error) {
	decl, err := p.parseFunctionDeclarationNode(isMutable)
	if err != nil {
		return nil, err
	}
	return wrap(decl), nil
}

// parseFunctionBody reads statements until either a return statement has
// just been appended, or the closing brace is reached.
func (p *Parser) parseFunctionBody() ([]ast.Statement, error) {
	var body []ast.Statement
	for p.peek().Kind != lexer.CCurlyBrace {
		stmt, err := p.parseStatement(true)
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)

		if es, ok := stmt.(*ast.ExpressionStatement); ok {
			if _, isReturn := es.Expr.(*ast.ReturnStatement); isReturn {
				break
			}
		}
	}
	return body, nil
}
