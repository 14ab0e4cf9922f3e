package parser

import (
	"github.com/ngreenwood/langfront/internal/ast"
	"github.com/ngreenwood/langfront/internal/lexer"
)

// parseIfStatement implements §4.2.10: `if` `(` condition `)` body. The
// condition is parsed at non-top-level (no trailing semicolon required) and
// must come out as one of the shapes the data model allows for it.
func (p *Parser) parseIfStatement() (ast.Statement, error) {
	p.advance() // consume 'if'

	if _, err := p.expect(lexer.OParen); err != nil {
		return nil, err
	}

	condition, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}

	switch condition.(type) {
	case *ast.BinaryExpression, *ast.BoolLiteral, *ast.NumericLiteral:
		// allowed shape
	default:
		return nil, newParseError("if condition must be a boolean, numeric, or binary expression")
	}

	if _, err := p.expect(lexer.CParen); err != nil {
		return nil, err
	}

	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	return wrap(&ast.IfStatement{Condition: condition, Body: body}), nil
}

// parseBody parses the `{ stmt* }` or single-statement form shared by
// if-bodies. The single-statement form disallows nested namespace/class
// declarations.
func (p *Parser) parseBody() ([]ast.Statement, error) {
	if p.peek().Kind == lexer.OCurlyBrace {
		p.advance()
		var stmts []ast.Statement
		for p.peek().Kind != lexer.CCurlyBrace {
			stmt, err := p.parseStatement(true)
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, stmt)
		}
		p.advance() // consume '}'
		return stmts, nil
	}

	stmt, err := p.parseStatement(false)
	if err != nil {
		return nil, err
	}
	return []ast.Statement{stmt}, nil
}

// parseNamespaceDeclaration implements §4.2.9: `namespace` identifier
// `{` statement* `}`, using the full statement dispatcher for its body.
func (p *Parser) parseNamespaceDeclaration() (ast.Statement, error) {
	p.advance() // consume 'namespace'

	nameTok, err := p.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	name := &ast.Identifier{Symbol: nameTok.Text}

	if _, err := p.expect(lexer.OCurlyBrace); err != nil {
		return nil, err
	}

	var body []ast.Statement
	for p.peek().Kind != lexer.CCurlyBrace {
		stmt, err := p.parseStatement(true)
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	p.advance() // consume '}'

	return wrap(&ast.NameSpaceDeclaration{Name: name, Body: body}), nil
}
