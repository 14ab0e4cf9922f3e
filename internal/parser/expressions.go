package parser

import (
	"github.com/ngreenwood/langfront/internal/ast"
	"github.com/ngreenwood/langfront/internal/lexer"
)

// parseAssignment is the entry point for §4.2.2's climbing ladder, level 1.
// Assignment is right-associative: after parsing the left side at the next
// level down, a trailing Equals recurses into another parseAssignment for
// the right side rather than folding left.
func (p *Parser) parseAssignment() (ast.Expression, error) {
	left, err := p.parseBoolEquality()
	if err != nil {
		return nil, err
	}

	if p.peek().Kind == lexer.Equals {
		p.advance()
		right, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		return &ast.AssignmentExpression{LHS: left, RHS: right}, nil
	}

	return left, nil
}

// parseBoolEquality handles level 2: `==`, `!=`, folding left.
func (p *Parser) parseBoolEquality() (ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	for p.peek().Kind == lexer.EqualsEquals || p.peek().Kind == lexer.NotEquals {
		op := p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{LHS: left, Op: op.Text, RHS: right}
	}

	return left, nil
}

// parseAdditive handles level 3: `+`, `-`, folding left.
func (p *Parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	for p.peek().Kind == lexer.Plus || p.peek().Kind == lexer.Minus {
		op := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{LHS: left, Op: op.Text, RHS: right}
	}

	return left, nil
}

// parseMultiplicative handles level 4: `*`, `/`, `%`, folding left.
func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parseExponent()
	if err != nil {
		return nil, err
	}

	for p.peek().Kind == lexer.Multiply || p.peek().Kind == lexer.Divide || p.peek().Kind == lexer.Modulus {
		op := p.advance()
		right, err := p.parseExponent()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{LHS: left, Op: op.Text, RHS: right}
	}

	return left, nil
}

// parseExponent handles level 5: `**`. Right-associative in intent, but
// implemented as a left fold, matching the original parser exactly (see
// design notes) — `a ** b ** c` therefore parses as `(a ** b) ** c`.
func (p *Parser) parseExponent() (ast.Expression, error) {
	left, err := p.parseDot()
	if err != nil {
		return nil, err
	}

	for p.peek().Kind == lexer.Exponent {
		op := p.advance()
		right, err := p.parseDot()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{LHS: left, Op: op.Text, RHS: right}
	}

	return left, nil
}

// parseDot handles level 6: `.`, folding left.
func (p *Parser) parseDot() (ast.Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.peek().Kind == lexer.Dot {
		op := p.advance()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{LHS: left, Op: op.Text, RHS: right}
	}

	return left, nil
}

// parsePrimary handles level 7: an identifier (optionally a function call
// when followed by an open paren), a numeric/string/char/bool literal, or a
// parenthesized expression.
func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.peek()

	switch tok.Kind {
	case lexer.Identifier:
		p.advance()
		if p.peek().Kind == lexer.OParen {
			return p.parseFunctionCall(tok.Text)
		}
		return &ast.Identifier{Symbol: tok.Text}, nil

	case lexer.IntegerLiteral:
		p.advance()
		v, err := parseUint(tok.Text)
		if err != nil {
			return nil, err
		}
		return ast.NewUintLiteral(tok.Text, v), nil

	case lexer.NegativeIntegerLiteral:
		p.advance()
		v, err := parseInt(tok.Text)
		if err != nil {
			return nil, err
		}
		return ast.NewIntLiteral(tok.Text, v), nil

	case lexer.FloatLiteral:
		p.advance()
		v, err := parseFloat(tok.Text)
		if err != nil {
			return nil, err
		}
		return ast.NewFloatLiteral(tok.Text, v), nil

	case lexer.StringLiteral:
		p.advance()
		return &ast.StringLiteral{Value: tok.Text}, nil

	case lexer.CharLiteral:
		p.advance()
		return &ast.CharacterLiteral{Value: tok.Text}, nil

	case lexer.BoolLiteral:
		p.advance()
		return &ast.BoolLiteral{Value: tok.Text == "true"}, nil

	case lexer.OParen:
		p.advance()
		expr, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.CParen); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, newParseError("unexpected token %s in expression", tok.Kind)
	}
}

// parseFunctionCall parses the argument list of a call whose name has
// already been consumed. Arguments are additive-level expressions.
func (p *Parser) parseFunctionCall(name string) (ast.Expression, error) {
	p.advance() // consume '('

	var args []ast.Statement
	for p.peek().Kind != lexer.CParen {
		arg, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		args = append(args, wrap(arg))

		switch p.peek().Kind {
		case lexer.Comma:
			p.advance()
		case lexer.CParen:
			// loop exits
		default:
			return nil, newParseError("expected ',' or ')' in argument list of call to %q, got %s", name, p.peek().Kind)
		}
	}
	p.advance() // consume ')'

	return &ast.FunctionCall{Name: &ast.Identifier{Symbol: name}, Arguments: args}, nil
}
