package ast

import (
	"bytes"
	"strings"
)

// FunctionDeclaration is `returnType name(params) { body }`, optionally
// `mutable`-qualified.
type FunctionDeclaration struct {
	IsMutable  bool
	ReturnType *TypeName
	Name       *Identifier
	Parameters []*Parameter
	Body       []Statement
}

func (fd *FunctionDeclaration) expressionNode()      {}
func (fd *FunctionDeclaration) TokenLiteral() string { return fd.ReturnType.TokenLiteral() }
func (fd *FunctionDeclaration) String() string {
	var out bytes.Buffer
	if fd.IsMutable {
		out.WriteString("mutable ")
	}
	out.WriteString(fd.ReturnType.String())
	out.WriteString(" ")
	out.WriteString(fd.Name.String())
	out.WriteString("(")

	params := make([]string, 0, len(fd.Parameters))
	for _, p := range fd.Parameters {
		params = append(params, p.String())
	}
	out.WriteString(strings.Join(params, ", "))

	out.WriteString(") { ")
	out.WriteString(joinStatements(fd.Body))
	out.WriteString(" }")
	return out.String()
}

// FunctionCall is `name(args)`. Arguments are parsed at the additive
// precedence level, so each one is wrapped as an ExpressionStatement.
type FunctionCall struct {
	Name      *Identifier
	Arguments []Statement
}

func (fc *FunctionCall) expressionNode()      {}
func (fc *FunctionCall) TokenLiteral() string { return fc.Name.Symbol }

// String renders each argument's wrapped expression directly, skipping the
// ExpressionStatement's own String(): that would append the statement
// terminator this grammar never wants inside a call's argument list.
func (fc *FunctionCall) String() string {
	args := make([]string, 0, len(fc.Arguments))
	for _, a := range fc.Arguments {
		if es, ok := a.(*ExpressionStatement); ok {
			args = append(args, es.Expr.String())
			continue
		}
		args = append(args, a.String())
	}
	return fc.Name.String() + "(" + strings.Join(args, ", ") + ")"
}

// ReturnStatement is `return value;`. It terminates the enclosing function
// body: the parser appends it and stops reading further statements.
type ReturnStatement struct {
	Value Statement
}

func (rs *ReturnStatement) expressionNode()      {}
func (rs *ReturnStatement) TokenLiteral() string { return "return" }

// String renders "return " followed by the wrapped statement's own text,
// which already carries its own terminator (e.g. the ';' of the expression
// statement it wraps).
func (rs *ReturnStatement) String() string {
	return "return " + rs.Value.String()
}
