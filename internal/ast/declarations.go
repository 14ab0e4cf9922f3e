package ast

import "bytes"

// VariableDeclaration introduces a named binding: `type name;` or
// `type name = value;`, optionally `mutable`-qualified.
//
// Value is nil iff the source used the no-initializer form. Note the
// documented quirk inherited from the original parser: when there is no
// initializer, IsMutable is always recorded as false regardless of whether
// the source had a `mutable` prefix — see the design notes' open question.
type VariableDeclaration struct {
	IsMutable bool
	Type      *TypeName
	Name      *Identifier
	Value     Expression // nil if no initializer
}

func (vd *VariableDeclaration) expressionNode()      {}
func (vd *VariableDeclaration) TokenLiteral() string { return vd.Type.TokenLiteral() }

// String renders the type's own `mutable`/sigil text (TypeName.String()
// already carries those) followed by the name and optional initializer.
// The caller (ExpressionStatement) adds the terminating semicolon.
func (vd *VariableDeclaration) String() string {
	var out bytes.Buffer
	out.WriteString(vd.Type.String())
	out.WriteString(" ")
	out.WriteString(vd.Name.String())
	if vd.Value != nil {
		out.WriteString(" = ")
		out.WriteString(vd.Value.String())
	}
	return out.String()
}

// Parameter is one entry of a function's parameter list: `type name`.
type Parameter struct {
	Type *TypeName
	Name *Identifier
}

func (p *Parameter) expressionNode()      {}
func (p *Parameter) TokenLiteral() string { return p.Type.TokenLiteral() }
func (p *Parameter) String() string {
	return p.Type.String() + " " + p.Name.String()
}
