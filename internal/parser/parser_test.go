package parser

import (
	"testing"

	"github.com/ngreenwood/langfront/internal/ast"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", src, err)
	}
	return program
}

func TestParseVariableDeclarationNoInitializer(t *testing.T) {
	program := mustParse(t, "int32 x;")
	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}
	es, ok := program.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected *ast.ExpressionStatement, got %T", program.Statements[0])
	}
	vd, ok := es.Expr.(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("expected *ast.VariableDeclaration, got %T", es.Expr)
	}
	if vd.Name.Symbol != "x" || vd.Type.Name != "int32" || vd.Value != nil {
		t.Errorf("unexpected declaration: %+v", vd)
	}
}

func TestParseVariableDeclarationMutableNoInitializerDiscardsIsMutable(t *testing.T) {
	// §9 open question: the no-initializer branch always records
	// IsMutable = false, regardless of a `mutable` prefix in the source.
	program := mustParse(t, "mutable int32 x;")
	es := program.Statements[0].(*ast.ExpressionStatement)
	vd := es.Expr.(*ast.VariableDeclaration)
	if vd.IsMutable {
		t.Errorf("expected IsMutable = false for the no-initializer mutable form, got true")
	}
}

func TestParseVariableDeclarationWithInitializer(t *testing.T) {
	program := mustParse(t, "mutable int32 x = 5;")
	es := program.Statements[0].(*ast.ExpressionStatement)
	vd := es.Expr.(*ast.VariableDeclaration)
	if !vd.IsMutable {
		t.Errorf("expected IsMutable = true")
	}
	lit, ok := vd.Value.(*ast.NumericLiteral)
	if !ok || lit.Kind != ast.UintKind || lit.UintValue != 5 {
		t.Errorf("unexpected value: %+v", vd.Value)
	}
}

func TestParseOperatorPrecedence(t *testing.T) {
	program := mustParse(t, "a + b * c;")
	es := program.Statements[0].(*ast.ExpressionStatement)
	be, ok := es.Expr.(*ast.BinaryExpression)
	if !ok || be.Op != "+" {
		t.Fatalf("expected top-level '+', got %+v", es.Expr)
	}
	rhs, ok := be.RHS.(*ast.BinaryExpression)
	if !ok || rhs.Op != "*" {
		t.Fatalf("expected nested '*' on the right, got %+v", be.RHS)
	}
}

func TestParseExponentAppearsTwice(t *testing.T) {
	program := mustParse(t, "a ** b ** c;")
	es := program.Statements[0].(*ast.ExpressionStatement)
	outer, ok := es.Expr.(*ast.BinaryExpression)
	if !ok || outer.Op != "**" {
		t.Fatalf("expected outer '**', got %+v", es.Expr)
	}
	inner, ok := outer.LHS.(*ast.BinaryExpression)
	if !ok || inner.Op != "**" {
		t.Fatalf("expected '**' folded left, got %+v", outer.LHS)
	}
}

func TestParseFunctionCallWithNegativeLiteral(t *testing.T) {
	program := mustParse(t, "f(1, -2);")
	es := program.Statements[0].(*ast.ExpressionStatement)
	call, ok := es.Expr.(*ast.FunctionCall)
	if !ok || call.Name.Symbol != "f" || len(call.Arguments) != 2 {
		t.Fatalf("unexpected call: %+v", es.Expr)
	}
}

func TestParseFunctionDeclarationWithReturn(t *testing.T) {
	program := mustParse(t, "int32 add(int32 a, int32 b) { return a + b; }")
	es := program.Statements[0].(*ast.ExpressionStatement)
	fd, ok := es.Expr.(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("expected *ast.FunctionDeclaration, got %T", es.Expr)
	}
	if fd.Name.Symbol != "add" || len(fd.Parameters) != 2 {
		t.Fatalf("unexpected declaration: %+v", fd)
	}
	if len(fd.Body) != 1 {
		t.Fatalf("expected 1 statement in body, got %d", len(fd.Body))
	}
	bodyEs := fd.Body[0].(*ast.ExpressionStatement)
	if _, ok := bodyEs.Expr.(*ast.ReturnStatement); !ok {
		t.Fatalf("expected return statement, got %T", bodyEs.Expr)
	}
}

func TestParseIfStatement(t *testing.T) {
	program := mustParse(t, "if (a == b) { int32 x = 1; }")
	es := program.Statements[0].(*ast.ExpressionStatement)
	is, ok := es.Expr.(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected *ast.IfStatement, got %T", es.Expr)
	}
	if _, ok := is.Condition.(*ast.BinaryExpression); !ok {
		t.Fatalf("expected condition to be a BinaryExpression, got %T", is.Condition)
	}
	if len(is.Body) != 1 {
		t.Fatalf("expected 1 statement in body, got %d", len(is.Body))
	}
}

func TestParseIfSingleStatementBodyRejectsNestedDeclarations(t *testing.T) {
	_, err := Parse("if (a == b) class Foo { }")
	if err == nil {
		t.Fatal("expected an error for a class declaration in an if-statement's single-statement body")
	}
}

func TestParseClassDeclarationWithAccessSpecifiers(t *testing.T) {
	program := mustParse(t, `class Point {
		int32 x;
		private:
		int32 y;
		public:
		int32 getX() { return x; }
	}`)
	es := program.Statements[0].(*ast.ExpressionStatement)
	cd, ok := es.Expr.(*ast.ClassDeclaration)
	if !ok {
		t.Fatalf("expected *ast.ClassDeclaration, got %T", es.Expr)
	}
	if len(cd.Fields) != 2 || len(cd.Methods) != 1 {
		t.Fatalf("unexpected member counts: %d fields, %d methods", len(cd.Fields), len(cd.Methods))
	}
	if cd.Fields[0].Access != ast.Public || cd.Fields[1].Access != ast.Private {
		t.Fatalf("unexpected access specifiers: %v, %v", cd.Fields[0].Access, cd.Fields[1].Access)
	}
	if cd.Methods[0].Access != ast.Public {
		t.Fatalf("expected method access Public, got %v", cd.Methods[0].Access)
	}
}

func TestParseStringTypeIsClassType(t *testing.T) {
	program := mustParse(t, "String s = \"hi\";")
	es := program.Statements[0].(*ast.ExpressionStatement)
	vd, ok := es.Expr.(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("expected *ast.VariableDeclaration, got %T", es.Expr)
	}
	if vd.Type.Name != "String" {
		t.Errorf("unexpected type name: %q", vd.Type.Name)
	}
}

func TestParseNamespaceDeclaration(t *testing.T) {
	program := mustParse(t, "namespace ns { int32 x; }")
	es := program.Statements[0].(*ast.ExpressionStatement)
	ns, ok := es.Expr.(*ast.NameSpaceDeclaration)
	if !ok {
		t.Fatalf("expected *ast.NameSpaceDeclaration, got %T", es.Expr)
	}
	if ns.Name.Symbol != "ns" || len(ns.Body) != 1 {
		t.Fatalf("unexpected namespace: %+v", ns)
	}
}

func TestParseRoundTrip(t *testing.T) {
	sources := []string{
		"int32 x = 1;",
		"mutable int32 x = 1;",
		"a + b * c;",
		"f(1, -2);",
		"if (a == b) { int32 x = 1; }",
		"namespace ns { int32 x; }",
		"class Point { int32 x; private: int32 y; }",
		"int32 add(int32 a, int32 b) { return a + b; }",
	}

	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			program := mustParse(t, src)
			reprinted := program.String()
			again, err := Parse(reprinted)
			if err != nil {
				t.Fatalf("re-parsing printed output %q failed: %v", reprinted, err)
			}
			if again.String() != reprinted {
				t.Errorf("round trip not idempotent: %q != %q", again.String(), reprinted)
			}
		})
	}
}
