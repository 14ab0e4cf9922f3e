package cmd

import (
	"fmt"

	"github.com/ngreenwood/langfront/internal/ast"
	"github.com/ngreenwood/langfront/internal/parser"
	"github.com/spf13/cobra"
)

var (
	parseEval    string
	parseDumpAST bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse source and display the resulting AST",
	Long: `Parse source code and print the AST, either as re-serialized source
text (the default) or as an indented tree with --dump-ast.

If no file is given and -e is not used, source is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse inline source instead of reading from file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the AST as an indented tree instead of re-serialized source")
}

func runParse(cmd *cobra.Command, args []string) error {
	source, err := readSource(parseEval, args)
	if err != nil {
		return err
	}

	program, err := parser.Parse(source)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	if parseDumpAST {
		dumpNode(program, 0)
		return nil
	}

	fmt.Println(program.String())
	return nil
}

func dumpNode(node ast.Node, indent int) {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "  "
	}

	switch n := node.(type) {
	case *ast.Program:
		fmt.Printf("%sProgram (%d statements)\n", prefix, len(n.Statements))
		for _, s := range n.Statements {
			dumpNode(s, indent+1)
		}
	case *ast.ExpressionStatement:
		fmt.Printf("%sExpressionStatement\n", prefix)
		dumpNode(n.Expr, indent+1)
	case *ast.BinaryExpression:
		fmt.Printf("%sBinaryExpression (%s)\n", prefix, n.Op)
		dumpNode(n.LHS, indent+1)
		dumpNode(n.RHS, indent+1)
	case *ast.AssignmentExpression:
		fmt.Printf("%sAssignmentExpression\n", prefix)
		dumpNode(n.LHS, indent+1)
		dumpNode(n.RHS, indent+1)
	case *ast.UnaryExpression:
		fmt.Printf("%sUnaryExpression (%s)\n", prefix, n.Op)
		dumpNode(n.Operand, indent+1)
	case *ast.VariableDeclaration:
		fmt.Printf("%sVariableDeclaration %s (mutable=%v)\n", prefix, n.Name.Symbol, n.IsMutable)
		if n.Value != nil {
			dumpNode(n.Value, indent+1)
		}
	case *ast.FunctionDeclaration:
		fmt.Printf("%sFunctionDeclaration %s\n", prefix, n.Name.Symbol)
		for _, s := range n.Body {
			dumpNode(s, indent+1)
		}
	case *ast.FunctionCall:
		fmt.Printf("%sFunctionCall %s\n", prefix, n.Name.Symbol)
		for _, a := range n.Arguments {
			dumpNode(a, indent+1)
		}
	case *ast.ReturnStatement:
		fmt.Printf("%sReturnStatement\n", prefix)
		dumpNode(n.Value, indent+1)
	case *ast.IfStatement:
		fmt.Printf("%sIfStatement\n", prefix)
		dumpNode(n.Condition, indent+1)
		for _, s := range n.Body {
			dumpNode(s, indent+1)
		}
	case *ast.ClassDeclaration:
		fmt.Printf("%sClassDeclaration %s\n", prefix, n.Type.Name)
		for _, f := range n.Fields {
			dumpNode(f.Decl, indent+1)
		}
		for _, m := range n.Methods {
			dumpNode(m.Decl, indent+1)
		}
	case *ast.NameSpaceDeclaration:
		fmt.Printf("%sNameSpaceDeclaration %s\n", prefix, n.Name.Symbol)
		for _, s := range n.Body {
			dumpNode(s, indent+1)
		}
	case *ast.NumericLiteral:
		fmt.Printf("%sNumericLiteral: %s\n", prefix, n.String())
	case *ast.StringLiteral:
		fmt.Printf("%sStringLiteral: %q\n", prefix, n.Value)
	case *ast.CharacterLiteral:
		fmt.Printf("%sCharacterLiteral: %q\n", prefix, n.Value)
	case *ast.BoolLiteral:
		fmt.Printf("%sBoolLiteral: %v\n", prefix, n.Value)
	case *ast.Identifier:
		fmt.Printf("%sIdentifier: %s\n", prefix, n.Symbol)
	default:
		fmt.Printf("%s%T: %s\n", prefix, node, node.String())
	}
}
