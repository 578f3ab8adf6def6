package parser_test

import (
	"testing"

	"github.com/leonardinius/treelox/internal/parser"
	"github.com/leonardinius/treelox/internal/token"
	"github.com/stretchr/testify/assert"
)

func TestAstPrinterVisitor(t *testing.T) {
	var tree parser.Expr = &parser.ExprBinary{
		Left: &parser.ExprUnary{
			Operator: token.NewTokenHeap(token.MINUS, "-", nil, 1),
			Right: &parser.ExprLiteral{
				Value: 123.0,
			},
		},
		Operator: token.NewTokenHeap(token.STAR, "*", nil, 1),
		Right: &parser.ExprGrouping{
			Expression: &parser.ExprLiteral{
				Value: 45.67,
			},
		}}

	p := parser.NewAstPrinter()
	out := p.Print(tree)
	assert.Equal(t, "(* (- 123) (group 45.67))", out)
}

func TestAstPrinterLiterals(t *testing.T) {
	p := parser.NewAstPrinter()

	assert.Equal(t, "nil", p.Print(&parser.ExprLiteral{Value: nil}))
	assert.Equal(t, "true", p.Print(&parser.ExprLiteral{Value: true}))
	assert.Equal(t, "false", p.Print(&parser.ExprLiteral{Value: false}))
	assert.Equal(t, "foo", p.Print(&parser.ExprLiteral{Value: "foo"}))
	assert.Equal(t, "2.5", p.Print(&parser.ExprLiteral{Value: 2.5}))
}

func TestRPNPrinterVisitor(t *testing.T) {
	testcases := []struct {
		in  string
		out string
	}{
		{`(1 + 2) * 3 - -4`, `1 2 + 3 * 4 ~ -`},
		{`1 * 2.5 + 2 * 2`, `1 2.5 * 2 2 * +`},
		{`a ? b : c`, `a b c ?:`},
		{`a = b or !c`, `a b c ! or =`},
		{`1, 2`, `1 2 ,`},
	}

	p := parser.NewRPNPrinter()
	for _, tc := range testcases {
		t.Run(tc.in, func(t *testing.T) {
			expr, ctx := parseExpression(t, tc.in)
			assert.False(t, ctx.HasSyntaxErrors())
			assert.Equal(t, tc.out, p.Print(expr))
		})
	}
}

func TestSourcePrinter(t *testing.T) {
	stmts, ctx := parse(t, `for (var i = 0; i < 3; i = i + 1) { print i; }`)
	assert.False(t, ctx.HasSyntaxErrors())

	expected := "{\n" +
		"  var i = 0;\n" +
		"  while (i < 3) {\n" +
		"    {\n" +
		"      print i;\n" +
		"    }\n" +
		"    i = i + 1;\n" +
		"  }\n" +
		"}\n"
	assert.Equal(t, expected, parser.NewSourcePrinter().Print(stmts))
}

func TestSourcePrinterRoundTrip(t *testing.T) {
	testcases := []string{
		`1 * 2.5 + 2 * 2;`,
		`a ? b ? c : d : e;`,
		`a ? b : c ? d : e;`,
		`var s = "x" + 1, "y";`,
		`x = y = -(-1);`,
		`print !true == false and nil or 1 >= 2;`,
		`if (a) if (b) print 1; else print 2;`,
		`if (a) { if (b) print 1; } else { print 2; }`,
		`while (i < 10) { i = i + 1; {} }`,
		`for (;;) print 1;`,
		`for (i = 0; i < 3;) { var j; j = i / 0.5; }`,
		"var a = 1;\n{\n  var a = a * 2;\n  print a;\n}\nprint a;",
	}

	printer := parser.NewSourcePrinter()
	sexpr := parser.NewAstPrinter()
	for _, src := range testcases {
		t.Run(src, func(t *testing.T) {
			stmts, ctx := parse(t, src)
			assert.False(t, ctx.HasSyntaxErrors())

			printed := printer.Print(stmts)
			reparsed, ctx := parse(t, printed)
			assert.False(t, ctx.HasSyntaxErrors(), printed)
			assert.Equal(t, sexpr.PrintStmts(stmts), sexpr.PrintStmts(reparsed))
			assert.Equal(t, printed, printer.Print(reparsed))
		})
	}
}

func TestDump(t *testing.T) {
	stmts, ctx := parse(t, `print 1 + 2;`)
	assert.False(t, ctx.HasSyntaxErrors())

	out := parser.Dump(stmts)
	assert.Contains(t, out, "StmtPrint")
	assert.Contains(t, out, "ExprBinary")
	assert.Contains(t, out, `Lexeme: "+"`)
}
