package parser

import (
	"fmt"
	"strings"

	"github.com/leonardinius/treelox/internal/token"
)

// AstPrinter renders the tree as S-expressions, e.g. "(+ (* 1 2.5) (* 2 2))".
type AstPrinter struct{}

func NewAstPrinter() *AstPrinter {
	return &AstPrinter{}
}

func (p *AstPrinter) Print(expr Expr) string {
	return p.expr(expr)
}

// PrintStmts renders one S-expression per statement, newline separated.
func (p *AstPrinter) PrintStmts(stmts []Stmt) string {
	lines := make([]string, len(stmts))
	for i, stmt := range stmts {
		lines[i] = p.stmt(stmt)
	}
	return strings.Join(lines, "\n")
}

// VisitExprAssign implements ExprVisitor.
func (p *AstPrinter) VisitExprAssign(expr *ExprAssign) (string, error) {
	return p.parenthesize("=", expr.Name.Lexeme, p.expr(expr.Value)), nil
}

// VisitExprBinary implements ExprVisitor.
func (p *AstPrinter) VisitExprBinary(expr *ExprBinary) (string, error) {
	return p.parenthesize(expr.Operator.Lexeme, p.expr(expr.Left), p.expr(expr.Right)), nil
}

// VisitExprGrouping implements ExprVisitor.
func (p *AstPrinter) VisitExprGrouping(expr *ExprGrouping) (string, error) {
	return p.parenthesize("group", p.expr(expr.Expression)), nil
}

// VisitExprLiteral implements ExprVisitor.
func (p *AstPrinter) VisitExprLiteral(expr *ExprLiteral) (string, error) {
	return formatLiteral(expr.Value, false), nil
}

// VisitExprLogical implements ExprVisitor.
func (p *AstPrinter) VisitExprLogical(expr *ExprLogical) (string, error) {
	return p.parenthesize(expr.Operator.Lexeme, p.expr(expr.Left), p.expr(expr.Right)), nil
}

// VisitExprTernary implements ExprVisitor.
func (p *AstPrinter) VisitExprTernary(expr *ExprTernary) (string, error) {
	return p.parenthesize("?:", p.expr(expr.Condition), p.expr(expr.ThenBranch), p.expr(expr.ElseBranch)), nil
}

// VisitExprUnary implements ExprVisitor.
func (p *AstPrinter) VisitExprUnary(expr *ExprUnary) (string, error) {
	return p.parenthesize(expr.Operator.Lexeme, p.expr(expr.Right)), nil
}

// VisitExprVariable implements ExprVisitor.
func (p *AstPrinter) VisitExprVariable(expr *ExprVariable) (string, error) {
	return expr.Name.Lexeme, nil
}

// VisitStmtBlock implements StmtVisitor.
func (p *AstPrinter) VisitStmtBlock(stmt *StmtBlock) (string, error) {
	parts := make([]string, len(stmt.Statements))
	for i, s := range stmt.Statements {
		parts[i] = p.stmt(s)
	}
	return p.parenthesize("block", parts...), nil
}

// VisitStmtExpression implements StmtVisitor.
func (p *AstPrinter) VisitStmtExpression(stmt *StmtExpression) (string, error) {
	return p.parenthesize(";", p.expr(stmt.Expression)), nil
}

// VisitStmtIf implements StmtVisitor.
func (p *AstPrinter) VisitStmtIf(stmt *StmtIf) (string, error) {
	if stmt.ElseBranch == nil {
		return p.parenthesize("if", p.expr(stmt.Condition), p.stmt(stmt.ThenBranch)), nil
	}
	return p.parenthesize("if", p.expr(stmt.Condition), p.stmt(stmt.ThenBranch), p.stmt(stmt.ElseBranch)), nil
}

// VisitStmtPrint implements StmtVisitor.
func (p *AstPrinter) VisitStmtPrint(stmt *StmtPrint) (string, error) {
	return p.parenthesize("print", p.expr(stmt.Expression)), nil
}

// VisitStmtVar implements StmtVisitor.
func (p *AstPrinter) VisitStmtVar(stmt *StmtVar) (string, error) {
	if stmt.Initializer == nil {
		return p.parenthesize("var", stmt.Name.Lexeme), nil
	}
	return p.parenthesize("var", stmt.Name.Lexeme, p.expr(stmt.Initializer)), nil
}

// VisitStmtWhile implements StmtVisitor.
func (p *AstPrinter) VisitStmtWhile(stmt *StmtWhile) (string, error) {
	return p.parenthesize("while", p.expr(stmt.Condition), p.stmt(stmt.Body)), nil
}

func (p *AstPrinter) parenthesize(name string, parts ...string) string {
	out := new(strings.Builder)
	_, _ = out.WriteString("(")
	_, _ = out.WriteString(name)
	for _, part := range parts {
		_, _ = out.WriteString(" ")
		_, _ = out.WriteString(part)
	}
	_, _ = out.WriteString(")")
	return out.String()
}

func (p *AstPrinter) expr(expr Expr) string {
	if expr == nil {
		return "<nil>"
	}
	s, _ := AcceptExpr[string](expr, p)
	return s
}

func (p *AstPrinter) stmt(stmt Stmt) string {
	if stmt == nil {
		return "<nil>"
	}
	s, _ := AcceptStmt[string](stmt, p)
	return s
}

// formatLiteral prints a literal value; quoted strings are valid Lox source.
func formatLiteral(value any, quoted bool) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case float64:
		return token.FormatNumber(v)
	case string:
		if quoted {
			return `"` + v + `"`
		}
		return v
	}
	return fmt.Sprintf("%v", value)
}

var _ ExprVisitor[string] = (*AstPrinter)(nil)
var _ StmtVisitor[string] = (*AstPrinter)(nil)
