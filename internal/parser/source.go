package parser

import (
	"strings"
)

// SourcePrinter renders a tree back to Lox source. Parsing the output
// yields a tree with the same shape: groupings are kept as written and
// no other parentheses are added.
type SourcePrinter struct {
	indent int
	out    strings.Builder
}

func NewSourcePrinter() *SourcePrinter {
	return &SourcePrinter{}
}

func (p *SourcePrinter) Print(stmts []Stmt) string {
	p.indent = 0
	p.out.Reset()
	for _, stmt := range stmts {
		p.line(p.stmt(stmt))
	}
	return p.out.String()
}

func (p *SourcePrinter) PrintExpr(expr Expr) string {
	return p.expr(expr)
}

// VisitExprAssign implements ExprVisitor.
func (p *SourcePrinter) VisitExprAssign(expr *ExprAssign) (string, error) {
	return expr.Name.Lexeme + " = " + p.expr(expr.Value), nil
}

// VisitExprBinary implements ExprVisitor.
func (p *SourcePrinter) VisitExprBinary(expr *ExprBinary) (string, error) {
	if expr.Operator.Lexeme == "," {
		return p.expr(expr.Left) + ", " + p.expr(expr.Right), nil
	}
	return p.expr(expr.Left) + " " + expr.Operator.Lexeme + " " + p.expr(expr.Right), nil
}

// VisitExprGrouping implements ExprVisitor.
func (p *SourcePrinter) VisitExprGrouping(expr *ExprGrouping) (string, error) {
	return "(" + p.expr(expr.Expression) + ")", nil
}

// VisitExprLiteral implements ExprVisitor.
func (p *SourcePrinter) VisitExprLiteral(expr *ExprLiteral) (string, error) {
	return formatLiteral(expr.Value, true), nil
}

// VisitExprLogical implements ExprVisitor.
func (p *SourcePrinter) VisitExprLogical(expr *ExprLogical) (string, error) {
	return p.expr(expr.Left) + " " + expr.Operator.Lexeme + " " + p.expr(expr.Right), nil
}

// VisitExprTernary implements ExprVisitor.
func (p *SourcePrinter) VisitExprTernary(expr *ExprTernary) (string, error) {
	return p.expr(expr.Condition) + " ? " + p.expr(expr.ThenBranch) + " : " + p.expr(expr.ElseBranch), nil
}

// VisitExprUnary implements ExprVisitor.
func (p *SourcePrinter) VisitExprUnary(expr *ExprUnary) (string, error) {
	return expr.Operator.Lexeme + p.expr(expr.Right), nil
}

// VisitExprVariable implements ExprVisitor.
func (p *SourcePrinter) VisitExprVariable(expr *ExprVariable) (string, error) {
	return expr.Name.Lexeme, nil
}

// VisitStmtBlock implements StmtVisitor.
func (p *SourcePrinter) VisitStmtBlock(stmt *StmtBlock) (string, error) {
	if len(stmt.Statements) == 0 {
		return "{}", nil
	}

	lines := []string{"{"}
	p.indent++
	for _, s := range stmt.Statements {
		lines = append(lines, p.pad()+p.stmt(s))
	}
	p.indent--
	lines = append(lines, p.pad()+"}")
	return strings.Join(lines, "\n"), nil
}

// VisitStmtExpression implements StmtVisitor.
func (p *SourcePrinter) VisitStmtExpression(stmt *StmtExpression) (string, error) {
	return p.expr(stmt.Expression) + ";", nil
}

// VisitStmtIf implements StmtVisitor.
func (p *SourcePrinter) VisitStmtIf(stmt *StmtIf) (string, error) {
	s := "if (" + p.expr(stmt.Condition) + ") " + p.stmt(stmt.ThenBranch)
	if stmt.ElseBranch != nil {
		s += " else " + p.stmt(stmt.ElseBranch)
	}
	return s, nil
}

// VisitStmtPrint implements StmtVisitor.
func (p *SourcePrinter) VisitStmtPrint(stmt *StmtPrint) (string, error) {
	return "print " + p.expr(stmt.Expression) + ";", nil
}

// VisitStmtVar implements StmtVisitor.
func (p *SourcePrinter) VisitStmtVar(stmt *StmtVar) (string, error) {
	if stmt.Initializer == nil {
		return "var " + stmt.Name.Lexeme + ";", nil
	}
	return "var " + stmt.Name.Lexeme + " = " + p.expr(stmt.Initializer) + ";", nil
}

// VisitStmtWhile implements StmtVisitor.
func (p *SourcePrinter) VisitStmtWhile(stmt *StmtWhile) (string, error) {
	return "while (" + p.expr(stmt.Condition) + ") " + p.stmt(stmt.Body), nil
}

func (p *SourcePrinter) expr(expr Expr) string {
	s, _ := AcceptExpr[string](expr, p)
	return s
}

func (p *SourcePrinter) stmt(stmt Stmt) string {
	s, _ := AcceptStmt[string](stmt, p)
	return s
}

func (p *SourcePrinter) pad() string {
	return strings.Repeat("  ", p.indent)
}

func (p *SourcePrinter) line(s string) {
	_, _ = p.out.WriteString(s)
	_, _ = p.out.WriteString("\n")
}

var _ ExprVisitor[string] = (*SourcePrinter)(nil)
var _ StmtVisitor[string] = (*SourcePrinter)(nil)
