package parser

import (
	"strings"

	"github.com/leonardinius/treelox/internal/token"
)

// RPNPrinter renders expressions in reverse Polish notation.
// Unary minus is written "~" to keep it apart from subtraction.
type RPNPrinter struct{}

func NewRPNPrinter() *RPNPrinter {
	return &RPNPrinter{}
}

func (p *RPNPrinter) Print(expr Expr) string {
	return p.expr(expr)
}

// VisitExprAssign implements ExprVisitor.
func (p *RPNPrinter) VisitExprAssign(expr *ExprAssign) (string, error) {
	return p.reverse("=", expr.Name.Lexeme, p.expr(expr.Value)), nil
}

// VisitExprBinary implements ExprVisitor.
func (p *RPNPrinter) VisitExprBinary(expr *ExprBinary) (string, error) {
	return p.reverse(expr.Operator.Lexeme, p.expr(expr.Left), p.expr(expr.Right)), nil
}

// VisitExprGrouping implements ExprVisitor.
func (p *RPNPrinter) VisitExprGrouping(expr *ExprGrouping) (string, error) {
	return p.reverse("", p.expr(expr.Expression)), nil
}

// VisitExprLiteral implements ExprVisitor.
func (p *RPNPrinter) VisitExprLiteral(expr *ExprLiteral) (string, error) {
	return formatLiteral(expr.Value, false), nil
}

// VisitExprLogical implements ExprVisitor.
func (p *RPNPrinter) VisitExprLogical(expr *ExprLogical) (string, error) {
	return p.reverse(expr.Operator.Lexeme, p.expr(expr.Left), p.expr(expr.Right)), nil
}

// VisitExprTernary implements ExprVisitor.
func (p *RPNPrinter) VisitExprTernary(expr *ExprTernary) (string, error) {
	return p.reverse("?:", p.expr(expr.Condition), p.expr(expr.ThenBranch), p.expr(expr.ElseBranch)), nil
}

// VisitExprUnary implements ExprVisitor.
func (p *RPNPrinter) VisitExprUnary(expr *ExprUnary) (string, error) {
	operator := expr.Operator.Lexeme
	if expr.Operator.Type == token.MINUS {
		operator = "~"
	}
	return p.reverse(operator, p.expr(expr.Right)), nil
}

// VisitExprVariable implements ExprVisitor.
func (p *RPNPrinter) VisitExprVariable(expr *ExprVariable) (string, error) {
	return expr.Name.Lexeme, nil
}

func (p *RPNPrinter) reverse(name string, operands ...string) string {
	out := new(strings.Builder)
	for _, operand := range operands {
		_, _ = out.WriteString(operand)
		_, _ = out.WriteString(" ")
	}
	_, _ = out.WriteString(name)
	return strings.TrimSuffix(out.String(), " ")
}

func (p *RPNPrinter) expr(expr Expr) string {
	s, _ := AcceptExpr[string](expr, p)
	return s
}

var _ ExprVisitor[string] = (*RPNPrinter)(nil)
