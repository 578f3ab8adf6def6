package parser

import (
	"fmt"

	"github.com/leonardinius/treelox/internal/token"
)

// Expr is a closed set of expression nodes. The unexported marker keeps
// the set sealed to this package.
type Expr interface {
	exprNode()
}

// Stmt is a closed set of statement nodes.
type Stmt interface {
	stmtNode()
}

// ExprVisitor handles every Expr variant. Adding a variant breaks every
// implementation at compile time until it is handled.
type ExprVisitor[R any] interface {
	VisitExprAssign(expr *ExprAssign) (R, error)
	VisitExprBinary(expr *ExprBinary) (R, error)
	VisitExprGrouping(expr *ExprGrouping) (R, error)
	VisitExprLiteral(expr *ExprLiteral) (R, error)
	VisitExprLogical(expr *ExprLogical) (R, error)
	VisitExprTernary(expr *ExprTernary) (R, error)
	VisitExprUnary(expr *ExprUnary) (R, error)
	VisitExprVariable(expr *ExprVariable) (R, error)
}

// StmtVisitor handles every Stmt variant.
type StmtVisitor[R any] interface {
	VisitStmtBlock(stmt *StmtBlock) (R, error)
	VisitStmtExpression(stmt *StmtExpression) (R, error)
	VisitStmtIf(stmt *StmtIf) (R, error)
	VisitStmtPrint(stmt *StmtPrint) (R, error)
	VisitStmtVar(stmt *StmtVar) (R, error)
	VisitStmtWhile(stmt *StmtWhile) (R, error)
}

// AcceptExpr dispatches expr to the matching visitor method.
func AcceptExpr[R any](expr Expr, v ExprVisitor[R]) (R, error) {
	switch e := expr.(type) {
	case *ExprAssign:
		return v.VisitExprAssign(e)
	case *ExprBinary:
		return v.VisitExprBinary(e)
	case *ExprGrouping:
		return v.VisitExprGrouping(e)
	case *ExprLiteral:
		return v.VisitExprLiteral(e)
	case *ExprLogical:
		return v.VisitExprLogical(e)
	case *ExprTernary:
		return v.VisitExprTernary(e)
	case *ExprUnary:
		return v.VisitExprUnary(e)
	case *ExprVariable:
		return v.VisitExprVariable(e)
	}
	panic(fmt.Sprintf("unreachable: unknown expression %T", expr))
}

// AcceptStmt dispatches stmt to the matching visitor method.
func AcceptStmt[R any](stmt Stmt, v StmtVisitor[R]) (R, error) {
	switch s := stmt.(type) {
	case *StmtBlock:
		return v.VisitStmtBlock(s)
	case *StmtExpression:
		return v.VisitStmtExpression(s)
	case *StmtIf:
		return v.VisitStmtIf(s)
	case *StmtPrint:
		return v.VisitStmtPrint(s)
	case *StmtVar:
		return v.VisitStmtVar(s)
	case *StmtWhile:
		return v.VisitStmtWhile(s)
	}
	panic(fmt.Sprintf("unreachable: unknown statement %T", stmt))
}

type ExprAssign struct {
	Name  *token.Token
	Value Expr
}

// ExprBinary also carries the comma operator, token.COMMA.
type ExprBinary struct {
	Left     Expr
	Operator *token.Token
	Right    Expr
}

type ExprGrouping struct {
	Expression Expr
}

// ExprLiteral holds nil, bool, float64 or string.
type ExprLiteral struct {
	Value any
}

type ExprLogical struct {
	Left     Expr
	Operator *token.Token
	Right    Expr
}

type ExprTernary struct {
	Condition  Expr
	ThenBranch Expr
	ElseBranch Expr
}

type ExprUnary struct {
	Operator *token.Token
	Right    Expr
}

type ExprVariable struct {
	Name *token.Token
}

type StmtBlock struct {
	Statements []Stmt
}

type StmtExpression struct {
	Expression Expr
}

type StmtIf struct {
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt
}

// StmtPrint keeps the keyword to locate output failures.
type StmtPrint struct {
	Keyword    *token.Token
	Expression Expr
}

type StmtVar struct {
	Name        *token.Token
	Initializer Expr
}

type StmtWhile struct {
	Condition Expr
	Body      Stmt
}

func (*ExprAssign) exprNode()   {}
func (*ExprBinary) exprNode()   {}
func (*ExprGrouping) exprNode() {}
func (*ExprLiteral) exprNode()  {}
func (*ExprLogical) exprNode()  {}
func (*ExprTernary) exprNode()  {}
func (*ExprUnary) exprNode()    {}
func (*ExprVariable) exprNode() {}

func (*StmtBlock) stmtNode()      {}
func (*StmtExpression) stmtNode() {}
func (*StmtIf) stmtNode()         {}
func (*StmtPrint) stmtNode()      {}
func (*StmtVar) stmtNode()        {}
func (*StmtWhile) stmtNode()      {}

var (
	_ Expr = (*ExprAssign)(nil)
	_ Expr = (*ExprBinary)(nil)
	_ Expr = (*ExprGrouping)(nil)
	_ Expr = (*ExprLiteral)(nil)
	_ Expr = (*ExprLogical)(nil)
	_ Expr = (*ExprTernary)(nil)
	_ Expr = (*ExprUnary)(nil)
	_ Expr = (*ExprVariable)(nil)

	_ Stmt = (*StmtBlock)(nil)
	_ Stmt = (*StmtExpression)(nil)
	_ Stmt = (*StmtIf)(nil)
	_ Stmt = (*StmtPrint)(nil)
	_ Stmt = (*StmtVar)(nil)
	_ Stmt = (*StmtWhile)(nil)
)
