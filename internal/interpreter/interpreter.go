package interpreter

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/leonardinius/treelox/internal/loxerrors"
	"github.com/leonardinius/treelox/internal/parser"
	"github.com/leonardinius/treelox/internal/scanner"
	"github.com/leonardinius/treelox/internal/token"
)

type Interpreter interface {
	// Run scans, parses and executes a program. Syntax errors prevent
	// execution entirely; the first runtime error stops it.
	//
	// Globals defined by one Run are visible to the next.
	// Not thread safe.
	Run(source string) *Result

	// RunExpression evaluates source as a single expression.
	// Not thread safe.
	RunExpression(source string) *Result

	// Interpret executes already parsed statements and returns the value
	// of the last one.
	Interpret(statements []parser.Stmt) (Value, error)

	// Evaluate evaluates an already parsed expression in the current scope.
	Evaluate(expr parser.Expr) (Value, error)

	// Stringify renders a value the way print does.
	Stringify(value Value) string
}

type interpreter struct {
	globals *environment
	env     *environment
	stdout  io.Writer
	logger  *slog.Logger
}

func NewInterpreter(options ...InterpreterOption) Interpreter {
	opts := newInterpreterOpts(options...)
	return &interpreter{
		globals: opts.globals,
		env:     opts.globals,
		stdout:  opts.stdout,
		logger:  opts.logger,
	}
}

// Run implements Interpreter.
func (i *interpreter) Run(source string) *Result {
	ctx := loxerrors.NewContext()
	tokens := scanner.NewScanner(source, ctx).Scan()
	statements := parser.NewParser(tokens, ctx).Parse()
	i.logger.Debug("parsed program",
		slog.Int("tokens", len(tokens)),
		slog.Int("statements", len(statements)),
		slog.Bool("syntaxErrors", ctx.HasSyntaxErrors()))

	if ctx.HasSyntaxErrors() {
		return newResult(ctx, nil, false)
	}

	value, err := i.Interpret(statements)
	if err != nil {
		i.reportRuntimeError(ctx, err)
		return newResult(ctx, nil, false)
	}

	return newResult(ctx, value, endsWithExpression(statements))
}

// RunExpression implements Interpreter.
func (i *interpreter) RunExpression(source string) *Result {
	ctx := loxerrors.NewContext()
	tokens := scanner.NewScanner(source, ctx).Scan()
	expr := parser.NewParser(tokens, ctx).ParseExpression()
	if ctx.HasSyntaxErrors() {
		return newResult(ctx, nil, false)
	}

	value, err := i.Evaluate(expr)
	if err != nil {
		i.reportRuntimeError(ctx, err)
		return newResult(ctx, nil, false)
	}

	return newResult(ctx, value, true)
}

// Interpret implements Interpreter.
func (i *interpreter) Interpret(statements []parser.Stmt) (Value, error) {
	i.env = i.globals

	var value Value = NilValue
	for _, stmt := range statements {
		v, err := i.execute(stmt)
		if err != nil {
			return nil, err
		}
		value = v
	}

	i.logger.Debug("interpreted program", slog.Any("globals", i.globals))
	return value, nil
}

// Evaluate implements Interpreter.
func (i *interpreter) Evaluate(expr parser.Expr) (Value, error) {
	return i.evaluate(expr)
}

// Stringify implements Interpreter.
func (i *interpreter) Stringify(value Value) string {
	if value == nil {
		return NilValue.String()
	}
	return value.String()
}

func (i *interpreter) reportRuntimeError(ctx *loxerrors.Context, err error) {
	var runtimeErr *loxerrors.RuntimeError
	if !errors.As(err, &runtimeErr) {
		panic(fmt.Sprintf("unreachable: unexpected error %v", err))
	}
	i.logger.Debug("runtime error", slog.Int("line", runtimeErr.Token.Line), slog.String("message", runtimeErr.Message()))
	ctx.ReportRuntimeError(runtimeErr)
}

func endsWithExpression(statements []parser.Stmt) bool {
	if len(statements) == 0 {
		return false
	}
	_, ok := statements[len(statements)-1].(*parser.StmtExpression)
	return ok
}

func (i *interpreter) evaluate(expr parser.Expr) (Value, error) {
	return parser.AcceptExpr[Value](expr, i)
}

func (i *interpreter) execute(stmt parser.Stmt) (Value, error) {
	return parser.AcceptStmt[Value](stmt, i)
}

// executeBlock runs statements in env and restores the previous scope
// on every exit path, including runtime errors.
func (i *interpreter) executeBlock(statements []parser.Stmt, env *environment) (Value, error) {
	previous := i.env
	defer func() {
		i.env = previous
	}()
	i.env = env

	var value Value = NilValue
	for _, stmt := range statements {
		v, err := i.execute(stmt)
		if err != nil {
			return nil, err
		}
		value = v
	}
	return value, nil
}

// VisitStmtBlock implements parser.StmtVisitor.
func (i *interpreter) VisitStmtBlock(stmt *parser.StmtBlock) (Value, error) {
	return i.executeBlock(stmt.Statements, i.env.Nest())
}

// VisitStmtExpression implements parser.StmtVisitor.
func (i *interpreter) VisitStmtExpression(stmt *parser.StmtExpression) (Value, error) {
	return i.evaluate(stmt.Expression)
}

// VisitStmtIf implements parser.StmtVisitor.
func (i *interpreter) VisitStmtIf(stmt *parser.StmtIf) (Value, error) {
	condition, err := i.evaluate(stmt.Condition)
	if err != nil {
		return nil, err
	}

	if isTruthy(condition) {
		return i.execute(stmt.ThenBranch)
	} else if stmt.ElseBranch != nil {
		return i.execute(stmt.ElseBranch)
	}
	return NilValue, nil
}

// VisitStmtPrint implements parser.StmtVisitor.
func (i *interpreter) VisitStmtPrint(stmt *parser.StmtPrint) (Value, error) {
	value, err := i.evaluate(stmt.Expression)
	if err != nil {
		return nil, err
	}

	if _, err = fmt.Fprintln(i.stdout, i.Stringify(value)); err != nil {
		return nil, loxerrors.NewRuntimeError(stmt.Keyword, loxerrors.ErrRuntimeOutputFailedError(err))
	}
	return NilValue, nil
}

// VisitStmtVar implements parser.StmtVisitor.
func (i *interpreter) VisitStmtVar(stmt *parser.StmtVar) (Value, error) {
	var value Value = NilValue
	if stmt.Initializer != nil {
		var err error
		if value, err = i.evaluate(stmt.Initializer); err != nil {
			return nil, err
		}
	}

	i.env.Define(stmt.Name.Lexeme, value)
	return NilValue, nil
}

// VisitStmtWhile implements parser.StmtVisitor.
func (i *interpreter) VisitStmtWhile(stmt *parser.StmtWhile) (Value, error) {
	for {
		condition, err := i.evaluate(stmt.Condition)
		if err != nil {
			return nil, err
		}
		if !isTruthy(condition) {
			return NilValue, nil
		}
		if _, err = i.execute(stmt.Body); err != nil {
			return nil, err
		}
	}
}

// VisitExprAssign implements parser.ExprVisitor.
func (i *interpreter) VisitExprAssign(expr *parser.ExprAssign) (Value, error) {
	value, err := i.evaluate(expr.Value)
	if err != nil {
		return nil, err
	}

	if err = i.env.Assign(expr.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

// VisitExprBinary implements parser.ExprVisitor.
func (i *interpreter) VisitExprBinary(expr *parser.ExprBinary) (Value, error) {
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.COMMA:
		return right, nil
	case token.BANG_EQUAL:
		return ValueBool(!isEqual(left, right)), nil
	case token.EQUAL_EQUAL:
		return ValueBool(isEqual(left, right)), nil
	case token.PLUS:
		return i.add(expr.Operator, left, right)
	}

	l, r, err := i.checkNumberOperands(expr.Operator, left, right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.GREATER:
		return ValueBool(l > r), nil
	case token.GREATER_EQUAL:
		return ValueBool(l >= r), nil
	case token.LESS:
		return ValueBool(l < r), nil
	case token.LESS_EQUAL:
		return ValueBool(l <= r), nil
	case token.MINUS:
		return l - r, nil
	case token.STAR:
		return l * r, nil
	case token.SLASH:
		if r == 0 {
			return nil, loxerrors.NewRuntimeError(expr.Operator, loxerrors.ErrRuntimeDivisionByZero)
		}
		return l / r, nil
	}

	return i.unsupportedOperator(expr.Operator)
}

// add sums two numbers, or concatenates when either side is a string.
func (i *interpreter) add(operator *token.Token, left, right Value) (Value, error) {
	if l, ok := left.(ValueFloat); ok {
		if r, ok := right.(ValueFloat); ok {
			return l + r, nil
		}
	}

	_, leftString := left.(ValueString)
	_, rightString := right.(ValueString)
	if leftString || rightString {
		return ValueString(i.Stringify(left) + i.Stringify(right)), nil
	}

	return nil, loxerrors.NewRuntimeError(operator, loxerrors.ErrRuntimeOperandsMustBeNumbersOrOneString)
}

// VisitExprGrouping implements parser.ExprVisitor.
func (i *interpreter) VisitExprGrouping(expr *parser.ExprGrouping) (Value, error) {
	return i.evaluate(expr.Expression)
}

// VisitExprLiteral implements parser.ExprVisitor.
func (i *interpreter) VisitExprLiteral(expr *parser.ExprLiteral) (Value, error) {
	return literalValue(expr.Value), nil
}

// VisitExprLogical implements parser.ExprVisitor.
func (i *interpreter) VisitExprLogical(expr *parser.ExprLogical) (Value, error) {
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.OR:
		if isTruthy(left) {
			return left, nil
		}
	case token.AND:
		if !isTruthy(left) {
			return left, nil
		}
	default:
		return i.unsupportedOperator(expr.Operator)
	}

	return i.evaluate(expr.Right)
}

// VisitExprTernary implements parser.ExprVisitor.
func (i *interpreter) VisitExprTernary(expr *parser.ExprTernary) (Value, error) {
	condition, err := i.evaluate(expr.Condition)
	if err != nil {
		return nil, err
	}

	if isTruthy(condition) {
		return i.evaluate(expr.ThenBranch)
	}
	return i.evaluate(expr.ElseBranch)
}

// VisitExprUnary implements parser.ExprVisitor.
func (i *interpreter) VisitExprUnary(expr *parser.ExprUnary) (Value, error) {
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.BANG:
		return ValueBool(!isTruthy(right)), nil
	case token.MINUS:
		r, ok := right.(ValueFloat)
		if !ok {
			return nil, loxerrors.NewRuntimeError(expr.Operator, loxerrors.ErrRuntimeOperandMustBeNumber)
		}
		return -r, nil
	}

	return i.unsupportedOperator(expr.Operator)
}

// VisitExprVariable implements parser.ExprVisitor.
func (i *interpreter) VisitExprVariable(expr *parser.ExprVariable) (Value, error) {
	return i.env.Get(expr.Name)
}

func (i *interpreter) checkNumberOperands(operator *token.Token, left, right Value) (ValueFloat, ValueFloat, error) {
	l, leftOk := left.(ValueFloat)
	r, rightOk := right.(ValueFloat)
	if !leftOk || !rightOk {
		return 0, 0, loxerrors.NewRuntimeError(operator, loxerrors.ErrRuntimeOperandsMustBeNumbers)
	}
	return l, r, nil
}

func (i *interpreter) unsupportedOperator(operator *token.Token) (Value, error) {
	return nil, loxerrors.NewRuntimeError(operator, loxerrors.ErrRuntimeUnsupportedOperator)
}

var (
	_ Interpreter               = (*interpreter)(nil)
	_ parser.ExprVisitor[Value] = (*interpreter)(nil)
	_ parser.StmtVisitor[Value] = (*interpreter)(nil)
)
