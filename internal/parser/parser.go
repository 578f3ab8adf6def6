package parser

import (
	"fmt"

	"github.com/leonardinius/treelox/internal/loxerrors"
	"github.com/leonardinius/treelox/internal/token"
)

var (
	nilExpr       Expr   = nil
	nilStmt       Stmt   = nil
	nilStatements []Stmt = nil
)

type Parser interface {
	// Parse parses a whole program. Statements that fail to parse are
	// reported and left out; parsing resumes at the next statement boundary.
	Parse() []Stmt

	// ParseExpression parses the tokens as one expression. It returns nil
	// if the expression is malformed or followed by anything but EOF.
	ParseExpression() Expr
}

// parser is a recursive-descent parser. A grammar violation sets err,
// which makes every match/check fail so the descent unwinds on its own
// up to declaration, where the parser synchronizes and clears it.
type parser struct {
	tokens   []token.Token
	current  int
	err      error
	reporter loxerrors.SyntaxReporter
}

func NewParser(tokens []token.Token, reporter loxerrors.SyntaxReporter) Parser {
	if len(tokens) == 0 {
		panic("tokens cannot be empty")
	}
	if tokens[len(tokens)-1].Type != token.EOF {
		panic("tokens must end with EOF")
	}

	return &parser{
		tokens:   tokens,
		current:  0,
		reporter: reporter,
	}
}

// GoString implements fmt.GoStringer.
func (p *parser) GoString() string {
	return fmt.Sprintf("parser{tokens: %#v, current: %d, err: %#v}", p.tokens, p.current, p.err)
}

// String implements fmt.Stringer.
func (p *parser) String() string {
	return fmt.Sprintf("parser{tokens: %d, err: %v}", len(p.tokens), p.err)
}

// Parse implements Parser.
func (p *parser) Parse() []Stmt {
	var statements []Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nilStmt {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// ParseExpression implements Parser.
func (p *parser) ParseExpression() Expr {
	expr := p.expression()
	if p.err != nil {
		return nilExpr
	}

	if !p.isAtEnd() {
		return p.reportExprError(loxerrors.ErrParseExpectedEndOfExpression)
	}

	return expr
}

func (p *parser) declaration() Stmt {
	var stmt Stmt
	if p.match(token.VAR) {
		stmt = p.varDeclaration()
	} else {
		stmt = p.statement()
	}

	if p.err != nil {
		p.synchronize()
		p.err = nil
		return nilStmt
	}

	return stmt
}

func (p *parser) varDeclaration() Stmt {
	if !p.match(token.IDENTIFIER) {
		return p.reportStmtError(loxerrors.ErrParseUnexpectedVariableName)
	}
	name := p.previous()

	var initializer Expr = nilExpr
	if p.match(token.EQUAL) {
		initializer = p.expression()
	}

	if !p.match(token.SEMICOLON) {
		return p.reportStmtError(loxerrors.ErrParseExpectedSemicolonTokenAfterVar)
	}

	return &StmtVar{Name: name, Initializer: initializer}
}

func (p *parser) statement() Stmt {
	if p.match(token.IF) {
		return p.ifStatement()
	}

	if p.match(token.FOR) {
		return p.forStatement()
	}

	if p.match(token.PRINT) {
		return p.printStatement()
	}

	if p.match(token.WHILE) {
		return p.whileStatement()
	}

	if p.match(token.LEFT_BRACE) {
		block := p.blockStatement()
		return &StmtBlock{Statements: block}
	}

	return p.expressionStatement()
}

func (p *parser) ifStatement() Stmt {
	if !p.match(token.LEFT_PAREN) {
		return p.reportStmtError(loxerrors.ErrParseExpectedLeftParentIfToken)
	}

	condition := p.expression()

	if !p.match(token.RIGHT_PAREN) {
		return p.reportStmtError(loxerrors.ErrParseExpectedRightParentIfToken)
	}

	thenBranch := p.statement()
	var elseBranch Stmt
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}

	return &StmtIf{Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

// forStatement desugars
//
//	for (init; cond; incr) body
//
// into
//
//	{ init; while (cond) { body; incr; } }
func (p *parser) forStatement() Stmt {
	if !p.match(token.LEFT_PAREN) {
		return p.reportStmtError(loxerrors.ErrParseExpectedLeftParentForToken)
	}

	var initializer Stmt
	if p.match(token.SEMICOLON) {
		initializer = nilStmt
	} else if p.match(token.VAR) {
		initializer = p.varDeclaration()
	} else {
		initializer = p.expressionStatement()
	}

	var condition Expr
	if !p.check(token.SEMICOLON) {
		condition = p.expression()
	}
	if !p.match(token.SEMICOLON) {
		return p.reportStmtError(loxerrors.ErrParseExpectedSemicolonAfterForLoopCond)
	}

	var increment Expr
	if !p.check(token.RIGHT_PAREN) {
		increment = p.expression()
	}
	if !p.match(token.RIGHT_PAREN) {
		return p.reportStmtError(loxerrors.ErrParseExpectedRightParentForToken)
	}

	body := p.statement()
	if p.err != nil {
		return nilStmt
	}

	loopBody := []Stmt{body}
	if increment != nilExpr {
		loopBody = append(loopBody, &StmtExpression{Expression: increment})
	}
	if condition == nilExpr {
		condition = &ExprLiteral{Value: true}
	}

	var outer []Stmt
	if initializer != nilStmt {
		outer = append(outer, initializer)
	}
	outer = append(outer, &StmtWhile{Condition: condition, Body: &StmtBlock{Statements: loopBody}})

	return &StmtBlock{Statements: outer}
}

func (p *parser) printStatement() Stmt {
	keyword := p.previous()
	expr := p.expression()

	if !p.match(token.SEMICOLON) {
		return p.reportStmtError(loxerrors.ErrParseExpectedSemicolonTokenAfterPrintValue)
	}

	return &StmtPrint{Keyword: keyword, Expression: expr}
}

func (p *parser) whileStatement() Stmt {
	if !p.match(token.LEFT_PAREN) {
		return p.reportStmtError(loxerrors.ErrParseExpectedLeftParentWhileToken)
	}
	condition := p.expression()
	if !p.match(token.RIGHT_PAREN) {
		return p.reportStmtError(loxerrors.ErrParseExpectedRightParentWhileToken)
	}

	body := p.statement()

	return &StmtWhile{Condition: condition, Body: body}
}

func (p *parser) blockStatement() []Stmt {
	var stmts []Stmt

	for !p.check(token.RIGHT_BRACE) && !p.isDone() {
		if stmt := p.declaration(); stmt != nilStmt {
			stmts = append(stmts, stmt)
		}
	}

	if !p.match(token.RIGHT_BRACE) {
		return p.reportStmtsError(loxerrors.ErrParseExpectedRightCurlyBlockToken)
	}

	return stmts
}

func (p *parser) expressionStatement() Stmt {
	expr := p.expression()
	if !p.match(token.SEMICOLON) {
		return p.reportStmtError(loxerrors.ErrParseExpectedSemicolonTokenAfterExpr)
	}
	return &StmtExpression{Expression: expr}
}

func (p *parser) expression() Expr {
	return p.comma()
}

func (p *parser) comma() Expr {
	expr := p.assignment()

	for p.match(token.COMMA) {
		operator := p.previous()
		right := p.assignment()
		expr = &ExprBinary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *parser) assignment() Expr {
	expr := p.ternary()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()
		if p.err != nil {
			return nilExpr
		}

		if v, ok := expr.(*ExprVariable); ok {
			return &ExprAssign{Name: v.Name, Value: value}
		}

		// Reported, but the parser is not confused: no synchronization needed.
		p.reporter.ReportSyntaxError(loxerrors.NewParseError(equals, loxerrors.ErrParseInvalidAssignmentTarget))
	}

	return expr
}

func (p *parser) ternary() Expr {
	expr := p.logicOr()

	if p.match(token.QUESTION) {
		thenBranch := p.ternary()
		if !p.match(token.COLON) {
			return p.reportExprError(loxerrors.ErrParseExpectedColonTernaryToken)
		}
		elseBranch := p.ternary()
		return &ExprTernary{Condition: expr, ThenBranch: thenBranch, ElseBranch: elseBranch}
	}

	return expr
}

func (p *parser) logicOr() Expr {
	expr := p.logicAnd()

	for p.match(token.OR) {
		operator := p.previous()
		right := p.logicAnd()
		expr = &ExprLogical{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *parser) logicAnd() Expr {
	expr := p.equality()

	for p.match(token.AND) {
		operator := p.previous()
		right := p.equality()
		expr = &ExprLogical{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *parser) equality() Expr {
	expr := p.comparison()

	for p.anyMatch(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = &ExprBinary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *parser) comparison() Expr {
	expr := p.term()

	for p.anyMatch(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = &ExprBinary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *parser) term() Expr {
	expr := p.factor()

	for p.anyMatch(token.MINUS, token.PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = &ExprBinary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *parser) factor() Expr {
	expr := p.unary()

	for p.anyMatch(token.SLASH, token.STAR) {
		operator := p.previous()
		right := p.unary()
		expr = &ExprBinary{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *parser) unary() Expr {
	if p.anyMatch(token.BANG, token.MINUS) {
		operator := p.previous()
		right := p.unary()
		return &ExprUnary{
			Operator: operator,
			Right:    right,
		}
	}

	return p.primary()
}

func (p *parser) primary() Expr {
	if p.match(token.FALSE) {
		return &ExprLiteral{Value: false}
	}
	if p.match(token.TRUE) {
		return &ExprLiteral{Value: true}
	}
	if p.match(token.NIL) {
		return &ExprLiteral{Value: nil}
	}

	if p.anyMatch(token.NUMBER, token.STRING) {
		tok := p.previous()
		return &ExprLiteral{Value: tok.Literal}
	}

	if p.match(token.IDENTIFIER) {
		tok := p.previous()
		return &ExprVariable{Name: tok}
	}

	return p.grouping()
}

func (p *parser) grouping() Expr {
	if p.match(token.LEFT_PAREN) {
		expr := p.expression()
		if !p.match(token.RIGHT_PAREN) {
			return p.reportExprError(loxerrors.ErrParseExpectedRightParenToken)
		}
		return &ExprGrouping{Expression: expr}
	}

	return p.reportExprError(loxerrors.ErrParseUnexpectedToken)
}

func (p *parser) anyMatch(types ...token.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) match(tokType token.TokenType) bool {
	if p.check(tokType) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) check(tokenType token.TokenType) bool {
	return !p.isDone() && p.peek().Type == tokenType
}

func (p *parser) peek() *token.Token {
	return &p.tokens[p.current]
}

func (p *parser) previous() *token.Token {
	return &p.tokens[p.current-1]
}

func (p *parser) advance() *token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// Be carefull with isAtEnd, it does not check for parse errors.
// Use isDone instead.
// isAtEnd is used from top level Parse, synchronize and advance ony.
func (p *parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *parser) isDone() bool {
	// at the end, OR, have errors
	return p.isAtEnd() || p.err != nil
}

func (p *parser) reportStmtError(err error) Stmt {
	p.reportTokenError(p.peek(), err)
	return nilStmt
}

func (p *parser) reportStmtsError(err error) []Stmt {
	p.reportTokenError(p.peek(), err)
	return nilStatements
}

func (p *parser) reportExprError(err error) Expr {
	p.reportTokenError(p.peek(), err)
	return nilExpr
}

// reportTokenError records only the first error of a statement; the rest
// are consequences of the descent unwinding.
func (p *parser) reportTokenError(tok *token.Token, err error) {
	if p.err != nil {
		return
	}
	perr := loxerrors.NewParseError(tok, err)
	p.err = perr
	p.reporter.ReportSyntaxError(perr)
}

func (p *parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case token.CLASS,
			token.FUN,
			token.VAR,
			token.FOR,
			token.IF,
			token.WHILE,
			token.PRINT,
			token.RETURN:
			return
		}

		p.advance()
	}
}

var _ Parser = (*parser)(nil)
var _ fmt.Stringer = (*parser)(nil)
var _ fmt.GoStringer = (*parser)(nil)
