package parser

import (
	"strconv"

	"github.com/tangzhangming/pseudo/internal/ast"
	"github.com/tangzhangming/pseudo/internal/errors"
	"github.com/tangzhangming/pseudo/internal/i18n"
	"github.com/tangzhangming/pseudo/internal/lexer"
	"github.com/tangzhangming/pseudo/internal/token"
)

// ============================================================================
// Parser - 语法分析器
// ============================================================================
//
// 优先级表驱动的递归下降。表中每一行（优先级组）由两部分组成：
// 一个 token 类型到运算符标签的映射，和一个「风格」。风格决定这一级
// 用哪种产生式解析：左结合二元、右结合二元、前缀一元、后缀一元、
// 调用/下标/成员访问、或者 primary。某一级匹配不上自己的 token 时，
// 委托给高一级；最高一级是 primary，递归在那里终止。
//
// 语句层面按缩进组织：一个块是一串前导 tab 数相同的语句。
// 进入 parseBlock 时层级加一，返回时减一；顶层块层级为 0，
// 因此计数器初始为 -1。
//
// 没有错误恢复：第一个错误带着字节偏移一路向上返回，不产出部分 AST。
//
// ============================================================================

// flavor 优先级组的解析风格
type flavor int

const (
	flavorBinLeft     flavor = iota // 左结合二元: E -> T {[op] T}
	flavorBinRight                  // 右结合二元: E -> T [op] E
	flavorPrefix                    // 前缀一元:   E -> [op] E | T
	flavorPostfix                   // 后缀一元:   E -> T {[op]}
	flavorCallAndDot                // 调用/下标/成员: E -> T {(V) | [V] | .T}
	flavorPrimary                   // 字面量、标识符、括号、列表
)

// precGroup 优先级组：token 到运算符的映射加上解析风格
type precGroup struct {
	ops    map[token.Type]ast.Operator
	flavor flavor
}

// commaPrecedence 逗号的优先级
//
// 调用实参和列表元素在逗号之上一级解析，因为那里的逗号是分隔符，
// 不是运算符。
const commaPrecedence = 0

// maxExprDepth 最大表达式嵌套深度，防止栈溢出
const maxExprDepth = 200

// precedenceTab 优先级表，从最低到最高绑定
var precedenceTab = []precGroup{
	// 0: 逗号
	{
		ops:    map[token.Type]ast.Operator{token.COMMA: ast.OpComma},
		flavor: flavorBinLeft,
	},

	// 1: 赋值与复合赋值（右结合）
	{
		ops: map[token.Type]ast.Operator{
			token.ASSIGN:         ast.OpAssignment,
			token.PLUS_ASSIGN:    ast.OpAdditionAssign,
			token.MINUS_ASSIGN:   ast.OpSubtractionAssign,
			token.STAR_ASSIGN:    ast.OpMultiplicationAssign,
			token.SLASH_ASSIGN:   ast.OpDivisionAssign,
			token.PERCENT_ASSIGN: ast.OpModuloAssign,
			token.DIV_ASSIGN:     ast.OpFloorDivAssign,
		},
		flavor: flavorBinRight,
	},

	// 2: 逻辑或（|| 和 or 等价）
	{
		ops: map[token.Type]ast.Operator{
			token.OR:    ast.OpOr,
			token.OR_KW: ast.OpOr,
		},
		flavor: flavorBinLeft,
	},

	// 3: 逻辑与（&& 和 and 等价）
	{
		ops: map[token.Type]ast.Operator{
			token.AND:    ast.OpAnd,
			token.AND_KW: ast.OpAnd,
		},
		flavor: flavorBinLeft,
	},

	// 4: 相等比较
	{
		ops: map[token.Type]ast.Operator{
			token.EQ: ast.OpEqual,
			token.NE: ast.OpNotEqual,
		},
		flavor: flavorBinLeft,
	},

	// 5: 大小比较
	{
		ops: map[token.Type]ast.Operator{
			token.LT: ast.OpLess,
			token.LE: ast.OpLessEq,
			token.GT: ast.OpGreater,
			token.GE: ast.OpGreaterEq,
		},
		flavor: flavorBinLeft,
	},

	// 6: 加减
	{
		ops: map[token.Type]ast.Operator{
			token.PLUS:  ast.OpAddition,
			token.MINUS: ast.OpSubtraction,
		},
		flavor: flavorBinLeft,
	},

	// 7: 乘除模（mod 与 % 等价，div 是整除）
	{
		ops: map[token.Type]ast.Operator{
			token.STAR:    ast.OpMultiplication,
			token.SLASH:   ast.OpDivision,
			token.PERCENT: ast.OpModulo,
			token.MOD:     ast.OpModulo,
			token.DIV:     ast.OpFloorDiv,
		},
		flavor: flavorBinLeft,
	},

	// 8: 前缀一元
	{
		ops: map[token.Type]ast.Operator{
			token.PLUS:      ast.OpUnaryPlus,
			token.MINUS:     ast.OpUnaryNegation,
			token.NOT:       ast.OpNot,
			token.NOT_KW:    ast.OpNot,
			token.INCREMENT: ast.OpPreIncrement,
			token.DECREMENT: ast.OpPreDecrement,
		},
		flavor: flavorPrefix,
	},

	// 9: 后缀一元
	{
		ops: map[token.Type]ast.Operator{
			token.INCREMENT: ast.OpPostIncrement,
			token.DECREMENT: ast.OpPostDecrement,
		},
		flavor: flavorPostfix,
	},

	// 10: 调用、下标、成员访问（. 在解析函数里特殊处理）
	{
		ops: map[token.Type]ast.Operator{
			token.LPAREN:   ast.OpFunctionCall,
			token.LBRACKET: ast.OpSubscript,
		},
		flavor: flavorCallAndDot,
	},

	// 11: primary
	{
		ops:    map[token.Type]ast.Operator{},
		flavor: flavorPrimary,
	},
}

// ============================================================================
// Parser
// ============================================================================

// Parser 语法分析器
//
// 游标和块层级都属于解析器实例，不属于进程；
// 并发解析多个程序时各自构造独立实例即可，实例之间不共享任何状态。
type Parser struct {
	lx         *lexer.Lexer
	blockLevel int // 当前块层级；顶层块为 0，初始值为 -1
	exprDepth  int // 表达式解析深度，防止栈溢出
}

// New 创建一个新的语法分析器
func New() *Parser {
	return &Parser{
		lx:         lexer.New(),
		blockLevel: -1,
	}
}

// Parse 解析归一化后的源文本，返回顶层块
//
// 流程：安装输入 → 词法分析 → 解析顶层块 → 检查收尾。
// 顶层块结束后如果还有残余 token，说明程序结构有问题。
func (p *Parser) Parse(input string) (*ast.Block, error) {
	p.lx.SetInput(input)
	if err := p.lx.Lex(); err != nil {
		return nil, err
	}

	p.blockLevel = -1
	p.exprDepth = 0

	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	if p.lx.Curr().Type != token.EOF {
		return nil, errors.NewParsing(i18n.T(i18n.ErrTrailingTokens), p.lx.Curr().Offset)
	}
	return block, nil
}

// ============================================================================
// 块与语句
// ============================================================================

// parseBlock 解析一个语句块
//
// 块由前导 tab 数等于当前层级的语句组成。tab 数变少说明块结束；
// 变多是缩进错误。解析块时游标必须位于行首（不是语句首）。
func (p *Parser) parseBlock() (*ast.Block, error) {
	p.blockLevel++
	defer func() { p.blockLevel-- }()

	block := &ast.Block{Offset: p.lx.Curr().Offset}

	for p.lx.Curr().Type != token.EOF {
		ended, _, err := p.lessTabs()
		if err != nil {
			return nil, err
		}
		if ended {
			// tab 比预期少，当前块到此为止
			break
		}

		p.skipTabs()

		var stmt ast.Statement
		switch p.lx.Curr().Type {
		case token.WHILE:
			stmt, err = p.parseWhile()
		case token.IF:
			stmt, err = p.parseIf()
		case token.FOR:
			stmt, err = p.parseFor()
		case token.RETURN:
			stmt, err = p.parseReturn()
		case token.FUNCTION:
			stmt, err = p.parseFunctionDef()
		default:
			// 其余都是普通表达式语句
			stmt, err = p.parseExprStatement()
		}
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}

	return block, nil
}

// lessTabs 数一数接下来的 tab，判断块是否结束
//
// 只向前看，不消费。返回值:
//   - ended: tab 数少于当前层级，块已结束
//   - n: 数到的 tab 个数
//
// tab 多于当前层级直接报缩进错误。
func (p *Parser) lessTabs() (ended bool, n int, err error) {
	for p.lx.Peek(n).Type == token.TAB {
		n++
	}
	if n < p.blockLevel {
		return true, n, nil
	}
	if n > p.blockLevel {
		return false, n, errors.NewParsing(i18n.T(i18n.ErrIndentation), p.lx.Curr().Offset)
	}
	return false, n, nil
}

// skipTabs 消费行首的所有 tab
func (p *Parser) skipTabs() {
	for p.lx.Curr().Type == token.TAB {
		p.lx.Advance(1)
	}
}

// checkNewline 要求当前 token 是换行并消费它
//
// 每条语句都必须以换行终结；同一行还有别的 token 就是错误。
func (p *Parser) checkNewline() error {
	if p.lx.Curr().Type != token.NEWLINE {
		return errors.NewParsing(i18n.T(i18n.ErrNewlineExpected), p.lx.Curr().Offset)
	}
	p.lx.Advance(1)
	return nil
}

// parseExprStatement 解析表达式语句
func (p *Parser) parseExprStatement() (ast.Statement, error) {
	pos := p.lx.Curr().Offset
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.checkNewline(); err != nil {
		return nil, err
	}
	return &ast.ExprStatement{Offset: pos, Expr: expr}, nil
}

// parseReturn 解析 return 语句
func (p *Parser) parseReturn() (ast.Statement, error) {
	pos := p.lx.Curr().Offset
	p.lx.Advance(1)
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.checkNewline(); err != nil {
		return nil, err
	}
	return &ast.ReturnStatement{Offset: pos, Expr: expr}, nil
}

// parseWhile 解析 while 语句
func (p *Parser) parseWhile() (ast.Statement, error) {
	pos := p.lx.Curr().Offset
	p.lx.Advance(1)

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.checkNewline(); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Offset: pos, Cond: cond, Body: body}, nil
}

// parseIf 解析 if / elif / else 链
//
// 每个分支：if/elif 后面是条件表达式和关键字 then；else 没有条件，
// 用恒真字面量占位，也没有 then。一个分支的块解析完后，越过下一行的
// 前导 tab 向前看：同层级的 elif/else 延续本链，其余情况结束本链。
// 缩进更深的 elif/else 不会挂到本 if 上：与内层块同层时被当作普通语句
// 解析而报错（Unexpected token），比内层块还深时 lessTabs 报缩进错误。
func (p *Parser) parseIf() (ast.Statement, error) {
	stmt := &ast.IfStatement{Offset: p.lx.Curr().Offset}

	for {
		currTok := p.lx.Curr().Type
		if currTok != token.IF && currTok != token.ELIF && currTok != token.ELSE {
			break
		}
		p.lx.Advance(1)

		var cond ast.Expression
		var err error
		if currTok != token.ELSE {
			cond, err = p.parseExpression()
			if err != nil {
				return nil, err
			}
			if p.lx.Curr().Type != token.THEN {
				return nil, errors.NewParsing(i18n.T(i18n.ErrThenExpected), p.lx.Curr().Offset)
			}
			p.lx.Advance(1)
		} else {
			// else 没有条件，占位一个恒真字面量
			cond = &ast.BoolLiteral{Value: true, Offset: 0}
		}

		if err := p.checkNewline(); err != nil {
			return nil, err
		}

		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.Cases = append(stmt.Cases, ast.IfCase{Cond: cond, Body: body})

		if currTok == token.ELSE {
			// else 是链的最后一个分支
			break
		}

		ended, nTabs, err := p.lessTabs()
		if err != nil {
			return nil, err
		}
		if ended {
			return stmt, nil
		}

		if next := p.lx.Peek(nTabs).Type; next == token.ELIF || next == token.ELSE {
			// 同层级的 elif/else，跳过 tab 继续链
			p.skipTabs()
		} else {
			break
		}
	}

	return stmt, nil
}

// parseFor 解析 for 语句 (for i from lo to hi)
func (p *Parser) parseFor() (ast.Statement, error) {
	pos := p.lx.Curr().Offset
	p.lx.Advance(1)

	// 循环计数变量
	if p.lx.Curr().Type != token.IDENT {
		return nil, errors.NewParsing(i18n.T(i18n.ErrNotIdentifier), p.lx.Curr().Offset)
	}
	counter := &ast.Identifier{Offset: p.lx.Curr().Offset, Name: p.lx.Curr().Literal}
	p.lx.Advance(1)

	// 上下界由 from 和 to 分隔
	if p.lx.Curr().Type != token.FROM {
		return nil, errors.NewParsing(i18n.T(i18n.ErrFromExpected), p.lx.Curr().Offset)
	}
	p.lx.Advance(1)

	lower, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if p.lx.Curr().Type != token.TO {
		return nil, errors.NewParsing(i18n.T(i18n.ErrToExpected), p.lx.Curr().Offset)
	}
	p.lx.Advance(1)

	upper, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if err := p.checkNewline(); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.ForStatement{
		Offset:  pos,
		Counter: counter,
		Lower:   lower,
		Upper:   upper,
		Body:    body,
	}, nil
}

// parseFunctionDef 解析函数定义
//
// 语法: function [ID]( ε | [ID]{, [ID]} )
func (p *Parser) parseFunctionDef() (ast.Statement, error) {
	pos := p.lx.Curr().Offset
	p.lx.Advance(1)

	// 函数名
	if p.lx.Curr().Type != token.IDENT {
		return nil, errors.NewParsing(i18n.T(i18n.ErrNotIdentifier), p.lx.Curr().Offset)
	}
	name := &ast.Identifier{Offset: p.lx.Curr().Offset, Name: p.lx.Curr().Literal}
	p.lx.Advance(1)

	// 参数表外面必须有括号
	if p.lx.Curr().Type != token.LPAREN {
		return nil, errors.NewParsing(i18n.T(i18n.ErrLParenExpected), p.lx.Curr().Offset)
	}

	var params []*ast.Identifier
	if p.lx.Peek(1).Type != token.RPAREN {
		for {
			p.lx.Advance(1) // 越过 ( 或 ,
			if p.lx.Curr().Type != token.IDENT {
				return nil, errors.NewParsing(i18n.T(i18n.ErrNotIdentifier), p.lx.Curr().Offset)
			}
			params = append(params, &ast.Identifier{
				Offset: p.lx.Curr().Offset,
				Name:   p.lx.Curr().Literal,
			})
			p.lx.Advance(1)
			if p.lx.Curr().Type != token.COMMA {
				break
			}
		}
	} else {
		p.lx.Advance(1)
	}

	if p.lx.Curr().Type != token.RPAREN {
		return nil, errors.NewParsing(i18n.T(i18n.ErrRParenExpected), p.lx.Curr().Offset)
	}
	p.lx.Advance(1)

	if err := p.checkNewline(); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDefStatement{
		Offset: pos,
		Name:   name,
		Params: params,
		Body:   body,
	}, nil
}

// ============================================================================
// 表达式解析（优先级攀升）
// ============================================================================

// parseExpression 从最低优先级开始解析一个完整表达式
func (p *Parser) parseExpression() (ast.Expression, error) {
	// 检查递归深度，防止恶意嵌套打爆栈
	p.exprDepth++
	defer func() { p.exprDepth-- }()
	if p.exprDepth > maxExprDepth {
		return nil, errors.NewParsing(i18n.T(i18n.ErrTooDeep), p.lx.Curr().Offset)
	}

	return p.parseAt(0)
}

// parseArg 解析一个调用实参或列表元素
//
// 在逗号之上一级解析，并且和 parseExpression 一样计入嵌套深度，
// 这样 [[[[... 或 f(f(f(... 也会被深度上限拦住。
func (p *Parser) parseArg() (ast.Expression, error) {
	p.exprDepth++
	defer func() { p.exprDepth-- }()
	if p.exprDepth > maxExprDepth {
		return nil, errors.NewParsing(i18n.T(i18n.ErrTooDeep), p.lx.Curr().Offset)
	}

	return p.parseAt(commaPrecedence + 1)
}

// parseAt 按优先级表的第 level 组解析
//
// 单一入口按组的风格分派，取代原先每组一个函数指针的做法。
func (p *Parser) parseAt(level int) (ast.Expression, error) {
	group := &precedenceTab[level]

	switch group.flavor {
	case flavorBinLeft:
		return p.parseBinLeft(level)
	case flavorBinRight:
		return p.parseBinRight(level)
	case flavorPrefix:
		return p.parsePrefix(level)
	case flavorPostfix:
		return p.parsePostfix(level)
	case flavorCallAndDot:
		return p.parseCallAndDot(level)
	default:
		return p.parsePrimary()
	}
}

// parseBinLeft 解析左结合二元运算
//
// E -> T {[op] T}。左操作数逐次被包进新节点，避免左递归。
func (p *Parser) parseBinLeft(level int) (ast.Expression, error) {
	group := &precedenceTab[level]

	left, err := p.parseAt(level + 1)
	if err != nil {
		return nil, err
	}

	for {
		op, ok := group.ops[p.lx.Curr().Type]
		if !ok {
			return left, nil
		}
		pos := p.lx.Curr().Offset
		p.lx.Advance(1)

		right, err := p.parseAt(level + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Offset: pos, Op: op, Left: left, Right: right}
	}
}

// parseBinRight 解析右结合二元运算
//
// E -> T [op] E：右操作数在同一优先级递归，得到右结合。
func (p *Parser) parseBinRight(level int) (ast.Expression, error) {
	group := &precedenceTab[level]

	left, err := p.parseAt(level + 1)
	if err != nil {
		return nil, err
	}

	op, ok := group.ops[p.lx.Curr().Type]
	if !ok {
		return left, nil
	}
	pos := p.lx.Curr().Offset
	p.lx.Advance(1)

	right, err := p.parseAt(level)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpr{Offset: pos, Op: op, Left: left, Right: right}, nil
}

// parsePrefix 解析前缀一元运算
//
// E -> [op] E | T。连续前缀（如 --x 前面再来个 !）在同级递归。
func (p *Parser) parsePrefix(level int) (ast.Expression, error) {
	group := &precedenceTab[level]

	op, ok := group.ops[p.lx.Curr().Type]
	if !ok {
		return p.parseAt(level + 1)
	}
	pos := p.lx.Curr().Offset
	p.lx.Advance(1)

	child, err := p.parseAt(level)
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpr{Offset: pos, Op: op, Operand: child}, nil
}

// parsePostfix 解析后缀一元运算
//
// E -> T {[op]}。之前的节点成为新节点的孩子。
func (p *Parser) parsePostfix(level int) (ast.Expression, error) {
	group := &precedenceTab[level]

	node, err := p.parseAt(level + 1)
	if err != nil {
		return nil, err
	}

	for {
		op, ok := group.ops[p.lx.Curr().Type]
		if !ok {
			return node, nil
		}
		pos := p.lx.Curr().Offset
		p.lx.Advance(1)
		node = &ast.UnaryExpr{Offset: pos, Op: op, Operand: node, Postfix: true}
	}
}

// parseCallAndDot 解析函数调用、下标和成员访问
//
// 三者优先级相同且都左结合，必须在同一个循环里解析。
// 语法: E -> T {. T | (V) | [V]}，V -> ε | E {, E}
// 实参在逗号之上一级解析，这里的逗号是分隔符，不是运算符。
func (p *Parser) parseCallAndDot(level int) (ast.Expression, error) {
	group := &precedenceTab[level]

	node, err := p.parseAt(level + 1)
	if err != nil {
		return nil, err
	}

	for {
		curr := p.lx.Curr()

		if op, ok := group.ops[curr.Type]; ok {
			closing := curr.Type.Opposite() // ( 对 )，[ 对 ]
			pos := curr.Offset

			var args []ast.Expression
			if p.lx.Peek(1).Type != closing {
				for {
					p.lx.Advance(1) // 越过开括号或逗号
					arg, err := p.parseArg()
					if err != nil {
						return nil, err
					}
					args = append(args, arg)
					if p.lx.Curr().Type != token.COMMA {
						break
					}
				}
				if p.lx.Curr().Type != closing {
					return nil, errors.NewParsing(
						i18n.T(i18n.ErrCloserExpected, closing.String()),
						p.lx.Curr().Offset)
				}
				p.lx.Advance(1)
			} else {
				// 空实参表 () 或 []，两个定界符一起跳过
				p.lx.Advance(2)
			}

			node = &ast.NAryExpr{Offset: pos, Op: op, Receiver: node, Args: args}
			continue
		}

		if curr.Type == token.DOT {
			// 成员访问，和左结合二元一样处理
			pos := curr.Offset
			p.lx.Advance(1)
			right, err := p.parseAt(level + 1)
			if err != nil {
				return nil, err
			}
			node = &ast.BinaryExpr{Offset: pos, Op: ast.OpMemberAccess, Left: node, Right: right}
			continue
		}

		return node, nil
	}
}

// parsePrimary 解析字面量、标识符、括号表达式和列表初始化
func (p *Parser) parsePrimary() (ast.Expression, error) {
	curr := p.lx.Curr()
	pos := curr.Offset

	switch curr.Type {
	case token.TRUE_LIT:
		p.lx.Advance(1)
		return &ast.BoolLiteral{Offset: pos, Value: true}, nil

	case token.FALSE_LIT:
		p.lx.Advance(1)
		return &ast.BoolLiteral{Offset: pos, Value: false}, nil

	case token.INT_LIT:
		value, err := strconv.Atoi(curr.Literal)
		if err != nil {
			return nil, errors.NewParsing(i18n.T(i18n.ErrInvalidInteger, curr.Literal), pos)
		}
		p.lx.Advance(1)
		return &ast.IntLiteral{Offset: pos, Value: value}, nil

	case token.FLOAT_LIT:
		value, err := strconv.ParseFloat(curr.Literal, 64)
		if err != nil {
			return nil, errors.NewParsing(i18n.T(i18n.ErrInvalidFloat, curr.Literal), pos)
		}
		p.lx.Advance(1)
		return &ast.FloatLiteral{Offset: pos, Value: value}, nil

	case token.CHAR_LIT:
		p.lx.Advance(1)
		return &ast.CharLiteral{Offset: pos, Value: curr.Literal[0]}, nil

	case token.STRING_LIT:
		p.lx.Advance(1)
		return &ast.StringLiteral{Offset: pos, Value: curr.Literal}, nil

	case token.LPAREN:
		p.lx.Advance(1)
		node, err := p.parseExpression() // 回到最低优先级
		if err != nil {
			return nil, err
		}
		// (myVar) = 5 不应合法，即使 myVar = 5 合法
		node.MarkRvalue()
		if p.lx.Curr().Type != token.RPAREN {
			return nil, errors.NewParsing(i18n.T(i18n.ErrRParenExpected), p.lx.Curr().Offset)
		}
		p.lx.Advance(1)
		return node, nil

	case token.LBRACKET:
		items, err := p.parseListItems()
		if err != nil {
			return nil, err
		}
		return &ast.NAryExpr{Offset: pos, Op: ast.OpListInit, Args: items}, nil

	case token.IDENT:
		p.lx.Advance(1)
		return &ast.Identifier{Offset: pos, Name: curr.Literal}, nil

	default:
		return nil, errors.NewParsing(i18n.T(i18n.ErrUnexpectedToken), pos)
	}
}

// parseListItems 解析列表初始化的元素表 [a, b, c]
//
// 元素和调用实参一样在逗号之上一级解析。空表 [] 直接跳过两个括号。
func (p *Parser) parseListItems() ([]ast.Expression, error) {
	var items []ast.Expression

	if p.lx.Peek(1).Type != token.RBRACKET {
		for {
			p.lx.Advance(1) // 越过 [ 或 ,
			item, err := p.parseArg()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
			if p.lx.Curr().Type != token.COMMA {
				break
			}
		}
		if p.lx.Curr().Type != token.RBRACKET {
			return nil, errors.NewParsing(i18n.T(i18n.ErrRBracketExpected), p.lx.Curr().Offset)
		}
		p.lx.Advance(1)
	} else {
		p.lx.Advance(2)
	}

	return items, nil
}
