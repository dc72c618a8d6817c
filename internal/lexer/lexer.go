package lexer

import (
	"strings"

	"github.com/tangzhangming/pseudo/internal/errors"
	"github.com/tangzhangming/pseudo/internal/i18n"
	"github.com/tangzhangming/pseudo/internal/token"
)

// ============================================================================
// Lexer - 词法分析器
// ============================================================================
//
// 词法分析器把归一化后的源文本一次性扫描成扁平的 Token 缓冲区，
// 并在缓冲区上提供游标（当前 token、向前看 k 个、前进 n 个）。
// 语法器只向前看，从不回退。
//
// 与多数语言不同，这门伪代码语言的 tab 和换行是真实的 token：
// tab 表示缩进层级，换行终结语句。空格、回车、换页、垂直制表符被跳过。
//
// 最长匹配规则由分支结构保证：每个起始字符先尝试双字符形式
// （== 优先于 =，<= 和 << 优先于 <，++ 和 += 优先于 +，等等）。
// 关键字在扫描完整个标识符之后用查找表区分，因此 forest 不会被
// 切成 for + est，modulo 也不会被切成 mod + ulo。
//
// 第一个词法错误立即中止扫描并带着字节偏移向上返回。
//
// ============================================================================

// Lexer 词法分析器结构体
type Lexer struct {
	input  string        // 归一化后的源文本
	tokens []token.Token // 已扫描的 Token 列表

	start   int // 当前 Token 的起始位置（字节偏移）
	current int // 当前扫描位置（字节偏移）

	cursor int // 语法器游标（tokens 下标）
}

// New 创建一个新的词法分析器
func New() *Lexer {
	return &Lexer{}
}

// ============================================================================
// 公共接口
// ============================================================================

// SetInput 安装输入文本并重置所有状态
func (l *Lexer) SetInput(input string) {
	l.input = input
	l.start = 0
	l.current = 0
	l.cursor = 0

	// 预估 token 数量：源码长度 / 3 是缩进语言的经验值
	estimatedTokens := len(input) / 3
	if estimatedTokens < 16 {
		estimatedTokens = 16
	}
	l.tokens = make([]token.Token, 0, estimatedTokens)
}

// Lex 扫描全部输入
//
// 一次前向扫描填满 token 缓冲区，最后追加一个 EOF 哨兵，
// 其偏移等于输入长度。第一个错误即中止，不产生部分结果之外的恢复。
func (l *Lexer) Lex() error {
	for l.current < len(l.input) {
		l.start = l.current
		if err := l.scanToken(); err != nil {
			return err
		}
	}

	l.tokens = append(l.tokens, token.Token{
		Type:   token.EOF,
		Offset: len(l.input),
	})
	return nil
}

// Curr 返回游标处的 token
func (l *Lexer) Curr() token.Token {
	return l.Peek(0)
}

// Peek 向前看第 k 个 token（k=0 为当前）
//
// 超出缓冲区末尾时始终返回 EOF 哨兵。
func (l *Lexer) Peek(k int) token.Token {
	if len(l.tokens) == 0 {
		return token.Token{Type: token.EOF}
	}
	i := l.cursor + k
	if i >= len(l.tokens) {
		i = len(l.tokens) - 1 // EOF 哨兵
	}
	return l.tokens[i]
}

// Advance 把游标前进 n 个 token
//
// 到达 EOF 之后再前进是无操作，游标停在哨兵上。
func (l *Lexer) Advance(n int) {
	l.cursor += n
	if l.cursor >= len(l.tokens) {
		l.cursor = len(l.tokens) - 1
		if l.cursor < 0 {
			l.cursor = 0
		}
	}
}

// Tokens 返回整个 token 缓冲区（调试用）
func (l *Lexer) Tokens() []token.Token {
	return l.tokens
}

// ============================================================================
// 核心扫描逻辑
// ============================================================================

// scanToken 扫描单个 token
//
// 空白最常见，放在最前；其后是分隔符、运算符和字面量；
// 数字和标识符没有固定的起始字符，落到 default 分支。
func (l *Lexer) scanToken() error {
	ch := l.advance()

	switch ch {

	// ----------------------------------------------------------
	// 高频：空白字符。空格、回车、换页、垂直制表符直接跳过；
	// tab 和换行有语义，必须产出 token。
	// ----------------------------------------------------------
	case ' ', '\r', '\f', '\v':
		l.skipBlank()

	case '\t':
		l.addToken(token.TAB)

	case '\n':
		l.addToken(token.NEWLINE)

	// ----------------------------------------------------------
	// 分隔符
	// ----------------------------------------------------------
	case '(':
		l.addToken(token.LPAREN)
	case ')':
		l.addToken(token.RPAREN)
	case '[':
		l.addToken(token.LBRACKET)
	case ']':
		l.addToken(token.RBRACKET)
	case ',':
		l.addToken(token.COMMA)
	case '.':
		l.addToken(token.DOT)

	// ----------------------------------------------------------
	// 运算符（双字符形式优先，保证最长匹配）
	// ----------------------------------------------------------
	case '+':
		// ++ 或 += 或 +
		if l.match('+') {
			l.addToken(token.INCREMENT)
		} else if l.match('=') {
			l.addToken(token.PLUS_ASSIGN)
		} else {
			l.addToken(token.PLUS)
		}

	case '-':
		// -- 或 -= 或 -
		if l.match('-') {
			l.addToken(token.DECREMENT)
		} else if l.match('=') {
			l.addToken(token.MINUS_ASSIGN)
		} else {
			l.addToken(token.MINUS)
		}

	case '*':
		// *= 或 *
		if l.match('=') {
			l.addToken(token.STAR_ASSIGN)
		} else {
			l.addToken(token.STAR)
		}

	case '/':
		// // 注释 或 /= 或 /
		// 整行注释已被归一化器删除；这里兜底处理行内注释，
		// 跳到行尾即可，换行符留给主循环。
		if l.match('/') {
			l.lineComment()
		} else if l.match('=') {
			l.addToken(token.SLASH_ASSIGN)
		} else {
			l.addToken(token.SLASH)
		}

	case '%':
		// %= 或 %
		if l.match('=') {
			l.addToken(token.PERCENT_ASSIGN)
		} else {
			l.addToken(token.PERCENT)
		}

	case '=':
		// == 或 =
		if l.match('=') {
			l.addToken(token.EQ)
		} else {
			l.addToken(token.ASSIGN)
		}

	case '!':
		// != 或 !
		if l.match('=') {
			l.addToken(token.NE)
		} else {
			l.addToken(token.NOT)
		}

	case '<':
		// <= 或 << 或 <
		if l.match('=') {
			l.addToken(token.LE)
		} else if l.match('<') {
			l.addToken(token.LEFT_SHIFT)
		} else {
			l.addToken(token.LT)
		}

	case '>':
		// >= 或 >> 或 >
		if l.match('=') {
			l.addToken(token.GE)
		} else if l.match('>') {
			l.addToken(token.RIGHT_SHIFT)
		} else {
			l.addToken(token.GT)
		}

	case '&':
		// && 或 &
		if l.match('&') {
			l.addToken(token.AND)
		} else {
			l.addToken(token.BIT_AND)
		}

	case '|':
		// || 或 |
		if l.match('|') {
			l.addToken(token.OR)
		} else {
			l.addToken(token.BIT_OR)
		}

	case '^':
		l.addToken(token.BIT_XOR)
	case '~':
		l.addToken(token.BIT_NOT)

	// ----------------------------------------------------------
	// 字符和字符串字面量
	// ----------------------------------------------------------
	case '\'':
		return l.charLiteral()

	case '"':
		return l.stringLiteral()

	// ----------------------------------------------------------
	// 默认：数字、标识符或非法字符
	// ----------------------------------------------------------
	default:
		if isDigit(ch) {
			l.number()
		} else if isAlpha(ch) {
			l.identifier()
		} else {
			return errors.NewLexing(i18n.T(i18n.ErrUnexpectedChar, ch), l.start)
		}
	}

	return nil
}

// skipBlank 批量跳过无语义的空白字符
//
// 注意 tab 和换行不在其中。
func (l *Lexer) skipBlank() {
	for l.current < len(l.input) {
		switch l.input[l.current] {
		case ' ', '\r', '\f', '\v':
			l.current++
		default:
			return
		}
	}
}

// lineComment 跳过行内注释，直到行尾
//
// 换行符不消费，留给主循环产出 NEWLINE。
func (l *Lexer) lineComment() {
	for l.current < len(l.input) && l.input[l.current] != '\n' {
		l.current++
	}
}

// ============================================================================
// 字符与字符串字面量
// ============================================================================

// charLiteral 处理字符字面量 'a'
//
// 一个字符（支持转义 \n \t \\ \' \" \0），然后必须是闭合撇号。
// Token 的 Literal 是解码后的单个字符。
func (l *Lexer) charLiteral() error {
	if l.current >= len(l.input) || l.input[l.current] == '\n' {
		return errors.NewLexing(i18n.T(i18n.ErrUnterminatedChar), l.start)
	}

	var decoded byte
	ch := l.input[l.current]
	if ch == '\\' {
		l.current++
		if l.current >= len(l.input) {
			return errors.NewLexing(i18n.T(i18n.ErrUnterminatedChar), l.start)
		}
		decoded = decodeEscape(l.input[l.current])
		l.current++
	} else if ch == '\'' {
		// '' 没有内容
		return errors.NewLexing(i18n.T(i18n.ErrUnterminatedChar), l.start)
	} else {
		decoded = ch
		l.current++
	}

	if l.current >= len(l.input) || l.input[l.current] != '\'' {
		return errors.NewLexing(i18n.T(i18n.ErrUnterminatedChar), l.start)
	}
	l.current++ // 闭合撇号

	l.tokens = append(l.tokens, token.Token{
		Type:    token.CHAR_LIT,
		Literal: string(decoded),
		Offset:  l.start,
	})
	return nil
}

// stringLiteral 处理字符串字面量 "..."
//
// 支持与字符字面量相同的转义集。Token 的 Literal 是解码后的内容。
// 字符串不能跨行；遇到行尾或文件尾都算未闭合。
func (l *Lexer) stringLiteral() error {
	var sb strings.Builder

	for l.current < len(l.input) {
		ch := l.input[l.current]

		if ch == '"' {
			l.current++ // 闭合引号
			l.tokens = append(l.tokens, token.Token{
				Type:    token.STRING_LIT,
				Literal: sb.String(),
				Offset:  l.start,
			})
			return nil
		}

		if ch == '\n' {
			break
		}

		if ch == '\\' {
			l.current++
			if l.current >= len(l.input) {
				break
			}
			sb.WriteByte(decodeEscape(l.input[l.current]))
			l.current++
			continue
		}

		sb.WriteByte(ch)
		l.current++
	}

	return errors.NewLexing(i18n.T(i18n.ErrUnterminatedString), l.start)
}

// decodeEscape 解码一个转义字符
//
// 集合之外的转义保留原字符。
func decodeEscape(ch byte) byte {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case '\\':
		return '\\'
	case '\'':
		return '\''
	case '"':
		return '"'
	case '0':
		return 0
	default:
		return ch
	}
}

// ============================================================================
// 数字处理
// ============================================================================

// number 处理数字字面量
//
// 十进制整数，或带小数部分的浮点数。小数点只有在后面紧跟数字时
// 才属于数字（否则是成员访问的点）。字面量文本原样保留，
// 数值解码推迟到语法器的 primary 分支。
func (l *Lexer) number() {
	for l.current < len(l.input) && isDigit(l.input[l.current]) {
		l.current++
	}

	isFloat := false
	if l.current+1 < len(l.input) && l.input[l.current] == '.' && isDigit(l.input[l.current+1]) {
		isFloat = true
		l.current++ // 跳过 '.'
		for l.current < len(l.input) && isDigit(l.input[l.current]) {
			l.current++
		}
	}

	typ := token.INT_LIT
	if isFloat {
		typ = token.FLOAT_LIT
	}
	l.addToken(typ)
}

// ============================================================================
// 标识符与关键字
// ============================================================================

// identifier 处理标识符和关键字
//
// 标识符以字母或下划线开头，后跟字母、数字或下划线。
// 扫描完成后查关键字表。关键字只有在完整单词时才成立：
// 如果标识符紧贴在一个单词字符后面（如 3for 中的 for），
// 它不可能是独立单词，按普通标识符处理。
func (l *Lexer) identifier() {
	for l.current < len(l.input) && isAlphaNumeric(l.input[l.current]) {
		l.current++
	}

	text := l.input[l.start:l.current]

	typ := token.IDENT
	if l.start == 0 || !isAlphaNumeric(l.input[l.start-1]) {
		typ = token.LookupIdent(text)
	}

	// 特殊处理 div= (整除复合赋值)
	// div 后面紧跟 = 时，合并为 div= 运算符
	if typ == token.DIV && l.current < len(l.input) && l.input[l.current] == '=' {
		l.current++ // 消费 =
		typ = token.DIV_ASSIGN
	}

	l.addToken(typ)
}

// ============================================================================
// 底层字符操作
// ============================================================================

// advance 前进一个字节并返回它
//
// 输入是归一化后的文本，词法层面只认 ASCII；
// 多字节字符会落到非法字符分支。
func (l *Lexer) advance() byte {
	ch := l.input[l.current]
	l.current++
	return ch
}

// match 如果当前字节匹配则前进
//
// 用于识别双字符运算符，如 == != <= 等。
func (l *Lexer) match(expected byte) bool {
	if l.current >= len(l.input) {
		return false
	}
	if l.input[l.current] != expected {
		return false
	}
	l.current++
	return true
}

// addToken 添加一个 token，字面量取当前扫描区间
func (l *Lexer) addToken(typ token.Type) {
	l.tokens = append(l.tokens, token.Token{
		Type:    typ,
		Literal: l.input[l.start:l.current],
		Offset:  l.start,
	})
}

// ============================================================================
// 字符分类函数
// ============================================================================

// isDigit 判断是否为数字 0-9
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isAlpha 判断是否为字母或下划线
func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		ch == '_'
}

// isAlphaNumeric 判断是否为字母、数字或下划线
func isAlphaNumeric(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}
