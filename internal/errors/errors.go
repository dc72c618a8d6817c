package errors

import "fmt"

// ============================================================================
// 错误类别
// ============================================================================
//
// 解释器全链路共用一套错误货币。前端（归一化器、词法器、语法器）只会产生
// Lexing 和 Parsing 两类；其余类别（Value、Type、Argument、Range、Name、
// Fatal）由下游求值器产生，这里声明出来是为了让所有阶段共享同一个类型。
//
// ============================================================================

// Kind 错误类别
type Kind int

const (
	KindLexing   Kind = iota // 词法错误
	KindParsing              // 语法错误
	KindValue                // 值错误（求值期）
	KindType                 // 类型错误（求值期）
	KindArgument             // 参数错误（求值期）
	KindRange                // 范围错误（求值期）
	KindName                 // 名字错误（求值期）
	KindFatal                // 致命错误
)

var kindNames = map[Kind]string{
	KindLexing:   "LexingError",
	KindParsing:  "ParsingError",
	KindValue:    "ValueError",
	KindType:     "TypeError",
	KindArgument: "ArgumentError",
	KindRange:    "RangeError",
	KindName:     "NameError",
	KindFatal:    "FatalError",
}

// String 返回类别名称
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ============================================================================
// Error - 带源位置的错误值
// ============================================================================

// Error 携带类别、消息和归一化文本中的字节偏移
//
// 偏移由归一化器的 Resolve 转换为用户可见的 (行, 列)。
// 第一个错误即中止解析，没有恢复路径，因此调用方只需向上传递。
type Error struct {
	Kind    Kind   // 错误类别
	Message string // 错误消息
	Offset  int    // 归一化文本中的字节偏移
}

// Error 实现 error 接口
func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// ============================================================================
// 构造函数
// ============================================================================

// NewLexing 创建词法错误
func NewLexing(msg string, offset int) *Error {
	return &Error{Kind: KindLexing, Message: msg, Offset: offset}
}

// NewParsing 创建语法错误
func NewParsing(msg string, offset int) *Error {
	return &Error{Kind: KindParsing, Message: msg, Offset: offset}
}

// NewValue 创建值错误
func NewValue(msg string, offset int) *Error {
	return &Error{Kind: KindValue, Message: msg, Offset: offset}
}

// NewType 创建类型错误
func NewType(msg string, offset int) *Error {
	return &Error{Kind: KindType, Message: msg, Offset: offset}
}

// NewArgument 创建参数错误
func NewArgument(msg string, offset int) *Error {
	return &Error{Kind: KindArgument, Message: msg, Offset: offset}
}

// NewRange 创建范围错误
func NewRange(msg string, offset int) *Error {
	return &Error{Kind: KindRange, Message: msg, Offset: offset}
}

// NewName 创建名字错误
func NewName(msg string, offset int) *Error {
	return &Error{Kind: KindName, Message: msg, Offset: offset}
}

// NewFatal 创建致命错误
func NewFatal(msg string, offset int) *Error {
	return &Error{Kind: KindFatal, Message: msg, Offset: offset}
}
