package i18n

import (
	"fmt"
	"sync"
)

// Language 语言类型
type Language string

const (
	LangEnglish Language = "en"
	LangChinese Language = "zh"
)

// ============================================================================
// 消息 ID
// ============================================================================
//
// 消息 ID 是稳定的键，词法器和语法器只引用键，不内联文案。
// 英文文案是默认值，也是对外承诺的诊断文本（测试以英文为准）。
//
// ============================================================================

const (
	// 词法分析器
	ErrUnexpectedChar     = "lexer.unexpected_char"
	ErrUnterminatedChar   = "lexer.unterminated_char"
	ErrUnterminatedString = "lexer.unterminated_string"

	// 语法分析器
	ErrIndentation      = "parser.indentation"
	ErrNewlineExpected  = "parser.newline_expected"
	ErrThenExpected     = "parser.then_expected"
	ErrFromExpected     = "parser.from_expected"
	ErrToExpected       = "parser.to_expected"
	ErrNotIdentifier    = "parser.not_identifier"
	ErrLParenExpected   = "parser.lparen_expected"
	ErrRParenExpected   = "parser.rparen_expected"
	ErrRBracketExpected = "parser.rbracket_expected"
	ErrCloserExpected   = "parser.closer_expected"
	ErrUnexpectedToken  = "parser.unexpected_token"
	ErrTrailingTokens   = "parser.trailing_tokens"
	ErrInvalidInteger   = "parser.invalid_integer"
	ErrInvalidFloat     = "parser.invalid_float"
	ErrTooDeep          = "parser.too_deep"
)

// 全局语言设置
var (
	currentLang Language = LangEnglish
	mu          sync.RWMutex
)

// SetLanguage 设置当前语言
func SetLanguage(lang Language) {
	mu.Lock()
	defer mu.Unlock()
	currentLang = lang
}

// SetLanguageFromString 从字符串设置语言
func SetLanguageFromString(lang string) {
	switch lang {
	case "zh", "zh-cn", "zh-tw", "zh-hk", "chinese":
		SetLanguage(LangChinese)
	default:
		SetLanguage(LangEnglish)
	}
}

// GetLanguage 获取当前语言
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return currentLang
}

// T 翻译消息（支持格式化参数）
func T(msgID string, args ...interface{}) string {
	mu.RLock()
	lang := currentLang
	mu.RUnlock()

	var messages map[string]string
	switch lang {
	case LangChinese:
		messages = messagesZH
	default:
		messages = messagesEN
	}

	if msg, ok := messages[msgID]; ok {
		if len(args) > 0 {
			return fmt.Sprintf(msg, args...)
		}
		return msg
	}

	// 回退到英文
	if msg, ok := messagesEN[msgID]; ok {
		if len(args) > 0 {
			return fmt.Sprintf(msg, args...)
		}
		return msg
	}

	// 找不到翻译则返回原始 ID
	return msgID
}
