package i18n

var messagesZH = map[string]string{
	// ========== 词法分析器 ==========
	ErrUnexpectedChar:     "无法识别的字符 '%c'。",
	ErrUnterminatedChar:   "字符字面量未闭合，需要 '。",
	ErrUnterminatedString: "字符串字面量未闭合，需要 \"。",

	// ========== 语法分析器 ==========
	ErrIndentation:      "缩进错误。",
	ErrNewlineExpected:  "需要换行。",
	ErrThenExpected:     "需要 'then'。",
	ErrFromExpected:     "需要 'from' 作为下界分隔符。",
	ErrToExpected:       "需要 'to' 作为上界分隔符。",
	ErrNotIdentifier:    "此处需要标识符。",
	ErrLParenExpected:   "需要 (。",
	ErrRParenExpected:   "需要 )，括号不匹配。",
	ErrRBracketExpected: "需要 ]。",
	ErrCloserExpected:   "需要 %s。",
	ErrUnexpectedToken:  "意外的符号。",
	ErrTrailingTokens:   "程序结束后存在多余的符号。",
	ErrInvalidInteger:   "无效的整数字面量 '%s'。",
	ErrInvalidFloat:     "无效的浮点数字面量 '%s'。",
	ErrTooDeep:          "表达式嵌套过深。",
}
