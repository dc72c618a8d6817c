package i18n

var messagesEN = map[string]string{
	// ========== Lexer ==========
	ErrUnexpectedChar:     "Unrecognized character '%c'.",
	ErrUnterminatedChar:   "' expected - character literal not closed.",
	ErrUnterminatedString: "\" expected - string literal not closed.",

	// ========== Parser ==========
	ErrIndentation:      "Indentation error.",
	ErrNewlineExpected:  "Newline expected.",
	ErrThenExpected:     "'then' token expected.",
	ErrFromExpected:     "'from' - lower limit delimiter expected.",
	ErrToExpected:       "'to' - upper limit delimiter expected.",
	ErrNotIdentifier:    "Token is not an identifier.",
	ErrLParenExpected:   "( expected.",
	ErrRParenExpected:   ") expected - matching parentheses not found.",
	ErrRBracketExpected: "] expected.",
	ErrCloserExpected:   "%s expected.",
	ErrUnexpectedToken:  "Unexpected token.",
	ErrTrailingTokens:   "Unexpected token after end of program.",
	ErrInvalidInteger:   "Invalid integer literal '%s'.",
	ErrInvalidFloat:     "Invalid float literal '%s'.",
	ErrTooDeep:          "Expression too deeply nested.",
}
