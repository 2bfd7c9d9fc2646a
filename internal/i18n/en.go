package i18n

var messagesEN = map[string]string{
	// ========== Lexer ==========
	ErrUnexpectedChar:      "unexpected character '%c'",
	ErrUnterminatedComment: "unterminated block comment",
	ErrUnterminatedString:  "unterminated string",
	ErrUnterminatedInterp:  "unterminated interpolation",
	ErrUnterminatedHeredoc: "unterminated heredoc, missing closing label '%s'",
	ErrInvalidHeredocLabel: "invalid heredoc label",

	// ========== Parser ==========
	ErrUnexpectedToken: "unexpected token: %s",
	ErrUnexpectedEOF:   "unexpected end of input",
	ErrExpectedToken:   "expected %s, found %s",
	ErrInternal:        "internal parser error: %s",
	ErrTooDeep:         "expression nested too deeply",

	// ========== Diagnostics ==========
	MsgErrorCount:      "found %d error(s)",
	HintUnexpectedChar: "remove the character, or move it into a string or comment",
	HintUnterminated:   "check that every string, comment and heredoc is closed",
	HintUnexpectedEOF:  "a block, list or parenthesis may be missing its closing token",
	HintUnexpected:     "check for a missing ';' or an unbalanced bracket before this token",
	HintInternal:       "this is a formatter bug, please report it with the input file",

	// ========== Formatting ==========
	MsgFormatted:    "formatted %s",
	MsgUnchanged:    "unchanged %s",
	MsgNotFormatted: "%s is not formatted",
	MsgSummary:      "%d files, %d changed, %d failed",

	// ========== CLI ==========
	MsgVersion:       "phpfmt %s",
	MsgConfigCreated: "created %s",
	MsgConfigExists:  "%s already exists",
	MsgNoInput:       "no PHP files found",
	MsgReadFailed:    "cannot read %s: %v",
	MsgWriteFailed:   "cannot write %s: %v",
}
