package i18n

// 消息 ID
const (
	// ========== 词法分析器 ==========
	ErrUnexpectedChar      = "lexer.unexpected_char"
	ErrUnterminatedComment = "lexer.unterminated_comment"
	ErrUnterminatedString  = "lexer.unterminated_string"
	ErrUnterminatedInterp  = "lexer.unterminated_interpolation"
	ErrUnterminatedHeredoc = "lexer.unterminated_heredoc"
	ErrInvalidHeredocLabel = "lexer.invalid_heredoc_label"

	// ========== 语法分析器 ==========
	ErrUnexpectedToken = "parser.unexpected_token"
	ErrUnexpectedEOF   = "parser.unexpected_eof"
	ErrExpectedToken   = "parser.expected_token"
	ErrInternal        = "parser.internal"
	ErrTooDeep         = "parser.too_deep"

	// ========== 诊断 ==========
	MsgErrorCount      = "diag.error_count"
	HintUnexpectedChar = "hint.unexpected_char"
	HintUnterminated   = "hint.unterminated"
	HintUnexpectedEOF  = "hint.unexpected_eof"
	HintUnexpected     = "hint.unexpected_token"
	HintInternal       = "hint.internal"

	// ========== 格式化 ==========
	MsgFormatted    = "format.formatted"
	MsgUnchanged    = "format.unchanged"
	MsgNotFormatted = "format.not_formatted"
	MsgSummary      = "format.summary"

	// ========== 命令行 ==========
	MsgVersion       = "cli.version"
	MsgConfigCreated = "cli.config_created"
	MsgConfigExists  = "cli.config_exists"
	MsgNoInput       = "cli.no_input"
	MsgReadFailed    = "cli.read_failed"
	MsgWriteFailed   = "cli.write_failed"
)
