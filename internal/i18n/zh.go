package i18n

var messagesZH = map[string]string{
	// ========== 词法分析器 ==========
	ErrUnexpectedChar:      "意外字符 '%c'",
	ErrUnterminatedComment: "未闭合的块注释",
	ErrUnterminatedString:  "未闭合的字符串",
	ErrUnterminatedInterp:  "未闭合的插值表达式",
	ErrUnterminatedHeredoc: "未闭合的 heredoc，缺少结束标签 '%s'",
	ErrInvalidHeredocLabel: "无效的 heredoc 标签",

	// ========== 语法分析器 ==========
	ErrUnexpectedToken: "意外的符号: %s",
	ErrUnexpectedEOF:   "意外的输入结束",
	ErrExpectedToken:   "需要 %s，实际为 %s",
	ErrInternal:        "语法分析器内部错误: %s",
	ErrTooDeep:         "表达式嵌套过深",

	// ========== 诊断 ==========
	MsgErrorCount:      "发现 %d 个错误",
	HintUnexpectedChar: "删除该字符，或把它放进字符串或注释中",
	HintUnterminated:   "检查字符串、注释和 heredoc 是否都已闭合",
	HintUnexpectedEOF:  "可能缺少代码块、列表或括号的结束符",
	HintUnexpected:     "检查该符号之前是否缺少 ';' 或括号不配对",
	HintInternal:       "这是格式化器的缺陷，请附上输入文件报告",

	// ========== 格式化 ==========
	MsgFormatted:    "已格式化 %s",
	MsgUnchanged:    "未改变 %s",
	MsgNotFormatted: "%s 未格式化",
	MsgSummary:      "共 %d 个文件，%d 个已改变，%d 个失败",

	// ========== 命令行 ==========
	MsgVersion:       "phpfmt %s",
	MsgConfigCreated: "已创建 %s",
	MsgConfigExists:  "%s 已存在",
	MsgNoInput:       "没有找到 PHP 文件",
	MsgReadFailed:    "无法读取 %s: %v",
	MsgWriteFailed:   "无法写入 %s: %v",
}
