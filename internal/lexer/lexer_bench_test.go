package lexer

import (
	"strings"
	"testing"
)

// ============================================================================
// Lexer 基准测试
// ============================================================================
//
// 运行基准测试：
//   go test -bench=. -benchmem ./internal/lexer/...
//
// 对比优化前后：
//   go test -bench=. -benchmem -count=5 ./internal/lexer/... > new.txt
//   # 切换到优化前的代码
//   go test -bench=. -benchmem -count=5 ./internal/lexer/... > old.txt
//   benchstat old.txt new.txt
//
// ============================================================================

// 测试源码样本：模拟真实的 PHP 代码
var benchSource = `<?php
// 这是一个基准测试用的示例代码
// 包含各种常见的语法结构

namespace App\Controllers;

use App\Models\User;
use App\Services\AuthService;

class UserController extends BaseController implements Authenticatable
{
    private int $maxRetries = 3;

    public function __construct(private readonly AuthService $authService)
    {
    }

    public function login(string $username, string $password): bool
    {
        // 验证输入
        if ($username === '' || $password === '') {
            return false;
        }

        for ($i = 0; $i < $this->maxRetries; $i++) {
            $result = $this->authService->authenticate($username, $password);
            if ($result !== null) {
                return true;
            }
        }

        return false;
    }

    public function getUser(int $id): ?User
    {
        $user = User::find($id);
        return $user?->isActive() ? $user : null;
    }

    public function calculateScore(float $base, int $multiplier): float
    {
        $score = $base * $multiplier;
        $bonus = 1.5e2 + 0x10 + 0b1010;
        return $score + $bonus;
    }

    private function formatMessage(array $params): string
    {
        return "Hello, {$params['name']}! Your score is $params[score].";
    }
}
`

func benchLex(b *testing.B, source string, cfg Config) {
	b.ReportAllocs()
	b.SetBytes(int64(len(source)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Lex(source, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkLexer 测试完整的词法分析性能
func BenchmarkLexer(b *testing.B) {
	benchLex(b, benchSource, Config{})
}

// BenchmarkLexerLargeFile 测试大文件
func BenchmarkLexerLargeFile(b *testing.B) {
	body := strings.TrimPrefix(benchSource, "<?php\n")
	var sb strings.Builder
	sb.WriteString("<?php\n")
	for i := 0; i < 100; i++ {
		sb.WriteString(strings.ReplaceAll(body, "UserController", "UserController"+strings.Repeat("X", i%5)))
	}
	benchLex(b, sb.String(), Config{})
}

// BenchmarkLexerWhitespace 测试空白跳过
func BenchmarkLexerWhitespace(b *testing.B) {
	source := strings.Repeat("    \t\n", 1000) + "$x"
	benchLex(b, source, Config{Mode: ModeCode})
}

// BenchmarkLexerStrings 测试字符串扫描
func BenchmarkLexerStrings(b *testing.B) {
	source := strings.Repeat(`'hello world' "hello world" `, 100)
	benchLex(b, source, Config{Mode: ModeCode})
}

// BenchmarkLexerInterpolation 测试插值字符串
func BenchmarkLexerInterpolation(b *testing.B) {
	source := strings.Repeat(`"a $b c {$d->e} ${f} $g[0] $h->i" `, 100)
	benchLex(b, source, Config{Mode: ModeCode})
}

// BenchmarkLexerHeredoc 测试 heredoc
func BenchmarkLexerHeredoc(b *testing.B) {
	source := strings.Repeat("<<<EOT\nline $a\nline {$b}\nEOT;\n", 100)
	benchLex(b, source, Config{Mode: ModeCode})
}

// BenchmarkLexerNumbers 测试数字扫描
func BenchmarkLexerNumbers(b *testing.B) {
	source := strings.Repeat("123 45.67 0xFF 0b1010 1_000_000 1.5e10 ", 100)
	benchLex(b, source, Config{Mode: ModeCode})
}

// BenchmarkLexerIdentifiers 测试标识符与关键字
func BenchmarkLexerIdentifiers(b *testing.B) {
	source := strings.Repeat(`foo Bar\Baz function class $var int __CLASS__ `, 100)
	benchLex(b, source, Config{Mode: ModeCode})
}

// BenchmarkLexerOperators 测试运算符扫描
func BenchmarkLexerOperators(b *testing.B) {
	source := strings.Repeat("+ - * / % = == != < <= > >= && || ", 50) +
		strings.Repeat("+= -= *= /= ?? ??= <=> ", 30) +
		strings.Repeat("& | ^ ~ << >> ", 20)
	benchLex(b, source, Config{Mode: ModeCode})
}

// BenchmarkLexerComments 测试注释扫描
func BenchmarkLexerComments(b *testing.B) {
	source := strings.Repeat("// single line comment\n", 50) +
		strings.Repeat("/* block comment */ ", 30) +
		strings.Repeat("/** doc comment */\n", 20) + "$identifier"
	benchLex(b, source, Config{Mode: ModeCode})
}

// BenchmarkLexerInline 测试内联文本
func BenchmarkLexerInline(b *testing.B) {
	source := strings.Repeat("<div class=\"row\"><?= $value ?></div>\n", 200)
	benchLex(b, source, Config{Mode: ModeInline})
}
