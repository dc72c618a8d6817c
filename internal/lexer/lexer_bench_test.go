package lexer

import (
	"strings"
	"testing"
)

// benchProgram 构造一个有代表性的基准程序
func benchProgram() string {
	var sb strings.Builder
	sb.WriteString("function sum(arr, n)\n")
	sb.WriteString("\ts = 0\n")
	sb.WriteString("\tfor i from 0 to n - 1\n")
	sb.WriteString("\t\ts += arr[i] * 2 mod 7\n")
	sb.WriteString("\treturn s\n")
	for i := 0; i < 50; i++ {
		sb.WriteString("x = sum([1, 2, 3], 3) + 1.5\n")
		sb.WriteString("if x > 10 && x != 42 then\n")
		sb.WriteString("\tmsg = \"big\\n\"\n")
		sb.WriteString("else\n")
		sb.WriteString("\tmsg = 'c'\n")
	}
	return sb.String()
}

func BenchmarkLexer(b *testing.B) {
	input := benchProgram()
	b.SetBytes(int64(len(input)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		l := New()
		l.SetInput(input)
		if err := l.Lex(); err != nil {
			b.Fatalf("lexer error: %v", err)
		}
	}
}
