package errors

import (
	"testing"

	"github.com/tangzhangming/pseudo/internal/source"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		err      *Error
		expected string
	}{
		{NewParsing("Newline expected.", 3), "ParsingError: Newline expected."},
		{NewLexing("bad char", 0), "LexingError: bad char"},
		{NewParsing("", 7), "ParsingError"},
		{NewType("int expected", 1), "TypeError: int expected"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.expected {
			t.Errorf("got %q, want %q", got, tt.expected)
		}
	}
}

func TestKindNames(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindLexing, "LexingError"},
		{KindParsing, "ParsingError"},
		{KindValue, "ValueError"},
		{KindType, "TypeError"},
		{KindArgument, "ArgumentError"},
		{KindRange, "RangeError"},
		{KindName, "NameError"},
		{KindFatal, "FatalError"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("got %q, want %q", got, tt.expected)
		}
	}
}

func TestFormatterRendersCaret(t *testing.T) {
	// 归一化文本: "x = 1\ny = $\n"，错误指向第二行的 $
	src := source.Normalize("x = 1\ny = $\n")
	err := NewLexing("Unrecognized character '$'.", 10)

	f := NewFormatter()
	f.Colors = false

	expected := "LexingError: Unrecognized character '$'.\n" +
		" --> line 2\n" +
		"y = $\n" +
		"    ^"
	if got := f.Format(err, src); got != expected {
		t.Errorf("rendered diagnostic mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, expected)
	}
}

func TestFormatterExpandsTabs(t *testing.T) {
	// 行首的 tab 展开为空格，caret 仍指向正确的列
	src := source.Normalize("\tx = $\n")
	err := NewLexing("Unrecognized character '$'.", 5)

	f := NewFormatter()
	f.Colors = false
	f.TabWidth = 4

	expected := "LexingError: Unrecognized character '$'.\n" +
		" --> line 1\n" +
		"    x = $\n" +
		"        ^"
	if got := f.Format(err, src); got != expected {
		t.Errorf("rendered diagnostic mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, expected)
	}
}

func TestFormatterReportsOriginalLineNumbers(t *testing.T) {
	// 注释行被删掉之后，行号仍按用户看到的源文件报告
	src := source.Normalize("// comment\n\nx = 1\ny = 2\n")

	// 偏移 6 落在归一化后的第二行 ("y = 2")，原始行号是 4
	err := NewParsing("Newline expected.", 6)

	f := NewFormatter()
	f.Colors = false

	expected := "ParsingError: Newline expected.\n" +
		" --> line 4\n" +
		"y = 2\n" +
		"^"
	if got := f.Format(err, src); got != expected {
		t.Errorf("rendered diagnostic mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, expected)
	}
}

func TestFormatterClampsPastEnd(t *testing.T) {
	src := source.Normalize("x = 1\n")
	err := NewParsing("Unexpected token.", 999)

	f := NewFormatter()
	f.Colors = false

	expected := "ParsingError: Unexpected token.\n" +
		" --> line 1\n" +
		"x = 1\n" +
		"     ^"
	if got := f.Format(err, src); got != expected {
		t.Errorf("rendered diagnostic mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, expected)
	}
}
