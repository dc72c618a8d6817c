package source

import (
	"strings"
	"testing"
)

func TestNormalizeRemovesCommentLines(t *testing.T) {
	input := "// header comment\nx = 1\n// middle\ny = 2\n"
	src := Normalize(input)

	if src.Text() != "x = 1\ny = 2\n" {
		t.Errorf("text mismatch: got %q", src.Text())
	}
	if src.LineCount() != 2 {
		t.Fatalf("line count: got %d, want 2", src.LineCount())
	}

	// 行号映射回到原始行
	if src.OriginalLine(0) != 2 {
		t.Errorf("line 0: got %d, want 2", src.OriginalLine(0))
	}
	if src.OriginalLine(1) != 4 {
		t.Errorf("line 1: got %d, want 4", src.OriginalLine(1))
	}
}

func TestNormalizeRemovesBlankLines(t *testing.T) {
	input := "x = 1\n\n   \n\t\ny = 2\n"
	src := Normalize(input)

	if src.Text() != "x = 1\ny = 2\n" {
		t.Errorf("text mismatch: got %q", src.Text())
	}
	if src.OriginalLine(1) != 5 {
		t.Errorf("line 1: got %d, want 5", src.OriginalLine(1))
	}
}

func TestNormalizeTrimsTrailingWhitespace(t *testing.T) {
	input := "x = 1   \t\r\ny = 2\r\n"
	src := Normalize(input)

	if src.Text() != "x = 1\ny = 2\n" {
		t.Errorf("text mismatch: got %q", src.Text())
	}
}

func TestNormalizePreservesLeadingTabs(t *testing.T) {
	// 缩进的 tab 对词法器有语义，不能动
	input := "\t\tx = 1\n"
	src := Normalize(input)

	if src.Text() != "\t\tx = 1\n" {
		t.Errorf("text mismatch: got %q", src.Text())
	}
}

func TestNormalizeAppendsFinalNewline(t *testing.T) {
	src := Normalize("x = 1")
	if src.Text() != "x = 1\n" {
		t.Errorf("text mismatch: got %q", src.Text())
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	src := Normalize("")
	if src.Text() != "" {
		t.Errorf("text mismatch: got %q", src.Text())
	}
	if src.LineCount() != 0 {
		t.Errorf("line count: got %d, want 0", src.LineCount())
	}

	// 空输入的 Resolve 不应崩溃
	line, column, text := src.Resolve(0)
	if line != 1 || column != 0 || text != "" {
		t.Errorf("resolve on empty: got (%d, %d, %q)", line, column, text)
	}
}

func TestResolveBasic(t *testing.T) {
	// 归一化文本: "x = 1\ny = 22\n"
	input := "// c\nx = 1\n\ny = 22\n"
	src := Normalize(input)

	tests := []struct {
		offset int
		line   int
		column int
		text   string
	}{
		{0, 2, 0, "x = 1"},  // x
		{4, 2, 4, "x = 1"},  // 1
		{6, 4, 0, "y = 22"}, // y
		{10, 4, 4, "y = 22"},
	}

	for _, tt := range tests {
		line, column, text := src.Resolve(tt.offset)
		if line != tt.line || column != tt.column || text != tt.text {
			t.Errorf("offset %d: got (%d, %d, %q), want (%d, %d, %q)",
				tt.offset, line, column, text, tt.line, tt.column, tt.text)
		}
	}
}

func TestResolveClampsLineEnd(t *testing.T) {
	src := Normalize("x = 1\ny = 2\n")

	// 偏移 5 是第一行的换行符，收缩到该行最后一列
	line, column, _ := src.Resolve(5)
	if line != 1 || column != 5 {
		t.Errorf("newline offset: got (%d, %d), want (1, 5)", line, column)
	}
}

func TestResolveClampsPastEnd(t *testing.T) {
	src := Normalize("x = 1\ny = 2\n")

	// 文件末尾之后的偏移收缩到最后一行
	line, _, text := src.Resolve(1000)
	if line != 2 || text != "y = 2" {
		t.Errorf("past-end offset: got (%d, %q), want (2, %q)", line, text, "y = 2")
	}

	// 词法器 EOF 哨兵的偏移等于文本长度
	line, _, _ = src.Resolve(len(src.Text()))
	if line != 2 {
		t.Errorf("EOF offset: got line %d, want 2", line)
	}
}

func TestResolveAgainstOriginalLines(t *testing.T) {
	// 性质：resolve(offset) 的行号等于该偏移处内容在原始文本中的 1 基行号
	original := "// a\n\nx = 1\n// b\ny = 2\n\nz = 3\n"
	src := Normalize(original)

	originalLines := strings.Split(original, "\n")
	clean := src.Text()

	offset := 0
	for _, cleanLine := range strings.Split(strings.TrimSuffix(clean, "\n"), "\n") {
		line, _, text := src.Resolve(offset)
		if text != cleanLine {
			t.Errorf("offset %d: text mismatch: got %q, want %q", offset, text, cleanLine)
		}
		if originalLines[line-1] != cleanLine {
			t.Errorf("offset %d: original line %d is %q, normalized line is %q",
				offset, line, originalLines[line-1], cleanLine)
		}
		offset += len(cleanLine) + 1
	}
}
