package errors

import (
	"fmt"
	"strings"

	"github.com/tangzhangming/pseudo/internal/source"
)

// ============================================================================
// ANSI 颜色
// ============================================================================

const (
	ColorReset = "\033[0m"
	ColorRed   = "\033[31m"
	ColorCyan  = "\033[36m"
	ColorBold  = "\033[1m"
)

// ============================================================================
// 格式化器
// ============================================================================

// Formatter 错误格式化器
//
// 把带偏移的错误渲染成用户可读的诊断：原始行号、出错的那一行
// （tab 展开为空格）、以及指向出错列的 ^ 标记。
type Formatter struct {
	Colors   bool // 是否使用颜色
	TabWidth int  // tab 展开宽度
}

// NewFormatter 创建默认格式化器
func NewFormatter() *Formatter {
	return &Formatter{
		Colors:   true,
		TabWidth: 1,
	}
}

// Format 格式化一个前端错误
//
// 错误偏移通过归一化器解析成原始行号和列号。行尾偏移收缩到行内
// 最后一列，文件末尾之后的偏移收缩到最后一行（由 Resolve 保证）。
func (f *Formatter) Format(err *Error, src *source.Source) string {
	var sb strings.Builder

	// 错误头: ParsingError: Newline expected.
	head := err.Kind.String()
	if f.Colors {
		head = ColorBold + ColorRed + head + ColorReset
	}
	if err.Message != "" {
		sb.WriteString(fmt.Sprintf("%s: %s\n", head, err.Message))
	} else {
		sb.WriteString(head + "\n")
	}

	line, column, lineText := src.Resolve(err.Offset)

	// 位置: --> line 5
	loc := fmt.Sprintf("--> line %d", line)
	if f.Colors {
		loc = ColorCyan + loc + ColorReset
	}
	sb.WriteString(" " + loc + "\n")

	// 源代码行，tab 展开为空格，保证 ^ 对得上
	sb.WriteString(f.expandTabs(lineText))
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", f.visualColumn(lineText, column)))
	sb.WriteString("^")

	return sb.String()
}

// expandTabs 把行内的 tab 替换为空格
func (f *Formatter) expandTabs(line string) string {
	return strings.ReplaceAll(line, "\t", strings.Repeat(" ", f.tabWidth()))
}

// visualColumn 计算字节列号对应的展示列号
//
// 列号按字节计，但 tab 展开后占多个展示列，必须逐字节累加。
func (f *Formatter) visualColumn(line string, column int) int {
	if column > len(line) {
		column = len(line)
	}
	visual := 0
	for i := 0; i < column; i++ {
		if line[i] == '\t' {
			visual += f.tabWidth()
		} else {
			visual++
		}
	}
	return visual
}

func (f *Formatter) tabWidth() int {
	if f.TabWidth < 1 {
		return 1
	}
	return f.TabWidth
}
