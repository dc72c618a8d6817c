package source

import (
	"strings"
	"unicode"
)

// ============================================================================
// Source - 源码归一化器
// ============================================================================
//
// 归一化器在词法分析之前对原始程序文本做一次整理：
// 1. 删除整行注释（以 // 开头的行，连同换行符一起删除）
// 2. 删除不含任何可见字符的空行
// 3. 去掉每行尾部的 ASCII 空白（空格、tab、\f、\v、\r、\n），统一补一个 \n
//
// 同时维护「归一化行号 → 原始行号」的映射，这样诊断信息报告的行号
// 和用户在编辑器里看到的行号一致。tab 被原样保留，因为缩进对词法器有语义；
// 只有在渲染错误片段时才把 tab 替换为空格。
//
// ============================================================================

// trailingWhitespace 行尾需要裁剪的空白字符集
const trailingWhitespace = " \t\f\v\n\r"

// Source 保存归一化结果和行号映射
type Source struct {
	clean   string   // 归一化后的文本
	lines   []string // 保留下来的行（每行含结尾的 \n）
	deleted []int    // deleted[i] = 第 i 个保留行之前被删除的行数
}

// Normalize 归一化原始程序文本
//
// 逐行应用删除/裁剪规则，并记录每个保留行之前累计删除了多少行。
//
// 参数:
//   - raw: 原始程序文本（LF 行结尾；CR 在裁剪时被去掉）
//
// 返回:
//   - *Source: 归一化结果
func Normalize(raw string) *Source {
	s := &Source{}

	var sb strings.Builder
	sb.Grow(len(raw))

	deletedLines := 0
	for _, line := range strings.Split(raw, "\n") {
		// 整行注释直接丢弃
		if strings.HasPrefix(line, "//") {
			deletedLines++
			continue
		}

		// 不含可见字符的行同样丢弃
		if !containsGraphic(line) {
			deletedLines++
			continue
		}

		line = strings.TrimRight(line, trailingWhitespace) + "\n"
		sb.WriteString(line)
		s.lines = append(s.lines, line)
		// deleted[i] 是截至第 i 个保留行为止被删除的行数
		s.deleted = append(s.deleted, deletedLines)
	}

	s.clean = sb.String()
	return s
}

// containsGraphic 判断一行是否含有可见字符
func containsGraphic(line string) bool {
	for _, r := range line {
		if unicode.IsGraphic(r) && !unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// Text 返回归一化后的文本（词法器的输入）
func (s *Source) Text() string {
	return s.clean
}

// LineCount 返回保留下来的行数
func (s *Source) LineCount() int {
	return len(s.lines)
}

// OriginalLine 返回归一化行索引 i 对应的原始行号（从1开始）
func (s *Source) OriginalLine(i int) int {
	if i < 0 || i >= len(s.lines) {
		return 0
	}
	return i + s.deleted[i] + 1
}

// Resolve 把归一化文本中的字节偏移解析为源位置
//
// 返回:
//   - line: 原始行号（从1开始，已把删除的注释行和空行计算在内）
//   - column: 行内列号（从0开始，按字节计）
//   - lineText: 该行文本（不含结尾换行符）
//
// 行尾偏移收缩到该行最后一列；超出文件末尾的偏移收缩到最后一行。
func (s *Source) Resolve(offset int) (line, column int, lineText string) {
	if len(s.lines) == 0 {
		return 1, 0, ""
	}

	// 给定多行文本中的偏移，找出行号和行内位置
	currLen, nlines, posInLine := 0, 0, 0
	for _, l := range s.lines {
		if currLen+len(l) <= offset {
			currLen += len(l)
			nlines++
		} else {
			posInLine = offset - currLen
			break
		}
	}

	if nlines >= len(s.lines) {
		// 偏移落在文件末尾之后
		nlines = len(s.lines) - 1
		posInLine = len(s.lines[nlines]) - 1
	} else if posInLine >= len(s.lines[nlines]) {
		// 偏移落在行尾换行符之后
		posInLine = len(s.lines[nlines]) - 1
	}

	text := strings.TrimSuffix(s.lines[nlines], "\n")
	return s.OriginalLine(nlines), posInLine, text
}
