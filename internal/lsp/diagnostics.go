package lsp

import (
	"go.lsp.dev/protocol"
)

// getDiagnostics 获取文档的诊断信息
//
// 前端没有错误恢复，每个文档至多产生一条诊断。
// 错误携带的是归一化文本中的字节偏移，经归一化器解析成
// 原始行号和列号之后再换算成 LSP 的 0 基位置。
func (s *Server) getDiagnostics(doc *Document) []protocol.Diagnostic {
	if doc.ParseErr == nil {
		// 必须返回空切片而不是 nil，客户端靠空列表清除旧诊断
		return []protocol.Diagnostic{}
	}

	err := doc.ParseErr
	line, column, lineText := doc.Src.Resolve(err.Offset)

	endColumn := column + 1
	if endColumn > len(lineText) {
		endColumn = len(lineText)
	}
	if endColumn <= column {
		endColumn = column + 1
	}

	diag := protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{
				Line:      uint32(line - 1), // LSP 行号从 0 开始
				Character: uint32(column),
			},
			End: protocol.Position{
				Line:      uint32(line - 1),
				Character: uint32(endColumn),
			},
		},
		Severity: protocol.DiagnosticSeverityError,
		Source:   "pseudo",
		Code:     err.Kind.String(),
		Message:  err.Message,
	}

	return []protocol.Diagnostic{diag}
}

// publishDiagnostics 向客户端推送文档诊断
func (s *Server) publishDiagnostics(doc *Document) {
	params := protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.URI),
		Version:     uint32(doc.Version),
		Diagnostics: s.getDiagnostics(doc),
	}

	s.sendNotification("textDocument/publishDiagnostics", params)
}
