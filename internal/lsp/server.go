package lsp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"go.lsp.dev/protocol"
)

// ============================================================================
// Server - 伪代码语言 LSP 服务器
// ============================================================================
//
// 通过标准输入输出与编辑器通信，消息用 Content-Length 头分帧。
// 服务器只做前端能做的事：文档打开/修改时重新解析，把第一个
// 词法或语法错误作为诊断推送给客户端。
//
// ============================================================================

// Server LSP 服务器
type Server struct {
	// 文档管理
	documents *DocumentManager

	// 日志
	logFile *os.File
	logMu   sync.Mutex

	// 输入输出
	reader *bufio.Reader
	writer io.Writer
	mu     sync.Mutex

	// 服务器状态
	initialized bool
	shutdown    bool
}

// NewServer 创建 LSP 服务器
func NewServer(logPath string) *Server {
	s := &Server{
		documents: NewDocumentManager(),
		reader:    bufio.NewReader(os.Stdin),
		writer:    os.Stdout,
	}

	// 设置日志文件
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			s.logFile = f
		}
	}

	return s
}

// Run 启动 LSP 服务器主循环
func (s *Server) Run(ctx context.Context) error {
	s.log("Pseudo LSP Server started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// 读取消息
		msg, err := s.readMessage()
		if err != nil {
			if err == io.EOF {
				s.log("Client disconnected")
				return nil
			}
			s.log("Error reading message: %v", err)
			continue
		}

		// 处理消息
		s.handleMessage(msg)

		// 如果收到 exit 通知，退出
		if s.shutdown {
			s.log("Server shutdown")
			return nil
		}
	}
}

// readMessage 读取 LSP 消息
func (s *Server) readMessage() ([]byte, error) {
	// 读取头部
	var contentLength int
	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)

		if line == "" {
			// 头部结束
			break
		}

		if strings.HasPrefix(line, "Content-Length:") {
			lengthStr := strings.TrimSpace(strings.TrimPrefix(line, "Content-Length:"))
			contentLength, err = strconv.Atoi(lengthStr)
			if err != nil {
				return nil, fmt.Errorf("invalid Content-Length: %s", lengthStr)
			}
		}
	}

	if contentLength == 0 {
		return nil, fmt.Errorf("missing Content-Length header")
	}

	// 读取内容
	content := make([]byte, contentLength)
	_, err := io.ReadFull(s.reader, content)
	if err != nil {
		return nil, err
	}

	return content, nil
}

// sendMessage 发送 LSP 消息
func (s *Server) sendMessage(msg interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	header := fmt.Sprintf("Content-Length: %d\r\n\r\n", len(content))

	if _, err := s.writer.Write([]byte(header)); err != nil {
		return err
	}
	_, err = s.writer.Write(content)
	return err
}

// sendResult 发送请求响应
func (s *Server) sendResult(id json.RawMessage, result interface{}) {
	response := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      id,
		"result":  result,
	}
	if err := s.sendMessage(response); err != nil {
		s.log("Error sending response: %v", err)
	}
}

// sendError 发送请求错误
func (s *Server) sendError(id json.RawMessage, code int, message string) {
	response := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      id,
		"error": map[string]interface{}{
			"code":    code,
			"message": message,
		},
	}
	if err := s.sendMessage(response); err != nil {
		s.log("Error sending error response: %v", err)
	}
}

// sendNotification 发送通知
func (s *Server) sendNotification(method string, params interface{}) {
	notification := map[string]interface{}{
		"jsonrpc": "2.0",
		"method":  method,
		"params":  params,
	}
	if err := s.sendMessage(notification); err != nil {
		s.log("Error sending notification: %v", err)
	}
}

// handleMessage 处理收到的消息
func (s *Server) handleMessage(msg []byte) {
	// 解析基础消息结构
	var baseMsg struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      json.RawMessage `json:"id,omitempty"`
		Method  string          `json:"method"`
		Params  json.RawMessage `json:"params,omitempty"`
	}

	if err := json.Unmarshal(msg, &baseMsg); err != nil {
		s.log("Error parsing message: %v", err)
		return
	}

	// 根据方法分发处理
	switch baseMsg.Method {
	case "initialize":
		s.handleInitialize(baseMsg.ID, baseMsg.Params)
	case "initialized":
		s.handleInitialized()
	case "shutdown":
		s.handleShutdown(baseMsg.ID)
	case "exit":
		s.handleExit()
	case "textDocument/didOpen":
		s.handleDidOpen(baseMsg.Params)
	case "textDocument/didChange":
		s.handleDidChange(baseMsg.Params)
	case "textDocument/didClose":
		s.handleDidClose(baseMsg.Params)
	case "textDocument/didSave":
		// 全量同步下保存不带新内容，无事可做
	case "$/cancelRequest":
		// 忽略取消请求
	default:
		s.log("Unknown method: %s", baseMsg.Method)
		// 如果有 ID，返回方法未找到错误
		if baseMsg.ID != nil {
			s.sendError(baseMsg.ID, -32601, "Method not found: "+baseMsg.Method)
		}
	}
}

// handleInitialize 处理初始化请求
func (s *Server) handleInitialize(id json.RawMessage, params json.RawMessage) {
	var initParams protocol.InitializeParams
	if err := json.Unmarshal(params, &initParams); err != nil {
		s.sendError(id, -32700, "Parse error")
		return
	}

	s.log("Initialize: workspace=%s", initParams.RootURI)

	// 返回服务器能力：只做文档同步和诊断
	result := map[string]interface{}{
		"capabilities": map[string]interface{}{
			// 文档同步：全量同步
			"textDocumentSync": map[string]interface{}{
				"openClose": true,
				"change":    1, // TextDocumentSyncKindFull
			},
		},
		"serverInfo": map[string]interface{}{
			"name":    "pseudols",
			"version": "0.1.0",
		},
	}

	s.sendResult(id, result)
}

// handleInitialized 处理初始化完成通知
func (s *Server) handleInitialized() {
	s.initialized = true
	s.log("Client initialized")
}

// handleShutdown 处理关闭请求
func (s *Server) handleShutdown(id json.RawMessage) {
	s.sendResult(id, nil)
}

// handleExit 处理退出通知
func (s *Server) handleExit() {
	s.shutdown = true
}

// handleDidOpen 处理文档打开通知
func (s *Server) handleDidOpen(params json.RawMessage) {
	var p protocol.DidOpenTextDocumentParams
	if err := json.Unmarshal(params, &p); err != nil {
		s.log("didOpen: %v", err)
		return
	}

	doc := s.documents.Open(string(p.TextDocument.URI), p.TextDocument.Text,
		int(p.TextDocument.Version))
	s.log("Opened %s", doc.Path)
	s.publishDiagnostics(doc)
}

// handleDidChange 处理文档修改通知
//
// 采用全量同步，最后一个变更就是完整的新内容。
func (s *Server) handleDidChange(params json.RawMessage) {
	var p protocol.DidChangeTextDocumentParams
	if err := json.Unmarshal(params, &p); err != nil {
		s.log("didChange: %v", err)
		return
	}
	if len(p.ContentChanges) == 0 {
		return
	}

	content := p.ContentChanges[len(p.ContentChanges)-1].Text
	doc := s.documents.UpdateContent(string(p.TextDocument.URI), content,
		int(p.TextDocument.Version))
	if doc != nil {
		s.publishDiagnostics(doc)
	}
}

// handleDidClose 处理文档关闭通知
func (s *Server) handleDidClose(params json.RawMessage) {
	var p protocol.DidCloseTextDocumentParams
	if err := json.Unmarshal(params, &p); err != nil {
		s.log("didClose: %v", err)
		return
	}
	s.documents.Close(string(p.TextDocument.URI))
}

// log 写一条日志（仅当指定了日志文件）
func (s *Server) log(format string, args ...interface{}) {
	if s.logFile == nil {
		return
	}
	s.logMu.Lock()
	defer s.logMu.Unlock()
	fmt.Fprintf(s.logFile, format+"\n", args...)
}
