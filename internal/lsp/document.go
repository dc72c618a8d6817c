package lsp

import (
	"strings"
	"sync"

	"go.lsp.dev/uri"

	"github.com/tangzhangming/pseudo/internal/ast"
	"github.com/tangzhangming/pseudo/internal/errors"
	"github.com/tangzhangming/pseudo/internal/parser"
	"github.com/tangzhangming/pseudo/internal/source"
)

// Document 表示一个打开的文档
//
// 每次内容变化都重新走一遍 归一化 → 词法 → 语法 流水线，
// 缓存归一化结果、AST 和第一个前端错误。
type Document struct {
	URI     string
	Path    string // URI 对应的文件系统路径（非 file 协议时为空）
	Content string
	Version int

	// 缓存的解析结果
	Src      *source.Source
	AST      *ast.Block
	ParseErr *errors.Error
}

// parse 解析文档内容并刷新缓存
func (d *Document) parse() {
	d.Src = source.Normalize(d.Content)
	d.AST = nil
	d.ParseErr = nil

	// 每个文档一个独立的解析器实例，互不共享状态
	p := parser.New()
	block, err := p.Parse(d.Src.Text())
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			d.ParseErr = e
		} else {
			d.ParseErr = errors.NewFatal(err.Error(), 0)
		}
		return
	}
	d.AST = block
}

// DocumentManager 文档管理器
type DocumentManager struct {
	documents map[string]*Document
	mu        sync.RWMutex
}

// NewDocumentManager 创建文档管理器
func NewDocumentManager() *DocumentManager {
	return &DocumentManager{
		documents: make(map[string]*Document),
	}
}

// uriToPath 把文档 URI 转换为文件系统路径
//
// 只有 file 协议的 URI 有路径；别的协议（如 untitled:）返回空串。
func uriToPath(docURI string) string {
	if !strings.HasPrefix(docURI, "file://") {
		return ""
	}
	parsed, err := uri.Parse(docURI)
	if err != nil {
		return ""
	}
	return parsed.Filename()
}

// Open 打开文档
func (dm *DocumentManager) Open(docURI, content string, version int) *Document {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc := &Document{
		URI:     docURI,
		Path:    uriToPath(docURI),
		Content: content,
		Version: version,
	}

	// 立即解析
	doc.parse()

	dm.documents[docURI] = doc
	return doc
}

// Close 关闭文档
func (dm *DocumentManager) Close(docURI string) {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	delete(dm.documents, docURI)
}

// Get 获取文档
func (dm *DocumentManager) Get(docURI string) *Document {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	return dm.documents[docURI]
}

// UpdateContent 更新文档内容并重新解析
func (dm *DocumentManager) UpdateContent(docURI, content string, version int) *Document {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc := dm.documents[docURI]
	if doc == nil {
		return nil
	}
	doc.Content = content
	doc.Version = version
	doc.parse()
	return doc
}
