package lsp

import (
	"testing"
)

func TestDocumentParseCachesAST(t *testing.T) {
	dm := NewDocumentManager()
	doc := dm.Open("file:///tmp/a.pseudo", "x = 1 + 2\n", 1)

	if doc.ParseErr != nil {
		t.Fatalf("unexpected parse error: %v", doc.ParseErr)
	}
	if doc.AST == nil || len(doc.AST.Statements) != 1 {
		t.Fatalf("expected cached AST with 1 statement")
	}
}

func TestDocumentUpdateReparses(t *testing.T) {
	dm := NewDocumentManager()
	dm.Open("file:///tmp/a.pseudo", "x = 1\n", 1)

	doc := dm.UpdateContent("file:///tmp/a.pseudo", "x = 1 y\n", 2)
	if doc == nil {
		t.Fatal("document lost on update")
	}
	if doc.ParseErr == nil {
		t.Fatal("expected parse error after update")
	}
	if doc.Version != 2 {
		t.Errorf("version: got %d, want 2", doc.Version)
	}

	doc = dm.UpdateContent("file:///tmp/a.pseudo", "x = 1\n", 3)
	if doc.ParseErr != nil {
		t.Errorf("error should clear after fix: %v", doc.ParseErr)
	}
}

func TestGetDiagnostics(t *testing.T) {
	s := &Server{documents: NewDocumentManager()}

	// 注释行被归一化删除，诊断行号仍指向原始文件
	doc := s.documents.Open("file:///tmp/a.pseudo", "// header\nx = 1 y\n", 1)
	diags := s.getDiagnostics(doc)

	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	d := diags[0]
	if d.Message != "Newline expected." {
		t.Errorf("message: got %q", d.Message)
	}
	// LSP 行号 0 基：原始第 2 行 → 1
	if d.Range.Start.Line != 1 {
		t.Errorf("line: got %d, want 1", d.Range.Start.Line)
	}
	if d.Range.Start.Character != 6 {
		t.Errorf("character: got %d, want 6", d.Range.Start.Character)
	}
	if d.Source != "pseudo" {
		t.Errorf("source: got %q", d.Source)
	}
	if d.Code != "ParsingError" {
		t.Errorf("code: got %v", d.Code)
	}
}

func TestGetDiagnosticsCleanDocument(t *testing.T) {
	s := &Server{documents: NewDocumentManager()}
	doc := s.documents.Open("file:///tmp/a.pseudo", "x = 1\n", 1)

	diags := s.getDiagnostics(doc)
	if diags == nil {
		t.Fatal("diagnostics must be an empty slice, not nil")
	}
	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %d", len(diags))
	}
}

func TestURIToPath(t *testing.T) {
	if p := uriToPath("file:///tmp/a.pseudo"); p != "/tmp/a.pseudo" {
		t.Errorf("path: got %q, want /tmp/a.pseudo", p)
	}
	if p := uriToPath("untitled:Untitled-1"); p != "" {
		t.Errorf("non-file URI should have empty path, got %q", p)
	}
}
