package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tangzhangming/pseudo/internal/ast"
	"github.com/tangzhangming/pseudo/internal/config"
	"github.com/tangzhangming/pseudo/internal/errors"
	"github.com/tangzhangming/pseudo/internal/i18n"
	"github.com/tangzhangming/pseudo/internal/lexer"
	"github.com/tangzhangming/pseudo/internal/parser"
	"github.com/tangzhangming/pseudo/internal/source"
)

var (
	showTokens = flag.Bool("tokens", false, "Show lexer tokens")
	showAST    = flag.Bool("ast", false, "Show AST structure")
	configPath = flag.String("config", "", "Path to pseudo.toml (defaults to ./pseudo.toml if present)")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Pseudo Interpreter Front-End v0.1.0")
		fmt.Println()
		fmt.Println("Usage: pseudo [options] <filename.pseudo>")
		fmt.Println()
		fmt.Println("Options:")
		fmt.Println("  -tokens        Show lexer tokens")
		fmt.Println("  -ast           Show AST structure")
		fmt.Println("  -config <file> Path to pseudo.toml")
		os.Exit(0)
	}

	cfg := loadConfig()
	i18n.SetLanguageFromString(cfg.Diagnostics.Language)

	filename := flag.Arg(0)
	raw, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	// 归一化：去掉注释行和空行，建立行号映射
	src := source.Normalize(string(raw))

	formatter := errors.NewFormatter()
	formatter.Colors = cfg.Diagnostics.Colors
	formatter.TabWidth = cfg.Diagnostics.TabWidth

	// 词法分析
	if *showTokens {
		l := lexer.New()
		l.SetInput(src.Text())
		if err := l.Lex(); err != nil {
			printDiagnostic(formatter, err, src)
			os.Exit(1)
		}

		fmt.Println("=== Tokens ===")
		for _, tok := range l.Tokens() {
			fmt.Printf("  %s\n", tok)
		}
		return
	}

	// 语法分析
	p := parser.New()
	block, err := p.Parse(src.Text())
	if err != nil {
		printDiagnostic(formatter, err, src)
		os.Exit(1)
	}

	if *showAST {
		fmt.Println("=== AST ===")
		printAST(block)
	}

	fmt.Printf("Successfully parsed %s\n", filename)
	fmt.Printf("  Statements: %d\n", len(block.Statements))
}

// loadConfig 加载 pseudo.toml
//
// 显式指定的配置文件读不到是错误；默认路径不存在就用默认配置。
func loadConfig() *config.Config {
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return cfg
	}

	if _, err := os.Stat(config.ConfigFileName); err == nil {
		cfg, err := config.Load(config.ConfigFileName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return cfg
	}

	return config.Default()
}

// printDiagnostic 渲染一个前端错误
func printDiagnostic(f *errors.Formatter, err error, src *source.Source) {
	if e, ok := err.(*errors.Error); ok {
		fmt.Fprintln(os.Stderr, f.Format(e, src))
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

func printAST(block *ast.Block) {
	for i, stmt := range block.Statements {
		fmt.Printf("  Statement[%d]: %s\n", i, stmt.String())
	}
}
