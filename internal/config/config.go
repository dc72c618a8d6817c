// Package config 实现解释器配置文件的读写
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// 常量定义
const (
	ConfigFileName = "pseudo.toml" // 配置文件名
)

// Config 解释器配置
type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
}

// DiagnosticsConfig 诊断输出配置
type DiagnosticsConfig struct {
	// Colors 诊断输出是否带 ANSI 颜色
	Colors bool `toml:"colors"`

	// TabWidth 渲染错误片段时 tab 展开的宽度
	TabWidth int `toml:"tab_width"`

	// Language 诊断消息语言 ("en" 或 "zh")
	Language string `toml:"language"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Diagnostics: DiagnosticsConfig{
			Colors:   true,
			TabWidth: 1,
			Language: "en",
		},
	}
}

// Load 从文件加载配置
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.Diagnostics.TabWidth < 1 {
		config.Diagnostics.TabWidth = 1
	}

	return config, nil
}

// Save 保存配置到文件
func (c *Config) Save(path string) error {
	// 生成带注释的配置文件内容
	content := generateConfigWithComments(c)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// generateConfigWithComments 生成带注释的配置文件内容
func generateConfigWithComments(c *Config) string {
	var sb strings.Builder

	sb.WriteString("[diagnostics]\n")
	sb.WriteString("# 诊断输出是否带颜色\n")
	sb.WriteString(fmt.Sprintf("colors = %v\n\n", c.Diagnostics.Colors))
	sb.WriteString("# 错误片段中 tab 展开宽度\n")
	sb.WriteString(fmt.Sprintf("tab_width = %d\n\n", c.Diagnostics.TabWidth))
	sb.WriteString("# 诊断消息语言 (en / zh)\n")
	sb.WriteString(fmt.Sprintf("language = %q\n", c.Diagnostics.Language))

	return sb.String()
}
