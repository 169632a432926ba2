// Package xlog 提供基于 log/slog 的结构化日志。
//
// 设计要点：
//   - 强制 context 传递，方法签名只接受 slog.Attr，避免隐式 key-value 转换
//   - 动态级别控制：共享 LevelVar，运行时调整即时生效
//   - 文件输出通过 lumberjack 自动轮转
//
// 采样算子本身不打日志（热路径），日志集中在数据源与命令行工具。
package xlog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// 常用属性 key，保持跨包一致。
const (
	// KeyError 错误字段的标准 key
	KeyError = "error"

	// KeyOperationID 采样操作 ID 字段的标准 key
	KeyOperationID = "op_id"

	// KeyCollection 集合名字段的标准 key
	KeyCollection = "collection"
)

// Logger 日志接口。
//
// 所有方法都需要 context.Context 参数，确保追踪信息正确传播。
type Logger interface {
	// Debug 记录 Debug 级别日志
	Debug(ctx context.Context, msg string, attrs ...slog.Attr)

	// Info 记录 Info 级别日志
	Info(ctx context.Context, msg string, attrs ...slog.Attr)

	// Warn 记录 Warn 级别日志
	Warn(ctx context.Context, msg string, attrs ...slog.Attr)

	// Error 记录 Error 级别日志
	Error(ctx context.Context, msg string, attrs ...slog.Attr)

	// With 返回带额外属性的派生 Logger
	With(attrs ...slog.Attr) Logger
}

// Err 创建错误属性，使用统一的 key "error"。
// err 为 nil 时返回空属性（会被忽略）。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// ParseLevel 解析级别字符串（大小写不敏感）。
// 空串按 info 处理；无法识别时返回错误。
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("xlog: unknown log level %q", s)
	}
}
