package xlog

import (
	"context"
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Format 日志输出格式。
type Format string

const (
	// FormatText 人类可读的文本格式
	FormatText Format = "text"

	// FormatJSON 机器可读的 JSON 格式
	FormatJSON Format = "json"
)

type config struct {
	level  slog.Level
	format Format
	writer io.Writer
}

// Option 定义日志器配置选项。
type Option func(*config)

// WithLevel 设置初始日志级别。
func WithLevel(level slog.Level) Option {
	return func(cfg *config) {
		cfg.level = level
	}
}

// WithFormat 设置输出格式，默认 FormatText。
func WithFormat(format Format) Option {
	return func(cfg *config) {
		if format == FormatText || format == FormatJSON {
			cfg.format = format
		}
	}
}

// WithWriter 设置输出目标，默认 os.Stderr。
func WithWriter(w io.Writer) Option {
	return func(cfg *config) {
		if w != nil {
			cfg.writer = w
		}
	}
}

// FileWriter 创建带轮转的文件输出目标。
//
// 单文件上限 100MB，保留 3 个历史文件、最多 28 天，历史文件压缩。
// 返回的 WriteCloser 由调用方负责关闭。
func FileWriter(path string) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
}

// xlogger Logger 的 slog 实现。
type xlogger struct {
	slog     *slog.Logger
	levelVar *slog.LevelVar
}

// New 创建日志器。
func New(opts ...Option) Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		format: FormatText,
		writer: os.Stderr,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	levelVar := new(slog.LevelVar)
	levelVar.Set(cfg.level)

	hopts := &slog.HandlerOptions{Level: levelVar}
	var handler slog.Handler
	if cfg.format == FormatJSON {
		handler = slog.NewJSONHandler(cfg.writer, hopts)
	} else {
		handler = slog.NewTextHandler(cfg.writer, hopts)
	}

	return &xlogger{
		slog:     slog.New(handler),
		levelVar: levelVar,
	}
}

// Nop 返回丢弃所有输出的日志器，用于测试和默认占位。
func Nop() Logger {
	return &xlogger{
		slog:     slog.New(slog.DiscardHandler),
		levelVar: new(slog.LevelVar),
	}
}

// SetLevel 动态调整日志级别，运行时生效。
func (l *xlogger) SetLevel(level slog.Level) {
	l.levelVar.Set(level)
}

func (l *xlogger) Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.slog.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

func (l *xlogger) Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.slog.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (l *xlogger) Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.slog.LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
}

func (l *xlogger) Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.slog.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (l *xlogger) With(attrs ...slog.Attr) Logger {
	args := make([]any, 0, len(attrs))
	for _, a := range attrs {
		args = append(args, a)
	}
	return &xlogger{
		slog:     l.slog.With(args...),
		levelVar: l.levelVar,
	}
}

var _ Logger = (*xlogger)(nil)
