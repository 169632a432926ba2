package xconf

import "errors"

// 配置加载和解析相关错误。
var (
	// ErrEmptyPath 表示配置文件路径为空。
	ErrEmptyPath = errors.New("xconf: empty config path")

	// ErrUnsupportedFormat 表示不支持的配置格式。
	ErrUnsupportedFormat = errors.New("xconf: unsupported config format")

	// ErrLoadFailed 表示配置加载失败。
	ErrLoadFailed = errors.New("xconf: failed to load config")

	// ErrParseFailed 表示配置解析失败。
	ErrParseFailed = errors.New("xconf: failed to parse config")

	// ErrUnmarshalFailed 表示配置反序列化失败。
	ErrUnmarshalFailed = errors.New("xconf: failed to unmarshal config")
)

// 配置校验相关错误。
var (
	// ErrUnknownMode 表示采样模式不是 reservoir 或 cursor。
	ErrUnknownMode = errors.New("xconf: unknown sample mode")

	// ErrInvalidSize 表示采样大小为负数。
	ErrInvalidSize = errors.New("xconf: sample size must be non-negative")

	// ErrMissingURI 表示 cursor 模式缺少 MongoDB 连接地址。
	ErrMissingURI = errors.New("xconf: cursor mode requires source.uri")

	// ErrMissingCollection 表示 cursor 模式缺少目标集合。
	ErrMissingCollection = errors.New("xconf: cursor mode requires source.database and source.collection")
)
