package xmongo

import (
	"time"

	"github.com/lunalice/mongo/pkg/observability/xlog"
)

const (
	// defaultBatchSize $sample 聚合每批拉取的文档数。
	// 批次太小放大往返开销，太大增加重复率与内存占用。
	defaultBatchSize = 100

	// defaultRetryAttempts 批次拉取的最大尝试次数（含首次）。
	defaultRetryAttempts = 3

	// defaultRetryDelay 重试的基础延迟。
	defaultRetryDelay = 100 * time.Millisecond
)

// Options 数据源配置。
type Options struct {
	batchSize     int
	maxDraws      int64
	retryAttempts uint
	retryDelay    time.Duration
	logger        xlog.Logger
}

// Option 定义数据源配置选项。
type Option func(*Options)

// WithBatchSize 设置每批拉取的文档数，n < 1 时忽略。
func WithBatchSize(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.batchSize = n
		}
	}
}

// WithMaxDraws 设置拉取总量上限。
// 默认为构造时的集合规模估计：源在一个「逻辑遍」之后报告 EOF，
// 不会无界地拉取。n < 1 时忽略。
func WithMaxDraws(n int64) Option {
	return func(o *Options) {
		if n >= 1 {
			o.maxDraws = n
		}
	}
}

// WithRetryAttempts 设置批次拉取的最大尝试次数（含首次），0 时忽略。
func WithRetryAttempts(n uint) Option {
	return func(o *Options) {
		if n > 0 {
			o.retryAttempts = n
		}
	}
}

// WithRetryDelay 设置重试的基础延迟，非正值忽略。
func WithRetryDelay(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.retryDelay = d
		}
	}
}

// WithLogger 设置日志器，默认丢弃所有输出。
func WithLogger(logger xlog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func defaultOptions() *Options {
	return &Options{
		batchSize:     defaultBatchSize,
		retryAttempts: defaultRetryAttempts,
		retryDelay:    defaultRetryDelay,
		logger:        xlog.Nop(),
	}
}

func applyOptions(opts []Option) *Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}
