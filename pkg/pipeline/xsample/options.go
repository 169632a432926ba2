package xsample

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// DefaultMaxConsecutiveDuplicates 随机游标采样允许的连续重复上限默认值。
//
// 超过上限说明随机源无法提供足够多的不同文档。原始行为只要求
// 「连续很多次」，具体数值不敏感；取数百量级，可通过
// WithMaxConsecutiveDuplicates 按部署调整。
const DefaultMaxConsecutiveDuplicates = 500

type config struct {
	meterProvider metric.MeterProvider
	maxDuplicates int
	randFn        func() float64
}

// Option 定义采样算子的配置选项。
type Option func(*config)

// WithMeterProvider 设置 OTel MeterProvider。
// 默认使用全局 MeterProvider。
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(cfg *config) {
		if provider != nil {
			cfg.meterProvider = provider
		}
	}
}

// WithMaxConsecutiveDuplicates 设置连续重复上限（仅随机游标采样使用）。
// n < 1 时忽略，保留默认值。
func WithMaxConsecutiveDuplicates(n int) Option {
	return func(cfg *config) {
		if n >= 1 {
			cfg.maxDuplicates = n
		}
	}
}

// WithRandSource 设置排名键的随机数来源，返回值必须落在 [0.0, 1.0)。
// 用于需要可控随机性的测试场景；生产环境使用默认来源即可。
func WithRandSource(fn func() float64) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.randFn = fn
		}
	}
}

func defaultConfig() *config {
	return &config{
		meterProvider: otel.GetMeterProvider(),
		maxDuplicates: DefaultMaxConsecutiveDuplicates,
		randFn:        randFloat64,
	}
}

func applyOptions(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
