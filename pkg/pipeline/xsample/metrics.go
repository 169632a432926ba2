package xsample

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	defaultInstrumentationName = "github.com/lunalice/mongo/pkg/pipeline/xsample"

	metricDocsScanned       = "mongo.sample.documents_scanned"
	metricDuplicatesSkipped = "mongo.sample.duplicates_skipped"
	metricDocsEmitted       = "mongo.sample.documents_emitted"
)

// stageMetrics 采样算子的运行指标。
//
// 算子单线程执行且 Next 不携带 context，指标记录使用
// context.Background()；计数语义不依赖调用方上下文。
type stageMetrics struct {
	scanned metric.Int64Counter
	dups    metric.Int64Counter
	emitted metric.Int64Counter
	attrs   metric.MeasurementOption
}

// newStageMetrics 创建指标集，stage 作为固定属性区分两种采样算子。
func newStageMetrics(provider metric.MeterProvider, stage string) (*stageMetrics, error) {
	meter := provider.Meter(defaultInstrumentationName)

	scanned, err := meter.Int64Counter(
		metricDocsScanned,
		metric.WithDescription("documents pulled from upstream"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xsample: create counter failed: %w", err)
	}

	dups, err := meter.Int64Counter(
		metricDuplicatesSkipped,
		metric.WithDescription("duplicate documents skipped by identifier"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xsample: create counter failed: %w", err)
	}

	emitted, err := meter.Int64Counter(
		metricDocsEmitted,
		metric.WithDescription("sampled documents emitted downstream"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xsample: create counter failed: %w", err)
	}

	return &stageMetrics{
		scanned: scanned,
		dups:    dups,
		emitted: emitted,
		attrs:   metric.WithAttributes(attribute.String("stage", stage)),
	}, nil
}

func (m *stageMetrics) addScanned(n int64) {
	m.scanned.Add(context.Background(), n, m.attrs)
}

func (m *stageMetrics) addDuplicate() {
	m.dups.Add(context.Background(), 1, m.attrs)
}

func (m *stageMetrics) addEmitted() {
	m.emitted.Add(context.Background(), 1, m.attrs)
}
