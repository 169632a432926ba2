package xmongo

import (
	"context"
	"fmt"
	"log/slog"

	retry "github.com/avast/retry-go/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/lunalice/mongo/pkg/observability/xlog"
	"github.com/lunalice/mongo/pkg/pipeline/xdoc"
	"github.com/lunalice/mongo/pkg/pipeline/xstage"
)

// RandomDocSource 随机访问文档源。
//
// 通过 $sample 聚合分批拉取近似均匀随机的文档。批次之间相互独立，
// 因此整体输出可能重复——去重是下游 RandomCursorStage 的职责。
// 拉取总量有上限（默认为构造时的集合规模估计），之后报告 EOF，
// 保证源必然终止。
//
// 实例归属单个采样操作，单线程拉取，不做并发防护。
type RandomDocSource struct {
	ctx    context.Context
	coll   collectionOperations
	opts   *Options
	logger xlog.Logger

	estimate  int64
	maxDraws  int64
	buf       []bson.D
	drawn     int64
	exhausted bool
}

// NewRandomDocSource 创建随机文档源。
//
// 构造时通过 EstimatedDocumentCount 获取集合规模估计，作为默认的
// 拉取总量上限和 PopulationEstimate 的返回值。
func NewRandomDocSource(ctx context.Context, coll *mongo.Collection, opts ...Option) (*RandomDocSource, error) {
	if coll == nil {
		return nil, ErrNilCollection
	}
	return newRandomDocSource(ctx, adaptCollection(coll), opts...)
}

// newRandomDocSource 内部构造函数，便于注入 mock 集合操作。
func newRandomDocSource(ctx context.Context, coll collectionOperations, opts ...Option) (*RandomDocSource, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if coll == nil {
		return nil, ErrNilCollection
	}

	o := applyOptions(opts)

	estimate, err := coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("xmongo: estimate document count: %w", err)
	}

	maxDraws := o.maxDraws
	if maxDraws == 0 {
		maxDraws = estimate
	}

	logger := o.logger.With(
		slog.String(xlog.KeyOperationID, uuid.NewString()),
		slog.String(xlog.KeyCollection, coll.Name()),
	)

	return &RandomDocSource{
		ctx:      ctx,
		coll:     coll,
		opts:     o,
		logger:   logger,
		estimate: estimate,
		maxDraws: maxDraws,
	}, nil
}

// PopulationEstimate 返回构造时的集合规模估计。
// 用于配置下游 RandomCursorSpec.PopulationEstimate。
func (s *RandomDocSource) PopulationEstimate() int64 {
	return s.estimate
}

// Drawn 返回已产出的文档总数（含重复）。
func (s *RandomDocSource) Drawn() int64 {
	return s.drawn
}

// Next 实现 xstage.Stage。
func (s *RandomDocSource) Next() (xstage.Result, error) {
	if s.exhausted {
		return xstage.EOF(), nil
	}
	if s.drawn >= s.maxDraws {
		s.finish()
		return xstage.EOF(), nil
	}

	if len(s.buf) == 0 {
		if err := s.fetchBatch(); err != nil {
			return xstage.Result{}, err
		}
		if len(s.buf) == 0 {
			// 空集合：$sample 没有任何可产出的文档
			s.finish()
			return xstage.EOF(), nil
		}
	}

	fields := s.buf[0]
	s.buf = s.buf[1:]
	s.drawn++
	return xstage.Advance(xdoc.New(fields)), nil
}

// fetchBatch 拉取下一批随机文档，瞬时故障时有限次重试。
func (s *RandomDocSource) fetchBatch() error {
	want := int64(s.opts.batchSize)
	if remaining := s.maxDraws - s.drawn; remaining < want {
		want = remaining
	}

	pipeline := mongo.Pipeline{
		{{Key: "$sample", Value: bson.D{{Key: "size", Value: want}}}},
	}

	var batch []bson.D
	err := retry.New(
		retry.Context(s.ctx),
		retry.Attempts(s.opts.retryAttempts),
		retry.Delay(s.opts.retryDelay),
		retry.LastErrorOnly(true),
	).Do(func() error {
		cur, err := s.coll.Aggregate(s.ctx, pipeline)
		if err != nil {
			return err
		}
		batch = batch[:0]
		return cur.All(s.ctx, &batch)
	})
	if err != nil {
		s.logger.Error(s.ctx, "fetch sample batch failed", xlog.Err(err))
		return fmt.Errorf("xmongo: fetch sample batch: %w", err)
	}

	s.buf = batch
	s.logger.Debug(s.ctx, "fetched sample batch",
		slog.Int("batch", len(batch)),
		slog.Int64("drawn", s.drawn),
	)
	return nil
}

// finish 进入幂等的耗尽终态。
func (s *RandomDocSource) finish() {
	if !s.exhausted {
		s.exhausted = true
		s.logger.Debug(s.ctx, "random source exhausted", slog.Int64("drawn", s.drawn))
	}
}

var _ xstage.Stage = (*RandomDocSource)(nil)
