package xmongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// =============================================================================
// 内部接口定义 - 用于依赖注入和测试
// =============================================================================

// collectionOperations 定义数据源需要的集合级别操作。
// *mongo.Collection 实现此接口。
type collectionOperations interface {
	Aggregate(ctx context.Context, pipeline any, opts ...options.Lister[options.AggregateOptions]) (*mongo.Cursor, error)
	EstimatedDocumentCount(ctx context.Context, opts ...options.Lister[options.EstimatedDocumentCountOptions]) (int64, error)
	Name() string
}

// collectionAdapter 将 *mongo.Collection 适配为 collectionOperations 接口。
type collectionAdapter struct {
	coll *mongo.Collection
}

func (a *collectionAdapter) Aggregate(ctx context.Context, pipeline any, opts ...options.Lister[options.AggregateOptions]) (*mongo.Cursor, error) {
	return a.coll.Aggregate(ctx, pipeline, opts...)
}

func (a *collectionAdapter) EstimatedDocumentCount(ctx context.Context, opts ...options.Lister[options.EstimatedDocumentCountOptions]) (int64, error) {
	return a.coll.EstimatedDocumentCount(ctx, opts...)
}

func (a *collectionAdapter) Name() string {
	return a.coll.Name()
}

// adaptCollection 将 *mongo.Collection 适配为 collectionOperations 接口。
func adaptCollection(coll *mongo.Collection) collectionOperations {
	if coll == nil {
		return nil
	}
	return &collectionAdapter{coll: coll}
}
