package xmongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// =============================================================================
// Mock 实现 - 用于单元测试
// =============================================================================

// mockCollectionOps 实现 collectionOperations 接口。
//
// batches 中的每个元素对应一次成功的 Aggregate 调用返回的文档批次；
// aggErrs 中的非 nil 元素在对应次序的调用上注入失败（用于重试测试）。
type mockCollectionOps struct {
	estimate    int64
	estimateErr error

	batches  [][]any
	aggErrs  []error
	aggCalls int

	collName string
}

func (m *mockCollectionOps) Aggregate(_ context.Context, _ any, _ ...options.Lister[options.AggregateOptions]) (*mongo.Cursor, error) {
	m.aggCalls++

	if len(m.aggErrs) > 0 {
		err := m.aggErrs[0]
		m.aggErrs = m.aggErrs[1:]
		if err != nil {
			return nil, err
		}
	}

	var docs []any
	if len(m.batches) > 0 {
		docs = m.batches[0]
		m.batches = m.batches[1:]
	}
	return mongo.NewCursorFromDocuments(docs, nil, nil)
}

func (m *mockCollectionOps) EstimatedDocumentCount(_ context.Context, _ ...options.Lister[options.EstimatedDocumentCountOptions]) (int64, error) {
	if m.estimateErr != nil {
		return 0, m.estimateErr
	}
	return m.estimate, nil
}

func (m *mockCollectionOps) Name() string {
	return m.collName
}

// newMockCollectionOps 创建测试用 mock 集合操作。
func newMockCollectionOps() *mockCollectionOps {
	return &mockCollectionOps{collName: "test_collection"}
}
